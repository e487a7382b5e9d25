package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"ledgerly/internal/logger"
	"ledgerly/internal/models"
)

// AuditEntry describes one mutating operation to record.
type AuditEntry struct {
	UserID       string
	Action       string
	ResourceType string
	ResourceID   string
	IPAddress    string
	Changes      map[string]interface{}
}

// auditService persists audit entries.
type auditService struct {
	db  *gorm.DB
	log interface {
		Errorw(msg string, keysAndValues ...interface{})
	}
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db, log: logger.Named("audit")}
}

// Log records an audit entry. Failures are logged and swallowed; audit
// trouble must not fail the operation being audited.
func (s *auditService) Log(e AuditEntry) {
	var changesJSON string
	if e.Changes != nil {
		data, err := json.Marshal(e.Changes)
		if err != nil {
			s.log.Errorw("marshal changes", "error", err, "action", e.Action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	row := &models.AuditLog{
		UserID:       e.UserID,
		Action:       e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		IPAddress:    e.IPAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(row).Error; err != nil {
		s.log.Errorw("write entry",
			"error", err,
			"user_id", e.UserID,
			"action", e.Action,
			"resource_type", e.ResourceType,
			"resource_id", e.ResourceID,
		)
	}
}
