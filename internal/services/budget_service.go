package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"ledgerly/internal/budget"
	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// CreateBudget validates the allocation invariant and persists the budget
// with its category rows. Binding has already coerced the payload to
// numbers; the cross-field rules are re-checked here so a client bypassing
// form validation still cannot store an inconsistent budget.
func (s *budgetService) CreateBudget(userID string, in BudgetInput) (*models.Budget, error) {
	var categoryTotal float64
	for _, c := range in.Categories {
		categoryTotal += c.Value
	}

	if fields := budget.CheckAllocation(in.Income, in.TotalBudget, categoryTotal); len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}

	b := &models.Budget{
		UserID:      userID,
		Income:      in.Income,
		TotalBudget: in.TotalBudget,
	}
	for _, c := range in.Categories {
		b.Categories = append(b.Categories, models.BudgetCategory{
			Label: strings.TrimSpace(c.Label),
			Value: c.Value,
		})
	}

	if err := s.db.Create(b).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return b, nil
}

// GetBudgetSummaries returns one summary per category of the user's most
// recent budget, with the spend taken from expense transactions whose
// category matches the allocation label case-insensitively.
func (s *budgetService) GetBudgetSummaries(userID string) ([]models.BudgetSummary, error) {
	var latest models.Budget
	err := s.db.Preload("Categories").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latest).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.BudgetSummary{}, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	type categorySpend struct {
		Category string
		Spent    float64
	}
	var spends []categorySpend
	err = s.db.Model(&models.Transaction{}).
		Select("LOWER(category) AS category, COALESCE(SUM(amount), 0) AS spent").
		Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Group("LOWER(category)").
		Scan(&spends).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	spentByCategory := make(map[string]float64, len(spends))
	for _, sp := range spends {
		spentByCategory[sp.Category] = sp.Spent
	}

	summaries := make([]models.BudgetSummary, 0, len(latest.Categories))
	for _, c := range latest.Categories {
		summaries = append(summaries, models.BudgetSummary{
			Category:    c.Label,
			TotalBudget: c.Value,
			Spent:       spentByCategory[strings.ToLower(c.Label)],
		})
	}
	return summaries, nil
}
