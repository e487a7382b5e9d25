package services

import (
	"time"

	"ledgerly/internal/models"
)

// BudgetCategoryInput is one allocation row of a budget submission.
type BudgetCategoryInput struct {
	Label string
	Value float64
}

// BudgetInput holds a budget submission after binding.
type BudgetInput struct {
	Income      float64
	TotalBudget float64
	Categories  []BudgetCategoryInput
}

// TransactionInput holds a transaction create or full-replace payload after
// binding.
type TransactionInput struct {
	Title    string
	Amount   float64
	Type     models.TransactionType
	Category string
	Date     time.Time
	Notes    string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	CreateBudget(userID string, in BudgetInput) (*models.Budget, error)
	GetBudgetSummaries(userID string) ([]models.BudgetSummary, error)
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(userID string, in TransactionInput) (*models.Transaction, error)
	GetUserTransactions(userID string) ([]models.Transaction, error)
	GetTransactionByID(userID, transactionID string) (*models.Transaction, error)
	UpdateTransaction(userID, transactionID string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID string) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(e AuditEntry)
}
