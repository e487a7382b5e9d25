package models

import "time"

// TransactionType represents the direction of a transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// TransactionCategories is the fixed set of categories a transaction may
// carry.
var TransactionCategories = []string{
	"rent", "food", "travel", "entertainment", "utilities", "salary", "others",
}

// ValidTransactionCategory reports whether c is one of the fixed categories.
func ValidTransactionCategory(c string) bool {
	for _, known := range TransactionCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Transaction is one entry in a user's ledger. Dates carry no time
// component; deletion is permanent (no soft delete).
type Transaction struct {
	Base
	UserID   string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title    string          `gorm:"not null" json:"title"`
	Amount   float64         `gorm:"not null" json:"amount"`
	Type     TransactionType `gorm:"not null" json:"type"`
	Category string          `gorm:"not null" json:"category"`
	Date     time.Time       `gorm:"not null" json:"date"`
	Notes    string          `json:"notes,omitempty"`
}
