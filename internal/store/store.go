// Package store defines the remote ledger store contract the client core
// depends on. The core is agnostic to the transport and encoding behind it;
// implementations translate their failures into the shared error taxonomy,
// in particular apperrors.ErrUnauthorized for an expired session versus
// apperrors.ErrStoreUnavailable for everything else.
package store

import (
	"context"

	"ledgerly/internal/budget"
	"ledgerly/internal/models"
	"ledgerly/internal/money"
)

// BudgetInput is a budget submission: already validated locally, values
// coerced to numbers.
type BudgetInput struct {
	Income      float64               `json:"income"`
	TotalBudget float64               `json:"totalBudget"`
	Categories  []BudgetCategoryInput `json:"categories"`
}

// BudgetCategoryInput is one allocation row of a budget submission.
type BudgetCategoryInput struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// TransactionInput is the payload for creating or fully replacing a
// transaction. Date is an ISO 8601 calendar date with no time component.
type TransactionInput struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes,omitempty"`
}

// Store is the remote budget-and-transaction store. Every call takes a
// context so a view being torn down can abandon in-flight work. List calls
// return fresh immutable snapshots; the core never mutates them in place.
type Store interface {
	CreateBudget(ctx context.Context, in BudgetInput) (*models.Budget, error)
	ListBudgetSummaries(ctx context.Context) ([]models.BudgetSummary, error)

	CreateTransaction(ctx context.Context, in TransactionInput) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, in TransactionInput) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// BudgetInputFromForm converts a locally validated allocation form into a
// store submission, coercing every value the same way the live totals do.
func BudgetInputFromForm(in budget.AllocationInput) BudgetInput {
	out := BudgetInput{
		Income:      coerce(in.Income),
		TotalBudget: coerce(in.TotalBudget),
	}
	for _, c := range in.Categories {
		out.Categories = append(out.Categories, BudgetCategoryInput{
			Label: c.Label,
			Value: coerce(c.Value),
		})
	}
	return out
}

func coerce(s string) float64 { return money.Coerce(s) }
