package models

// Budget is a user-defined monthly spending plan: an income ceiling, a total
// allocation, and a category breakdown. Budgets are created and listed;
// there is no edit operation. Invariant, enforced at submission time:
// sum(categories.value) <= total_budget <= income.
type Budget struct {
	Base
	UserID      string  `gorm:"type:uuid;not null;index" json:"user_id"`
	Income      float64 `gorm:"not null" json:"income"`
	TotalBudget float64 `gorm:"not null" json:"totalBudget"`

	// Relationships
	Categories []BudgetCategory `gorm:"foreignKey:BudgetID" json:"categories"`
}

// BudgetCategory is one named allocation bucket within a budget. Labels are
// unique within their budget, compared case-insensitively.
type BudgetCategory struct {
	Base
	BudgetID string  `gorm:"type:uuid;not null;index" json:"-"`
	Label    string  `gorm:"not null" json:"label"`
	Value    float64 `gorm:"not null" json:"value"`
}

// BudgetSummary is the server-computed per-category view consumed by the
// budgets dashboard: the allocation for a category and the actual spend
// recorded against it. Remaining, percent-spent, and status are derived by
// the aggregator at display time, never stored.
type BudgetSummary struct {
	Category    string  `json:"category"`
	TotalBudget float64 `json:"totalBudget"`
	Spent       float64 `json:"spent"`
}
