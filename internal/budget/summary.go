package budget

import "ledgerly/internal/models"

// Status classifies a summary by whether its spend fits the allocation.
const (
	StatusOnTrack    = "On Track"
	StatusOverBudget = "Over Budget"
)

// Report is a fully derived view of one BudgetSummary. Nothing in it is
// stored; it is recomputed from the summary on every render.
type Report struct {
	Category     string  `json:"category"`
	TotalBudget  float64 `json:"totalBudget"`
	Spent        float64 `json:"spent"`
	Remaining    float64 `json:"remaining"`
	PercentSpent float64 `json:"percentSpent"`
	Status       string  `json:"status"`
}

// Summarize derives remaining amount, spent percentage, and status from a
// budget summary. PercentSpent is clamped to [0,100]; a zero allocation
// yields 0%, never NaN or Inf. Overspend shows as negative remaining with
// PercentSpent pinned at 100.
func Summarize(s models.BudgetSummary) Report {
	remaining := s.TotalBudget - s.Spent

	var pct float64
	if s.TotalBudget > 0 {
		pct = s.Spent / s.TotalBudget * 100
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	status := StatusOnTrack
	if remaining < 0 {
		status = StatusOverBudget
	}

	return Report{
		Category:     s.Category,
		TotalBudget:  s.TotalBudget,
		Spent:        s.Spent,
		Remaining:    remaining,
		PercentSpent: pct,
		Status:       status,
	}
}
