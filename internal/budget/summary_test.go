package budget

import (
	"testing"

	"ledgerly/internal/models"
)

func TestSummarize(t *testing.T) {
	t.Run("under budget", func(t *testing.T) {
		r := Summarize(models.BudgetSummary{Category: "Rent", TotalBudget: 1000, Spent: 250})
		if r.Remaining != 750 {
			t.Errorf("expected remaining 750, got %v", r.Remaining)
		}
		if r.PercentSpent != 25 {
			t.Errorf("expected 25%%, got %v", r.PercentSpent)
		}
		if r.Status != StatusOnTrack {
			t.Errorf("expected %q, got %q", StatusOnTrack, r.Status)
		}
	})

	t.Run("over budget", func(t *testing.T) {
		r := Summarize(models.BudgetSummary{Category: "Travel", TotalBudget: 1000, Spent: 1600})
		if r.Remaining != -600 {
			t.Errorf("expected remaining -600, got %v", r.Remaining)
		}
		if r.PercentSpent != 100 {
			t.Errorf("percent must clamp at 100, got %v", r.PercentSpent)
		}
		if r.Status != StatusOverBudget {
			t.Errorf("expected %q, got %q", StatusOverBudget, r.Status)
		}
	})

	t.Run("exactly on budget stays on track", func(t *testing.T) {
		r := Summarize(models.BudgetSummary{Category: "Food", TotalBudget: 500, Spent: 500})
		if r.Remaining != 0 {
			t.Errorf("expected remaining 0, got %v", r.Remaining)
		}
		if r.Status != StatusOnTrack {
			t.Errorf("expected %q, got %q", StatusOnTrack, r.Status)
		}
	})

	t.Run("zero allocation never divides by zero", func(t *testing.T) {
		r := Summarize(models.BudgetSummary{Category: "Misc", TotalBudget: 0, Spent: 100})
		if r.PercentSpent != 0 {
			t.Errorf("expected 0%%, got %v", r.PercentSpent)
		}
		if r.Status != StatusOverBudget {
			t.Errorf("expected %q, got %q", StatusOverBudget, r.Status)
		}
	})
}
