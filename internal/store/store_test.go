package store

import (
	"testing"

	"ledgerly/internal/budget"
)

func TestBudgetInputFromForm(t *testing.T) {
	in := BudgetInputFromForm(budget.AllocationInput{
		Income:      "50000",
		TotalBudget: "40000",
		Categories: []budget.CategoryInput{
			{Label: "Rent", Value: "15000"},
			{Label: "Others", Value: ""},
		},
	})

	if in.Income != 50000 || in.TotalBudget != 40000 {
		t.Errorf("unexpected totals: %+v", in)
	}
	if len(in.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(in.Categories))
	}
	if in.Categories[0].Value != 15000 {
		t.Errorf("expected coerced value 15000, got %v", in.Categories[0].Value)
	}
	if in.Categories[1].Value != 0 {
		t.Errorf("empty value must coerce to 0, got %v", in.Categories[1].Value)
	}
}
