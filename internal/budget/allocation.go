// Package budget holds the budget-form validation rules and the summary
// aggregation used by the dashboard. Everything here is pure: no storage,
// no transport, same output for the same input every time.
package budget

import (
	"strings"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/money"
)

// Field keys used in validation results.
const (
	FieldIncome      = "income"
	FieldTotalBudget = "totalBudget"
	FieldCategories  = "categories"
)

// Validation messages.
const (
	msgInvalidIncome       = "Please enter a valid income amount"
	msgInvalidTotalBudget  = "Please enter a valid total budget amount"
	msgBudgetExceedsIncome = "Total budget cannot exceed income"
	msgCategoriesExceed    = "Total of categories exceeds total budget"
)

// Category-add errors. These are non-fatal: the caller reports them and
// leaves the category list untouched.
var (
	ErrEmptyCategoryLabel = apperrors.WithMessage(apperrors.ErrInvalidInput, "Please enter a category name")
	ErrDuplicateCategory  = apperrors.WithMessage(apperrors.ErrInvalidInput, "This category already exists")
)

// CategoryInput is one allocation row as captured from the form, value
// still unparsed.
type CategoryInput struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AllocationInput is the raw budget form: all fields as entered, before any
// numeric coercion.
type AllocationInput struct {
	Income      string          `json:"income"`
	TotalBudget string          `json:"totalBudget"`
	Categories  []CategoryInput `json:"categories"`
}

// Fields maps a field key to its error message. An empty map means the
// input is valid.
type Fields map[string]string

// CategoryTotal sums the category values of the form, counting unparseable
// entries as zero. It feeds the live running total and rule 4 of
// ValidateAllocation.
func CategoryTotal(categories []CategoryInput) float64 {
	var total float64
	for _, c := range categories {
		total += money.Coerce(c.Value)
	}
	return total
}

// ValidateAllocation applies the budget submission rules and reports every
// failure at once, one message per field:
//
//  1. income must be a positive number;
//  2. totalBudget must be a positive number;
//  3. totalBudget must not exceed income (takes the totalBudget slot over
//     rule 2 when both could apply);
//  4. the category total must not exceed totalBudget (aggregate slot).
//
// Rules are evaluated independently, never short-circuited, so a user sees
// all outstanding problems after one submit.
func ValidateAllocation(in AllocationInput) Fields {
	fields := Fields{}

	if !money.IsAmount(in.Income) {
		fields[FieldIncome] = msgInvalidIncome
	}
	if !money.IsAmount(in.TotalBudget) {
		fields[FieldTotalBudget] = msgInvalidTotalBudget
	}
	if money.Coerce(in.TotalBudget) > money.Coerce(in.Income) {
		fields[FieldTotalBudget] = msgBudgetExceedsIncome
	}
	if CategoryTotal(in.Categories) > money.Coerce(in.TotalBudget) {
		fields[FieldCategories] = msgCategoriesExceed
	}

	return fields
}

// CheckAllocation is the numeric counterpart of ValidateAllocation, applied
// server-side after binding has already coerced the payload.
func CheckAllocation(income, totalBudget float64, categoryTotal float64) Fields {
	fields := Fields{}

	if income <= 0 {
		fields[FieldIncome] = msgInvalidIncome
	}
	if totalBudget <= 0 {
		fields[FieldTotalBudget] = msgInvalidTotalBudget
	}
	if totalBudget > income {
		fields[FieldTotalBudget] = msgBudgetExceedsIncome
	}
	if categoryTotal > totalBudget {
		fields[FieldCategories] = msgCategoriesExceed
	}

	return fields
}

// ClearField removes a single field's error, so a user fixing one field
// sees progress without re-validating the whole form.
func ClearField(fields Fields, name string) {
	delete(fields, name)
}

// AddCategory returns a new category list with a row appended for label.
// The label is rejected when empty after trimming or when it matches an
// existing label case-insensitively; the input slice is never mutated.
func AddCategory(categories []CategoryInput, label string) ([]CategoryInput, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return nil, ErrEmptyCategoryLabel
	}
	for _, c := range categories {
		if strings.EqualFold(c.Label, trimmed) {
			return nil, ErrDuplicateCategory
		}
	}

	out := make([]CategoryInput, len(categories), len(categories)+1)
	copy(out, categories)
	return append(out, CategoryInput{Label: trimmed}), nil
}

// DefaultCategories returns the starting allocation rows of a fresh budget
// form.
func DefaultCategories() []CategoryInput {
	return []CategoryInput{
		{Label: "Rent"},
		{Label: "Groceries"},
		{Label: "Travel"},
		{Label: "Entertainment"},
		{Label: "Savings"},
		{Label: "Others"},
	}
}
