// Package money provides the currency formatting and numeric coercion used
// across the budget and ledger views. Amounts are Indian Rupees displayed
// with no fractional digits and en-IN digit grouping.
package money

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.MustParse("en-IN"))

// Format renders an amount as Indian Rupees with zero fractional digits,
// e.g. 123456.7 -> "₹1,23,457". Non-finite input renders as the zero
// amount; Format never panics.
func Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("₹%v", number.Decimal(math.Round(amount), number.MaxFractionDigits(0)))
}

// Coerce parses a decimal string as a non-negative amount. Empty,
// unparseable, or negative input coerces to 0. It backs live running
// totals; rejecting bad input outright is the job of submission-time
// validation, not Coerce.
func Coerce(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// IsAmount reports whether s parses as a strictly positive amount. It is the
// submission-time counterpart of Coerce.
func IsAmount(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
