package money

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "₹0"},
		{"small", 500, "₹500"},
		{"thousands", 45000, "₹45,000"},
		{"lakh grouping", 123457, "₹1,23,457"},
		{"crore grouping", 12345678, "₹1,23,45,678"},
		{"rounds fractions", 99.6, "₹100"},
		{"nan renders zero", math.NaN(), "₹0"},
		{"inf renders zero", math.Inf(1), "₹0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.amount); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", "1500", 1500},
		{"decimal", "99.5", 99.5},
		{"surrounding spaces", " 250 ", 250},
		{"empty", "", 0},
		{"not a number", "abc", 0},
		{"negative coerces to zero", "-10", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Coerce(tt.in); got != tt.want {
				t.Errorf("Coerce(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsAmount(t *testing.T) {
	valid := []string{"1", "0.01", "45000", " 250 "}
	for _, s := range valid {
		if !IsAmount(s) {
			t.Errorf("IsAmount(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "0", "-5", "abc", "NaN"}
	for _, s := range invalid {
		if IsAmount(s) {
			t.Errorf("IsAmount(%q) = true, want false", s)
		}
	}
}
