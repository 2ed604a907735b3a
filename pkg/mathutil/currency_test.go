package mathutil

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0, true},
		{"Negative", -42.5, true},
		{"Max float", math.MaxFloat64, true},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFinite(tt.input); result != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFiniteOrZero(t *testing.T) {
	if got := FiniteOrZero(math.NaN()); got != 0 {
		t.Errorf("FiniteOrZero(NaN) = %v, expected 0", got)
	}
	if got := FiniteOrZero(math.Inf(-1)); got != 0 {
		t.Errorf("FiniteOrZero(-Inf) = %v, expected 0", got)
	}
	if got := FiniteOrZero(-283.59); got != -283.59 {
		t.Errorf("FiniteOrZero(-283.59) = %v, expected -283.59", got)
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exact match", 283.59, 283.59, 0.01, true},
		{"Within one cent", 283.586, 283.59, 0.01, true},
		{"Outside one cent", 283.57, 283.59, 0.01, false},
		{"Loose tolerance", 529.5, 529.88, 0.5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := WithinTolerance(tt.val1, tt.val2, tt.tolerance); result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestPercentOf(t *testing.T) {
	if got := PercentOf(10); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("PercentOf(10) = %v, expected 0.1", got)
	}
	if got := PercentOf(0); got != 0 {
		t.Errorf("PercentOf(0) = %v, expected 0", got)
	}
}
