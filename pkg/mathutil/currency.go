// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-calculator/pkg/constants"
)

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// FiniteOrZero returns val, or 0 when val is NaN or infinite.
func FiniteOrZero(val float64) float64 {
	if !IsFinite(val) {
		return 0
	}
	return val
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// PercentOf converts a percentage such as 10 into the fraction 0.1.
func PercentOf(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}
