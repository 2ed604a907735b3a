// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/loan-calculator/internal/quote"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
)

// FindQuote finds the quote for amount and years in the quotes slice.
// Returns a pointer to the quote if found, nil otherwise.
func FindQuote(quotes []quote.Quote, amount, years float64) *quote.Quote {
	for i := range quotes {
		if quotes[i].Amount == amount && quotes[i].Years == years {
			return &quotes[i]
		}
	}
	return nil
}

// AssertNear fails the test when got is further than tolerance from want.
func AssertNear(t testing.TB, name string, got, want, tolerance float64) {
	t.Helper()
	if !mathutil.WithinTolerance(got, want, tolerance) {
		t.Errorf("%s = %.4f, expected %.4f ±%v", name, got, want, tolerance)
	}
}
