// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/loan-calculator/pkg/constants"
	"github.com/iwvelando/loan-calculator/pkg/mathutil"
)

// CalculateMonthlyPayment calculates the fixed monthly payment for a loan
// using the standard amortization formula
//
//	M = P * (r * (1+r)^n) / ((1+r)^n - 1)
//
// with r the monthly rate and n = years * 12. A non-finite result is
// reported as 0. This covers a zero term and also a zero rate, which makes
// the expression 0/0; an interest free loan therefore yields 0, not P/n.
// A negative principal is not rejected.
func CalculateMonthlyPayment(principal, annualInterestRate, years float64) float64 {
	periodicInterestRate := mathutil.PercentOf(annualInterestRate) / constants.MonthsPerYear
	payments := years * constants.MonthsPerYear
	power := math.Pow(1.00+periodicInterestRate, payments)
	payment := principal * (periodicInterestRate * power) / (power - 1.00)
	return mathutil.FiniteOrZero(payment)
}

// CalculateTotalRepayable returns the sum of every monthly payment over the term.
func CalculateTotalRepayable(monthlyPayment, years float64) float64 {
	return mathutil.FiniteOrZero(monthlyPayment * years * constants.MonthsPerYear)
}

// CalculateTotalInterest returns the interest paid over the term. When the
// monthly payment collapsed to 0 there is nothing repaid, so 0 is returned
// rather than a negative interest figure.
func CalculateTotalInterest(principal, monthlyPayment, years float64) float64 {
	if monthlyPayment == 0 {
		return 0
	}
	return mathutil.FiniteOrZero(CalculateTotalRepayable(monthlyPayment, years) - principal)
}
