// Package finance implements reducing-balance amortization math for a
// single loan. Everything here is a pure function over float64 inputs;
// degenerate inputs short-circuit to zero instead of erroring, so callers
// own precondition discipline (see model.Portfolio.Validate).
package finance

import (
	"math"

	"github.com/babubl/loan-restructure-pro/internal/model"
)

// MonthlyPayment returns the EMI for a reducing-balance loan.
//
// payment = P * r * (1+r)^n / ((1+r)^n - 1), with r the monthly fractional
// rate. A zero rate degrades to straight-line P/n. Non-positive principal
// or tenure yields 0.
func MonthlyPayment(principal, annualRatePercent float64, tenureMonths int) float64 {
	if principal <= 0 || tenureMonths <= 0 {
		return 0
	}
	r := annualRatePercent / 100 / 12
	n := float64(tenureMonths)
	if r == 0 {
		return principal / n
	}
	growth := math.Pow(1+r, n)
	return principal * r * growth / (growth - 1)
}

// TotalInterest is payment*n - principal. It can go negative only for
// degenerate inputs where MonthlyPayment short-circuits to 0.
func TotalInterest(principal, annualRatePercent float64, tenureMonths int) float64 {
	payment := MonthlyPayment(principal, annualRatePercent, tenureMonths)
	return payment*float64(tenureMonths) - principal
}

// TotalPayout is principal plus total interest over the full tenure.
func TotalPayout(principal, annualRatePercent float64, tenureMonths int) float64 {
	return principal + TotalInterest(principal, annualRatePercent, tenureMonths)
}

// WeightedAverageRate is the principal-weighted mean rate across the book.
// Returns 0 when the book carries no principal.
func WeightedAverageRate(p model.Portfolio) float64 {
	totalPrincipal := p.TotalPrincipal()
	if totalPrincipal <= 0 {
		return 0
	}
	weighted := 0.0
	for _, l := range p {
		weighted += l.Principal * l.AnnualRatePercent
	}
	return weighted / totalPrincipal
}
