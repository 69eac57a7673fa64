package model

import "errors"

// Loan describes one facility in a borrower's book.
// Units:
// - Principal: rupees
// - AnnualRatePercent: nominal annual rate, percent (11.5 means 11.5%)
// - TenureMonths: remaining tenure in months
type Loan struct {
	// Type is the preset key the loan was created from ("term", "ccod", ...).
	// It is carried for presentation only and never affects calculations.
	Type              string  `json:"type,omitempty" yaml:"type,omitempty"`
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"rate" yaml:"rate"`
	TenureMonths      int     `json:"tenure_months" yaml:"tenure_months"`
}

// Portfolio is an ordered set of loans. Aggregates are order-independent;
// order only matters as a tie-break where strategies sort by rate.
type Portfolio []Loan

// TotalPrincipal sums the outstanding principal across the book.
func (p Portfolio) TotalPrincipal() float64 {
	total := 0.0
	for _, l := range p {
		total += l.Principal
	}
	return total
}

// MaxTenureMonths returns the longest remaining tenure, 0 for an empty book.
func (p Portfolio) MaxTenureMonths() int {
	max := 0
	for _, l := range p {
		if l.TenureMonths > max {
			max = l.TenureMonths
		}
	}
	return max
}

// Validate rejects portfolios the engine cannot price. The calculator itself
// degrades gracefully on bad numbers; this is the caller-boundary guard.
func (p Portfolio) Validate() error {
	if len(p) == 0 {
		return errors.New("empty portfolio")
	}
	for _, l := range p {
		if l.Principal <= 0 {
			return errors.New("loan principal must be > 0")
		}
		if l.AnnualRatePercent < 0 {
			return errors.New("loan rate must be >= 0")
		}
		if l.TenureMonths <= 0 {
			return errors.New("loan tenure must be > 0 months")
		}
	}
	return nil
}
