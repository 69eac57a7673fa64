// Package report assembles the consumer-facing restructuring report: a
// per-loan breakdown, the winning strategy, and the full side-by-side
// comparison. Presentation concerns (currency abbreviation, CSV) live here,
// never in the engine.
package report

import (
	"errors"

	"github.com/babubl/loan-restructure-pro/internal/analysis"
	"github.com/babubl/loan-restructure-pro/internal/finance"
	"github.com/babubl/loan-restructure-pro/internal/model"
	"github.com/babubl/loan-restructure-pro/internal/simulate"
)

// LoanBreakdown is one row of the report's loan table.
type LoanBreakdown struct {
	Type           string  `json:"type,omitempty"`
	Principal      float64 `json:"principal"`
	RatePercent    float64 `json:"rate"`
	TenureMonths   int     `json:"tenure_months"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayout    float64 `json:"total_payout"`
}

type Report struct {
	Label          string                    `json:"label"`
	TotalPrincipal float64                   `json:"total_principal"`
	Loans          []LoanBreakdown           `json:"loans"`
	Best           simulate.StrategyResult   `json:"best"`
	Strategies     []simulate.StrategyResult `json:"strategies"`
}

// Build composes a report from a portfolio and its full strategy
// comparison. The results slice must be non-empty (SimulateAll output).
func Build(label string, book model.Portfolio, results []simulate.StrategyResult) (Report, error) {
	best, ok := analysis.Best(results)
	if !ok {
		return Report{}, errors.New("no strategy results to report")
	}

	loans := make([]LoanBreakdown, 0, len(book))
	for _, l := range book {
		loans = append(loans, LoanBreakdown{
			Type:           l.Type,
			Principal:      l.Principal,
			RatePercent:    l.AnnualRatePercent,
			TenureMonths:   l.TenureMonths,
			MonthlyPayment: finance.MonthlyPayment(l.Principal, l.AnnualRatePercent, l.TenureMonths),
			TotalInterest:  finance.TotalInterest(l.Principal, l.AnnualRatePercent, l.TenureMonths),
			TotalPayout:    finance.TotalPayout(l.Principal, l.AnnualRatePercent, l.TenureMonths),
		})
	}

	return Report{
		Label:          label,
		TotalPrincipal: book.TotalPrincipal(),
		Loans:          loans,
		Best:           best,
		Strategies:     results,
	}, nil
}
