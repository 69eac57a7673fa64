// Package simulate runs the fixed restructuring strategies over a loan
// portfolio and reports baseline-versus-restructured totals.
package simulate

import (
	"errors"

	"github.com/babubl/loan-restructure-pro/internal/finance"
	"github.com/babubl/loan-restructure-pro/internal/model"
	"github.com/babubl/loan-restructure-pro/internal/strategy"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Simulate prices one strategy against a portfolio snapshot.
//
// An empty portfolio is a precondition violation and errors out. An
// identifier outside the fixed set is a defined fallback, not a failure:
// the baseline passes through unchanged with zero savings and no details.
func (e *Engine) Simulate(book model.Portfolio, id strategy.ID) (StrategyResult, error) {
	if len(book) == 0 {
		return StrategyResult{}, errors.New("empty portfolio")
	}

	base := computeBaseline(book)

	outcome := strategy.Outcome{
		NewInterest:       base.TotalInterest,
		NewMonthlyPayment: base.TotalMonthlyPayment,
		NewTenureMonths:   base.MaxTenureMonths,
	}
	if s, ok := strategy.ByID(id); ok {
		outcome = s.Apply(strategy.Context{Portfolio: book, Baseline: base})
	}

	rawSavings := base.TotalInterest - outcome.NewInterest
	savings := rawSavings
	if savings < 0 {
		savings = 0
	}
	savingsPercent := 0.0
	if base.TotalInterest > 0 {
		savingsPercent = savings / base.TotalInterest * 100
	}

	return StrategyResult{
		Strategy:              id,
		TotalPrincipal:        base.TotalPrincipal,
		CurrentTotalInterest:  base.TotalInterest,
		CurrentMonthlyPayment: base.TotalMonthlyPayment,
		CurrentTotalPayout:    base.TotalPayout,
		NewTotalInterest:      outcome.NewInterest,
		NewMonthlyPayment:     outcome.NewMonthlyPayment,
		NewTenureMonths:       outcome.NewTenureMonths,
		Savings:               savings,
		RawSavings:            rawSavings,
		MonthlyDelta:          base.TotalMonthlyPayment - outcome.NewMonthlyPayment,
		SavingsPercent:        savingsPercent,
		Details:               outcome.Details,
	}, nil
}

// SimulateAll runs every strategy in declaration order.
func (e *Engine) SimulateAll(book model.Portfolio) ([]StrategyResult, error) {
	if len(book) == 0 {
		return nil, errors.New("empty portfolio")
	}
	results := make([]StrategyResult, 0, len(strategy.All))
	for _, id := range strategy.All {
		res, err := e.Simulate(book, id)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func computeBaseline(book model.Portfolio) strategy.Baseline {
	base := strategy.Baseline{
		TotalPrincipal:  book.TotalPrincipal(),
		MaxTenureMonths: book.MaxTenureMonths(),
	}
	for _, l := range book {
		base.TotalInterest += finance.TotalInterest(l.Principal, l.AnnualRatePercent, l.TenureMonths)
		base.TotalMonthlyPayment += finance.MonthlyPayment(l.Principal, l.AnnualRatePercent, l.TenureMonths)
	}
	base.TotalPayout = base.TotalPrincipal + base.TotalInterest
	return base
}
