package strategy

import (
	"fmt"
	"math"

	"github.com/babubl/loan-restructure-pro/internal/finance"
)

// consolidateStrategy folds the entire book into one loan at a discount to
// the principal-weighted average rate, over a slightly stretched tenure.
type consolidateStrategy struct{}

func (consolidateStrategy) ID() ID { return Consolidate }

func (consolidateStrategy) Apply(ctx Context) Outcome {
	weightedAvg := finance.WeightedAverageRate(ctx.Portfolio)
	newRate := weightedAvg - ConsolidationDiscountPercent
	if newRate < ConsolidationFloorPercent {
		newRate = ConsolidationFloorPercent
	}

	newTenure := int(math.Round(float64(ctx.Baseline.MaxTenureMonths) * ConsolidateTenureFactor))
	principal := ctx.Baseline.TotalPrincipal

	return Outcome{
		NewInterest:       finance.TotalInterest(principal, newRate, newTenure),
		NewMonthlyPayment: finance.MonthlyPayment(principal, newRate, newTenure),
		NewTenureMonths:   newTenure,
		Details: fmt.Sprintf(
			"Consolidate all loans into one facility at %.2f%% (weighted average %.2f%% less %.1f%%, floored at %.1f%%) over %d months.",
			newRate, weightedAvg, ConsolidationDiscountPercent, ConsolidationFloorPercent, newTenure,
		),
	}
}
