package strategy

import (
	"fmt"
	"math"

	"github.com/babubl/loan-restructure-pro/internal/finance"
)

// extendTenureStrategy stretches every tenure by half at unchanged rates.
// The EMI drops; total interest normally rises, which the result surfaces
// through RawSavings.
type extendTenureStrategy struct{}

func (extendTenureStrategy) ID() ID { return ExtendTenure }

func (extendTenureStrategy) Apply(ctx Context) Outcome {
	var newInterest, newPayment float64
	for _, l := range ctx.Portfolio {
		tenure := int(math.Round(float64(l.TenureMonths) * ExtendTenureFactor))
		newInterest += finance.TotalInterest(l.Principal, l.AnnualRatePercent, tenure)
		newPayment += finance.MonthlyPayment(l.Principal, l.AnnualRatePercent, tenure)
	}

	newTenure := int(math.Round(float64(ctx.Baseline.MaxTenureMonths) * ExtendTenureFactor))
	return Outcome{
		NewInterest:       newInterest,
		NewMonthlyPayment: newPayment,
		NewTenureMonths:   newTenure,
		Details: fmt.Sprintf(
			"Stretch every tenure by 50%% to ease monthly cash flow; the longest loan runs %d months. Expect higher lifetime interest.",
			newTenure,
		),
	}
}
