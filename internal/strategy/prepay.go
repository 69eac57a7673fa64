package strategy

import (
	"fmt"
	"math"

	"github.com/babubl/loan-restructure-pro/internal/finance"
)

// prepayHighestStrategy is the avalanche move: throw spare cash at the
// highest-rate loan so its tenure collapses while the rest of the book
// rides unchanged. Ties on rate resolve to the first loan in book order.
type prepayHighestStrategy struct{}

func (prepayHighestStrategy) ID() ID { return PrepayHighest }

func (prepayHighestStrategy) Apply(ctx Context) Outcome {
	book := ctx.Portfolio
	target := 0
	for i, l := range book {
		if l.AnnualRatePercent > book[target].AnnualRatePercent {
			target = i
		}
	}

	shrunk := int(math.Round(float64(book[target].TenureMonths) * PrepayTenureFactor))
	if shrunk < PrepayMinTenureMonths {
		shrunk = PrepayMinTenureMonths
	}

	newInterest := 0.0
	for i, l := range book {
		tenure := l.TenureMonths
		if i == target {
			tenure = shrunk
		}
		newInterest += finance.TotalInterest(l.Principal, l.AnnualRatePercent, tenure)
	}

	return Outcome{
		NewInterest:       newInterest,
		NewMonthlyPayment: ctx.Baseline.TotalMonthlyPayment * PrepayPaymentBoost,
		NewTenureMonths:   shrunk,
		Details: fmt.Sprintf(
			"Direct about 15%% extra monthly cash into the %.2f%% loan, closing it in %d months instead of %d.",
			book[target].AnnualRatePercent, shrunk, book[target].TenureMonths,
		),
	}
}
