package strategy

import (
	"fmt"
	"math"
	"sort"

	"github.com/babubl/loan-restructure-pro/internal/finance"
)

// hybridStrategy combines a transfer with prepayment pressure: the costlier
// half of the book (ceil(n/2) loans by rate) moves to the transfer rate with
// tenures cut to 80%, the cheaper half stays as-is. Equal-rate loans keep
// book order before the split.
type hybridStrategy struct{}

func (hybridStrategy) ID() ID { return Hybrid }

func (hybridStrategy) Apply(ctx Context) Outcome {
	book := ctx.Portfolio
	order := make([]int, len(book))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return book[order[a]].AnnualRatePercent > book[order[b]].AnnualRatePercent
	})

	upper := (len(book) + 1) / 2
	restructure := make(map[int]bool, upper)
	for _, idx := range order[:upper] {
		restructure[idx] = true
	}

	var newInterest, newPayment float64
	for i, l := range book {
		rate, tenure := l.AnnualRatePercent, l.TenureMonths
		if restructure[i] {
			rate = TransferRatePercent
			tenure = int(math.Round(float64(l.TenureMonths) * HybridTenureFactor))
		}
		newInterest += finance.TotalInterest(l.Principal, rate, tenure)
		newPayment += finance.MonthlyPayment(l.Principal, rate, tenure)
	}

	return Outcome{
		NewInterest:       newInterest,
		NewMonthlyPayment: newPayment,
		NewTenureMonths:   ctx.Baseline.MaxTenureMonths,
		Details: fmt.Sprintf(
			"Move the %d costliest loan(s) to %.2f%% with tenures cut to 80%%; keep the remaining %d unchanged.",
			upper, TransferRatePercent, len(book)-upper,
		),
	}
}
