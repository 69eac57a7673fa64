package strategy

import (
	"fmt"
	"math"

	"github.com/babubl/loan-restructure-pro/internal/finance"
)

// balanceTransferStrategy reprices every loan strictly above the high-rate
// threshold at the fixed transfer rate, tenure unchanged. Loans at or below
// the threshold are never touched.
type balanceTransferStrategy struct{}

func (balanceTransferStrategy) ID() ID { return BalanceTransfer }

func (balanceTransferStrategy) Apply(ctx Context) Outcome {
	var newInterest, newPayment, transferred float64
	moved := 0
	for _, l := range ctx.Portfolio {
		rate := l.AnnualRatePercent
		if rate > HighRateThresholdPercent {
			rate = TransferRatePercent
			transferred += l.Principal
			moved++
		}
		newInterest += finance.TotalInterest(l.Principal, rate, l.TenureMonths)
		newPayment += finance.MonthlyPayment(l.Principal, rate, l.TenureMonths)
	}

	// The 1% fee never enters the totals; it only sets the payback figure
	// quoted in the rationale.
	reduction := ctx.Baseline.TotalMonthlyPayment - newPayment
	recoveryMonths := DefaultRecoveryMonths
	if reduction > 0 {
		recoveryMonths = int(math.Round(transferred * TransferFeeRate / reduction))
	}

	return Outcome{
		NewInterest:       newInterest,
		NewMonthlyPayment: newPayment,
		NewTenureMonths:   ctx.Baseline.MaxTenureMonths,
		Details: fmt.Sprintf(
			"Transfer %d loan(s) above %.0f%% (principal %.0f) to a %.2f%% lender; the 1%% transfer fee recovers in about %d months.",
			moved, HighRateThresholdPercent, transferred, TransferRatePercent, recoveryMonths,
		),
	}
}
