package main

import (
	"fmt"

	"github.com/babubl/loan-restructure-pro/internal/analysis"
	"github.com/babubl/loan-restructure-pro/internal/model"
	"github.com/babubl/loan-restructure-pro/internal/report"
	"github.com/babubl/loan-restructure-pro/internal/simulate"
)

// Demo:
// - Build a typical MSME book from the loan-type presets
// - Run all five restructuring strategies
// - Print the comparison and the winning strategy
func main() {
	book := model.Portfolio{
		{Type: "term", Principal: 1500000, AnnualRatePercent: 11.5, TenureMonths: 60},
		{Type: "ccod", Principal: 800000, AnnualRatePercent: 13.5, TenureMonths: 12},
		{Type: "mudra", Principal: 500000, AnnualRatePercent: 10.0, TenureMonths: 36},
	}

	results, err := simulate.New().SimulateAll(book)
	if err != nil {
		panic(err)
	}

	baseline := results[0]
	fmt.Printf("Book: %s principal, %s lifetime interest, %s/month\n\n",
		report.FormatINR(baseline.TotalPrincipal),
		report.FormatINR(baseline.CurrentTotalInterest),
		report.FormatINR(baseline.CurrentMonthlyPayment),
	)

	for _, r := range results {
		fmt.Printf("%-18s savings=%-12s EMI=%-12s tenure=%dmo\n",
			r.Strategy,
			report.FormatINR(r.Savings),
			report.FormatINR(r.NewMonthlyPayment),
			r.NewTenureMonths,
		)
	}

	if best, ok := analysis.Best(results); ok {
		fmt.Printf("\nBest: %s (%s saved, %.1f%%)\n  %s\n",
			best.Strategy, report.FormatINR(best.Savings), best.SavingsPercent, best.Details)
	}
}
