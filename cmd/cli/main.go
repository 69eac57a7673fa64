package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/babubl/loan-restructure-pro/internal/analysis"
	"github.com/babubl/loan-restructure-pro/internal/config"
	"github.com/babubl/loan-restructure-pro/internal/report"
	"github.com/babubl/loan-restructure-pro/internal/simulate"
	"github.com/babubl/loan-restructure-pro/internal/strategy"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "report":
		cmdReport(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --portfolio examples/portfolio.yaml --strategy consolidate")
	fmt.Println("  cli compare  --portfolio examples/portfolio.yaml [--out results/comparison.csv]")
	fmt.Println("  cli report   --portfolio examples/portfolio.yaml [--label \"My Business\"]")
	fmt.Println("")
	fmt.Println("strategies:")
	for _, info := range strategy.Catalog() {
		fmt.Printf("  %-16s %s\n", info.ID, info.Description)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	portfolioPath := fs.String("portfolio", "", "Path to YAML portfolio file")
	strategyID := fs.String("strategy", "", "Strategy identifier")
	_ = fs.Parse(args)

	if *portfolioPath == "" || *strategyID == "" {
		fmt.Println("--portfolio and --strategy are required")
		os.Exit(2)
	}

	_, book, err := config.LoadPortfolio(*portfolioPath)
	if err != nil {
		fatal(err)
	}

	res, err := simulate.New().Simulate(book, strategy.ID(*strategyID))
	if err != nil {
		fatal(err)
	}

	fmt.Printf("strategy:        %s\n", res.Strategy)
	fmt.Printf("principal:       %s\n", report.FormatINR(res.TotalPrincipal))
	fmt.Printf("interest now:    %s\n", report.FormatINR(res.CurrentTotalInterest))
	fmt.Printf("interest after:  %s\n", report.FormatINR(res.NewTotalInterest))
	fmt.Printf("EMI now/after:   %s / %s\n",
		report.FormatINR(res.CurrentMonthlyPayment), report.FormatINR(res.NewMonthlyPayment))
	fmt.Printf("new tenure:      %d months\n", res.NewTenureMonths)
	fmt.Printf("savings:         %s (%.1f%%)\n", report.FormatINR(res.Savings), res.SavingsPercent)
	if res.Details != "" {
		fmt.Printf("details:         %s\n", res.Details)
	}
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	portfolioPath := fs.String("portfolio", "", "Path to YAML portfolio file")
	outPath := fs.String("out", "", "Optional CSV output path")
	_ = fs.Parse(args)

	if *portfolioPath == "" {
		fmt.Println("--portfolio is required")
		os.Exit(2)
	}

	label, book, err := config.LoadPortfolio(*portfolioPath)
	if err != nil {
		fatal(err)
	}

	results, err := simulate.New().SimulateAll(book)
	if err != nil {
		fatal(err)
	}

	ranked := analysis.RankBySavings(results)
	fmt.Printf("%-4s %-18s %-12s %-12s %-12s %-10s\n",
		"rank", "strategy", "interest", "EMI", "savings", "tenure")
	for _, r := range ranked {
		fmt.Printf("%-4d %-18s %-12s %-12s %-12s %-10d\n",
			r.Rank,
			r.Strategy,
			report.FormatINR(r.NewTotalInterest),
			report.FormatINR(r.NewMonthlyPayment),
			report.FormatINR(r.Savings),
			r.NewTenureMonths,
		)
	}

	if *outPath != "" {
		rep, err := report.Build(label, book, results)
		if err != nil {
			fatal(err)
		}
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			fatal(err)
		}
		if err := report.WriteComparisonCSV(*outPath, rep); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote %d strategies to %s\n", len(results), *outPath)
	}
}

func cmdReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	portfolioPath := fs.String("portfolio", "", "Path to YAML portfolio file")
	label := fs.String("label", "", "Report label (defaults to the portfolio file's label)")
	_ = fs.Parse(args)

	if *portfolioPath == "" {
		fmt.Println("--portfolio is required")
		os.Exit(2)
	}

	fileLabel, book, err := config.LoadPortfolio(*portfolioPath)
	if err != nil {
		fatal(err)
	}
	if *label == "" {
		*label = fileLabel
	}

	results, err := simulate.New().SimulateAll(book)
	if err != nil {
		fatal(err)
	}
	rep, err := report.Build(*label, book, results)
	if err != nil {
		fatal(err)
	}

	if rep.Label != "" {
		fmt.Printf("Restructuring report: %s\n\n", rep.Label)
	}
	fmt.Printf("%-12s %-12s %-8s %-8s %-12s %-12s\n",
		"type", "principal", "rate", "tenure", "EMI", "interest")
	for _, l := range rep.Loans {
		fmt.Printf("%-12s %-12s %-8.2f %-8d %-12s %-12s\n",
			l.Type,
			report.FormatINR(l.Principal),
			l.RatePercent,
			l.TenureMonths,
			report.FormatINR(l.MonthlyPayment),
			report.FormatINR(l.TotalInterest),
		)
	}
	fmt.Printf("\nBest strategy: %s saves %s (%.1f%% of current interest)\n",
		rep.Best.Strategy, report.FormatINR(rep.Best.Savings), rep.Best.SavingsPercent)
	if rep.Best.Details != "" {
		fmt.Printf("  %s\n", rep.Best.Details)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
