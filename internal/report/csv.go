package report

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteComparisonCSV writes the strategy comparison table, one row per
// strategy in the order they appear in the report.
func WriteComparisonCSV(path string, rep Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"strategy",
		"total_principal",
		"current_total_interest",
		"current_monthly_payment",
		"current_total_payout",
		"new_total_interest",
		"new_monthly_payment",
		"new_tenure_months",
		"savings",
		"raw_savings",
		"monthly_delta",
		"savings_percent",
		"details",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rep.Strategies {
		row := []string{
			string(r.Strategy),
			fmtFloat(r.TotalPrincipal),
			fmtFloat(r.CurrentTotalInterest),
			fmtFloat(r.CurrentMonthlyPayment),
			fmtFloat(r.CurrentTotalPayout),
			fmtFloat(r.NewTotalInterest),
			fmtFloat(r.NewMonthlyPayment),
			strconv.Itoa(r.NewTenureMonths),
			fmtFloat(r.Savings),
			fmtFloat(r.RawSavings),
			fmtFloat(r.MonthlyDelta),
			fmtFloat(r.SavingsPercent),
			r.Details,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
