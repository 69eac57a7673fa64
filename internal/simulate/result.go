package simulate

import "github.com/babubl/loan-restructure-pro/internal/strategy"

// StrategyResult is the engine's output for one portfolio snapshot and one
// strategy. It is derived, never stored: recomputing with the same inputs
// yields an identical value.
type StrategyResult struct {
	Strategy strategy.ID `json:"strategy"`

	TotalPrincipal        float64 `json:"total_principal"`
	CurrentTotalInterest  float64 `json:"current_total_interest"`
	CurrentMonthlyPayment float64 `json:"current_monthly_payment"`
	CurrentTotalPayout    float64 `json:"current_total_payout"`

	NewTotalInterest  float64 `json:"new_total_interest"`
	NewMonthlyPayment float64 `json:"new_monthly_payment"`
	NewTenureMonths   int     `json:"new_tenure_months"`

	// Savings is floored at zero; RawSavings keeps the sign so strategies
	// that increase lifetime interest remain visible.
	Savings        float64 `json:"savings"`
	RawSavings     float64 `json:"raw_savings"`
	MonthlyDelta   float64 `json:"monthly_delta"`
	SavingsPercent float64 `json:"savings_percent"`

	Details string `json:"details"`
}
