package report

import (
	"fmt"
	"math"
)

// Indian-notation magnitude steps.
const (
	thousand = 1_000.0
	lakh     = 100_000.0
	crore    = 10_000_000.0
)

// FormatINR abbreviates a rupee amount into Indian notation: 12500000 →
// "₹1.25 Cr", 350000 → "₹3.50 L", 45000 → "₹45.0 K". Amounts under a
// thousand print as whole rupees. Sign is preserved.
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	switch {
	case amount >= crore:
		return fmt.Sprintf("%s₹%.2f Cr", sign, amount/crore)
	case amount >= lakh:
		return fmt.Sprintf("%s₹%.2f L", sign, amount/lakh)
	case amount >= thousand:
		return fmt.Sprintf("%s₹%.1f K", sign, amount/thousand)
	default:
		return fmt.Sprintf("%s₹%.0f", sign, math.Round(amount))
	}
}
