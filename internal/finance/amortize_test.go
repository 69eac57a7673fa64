package finance

import (
	"testing"

	"github.com/babubl/loan-restructure-pro/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	assert.Equal(t, 10000.0, MonthlyPayment(120000, 0, 12))
}

func TestMonthlyPayment_ReferenceAnnuity(t *testing.T) {
	// 15L at 11.5% over 60 months, cross-checked against a standard
	// amortization table.
	emi := MonthlyPayment(1500000, 11.5, 60)
	assert.InDelta(t, 33000, emi, 40)
}

func TestMonthlyPayment_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 0.0, MonthlyPayment(0, 10, 12))
	assert.Equal(t, 0.0, MonthlyPayment(-5000, 10, 12))
	assert.Equal(t, 0.0, MonthlyPayment(100000, 10, 0))
	assert.Equal(t, 0.0, MonthlyPayment(100000, 10, -3))
}

func TestTotalInterest_IdentityWithPayment(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		tenure    int
	}{
		{1500000, 11.5, 60},
		{800000, 13.5, 12},
		{500000, 10.0, 36},
		{250000, 0, 24},
	}
	for _, tc := range cases {
		payment := MonthlyPayment(tc.principal, tc.rate, tc.tenure)
		want := payment*float64(tc.tenure) - tc.principal
		assert.InDelta(t, want, TotalInterest(tc.principal, tc.rate, tc.tenure), 1e-6)
	}
}

func TestTotalInterest_NonPositiveTenureGoesNegative(t *testing.T) {
	// Payment short-circuits to 0, leaving interest at -principal. Callers
	// guard tenure; the calculator does not.
	assert.Equal(t, -100000.0, TotalInterest(100000, 10, 0))
}

func TestTotalPayout(t *testing.T) {
	payout := TotalPayout(120000, 0, 12)
	assert.Equal(t, 120000.0, payout)
}

func TestWeightedAverageRate(t *testing.T) {
	book := model.Portfolio{
		{Principal: 1500000, AnnualRatePercent: 11.5, TenureMonths: 60},
		{Principal: 800000, AnnualRatePercent: 13.5, TenureMonths: 12},
		{Principal: 500000, AnnualRatePercent: 10.0, TenureMonths: 36},
	}
	assert.InDelta(t, 11.8036, WeightedAverageRate(book), 1e-3)
	assert.Equal(t, 0.0, WeightedAverageRate(model.Portfolio{}))
}
