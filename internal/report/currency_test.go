package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{12500000, "₹1.25 Cr"},
		{10000000, "₹1.00 Cr"},
		{350000, "₹3.50 L"},
		{100000, "₹1.00 L"},
		{45000, "₹45.0 K"},
		{999, "₹999"},
		{0, "₹0"},
		{-350000, "-₹3.50 L"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.amount), "amount %v", tc.amount)
	}
}
