package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/babubl/loan-restructure-pro/internal/model"
	"github.com/babubl/loan-restructure-pro/internal/simulate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T) Report {
	t.Helper()
	book := model.Portfolio{
		{Type: "term", Principal: 1500000, AnnualRatePercent: 11.5, TenureMonths: 60},
		{Type: "ccod", Principal: 800000, AnnualRatePercent: 13.5, TenureMonths: 12},
		{Type: "mudra", Principal: 500000, AnnualRatePercent: 10.0, TenureMonths: 36},
	}
	results, err := simulate.New().SimulateAll(book)
	require.NoError(t, err)
	rep, err := Build("Sharma Trading Co.", book, results)
	require.NoError(t, err)
	return rep
}

func TestBuild(t *testing.T) {
	rep := buildFixture(t)

	assert.Equal(t, "Sharma Trading Co.", rep.Label)
	assert.Equal(t, 2800000.0, rep.TotalPrincipal)
	require.Len(t, rep.Loans, 3)
	require.Len(t, rep.Strategies, 5)

	// Each breakdown row is internally consistent.
	for _, l := range rep.Loans {
		assert.InDelta(t, l.Principal+l.TotalInterest, l.TotalPayout, 1e-6)
		assert.Positive(t, l.MonthlyPayment)
	}

	// The best strategy is the max-savings result among the five.
	for _, r := range rep.Strategies {
		assert.LessOrEqual(t, r.Savings, rep.Best.Savings)
	}
}

func TestBuild_NoResults(t *testing.T) {
	_, err := Build("x", model.Portfolio{}, nil)
	assert.Error(t, err)
}

func TestWriteComparisonCSV(t *testing.T) {
	rep := buildFixture(t)
	path := filepath.Join(t.TempDir(), "comparison.csv")
	require.NoError(t, WriteComparisonCSV(path, rep))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 6) // header + five strategies
	assert.Equal(t, "strategy", rows[0][0])
	assert.Equal(t, "prepay_highest", rows[1][0])
	assert.Equal(t, "hybrid", rows[5][0])
}
