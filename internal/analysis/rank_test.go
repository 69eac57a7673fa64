package analysis

import (
	"testing"

	"github.com/babubl/loan-restructure-pro/internal/simulate"
	"github.com/babubl/loan-restructure-pro/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func results(savings ...float64) []simulate.StrategyResult {
	out := make([]simulate.StrategyResult, len(savings))
	for i, s := range savings {
		out[i] = simulate.StrategyResult{
			Strategy: strategy.All[i%len(strategy.All)],
			Savings:  s,
		}
	}
	return out
}

func TestBest_FirstMaximumWinsTies(t *testing.T) {
	rs := results(5, 10, 10, 3)
	best, ok := Best(rs)
	require.True(t, ok)
	assert.Equal(t, rs[1].Strategy, best.Strategy)
	assert.Equal(t, 10.0, best.Savings)
}

func TestBest_Empty(t *testing.T) {
	_, ok := Best(nil)
	assert.False(t, ok)
}

func TestRankBySavings_StableDescending(t *testing.T) {
	rs := results(5, 10, 10, 3)
	ranked := RankBySavings(rs)
	require.Len(t, ranked, 4)

	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, rs[1].Strategy, ranked[0].Strategy)
	// Equal savings keep input order.
	assert.Equal(t, rs[2].Strategy, ranked[1].Strategy)
	assert.Equal(t, rs[0].Strategy, ranked[2].Strategy)
	assert.Equal(t, rs[3].Strategy, ranked[3].Strategy)
	assert.Equal(t, 4, ranked[3].Rank)

	// Input slice is untouched.
	assert.Equal(t, 5.0, rs[0].Savings)
}
