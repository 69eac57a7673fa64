// Package analysis picks apart a full strategy comparison: which strategy
// wins and how the rest stack up.
package analysis

import (
	"sort"

	"github.com/babubl/loan-restructure-pro/internal/simulate"
)

type RankedResult struct {
	Rank int `json:"rank"`
	simulate.StrategyResult
}

// Best returns the result with the maximum savings. Ties resolve to the
// first maximum in the order the results were produced (strategy
// declaration order when they come from SimulateAll). ok is false for an
// empty slice.
func Best(results []simulate.StrategyResult) (simulate.StrategyResult, bool) {
	if len(results) == 0 {
		return simulate.StrategyResult{}, false
	}
	best := results[0]
	for _, r := range results[1:] {
		if r.Savings > best.Savings {
			best = r
		}
	}
	return best, true
}

// RankBySavings sorts descending by savings, stably, so equal-savings
// strategies keep declaration order, and numbers the ranks from 1.
func RankBySavings(results []simulate.StrategyResult) []RankedResult {
	out := make([]RankedResult, 0, len(results))
	for _, r := range results {
		out = append(out, RankedResult{StrategyResult: r})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Savings > out[j].Savings
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
