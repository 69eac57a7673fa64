package models

import (
	"github.com/babubl/loan-restructure-pro/internal/analysis"
	"github.com/babubl/loan-restructure-pro/internal/simulate"
)

// SimulateResponse wraps a single strategy result.
type SimulateResponse struct {
	Result simulate.StrategyResult `json:"result"`
}

// CompareResponse carries the full comparison: every strategy in
// declaration order, the winner, and the savings ranking.
type CompareResponse struct {
	Results  []simulate.StrategyResult `json:"results"`
	Best     simulate.StrategyResult   `json:"best"`
	Rankings []analysis.RankedResult   `json:"rankings"`
}

// ErrorResponse is the error envelope for every failure path.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
