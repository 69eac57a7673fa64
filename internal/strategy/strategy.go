package strategy

import "github.com/babubl/loan-restructure-pro/internal/model"

// ID names one of the fixed restructuring strategies.
type ID string

const (
	PrepayHighest   ID = "prepay_highest"
	Consolidate     ID = "consolidate"
	BalanceTransfer ID = "balance_transfer"
	ExtendTenure    ID = "extend_tenure"
	Hybrid          ID = "hybrid"
)

// All lists the strategies in declaration order. Best-strategy tie-breaks
// and report column order both follow this slice.
var All = []ID{PrepayHighest, Consolidate, BalanceTransfer, ExtendTenure, Hybrid}

// Baseline carries the current-state aggregates of a portfolio, computed
// once by the engine and shared by every transform.
type Baseline struct {
	TotalPrincipal      float64
	TotalInterest       float64
	TotalMonthlyPayment float64
	TotalPayout         float64
	MaxTenureMonths     int
}

type Context struct {
	Portfolio model.Portfolio
	Baseline  Baseline
}

// Outcome is what a transform proposes: the restructured book's totals, a
// single representative tenure, and a human-readable rationale.
type Outcome struct {
	NewInterest       float64
	NewMonthlyPayment float64
	NewTenureMonths   int
	Details           string
}

// Strategy is a pure transform from a portfolio snapshot to an Outcome.
// Implementations hold no state, so repeated application is deterministic.
type Strategy interface {
	ID() ID
	Apply(ctx Context) Outcome
}

var registry = map[ID]Strategy{
	PrepayHighest:   prepayHighestStrategy{},
	Consolidate:     consolidateStrategy{},
	BalanceTransfer: balanceTransferStrategy{},
	ExtendTenure:    extendTenureStrategy{},
	Hybrid:          hybridStrategy{},
}

// ByID resolves a strategy; ok is false for identifiers outside the fixed set.
func ByID(id ID) (Strategy, bool) {
	s, ok := registry[id]
	return s, ok
}

// Info describes a strategy for listing endpoints and report headers.
type Info struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Catalog returns strategy metadata in declaration order.
func Catalog() []Info {
	return []Info{
		{
			ID:          PrepayHighest,
			Name:        "Prepay Costliest Loan",
			Description: "Redirect about 15% more monthly cash flow into the highest-rate loan, cutting its tenure to roughly two-thirds.",
		},
		{
			ID:          Consolidate,
			Name:        "Consolidate",
			Description: "Replace the whole book with a single loan at a discounted principal-weighted rate over a slightly longer tenure.",
		},
		{
			ID:          BalanceTransfer,
			Name:        "Balance Transfer",
			Description: "Move every loan above the high-rate threshold to a fixed transfer rate with tenure unchanged; a 1% fee applies to the transferred principal.",
		},
		{
			ID:          ExtendTenure,
			Name:        "Extend Tenure",
			Description: "Stretch every tenure by half to lower the monthly outgo. Total interest usually rises.",
		},
		{
			ID:          Hybrid,
			Name:        "Hybrid",
			Description: "Transfer the costlier half of the book to the transfer rate with shortened tenures; leave the cheaper half alone.",
		},
	}
}
