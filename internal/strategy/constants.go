package strategy

// Tuning constants for the fixed strategies. These model a typical
// restructuring offer sheet and are deliberately not configurable.
const (
	// TransferRatePercent is the fixed rate a transfer lender offers.
	TransferRatePercent = 9.75

	// HighRateThresholdPercent splits the book for balance transfers:
	// strictly above it a loan is worth moving, at or below it stays.
	HighRateThresholdPercent = 11.0

	// ConsolidationDiscountPercent comes off the weighted average rate when
	// the book is folded into a single loan; ConsolidationFloorPercent is
	// the lowest rate any consolidation lender realistically quotes.
	ConsolidationDiscountPercent = 2.5
	ConsolidationFloorPercent    = 9.5

	// ConsolidateTenureFactor stretches the longest tenure slightly so the
	// consolidated EMI stays serviceable.
	ConsolidateTenureFactor = 1.1

	// PrepayTenureFactor shrinks the costliest loan's tenure when extra
	// cash is channeled into it, floored at PrepayMinTenureMonths.
	// PrepayPaymentBoost models the redirected cash flow on the aggregate EMI.
	PrepayTenureFactor    = 0.65
	PrepayMinTenureMonths = 6
	PrepayPaymentBoost    = 1.15

	// ExtendTenureFactor stretches every tenure under extend_tenure.
	ExtendTenureFactor = 1.5

	// HybridTenureFactor shortens the transferred half's tenures under hybrid.
	HybridTenureFactor = 0.8

	// TransferFeeRate is the one-time fee on transferred principal;
	// DefaultRecoveryMonths is quoted when the EMI did not actually drop.
	TransferFeeRate       = 0.01
	DefaultRecoveryMonths = 6
)
