package domain

import (
	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
)

// Outcome is the result variant of an analysis.
type Outcome string

const (
	// OutcomeViable means a swap was constructed and every party improves on
	// its standalone market rate.
	OutcomeViable Outcome = "viable"

	// OutcomeNoArbitrage is a normal, expected result: the desired pairing
	// unlocks no value. Callers display "no swap benefit exists", they do not
	// treat it as a failure.
	OutcomeNoArbitrage Outcome = "no_arbitrage"
)

// PartyOutcome is one party's complete post-analysis position.
type PartyOutcome struct {
	Party string
	Wants ratesDomain.Exposure

	// ComparativeMarket is where the party's relative edge lies; BorrowsIn is
	// the market it borrows in directly under the construction.
	ComparativeMarket ratesDomain.Exposure
	BorrowsIn         ratesDomain.Exposure
	PaysLeg           ratesDomain.Exposure
	ReceivesLeg       ratesDomain.Exposure

	AllocatedShare decimal.Decimal

	// NetEffectiveRate is the all-in fixed rate when Wants is fixed, or the
	// spread over the benchmark when Wants is floating.
	NetEffectiveRate decimal.Decimal

	// MarketImprovement is the party's standalone rate in its desired market
	// minus NetEffectiveRate; positive for every viable analysis.
	MarketImprovement decimal.Decimal
}

// AnalysisResult is the engine's sole output: an immutable snapshot of the
// whole calculation. Identical inputs always produce an identical result.
type AnalysisResult struct {
	Outcome   Outcome
	Advantage Advantage

	// TotalGain is signed toward the parties' desired pairing; it is only
	// positive for viable analyses and equals the quality spread in
	// magnitude.
	TotalGain decimal.Decimal

	Allocation Allocation
	Terms      *SwapTerms // nil when Outcome is OutcomeNoArbitrage

	PartyA PartyOutcome
	PartyB PartyOutcome
}

// Viable reports whether a swap was constructed.
func (r *AnalysisResult) Viable() bool {
	return r.Outcome == OutcomeViable
}

// Outcomes returns both party outcomes keyed by side.
func (r *AnalysisResult) Outcomes() map[Side]PartyOutcome {
	return map[Side]PartyOutcome{SideA: r.PartyA, SideB: r.PartyB}
}
