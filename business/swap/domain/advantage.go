// Package domain contains the core calculation types for the swap context.
package domain

import (
	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
)

// Tolerance is the shared absolute tolerance for rate comparisons. Decimal
// inputs that should cancel exactly sometimes do not after ratio splits, so
// every zero/conservation check in the engine and its tests goes through it.
var Tolerance = decimal.New(1, -9) // 1e-9

// Side labels one of the two counterparties of an analysis.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the counterparty side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Holder identifies which party, if any, holds an advantage in a market.
type Holder string

const (
	HolderPartyA Holder = "party_a"
	HolderPartyB Holder = "party_b"
	HolderNone   Holder = "none"
)

// Advantage summarizes both parties' relative positions in the two markets.
// Differentials are signed A minus B; QualitySpread is the classic
// comparative-advantage gain available to split.
type Advantage struct {
	FixedDifferential    decimal.Decimal // quoteA.fixed - quoteB.fixed
	FloatingDifferential decimal.Decimal // quoteA.floatingSpread - quoteB.floatingSpread
	QualitySpread        decimal.Decimal // |FixedDifferential - FloatingDifferential|
	FixedAdvantage       Holder          // absolute advantage: lower fixed rate
	FloatingAdvantage    Holder          // absolute advantage: lower floating spread
}

// ComputeAdvantage derives the rate differentials and the total arbitrage
// gain available between two quotes. Pure computation; quote validity is the
// caller's concern.
func ComputeAdvantage(quoteA, quoteB ratesDomain.RateQuote) Advantage {
	fixedDiff := quoteA.FixedRate.Sub(quoteB.FixedRate)
	floatDiff := quoteA.FloatingRate.Sub(quoteB.FloatingRate)

	return Advantage{
		FixedDifferential:    fixedDiff,
		FloatingDifferential: floatDiff,
		QualitySpread:        fixedDiff.Sub(floatDiff).Abs(),
		FixedAdvantage:       holderFromDiff(fixedDiff),
		FloatingAdvantage:    holderFromDiff(floatDiff),
	}
}

func holderFromDiff(diff decimal.Decimal) Holder {
	switch {
	case diff.IsNegative():
		return HolderPartyA
	case diff.IsPositive():
		return HolderPartyB
	default:
		return HolderNone
	}
}

// ComparativeMarket returns the market in which the given side holds the
// comparative (relative, not absolute) advantage. Returns "" when the
// differentials are equal and no relative edge exists.
func (a Advantage) ComparativeMarket(side Side) ratesDomain.Exposure {
	fixed := a.FixedDifferential
	floating := a.FloatingDifferential
	if side == SideB {
		fixed = fixed.Neg()
		floating = floating.Neg()
	}

	// Smaller relative cost wins: a party can hold a comparative advantage
	// in a market even while being more expensive there in absolute terms.
	switch fixed.Cmp(floating) {
	case -1:
		return ratesDomain.ExposureFixed
	case 1:
		return ratesDomain.ExposureFloating
	default:
		return ""
	}
}

// RealizableGain is the total gain the desired pairing can actually unlock,
// signed: positive when the fixed-seeking side's relative cheapness lies in
// the floating market (so swapping beats borrowing directly), negative when
// the preferences point against the quality spread.
func (a Advantage) RealizableGain(fixedSeeker Side) decimal.Decimal {
	gain := a.FixedDifferential.Sub(a.FloatingDifferential)
	if fixedSeeker == SideB {
		return gain.Neg()
	}
	return gain
}
