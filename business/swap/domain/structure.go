package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/internal/apperror"
)

// SwapTerms describes the constructed swap: which party pays which leg, the
// leg rates, and the notional the cash flows reference. The floating leg is
// quoted flat against the benchmark index; when an intermediary takes a fee,
// the fixed rate paid and the fixed rate passed through differ by exactly the
// intermediary's margin.
type SwapTerms struct {
	Notional decimal.Decimal

	// FixedPayer seeks fixed exposure: it borrows floating directly and pays
	// the fixed leg into the swap. FloatingPayer is the mirror image.
	FixedPayer    string
	FloatingPayer string

	FixedRatePaid     decimal.Decimal // paid by FixedPayer
	FixedRateReceived decimal.Decimal // received by FloatingPayer
	FloatingSpread    decimal.Decimal // floating leg spread over the benchmark

	IntermediaryMargin decimal.Decimal // FixedRatePaid - FixedRateReceived
}

// BuildSwap derives the swap terms that give every party a net effective rate
// of "its own direct rate in its desired market minus its allocated share".
// That single invariant pins the fixed leg rates uniquely once the floating
// leg is fixed flat against the benchmark.
func BuildSwap(partyA, partyB ratesDomain.Party, alloc Allocation, notional decimal.Decimal) (SwapTerms, error) {
	if partyA.Wants == partyB.Wants {
		return SwapTerms{}, apperror.Validation(apperror.CodeIncompatibleParties,
			fmt.Sprintf("%s and %s both want %s exposure", partyA.Name, partyB.Name, partyA.Wants))
	}
	if !notional.IsPositive() {
		return SwapTerms{}, apperror.Validation(apperror.CodeInvalidInput,
			fmt.Sprintf("notional must be positive, got %s", notional))
	}

	fixedSeeker, floatingSeeker := partyA, partyB
	fixedShare, floatingShare := alloc.PartyA, alloc.PartyB
	if partyB.Wants == ratesDomain.ExposureFixed {
		fixedSeeker, floatingSeeker = partyB, partyA
		fixedShare, floatingShare = alloc.PartyB, alloc.PartyA
	}

	// Fixed seeker borrows floating at benchmark+spread, pays the fixed leg,
	// receives the flat floating leg:
	//   net = fixedRatePaid + ownFloatSpread = ownFixedRate - share
	fixedRatePaid := fixedSeeker.Quote.FixedRate.
		Sub(fixedSeeker.Quote.FloatingRate).
		Sub(fixedShare)

	// Floating seeker borrows fixed, pays the flat floating leg, receives a
	// fixed pass-through:
	//   net spread = ownFixedRate - fixedRateReceived = ownFloatSpread - share
	fixedRateReceived := floatingSeeker.Quote.FixedRate.
		Sub(floatingSeeker.Quote.FloatingRate).
		Add(floatingShare)

	return SwapTerms{
		Notional:           notional,
		FixedPayer:         fixedSeeker.Name,
		FloatingPayer:      floatingSeeker.Name,
		FixedRatePaid:      fixedRatePaid,
		FixedRateReceived:  fixedRateReceived,
		FloatingSpread:     decimal.Zero,
		IntermediaryMargin: fixedRatePaid.Sub(fixedRateReceived),
	}, nil
}

// PaysLeg returns the leg the named party pays, or "" for unknown names.
func (t SwapTerms) PaysLeg(party string) ratesDomain.Exposure {
	switch party {
	case t.FixedPayer:
		return ratesDomain.ExposureFixed
	case t.FloatingPayer:
		return ratesDomain.ExposureFloating
	default:
		return ""
	}
}

// ReceivesLeg returns the leg the named party receives, or "" for unknown names.
func (t SwapTerms) ReceivesLeg(party string) ratesDomain.Exposure {
	leg := t.PaysLeg(party)
	if leg == "" {
		return ""
	}
	return leg.Opposite()
}
