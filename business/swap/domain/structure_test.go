package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/internal/apperror"
)

func party(t *testing.T, name, fixed, floating string, wants ratesDomain.Exposure) ratesDomain.Party {
	t.Helper()
	return ratesDomain.Party{
		Name:  name,
		Quote: quote(t, fixed, floating),
		Wants: wants,
	}
}

func TestBuildSwap_TextbookPairing(t *testing.T) {
	// A borrows at 10.0%/S+30 and wants floating; B borrows at 11.2%/S+80
	// and wants fixed. The 0.7% quality spread splits equally.
	partyA := party(t, "Alpha", "0.100", "0.0030", ratesDomain.ExposureFloating)
	partyB := party(t, "Beta", "0.112", "0.0080", ratesDomain.ExposureFixed)
	alloc := Allocation{
		PartyA: decimal.RequireFromString("0.0035"),
		PartyB: decimal.RequireFromString("0.0035"),
	}
	notional := decimal.NewFromInt(1_000_000)

	terms, err := BuildSwap(partyA, partyB, alloc, notional)
	if err != nil {
		t.Fatalf("BuildSwap error: %v", err)
	}

	if terms.FixedPayer != "Beta" {
		t.Errorf("FixedPayer = %q, want %q", terms.FixedPayer, "Beta")
	}
	if terms.FloatingPayer != "Alpha" {
		t.Errorf("FloatingPayer = %q, want %q", terms.FloatingPayer, "Alpha")
	}

	// Beta nets 11.2% - 0.35% = 10.85% fixed by paying 10.05% on top of its
	// S+80 borrowing; Alpha nets S-5 by receiving the same 10.05%.
	wantRate := decimal.RequireFromString("0.1005")
	if !terms.FixedRatePaid.Equal(wantRate) {
		t.Errorf("FixedRatePaid = %s, want %s", terms.FixedRatePaid, wantRate)
	}
	if !terms.FixedRateReceived.Equal(wantRate) {
		t.Errorf("FixedRateReceived = %s, want %s", terms.FixedRateReceived, wantRate)
	}
	if !terms.FloatingSpread.IsZero() {
		t.Errorf("FloatingSpread = %s, want 0", terms.FloatingSpread)
	}
	if !terms.IntermediaryMargin.IsZero() {
		t.Errorf("IntermediaryMargin = %s, want 0", terms.IntermediaryMargin)
	}
	if !terms.Notional.Equal(notional) {
		t.Errorf("Notional = %s, want %s", terms.Notional, notional)
	}
}

func TestBuildSwap_DefaultScenario(t *testing.T) {
	partyA := party(t, "Alpha", "0.1045", "0.0075", ratesDomain.ExposureFixed)
	partyB := party(t, "Beta", "0.0965", "0.0025", ratesDomain.ExposureFloating)
	alloc := Allocation{
		PartyA: decimal.RequireFromString("0.0015"),
		PartyB: decimal.RequireFromString("0.0015"),
	}

	terms, err := BuildSwap(partyA, partyB, alloc, decimal.NewFromInt(1_000_000))
	if err != nil {
		t.Fatalf("BuildSwap error: %v", err)
	}

	if terms.FixedPayer != "Alpha" {
		t.Errorf("FixedPayer = %q, want %q", terms.FixedPayer, "Alpha")
	}
	wantRate := decimal.RequireFromString("0.0955")
	if !terms.FixedRatePaid.Equal(wantRate) {
		t.Errorf("FixedRatePaid = %s, want %s", terms.FixedRatePaid, wantRate)
	}
	if !terms.FixedRateReceived.Equal(wantRate) {
		t.Errorf("FixedRateReceived = %s, want %s", terms.FixedRateReceived, wantRate)
	}
}

func TestBuildSwap_IntermediaryMarginEqualsFee(t *testing.T) {
	partyA := party(t, "Alpha", "0.1045", "0.0075", ratesDomain.ExposureFixed)
	partyB := party(t, "Beta", "0.0965", "0.0025", ratesDomain.ExposureFloating)

	// 10% of the 0.3% gain goes to the intermediary before the equal split.
	alloc, err := Allocate(decimal.RequireFromString("0.003"), EqualSplit{}, decimal.RequireFromString("0.1"))
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}

	terms, err := BuildSwap(partyA, partyB, alloc, decimal.NewFromInt(1_000_000))
	if err != nil {
		t.Fatalf("BuildSwap error: %v", err)
	}

	if !terms.IntermediaryMargin.Equal(alloc.Intermediary) {
		t.Errorf("IntermediaryMargin = %s, want fee %s", terms.IntermediaryMargin, alloc.Intermediary)
	}
	if !terms.FixedRatePaid.Sub(terms.FixedRateReceived).Equal(terms.IntermediaryMargin) {
		t.Errorf("margin %s is not the gap between %s and %s",
			terms.IntermediaryMargin, terms.FixedRatePaid, terms.FixedRateReceived)
	}
}

func TestBuildSwap_Errors(t *testing.T) {
	partyA := party(t, "Alpha", "0.1045", "0.0075", ratesDomain.ExposureFixed)
	partyB := party(t, "Beta", "0.0965", "0.0025", ratesDomain.ExposureFixed)
	alloc := Allocation{
		PartyA: decimal.RequireFromString("0.0015"),
		PartyB: decimal.RequireFromString("0.0015"),
	}

	_, err := BuildSwap(partyA, partyB, alloc, decimal.NewFromInt(1_000_000))
	if !apperror.IsCode(err, apperror.CodeIncompatibleParties) {
		t.Errorf("same wants: error code = %s, want %s", apperror.GetCode(err), apperror.CodeIncompatibleParties)
	}

	partyB.Wants = ratesDomain.ExposureFloating
	_, err = BuildSwap(partyA, partyB, alloc, decimal.Zero)
	if !apperror.IsCode(err, apperror.CodeInvalidInput) {
		t.Errorf("zero notional: error code = %s, want %s", apperror.GetCode(err), apperror.CodeInvalidInput)
	}
}

func TestSwapTerms_Legs(t *testing.T) {
	terms := SwapTerms{FixedPayer: "Alpha", FloatingPayer: "Beta"}

	if got := terms.PaysLeg("Alpha"); got != ratesDomain.ExposureFixed {
		t.Errorf("PaysLeg(Alpha) = %s, want fixed", got)
	}
	if got := terms.ReceivesLeg("Alpha"); got != ratesDomain.ExposureFloating {
		t.Errorf("ReceivesLeg(Alpha) = %s, want floating", got)
	}
	if got := terms.PaysLeg("Beta"); got != ratesDomain.ExposureFloating {
		t.Errorf("PaysLeg(Beta) = %s, want floating", got)
	}
	if got := terms.ReceivesLeg("Beta"); got != ratesDomain.ExposureFixed {
		t.Errorf("ReceivesLeg(Beta) = %s, want fixed", got)
	}
	if got := terms.PaysLeg("Gamma"); got != "" {
		t.Errorf("PaysLeg(unknown) = %q, want empty", got)
	}
	if got := terms.ReceivesLeg("Gamma"); got != "" {
		t.Errorf("ReceivesLeg(unknown) = %q, want empty", got)
	}
}
