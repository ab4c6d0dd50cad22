package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/internal/apperror"
)

func viableResult(t *testing.T) (*AnalysisResult, ratesDomain.Party, ratesDomain.Party) {
	t.Helper()

	partyA := party(t, "Alpha", "0.100", "0.0030", ratesDomain.ExposureFloating)
	partyB := party(t, "Beta", "0.112", "0.0080", ratesDomain.ExposureFixed)

	advantage := ComputeAdvantage(partyA.Quote, partyB.Quote)
	totalGain := advantage.RealizableGain(SideB)

	alloc, err := Allocate(totalGain, EqualSplit{}, decimal.Zero)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	terms, err := BuildSwap(partyA, partyB, alloc, decimal.NewFromInt(1_000_000))
	if err != nil {
		t.Fatalf("BuildSwap error: %v", err)
	}

	return &AnalysisResult{
		Outcome:    OutcomeViable,
		Advantage:  advantage,
		TotalGain:  totalGain,
		Allocation: alloc,
		Terms:      &terms,
	}, partyA, partyB
}

func TestValidateResult(t *testing.T) {
	result, partyA, partyB := viableResult(t)

	outcome, err := ValidateResult(result, partyA, partyB)
	if err != nil {
		t.Fatalf("ValidateResult error: %v", err)
	}
	if !outcome.OK {
		t.Error("outcome.OK = false, want true")
	}

	// Alpha nets S-5 against S+30 direct, Beta nets 10.85% against 11.2%:
	// both improve by exactly half the 0.7% gain.
	want := decimal.RequireFromString("0.0035")
	for _, name := range []string{"Alpha", "Beta"} {
		improvement, ok := outcome.Improvements[name]
		if !ok {
			t.Fatalf("no improvement recorded for %s", name)
		}
		if !improvement.Equal(want) {
			t.Errorf("improvement for %s = %s, want %s", name, improvement, want)
		}
	}
}

func TestValidateResult_ConservationViolation(t *testing.T) {
	result, partyA, partyB := viableResult(t)
	result.Allocation.PartyA = result.Allocation.PartyA.Add(decimal.RequireFromString("0.001"))

	_, err := ValidateResult(result, partyA, partyB)
	if !apperror.IsCode(err, apperror.CodeValidationFailed) {
		t.Errorf("error code = %s, want %s", apperror.GetCode(err), apperror.CodeValidationFailed)
	}
}

func TestValidateResult_PartyWorseOff(t *testing.T) {
	result, partyA, partyB := viableResult(t)

	// Push the fixed leg far above what the fixed payer can bear.
	bad := *result.Terms
	bad.FixedRatePaid = bad.FixedRatePaid.Add(decimal.RequireFromString("0.02"))
	bad.FixedRateReceived = bad.FixedRateReceived.Add(decimal.RequireFromString("0.02"))
	result.Terms = &bad

	_, err := ValidateResult(result, partyA, partyB)
	if !apperror.IsCode(err, apperror.CodeValidationFailed) {
		t.Errorf("error code = %s, want %s", apperror.GetCode(err), apperror.CodeValidationFailed)
	}
}

func TestValidateResult_UnknownParty(t *testing.T) {
	result, partyA, _ := viableResult(t)
	stranger := party(t, "Gamma", "0.10", "0.0030", ratesDomain.ExposureFixed)

	_, err := ValidateResult(result, partyA, stranger)
	if !apperror.IsCode(err, apperror.CodeValidationFailed) {
		t.Errorf("error code = %s, want %s", apperror.GetCode(err), apperror.CodeValidationFailed)
	}
}

func TestValidateResult_NoTerms(t *testing.T) {
	partyA := party(t, "Alpha", "0.100", "0.0030", ratesDomain.ExposureFloating)
	partyB := party(t, "Beta", "0.112", "0.0080", ratesDomain.ExposureFixed)

	_, err := ValidateResult(&AnalysisResult{Outcome: OutcomeNoArbitrage}, partyA, partyB)
	if !apperror.IsCode(err, apperror.CodeValidationFailed) {
		t.Errorf("error code = %s, want %s", apperror.GetCode(err), apperror.CodeValidationFailed)
	}
}
