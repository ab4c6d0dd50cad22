package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/internal/apperror"
)

func validationFailed(reason string) error {
	return apperror.Internal(apperror.CodeValidationFailed, reason, nil)
}

// ValidationOutcome is the validator's report for a viable result.
type ValidationOutcome struct {
	OK           bool
	Improvements map[string]decimal.Decimal // by party name
}

// ValidateResult is the safety net run on every viable result before it is
// returned. It recomputes each party's improvement from the swap terms and
// quotes rather than trusting the allocated shares, and checks that the
// allocation conserves the total gain. A failure here is a construction bug,
// never a user-input problem.
func ValidateResult(result *AnalysisResult, partyA, partyB ratesDomain.Party) (ValidationOutcome, error) {
	if result == nil || result.Terms == nil {
		return ValidationOutcome{}, validationFailed("no swap terms to validate")
	}

	drift := result.Allocation.Total().Sub(result.TotalGain).Abs()
	if drift.GreaterThan(Tolerance) {
		return ValidationOutcome{}, validationFailed(
			fmt.Sprintf("allocation %s does not conserve total gain %s (drift %s)",
				result.Allocation.Total(), result.TotalGain, drift))
	}

	improvements := make(map[string]decimal.Decimal, 2)
	for _, party := range []ratesDomain.Party{partyA, partyB} {
		improvement, err := recomputeImprovement(result.Terms, party)
		if err != nil {
			return ValidationOutcome{}, err
		}
		if improvement.IsNegative() && improvement.Abs().GreaterThan(Tolerance) {
			return ValidationOutcome{}, validationFailed(
				fmt.Sprintf("%s is worse off by %s after the swap", party.Name, improvement.Abs()))
		}
		improvements[party.Name] = improvement
	}

	return ValidationOutcome{OK: true, Improvements: improvements}, nil
}

// recomputeImprovement rebuilds the party's net effective rate from first
// principles: direct borrowing cost plus the leg it pays minus the leg it
// receives, compared against its standalone rate in the desired market.
func recomputeImprovement(terms *SwapTerms, party ratesDomain.Party) (decimal.Decimal, error) {
	switch terms.PaysLeg(party.Name) {
	case ratesDomain.ExposureFixed:
		// Borrows floating at benchmark+spread, pays fixed, receives the
		// flat floating leg; net is an all-in fixed rate.
		net := party.Quote.FloatingRate.Add(terms.FixedRatePaid).Sub(terms.FloatingSpread)
		return party.Quote.FixedRate.Sub(net), nil
	case ratesDomain.ExposureFloating:
		// Borrows fixed, pays the flat floating leg, receives the fixed
		// pass-through; net is a spread over the benchmark.
		net := party.Quote.FixedRate.Add(terms.FloatingSpread).Sub(terms.FixedRateReceived)
		return party.Quote.FloatingRate.Sub(net), nil
	default:
		return decimal.Zero, validationFailed(
			fmt.Sprintf("party %s does not appear in the swap terms", party.Name))
	}
}
