package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ratearb/swap-analyzer/internal/apperror"
)

var (
	half = decimal.New(5, -1)
	one  = decimal.NewFromInt(1)
)

// AllocationPolicy decides how the post-fee gain splits between the parties.
// Policies are pure data; the split arithmetic lives in Allocate so that the
// conservation invariant is enforced in one place.
type AllocationPolicy interface {
	// RatioA is the fraction of the post-fee gain allocated to party A,
	// in [0, 1].
	RatioA() decimal.Decimal
	Name() string
}

// EqualSplit gives both parties the same share of the post-fee gain.
type EqualSplit struct{}

func (EqualSplit) RatioA() decimal.Decimal { return half }
func (EqualSplit) Name() string            { return "equal" }

// NegotiatedSplit gives party A the negotiated fraction of the post-fee gain.
type NegotiatedSplit struct {
	Ratio decimal.Decimal
}

func (s NegotiatedSplit) RatioA() decimal.Decimal { return s.Ratio }
func (s NegotiatedSplit) Name() string            { return "negotiated" }

// Allocation is the split of the total gain. Shares always sum back to the
// total the allocation was produced from.
type Allocation struct {
	PartyA       decimal.Decimal
	PartyB       decimal.Decimal
	Intermediary decimal.Decimal
}

// Total returns the sum of all shares.
func (a Allocation) Total() decimal.Decimal {
	return a.PartyA.Add(a.PartyB).Add(a.Intermediary)
}

// Share returns the given side's share.
func (a Allocation) Share(side Side) decimal.Decimal {
	if side == SideA {
		return a.PartyA
	}
	return a.PartyB
}

// Allocate splits a positive total gain according to the policy, carving the
// intermediary fee out first. Party B's share is computed as the remainder so
// PartyA + PartyB + Intermediary equals totalGain exactly.
//
// Calling this with a non-positive gain is a caller bug: the analyzer only
// invokes allocation for viable opportunities.
func Allocate(totalGain decimal.Decimal, policy AllocationPolicy, intermediaryFeeRate decimal.Decimal) (Allocation, error) {
	if policy == nil {
		return Allocation{}, apperror.Validation(apperror.CodeInvalidPolicy, "allocation policy must not be nil")
	}
	if !totalGain.IsPositive() {
		return Allocation{}, apperror.Validation(apperror.CodeInvalidInput,
			fmt.Sprintf("total gain must be positive, got %s", totalGain))
	}
	if intermediaryFeeRate.IsNegative() || intermediaryFeeRate.GreaterThan(one) {
		return Allocation{}, apperror.Validation(apperror.CodeInvalidPolicy,
			fmt.Sprintf("intermediary fee rate %s outside [0,1]", intermediaryFeeRate))
	}
	ratioA := policy.RatioA()
	if ratioA.IsNegative() || ratioA.GreaterThan(one) {
		return Allocation{}, apperror.Validation(apperror.CodeInvalidPolicy,
			fmt.Sprintf("allocation ratio %s outside [0,1]", ratioA))
	}

	fee := totalGain.Mul(intermediaryFeeRate)
	remaining := totalGain.Sub(fee)
	shareA := remaining.Mul(ratioA)

	return Allocation{
		PartyA:       shareA,
		PartyB:       remaining.Sub(shareA),
		Intermediary: fee,
	}, nil
}
