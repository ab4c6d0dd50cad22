package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ratearb/swap-analyzer/internal/apperror"
)

func TestAllocate(t *testing.T) {
	tests := []struct {
		name             string
		totalGain        string
		policy           AllocationPolicy
		feeRate          string
		wantA            string
		wantB            string
		wantIntermediary string
	}{
		{
			name:             "equal_split_no_fee",
			totalGain:        "0.007",
			policy:           EqualSplit{},
			feeRate:          "0",
			wantA:            "0.0035",
			wantB:            "0.0035",
			wantIntermediary: "0",
		},
		{
			name:             "negotiated_split_no_fee",
			totalGain:        "0.003",
			policy:           NegotiatedSplit{Ratio: decimal.RequireFromString("0.75")},
			feeRate:          "0",
			wantA:            "0.00225",
			wantB:            "0.00075",
			wantIntermediary: "0",
		},
		{
			name:             "equal_split_with_fee",
			totalGain:        "0.003",
			policy:           EqualSplit{},
			feeRate:          "0.1",
			wantA:            "0.00135",
			wantB:            "0.00135",
			wantIntermediary: "0.0003",
		},
		{
			name:             "everything_to_party_a",
			totalGain:        "0.004",
			policy:           NegotiatedSplit{Ratio: decimal.NewFromInt(1)},
			feeRate:          "0",
			wantA:            "0.004",
			wantB:            "0",
			wantIntermediary: "0",
		},
		{
			name:             "fee_takes_all",
			totalGain:        "0.004",
			policy:           EqualSplit{},
			feeRate:          "1",
			wantA:            "0",
			wantB:            "0",
			wantIntermediary: "0.004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totalGain := decimal.RequireFromString(tt.totalGain)
			feeRate := decimal.RequireFromString(tt.feeRate)

			alloc, err := Allocate(totalGain, tt.policy, feeRate)
			if err != nil {
				t.Fatalf("Allocate error: %v", err)
			}

			if want := decimal.RequireFromString(tt.wantA); !alloc.PartyA.Equal(want) {
				t.Errorf("PartyA = %s, want %s", alloc.PartyA, want)
			}
			if want := decimal.RequireFromString(tt.wantB); !alloc.PartyB.Equal(want) {
				t.Errorf("PartyB = %s, want %s", alloc.PartyB, want)
			}
			if want := decimal.RequireFromString(tt.wantIntermediary); !alloc.Intermediary.Equal(want) {
				t.Errorf("Intermediary = %s, want %s", alloc.Intermediary, want)
			}

			// Shares must reassemble into the total exactly, not just within
			// tolerance.
			if !alloc.Total().Equal(totalGain) {
				t.Errorf("Total() = %s, want %s", alloc.Total(), totalGain)
			}
		})
	}
}

func TestAllocate_ConservationWithAwkwardRatio(t *testing.T) {
	// One third does not terminate in decimal; party B absorbs the
	// remainder so the shares still sum back exactly.
	totalGain := decimal.RequireFromString("0.007")
	third := decimal.NewFromInt(1).Div(decimal.NewFromInt(3))

	alloc, err := Allocate(totalGain, NegotiatedSplit{Ratio: third}, decimal.Zero)
	if err != nil {
		t.Fatalf("Allocate error: %v", err)
	}
	if !alloc.Total().Equal(totalGain) {
		t.Errorf("Total() = %s, want %s", alloc.Total(), totalGain)
	}
}

func TestAllocate_Errors(t *testing.T) {
	gain := decimal.RequireFromString("0.003")

	tests := []struct {
		name      string
		totalGain decimal.Decimal
		policy    AllocationPolicy
		feeRate   decimal.Decimal
		wantCode  apperror.Code
	}{
		{
			name:      "nil_policy",
			totalGain: gain,
			policy:    nil,
			feeRate:   decimal.Zero,
			wantCode:  apperror.CodeInvalidPolicy,
		},
		{
			name:      "zero_gain",
			totalGain: decimal.Zero,
			policy:    EqualSplit{},
			feeRate:   decimal.Zero,
			wantCode:  apperror.CodeInvalidInput,
		},
		{
			name:      "negative_gain",
			totalGain: decimal.RequireFromString("-0.003"),
			policy:    EqualSplit{},
			feeRate:   decimal.Zero,
			wantCode:  apperror.CodeInvalidInput,
		},
		{
			name:      "fee_above_one",
			totalGain: gain,
			policy:    EqualSplit{},
			feeRate:   decimal.RequireFromString("1.01"),
			wantCode:  apperror.CodeInvalidPolicy,
		},
		{
			name:      "negative_fee",
			totalGain: gain,
			policy:    EqualSplit{},
			feeRate:   decimal.RequireFromString("-0.1"),
			wantCode:  apperror.CodeInvalidPolicy,
		},
		{
			name:      "ratio_above_one",
			totalGain: gain,
			policy:    NegotiatedSplit{Ratio: decimal.RequireFromString("1.5")},
			feeRate:   decimal.Zero,
			wantCode:  apperror.CodeInvalidPolicy,
		},
		{
			name:      "negative_ratio",
			totalGain: gain,
			policy:    NegotiatedSplit{Ratio: decimal.RequireFromString("-0.5")},
			feeRate:   decimal.Zero,
			wantCode:  apperror.CodeInvalidPolicy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Allocate(tt.totalGain, tt.policy, tt.feeRate)
			if err == nil {
				t.Fatal("Allocate should fail")
			}
			if !apperror.IsCode(err, tt.wantCode) {
				t.Errorf("error code = %s, want %s", apperror.GetCode(err), tt.wantCode)
			}
		})
	}
}

func TestAllocationPolicy_Names(t *testing.T) {
	if got := (EqualSplit{}).Name(); got != "equal" {
		t.Errorf("EqualSplit.Name() = %q, want %q", got, "equal")
	}
	if got := (NegotiatedSplit{}).Name(); got != "negotiated" {
		t.Errorf("NegotiatedSplit.Name() = %q, want %q", got, "negotiated")
	}
	if got := (EqualSplit{}).RatioA(); !got.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("EqualSplit.RatioA() = %s, want 0.5", got)
	}
}

func TestAllocation_Share(t *testing.T) {
	alloc := Allocation{
		PartyA: decimal.RequireFromString("0.002"),
		PartyB: decimal.RequireFromString("0.001"),
	}
	if got := alloc.Share(SideA); !got.Equal(alloc.PartyA) {
		t.Errorf("Share(A) = %s, want %s", got, alloc.PartyA)
	}
	if got := alloc.Share(SideB); !got.Equal(alloc.PartyB) {
		t.Errorf("Share(B) = %s, want %s", got, alloc.PartyB)
	}
}
