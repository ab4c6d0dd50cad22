package domain

import (
	"testing"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
)

func quote(t *testing.T, fixed, floating string) ratesDomain.RateQuote {
	t.Helper()
	return ratesDomain.RateQuote{
		FixedRate:    decimal.RequireFromString(fixed),
		FloatingRate: decimal.RequireFromString(floating),
	}
}

func TestComputeAdvantage(t *testing.T) {
	tests := []struct {
		name               string
		fixedA, floatingA  string
		fixedB, floatingB  string
		wantFixedDiff      string
		wantFloatingDiff   string
		wantQualitySpread  string
		wantFixedHolder    Holder
		wantFloatingHolder Holder
	}{
		{
			name:   "textbook_pairing",
			fixedA: "0.100", floatingA: "0.0030",
			fixedB: "0.112", floatingB: "0.0080",
			wantFixedDiff:      "-0.012",
			wantFloatingDiff:   "-0.005",
			wantQualitySpread:  "0.007",
			wantFixedHolder:    HolderPartyA,
			wantFloatingHolder: HolderPartyA,
		},
		{
			name:   "default_scenario",
			fixedA: "0.1045", floatingA: "0.0075",
			fixedB: "0.0965", floatingB: "0.0025",
			wantFixedDiff:      "0.008",
			wantFloatingDiff:   "0.005",
			wantQualitySpread:  "0.003",
			wantFixedHolder:    HolderPartyB,
			wantFloatingHolder: HolderPartyB,
		},
		{
			name:   "split_absolute_advantage",
			fixedA: "0.09", floatingA: "0.0080",
			fixedB: "0.10", floatingB: "0.0030",
			wantFixedDiff:      "-0.01",
			wantFloatingDiff:   "0.005",
			wantQualitySpread:  "0.015",
			wantFixedHolder:    HolderPartyA,
			wantFloatingHolder: HolderPartyB,
		},
		{
			name:   "identical_quotes",
			fixedA: "0.10", floatingA: "0.0030",
			fixedB: "0.10", floatingB: "0.0030",
			wantFixedDiff:      "0",
			wantFloatingDiff:   "0",
			wantQualitySpread:  "0",
			wantFixedHolder:    HolderNone,
			wantFloatingHolder: HolderNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adv := ComputeAdvantage(
				quote(t, tt.fixedA, tt.floatingA),
				quote(t, tt.fixedB, tt.floatingB),
			)

			if want := decimal.RequireFromString(tt.wantFixedDiff); !adv.FixedDifferential.Equal(want) {
				t.Errorf("FixedDifferential = %s, want %s", adv.FixedDifferential, want)
			}
			if want := decimal.RequireFromString(tt.wantFloatingDiff); !adv.FloatingDifferential.Equal(want) {
				t.Errorf("FloatingDifferential = %s, want %s", adv.FloatingDifferential, want)
			}
			if want := decimal.RequireFromString(tt.wantQualitySpread); !adv.QualitySpread.Equal(want) {
				t.Errorf("QualitySpread = %s, want %s", adv.QualitySpread, want)
			}
			if adv.FixedAdvantage != tt.wantFixedHolder {
				t.Errorf("FixedAdvantage = %s, want %s", adv.FixedAdvantage, tt.wantFixedHolder)
			}
			if adv.FloatingAdvantage != tt.wantFloatingHolder {
				t.Errorf("FloatingAdvantage = %s, want %s", adv.FloatingAdvantage, tt.wantFloatingHolder)
			}
		})
	}
}

func TestAdvantage_ComparativeMarket(t *testing.T) {
	// A is cheaper in both markets but relatively cheapest in fixed:
	// fixed differential -1.2% versus floating differential -0.5%.
	adv := ComputeAdvantage(
		quote(t, "0.100", "0.0030"),
		quote(t, "0.112", "0.0080"),
	)

	if got := adv.ComparativeMarket(SideA); got != ratesDomain.ExposureFixed {
		t.Errorf("ComparativeMarket(A) = %s, want %s", got, ratesDomain.ExposureFixed)
	}
	if got := adv.ComparativeMarket(SideB); got != ratesDomain.ExposureFloating {
		t.Errorf("ComparativeMarket(B) = %s, want %s", got, ratesDomain.ExposureFloating)
	}
}

func TestAdvantage_ComparativeMarket_Tie(t *testing.T) {
	// Equal differentials: no relative edge anywhere.
	adv := ComputeAdvantage(
		quote(t, "0.105", "0.0080"),
		quote(t, "0.100", "0.0030"),
	)

	if got := adv.ComparativeMarket(SideA); got != "" {
		t.Errorf("ComparativeMarket(A) = %q, want empty", got)
	}
	if got := adv.ComparativeMarket(SideB); got != "" {
		t.Errorf("ComparativeMarket(B) = %q, want empty", got)
	}
}

func TestAdvantage_RealizableGain(t *testing.T) {
	adv := ComputeAdvantage(
		quote(t, "0.100", "0.0030"),
		quote(t, "0.112", "0.0080"),
	)

	// B seeking fixed realizes the quality spread; A seeking fixed would
	// fight it and realize its negation.
	gainB := adv.RealizableGain(SideB)
	if want := decimal.RequireFromString("0.007"); !gainB.Equal(want) {
		t.Errorf("RealizableGain(B) = %s, want %s", gainB, want)
	}

	gainA := adv.RealizableGain(SideA)
	if !gainA.Equal(gainB.Neg()) {
		t.Errorf("RealizableGain(A) = %s, want %s", gainA, gainB.Neg())
	}
}

func TestSide_Other(t *testing.T) {
	if SideA.Other() != SideB || SideB.Other() != SideA {
		t.Error("Side.Other should swap sides")
	}
}

func BenchmarkComputeAdvantage(b *testing.B) {
	quoteA := ratesDomain.RateQuote{
		FixedRate:    decimal.RequireFromString("0.1045"),
		FloatingRate: decimal.RequireFromString("0.0075"),
	}
	quoteB := ratesDomain.RateQuote{
		FixedRate:    decimal.RequireFromString("0.0965"),
		FloatingRate: decimal.RequireFromString("0.0025"),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ComputeAdvantage(quoteA, quoteB)
	}
}
