package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var basisPointsPerUnit = decimal.NewFromInt(10_000)

// FormatPercent renders an all-in rate as a percentage with two decimals,
// e.g. 0.1045 -> "10.45%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatSpread renders a floating spread in the dealer shorthand over the
// benchmark index, e.g. 0.0030 -> "S+30", -0.0005 -> "S-5".
func FormatSpread(spread decimal.Decimal) string {
	bps := spread.Mul(basisPointsPerUnit).Round(0)
	if bps.Sign() < 0 {
		return fmt.Sprintf("S-%s", bps.Abs().String())
	}
	return fmt.Sprintf("S+%s", bps.String())
}

// FormatRate renders a rate in the convention of its market: percent for
// fixed, benchmark shorthand for floating spreads.
func FormatRate(rate decimal.Decimal, market Exposure) string {
	if market == ExposureFixed {
		return FormatPercent(rate)
	}
	return FormatSpread(rate)
}
