package domain

import "github.com/shopspring/decimal"

var periodsPerYear = decimal.NewFromInt(2)

// LegPayments holds one semi-annual exchange on the swap for a given
// benchmark fixing. Net amounts are from each payer's point of view: positive
// means the party receives more than it pays on the exchange.
type LegPayments struct {
	Benchmark        decimal.Decimal
	FixedLeg         decimal.Decimal
	FloatingLeg      decimal.Decimal
	FixedPayerNet    decimal.Decimal
	FloatingPayerNet decimal.Decimal
}

// SemiannualPayments computes one payment exchange for the supplied benchmark
// fixing. Payments are informational for rendering a cash-flow diagram; the
// single-period gain calculation never feeds off them.
func (t SwapTerms) SemiannualPayments(benchmark decimal.Decimal) LegPayments {
	fixedLeg := t.Notional.Mul(t.FixedRatePaid).Div(periodsPerYear)
	floatingLeg := t.Notional.Mul(benchmark.Add(t.FloatingSpread)).Div(periodsPerYear)

	return LegPayments{
		Benchmark:        benchmark,
		FixedLeg:         fixedLeg,
		FloatingLeg:      floatingLeg,
		FixedPayerNet:    floatingLeg.Sub(fixedLeg),
		FloatingPayerNet: fixedLeg.Sub(floatingLeg),
	}
}
