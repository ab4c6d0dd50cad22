// Package domain contains the core domain types for the rates context.
package domain

import (
	"fmt"

	"github.com/ratearb/swap-analyzer/internal/apperror"
	"github.com/shopspring/decimal"
)

// Exposure identifies the market a party wants to be exposed to after the swap.
type Exposure string

const (
	ExposureFixed    Exposure = "fixed"
	ExposureFloating Exposure = "floating"
)

// Valid reports whether the exposure is one of the known markets.
func (e Exposure) Valid() bool {
	return e == ExposureFixed || e == ExposureFloating
}

// Opposite returns the other market.
func (e Exposure) Opposite() Exposure {
	if e == ExposureFixed {
		return ExposureFloating
	}
	return ExposureFixed
}

// String returns the market name.
func (e Exposure) String() string {
	return string(e)
}

// RateQuote is one party's borrowing cost in each market.
// FixedRate is an all-in annualized rate; FloatingRate is the spread over the
// benchmark index, not the all-in rate. Both are quoted in the same
// compounding convention across all parties of an analysis.
type RateQuote struct {
	FixedRate    decimal.Decimal
	FloatingRate decimal.Decimal
}

// NewRateQuote builds a validated RateQuote. Both rates must be positive.
func NewRateQuote(fixed, floating decimal.Decimal) (RateQuote, error) {
	if !fixed.IsPositive() {
		return RateQuote{}, apperror.Validation(apperror.CodeInvalidQuote,
			fmt.Sprintf("fixed rate must be positive, got %s", fixed))
	}
	if !floating.IsPositive() {
		return RateQuote{}, apperror.Validation(apperror.CodeInvalidQuote,
			fmt.Sprintf("floating spread must be positive, got %s", floating))
	}
	return RateQuote{FixedRate: fixed, FloatingRate: floating}, nil
}

// Rate returns the quoted borrowing rate in the given market. For the
// floating market this is the spread over the benchmark, matching how
// floating quotes compare across parties.
func (q RateQuote) Rate(market Exposure) decimal.Decimal {
	if market == ExposureFixed {
		return q.FixedRate
	}
	return q.FloatingRate
}

// Party is a named counterparty holding one quote and a desired post-swap
// exposure. Exactly two parties take part in an analysis and they must want
// opposite exposures for a swap to be constructible.
type Party struct {
	Name  string
	Quote RateQuote
	Wants Exposure
}

// NewParty builds a validated Party.
func NewParty(name string, quote RateQuote, wants Exposure) (Party, error) {
	if name == "" {
		return Party{}, apperror.Validation(apperror.CodeInvalidQuote, "party name must not be empty")
	}
	if !wants.Valid() {
		return Party{}, apperror.Validation(apperror.CodeInvalidQuote,
			fmt.Sprintf("unknown exposure %q for party %s", wants, name))
	}
	return Party{Name: name, Quote: quote, Wants: wants}, nil
}

// DesiredRate returns the party's direct borrowing rate in the market it
// wants to end up exposed to.
func (p Party) DesiredRate() decimal.Decimal {
	return p.Quote.Rate(p.Wants)
}

// BorrowsIn returns the market the party borrows in directly under the swap
// construction: the opposite of the exposure it wants.
func (p Party) BorrowsIn() Exposure {
	return p.Wants.Opposite()
}
