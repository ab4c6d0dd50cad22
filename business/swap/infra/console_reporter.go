// Package infra contains infrastructure adapters for the swap context.
package infra

import (
	"context"
	"fmt"
	"io"
	"os"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/business/swap/app"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
)

// ConsoleReporter implements Reporter for CLI output.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo creates a ConsoleReporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

// Start initializes the console reporter.
func (r *ConsoleReporter) Start(ctx context.Context) error {
	fmt.Fprintln(r.out, "Interest Rate Swap Analyzer")
	fmt.Fprintln(r.out, "===========================")
	return nil
}

// Report renders one completed analysis to the console.
func (r *ConsoleReporter) Report(req app.Request, result *domain.AnalysisResult) {
	r.printQuotes(req)
	r.printAdvantages(req, result)

	fmt.Fprintln(r.out, "")
	fmt.Fprintf(r.out, "Total arbitrage available: %s\n", ratesDomain.FormatPercent(result.TotalGain))

	if !result.Viable() {
		fmt.Fprintln(r.out, "")
		fmt.Fprintln(r.out, "No swap benefit exists for this pairing.")
		return
	}

	r.printTerms(result.Terms)
	for _, outcome := range []domain.PartyOutcome{result.PartyA, result.PartyB} {
		r.printActions(req, outcome)
	}
}

// ReportError renders a failed analysis.
func (r *ConsoleReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nanalysis error: %v\n", err)
}

// Stop gracefully shuts down the console reporter.
func (r *ConsoleReporter) Stop() error {
	fmt.Fprintln(r.out, "")
	return nil
}

func (r *ConsoleReporter) printQuotes(req app.Request) {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "MARKET QUOTES")
	for _, party := range []ratesDomain.Party{req.PartyA, req.PartyB} {
		fmt.Fprintf(r.out, "  %-12s fixed %s   floating %s   wants %s\n",
			party.Name,
			ratesDomain.FormatPercent(party.Quote.FixedRate),
			ratesDomain.FormatSpread(party.Quote.FloatingRate),
			party.Wants,
		)
	}
}

func (r *ConsoleReporter) printAdvantages(req app.Request, result *domain.AnalysisResult) {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "ADVANTAGES")
	fmt.Fprintf(r.out, "  Absolute fixed:    %s\n", holderName(result.Advantage.FixedAdvantage, req))
	fmt.Fprintf(r.out, "  Absolute floating: %s\n", holderName(result.Advantage.FloatingAdvantage, req))
	for side, outcome := range map[string]domain.PartyOutcome{
		req.PartyA.Name: result.PartyA,
		req.PartyB.Name: result.PartyB,
	} {
		if outcome.ComparativeMarket != "" {
			fmt.Fprintf(r.out, "  %s has a comparative advantage in the %s market\n",
				side, outcome.ComparativeMarket)
		}
	}
}

func (r *ConsoleReporter) printTerms(terms *domain.SwapTerms) {
	fmt.Fprintln(r.out, "")
	fmt.Fprintln(r.out, "SWAP TERMS")
	fmt.Fprintf(r.out, "  Notional:        %s\n", terms.Notional.StringFixed(2))
	fmt.Fprintf(r.out, "  %s pays fixed %s, receives %s\n",
		terms.FixedPayer,
		ratesDomain.FormatPercent(terms.FixedRatePaid),
		ratesDomain.FormatSpread(terms.FloatingSpread),
	)
	fmt.Fprintf(r.out, "  %s pays %s, receives fixed %s\n",
		terms.FloatingPayer,
		ratesDomain.FormatSpread(terms.FloatingSpread),
		ratesDomain.FormatPercent(terms.FixedRateReceived),
	)
	if terms.IntermediaryMargin.Sign() > 0 {
		fmt.Fprintf(r.out, "  Intermediary keeps %s\n", ratesDomain.FormatPercent(terms.IntermediaryMargin))
	}
}

func (r *ConsoleReporter) printActions(req app.Request, outcome domain.PartyOutcome) {
	party := req.PartyA
	if outcome.Party == req.PartyB.Name {
		party = req.PartyB
	}

	fmt.Fprintln(r.out, "")
	fmt.Fprintf(r.out, "Actions for %s\n", outcome.Party)
	fmt.Fprintf(r.out, "* borrow in the %s market at %s\n",
		outcome.BorrowsIn,
		ratesDomain.FormatRate(party.Quote.Rate(outcome.BorrowsIn), outcome.BorrowsIn),
	)
	fmt.Fprintf(r.out, "* pay the %s leg, receive the %s leg of the swap\n",
		outcome.PaysLeg, outcome.ReceivesLeg)
	fmt.Fprintf(r.out, "* net position: %s in the %s market\n",
		ratesDomain.FormatRate(outcome.NetEffectiveRate, outcome.Wants), outcome.Wants)
	fmt.Fprintf(r.out, "* %s better than the %s available on the open market\n",
		ratesDomain.FormatPercent(outcome.MarketImprovement),
		ratesDomain.FormatRate(party.DesiredRate(), outcome.Wants),
	)
}

func holderName(h domain.Holder, req app.Request) string {
	switch h {
	case domain.HolderPartyA:
		return req.PartyA.Name
	case domain.HolderPartyB:
		return req.PartyB.Name
	default:
		return "none"
	}
}
