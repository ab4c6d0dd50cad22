package infra

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/business/swap/app"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
	"github.com/ratearb/swap-analyzer/internal/logger"
)

func analyzedRequest(t *testing.T, wantsA ratesDomain.Exposure) (app.Request, *app.Analyzer) {
	t.Helper()
	req := app.Request{
		PartyA: ratesDomain.Party{
			Name: "Alpha Corp",
			Quote: ratesDomain.RateQuote{
				FixedRate:    decimal.RequireFromString("0.100"),
				FloatingRate: decimal.RequireFromString("0.0030"),
			},
			Wants: wantsA,
		},
		PartyB: ratesDomain.Party{
			Name: "Beta Corp",
			Quote: ratesDomain.RateQuote{
				FixedRate:    decimal.RequireFromString("0.112"),
				FloatingRate: decimal.RequireFromString("0.0080"),
			},
			Wants: wantsA.Opposite(),
		},
		Config: app.SwapConfiguration{
			Notional: decimal.NewFromInt(1_000_000),
			Policy:   domain.EqualSplit{},
		},
	}
	return req, app.NewAnalyzer(logger.New(io.Discard, logger.LevelError, "test", nil))
}

func TestConsoleReporter_ViableReport(t *testing.T) {
	req, analyzer := analyzedRequest(t, ratesDomain.ExposureFloating)
	result, err := analyzer.AnalyzeSwap(context.Background(), req)
	if err != nil {
		t.Fatalf("AnalyzeSwap error: %v", err)
	}

	var buf bytes.Buffer
	reporter := NewConsoleReporterTo(&buf)
	if err := reporter.Start(context.Background()); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	reporter.Report(req, result)

	out := buf.String()
	for _, want := range []string{
		"MARKET QUOTES",
		"Alpha Corp",
		"Beta Corp",
		"Total arbitrage available: 0.70%",
		"SWAP TERMS",
		"Beta Corp pays fixed 10.05%",
		"Actions for Alpha Corp",
		"Actions for Beta Corp",
		"S-5",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n---\n%s", want, out)
		}
	}
}

func TestConsoleReporter_NoBenefitReport(t *testing.T) {
	// Flipped preferences fight the quality spread; the report says so
	// instead of printing terms.
	req, analyzer := analyzedRequest(t, ratesDomain.ExposureFixed)
	result, err := analyzer.AnalyzeSwap(context.Background(), req)
	if err != nil {
		t.Fatalf("AnalyzeSwap error: %v", err)
	}

	var buf bytes.Buffer
	reporter := NewConsoleReporterTo(&buf)
	reporter.Report(req, result)

	out := buf.String()
	if !strings.Contains(out, "No swap benefit exists") {
		t.Errorf("output missing no-benefit notice\n---\n%s", out)
	}
	if strings.Contains(out, "SWAP TERMS") {
		t.Errorf("no-benefit report should not print swap terms\n---\n%s", out)
	}
}

func TestConsoleReporter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewConsoleReporterTo(&buf)
	reporter.ReportError(errors.New("boom"))

	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("output missing error text: %q", buf.String())
	}
}
