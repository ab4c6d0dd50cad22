// Package app contains application services and port definitions for the swap context.
package app

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
	"github.com/ratearb/swap-analyzer/internal/apm"
	"github.com/ratearb/swap-analyzer/internal/apperror"
	"github.com/ratearb/swap-analyzer/internal/logger"
)

// SwapConfiguration carries the construction settings for one analysis.
type SwapConfiguration struct {
	Notional decimal.Decimal

	// TermPeriods is informational only; the gain calculation is
	// single-period.
	TermPeriods int

	Policy              domain.AllocationPolicy
	IntermediaryFeeRate decimal.Decimal
}

// Request is a full immutable input snapshot for one analysis. The engine
// keeps no memory of prior calls; callers own any caching of "current"
// results.
type Request struct {
	PartyA ratesDomain.Party
	PartyB ratesDomain.Party
	Config SwapConfiguration
}

// Analyzer computes swap analyses. It is safe for concurrent use: every
// invocation is a pure function over its own request.
type Analyzer struct {
	logger   logger.LoggerInterface
	tracer   apm.Tracer
	analyses metric.Int64Counter
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(log logger.LoggerInterface) *Analyzer {
	meter := otel.Meter("swap-analyzer/analyzer")
	analyses, _ := meter.Int64Counter("swap_analyses_total",
		metric.WithDescription("Completed swap analyses by outcome"))

	return &Analyzer{
		logger:   log,
		tracer:   apm.NewTracer("swap.analyzer"),
		analyses: analyses,
	}
}

// AnalyzeSwap runs the full pipeline: validate quotes, compute the
// comparative advantage, allocate the gain, build the swap, and validate the
// construction. It returns either a complete result (possibly the
// no-arbitrage variant) or a typed failure; never a partial result.
func (a *Analyzer) AnalyzeSwap(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	ctx, span := a.tracer.StartSpanFromContext(ctx, "analyzer.AnalyzeSwap")
	defer span.End()

	result, err := a.analyze(ctx, req)
	if err != nil {
		span.NoticeError(err)
		a.count(ctx, string(apperror.GetCode(err)))
		a.logger.Warn(ctx, "analysis failed", "error", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("outcome", string(result.Outcome)),
		attribute.String("total_gain", result.TotalGain.String()),
	)
	a.count(ctx, string(result.Outcome))
	a.logger.Debug(ctx, "analysis complete",
		"outcome", result.Outcome,
		"total_gain", result.TotalGain,
	)
	return result, nil
}

func (a *Analyzer) analyze(ctx context.Context, req Request) (*domain.AnalysisResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	partyA, partyB := req.PartyA, req.PartyB
	advantage := domain.ComputeAdvantage(partyA.Quote, partyB.Quote)

	fixedSeeker := domain.SideA
	if partyB.Wants == ratesDomain.ExposureFixed {
		fixedSeeker = domain.SideB
	}
	totalGain := advantage.RealizableGain(fixedSeeker)

	if totalGain.Cmp(domain.Tolerance) <= 0 {
		return noArbitrageResult(advantage, totalGain, partyA, partyB), nil
	}

	alloc, err := domain.Allocate(totalGain, req.Config.Policy, req.Config.IntermediaryFeeRate)
	if err != nil {
		return nil, err
	}

	terms, err := domain.BuildSwap(partyA, partyB, alloc, req.Config.Notional)
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		Outcome:    domain.OutcomeViable,
		Advantage:  advantage,
		TotalGain:  totalGain,
		Allocation: alloc,
		Terms:      &terms,
		PartyA:     partyOutcome(partyA, domain.SideA, advantage, alloc, &terms),
		PartyB:     partyOutcome(partyB, domain.SideB, advantage, alloc, &terms),
	}

	// Safety net: recompute improvements from the constructed terms and fail
	// loudly on any conservation or improvement violation.
	validation, err := domain.ValidateResult(result, partyA, partyB)
	if err != nil {
		return nil, err
	}
	result.PartyA.MarketImprovement = validation.Improvements[partyA.Name]
	result.PartyB.MarketImprovement = validation.Improvements[partyB.Name]

	return result, nil
}

func (a *Analyzer) count(ctx context.Context, outcome string) {
	if a.analyses == nil {
		return
	}
	a.analyses.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func validateRequest(req Request) error {
	for _, party := range []ratesDomain.Party{req.PartyA, req.PartyB} {
		if _, err := ratesDomain.NewRateQuote(party.Quote.FixedRate, party.Quote.FloatingRate); err != nil {
			return apperror.Wrap(err, apperror.CodeInvalidQuote, party.Name)
		}
		if !party.Wants.Valid() {
			return apperror.Validation(apperror.CodeInvalidQuote,
				fmt.Sprintf("unknown exposure %q for party %s", party.Wants, party.Name))
		}
	}
	if req.PartyA.Wants == req.PartyB.Wants {
		return apperror.Validation(apperror.CodeIncompatibleParties,
			fmt.Sprintf("%s and %s both want %s exposure",
				req.PartyA.Name, req.PartyB.Name, req.PartyA.Wants))
	}
	if !req.Config.Notional.IsPositive() {
		return apperror.Validation(apperror.CodeInvalidInput,
			fmt.Sprintf("notional must be positive, got %s", req.Config.Notional))
	}
	return nil
}

func partyOutcome(
	party ratesDomain.Party,
	side domain.Side,
	advantage domain.Advantage,
	alloc domain.Allocation,
	terms *domain.SwapTerms,
) domain.PartyOutcome {
	share := alloc.Share(side)
	return domain.PartyOutcome{
		Party:             party.Name,
		Wants:             party.Wants,
		ComparativeMarket: advantage.ComparativeMarket(side),
		BorrowsIn:         party.BorrowsIn(),
		PaysLeg:           terms.PaysLeg(party.Name),
		ReceivesLeg:       terms.ReceivesLeg(party.Name),
		AllocatedShare:    share,
		NetEffectiveRate:  party.DesiredRate().Sub(share),
		MarketImprovement: share,
	}
}

func noArbitrageResult(
	advantage domain.Advantage,
	totalGain decimal.Decimal,
	partyA, partyB ratesDomain.Party,
) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Outcome:   domain.OutcomeNoArbitrage,
		Advantage: advantage,
		TotalGain: totalGain,
		PartyA: domain.PartyOutcome{
			Party:             partyA.Name,
			Wants:             partyA.Wants,
			ComparativeMarket: advantage.ComparativeMarket(domain.SideA),
			NetEffectiveRate:  partyA.DesiredRate(),
		},
		PartyB: domain.PartyOutcome{
			Party:             partyB.Name,
			Wants:             partyB.Wants,
			ComparativeMarket: advantage.ComparativeMarket(domain.SideB),
			NetEffectiveRate:  partyB.DesiredRate(),
		},
	}
}
