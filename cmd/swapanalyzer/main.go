// Package main is the entry point for the Interest Rate Swap Analyzer.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/business/swap"
	swapApp "github.com/ratearb/swap-analyzer/business/swap/app"
	swapDI "github.com/ratearb/swap-analyzer/business/swap/di"
	swapDomain "github.com/ratearb/swap-analyzer/business/swap/domain"
	"github.com/ratearb/swap-analyzer/internal/apm"
	"github.com/ratearb/swap-analyzer/internal/config"
	"github.com/ratearb/swap-analyzer/internal/health"
	"github.com/ratearb/swap-analyzer/internal/logger"
	"github.com/ratearb/swap-analyzer/internal/metrics"
	"github.com/ratearb/swap-analyzer/internal/monolith"
	"github.com/ratearb/swap-analyzer/pkg/ui"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "", "Path to configuration file")
	cliMode := flag.Bool("cli", false, "Run one analysis from config and print it (no TUI)")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("swap-analyzer %s (commit: %s, built: %s)\n", version, commit, buildDate)
		os.Exit(0)
	}

	// TUI is the default, CLI is for scripting and debugging
	tuiMode := !*cliMode

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		if !tuiMode {
			fmt.Fprintf(os.Stderr, "received shutdown signal: %v\n", sig)
		}
		cancel()
	}()

	// Run application
	if err := run(ctx, *configPath, tuiMode); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, tuiMode bool) error {
	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger (suppress output in TUI mode)
	logLevel := logger.ParseLevel(cfg.App.LogLevel)
	var log *logger.Logger
	if tuiMode {
		log = logger.New(io.Discard, logLevel, cfg.App.Name, nil)
	} else {
		log = logger.New(os.Stderr, logLevel, cfg.App.Name, nil)
		log.Info(ctx, "starting Interest Rate Swap Analyzer",
			"version", version,
			"environment", cfg.App.Environment,
		)
	}

	// Initialize observability if enabled
	var traceProvider apm.TraceProvider
	if cfg.Telemetry.Enabled {
		if cfg.Telemetry.ServiceName != "" {
			os.Setenv("OTEL_SERVICE_NAME", cfg.Telemetry.ServiceName)
		}
		if cfg.Telemetry.OTLPEndpoint != "" {
			os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Telemetry.OTLPEndpoint)
		}

		traceProvider = apm.NewTraceProvider(log, apm.WithProvider(apm.ZipkinProvider, log))
		log.Info(ctx, "tracing initialized", "provider", "zipkin", "endpoint", cfg.Telemetry.OTLPEndpoint)

		metrics.NewMetricProvider(
			metrics.WithServiceName(cfg.Telemetry.ServiceName),
			metrics.WithProviderConfig(metrics.ProviderCfg{
				Provider: metrics.PrometheusProvider,
			}),
		)

		port := cfg.Telemetry.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go metrics.ServePrometheusMetrics(metrics.WithPort(strconv.Itoa(port)))
		log.Info(ctx, "prometheus metrics server started", "port", port)
	}
	defer func() {
		if traceProvider != nil {
			traceProvider.Stop()
		}
	}()

	// Start health check server
	healthServer := health.NewServer(cfg.App.HealthPort, version)
	if err := healthServer.Start(); err != nil {
		log.Warn(ctx, "failed to start health server", "error", err)
	} else {
		log.Info(ctx, "health server started", "port", cfg.App.HealthPort)
	}
	defer healthServer.Stop(ctx)

	// Create monolith (application container)
	mono, err := monolith.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create monolith: %w", err)
	}
	defer mono.Close()

	modules := []monolith.Module{
		&swap.Module{TUIMode: tuiMode},
	}

	if err := mono.RegisterModules(modules...); err != nil {
		return fmt.Errorf("failed to register modules: %w", err)
	}

	analyzer := swapDI.GetAnalyzer(mono.Services())
	reporter := swapDI.GetReporter(mono.Services())

	// Readiness runs the configured scenario through the engine as a canary.
	healthServer.RegisterCheck("analyzer", func(ctx context.Context) (bool, string) {
		if _, err := analyzer.AnalyzeSwap(ctx, requestFromConfig(cfg)); err != nil {
			return false, err.Error()
		}
		return true, ""
	})

	if tuiMode {
		startFunc := func() error {
			return mono.StartModules(ctx, modules...)
		}
		return runTUI(ctx, cfg, analyzer, reporter, startFunc)
	}

	// CLI mode: one analysis from config, printed to stdout
	if err := mono.StartModules(ctx, modules...); err != nil {
		return fmt.Errorf("failed to start modules: %w", err)
	}
	return runCLI(ctx, cfg, analyzer, reporter, log)
}

func runCLI(ctx context.Context, cfg *config.Config, analyzer *swapApp.Analyzer, reporter swapApp.Reporter, log *logger.Logger) error {
	req := requestFromConfig(cfg)

	result, err := analyzer.AnalyzeSwap(ctx, req)
	if err != nil {
		reporter.ReportError(err)
		return err
	}
	reporter.Report(req, result)

	if err := reporter.Stop(); err != nil {
		log.Warn(ctx, "error stopping reporter", "error", err)
	}
	return nil
}

func runTUI(ctx context.Context, cfg *config.Config, analyzer *swapApp.Analyzer, reporter swapApp.Reporter, startFunc func() error) error {
	// Channel to receive the start signal from the welcome screen
	startSignal := make(chan struct{}, 1)
	ui.OnStartModules = func() {
		select {
		case startSignal <- struct{}{}:
		default:
		}
	}

	// Every form change and enter press lands here; results flow back to the
	// TUI through the reporter as messages.
	ui.OnAnalyze = func(req swapApp.Request) {
		result, err := analyzer.AnalyzeSwap(ctx, req)
		if err != nil {
			reporter.ReportError(err)
			return
		}
		reporter.Report(req, result)
	}

	// Create and start the TUI program IMMEDIATELY (shows welcome screen)
	p := tea.NewProgram(ui.New(formValuesFromConfig(cfg)), tea.WithAltScreen())
	ui.Program = p

	errCh := make(chan error, 1)
	go func() {
		select {
		case <-startSignal:
			// Welcome complete, start modules
		case <-ctx.Done():
			errCh <- nil
			return
		}

		if err := startFunc(); err != nil {
			ui.Send(ui.ErrorMsg{Error: err})
			errCh <- err
			return
		}

		// Seed the dashboard with the configured scenario
		ui.OnAnalyze(requestFromConfig(cfg))

		<-ctx.Done()
		errCh <- nil
	}()

	// Run TUI (blocking)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// requestFromConfig builds the configured analysis request.
func requestFromConfig(cfg *config.Config) swapApp.Request {
	var policy swapDomain.AllocationPolicy = swapDomain.EqualSplit{}
	if cfg.Swap.AllocationPolicy == "negotiated" {
		policy = swapDomain.NegotiatedSplit{Ratio: cfg.Swap.RatioADecimal()}
	}

	return swapApp.Request{
		PartyA: partyFromConfig(cfg.PartyA),
		PartyB: partyFromConfig(cfg.PartyB),
		Config: swapApp.SwapConfiguration{
			Notional:            cfg.Swap.NotionalDecimal(),
			TermPeriods:         cfg.Swap.TermPeriods,
			Policy:              policy,
			IntermediaryFeeRate: cfg.Swap.IntermediaryFeeRateDecimal(),
		},
	}
}

func partyFromConfig(pc config.PartyConfig) ratesDomain.Party {
	return ratesDomain.Party{
		Name: pc.Name,
		Quote: ratesDomain.RateQuote{
			FixedRate:    pc.FixedRateDecimal(),
			FloatingRate: pc.FloatingSpreadDecimal(),
		},
		Wants: ratesDomain.Exposure(pc.Wants),
	}
}

// formValuesFromConfig seeds the TUI form. Rates become percent strings, the
// convention the form expects.
func formValuesFromConfig(cfg *config.Config) ui.FormValues {
	hundred := decimal.NewFromInt(100)
	pct := func(v decimal.Decimal) string {
		return v.Mul(hundred).String()
	}

	var ratio decimal.Decimal
	if cfg.Swap.AllocationPolicy == "negotiated" {
		ratio = cfg.Swap.RatioADecimal()
	} else {
		ratio = decimal.New(5, -1)
	}

	return ui.FormValues{
		PartyAName:     cfg.PartyA.Name,
		PartyAFixed:    pct(cfg.PartyA.FixedRateDecimal()),
		PartyAFloating: pct(cfg.PartyA.FloatingSpreadDecimal()),
		PartyAWants:    ratesDomain.Exposure(cfg.PartyA.Wants),
		PartyBName:     cfg.PartyB.Name,
		PartyBFixed:    pct(cfg.PartyB.FixedRateDecimal()),
		PartyBFloating: pct(cfg.PartyB.FloatingSpreadDecimal()),
		Notional:       cfg.Swap.NotionalDecimal().String(),
		RatioA:         ratio.String(),
		FeeRate:        cfg.Swap.IntermediaryFeeRateDecimal().String(),
	}
}
