// Package swap implements the swap bounded context: the comparative-advantage
// analysis engine and its reporting adapters.
package swap

import (
	"context"

	"github.com/ratearb/swap-analyzer/business/swap/app"
	swapDI "github.com/ratearb/swap-analyzer/business/swap/di"
	"github.com/ratearb/swap-analyzer/business/swap/infra"
	"github.com/ratearb/swap-analyzer/internal/di"
	"github.com/ratearb/swap-analyzer/internal/logger"
	"github.com/ratearb/swap-analyzer/internal/monolith"
)

// Module wires the swap context into the monolith.
type Module struct {
	// TUIMode selects the reporter adapter.
	TUIMode bool
}

// RegisterServices registers the analyzer and reporter with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	log := di.MustGet[logger.LoggerInterface](c, "logger")

	var reporter app.Reporter
	if m.TUIMode {
		reporter = infra.NewTUIReporter()
	} else {
		reporter = infra.NewConsoleReporter()
	}

	c.Register(swapDI.Analyzer, app.NewAnalyzer(log))
	c.Register(swapDI.Reporter, reporter)
	return nil
}

// Startup starts the reporter.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	return swapDI.GetReporter(mono.Services()).Start(ctx)
}
