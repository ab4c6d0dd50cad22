// Package infra contains infrastructure adapters for the swap context.
package infra

import (
	"context"

	"github.com/ratearb/swap-analyzer/business/swap/app"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
	"github.com/ratearb/swap-analyzer/pkg/ui"
)

// TUIReporter implements Reporter for the Bubble Tea dashboard. It forwards
// results as messages; the UI model owns all rendering state.
type TUIReporter struct{}

// NewTUIReporter creates a new TUIReporter.
func NewTUIReporter() *TUIReporter {
	return &TUIReporter{}
}

// Start initializes the TUI reporter. The Bubble Tea program itself is run by
// the entry point.
func (r *TUIReporter) Start(ctx context.Context) error {
	return nil
}

// Report sends an analysis result to the TUI.
func (r *TUIReporter) Report(req app.Request, result *domain.AnalysisResult) {
	ui.Send(ui.ResultMsg{Request: req, Result: result})
}

// ReportError sends an analysis failure to the TUI.
func (r *TUIReporter) ReportError(err error) {
	ui.Send(ui.ErrorMsg{Error: err})
}

// Stop gracefully shuts down the TUI reporter.
func (r *TUIReporter) Stop() error {
	return nil
}
