// Package ui provides the Bubble Tea TUI for the swap analyzer.
package ui

import (
	"github.com/ratearb/swap-analyzer/business/swap/app"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
)

// Message types for TUI updates

// ResultMsg is sent when an analysis completes.
type ResultMsg struct {
	Request app.Request
	Result  *domain.AnalysisResult
}

// ErrorMsg is sent when an analysis fails.
type ErrorMsg struct {
	Error error
}

// TickMsg is sent periodically for UI updates.
type TickMsg struct{}

// WelcomeCompleteMsg signals the welcome screen is done (timeout or keypress).
type WelcomeCompleteMsg struct{}

// StartModulesMsg signals that modules should start loading.
type StartModulesMsg struct{}

// LogMsg is sent to display a log message in the UI.
type LogMsg struct {
	Level   string // "info", "warn", "error"
	Message string
}
