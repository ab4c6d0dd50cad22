// Package app contains application services and port definitions for the swap context.
package app

import (
	"context"

	"github.com/ratearb/swap-analyzer/business/swap/domain"
)

// Reporter defines the interface for presenting analysis results. The engine
// hands over the full request and result; presentation decisions stay on the
// other side of this port.
type Reporter interface {
	// Start initializes the reporter.
	Start(ctx context.Context) error

	// Report presents one completed analysis.
	Report(req Request, result *domain.AnalysisResult)

	// ReportError presents a failed analysis.
	ReportError(err error)

	// Stop gracefully shuts down the reporter.
	Stop() error
}
