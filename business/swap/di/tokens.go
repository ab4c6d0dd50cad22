// Package di contains dependency injection tokens for the swap context.
package di

import (
	"github.com/ratearb/swap-analyzer/business/swap/app"
	internalDI "github.com/ratearb/swap-analyzer/internal/di"
)

// DI tokens for the swap module.
const (
	Analyzer = "swap.Analyzer"
	Reporter = "swap.Reporter"
)

// GetAnalyzer resolves the analyzer from the registry.
func GetAnalyzer(reg internalDI.ServiceRegistry) *app.Analyzer {
	return internalDI.MustGet[*app.Analyzer](reg, Analyzer)
}

// GetReporter resolves the reporter from the registry.
func GetReporter(reg internalDI.ServiceRegistry) app.Reporter {
	return internalDI.MustGet[app.Reporter](reg, Reporter)
}
