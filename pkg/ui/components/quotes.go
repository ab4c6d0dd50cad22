// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// QuoteRow represents one party in the quote table. All values are
// pre-formatted by the caller from domain data.
type QuoteRow struct {
	Name        string
	Fixed       string
	Floating    string
	Wants       string
	Comparative string // market of comparative advantage, "" on a tie
	Absolute    bool   // holds the absolute advantage in both markets
}

// QuotesComponent renders the market quote comparison table.
type QuotesComponent struct {
	rows          []QuoteRow
	qualitySpread string
	totalGain     string
	viable        bool
}

// NewQuotesComponent creates a new quotes component.
func NewQuotesComponent() *QuotesComponent {
	return &QuotesComponent{rows: make([]QuoteRow, 0, 2)}
}

// Set replaces the displayed quote data.
func (q *QuotesComponent) Set(rows []QuoteRow, qualitySpread, totalGain string, viable bool) {
	q.rows = rows
	q.qualitySpread = qualitySpread
	q.totalGain = totalGain
	q.viable = viable
}

// View renders the quotes component.
func (q *QuotesComponent) View() string {
	if len(q.rows) == 0 {
		return "Enter quotes to compare markets..."
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	positiveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	negativeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("MARKET QUOTES"))
	sb.WriteString("\n")
	sb.WriteString("┌──────────────┬─────────┬──────────┬──────────┬─────────────┐\n")
	sb.WriteString("│    Party     │  Fixed  │ Floating │  Wants   │  Advantage  │\n")
	sb.WriteString("├──────────────┼─────────┼──────────┼──────────┼─────────────┤\n")
	for _, row := range q.rows {
		adv := row.Comparative
		if adv == "" {
			adv = "tie"
		}
		advCell := fmt.Sprintf("%-11s", adv)
		if row.Comparative != "" {
			advCell = positiveStyle.Render(advCell)
		} else {
			advCell = dimStyle.Render(advCell)
		}
		sb.WriteString(fmt.Sprintf("│ %-12s │ %7s │ %8s │ %-8s │ %s │\n",
			row.Name, row.Fixed, row.Floating, row.Wants, advCell))
	}
	sb.WriteString("└──────────────┴─────────┴──────────┴──────────┴─────────────┘\n")

	sb.WriteString(dimStyle.Render("Quality spread: "))
	sb.WriteString(q.qualitySpread)
	sb.WriteString(dimStyle.Render("   Total gain: "))
	if q.viable {
		sb.WriteString(positiveStyle.Render(q.totalGain))
	} else {
		sb.WriteString(negativeStyle.Render(q.totalGain))
	}

	for _, row := range q.rows {
		if row.Absolute {
			sb.WriteString("\n")
			sb.WriteString(dimStyle.Render(fmt.Sprintf("%s holds the absolute advantage in both markets", row.Name)))
		}
	}

	return sb.String()
}
