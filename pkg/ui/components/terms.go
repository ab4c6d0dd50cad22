// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TermsData holds the constructed swap for display. All values are
// pre-formatted by the caller from domain data.
type TermsData struct {
	Notional      string
	FixedPayer    string
	FloatingPayer string
	FixedPaid     string
	FixedReceived string
	FloatingLeg   string
	Margin        string // "" when the intermediary keeps nothing
}

// OutcomeRow is one party's post-swap position for display.
type OutcomeRow struct {
	Name        string
	BorrowsIn   string
	PaysLeg     string
	ReceivesLeg string
	NetRate     string
	Improvement string
}

// TermsComponent renders swap terms and per-party outcomes.
type TermsComponent struct {
	terms     *TermsData
	outcomes  []OutcomeRow
	noBenefit bool
}

// NewTermsComponent creates a new terms component.
func NewTermsComponent() *TermsComponent {
	return &TermsComponent{}
}

// Set replaces the displayed swap.
func (t *TermsComponent) Set(terms *TermsData, outcomes []OutcomeRow) {
	t.terms = terms
	t.outcomes = outcomes
	t.noBenefit = false
}

// SetNoBenefit clears the swap and shows the no-benefit notice.
func (t *TermsComponent) SetNoBenefit() {
	t.terms = nil
	t.outcomes = nil
	t.noBenefit = true
}

// View renders the terms component.
func (t *TermsComponent) View() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	positiveStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	if t.noBenefit {
		return headerStyle.Render("SWAP TERMS") + "\n" +
			warnStyle.Render("No swap benefit exists for this pairing.")
	}
	if t.terms == nil {
		return headerStyle.Render("SWAP TERMS") + "\n" +
			dimStyle.Render("Waiting for a viable analysis...")
	}

	var sb strings.Builder
	sb.WriteString(headerStyle.Render("SWAP TERMS"))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("Notional: "))
	sb.WriteString(t.terms.Notional)
	sb.WriteString("\n\n")

	// Cash flow diagram between the two legs.
	sb.WriteString(fmt.Sprintf("  %-12s ── fixed %s ──▶ %s\n",
		t.terms.FixedPayer, t.terms.FixedPaid, t.terms.FloatingPayer))
	sb.WriteString(fmt.Sprintf("  %-12s ◀─ %s ────── %s\n",
		t.terms.FixedPayer, t.terms.FloatingLeg, t.terms.FloatingPayer))
	if t.terms.Margin != "" {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  intermediary keeps %s (receives fixed %s, passes on %s)\n",
			t.terms.Margin, t.terms.FixedPaid, t.terms.FixedReceived)))
	}
	sb.WriteString("\n")

	sb.WriteString(headerStyle.Render("OUTCOMES"))
	sb.WriteString("\n")
	for _, o := range t.outcomes {
		sb.WriteString(fmt.Sprintf("  %s\n", o.Name))
		sb.WriteString(dimStyle.Render(fmt.Sprintf("    borrows %s, pays %s leg, receives %s leg\n",
			o.BorrowsIn, o.PaysLeg, o.ReceivesLeg)))
		sb.WriteString(fmt.Sprintf("    net %s, %s\n",
			o.NetRate, positiveStyle.Render(o.Improvement+" better than market")))
	}

	return sb.String()
}
