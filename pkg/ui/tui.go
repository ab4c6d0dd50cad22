// Package ui provides the Bubble Tea TUI for the swap analyzer.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	ratesDomain "github.com/ratearb/swap-analyzer/business/rates/domain"
	"github.com/ratearb/swap-analyzer/business/swap/app"
	"github.com/ratearb/swap-analyzer/business/swap/domain"
	"github.com/ratearb/swap-analyzer/internal/ratelimit"
	"github.com/ratearb/swap-analyzer/pkg/ui/components"
)

// Phase represents the current UI phase.
type Phase string

const (
	PhaseWelcome   Phase = "welcome"   // Initial welcome screen
	PhaseDashboard Phase = "dashboard" // Form and results
)

// WelcomeDuration is how long the welcome screen shows before auto-advancing.
const WelcomeDuration = 2 * time.Second

// Form field indices.
const (
	fieldNameA = iota
	fieldFixedA
	fieldFloatingA
	fieldNameB
	fieldFixedB
	fieldFloatingB
	fieldNotional
	fieldRatioA
	fieldFee
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Party A name",
	"Party A fixed rate (%)",
	"Party A floating spread (%)",
	"Party B name",
	"Party B fixed rate (%)",
	"Party B floating spread (%)",
	"Notional",
	"Party A gain ratio",
	"Intermediary fee ratio",
}

// FormValues seeds the input form. Rates are percent strings, matching how
// dealers quote them ("10.45" for 10.45%).
type FormValues struct {
	PartyAName     string
	PartyAFixed    string
	PartyAFloating string
	PartyAWants    ratesDomain.Exposure

	PartyBName     string
	PartyBFixed    string
	PartyBFloating string

	Notional string
	RatioA   string
	FeeRate  string
}

// ErrorEntry represents an error with timestamp.
type ErrorEntry struct {
	Message   string
	Timestamp time.Time
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Components
	quotes *components.QuotesComponent
	terms  *components.TermsComponent

	// Phase state
	phase        Phase
	welcomeStart time.Time

	// Form state
	keys    KeyMap
	inputs  [fieldCount]textinput.Model
	focus   int
	wantsA  ratesDomain.Exposure
	initial FormValues
	formErr string
	dirty   bool
	limiter *ratelimit.Limiter

	// State
	ready    bool
	quitting bool
	width    int
	height   int
	request  *app.Request
	result   *domain.AnalysisResult
	errors   []ErrorEntry // Persistent error panel (last 3)
	analyses uint64
}

// New creates a new TUI model seeded from the given form values.
func New(initial FormValues) Model {
	m := Model{
		quotes:       components.NewQuotesComponent(),
		terms:        components.NewTermsComponent(),
		phase:        PhaseWelcome,
		welcomeStart: time.Now(),
		keys:         DefaultKeyMap(),
		wantsA:       initial.PartyAWants,
		initial:      initial,
		errors:       make([]ErrorEntry, 0, 3),
		// Live recompute runs at most a few times per second while typing.
		limiter: ratelimit.NewWithBurst(4, 1),
	}
	if !m.wantsA.Valid() {
		m.wantsA = ratesDomain.ExposureFixed
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 24
		in.Width = 16
		m.inputs[i] = in
	}
	m.setFormValues(initial)
	m.inputs[m.focus].Focus()
	return m
}

func (m *Model) setFormValues(v FormValues) {
	m.inputs[fieldNameA].SetValue(v.PartyAName)
	m.inputs[fieldFixedA].SetValue(v.PartyAFixed)
	m.inputs[fieldFloatingA].SetValue(v.PartyAFloating)
	m.inputs[fieldNameB].SetValue(v.PartyBName)
	m.inputs[fieldFixedB].SetValue(v.PartyBFixed)
	m.inputs[fieldFloatingB].SetValue(v.PartyBFloating)
	m.inputs[fieldNotional].SetValue(v.Notional)
	m.inputs[fieldRatioA].SetValue(v.RatioA)
	m.inputs[fieldFee].SetValue(v.FeeRate)
}

// Init initializes the TUI model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// tickCmd returns a command that sends a tick every 100ms for smooth animations.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{}
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		// During welcome phase, any other key skips to the dashboard
		if m.phase == PhaseWelcome {
			m.advanceToDashboard()
			return m, tickCmd()
		}
		switch {
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Analyze):
			m.analyzeNow()
			return m, nil
		case key.Matches(msg, m.keys.Flip):
			m.wantsA = m.wantsA.Opposite()
			m.dirty = true
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			m.setFormValues(m.initial)
			m.wantsA = m.initial.PartyAWants
			m.formErr = ""
			m.dirty = true
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.errors = make([]ErrorEntry, 0, 3)
			return m, nil
		}
		// Forward typing to the focused input and mark the form dirty so the
		// next tick recomputes.
		var cmd tea.Cmd
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before {
			m.dirty = true
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		if m.phase == PhaseWelcome && time.Since(m.welcomeStart) >= WelcomeDuration {
			m.advanceToDashboard()
		}
		// Throttled live recompute while the user types.
		if m.dirty && m.limiter.Allow() {
			m.analyzeNow()
		}
		return m, tickCmd()

	case ResultMsg:
		m.request = &msg.Request
		m.result = msg.Result
		m.analyses++
		m.updateComponents()

	case ErrorMsg:
		m.errors = append(m.errors, ErrorEntry{
			Message:   msg.Error.Error(),
			Timestamp: time.Now(),
		})
		if len(m.errors) > 3 {
			m.errors = m.errors[len(m.errors)-3:]
		}
	}

	return m, nil
}

func (m *Model) advanceToDashboard() {
	m.phase = PhaseDashboard
	// Trigger callback directly (don't use Send() from within Update)
	if OnStartModules != nil {
		go OnStartModules()
	}
	m.dirty = true
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// analyzeNow parses the form and hands the request to the analyze callback.
// Parse failures stay local to the form; only engine failures reach the
// error panel.
func (m *Model) analyzeNow() {
	m.dirty = false
	req, err := m.buildRequest()
	if err != nil {
		m.formErr = err.Error()
		return
	}
	m.formErr = ""
	if OnAnalyze != nil {
		go OnAnalyze(req)
	}
}

func (m *Model) buildRequest() (app.Request, error) {
	parsePercent := func(field int) (decimal.Decimal, error) {
		raw := strings.TrimSpace(m.inputs[field].Value())
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%s: %q is not a number", fieldLabels[field], raw)
		}
		return d.Div(decimal.NewFromInt(100)), nil
	}
	parseNumber := func(field int) (decimal.Decimal, error) {
		raw := strings.TrimSpace(m.inputs[field].Value())
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("%s: %q is not a number", fieldLabels[field], raw)
		}
		return d, nil
	}

	fixedA, err := parsePercent(fieldFixedA)
	if err != nil {
		return app.Request{}, err
	}
	floatingA, err := parsePercent(fieldFloatingA)
	if err != nil {
		return app.Request{}, err
	}
	fixedB, err := parsePercent(fieldFixedB)
	if err != nil {
		return app.Request{}, err
	}
	floatingB, err := parsePercent(fieldFloatingB)
	if err != nil {
		return app.Request{}, err
	}
	notional, err := parseNumber(fieldNotional)
	if err != nil {
		return app.Request{}, err
	}
	ratioA, err := parseNumber(fieldRatioA)
	if err != nil {
		return app.Request{}, err
	}
	fee, err := parseNumber(fieldFee)
	if err != nil {
		return app.Request{}, err
	}

	nameA := strings.TrimSpace(m.inputs[fieldNameA].Value())
	nameB := strings.TrimSpace(m.inputs[fieldNameB].Value())
	if nameA == "" || nameB == "" {
		return app.Request{}, fmt.Errorf("both parties need a name")
	}

	var policy domain.AllocationPolicy = domain.NegotiatedSplit{Ratio: ratioA}
	if ratioA.Equal(decimal.New(5, -1)) {
		policy = domain.EqualSplit{}
	}

	return app.Request{
		PartyA: ratesDomain.Party{
			Name:  nameA,
			Quote: ratesDomain.RateQuote{FixedRate: fixedA, FloatingRate: floatingA},
			Wants: m.wantsA,
		},
		PartyB: ratesDomain.Party{
			Name:  nameB,
			Quote: ratesDomain.RateQuote{FixedRate: fixedB, FloatingRate: floatingB},
			Wants: m.wantsA.Opposite(),
		},
		Config: app.SwapConfiguration{
			Notional:            notional,
			Policy:              policy,
			IntermediaryFeeRate: fee,
		},
	}, nil
}

// updateComponents refreshes the display components from the latest result.
// Formatting uses the domain formatters; the components never calculate.
func (m *Model) updateComponents() {
	if m.request == nil || m.result == nil {
		return
	}
	req, res := m.request, m.result

	rows := make([]components.QuoteRow, 0, 2)
	for _, p := range []struct {
		party   ratesDomain.Party
		outcome domain.PartyOutcome
		holder  domain.Holder
	}{
		{req.PartyA, res.PartyA, domain.HolderPartyA},
		{req.PartyB, res.PartyB, domain.HolderPartyB},
	} {
		rows = append(rows, components.QuoteRow{
			Name:        p.party.Name,
			Fixed:       ratesDomain.FormatPercent(p.party.Quote.FixedRate),
			Floating:    ratesDomain.FormatSpread(p.party.Quote.FloatingRate),
			Wants:       p.party.Wants.String(),
			Comparative: p.outcome.ComparativeMarket.String(),
			Absolute: res.Advantage.FixedAdvantage == p.holder &&
				res.Advantage.FloatingAdvantage == p.holder,
		})
	}
	m.quotes.Set(rows,
		ratesDomain.FormatPercent(res.Advantage.QualitySpread),
		ratesDomain.FormatPercent(res.TotalGain),
		res.Viable(),
	)

	if !res.Viable() {
		m.terms.SetNoBenefit()
		return
	}

	terms := res.Terms
	margin := ""
	if terms.IntermediaryMargin.Sign() > 0 {
		margin = ratesDomain.FormatPercent(terms.IntermediaryMargin)
	}
	outcomes := make([]components.OutcomeRow, 0, 2)
	for _, o := range []domain.PartyOutcome{res.PartyA, res.PartyB} {
		outcomes = append(outcomes, components.OutcomeRow{
			Name:        o.Party,
			BorrowsIn:   o.BorrowsIn.String(),
			PaysLeg:     o.PaysLeg.String(),
			ReceivesLeg: o.ReceivesLeg.String(),
			NetRate:     ratesDomain.FormatRate(o.NetEffectiveRate, o.Wants),
			Improvement: ratesDomain.FormatPercent(o.MarketImprovement),
		})
	}
	m.terms.Set(&components.TermsData{
		Notional:      terms.Notional.StringFixed(2),
		FixedPayer:    terms.FixedPayer,
		FloatingPayer: terms.FloatingPayer,
		FixedPaid:     ratesDomain.FormatPercent(terms.FixedRatePaid),
		FixedReceived: ratesDomain.FormatPercent(terms.FixedRateReceived),
		FloatingLeg:   ratesDomain.FormatSpread(terms.FloatingSpread),
		Margin:        margin,
	}, outcomes)
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "\n  Goodbye!\n\n"
	}
	if m.phase == PhaseWelcome {
		return m.renderWelcomeScreen()
	}

	var b strings.Builder

	title := TitleStyle.Render(" Interest Rate Swap Analyzer ")
	b.WriteString(title)
	b.WriteString("\n\n")

	leftCol := m.renderForm()
	var rightContent strings.Builder
	rightContent.WriteString(m.quotes.View())
	rightContent.WriteString("\n\n")
	rightContent.WriteString(m.terms.View())
	rightCol := rightContent.String()

	if m.width > 100 {
		left := BoxStyle.Width(40).Render(leftCol)
		right := BoxStyle.Width(m.width - 48).Render(rightCol)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	} else {
		b.WriteString(BoxStyle.Width(m.width - 4).Render(leftCol))
		b.WriteString("\n")
		b.WriteString(BoxStyle.Width(m.width - 4).Render(rightCol))
	}

	b.WriteString("\n")

	// Persistent error panel (show last 3 errors)
	if len(m.errors) > 0 {
		errorStyle := lipgloss.NewStyle().Foreground(ColorDanger)
		errorHeader := lipgloss.NewStyle().Bold(true).Foreground(ColorDanger)
		mutedError := lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))

		b.WriteString(errorHeader.Render("ERRORS"))
		b.WriteString(mutedError.Render(" (ctrl+e: clear)"))
		b.WriteString("\n")
		for _, err := range m.errors {
			ago := time.Since(err.Timestamp).Round(time.Second)
			b.WriteString(errorStyle.Render(fmt.Sprintf("  • %s ", err.Message)))
			b.WriteString(mutedError.Render(fmt.Sprintf("(%s ago)", ago)))
			b.WriteString("\n")
		}
	}

	helpText := "esc: quit • tab: next field • enter: analyze • ctrl+f: flip exposures • ctrl+r: reset"
	b.WriteString(HelpStyle.Render(helpText))

	return b.String()
}

// renderForm renders the quote entry form.
func (m Model) renderForm() string {
	var sb strings.Builder
	header := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	sb.WriteString(header.Render("QUOTES"))
	sb.WriteString("\n\n")

	for i := 0; i < fieldCount; i++ {
		label := LabelStyle
		marker := "  "
		if i == m.focus {
			label = FocusedLabelStyle
			marker = "▸ "
		}
		sb.WriteString(marker)
		sb.WriteString(label.Render(fmt.Sprintf("%-28s", fieldLabels[i])))
		sb.WriteString("\n  ")
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
		// Exposure toggle rendered with party A's inputs.
		if i == fieldFloatingA {
			sb.WriteString("  ")
			sb.WriteString(LabelStyle.Render(fmt.Sprintf("wants %s (B wants %s)",
				m.wantsA, m.wantsA.Opposite())))
			sb.WriteString("\n")
		}
	}

	if m.formErr != "" {
		sb.WriteString("\n")
		sb.WriteString(NegativeValue.Render("  " + m.formErr))
		sb.WriteString("\n")
	}
	if m.analyses > 0 {
		sb.WriteString("\n")
		sb.WriteString(MutedValue.Render(fmt.Sprintf("  analyses: %d", m.analyses)))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderWelcomeScreen renders the animated welcome screen.
func (m Model) renderWelcomeScreen() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#7C3AED"))

	mutedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#6B7280"))

	greenStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10B981"))

	elapsed := time.Since(m.welcomeStart)
	dotCount := int(elapsed.Milliseconds()/300) % 4
	dots := strings.Repeat(".", dotCount)

	var sb strings.Builder
	sb.WriteString("\n\n\n\n")

	logo := `
   ███████╗██╗    ██╗ █████╗ ██████╗
   ██╔════╝██║    ██║██╔══██╗██╔══██╗
   ███████╗██║ █╗ ██║███████║██████╔╝
   ╚════██║██║███╗██║██╔══██║██╔═══╝
   ███████║╚███╔███╔╝██║  ██║██║
   ╚══════╝ ╚══╝╚══╝ ╚═╝  ╚═╝╚═╝
`
	sb.WriteString(titleStyle.Render(logo))
	sb.WriteString("\n")

	subtitle := "        I N T E R E S T   R A T E   A N A L Y Z E R"
	sb.WriteString(mutedStyle.Render(subtitle))
	sb.WriteString("\n\n\n")

	loading := fmt.Sprintf("                  Initializing%s", dots)
	sb.WriteString(greenStyle.Render(loading))
	sb.WriteString("\n\n")

	hint := "            Press any key to skip, or wait..."
	sb.WriteString(mutedStyle.Render(hint))
	sb.WriteString("\n")

	return sb.String()
}

// Program holds the Bubble Tea program instance for external access.
var Program *tea.Program

// OnStartModules is called when the welcome screen completes and modules should start.
// This is set by main.go to signal when to begin loading modules.
var OnStartModules func()

// OnAnalyze is called with a parsed request whenever the form changes or the
// user presses enter. Set by main.go; results come back as ResultMsg.
var OnAnalyze func(req app.Request)

// Run starts the Bubble Tea program.
func Run(initial FormValues) error {
	Program = tea.NewProgram(New(initial), tea.WithAltScreen())
	_, err := Program.Run()
	return err
}

// Send sends a message to the running program.
func Send(msg tea.Msg) {
	if Program != nil {
		Program.Send(msg)
	}
	if _, ok := msg.(StartModulesMsg); ok && OnStartModules != nil {
		OnStartModules()
	}
}
