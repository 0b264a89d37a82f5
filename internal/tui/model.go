// Package tui is the Bubble Tea front end. It walks the same menu, operand,
// result and reset steps as the line loop, driving a shared Session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/simple-calc/calc/internal/calc"
	"github.com/simple-calc/calc/internal/format"
	"github.com/simple-calc/calc/internal/history"
	"github.com/simple-calc/calc/internal/menu"
	"github.com/simple-calc/calc/internal/session"
	"github.com/simple-calc/calc/internal/theme"
)

// Phase is the step the calculator is waiting on.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseOperands
	PhaseResult
	PhaseConfirmReset
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHistory
	OverlayHelp
)

// Model is the root Bubble Tea model.
type Model struct {
	sess       *session.Session
	ctx        context.Context
	formatter  format.Formatter
	timeLayout string
	helpStyle  string

	keys   KeyMap
	help   help.Model
	input  textinput.Model
	width  int
	height int

	phase       Phase
	overlay     Overlay
	interrupted bool
	exited      bool

	// Operation in progress.
	pending  calc.Operation
	operands []float64
	prompts  []string

	last    history.Entry
	notice  string
	errMsg  string
	status  string
	helpOut string
}

// Option configures a Model.
type Option func(*Model)

func WithFormatter(f format.Formatter) Option {
	return func(m *Model) {
		m.formatter = f
	}
}

func WithTimeLayout(layout string) Option {
	return func(m *Model) {
		if layout != "" {
			m.timeLayout = layout
		}
	}
}

// WithHelpStyle selects the glamour style of the help overlay.
func WithHelpStyle(style string) Option {
	return func(m *Model) {
		if style != "" {
			m.helpStyle = style
		}
	}
}

// New creates the root model around sess.
func New(ctx context.Context, sess *session.Session, opts ...Option) Model {
	in := textinput.New()
	in.Placeholder = "number or " + sess.AnsToken()
	in.CharLimit = 64

	m := Model{
		sess:       sess,
		ctx:        ctx,
		formatter:  format.New(),
		timeLayout: history.DefaultTimeLayout,
		helpStyle:  DefaultHelpStyle,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		input:      in,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Phase returns the step the model is waiting on.
func (m Model) Phase() Phase { return m.phase }

// Overlay returns the active overlay.
func (m Model) Overlay() Overlay { return m.overlay }

// Interrupted reports whether the user quit with ctrl+c.
func (m Model) Interrupted() bool { return m.interrupted }

// Exited reports whether the user left through the menu or the quit key.
func (m Model) Exited() bool { return m.exited }

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.helpOut = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.phase == PhaseOperands {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Interrupt) {
		m.interrupted = true
		return m, tea.Quit
	}

	if m.overlay != OverlayNone {
		if key.Matches(msg, m.keys.Escape, m.keys.Quit, m.keys.Enter) {
			m.overlay = OverlayNone
		}
		return m, nil
	}

	switch m.phase {
	case PhaseOperands:
		return m.handleOperandKey(msg)
	case PhaseResult:
		return m.handleChainKey(msg)
	case PhaseConfirmReset:
		return m.handleResetKey(msg)
	}
	return m.handleMenuKey(msg)
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.exited = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		m.helpOut = renderHelp(m.helpStyle, m.panelWidth()-4, m.sess.AnsToken())
		return m, nil
	}

	if msg.Type != tea.KeyRunes {
		return m, nil
	}
	choice, err := menu.Parse(msg.String())
	if err != nil {
		m.errMsg = menu.Message(err)
		return m, nil
	}
	m.errMsg = ""
	m.status = ""

	switch c := choice.(type) {
	case menu.Calculate:
		return m.startOperation(c.Op)
	case menu.ShowHistory:
		m.overlay = OverlayHistory
	case menu.ClearHistory:
		m.sess.ClearHistory(m.ctx)
		m.status = "Calculation history cleared!"
	case menu.Exit:
		m.exited = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) startOperation(op calc.Operation) (tea.Model, tea.Cmd) {
	m.pending = op
	m.operands = make([]float64, 0, op.Arity())
	m.prompts = op.Prompts()
	m.notice = ""

	if v, ok := m.sess.ChainedOperand(op); ok {
		m.operands = append(m.operands, v)
		m.prompts = m.prompts[1:]
		m.notice = "Using previous result: " + m.formatter.Number(v)
	}

	m.phase = PhaseOperands
	m.input.Reset()
	m.input.Prompt = m.prompts[0]
	return m, m.input.Focus()
}

func (m Model) handleOperandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.input.Blur()
		m.phase = PhaseMenu
		m.notice = ""
		m.errMsg = ""
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		v, err := m.sess.ParseOperand(m.input.Value())
		if err != nil {
			m.errMsg = fmt.Sprintf("Invalid input! Please enter a valid number or '%s' for previous result.", m.sess.AnsToken())
			m.input.Reset()
			return m, nil
		}
		m.errMsg = ""
		m.operands = append(m.operands, v)
		m.prompts = m.prompts[1:]
		m.input.Reset()

		if len(m.prompts) > 0 {
			m.input.Prompt = m.prompts[0]
			return m, nil
		}
		return m.finishOperation()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) finishOperation() (tea.Model, tea.Cmd) {
	m.input.Blur()
	m.notice = ""

	entry, err := m.sess.Calculate(m.ctx, m.pending, m.operands...)
	if err != nil {
		m.errMsg = "Error: " + capitalize(err.Error())
		m.phase = PhaseMenu
		return m, nil
	}
	m.last = entry
	m.phase = PhaseResult
	return m, nil
}

func (m Model) handleChainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.sess.Chain(m.ctx, true)
		m.phase = PhaseMenu
	case key.Matches(msg, m.keys.No):
		m.sess.Chain(m.ctx, false)
		m.phase = PhaseConfirmReset
	}
	return m, nil
}

func (m Model) handleResetKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.sess.Reset(m.ctx)
		m.status = "Calculator reset."
		m.phase = PhaseMenu
	case key.Matches(msg, m.keys.No):
		m.phase = PhaseMenu
	}
	return m, nil
}

// View renders the full TUI.
func (m Model) View() string {
	switch m.overlay {
	case OverlayHistory:
		return m.renderHistory()
	case OverlayHelp:
		return m.renderHelp()
	}

	sections := []string{
		m.renderStatusBar(),
		m.renderBody(),
	}
	if m.notice != "" {
		sections = append(sections, lipgloss.NewStyle().Foreground(theme.ColorWarning).Render(m.notice))
	}
	if m.errMsg != "" {
		sections = append(sections, theme.StyleError.Render("✗ "+m.errMsg))
	}
	if m.status != "" {
		sections = append(sections, theme.StyleSuccess.Render("✓ "+m.status))
	}
	sections = append(sections, "", m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatusBar() string {
	mode := "fresh"
	if !m.sess.Fresh() {
		mode = "chaining"
	}
	content := fmt.Sprintf("ans = %s  %s  %d in history",
		m.formatter.Number(m.sess.Current()), mode, m.sess.History().Len())

	width := m.width
	if width < 40 {
		width = 40
	}
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(theme.ColorBorder).
		Render(theme.StyleHeader.Render("SIMPLE CALCULATOR") + "  " + theme.StyleDimmed.Render(content))
}

func (m Model) renderBody() string {
	switch m.phase {
	case PhaseOperands:
		title := theme.StyleSelected.Foreground(theme.OperationColor(m.pending)).
			Render(fmt.Sprintf("%s (%s)", m.pending, m.pending.Symbol()))
		return lipgloss.JoinVertical(lipgloss.Left, title, theme.StyleBorder.Render(m.input.View()))

	case PhaseResult, PhaseConfirmReset:
		result := theme.StyleResult.Render(fmt.Sprintf("%s = %s",
			m.formatter.Expression(m.last.Operation, m.last.Operands),
			m.formatter.Number(m.last.Result)))
		question := "Perform another operation with this result? (y/n)"
		if m.phase == PhaseConfirmReset {
			question = "Reset calculator? (y/n)"
		}
		return lipgloss.JoinVertical(lipgloss.Left, result, question)
	}

	lines := []string{theme.StyleHeader.Render("Available Operations:")}
	for _, it := range menu.Items() {
		label := it.Label
		if c, ok := it.Choice.(menu.Calculate); ok {
			label = lipgloss.NewStyle().Foreground(theme.OperationColor(c.Op)).Render(label)
		}
		lines = append(lines, fmt.Sprintf("  %d. %s", it.Key, label))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderHistory() string {
	var b strings.Builder
	if err := history.Render(&b, m.sess.History().Entries(), m.formatter, m.timeLayout); err != nil {
		b.WriteString(err.Error())
	}
	body := strings.Trim(b.String(), "\n")
	hint := theme.StyleDimmed.Render("esc:close")
	return theme.Panel(m.panelWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, body, "", hint))
}

func (m Model) renderHelp() string {
	out := m.helpOut
	if out == "" {
		out = renderHelp(m.helpStyle, m.panelWidth()-4, m.sess.AnsToken())
	}
	hint := theme.StyleDimmed.Render("esc:close")
	return theme.Panel(m.panelWidth()).Render(lipgloss.JoinVertical(lipgloss.Left, out, hint))
}

func (m Model) panelWidth() int {
	w := m.width - 4
	if w < 64 {
		w = 64
	}
	return w
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
