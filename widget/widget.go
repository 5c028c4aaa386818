// Package widget provides a Bubble Tea text input that recognizes inline
// "tag:value" markers as the user types. It is a thin adapter over the
// taginput parser: every edit reparses the current value, and a change
// message is produced only when the new result differs structurally from
// the previous one. Cursor placement and focus remain ordinary textinput
// behavior owned by the host program.
package widget

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schmarsch/taginput"
)

// Config defines widget configuration with an optional change callback.
type Config struct {
	Placeholder string
	CharLimit   int
	Width       int

	// Parser classifies the input on every edit. If nil, a dynamic-mode
	// parser (empty registry) is used.
	Parser *taginput.Parser

	// OnChange produces a custom message when the parse result changes.
	// If nil, the widget produces ChangedMsg{Result}.
	OnChange func(res taginput.Result) tea.Msg
}

// ChangedMsg is sent when an edit yields a structurally different parse
// result (if OnChange is nil).
type ChangedMsg struct {
	Result taginput.Result
}

// Model holds the widget state.
type Model struct {
	config Config
	input  textinput.Model
	result taginput.Result
	styles Styles
}

// New creates a widget with the given configuration.
func New(cfg Config) Model {
	if cfg.Parser == nil {
		cfg.Parser = taginput.NewParser(nil)
	}
	ti := textinput.New()
	ti.Placeholder = cfg.Placeholder
	ti.CharLimit = cfg.CharLimit
	if cfg.Width > 0 {
		ti.Width = cfg.Width
	}
	return Model{
		config: cfg,
		input:  ti,
		result: cfg.Parser.Parse(""),
		styles: DefaultStyles(),
	}
}

// SetStyles overrides the badge and text styles.
func (m Model) SetStyles(s Styles) Model {
	m.styles = s
	return m
}

// SetValue replaces the input text and reparses.
func (m Model) SetValue(value string) (Model, tea.Cmd) {
	m.input.SetValue(value)
	return m.reparse()
}

// Value returns the raw input text.
func (m Model) Value() string { return m.input.Value() }

// Result returns the parse result for the current input text.
func (m Model) Result() taginput.Result { return m.result }

// Focus gives the inner text input keyboard focus.
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	return m, cmd
}

// Blur removes keyboard focus.
func (m Model) Blur() Model {
	m.input.Blur()
	return m
}

// Focused reports whether the inner text input has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Init implements tea.Model-style initialization.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update forwards the message to the inner text input and reparses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m, changed := m.reparse()
	return m, tea.Batch(cmd, changed)
}

func (m Model) reparse() (Model, tea.Cmd) {
	next := m.config.Parser.Parse(m.input.Value())
	if next.Equal(m.result) {
		return m, nil
	}
	m.result = next
	return m, m.changeCmd(next)
}

func (m Model) changeCmd(res taginput.Result) tea.Cmd {
	return func() tea.Msg {
		if m.config.OnChange != nil {
			return m.config.OnChange(res)
		}
		return ChangedMsg{Result: res}
	}
}

// View renders detected tags as badges in first-seen order above the input
// line. Badge contents mirror the accumulated values; rendering carries no
// parse semantics.
func (m Model) View() string {
	if len(m.result.DetectedOrder) == 0 {
		return m.input.View()
	}
	badges := make([]string, 0, len(m.result.DetectedOrder))
	for _, name := range m.result.DetectedOrder {
		label := name + ":" + strings.Join(taginput.Strings(m.result.Tags[name]), ",")
		badges = append(badges, m.styles.Badge.Render(label))
	}
	row := strings.Join(badges, " ")
	return lipgloss.JoinVertical(lipgloss.Left, row, m.input.View())
}
