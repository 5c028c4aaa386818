package widget

import "github.com/charmbracelet/lipgloss"

// Styles groups the widget's lipgloss styles.
type Styles struct {
	// Badge renders one detected tag as "name:value".
	Badge lipgloss.Style
	// Text renders the default-text portion when a host composes its own
	// layout from the parse result.
	Text lipgloss.Style
}

// DefaultStyles returns the stock badge styling.
func DefaultStyles() Styles {
	return Styles{
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}
