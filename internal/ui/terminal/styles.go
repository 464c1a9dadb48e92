package terminal

import "github.com/charmbracelet/lipgloss"

// Styles holds the terminal UI styles.
type Styles struct {
	Frame     lipgloss.Style
	Work      lipgloss.Style
	Rest      lipgloss.Style
	Finished  lipgloss.Style
	Countdown lipgloss.Style
	Series    lipgloss.Style
	Summary   lipgloss.Style
	Pending   lipgloss.Style
	Error     lipgloss.Style
}

// NewStyles returns the pink and purple palette of the desktop window.
func NewStyles() Styles {
	return Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#C6A0F6")).
			Padding(1, 3),
		Work:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EC70A0")),
		Rest:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#966EC8")),
		Finished:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#60AA78")),
		Countdown: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(1, 0),
		Series:    lipgloss.NewStyle().Foreground(lipgloss.Color("#CAD3F5")),
		Summary:   lipgloss.NewStyle().Faint(true),
		Pending:   lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#EED49F")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("#ED8796")),
	}
}
