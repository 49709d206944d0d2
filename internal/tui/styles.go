package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	subtitleStyle   = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// tabStyle renders a category tab in the category's own color.
func tabStyle(color string, active bool) lipgloss.Style {
	s := lipgloss.NewStyle().Padding(0, 1)
	if color != "" {
		s = s.Foreground(lipgloss.Color(color))
	}
	if active {
		s = s.Bold(true).Underline(true)
	}
	return s
}
