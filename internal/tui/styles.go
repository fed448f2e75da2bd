package tui

import "github.com/charmbracelet/lipgloss"

// Shared styles used across preview components.
var (
	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	PaneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	LegendStyle = PaneStyle.MarginTop(1)
)
