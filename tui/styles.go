package tui

import "github.com/charmbracelet/lipgloss"

const (
	ColorAccent = lipgloss.Color("205")
	ColorMuted  = lipgloss.Color("241")
	ColorBorder = lipgloss.Color("63")
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(ColorAccent).
			Padding(0, 2).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().Foreground(ColorMuted).MarginTop(1)
)
