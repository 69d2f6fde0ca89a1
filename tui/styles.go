package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#212529")).
			Background(lipgloss.Color("#F8F9FA")).
			Padding(0, 1)

	groupStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#007BFF"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	countStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	foodStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	pickButtonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#28A745")).
			Padding(0, 2).
			MarginTop(1)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#28A745")).
			MarginTop(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#DC3545")).
			Padding(0, 2).
			MarginTop(1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)
