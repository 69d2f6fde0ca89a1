package main

import "github.com/charmbracelet/lipgloss"

var (
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#28A745")).Bold(true)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#007BFF")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC3545")).Bold(true)
)

func renderPass(s string) string   { return passStyle.Render(s) }
func renderAccent(s string) string { return accentStyle.Render(s) }
func renderWarn(s string) string   { return warnStyle.Render(s) }
