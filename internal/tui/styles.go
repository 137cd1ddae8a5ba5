// Package tui provides the interactive terminal surfaces: forms for
// credential entry, rendered tables for listings, and the mentor browser.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared across the TUI surfaces.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Header  lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		Header: lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")),
	}
}
