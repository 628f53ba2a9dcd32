// Package ui implements the interactive terminal dashboard.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"CommodityPulse/internal/model"
)

// Styles holds the lipgloss styles shared by the dashboard views.
type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Help    lipgloss.Style
	Panel   lipgloss.Style
	Input   lipgloss.Style
}

// DefaultStyles returns the standard dashboard palette.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Input: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
	}
}

// seriesStyle colors text with the catalog color of a series.
func seriesStyle(s model.Series) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color()))
}
