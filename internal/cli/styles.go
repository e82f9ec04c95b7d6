// Package cli implements the command surface: the analyze report, the
// exchange listing, config management and the interactive prompts.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/avakin/stocksage/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E5E7EB"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#22D3EE"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E5E7EB"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	bullishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	bearishStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	neutralStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))

	recBuyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	recSellStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	recHoldStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F59E0B"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	disclaimerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F59E0B"))
)

// disableColor forces plain output regardless of terminal detection.
func disableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// directionStyle picks the style matching a signal direction.
func directionStyle(d models.Direction) lipgloss.Style {
	switch d {
	case models.Bullish:
		return bullishStyle
	case models.Bearish:
		return bearishStyle
	default:
		return neutralStyle
	}
}
