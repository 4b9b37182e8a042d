// Package report renders an analysis result for the terminal using lipgloss,
// plus a JSON mode for machine consumers.
package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme colors.
var (
	// PrimaryColor is the main theme color (M-PESA green).
	PrimaryColor = lipgloss.Color("#43B02A")
	// SuccessColor indicates approvals.
	SuccessColor = lipgloss.Color("#4CAF50")
	// WarningColor indicates conditional outcomes.
	WarningColor = lipgloss.Color("#FFA726")
	// ErrorColor indicates declines.
	ErrorColor = lipgloss.Color("#EF5350")
	// SubtleColor indicates less prominent text.
	SubtleColor = lipgloss.Color("#666666")
)

// decisionColors maps the recommendation color tags to terminal colors.
var decisionColors = map[string]lipgloss.Color{
	"green":      SuccessColor,
	"lightgreen": lipgloss.Color("#8BC34A"),
	"orange":     WarningColor,
	"red":        ErrorColor,
	"darkred":    lipgloss.Color("#B71C1C"),
}

// Styles contains all styling definitions for report formatting.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Subtle   lipgloss.Style
	Normal   lipgloss.Style
	Score    lipgloss.Style
	ScoreBox lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Reason   lipgloss.Style
}

// NewStyles creates a new Styles instance with default styling.
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Subtle: lipgloss.NewStyle().
			Foreground(SubtleColor),
		Normal: lipgloss.NewStyle(),
		Score: lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		ScoreBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(SubtleColor).
			Width(22),
		Value: lipgloss.NewStyle().
			Bold(true),
		Reason: lipgloss.NewStyle(),
	}
}

// badgeStyle builds the decision badge style for a recommendation color tag.
func (s *Styles) badgeStyle(colorTag string) lipgloss.Style {
	c, ok := decisionColors[colorTag]
	if !ok {
		c = SubtleColor
	}

	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(c).
		Padding(0, 1)
}
