package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planner/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorIndigo = lipgloss.Color("#7c6f9c")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
	StyleToday  = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true).Underline(true)
)

// EventTypeStyle returns the style used for events of type t.
func EventTypeStyle(t domain.EventType) lipgloss.Style {
	switch t {
	case domain.EventStudy:
		return StyleBlue
	case domain.EventFun:
		return StylePurple
	case domain.EventSport:
		return StyleGreen
	case domain.EventTravel:
		return StyleYellow
	default:
		return StyleDim
	}
}

var goalColors = map[string]lipgloss.Color{
	"blue":   ColorBlue,
	"indigo": ColorIndigo,
	"green":  ColorGreen,
	"red":    ColorRed,
	"yellow": ColorYellow,
	"purple": ColorPurple,
	"teal":   ColorAqua,
}

// GoalStyle returns the style for a goal color name. Unknown names fall
// back to indigo.
func GoalStyle(color string) lipgloss.Style {
	c, ok := goalColors[strings.ToLower(color)]
	if !ok {
		c = ColorIndigo
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	line := strings.Repeat("─", lipgloss.Width(text))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(text), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
