package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planner/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(title) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TypeBadge renders the event type label in the type's color.
func TypeBadge(t domain.EventType) string {
	return EventTypeStyle(t).Render(t.Label())
}

// ClockOrDash returns the event time, or a dimmed dash for all-day events.
func ClockOrDash(clock string) string {
	if clock == "" {
		return Dim("--:--")
	}
	return StyleFg.Render(clock)
}

// Truncate shortens s to at most width visible cells, marking the cut with
// an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > width-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}

// CheckMark renders a done or not-done marker.
func CheckMark(done bool, style lipgloss.Style) string {
	if done {
		return style.Render("●")
	}
	return Dim("○")
}
