package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

const (
	gridCellWidth     = 12
	gridEventsPerCell = 2
)

// FormatGrid renders the season calendar as Sunday-first week rows. Each
// cell shows the day number, the month marker where the month starts, and
// up to two event titles. Days outside the season are dimmed and left empty.
func FormatGrid(season calendar.Season, cells []calendar.DateCellInfo, byDate map[domain.DateKey][]domain.CalendarEvent) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s ~ %s", season.Name, season.Start, season.End)
	b.WriteString(Header(title))
	b.WriteString("\n")

	labels := make([]string, len(calendar.WeekdayLabels))
	for i, l := range calendar.WeekdayLabels {
		style := StyleHeader
		if i == 0 || i == 6 {
			style = StyleRed
		}
		labels[i] = style.Render(l)
	}
	b.WriteString(gridLine(labels))

	for _, week := range calendar.Weeks(cells) {
		lines := make([][]string, gridEventsPerCell+1)
		for i := range lines {
			lines[i] = make([]string, len(week))
		}
		for col, cell := range week {
			lines[0][col] = dayLabel(cell)
			if !cell.InSeasonRange {
				continue
			}
			events := byDate[cell.Key]
			for i := 0; i < gridEventsPerCell && i < len(events); i++ {
				lines[i+1][col] = eventChip(events[i], len(events) > gridEventsPerCell && i == gridEventsPerCell-1, len(events)-i)
			}
		}
		for _, l := range lines {
			b.WriteString(gridLine(l))
		}
		b.WriteString(StyleDim.Render(strings.Repeat("·", gridCellWidth*7)))
		b.WriteString("\n")
	}
	return b.String()
}

func dayLabel(cell calendar.DateCellInfo) string {
	text := fmt.Sprintf("%d", cell.DayOfMonth)
	if cell.MonthLabel != "" {
		text = cell.MonthLabel + text
	}
	switch {
	case !cell.InSeasonRange:
		return Dim(text)
	case cell.IsToday:
		return StyleToday.Render(text)
	case cell.IsWeekend:
		return StyleRed.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// eventChip renders one event line of a cell. When more events are hidden
// the last visible line is replaced by a "+N" marker.
func eventChip(ev domain.CalendarEvent, overflow bool, remaining int) string {
	if overflow {
		return Dim(fmt.Sprintf("+%d", remaining))
	}
	return EventTypeStyle(ev.Type).Render(Truncate(ev.Title, gridCellWidth-1))
}

func gridLine(cells []string) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", max(gridCellWidth-lipgloss.Width(c), 1)))
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}
