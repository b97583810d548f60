package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planner/internal/domain"
)

// FormatEventList renders events as a table ordered as given.
func FormatEventList(events []domain.CalendarEvent) string {
	headers := []string{"ID", "DATE", "TIME", "TYPE", "TITLE"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{
			Dim(ev.ID.String()),
			string(ev.Date),
			ClockOrDash(ev.Time),
			TypeBadge(ev.Type),
			Bold(ev.Title),
		})
	}
	return RenderTable(headers, rows)
}

// FormatEventDetail renders one event and a summary of its series.
func FormatEventDetail(ev domain.CalendarEvent, seriesEvents []domain.CalendarEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Dim("ID  "), ev.ID)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Date"), ev.Date)
	fmt.Fprintf(&b, "%s  %s\n", Dim("Time"), ClockOrDash(ev.Time))
	fmt.Fprintf(&b, "%s  %s\n", Dim("Type"), TypeBadge(ev.Type))

	if ev.ID.IsOccurrence() && len(seriesEvents) > 0 {
		first, last := seriesEvents[0].Date, seriesEvents[0].Date
		for _, s := range seriesEvents {
			if s.Date < first {
				first = s.Date
			}
			if s.Date > last {
				last = s.Date
			}
		}
		fmt.Fprintf(&b, "\n%s  %d occurrences, %s ~ %s\n", Dim("Series"), len(seriesEvents), first, last)
	}
	return RenderBox(ev.Title, strings.TrimRight(b.String(), "\n"))
}
