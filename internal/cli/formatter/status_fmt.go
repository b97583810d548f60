package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/service"
)

const statusProgressBarWidth = 20

// FormatStatus renders the season dashboard.
func FormatStatus(v *service.StatusSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s ~ %s   %s %s\n", v.Season.Start, v.Season.End, Dim("today"), v.Today)
	b.WriteString(RenderProgress(v.Progress.Percentage, statusProgressBarWidth))
	fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%d/%d days, %d remaining", v.Progress.PassedDays, v.Progress.TotalDays, v.Progress.RemainingDays)))

	b.WriteString("\n")
	b.WriteString(Header(fmt.Sprintf("Today (%d)", len(v.TodayEvents))))
	b.WriteString("\n")
	writeEventLines(&b, v.TodayEvents, "Nothing planned.")

	b.WriteString("\n")
	b.WriteString(Header("Upcoming"))
	b.WriteString("\n")
	writeEventLines(&b, v.NextEvents, "Nothing ahead.")

	if len(v.Goals) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Goals"))
		b.WriteString("\n")
		for _, g := range v.Goals {
			style := GoalStyle(g.Goal.Color)
			fmt.Fprintf(&b, "%s %s %s\n", CheckMark(g.DoneToday, style), style.Render(g.Goal.Title), Dim(fmt.Sprintf("(%d/%d)", g.DoneCount, v.Progress.TotalDays)))
		}
	}

	b.WriteString("\n")
	b.WriteString(Dim(fmt.Sprintf("%d events in total", v.TotalEvents)))
	return RenderBox(v.Season.Name, b.String())
}

func writeEventLines(b *strings.Builder, events []domain.CalendarEvent, empty string) {
	if len(events) == 0 {
		b.WriteString(Dim(empty) + "\n")
		return
	}
	for _, ev := range events {
		fmt.Fprintf(b, "%s %s %s %s\n", Dim(string(ev.Date)[5:]), ClockOrDash(ev.Time), EventTypeStyle(ev.Type).Render("●"), ev.Title)
	}
}
