package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

// FormatTracker renders one row per season day and one column per goal,
// with a completion count per goal in the footer.
func FormatTracker(days []calendar.Day, goals []domain.Goal, records domain.GoalRecords) string {
	if len(goals) == 0 {
		return "No goals yet. Add one with `planner goal add <title>`.\n"
	}

	headers := []string{"DATE", ""}
	for _, g := range goals {
		headers = append(headers, GoalStyle(g.Color).Render(g.Title))
	}

	rows := make([][]string, 0, len(days)+1)
	for _, d := range days {
		date := string(d.Key)[5:]
		if d.IsToday {
			date = StyleToday.Render(date)
		}
		weekday := d.WeekdayLabel
		if d.IsWeekend {
			weekday = StyleRed.Render(weekday)
		}
		row := []string{date, weekday}
		for _, g := range goals {
			row = append(row, CheckMark(records.Done(g.ID, d.Key), GoalStyle(g.Color)))
		}
		rows = append(rows, row)
	}

	footer := []string{Bold("TOTAL"), ""}
	for _, g := range goals {
		footer = append(footer, fmt.Sprintf("%d/%d", records.CountDone(g.ID), len(days)))
	}
	rows = append(rows, footer)

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatGoalList renders goals with their ids and completion counts.
func FormatGoalList(goals []domain.Goal, records domain.GoalRecords) string {
	headers := []string{"ID", "GOAL", "DONE"}
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		rows = append(rows, []string{
			Dim(g.ID),
			GoalStyle(g.Color).Render(g.Title),
			fmt.Sprintf("%d", records.CountDone(g.ID)),
		})
	}
	return RenderTable(headers, rows)
}
