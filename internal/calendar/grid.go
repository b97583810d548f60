package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/planner/internal/domain"
)

// Season is the fixed, inclusive date range the planner covers.
type Season struct {
	Name  string
	Start domain.DateKey
	End   domain.DateKey
}

// Validate checks both bounds parse and are ordered.
func (s Season) Validate() error {
	start, err := ParseLocalDate(s.Start)
	if err != nil {
		return fmt.Errorf("season start: %w", err)
	}
	end, err := ParseLocalDate(s.End)
	if err != nil {
		return fmt.Errorf("season end: %w", err)
	}
	if end.Before(start) {
		return fmt.Errorf("season: %w", ErrEmptyRange)
	}
	return nil
}

// Contains reports whether key lies within the season.
func (s Season) Contains(key domain.DateKey) bool {
	return key >= s.Start && key <= s.End
}

// Days enumerates the season day by day.
func (s Season) Days(today time.Time) ([]Day, error) {
	return EnumerateRange(s.Start, s.End, today)
}

// DateCellInfo describes one cell of the calendar grid. It is derived on
// every render and never persisted.
type DateCellInfo struct {
	Date          time.Time
	Key           domain.DateKey
	InSeasonRange bool
	IsToday       bool
	IsWeekend     bool
	DayOfMonth    int
	MonthLabel    string
}

// MonthLabel renders the month marker shown on grid cells, e.g. "1月".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%d月", int(t.Month()))
}

// BuildGrid lays the season out in whole Sunday-to-Saturday weeks. The grid
// starts on the Sunday on or before the season start and ends on the
// Saturday on or after the season end, so its length is a multiple of 7.
// The first cell and every first-of-month cell carry a month label.
func BuildGrid(season Season, today time.Time) ([]DateCellInfo, error) {
	if err := season.Validate(); err != nil {
		return nil, err
	}
	start := MustParseLocalDate(season.Start)
	end := MustParseLocalDate(season.End)

	gridStart := start.AddDate(0, 0, -int(start.Weekday()))
	gridEnd := end.AddDate(0, 0, int(time.Saturday-end.Weekday()))

	cells := make([]DateCellInfo, 0, DaysBetween(gridStart, gridEnd)+1)
	for cur := gridStart; !cur.After(gridEnd); cur = cur.AddDate(0, 0, 1) {
		cell := DateCellInfo{
			Date:          cur,
			Key:           FormatDateKey(cur),
			InSeasonRange: !cur.Before(start) && !cur.After(end),
			IsToday:       IsSameLocalDay(cur, today),
			IsWeekend:     IsWeekend(cur),
			DayOfMonth:    cur.Day(),
		}
		if cur.Day() == 1 || len(cells) == 0 {
			cell.MonthLabel = MonthLabel(cur)
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

// Weeks splits a grid into rows of seven cells.
func Weeks(cells []DateCellInfo) [][]DateCellInfo {
	weeks := make([][]DateCellInfo, 0, len(cells)/7)
	for i := 0; i+7 <= len(cells); i += 7 {
		weeks = append(weeks, cells[i:i+7])
	}
	return weeks
}
