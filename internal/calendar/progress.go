package calendar

import (
	"math"
	"time"
)

// Progress summarises how far today is through the season.
type Progress struct {
	TotalDays     int
	PassedDays    int
	RemainingDays int
	Percentage    int
}

// SeasonProgress counts whole days passed since the season start, clamped to
// the season, and the rounded percentage they represent.
func SeasonProgress(season Season, today time.Time) (Progress, error) {
	if err := season.Validate(); err != nil {
		return Progress{}, err
	}
	start := MustParseLocalDate(season.Start)
	end := MustParseLocalDate(season.End)

	span := DaysBetween(start, end)
	total := span + 1

	passed := DaysBetween(start, today)
	if passed < 0 {
		passed = 0
	}
	if passed > span {
		passed = span
	}

	pct := int(math.Round(float64(passed) / float64(total) * 100))
	pct = max(0, min(100, pct))

	return Progress{
		TotalDays:     total,
		PassedDays:    passed,
		RemainingDays: total - passed,
		Percentage:    pct,
	}, nil
}
