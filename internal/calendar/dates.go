// Package calendar holds the local-date arithmetic behind the planner: date
// key conversion, range enumeration, the season grid, and progress counts.
// Every date here is a local-midnight time.Time; nothing is shifted by a UTC
// offset.
package calendar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/planner/internal/domain"
)

// KeyLayout is the time layout of a domain.DateKey.
const KeyLayout = "2006-01-02"

var (
	ErrInvalidDateKey = errors.New("invalid date key")
	ErrEmptyRange     = errors.New("end date is before start date")
)

// WeekdayLabels are the short weekday names indexed by time.Weekday.
var WeekdayLabels = [7]string{"日", "一", "二", "三", "四", "五", "六"}

// ParseLocalDate converts a YYYY-MM-DD key into local midnight of that day.
// Only the canonical zero-padded form is accepted.
func ParseLocalDate(key domain.DateKey) (time.Time, error) {
	parts := strings.Split(string(key), "-")
	if len(key) != len(KeyLayout) || len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	var nums [3]int
	for i, p := range parts {
		if strings.TrimLeft(p, "0123456789") != "" {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		nums[i] = n
	}
	year, month, day := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("%w: %q out of range", ErrInvalidDateKey, key)
	}
	if FormatDateKey(t) != key {
		return time.Time{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDateKey, key)
	}
	return t, nil
}

// MustParseLocalDate is ParseLocalDate for keys known to be valid.
func MustParseLocalDate(key domain.DateKey) time.Time {
	t, err := ParseLocalDate(key)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDateKey renders the local calendar date of t as YYYY-MM-DD.
func FormatDateKey(t time.Time) domain.DateKey {
	return domain.DateKey(t.Format(KeyLayout))
}

// ValidDateKey reports whether key parses as a calendar date.
func ValidDateKey(key domain.DateKey) bool {
	_, err := ParseLocalDate(key)
	return err == nil
}

// IsSameLocalDay compares the year, month and day of a and b.
func IsSameLocalDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// DaysBetween returns the number of calendar days from a to b. DST
// transitions do not affect the count.
func DaysBetween(a, b time.Time) int {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	ua := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	ub := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

// Day is one entry of an enumerated date range.
type Day struct {
	Date         time.Time
	Key          domain.DateKey
	WeekdayLabel string
	IsWeekend    bool
	IsToday      bool
}

// EnumerateRange lists every day from start to end inclusive, ascending.
// today is compared by calendar day to set IsToday.
func EnumerateRange(start, end domain.DateKey, today time.Time) ([]Day, error) {
	from, err := ParseLocalDate(start)
	if err != nil {
		return nil, err
	}
	to, err := ParseLocalDate(end)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s < %s", ErrEmptyRange, end, start)
	}

	days := make([]Day, 0, DaysBetween(from, to)+1)
	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:         cur,
			Key:          FormatDateKey(cur),
			WeekdayLabel: WeekdayLabels[cur.Weekday()],
			IsWeekend:    IsWeekend(cur),
			IsToday:      IsSameLocalDay(cur, today),
		})
	}
	return days, nil
}
