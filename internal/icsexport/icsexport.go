// Package icsexport renders the event collection as an iCalendar feed so it
// can be subscribed to from other calendar apps.
package icsexport

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

// DefaultProductID identifies the planner in exported feeds.
const DefaultProductID = "-//planner//planner export//ZH"

const uidDomain = "planner.local"

// Build converts events to a calendar of all-day VEVENTs. Each event keeps
// its wire id in the UID so re-exports update rather than duplicate. Events
// whose date does not parse are skipped and counted.
func Build(events []domain.CalendarEvent, name string, now time.Time) (*ical.Calendar, int) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(DefaultProductID)
	if name != "" {
		cal.SetName(name)
		cal.SetXWRCalName(name)
	}

	skipped := 0
	for _, ev := range events {
		day, err := calendar.ParseLocalDate(ev.Date)
		if err != nil {
			skipped++
			continue
		}
		vev := cal.AddEvent(fmt.Sprintf("%s@%s", ev.ID, uidDomain))
		vev.SetDtStampTime(now.UTC())
		vev.SetAllDayStartAt(day)
		vev.SetAllDayEndAt(day.AddDate(0, 0, 1))
		vev.SetSummary(Summary(ev))
		vev.SetDescription(ev.Type.Label())
		vev.SetProperty(ical.ComponentPropertyCategories, string(domain.NormalizeEventType(string(ev.Type))))
	}
	return cal, skipped
}

// Summary is the VEVENT title: the event time, when set, followed by the
// title.
func Summary(ev domain.CalendarEvent) string {
	if ev.Time == "" {
		return ev.Title
	}
	return ev.Time + " " + ev.Title
}

// Write serializes events to w and returns how many were skipped.
func Write(w io.Writer, events []domain.CalendarEvent, name string, now time.Time) (int, error) {
	cal, skipped := Build(events, name, now)
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return skipped, fmt.Errorf("writing ics: %w", err)
	}
	return skipped, nil
}
