package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DateKey is a local calendar date in canonical YYYY-MM-DD form.
type DateKey string

// EventID identifies a calendar event. Series membership is carried
// explicitly: Lineage is shared by every occurrence generated in one
// expansion, and Token distinguishes the occurrences. An empty Token marks a
// single event, whose lineage is its own id.
type EventID struct {
	Lineage string
	Token   string
}

// SingleID returns the id of a non-series event.
func SingleID(id string) EventID {
	return EventID{Lineage: id}
}

// OccurrenceID returns the id of one occurrence in the series lineage.
func OccurrenceID(lineage, token string) EventID {
	return EventID{Lineage: lineage, Token: token}
}

// IsOccurrence reports whether the id belongs to a generated series.
func (id EventID) IsOccurrence() bool {
	return id.Token != ""
}

// IsZero reports whether the id is unset.
func (id EventID) IsZero() bool {
	return id.Lineage == "" && id.Token == ""
}

// String returns the wire form: the lineage for singles and
// "lineage-token" for occurrences.
func (id EventID) String() string {
	if id.Token == "" {
		return id.Lineage
	}
	return id.Lineage + "-" + id.Token
}

// ParseEventID converts a wire-form id back into an EventID. Only the shape
// written by the series generator, "<digits>-<digits>", is read as an
// occurrence; any other string is a single id even when it contains '-'.
func ParseEventID(s string) EventID {
	lineage, token, ok := strings.Cut(s, "-")
	if ok && isDigits(lineage) && isDigits(token) {
		return OccurrenceID(lineage, token)
	}
	return SingleID(s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (id EventID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *EventID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	*id = ParseEventID(s)
	return nil
}

// CalendarEvent is a dated entry on the planner calendar.
type CalendarEvent struct {
	ID    EventID   `json:"id"`
	Title string    `json:"title"`
	Time  string    `json:"time,omitempty"`
	Date  DateKey   `json:"date"`
	Type  EventType `json:"type"`
}

// WithDetails returns a copy of the event carrying the new title, time and
// type. The id and date are kept.
func (e CalendarEvent) WithDetails(title, clock string, typ EventType) CalendarEvent {
	e.Title = title
	e.Time = clock
	e.Type = typ
	return e
}

// GroupByDate indexes events by their date key, keeping collection order
// within each day.
func GroupByDate(events []CalendarEvent) map[DateKey][]CalendarEvent {
	byDate := make(map[DateKey][]CalendarEvent)
	for _, ev := range events {
		byDate[ev.Date] = append(byDate[ev.Date], ev)
	}
	return byDate
}
