package testutil

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/planner/internal/domain"
)

var testEventCounter atomic.Int64

// Event options
type EventOption func(*domain.CalendarEvent)

func WithEventID(id domain.EventID) EventOption {
	return func(e *domain.CalendarEvent) {
		e.ID = id
	}
}

func WithEventTime(clock string) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Time = clock
	}
}

func WithEventType(t domain.EventType) EventOption {
	return func(e *domain.CalendarEvent) {
		e.Type = t
	}
}

// NewTestEvent returns a single study event with a unique id.
func NewTestEvent(title string, date domain.DateKey, opts ...EventOption) domain.CalendarEvent {
	n := testEventCounter.Add(1)
	e := domain.CalendarEvent{
		ID:    domain.SingleID("test-" + strconv.FormatInt(n, 10)),
		Title: title,
		Date:  date,
		Type:  domain.EventStudy,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalColor(c string) GoalOption {
	return func(g *domain.Goal) {
		g.Color = c
	}
}

func NewTestGoal(id, title string, opts ...GoalOption) *domain.Goal {
	g := &domain.Goal{
		ID:    id,
		Title: title,
		Color: domain.DefaultGoalColor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FixedClock returns a clock stuck at local time on the given day.
func FixedClock(year int, month time.Month, day, hour int) func() time.Time {
	t := time.Date(year, month, day, hour, 0, 0, 0, time.Local)
	return func() time.Time { return t }
}
