package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

// CreateEventRequest is a new event as entered by the user. Until is the
// last date a repeating event may fall on; IntervalDays is only read for
// RepeatCustom.
type CreateEventRequest struct {
	Title        string
	Time         string
	Type         domain.EventType
	Date         domain.DateKey
	Repeat       domain.RepeatMode
	Until        domain.DateKey
	IntervalDays int
}

// UpdateEventRequest replaces the details of an existing event. An empty
// Type keeps the event's current type; Time is applied as given.
type UpdateEventRequest struct {
	ID            domain.EventID
	Title         string
	Time          string
	Type          domain.EventType
	ApplyToSeries bool
}

// MutationResult reports what a create, update or delete changed.
type MutationResult struct {
	// Events are the events appended to the collection.
	Events []domain.CalendarEvent
	// Removed counts events dropped from the collection.
	Removed int
	// SeriesWide is set when the mutation covered more than one event of a
	// series.
	SeriesWide bool
}

type EventService interface {
	Create(ctx context.Context, req CreateEventRequest) (*MutationResult, error)
	Update(ctx context.Context, req UpdateEventRequest) (*MutationResult, error)
	Delete(ctx context.Context, id domain.EventID, applyToSeries bool) (*MutationResult, error)
	Get(ctx context.Context, id domain.EventID) (*domain.CalendarEvent, error)
	List(ctx context.Context) ([]domain.CalendarEvent, error)
	ListByDate(ctx context.Context, date domain.DateKey) ([]domain.CalendarEvent, error)
	Series(ctx context.Context, id domain.EventID) ([]domain.CalendarEvent, error)
}

type GoalService interface {
	Add(ctx context.Context, title string) (*domain.Goal, error)
	Delete(ctx context.Context, id string) (int64, error)
	List(ctx context.Context) ([]domain.Goal, error)
	Toggle(ctx context.Context, goalID string, date domain.DateKey) (bool, error)
	Records(ctx context.Context) (domain.GoalRecords, error)
}

// ImportResult holds the outcome of an import.
type ImportResult struct {
	Events  int
	Goals   int
	Records int
	Dropped int
	Legacy  bool
}

type TransferService interface {
	ExportJSON(ctx context.Context, w io.Writer) error
	ExportICS(ctx context.Context, w io.Writer) (int, error)
	Import(ctx context.Context, data []byte) (*ImportResult, error)
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
}

// GoalProgress is one tracker row summarised for the status view.
type GoalProgress struct {
	Goal      domain.Goal
	DoneToday bool
	DoneCount int
}

// StatusSummary is the season overview shown by the status command.
type StatusSummary struct {
	Season      calendar.Season
	Progress    calendar.Progress
	Today       domain.DateKey
	TotalEvents int
	TodayEvents []domain.CalendarEvent
	NextEvents  []domain.CalendarEvent
	Goals       []GoalProgress
}

type StatusService interface {
	Summary(ctx context.Context, now time.Time) (*StatusSummary, error)
}

type SeedService interface {
	Seed(ctx context.Context) (bool, error)
}
