package repository

import (
	"context"

	"github.com/alexanderramin/planner/internal/domain"
)

// EventRepo persists the event collection. The collection is ordered and may
// hold several events with the same id.
type EventRepo interface {
	List(ctx context.Context) ([]domain.CalendarEvent, error)
	ListByDate(ctx context.Context, date domain.DateKey) ([]domain.CalendarEvent, error)
	ListByLineage(ctx context.Context, lineage string) ([]domain.CalendarEvent, error)
	GetByID(ctx context.Context, id domain.EventID) (*domain.CalendarEvent, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, events []domain.CalendarEvent) error
}

type GoalRepo interface {
	List(ctx context.Context) ([]domain.Goal, error)
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	Create(ctx context.Context, g *domain.Goal) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, goals []domain.Goal) error
}

type RecordRepo interface {
	All(ctx context.Context) (domain.GoalRecords, error)
	Set(ctx context.Context, key string, done bool) error
	DeleteByGoal(ctx context.Context, goalID string) (int64, error)
	ReplaceAll(ctx context.Context, records domain.GoalRecords) error
}

type SettingsRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
