package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/repository"
)

const seededKey = "seeded"

// SeedEvents are written on first launch.
var SeedEvents = []domain.CalendarEvent{{
	ID:    domain.SingleID("init-1"),
	Title: "寒假开始！",
	Time:  "08:00",
	Date:  "2026-01-19",
	Type:  domain.EventFun,
}}

// SeedGoals are the example goals written on first launch.
var SeedGoals = []domain.Goal{
	{ID: "g1", Title: "早睡早起", Color: "blue"},
	{ID: "g2", Title: "阅读", Color: "indigo"},
}

type seedService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, observers ...UseCaseObserver) SeedService {
	return &seedService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// Seed fills an empty planner with the starter event and goals once. It
// reports whether anything was written. Existing data is never touched.
func (s *seedService) Seed(ctx context.Context) (seeded bool, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "seed", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		settings := repository.NewSQLiteSettingsRepo(tx)
		if _, err := settings.Get(ctx, seededKey); err == nil {
			return nil
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}

		events := repository.NewSQLiteEventRepo(tx)
		n, err := events.Count(ctx)
		if err != nil {
			return err
		}
		if n == 0 {
			if err := events.ReplaceAll(ctx, SeedEvents); err != nil {
				return err
			}
			seeded = true
		}

		goals := repository.NewSQLiteGoalRepo(tx)
		existing, err := goals.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			if err := goals.ReplaceAll(ctx, SeedGoals); err != nil {
				return err
			}
			seeded = true
		}
		return settings.Set(ctx, seededKey, "true")
	})
	fields["seeded"] = seeded
	return seeded, err
}
