package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/reconcile"
	"github.com/alexanderramin/planner/internal/repository"
	"github.com/alexanderramin/planner/internal/series"
)

type eventService struct {
	events      repository.EventRepo
	uow         db.UnitOfWork
	ids         *series.IDGenerator
	defaultType domain.EventType
	observer    UseCaseObserver
}

func NewEventService(
	events repository.EventRepo,
	uow db.UnitOfWork,
	ids *series.IDGenerator,
	defaultType domain.EventType,
	observers ...UseCaseObserver,
) EventService {
	if ids == nil {
		ids = series.NewIDGenerator(nil)
	}
	if !domain.ValidEventTypes[string(defaultType)] {
		defaultType = domain.EventStudy
	}
	return &eventService{
		events:      events,
		uow:         uow,
		ids:         ids,
		defaultType: defaultType,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// Create expands req into occurrences and appends them to the collection.
// An end date before the start date creates nothing and is not an error.
func (s *eventService) Create(ctx context.Context, req CreateEventRequest) (result *MutationResult, err error) {
	fields := map[string]any{"date": string(req.Date), "repeat": string(req.Repeat)}
	done := track(ctx, s.observer, "create-event", fields)
	defer func() { done(err) }()

	title, err := cleanTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := validateClock(req.Time); err != nil {
		return nil, err
	}
	typ, err := s.resolveType(req.Type, s.defaultType)
	if err != nil {
		return nil, err
	}

	occurrences, err := series.Expand(series.ExpandRequest{
		Title:  title,
		Time:   req.Time,
		Type:   typ,
		Start:  req.Date,
		End:    req.Until,
		Policy: series.Policy{Mode: req.Repeat, IntervalDays: req.IntervalDays},
	}, s.ids.NextBase())
	if err != nil {
		return nil, err
	}
	fields["created"] = len(occurrences)
	if len(occurrences) == 0 {
		return &MutationResult{}, nil
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		all, err := txEvents.List(ctx)
		if err != nil {
			return err
		}
		return txEvents.ReplaceAll(ctx, reconcile.Apply(all, occurrences, reconcile.Options{}))
	})
	if err != nil {
		return nil, err
	}
	return &MutationResult{Events: occurrences, SeriesWide: len(occurrences) > 1}, nil
}

// Update rewrites the event, or its whole series when requested. Dates and
// ids are never changed.
func (s *eventService) Update(ctx context.Context, req UpdateEventRequest) (result *MutationResult, err error) {
	fields := map[string]any{"id": req.ID.String(), "series": req.ApplyToSeries}
	done := track(ctx, s.observer, "update-event", fields)
	defer func() { done(err) }()

	title, err := cleanTitle(req.Title)
	if err != nil {
		return nil, err
	}
	if err := validateClock(req.Time); err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		all, err := txEvents.List(ctx)
		if err != nil {
			return err
		}
		existing, err := findEvent(all, req.ID)
		if err != nil {
			return err
		}
		typ, err := s.resolveType(req.Type, existing.Type)
		if err != nil {
			return err
		}

		m := series.ScopedUpdate(existing, all, series.Details{Title: title, Time: req.Time, Type: typ}, req.ApplyToSeries)
		next := reconcile.Apply(all, m.Events, reconcile.Options{Remove: m.Remove})
		if err := txEvents.ReplaceAll(ctx, next); err != nil {
			return err
		}
		result = &MutationResult{
			Events:     m.Events,
			Removed:    len(all) - len(next) + len(m.Events),
			SeriesWide: m.SeriesWide(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["updated"] = len(result.Events)
	return result, nil
}

func (s *eventService) Delete(ctx context.Context, id domain.EventID, applyToSeries bool) (result *MutationResult, err error) {
	fields := map[string]any{"id": id.String(), "series": applyToSeries}
	done := track(ctx, s.observer, "delete-event", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)
		all, err := txEvents.List(ctx)
		if err != nil {
			return err
		}
		existing, err := findEvent(all, id)
		if err != nil {
			return err
		}

		remove := series.ScopedDelete(existing, all, applyToSeries)
		next := reconcile.Apply(all, nil, reconcile.Options{Remove: remove})
		if err := txEvents.ReplaceAll(ctx, next); err != nil {
			return err
		}
		result = &MutationResult{Removed: len(all) - len(next), SeriesWide: len(remove) > 1}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["removed"] = result.Removed
	return result, nil
}

func (s *eventService) Get(ctx context.Context, id domain.EventID) (*domain.CalendarEvent, error) {
	return s.events.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context) ([]domain.CalendarEvent, error) {
	return s.events.List(ctx)
}

func (s *eventService) ListByDate(ctx context.Context, date domain.DateKey) ([]domain.CalendarEvent, error) {
	return s.events.ListByDate(ctx, date)
}

// Series returns every event sharing id's lineage.
func (s *eventService) Series(ctx context.Context, id domain.EventID) ([]domain.CalendarEvent, error) {
	if _, err := s.events.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.events.ListByLineage(ctx, id.Lineage)
}

func (s *eventService) resolveType(t, fallback domain.EventType) (domain.EventType, error) {
	typ := domain.EventType(domain.CoalesceStr(string(t), string(fallback)))
	if !domain.ValidEventTypes[string(typ)] {
		return "", fmt.Errorf("%w: %q", ErrInvalidEventType, t)
	}
	return typ, nil
}

func findEvent(all []domain.CalendarEvent, id domain.EventID) (domain.CalendarEvent, error) {
	for _, ev := range all {
		if ev.ID == id {
			return ev, nil
		}
	}
	return domain.CalendarEvent{}, fmt.Errorf("event %s: %w", id, repository.ErrNotFound)
}

func cleanTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	return title, nil
}

// validateClock accepts an empty time or a 24-hour HH:MM.
func validateClock(clock string) error {
	if clock == "" {
		return nil
	}
	if _, err := time.Parse("15:04", clock); err != nil || len(clock) != 5 {
		return fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return nil
}
