package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/icsexport"
	"github.com/alexanderramin/planner/internal/importer"
	"github.com/alexanderramin/planner/internal/repository"
)

// ExportFilePrefix starts every export file name.
const ExportFilePrefix = "planner-export-"

// ExportFileName names an export written on now's local date, e.g.
// planner-export-2026-01-20.json.
func ExportFileName(now time.Time, ext string) string {
	return ExportFilePrefix + string(calendar.FormatDateKey(now)) + "." + ext
}

type transferService struct {
	events   repository.EventRepo
	goals    repository.GoalRepo
	records  repository.RecordRepo
	uow      db.UnitOfWork
	calName  string
	now      func() time.Time
	observer UseCaseObserver
}

func NewTransferService(
	events repository.EventRepo,
	goals repository.GoalRepo,
	records repository.RecordRepo,
	uow db.UnitOfWork,
	calName string,
	now func() time.Time,
	observers ...UseCaseObserver,
) TransferService {
	if now == nil {
		now = time.Now
	}
	return &transferService{
		events:   events,
		goals:    goals,
		records:  records,
		uow:      uow,
		calName:  calName,
		now:      now,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *transferService) ExportJSON(ctx context.Context, w io.Writer) (err error) {
	fields := map[string]any{"format": "json"}
	done := track(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	events, err := s.events.List(ctx)
	if err != nil {
		return err
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return err
	}
	records, err := s.records.All(ctx)
	if err != nil {
		return err
	}
	fields["events"] = len(events)
	fields["goals"] = len(goals)
	return importer.WriteSnapshot(w, importer.NewSnapshot(events, goals, records))
}

// ExportICS writes the events as an iCalendar feed and returns how many
// were skipped for an unreadable date.
func (s *transferService) ExportICS(ctx context.Context, w io.Writer) (skipped int, err error) {
	fields := map[string]any{"format": "ics"}
	done := track(ctx, s.observer, "export", fields)
	defer func() { done(err) }()

	events, err := s.events.List(ctx)
	if err != nil {
		return 0, err
	}
	fields["events"] = len(events)
	return icsexport.Write(w, events, s.calName, s.now())
}

func (s *transferService) ImportFile(ctx context.Context, path string) (*ImportResult, error) {
	payload, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.apply(ctx, payload)
}

// Import replaces the sections present in data. When the data holds neither
// events nor goals nothing is written and ErrNoValidData is returned.
func (s *transferService) Import(ctx context.Context, data []byte) (*ImportResult, error) {
	payload, err := importer.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parsing import data: %w", err)
	}
	return s.apply(ctx, payload)
}

func (s *transferService) apply(ctx context.Context, p *importer.Payload) (result *ImportResult, err error) {
	fields := map[string]any{"legacy": p.Legacy, "dropped": p.Dropped}
	done := track(ctx, s.observer, "import", fields)
	defer func() { done(err) }()

	if p.Empty() {
		return nil, ErrNoValidData
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if p.HasEvents {
			if err := repository.NewSQLiteEventRepo(tx).ReplaceAll(ctx, p.Events); err != nil {
				return err
			}
		}
		if p.HasGoals {
			if err := repository.NewSQLiteGoalRepo(tx).ReplaceAll(ctx, p.Goals); err != nil {
				return err
			}
		}
		if p.HasRecords {
			if err := repository.NewSQLiteRecordRepo(tx).ReplaceAll(ctx, p.Records); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing: %w", err)
	}

	result = &ImportResult{
		Events:  len(p.Events),
		Goals:   len(p.Goals),
		Records: len(p.Records),
		Dropped: p.Dropped,
		Legacy:  p.Legacy,
	}
	fields["events"] = result.Events
	fields["goals"] = result.Goals
	return result, nil
}
