package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/db"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/repository"
)

type goalService struct {
	goals    repository.GoalRepo
	records  repository.RecordRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewGoalService(goals repository.GoalRepo, records repository.RecordRepo, uow db.UnitOfWork, observers ...UseCaseObserver) GoalService {
	return &goalService{goals: goals, records: records, uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Add(ctx context.Context, title string) (goal *domain.Goal, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "add-goal", fields)
	defer func() { done(err) }()

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	goal = &domain.Goal{ID: uuid.New().String(), Title: title, Color: domain.DefaultGoalColor}
	fields["goal_id"] = goal.ID
	if err := s.goals.Create(ctx, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// Delete removes the goal together with every record keyed by it and
// returns how many records went with it.
func (s *goalService) Delete(ctx context.Context, id string) (removed int64, err error) {
	fields := map[string]any{"goal_id": id}
	done := track(ctx, s.observer, "delete-goal", fields)
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteGoalRepo(tx).Delete(ctx, id); err != nil {
			return err
		}
		n, err := repository.NewSQLiteRecordRepo(tx).DeleteByGoal(ctx, id)
		if err != nil {
			return err
		}
		removed = n
		return nil
	})
	fields["records_removed"] = removed
	return removed, err
}

func (s *goalService) List(ctx context.Context) ([]domain.Goal, error) {
	return s.goals.List(ctx)
}

// Toggle flips the goal's record on date and returns the new state.
func (s *goalService) Toggle(ctx context.Context, goalID string, date domain.DateKey) (state bool, err error) {
	fields := map[string]any{"goal_id": goalID, "date": string(date)}
	done := track(ctx, s.observer, "toggle-record", fields)
	defer func() { done(err) }()

	if !calendar.ValidDateKey(date) {
		return false, fmt.Errorf("%w: %q", calendar.ErrInvalidDateKey, date)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := repository.NewSQLiteGoalRepo(tx).GetByID(ctx, goalID); err != nil {
			return err
		}
		txRecords := repository.NewSQLiteRecordRepo(tx)
		records, err := txRecords.All(ctx)
		if err != nil {
			return err
		}
		next := records.Toggle(goalID, date)
		state = next.Done(goalID, date)
		return txRecords.Set(ctx, domain.RecordKey(goalID, date), state)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("toggling record: %w", err)
	}
	fields["done"] = state
	return state, nil
}

func (s *goalService) Records(ctx context.Context) (domain.GoalRecords, error) {
	return s.records.All(ctx)
}
