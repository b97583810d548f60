package service

import (
	"context"
	"sort"
	"time"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/repository"
)

// upcomingLimit caps the events listed after today.
const upcomingLimit = 5

type statusService struct {
	season  calendar.Season
	events  repository.EventRepo
	goals   repository.GoalRepo
	records repository.RecordRepo
}

func NewStatusService(season calendar.Season, events repository.EventRepo, goals repository.GoalRepo, records repository.RecordRepo) StatusService {
	return &statusService{season: season, events: events, goals: goals, records: records}
}

func (s *statusService) Summary(ctx context.Context, now time.Time) (*StatusSummary, error) {
	progress, err := calendar.SeasonProgress(s.season, now)
	if err != nil {
		return nil, err
	}
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.records.All(ctx)
	if err != nil {
		return nil, err
	}

	today := calendar.FormatDateKey(now)
	summary := &StatusSummary{
		Season:      s.season,
		Progress:    progress,
		Today:       today,
		TotalEvents: len(events),
		TodayEvents: domain.GroupByDate(events)[today],
		NextEvents:  upcoming(events, today, upcomingLimit),
	}
	for _, g := range goals {
		summary.Goals = append(summary.Goals, GoalProgress{
			Goal:      g,
			DoneToday: records.Done(g.ID, today),
			DoneCount: records.CountDone(g.ID),
		})
	}
	return summary, nil
}

// upcoming returns up to limit events dated after today, ordered by date
// and then by time.
func upcoming(events []domain.CalendarEvent, today domain.DateKey, limit int) []domain.CalendarEvent {
	var after []domain.CalendarEvent
	for _, ev := range events {
		if ev.Date > today {
			after = append(after, ev)
		}
	}
	sort.SliceStable(after, func(i, j int) bool {
		if after[i].Date != after[j].Date {
			return after[i].Date < after[j].Date
		}
		return after[i].Time < after[j].Time
	})
	if len(after) > limit {
		after = after[:limit]
	}
	return after
}
