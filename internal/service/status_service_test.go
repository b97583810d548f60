package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

func TestStatusService_Summary(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()
	_, occ := seedSeries(t, newEventService(r))
	require.NoError(t, r.goals.Create(ctx, &domain.Goal{ID: "g1", Title: "早睡早起"}))
	require.NoError(t, r.goals.Create(ctx, &domain.Goal{ID: "g2", Title: "阅读"}))
	require.NoError(t, r.records.Set(ctx, "g1_2026-01-20", true))
	require.NoError(t, r.records.Set(ctx, "g1_2026-01-21", true))

	season := calendar.Season{Name: "寒假", Start: "2026-01-19", End: "2026-03-01"}
	svc := NewStatusService(season, r.events, r.goals, r.records)

	now := time.Date(2026, 1, 21, 15, 0, 0, 0, time.Local)
	sum, err := svc.Summary(ctx, now)
	require.NoError(t, err)

	assert.Equal(t, domain.DateKey("2026-01-21"), sum.Today)
	assert.Equal(t, 42, sum.Progress.TotalDays)
	assert.Equal(t, 2, sum.Progress.PassedDays)
	assert.Equal(t, 6, sum.TotalEvents)
	assert.Equal(t, []domain.CalendarEvent{occ[1]}, sum.TodayEvents)
	assert.Equal(t, []domain.CalendarEvent{occ[2], occ[3], occ[4]}, sum.NextEvents)

	require.Len(t, sum.Goals, 2)
	assert.True(t, sum.Goals[0].DoneToday)
	assert.Equal(t, 2, sum.Goals[0].DoneCount)
	assert.False(t, sum.Goals[1].DoneToday)
	assert.Zero(t, sum.Goals[1].DoneCount)
}

func TestStatusService_InvalidSeason(t *testing.T) {
	r := setupRepos(t)
	svc := NewStatusService(calendar.Season{Start: "bad", End: "2026-03-01"}, r.events, r.goals, r.records)
	_, err := svc.Summary(context.Background(), time.Now())
	assert.ErrorIs(t, err, calendar.ErrInvalidDateKey)
}

func TestUpcoming_OrdersAndLimits(t *testing.T) {
	events := []domain.CalendarEvent{
		{Title: "c", Date: "2026-01-23"},
		{Title: "past", Date: "2026-01-19"},
		{Title: "b2", Date: "2026-01-22", Time: "09:00"},
		{Title: "b1", Date: "2026-01-22", Time: "07:00"},
		{Title: "today", Date: "2026-01-21"},
	}
	got := upcoming(events, "2026-01-21", 2)
	require.Len(t, got, 2)
	assert.Equal(t, "b1", got[0].Title)
	assert.Equal(t, "b2", got[1].Title)
}
