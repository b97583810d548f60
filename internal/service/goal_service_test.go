package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/repository"
)

func TestGoalService_AddAndList(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, r.records, r.uow)
	ctx := context.Background()

	g, err := svc.Add(ctx, "  跑步 ")
	require.NoError(t, err)
	assert.Equal(t, "跑步", g.Title)
	assert.Equal(t, domain.DefaultGoalColor, g.Color)
	assert.NotEmpty(t, g.ID)

	_, err = svc.Add(ctx, "  ")
	assert.ErrorIs(t, err, ErrEmptyTitle)

	goals, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Goal{*g}, goals)
}

func TestGoalService_Toggle(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, r.records, r.uow)
	ctx := context.Background()

	g, err := svc.Add(ctx, "阅读")
	require.NoError(t, err)

	state, err := svc.Toggle(ctx, g.ID, "2026-01-20")
	require.NoError(t, err)
	assert.True(t, state)

	state, err = svc.Toggle(ctx, g.ID, "2026-01-20")
	require.NoError(t, err)
	assert.False(t, state)

	_, err = svc.Toggle(ctx, g.ID, "2026-01-21")
	require.NoError(t, err)

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalRecords{
		domain.RecordKey(g.ID, "2026-01-20"): false,
		domain.RecordKey(g.ID, "2026-01-21"): true,
	}, records)
}

func TestGoalService_ToggleErrors(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, r.records, r.uow)
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "missing", "2026-01-20")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = svc.Toggle(ctx, "missing", "20-01-2026")
	assert.ErrorIs(t, err, calendar.ErrInvalidDateKey)
}

func TestGoalService_ToggleRejectsNonCanonicalDate(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, r.records, r.uow)
	ctx := context.Background()

	g, err := svc.Add(ctx, "阅读")
	require.NoError(t, err)

	for _, key := range []domain.DateKey{"2026-1-20", "2026-01-020", "+2026-01-20"} {
		_, err := svc.Toggle(ctx, g.ID, key)
		assert.ErrorIs(t, err, calendar.ErrInvalidDateKey, key)
	}

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.False(t, records.Done(g.ID, "2026-01-20"))
}

func TestGoalService_DeleteCascadesRecords(t *testing.T) {
	r := setupRepos(t)
	svc := NewGoalService(r.goals, r.records, r.uow)
	ctx := context.Background()

	require.NoError(t, r.goals.Create(ctx, &domain.Goal{ID: "g1", Title: "早睡早起"}))
	require.NoError(t, r.goals.Create(ctx, &domain.Goal{ID: "g10", Title: "跑步"}))
	for _, key := range []string{"g1_2026-01-20", "g1_2026-01-21", "g10_2026-01-20"} {
		require.NoError(t, r.records.Set(ctx, key, true))
	}

	removed, err := svc.Delete(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	records, err := svc.Records(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GoalRecords{"g10_2026-01-20": true}, records)

	_, err = svc.Delete(ctx, "g1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
