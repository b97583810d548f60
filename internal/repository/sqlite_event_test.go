package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/testutil"
)

func TestEventRepo_ReplaceAllAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	events := []domain.CalendarEvent{
		testutil.NewTestEvent("寒假开始！", "2026-01-19", testutil.WithEventID(domain.SingleID("init-1")), testutil.WithEventTime("08:00"), testutil.WithEventType(domain.EventFun)),
		testutil.NewTestEvent("背单词", "2026-01-20", testutil.WithEventID(domain.OccurrenceID("1768800000000", "1768838400000"))),
		testutil.NewTestEvent("背单词", "2026-01-21", testutil.WithEventID(domain.OccurrenceID("1768800000000", "1768924800000"))),
	}
	require.NoError(t, repo.ReplaceAll(ctx, events))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Replacing again drops what was there.
	require.NoError(t, repo.ReplaceAll(ctx, events[:1]))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, events[:1], got)
}

func TestEventRepo_ListFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	a := testutil.NewTestEvent("a", "2026-01-20", testutil.WithEventID(domain.OccurrenceID("100", "1")))
	b := testutil.NewTestEvent("b", "2026-01-20")
	c := testutil.NewTestEvent("c", "2026-01-21", testutil.WithEventID(domain.OccurrenceID("100", "2")))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.CalendarEvent{a, b, c}))

	byDate, err := repo.ListByDate(ctx, "2026-01-20")
	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarEvent{a, b}, byDate)

	byLineage, err := repo.ListByLineage(ctx, "100")
	require.NoError(t, err)
	assert.Equal(t, []domain.CalendarEvent{a, c}, byLineage)

	none, err := repo.ListByDate(ctx, "2026-03-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepo_GetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	occ := testutil.NewTestEvent("a", "2026-01-20", testutil.WithEventID(domain.OccurrenceID("100", "1")))
	base := testutil.NewTestEvent("base", "2026-01-22", testutil.WithEventID(domain.SingleID("100")))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.CalendarEvent{occ, base}))

	got, err := repo.GetByID(ctx, domain.SingleID("100"))
	require.NoError(t, err)
	assert.Equal(t, "base", got.Title)

	got, err = repo.GetByID(ctx, occ.ID)
	require.NoError(t, err)
	assert.Equal(t, occ, *got)

	_, err = repo.GetByID(ctx, domain.SingleID("missing"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_DuplicateIDsKeepOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteEventRepo(db)
	ctx := context.Background()

	id := domain.SingleID("dup")
	first := testutil.NewTestEvent("first", "2026-01-20", testutil.WithEventID(id))
	second := testutil.NewTestEvent("second", "2026-01-19", testutil.WithEventID(id))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.CalendarEvent{first, second}))

	got, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
