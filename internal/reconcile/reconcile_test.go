package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/domain"
	"github.com/alexanderramin/planner/internal/series"
)

func ev(id, date, title string) domain.CalendarEvent {
	return domain.CalendarEvent{ID: domain.ParseEventID(id), Date: domain.DateKey(date), Title: title, Type: domain.EventStudy}
}

func TestApply_PureCreation(t *testing.T) {
	current := []domain.CalendarEvent{ev("a", "2026-01-19", "a"), ev("b", "2026-01-20", "b")}
	incoming := []domain.CalendarEvent{ev("c", "2026-01-21", "c")}

	next := Apply(current, incoming, Options{})
	assert.Equal(t, []domain.CalendarEvent{current[0], current[1], incoming[0]}, next)
	assert.Len(t, current, 2)
}

func TestApply_RemoveSetWins(t *testing.T) {
	current := []domain.CalendarEvent{ev("a", "2026-01-19", "a"), ev("b", "2026-01-20", "b"), ev("c", "2026-01-21", "c")}
	editing := domain.SingleID("c")

	next := Apply(current, nil, Options{Remove: []domain.EventID{domain.SingleID("a")}, Editing: &editing})
	assert.Equal(t, []domain.CalendarEvent{current[1], current[2]}, next)
}

func TestApply_EditingFallback(t *testing.T) {
	current := []domain.CalendarEvent{ev("a", "2026-01-19", "a"), ev("b", "2026-01-20", "b")}
	editing := domain.SingleID("a")
	replacement := current[0].WithDetails("a2", "", domain.EventFun)

	next := Apply(current, []domain.CalendarEvent{replacement}, Options{Editing: &editing})
	assert.Equal(t, []domain.CalendarEvent{current[1], replacement}, next)
}

func TestApply_PureDeletion(t *testing.T) {
	current := []domain.CalendarEvent{ev("a", "2026-01-19", "a"), ev("b", "2026-01-20", "b")}
	next := Apply(current, nil, Options{Remove: []domain.EventID{domain.SingleID("a"), domain.SingleID("zzz")}})
	assert.Equal(t, []domain.CalendarEvent{current[1]}, next)
}

func TestApply_DoesNotAliasInput(t *testing.T) {
	current := make([]domain.CalendarEvent, 1, 8)
	current[0] = ev("a", "2026-01-19", "a")

	next := Apply(current, []domain.CalendarEvent{ev("b", "2026-01-20", "b")}, Options{})
	next[0].Title = "changed"
	assert.Equal(t, "a", current[0].Title)
}

func TestApply_EmptyEverything(t *testing.T) {
	assert.Empty(t, Apply(nil, nil, Options{}))
}

func seriesCollection(t *testing.T) ([]domain.CalendarEvent, []domain.CalendarEvent) {
	t.Helper()
	occ, err := series.Expand(series.ExpandRequest{
		Title: "晨读", Time: "07:00", Type: domain.EventStudy,
		Start: "2026-01-20", End: "2026-01-24",
		Policy: series.Policy{Mode: domain.RepeatDaily},
	}, "1768800000000")
	require.NoError(t, err)
	require.Len(t, occ, 5)

	all := []domain.CalendarEvent{ev("init-1", "2026-01-19", "寒假开始！")}
	all = Apply(all, occ, Options{})
	all = Apply(all, []domain.CalendarEvent{ev("1768900000000", "2026-01-22", "看电影")}, Options{})
	return all, occ
}

func byID(events []domain.CalendarEvent) map[domain.EventID]domain.CalendarEvent {
	m := make(map[domain.EventID]domain.CalendarEvent, len(events))
	for _, e := range events {
		m[e.ID] = e
	}
	return m
}

func TestScopedUpdateIsolation(t *testing.T) {
	all, occ := seriesCollection(t)
	target := occ[2]

	m := series.ScopedUpdate(target, all, series.Details{Title: "晨跑", Time: "06:30", Type: domain.EventSport}, false)
	next := Apply(all, m.Events, Options{Remove: m.Remove})

	require.Len(t, next, len(all))
	after := byID(next)
	for _, o := range occ {
		if o.ID == target.ID {
			continue
		}
		assert.Equal(t, o, after[o.ID])
	}
	edited := after[target.ID]
	assert.Equal(t, "晨跑", edited.Title)
	assert.Equal(t, "06:30", edited.Time)
	assert.Equal(t, domain.EventSport, edited.Type)
	assert.Equal(t, target.Date, edited.Date)
}

func TestScopedUpdatePropagation(t *testing.T) {
	all, occ := seriesCollection(t)

	m := series.ScopedUpdate(occ[4], all, series.Details{Title: "晨跑", Time: "06:30", Type: domain.EventSport}, true)
	next := Apply(all, m.Events, Options{Remove: m.Remove})

	require.Len(t, next, len(all))
	after := byID(next)
	for _, o := range occ {
		got := after[o.ID]
		assert.Equal(t, "晨跑", got.Title)
		assert.Equal(t, "06:30", got.Time)
		assert.Equal(t, domain.EventSport, got.Type)
		assert.Equal(t, o.Date, got.Date)
	}
	assert.Equal(t, "寒假开始！", after[domain.SingleID("init-1")].Title)
	assert.Equal(t, "看电影", after[domain.SingleID("1768900000000")].Title)
}

func TestScopedDeleteSeries(t *testing.T) {
	all, occ := seriesCollection(t)

	next := Apply(all, nil, Options{Remove: series.ScopedDelete(occ[0], all, true)})
	assert.Len(t, next, 2)

	next = Apply(all, nil, Options{Remove: series.ScopedDelete(occ[0], all, false)})
	assert.Len(t, next, 6)
}
