package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/domain"
)

func fiveDaySeries(t *testing.T) []domain.CalendarEvent {
	t.Helper()
	got, err := Expand(ExpandRequest{
		Title: "背单词", Time: "07:00", Type: domain.EventStudy,
		Start: "2026-01-20", End: "2026-01-24",
		Policy: Policy{Mode: domain.RepeatDaily},
	}, "1768800000000")
	require.NoError(t, err)
	require.Len(t, got, 5)
	return got
}

func TestRelatedOccurrences(t *testing.T) {
	occ := fiveDaySeries(t)
	single := domain.CalendarEvent{ID: domain.SingleID("init-1"), Date: "2026-01-19"}
	other := domain.CalendarEvent{ID: domain.SingleID("1768800000000"), Date: "2026-01-21"}
	all := append([]domain.CalendarEvent{single}, occ...)

	assert.Equal(t, occ, RelatedOccurrences(occ[2], all))
	assert.True(t, HasSiblings(occ[0], all))

	assert.Equal(t, []domain.CalendarEvent{single}, RelatedOccurrences(single, all))
	assert.False(t, HasSiblings(single, all))

	// A single whose id equals the lineage key belongs to the series.
	withBase := append(all, other)
	assert.Len(t, RelatedOccurrences(other, withBase), 6)
}

func TestRelatedOccurrences_DashedSingleIsNotSeries(t *testing.T) {
	a := domain.CalendarEvent{ID: domain.ParseEventID("3f2a-9c1b")}
	b := domain.CalendarEvent{ID: domain.ParseEventID("3f2a-77aa")}
	all := []domain.CalendarEvent{a, b}
	assert.False(t, HasSiblings(a, all))
}

func TestScopedUpdate_SingleOccurrence(t *testing.T) {
	occ := fiveDaySeries(t)
	d := Details{Title: "背课文", Time: "08:00", Type: domain.EventOther}

	m := ScopedUpdate(occ[2], occ, d, false)
	require.Len(t, m.Events, 1)
	assert.Equal(t, []domain.EventID{occ[2].ID}, m.Remove)
	assert.False(t, m.SeriesWide())

	got := m.Events[0]
	assert.Equal(t, occ[2].ID, got.ID)
	assert.Equal(t, occ[2].Date, got.Date)
	assert.Equal(t, "背课文", got.Title)
	assert.Equal(t, "08:00", got.Time)
	assert.Equal(t, domain.EventOther, got.Type)
}

func TestScopedUpdate_WholeSeries(t *testing.T) {
	occ := fiveDaySeries(t)
	d := Details{Title: "背课文", Type: domain.EventOther}

	m := ScopedUpdate(occ[0], occ, d, true)
	require.Len(t, m.Events, 5)
	assert.Equal(t, IDs(occ), m.Remove)
	assert.True(t, m.SeriesWide())

	for i, ev := range m.Events {
		assert.Equal(t, occ[i].ID, ev.ID)
		assert.Equal(t, occ[i].Date, ev.Date)
		assert.Equal(t, "背课文", ev.Title)
		assert.Empty(t, ev.Time)
	}
	// the input collection is untouched
	assert.Equal(t, "背单词", occ[0].Title)
}

func TestScopedUpdate_SeriesFlagWithoutSiblings(t *testing.T) {
	single := domain.CalendarEvent{ID: domain.SingleID("init-1"), Title: "a", Date: "2026-01-19"}
	m := ScopedUpdate(single, []domain.CalendarEvent{single}, Details{Title: "b"}, true)
	require.Len(t, m.Events, 1)
	assert.Equal(t, []domain.EventID{single.ID}, m.Remove)
}

func TestScopedDelete(t *testing.T) {
	occ := fiveDaySeries(t)

	assert.Equal(t, []domain.EventID{occ[1].ID}, ScopedDelete(occ[1], occ, false))
	assert.ElementsMatch(t, IDs(occ), ScopedDelete(occ[1], occ, true))

	lone := domain.CalendarEvent{ID: domain.SingleID("x")}
	assert.Equal(t, []domain.EventID{lone.ID}, ScopedDelete(lone, []domain.CalendarEvent{lone}, true))
}
