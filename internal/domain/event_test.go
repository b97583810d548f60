package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventID_GeneratedShapeIsOccurrence(t *testing.T) {
	id := ParseEventID("1768838400000-1768867200000")
	assert.True(t, id.IsOccurrence())
	assert.Equal(t, "1768838400000", id.Lineage)
	assert.Equal(t, "1768867200000", id.Token)
}

func TestParseEventID_OtherDashedIDsStaySingle(t *testing.T) {
	cases := []string{
		"init-1",
		"9b2f0c4e-7d1a-4c55-9a57-0d0f7b0b6f21",
		"abc-123",
		"123-abc",
		"1-2-3",
		"-5",
		"5-",
	}
	for _, raw := range cases {
		id := ParseEventID(raw)
		assert.False(t, id.IsOccurrence(), "id=%q", raw)
		assert.Equal(t, raw, id.Lineage, "id=%q", raw)
		assert.Equal(t, raw, id.String(), "id=%q", raw)
	}
}

func TestParseEventID_PlainSingle(t *testing.T) {
	id := ParseEventID("1768838400000")
	assert.False(t, id.IsOccurrence())
	assert.Equal(t, SingleID("1768838400000"), id)
}

func TestEventID_StringRoundTrip(t *testing.T) {
	ids := []EventID{
		SingleID("g1"),
		SingleID("init-1"),
		OccurrenceID("1768838400000", "1768867200000"),
	}
	for _, id := range ids {
		assert.Equal(t, id, ParseEventID(id.String()))
	}
}

func TestEventID_JSON(t *testing.T) {
	ev := CalendarEvent{
		ID:    OccurrenceID("100", "200"),
		Title: "背单词",
		Date:  "2026-01-20",
		Type:  EventStudy,
	}
	data, err := json.Marshal(ev)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"id":"100-200"`)
	assert.NotContains(t, string(data), `"time"`)

	var back CalendarEvent
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ev, back)
}

func TestEventID_UnmarshalRejectsNonString(t *testing.T) {
	var id EventID
	err := json.Unmarshal([]byte(`42`), &id)
	require.Error(t, err)
}

func TestWithDetails_KeepsIDAndDate(t *testing.T) {
	ev := CalendarEvent{ID: SingleID("a"), Title: "old", Time: "08:00", Date: "2026-02-01", Type: EventFun}
	got := ev.WithDetails("new", "09:30", EventSport)

	assert.Equal(t, ev.ID, got.ID)
	assert.Equal(t, ev.Date, got.Date)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "09:30", got.Time)
	assert.Equal(t, EventSport, got.Type)
	assert.Equal(t, "old", ev.Title, "receiver must not change")
}

func TestGroupByDate_KeepsOrder(t *testing.T) {
	events := []CalendarEvent{
		{ID: SingleID("a"), Date: "2026-01-20"},
		{ID: SingleID("b"), Date: "2026-01-21"},
		{ID: SingleID("c"), Date: "2026-01-20"},
	}
	byDate := GroupByDate(events)
	require.Len(t, byDate["2026-01-20"], 2)
	assert.Equal(t, "a", byDate["2026-01-20"][0].ID.String())
	assert.Equal(t, "c", byDate["2026-01-20"][1].ID.String())
	assert.Len(t, byDate["2026-01-21"], 1)
}

func TestNormalizeEventType(t *testing.T) {
	assert.Equal(t, EventTravel, NormalizeEventType("travel"))
	assert.Equal(t, EventOther, NormalizeEventType(""))
	assert.Equal(t, EventOther, NormalizeEventType("party"))
	assert.Equal(t, EventOther.Label(), EventType("party").Label())
}

func TestRepeatMode_Valid(t *testing.T) {
	for _, m := range RepeatModes {
		assert.True(t, m.Valid(), "mode=%s", m)
		assert.NotEmpty(t, m.Label())
	}
	assert.False(t, RepeatMode("monthly").Valid())
}
