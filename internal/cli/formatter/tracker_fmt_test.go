package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

func TestFormatTracker(t *testing.T) {
	days, err := calendar.EnumerateRange("2026-01-19", "2026-01-25", time.Date(2026, 1, 20, 0, 0, 0, 0, time.Local))
	require.NoError(t, err)
	goals := []domain.Goal{{ID: "g1", Title: "早睡早起", Color: "blue"}, {ID: "g2", Title: "阅读"}}
	records := domain.GoalRecords{"g1_2026-01-19": true, "g1_2026-01-20": true, "g2_2026-01-20": false}

	out := stripANSI(FormatTracker(days, goals, records))
	lines := splitLines(out)
	require.Len(t, lines, 2+7+1)
	assert.Contains(t, lines[0], "早睡早起")
	assert.Contains(t, lines[0], "阅读")
	assert.Contains(t, lines[2], "01-19")
	assert.Contains(t, lines[2], "一")
	assert.Equal(t, 2, strings.Count(out, "●"))
	assert.Contains(t, lines[len(lines)-1], "2/7")
	assert.Contains(t, lines[len(lines)-1], "0/7")
}

func TestFormatTracker_NoGoals(t *testing.T) {
	assert.Contains(t, FormatTracker(nil, nil, nil), "No goals yet")
}

func TestFormatGoalList(t *testing.T) {
	out := stripANSI(FormatGoalList([]domain.Goal{{ID: "g1", Title: "早睡早起"}}, domain.GoalRecords{"g1_2026-01-19": true}))
	assert.Contains(t, out, "g1")
	assert.Contains(t, out, "早睡早起")
	assert.Contains(t, out, "1")
}
