package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/planner/internal/domain"
)

func TestFormatEventList(t *testing.T) {
	out := stripANSI(FormatEventList([]domain.CalendarEvent{
		{ID: domain.OccurrenceID("1768838400000", "1768838400000"), Title: "背单词", Date: "2026-01-20", Type: domain.EventStudy},
		{ID: domain.SingleID("init-1"), Title: "寒假开始！", Time: "08:00", Date: "2026-01-19", Type: domain.EventFun},
	}))
	assert.Contains(t, out, "1768838400000-1768838400000")
	assert.Contains(t, out, "--:--")
	assert.Contains(t, out, "08:00")
	assert.Contains(t, out, domain.EventFun.Label())
}

func TestFormatEventDetail_SeriesSummary(t *testing.T) {
	occ := []domain.CalendarEvent{
		{ID: domain.OccurrenceID("1", "20"), Title: "晨读", Date: "2026-01-20"},
		{ID: domain.OccurrenceID("1", "22"), Title: "晨读", Date: "2026-01-22"},
		{ID: domain.OccurrenceID("1", "21"), Title: "晨读", Date: "2026-01-21"},
	}
	out := stripANSI(FormatEventDetail(occ[0], occ))
	assert.Contains(t, out, "晨读")
	assert.Contains(t, out, "3 occurrences, 2026-01-20 ~ 2026-01-22")

	single := stripANSI(FormatEventDetail(domain.CalendarEvent{ID: domain.SingleID("x"), Title: "t", Date: "2026-01-20"}, nil))
	assert.NotContains(t, single, "occurrences")
}
