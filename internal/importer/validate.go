package importer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/alexanderramin/planner/internal/domain"
)

// ValidateEvent reports why a raw import entry cannot become an event. An
// entry needs a string date and a string title; nothing else is required.
func ValidateEvent(item any) []error {
	obj, ok := item.(map[string]any)
	if !ok {
		return []error{errors.New("event: not an object")}
	}
	var errs []error
	if _, ok := obj["date"].(string); !ok {
		errs = append(errs, fmt.Errorf("event.date: must be a string"))
	}
	if _, ok := obj["title"].(string); !ok {
		errs = append(errs, fmt.Errorf("event.title: must be a string"))
	}
	return errs
}

func normalizeEvents(list []any) ([]domain.CalendarEvent, int) {
	events := make([]domain.CalendarEvent, 0, len(list))
	dropped := 0
	for _, item := range list {
		if len(ValidateEvent(item)) > 0 {
			dropped++
			continue
		}
		events = append(events, normalizeEvent(item.(map[string]any)))
	}
	return events, dropped
}

// normalizeEvent fills defaults: a generated id when absent, the date
// trimmed, type other when missing or unknown, and an empty time.
func normalizeEvent(obj map[string]any) domain.CalendarEvent {
	id := scalarString(obj["id"])
	if id == "" {
		id = uuid.New().String()
	}
	return domain.CalendarEvent{
		ID:    domain.ParseEventID(id),
		Title: obj["title"].(string),
		Time:  stringOr(obj["time"], ""),
		Date:  domain.DateKey(strings.TrimSpace(obj["date"].(string))),
		Type:  domain.NormalizeEventType(stringOr(obj["type"], "")),
	}
}

func normalizeGoals(list []any) ([]domain.Goal, int) {
	goals := make([]domain.Goal, 0, len(list))
	dropped := 0
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			dropped++
			continue
		}
		title := strings.TrimSpace(stringOr(obj["title"], ""))
		if title == "" {
			dropped++
			continue
		}
		goals = append(goals, domain.Goal{
			ID:    domain.CoalesceStr(scalarString(obj["id"]), uuid.New().String()),
			Title: title,
			Color: domain.CoalesceStr(stringOr(obj["color"], ""), domain.DefaultGoalColor),
		})
	}
	return goals, dropped
}

func normalizeRecords(obj map[string]any) (domain.GoalRecords, int) {
	records := make(domain.GoalRecords, len(obj))
	dropped := 0
	for k, v := range obj {
		b, ok := v.(bool)
		if !ok {
			dropped++
			continue
		}
		records[k] = b
	}
	return records, dropped
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}

// scalarString accepts ids written as strings or numbers.
func scalarString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	}
	return ""
}
