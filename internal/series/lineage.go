// Package series implements the event series model: lineage and sibling
// resolution, expansion of a creation request into dated occurrences, and
// scoped update and delete of one occurrence or its whole series.
package series

import "github.com/alexanderramin/planner/internal/domain"

// LineageKey returns the lineage shared by every occurrence generated in the
// same expansion as ev. A single event is its own lineage.
func LineageKey(ev domain.CalendarEvent) string {
	return ev.ID.Lineage
}

// RelatedOccurrences returns the events in all that share ev's lineage, in
// collection order. The result includes ev itself when it is present in all.
func RelatedOccurrences(ev domain.CalendarEvent, all []domain.CalendarEvent) []domain.CalendarEvent {
	lineage := LineageKey(ev)
	var related []domain.CalendarEvent
	for _, e := range all {
		if e.ID.Lineage == lineage {
			related = append(related, e)
		}
	}
	return related
}

// HasSiblings reports whether ev belongs to a series of more than one event.
func HasSiblings(ev domain.CalendarEvent, all []domain.CalendarEvent) bool {
	return len(RelatedOccurrences(ev, all)) > 1
}

// IDs extracts the ids of events in order.
func IDs(events []domain.CalendarEvent) []domain.EventID {
	ids := make([]domain.EventID, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}
