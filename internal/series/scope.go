package series

import "github.com/alexanderramin/planner/internal/domain"

// Details are the editable fields of an existing event. Dates are never
// edited in place.
type Details struct {
	Title string
	Time  string
	Type  domain.EventType
}

// Mutation is the outcome of a scoped edit or delete: the replacement events
// to append and the ids to remove first.
type Mutation struct {
	Events []domain.CalendarEvent
	Remove []domain.EventID
}

// SeriesWide reports whether the mutation touched more than one event.
func (m Mutation) SeriesWide() bool {
	return len(m.Remove) > 1
}

// scope returns the events a scoped operation on existing covers.
func scope(existing domain.CalendarEvent, all []domain.CalendarEvent, applyToSeries bool) []domain.CalendarEvent {
	if !applyToSeries {
		return []domain.CalendarEvent{existing}
	}
	related := RelatedOccurrences(existing, all)
	if len(related) <= 1 {
		return []domain.CalendarEvent{existing}
	}
	return related
}

// ScopedUpdate rewrites the details of existing, or of every occurrence in
// its series when applyToSeries is set and siblings exist. Each replacement
// keeps its own id and date.
func ScopedUpdate(existing domain.CalendarEvent, all []domain.CalendarEvent, d Details, applyToSeries bool) Mutation {
	targets := scope(existing, all, applyToSeries)
	m := Mutation{
		Events: make([]domain.CalendarEvent, len(targets)),
		Remove: IDs(targets),
	}
	for i, ev := range targets {
		m.Events[i] = ev.WithDetails(d.Title, d.Time, d.Type)
	}
	return m
}

// ScopedDelete returns the ids to remove when deleting existing, or its
// whole series when applyToSeries is set and siblings exist.
func ScopedDelete(existing domain.CalendarEvent, all []domain.CalendarEvent, applyToSeries bool) []domain.EventID {
	return IDs(scope(existing, all, applyToSeries))
}
