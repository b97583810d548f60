// Package reconcile folds the outcome of a create, edit or delete into the
// event collection.
package reconcile

import "github.com/alexanderramin/planner/internal/domain"

// Options selects what Apply removes before appending.
type Options struct {
	// Remove lists ids to drop. When non-empty it takes precedence over
	// Editing.
	Remove []domain.EventID
	// Editing is the original id of an event replaced in place.
	Editing *domain.EventID
}

// Apply returns the next collection: current minus the removed ids, with
// incoming appended in order. Survivors keep their relative order. current
// is never modified.
func Apply(current, incoming []domain.CalendarEvent, opts Options) []domain.CalendarEvent {
	drop := make(map[domain.EventID]struct{}, len(opts.Remove))
	for _, id := range opts.Remove {
		drop[id] = struct{}{}
	}
	if len(drop) == 0 && opts.Editing != nil {
		drop[*opts.Editing] = struct{}{}
	}

	next := make([]domain.CalendarEvent, 0, len(current)+len(incoming))
	for _, ev := range current {
		if _, ok := drop[ev.ID]; ok {
			continue
		}
		next = append(next, ev)
	}
	return append(next, incoming...)
}
