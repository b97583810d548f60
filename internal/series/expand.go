package series

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/planner/internal/calendar"
	"github.com/alexanderramin/planner/internal/domain"
)

// MinCustomInterval is the smallest step accepted by RepeatCustom.
const MinCustomInterval = 2

// DefaultCustomInterval pre-fills the custom interval input.
const DefaultCustomInterval = 2

var (
	ErrInvalidInterval = errors.New("custom interval must be at least 2 days")
	ErrUnknownRepeat   = errors.New("unknown repeat mode")
)

// Policy is a repeat mode plus, for RepeatCustom, its step in days.
type Policy struct {
	Mode         domain.RepeatMode
	IntervalDays int
}

// Step returns the number of days between consecutive occurrences. Single
// events step 0.
func (p Policy) Step() (int, error) {
	switch p.Mode {
	case domain.RepeatSingle, "":
		return 0, nil
	case domain.RepeatRange, domain.RepeatDaily:
		return 1, nil
	case domain.RepeatWeekly:
		return 7, nil
	case domain.RepeatCustom:
		if p.IntervalDays < MinCustomInterval {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidInterval, p.IntervalDays)
		}
		return p.IntervalDays, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRepeat, p.Mode)
	}
}

// ExpandRequest describes a new event as entered by the user. End is
// ignored for single events and defaults to Start when empty.
type ExpandRequest struct {
	Title  string
	Time   string
	Type   domain.EventType
	Start  domain.DateKey
	End    domain.DateKey
	Policy Policy
}

// Expand turns a creation request into dated occurrences under baseID.
// A single event gets baseID as its id. Repeating policies give every
// occurrence the id baseID-<local midnight epoch millis>, stepping from
// Start while the date is not after End. End before Start yields no
// occurrences and no error.
func Expand(req ExpandRequest, baseID string) ([]domain.CalendarEvent, error) {
	step, err := req.Policy.Step()
	if err != nil {
		return nil, err
	}
	start, err := calendar.ParseLocalDate(req.Start)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}

	if step == 0 {
		return []domain.CalendarEvent{{
			ID:    domain.SingleID(baseID),
			Title: req.Title,
			Time:  req.Time,
			Date:  calendar.FormatDateKey(start),
			Type:  req.Type,
		}}, nil
	}

	endKey := domain.DateKey(domain.CoalesceStr(string(req.End), string(req.Start)))
	end, err := calendar.ParseLocalDate(endKey)
	if err != nil {
		return nil, fmt.Errorf("end date: %w", err)
	}

	var out []domain.CalendarEvent
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, step) {
		out = append(out, domain.CalendarEvent{
			ID:    domain.OccurrenceID(baseID, strconv.FormatInt(cur.UnixMilli(), 10)),
			Title: req.Title,
			Time:  req.Time,
			Date:  calendar.FormatDateKey(cur),
			Type:  req.Type,
		})
	}
	return out, nil
}
