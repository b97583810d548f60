package domain

import "strings"

// Goal is a habit tracked once per day on the tracker grid.
type Goal struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color,omitempty"`
}

// DefaultGoalColor is assigned to goals created without one.
const DefaultGoalColor = "indigo"

// GoalRecords maps "<goalId>_<dateKey>" to whether the goal was met that day.
type GoalRecords map[string]bool

// RecordKey builds the record key for a goal on a date.
func RecordKey(goalID string, date DateKey) string {
	return goalID + "_" + string(date)
}

// Done reports whether the goal is checked off on date.
func (r GoalRecords) Done(goalID string, date DateKey) bool {
	return r[RecordKey(goalID, date)]
}

// Toggle returns a copy of the records with the goal's state on date
// flipped. The receiver is not modified.
func (r GoalRecords) Toggle(goalID string, date DateKey) GoalRecords {
	next := r.clone()
	key := RecordKey(goalID, date)
	next[key] = !r[key]
	return next
}

// CountDone returns how many days the goal has been checked off.
func (r GoalRecords) CountDone(goalID string) int {
	prefix := goalID + "_"
	n := 0
	for k, v := range r {
		if v && strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}

func (r GoalRecords) clone() GoalRecords {
	next := make(GoalRecords, len(r)+1)
	for k, v := range r {
		next[k] = v
	}
	return next
}
