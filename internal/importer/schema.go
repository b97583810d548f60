package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/planner/internal/domain"
)

// SnapshotVersion is written into every export.
const SnapshotVersion = 2

// Snapshot is the persisted and exported representation of the planner.
type Snapshot struct {
	Version int                    `json:"version"`
	Events  []domain.CalendarEvent `json:"events"`
	Goals   []domain.Goal          `json:"goals"`
	Records domain.GoalRecords     `json:"records"`
}

// NewSnapshot builds a current-version snapshot. Nil collections are written
// as empty ones.
func NewSnapshot(events []domain.CalendarEvent, goals []domain.Goal, records domain.GoalRecords) *Snapshot {
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	if records == nil {
		records = domain.GoalRecords{}
	}
	return &Snapshot{Version: SnapshotVersion, Events: events, Goals: goals, Records: records}
}

// WriteSnapshot writes s as JSON indented by two spaces.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// Payload is what an import file contained after validation. The Has flags
// record which sections were present, since an import replaces only those.
type Payload struct {
	Legacy bool

	Events    []domain.CalendarEvent
	HasEvents bool

	Goals    []domain.Goal
	HasGoals bool

	Records    domain.GoalRecords
	HasRecords bool

	// Dropped counts entries rejected by validation.
	Dropped int
}

// Empty reports whether the payload carries no events and no goals.
func (p *Payload) Empty() bool {
	return len(p.Events) == 0 && len(p.Goals) == 0
}

// LoadFile reads and decodes an import file.
func LoadFile(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
