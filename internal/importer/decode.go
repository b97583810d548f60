package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks input that is not JSON at all.
var ErrMalformed = errors.New("malformed import data")

// Decode parses import data. A top-level array is the legacy events-only
// format and is applied only when at least one event survives validation.
// A top-level object is read one section at a time: events, goals and
// records are each optional, and a section of the wrong shape is skipped.
// Any other JSON value yields an empty payload.
func Decode(data []byte) (*Payload, error) {
	var top any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	p := &Payload{}
	switch v := top.(type) {
	case []any:
		p.Legacy = true
		events, dropped := normalizeEvents(v)
		p.Dropped = dropped
		if len(events) > 0 {
			p.Events = events
			p.HasEvents = true
		}
	case map[string]any:
		if list, ok := v["events"].([]any); ok {
			events, dropped := normalizeEvents(list)
			p.Events, p.HasEvents = events, true
			p.Dropped += dropped
		}
		if list, ok := v["goals"].([]any); ok {
			goals, dropped := normalizeGoals(list)
			p.Goals, p.HasGoals = goals, true
			p.Dropped += dropped
		}
		if obj, ok := v["records"].(map[string]any); ok {
			records, dropped := normalizeRecords(obj)
			p.Records, p.HasRecords = records, true
			p.Dropped += dropped
		}
	}
	return p, nil
}
