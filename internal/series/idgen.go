package series

import (
	"strconv"
	"sync"
	"time"
)

// IDGenerator hands out series base ids: epoch-millisecond strings that are
// strictly increasing for the lifetime of the generator, even when two calls
// land in the same millisecond.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewIDGenerator returns a generator reading the given clock. A nil clock
// uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// NextBase returns a fresh base id.
func (g *IDGenerator) NextBase() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}
