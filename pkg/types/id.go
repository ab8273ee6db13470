package types

import (
	"sync"
	"time"
)

// IDGenerator hands out record ids derived from the wall clock in
// milliseconds. Two calls inside the same millisecond never collide:
// the generator bumps past the last value it returned, so ids are
// strictly increasing within a process.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewIDGenerator creates a generator backed by the system clock.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{now: time.Now}
}

// Next returns the next unique id.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// defaultIDs is the process-wide generator used by all producers.
var defaultIDs = NewIDGenerator()

// NextID returns the next unique id from the process-wide generator.
func NextID() int64 {
	return defaultIDs.Next()
}
