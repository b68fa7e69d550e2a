package profile

import (
	"sync"
	"time"
)

// IDGenerator hands out item ids.
type IDGenerator interface {
	Next() int64
}

// ClockIDs derives ids from the millisecond clock and never returns the same
// value twice, even when called several times within one millisecond.
type ClockIDs struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewClockIDs() *ClockIDs {
	return &ClockIDs{now: time.Now}
}

func (g *ClockIDs) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now
	if g.now != nil {
		now = g.now
	}
	id := now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
