package idgen

import (
	"strconv"
	"sync/atomic"
	"time"
)

// Clock hands out timestamp-derived ids that never repeat within a process:
// if two calls land in the same millisecond the later one is bumped forward.
type Clock struct {
	now  func() time.Time
	last atomic.Int64
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockAt is for tests that need a frozen or scripted clock.
func NewClockAt(now func() time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Next() int64 {
	for {
		ms := c.now().UnixMilli()
		last := c.last.Load()
		if ms <= last {
			ms = last + 1
		}
		if c.last.CompareAndSwap(last, ms) {
			return ms
		}
	}
}

func (c *Clock) NextString() string {
	return strconv.FormatInt(c.Next(), 10)
}
