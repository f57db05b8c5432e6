// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a lifecycle.Clock that only moves when told to.
//
// Thread-safety: All methods are safe for concurrent use.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock returns a clock stopped at midday UTC on the given date
// (YYYY-MM-DD). It panics on a malformed date.
func NewFixedClock(date string) *FixedClock {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return &FixedClock{now: t.Add(12 * time.Hour)}
}

// Now returns the stopped time.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
