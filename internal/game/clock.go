package game

import (
	"sync"
	"time"
)

// Clock is where the engine reads wall time for CreatedAt and UploadedAt.
// Simulated days are counted on the channel and never come from here.
type Clock interface {
	Now() time.Time
}

// ClockFunc lets a plain func serve as a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the host clock, always in UTC so stored stamps compare
// across restarts.
var SystemClock Clock = ClockFunc(func() time.Time { return time.Now().UTC() })

// ManualClock stands still until a test moves it.
type ManualClock struct {
	mu sync.Mutex
	at time.Time
}

func NewManualClock(at time.Time) *ManualClock {
	return &ManualClock{at: at.UTC()}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

// Advance moves the clock by d and reports where it landed.
func (c *ManualClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.at = c.at.Add(d)
	return c.at
}
