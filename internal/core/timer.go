package core

import "time"

// Cadence reports when a periodic action such as re-rolling the preview
// texture is due. A zero or negative period never fires.
type Cadence struct {
	period time.Duration
	last   time.Time
}

// NewCadence constructs a Cadence firing every period.
func NewCadence(period time.Duration) *Cadence {
	return &Cadence{period: period}
}

// SetPeriod changes the interval. It is safe to call from the main loop.
func (c *Cadence) SetPeriod(period time.Duration) { c.period = period }

// Period returns the current interval.
func (c *Cadence) Period() time.Duration { return c.period }

// Reset restarts the interval from now.
func (c *Cadence) Reset(now time.Time) { c.last = now }

// Due reports whether a full period has elapsed since the last firing and, if
// so, starts the next period.
func (c *Cadence) Due(now time.Time) bool {
	if c.period <= 0 {
		return false
	}
	if c.last.IsZero() {
		c.last = now
		return false
	}
	if now.Sub(c.last) >= c.period {
		c.last = now
		return true
	}
	return false
}
