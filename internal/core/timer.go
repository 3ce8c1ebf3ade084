package core

import "time"

// Clock measures the elapsed time between ticks of the game loop.
type Clock struct {
	step time.Duration
	max  time.Duration
	last time.Time
	now  func() time.Time
}

// NewClock constructs a Clock for a loop running at tps ticks per second.
func NewClock(tps int) *Clock {
	c := &Clock{now: time.Now}
	c.SetTPS(tps)
	return c
}

// SetTPS changes the nominal tick rate. It is safe to call from the main loop.
func (c *Clock) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	c.step = time.Second / time.Duration(tps)
	// A stalled window should not dump seconds of time into one update.
	c.max = 10 * c.step
}

// Step returns the nominal duration of one tick.
func (c *Clock) Step() time.Duration { return c.step }

// Tick returns the time elapsed since the previous Tick. The first call
// returns one nominal step. The result is never negative and never exceeds
// ten steps.
func (c *Clock) Tick() time.Duration {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return c.step
	}
	delta := now.Sub(c.last)
	c.last = now
	if delta < 0 {
		return 0
	}
	if delta > c.max {
		return c.max
	}
	return delta
}
