// Package clock paces the game loop at a fixed tick rate.
package clock

import "time"

// Clock blocks until one tick interval has passed since the previous Wait returned.
type Clock struct {
	interval time.Duration
	last     time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// New returns a Clock ticking fps times per second.
func New(fps int) *Clock {
	if fps <= 0 {
		fps = 1
	}
	return &Clock{
		interval: time.Second / time.Duration(fps),
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

func (c *Clock) Interval() time.Duration {
	return c.interval
}

// Wait sleeps off whatever is left of the current interval. The first call
// returns immediately.
func (c *Clock) Wait() {
	if !c.last.IsZero() {
		if remaining := c.interval - c.now().Sub(c.last); remaining > 0 {
			c.sleep(remaining)
		}
	}
	c.last = c.now()
}
