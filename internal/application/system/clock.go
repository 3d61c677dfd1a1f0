package system

import "time"

// Clock converts wall-clock frame time into a whole number of fixed ticks.
// At most maxTicks run per Advance; whole ticks beyond that are dropped and
// only the sub-tick remainder carries into the next frame.
type Clock struct {
	step     time.Duration
	maxTicks int
	acc      time.Duration
	dropped  int
}

// NewClock creates a clock running tickRate ticks per second
func NewClock(tickRate, maxTicks int) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxTicks <= 0 {
		maxTicks = 1
	}
	return &Clock{
		step:     time.Second / time.Duration(tickRate),
		maxTicks: maxTicks,
	}
}

// Step returns the duration of one tick
func (c *Clock) Step() time.Duration {
	return c.step
}

// Advance adds elapsed time and returns how many ticks to run
func (c *Clock) Advance(elapsed time.Duration) int {
	if elapsed > 0 {
		c.acc += elapsed
	}

	n := int(c.acc / c.step)
	c.acc -= time.Duration(n) * c.step
	if n > c.maxTicks {
		c.dropped += n - c.maxTicks
		n = c.maxTicks
	}
	return n
}

// Alpha returns how far the accumulator is into the next tick, in [0, 1)
func (c *Clock) Alpha() float64 {
	return float64(c.acc) / float64(c.step)
}

// Dropped returns the total number of ticks discarded by the cap
func (c *Clock) Dropped() int {
	return c.dropped
}
