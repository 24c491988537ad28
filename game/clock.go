package game

import "time"

// GravityInterval returns the time between gravity ticks at level: one
// base unit divided by level+1.
func GravityInterval(base time.Duration, level int) time.Duration {
	if level < 0 {
		level = 0
	}
	return base / time.Duration(level+1)
}

// TickClock turns wall-clock frame deltas into discrete gravity ticks. It
// belongs to the shell's loop, not to the Game.
type TickClock struct {
	base        time.Duration
	accumulator time.Duration
}

// NewTickClock returns a clock for the given base tick unit.
func NewTickClock(base time.Duration) *TickClock {
	return &TickClock{base: base}
}

// Advance adds dt and returns how many whole ticks have elapsed at level.
// The remainder carries over to the next call.
func (c *TickClock) Advance(dt time.Duration, level int) uint32 {
	interval := GravityInterval(c.base, level)
	if interval <= 0 {
		interval = 1
	}

	c.accumulator += dt
	n := c.accumulator / interval
	c.accumulator -= n * interval
	return uint32(n)
}

// Reset drops any partially accumulated tick.
func (c *TickClock) Reset() {
	c.accumulator = 0
}
