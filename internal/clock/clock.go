// internal/clock/clock.go
package clock

import (
	"fmt"
	"time"

	"go-minesweeper/internal/event"
)

// Clock counts fixed-size ticks while a session is in progress.
// It is driven from the game loop: either one Tick per interval, or Advance
// with the frame delta.
type Clock struct {
	interval time.Duration
	ticks    int64
	pending  time.Duration // delta not yet turned into a tick
	running  bool
}

// New returns a stopped clock with the given tick interval.
func New(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	return &Clock{interval: interval}
}

// Start begins ticking from zero.
func (c *Clock) Start() {
	c.ticks = 0
	c.pending = 0
	c.running = true
}

// Stop freezes the elapsed value.
func (c *Clock) Stop() {
	c.running = false
	c.pending = 0
}

// Reset zeroes the counter and restarts.
func (c *Clock) Reset() {
	c.Start()
}

// Running reports whether ticks are being counted.
func (c *Clock) Running() bool {
	return c.running
}

// Tick advances the counter by one when running.
func (c *Clock) Tick() {
	if !c.running {
		return
	}
	c.ticks++
}

// Advance feeds a frame delta and issues as many whole ticks as it covers.
func (c *Clock) Advance(dt time.Duration) {
	if !c.running || dt <= 0 {
		return
	}
	c.pending += dt
	for c.pending >= c.interval {
		c.pending -= c.interval
		c.Tick()
	}
}

// Ticks returns the raw counter.
func (c *Clock) Ticks() int64 {
	return c.ticks
}

// Elapsed returns ticks × interval.
func (c *Clock) Elapsed() time.Duration {
	return time.Duration(c.ticks) * c.interval
}

// Format renders the elapsed time as MM:SS:mmm.
func (c *Clock) Format() string {
	return FormatElapsed(c.Elapsed())
}

// FormatElapsed renders d as MM:SS:mmm. Minutes keep growing past 99.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64(d%time.Minute) / int64(time.Second)
	millis := int64(d%time.Second) / int64(time.Millisecond)
	return fmt.Sprintf("%02d:%02d:%03d", minutes, seconds, millis)
}

// OnEvent stops the clock when the game ends.
func (c *Clock) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameWon, event.GameLost:
		c.Stop()
	}
}
