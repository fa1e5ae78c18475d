// Package timer maps a running countdown onto marker and readout bodies.
package timer

import (
	"errors"
	"math"
	"time"

	"github.com/lixenwraith/enc-timer/engine"
)

var (
	ErrInvalidDuration = errors.New("timer: duration must be positive")
	ErrInvalidItems    = errors.New("timer: item count must not be negative")
)

// State is the countdown lifecycle phase
type State int

const (
	StateIdle State = iota
	StateConfigured
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfigured:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Countdown tracks elapsed time against a wall-clock deadline
// Elapsed time only advances in Tick, so a pause freezes it at the last tick
type Countdown struct {
	clock engine.TimeProvider

	state    State
	duration time.Duration
	current  time.Duration
	endTime  time.Time
	items    int
	locked   int
	decimal  bool
}

// NewCountdown creates an idle countdown reading time from clock
func NewCountdown(clock engine.TimeProvider) *Countdown {
	return &Countdown{clock: clock}
}

// Set configures a fresh session; elapsed time restarts at zero and every item is locked
func (c *Countdown) Set(d time.Duration, items int, decimal bool) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	if items < 0 {
		return ErrInvalidItems
	}

	c.state = StateConfigured
	c.duration = d
	c.current = 0
	c.endTime = time.Time{}
	c.items = items
	c.locked = items
	c.decimal = decimal
	return nil
}

// Play starts or resumes the countdown, reporting whether the state changed
func (c *Countdown) Play() bool {
	if c.state != StateConfigured {
		return false
	}
	c.endTime = c.clock.Now().Add(c.duration - c.current)
	c.state = StateRunning
	return true
}

// Pause stops the countdown, reporting whether the state changed
func (c *Countdown) Pause() bool {
	if c.state != StateRunning {
		return false
	}
	c.state = StateConfigured
	return true
}

// Tick recomputes elapsed time while running and returns the remaining time and locked item count
func (c *Countdown) Tick() (time.Duration, int) {
	if c.state == StateRunning {
		remaining := max(c.endTime.Sub(c.clock.Now()), 0)
		c.current = c.duration - remaining
		c.locked = lockedItems(remaining, c.duration, c.items)
	}
	return c.Remaining(), c.locked
}

func lockedItems(remaining, total time.Duration, items int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(remaining) / float64(total) * float64(items)))
}

func (c *Countdown) State() State             { return c.state }
func (c *Countdown) Running() bool            { return c.state == StateRunning }
func (c *Countdown) Duration() time.Duration  { return c.duration }
func (c *Countdown) Elapsed() time.Duration   { return c.current }
func (c *Countdown) Remaining() time.Duration { return c.duration - c.current }
func (c *Countdown) EndTime() time.Time       { return c.endTime }
func (c *Countdown) Items() int               { return c.items }
func (c *Countdown) Locked() int              { return c.locked }
func (c *Countdown) Decimal() bool            { return c.decimal }

// Done reports whether a configured countdown has reached zero
func (c *Countdown) Done() bool {
	return c.state != StateIdle && c.current >= c.duration
}
