package timer

import (
	"testing"
	"time"

	"github.com/lixenwraith/enc-timer/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCountdown() (*Countdown, *engine.ManualClock) {
	clock := engine.NewManualClock(time.Unix(1_700_000_000, 0))
	return NewCountdown(clock), clock
}

func TestCountdownSetValidates(t *testing.T) {
	c, _ := newTestCountdown()

	require.ErrorIs(t, c.Set(0, 10, false), ErrInvalidDuration)
	require.ErrorIs(t, c.Set(-time.Second, 10, false), ErrInvalidDuration)
	require.ErrorIs(t, c.Set(time.Second, -1, false), ErrInvalidItems)
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Set(time.Minute, 0, false))
	assert.Equal(t, StateConfigured, c.State())
	assert.Equal(t, 0, c.Locked())
}

func TestCountdownPlayRequiresSet(t *testing.T) {
	c, clock := newTestCountdown()

	assert.False(t, c.Play())
	assert.Equal(t, StateIdle, c.State())

	require.NoError(t, c.Set(10*time.Second, 10, false))
	assert.True(t, c.Play())
	assert.False(t, c.Play(), "second play is a no-op")
	assert.Equal(t, clock.Now().Add(10*time.Second), c.EndTime())
}

func TestCountdownTickComputesLocked(t *testing.T) {
	c, clock := newTestCountdown()
	require.NoError(t, c.Set(10*time.Minute, 10, false))
	require.True(t, c.Play())

	clock.Advance(5 * time.Minute)
	remaining, locked := c.Tick()
	assert.Equal(t, 5*time.Minute, remaining)
	assert.Equal(t, 5, locked)
	assert.Equal(t, 5*time.Minute, c.Elapsed())

	// 4:30 left of 10 items is exactly 4.5, which rounds half away from zero
	clock.Advance(30 * time.Second)
	_, locked = c.Tick()
	assert.Equal(t, 5, locked)

	clock.Advance(time.Second)
	_, locked = c.Tick()
	assert.Equal(t, 4, locked)
}

func TestCountdownPauseFreezesAtLastTick(t *testing.T) {
	c, clock := newTestCountdown()
	require.NoError(t, c.Set(10*time.Second, 10, false))
	require.True(t, c.Play())

	clock.Advance(3 * time.Second)
	c.Tick()
	clock.Advance(2 * time.Second)
	require.True(t, c.Pause())
	assert.False(t, c.Pause())

	remaining, _ := c.Tick()
	assert.Equal(t, 7*time.Second, remaining)

	clock.Advance(time.Hour)
	remaining, _ = c.Tick()
	assert.Equal(t, 7*time.Second, remaining, "paused countdown ignores the clock")

	require.True(t, c.Play())
	assert.Equal(t, clock.Now().Add(7*time.Second), c.EndTime())
	clock.Advance(time.Second)
	remaining, _ = c.Tick()
	assert.Equal(t, 6*time.Second, remaining)
}

func TestCountdownHoldsAtZero(t *testing.T) {
	c, clock := newTestCountdown()
	require.NoError(t, c.Set(2*time.Second, 4, false))
	require.True(t, c.Play())

	clock.Advance(10 * time.Second)
	remaining, locked := c.Tick()
	assert.Zero(t, remaining)
	assert.Zero(t, locked)
	assert.Equal(t, 2*time.Second, c.Elapsed())
	assert.True(t, c.Done())

	clock.Advance(10 * time.Second)
	remaining, _ = c.Tick()
	assert.Zero(t, remaining)
	assert.True(t, c.Running(), "reaching zero does not stop the session")
}

func TestCountdownSetResets(t *testing.T) {
	c, clock := newTestCountdown()
	require.NoError(t, c.Set(10*time.Second, 10, false))
	require.True(t, c.Play())
	clock.Advance(4 * time.Second)
	c.Tick()

	require.NoError(t, c.Set(20*time.Second, 5, true))
	assert.Equal(t, StateConfigured, c.State())
	assert.Zero(t, c.Elapsed())
	assert.Equal(t, 20*time.Second, c.Remaining())
	assert.Equal(t, 5, c.Locked())
	assert.True(t, c.Decimal())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "paused", StateConfigured.String())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "unknown", State(9).String())
}
