package engine

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStepper struct {
	calls atomic.Int64
	total atomic.Int64
}

func (c *countingStepper) Step(dt time.Duration) {
	c.calls.Add(1)
	c.total.Add(int64(dt))
}

func TestSchedulerRunsFramesAndSteps(t *testing.T) {
	s := NewScheduler[int](2*time.Millisecond, 3*time.Millisecond)
	stepper := &countingStepper{}
	s.SetStepper(stepper)

	var frames atomic.Int64
	s.OnFrame(func() { frames.Add(1) })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Positive(t, frames.Load())
	assert.Positive(t, stepper.calls.Load())
	assert.Equal(t, uint64(frames.Load()), s.Frames())
	assert.Equal(t, uint64(stepper.calls.Load()), s.Steps())

	// No single step exceeds the stall cap
	avg := time.Duration(stepper.total.Load() / stepper.calls.Load())
	assert.LessOrEqual(t, avg, 3*time.Millisecond*maxStepScale)
}

func TestSchedulerStopsOnHandlerFalse(t *testing.T) {
	s := NewScheduler[string](time.Hour, time.Hour)
	events := make(chan string, 3)

	var seen []string
	s.HandleEvents(events, func(ev string) bool {
		seen = append(seen, ev)
		return ev != "quit"
	})

	events <- "a"
	events <- "quit"
	events <- "never"

	err := s.Run(context.Background())
	require.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, []string{"a", "quit"}, seen)
}

func TestSchedulerSurvivesClosedEvents(t *testing.T) {
	s := NewScheduler[int](time.Millisecond, time.Hour)
	events := make(chan int)
	close(events)
	s.HandleEvents(events, func(int) bool { return false })

	var frames atomic.Int64
	s.OnFrame(func() { frames.Add(1) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, frames.Load(), "closed event source must not stop the loop")
}

func TestGuardRecoversIntoHandler(t *testing.T) {
	var got atomic.Value
	SetCrashHandler(func(r any) { got.Store(r) })
	defer SetCrashHandler(nil)

	fn := Guard(func() error { panic("boom") })
	assert.NoError(t, fn())
	assert.Equal(t, "boom", got.Load())
}

func TestGoRecoversIntoHandler(t *testing.T) {
	done := make(chan any, 1)
	SetCrashHandler(func(r any) { done <- r })
	defer SetCrashHandler(nil)

	Go(func() { panic("worker") })

	select {
	case r := <-done:
		assert.Equal(t, "worker", r)
	case <-time.After(time.Second):
		t.Fatal("crash handler not called")
	}
}
