package engine

import (
	"context"
	"errors"
	"sync/atomic"
	"time"
)

// ErrQuit is returned by Run when an event handler asks to stop
var ErrQuit = errors.New("quit requested")

// maxStepScale caps a single physics step after a stall, in step intervals
const maxStepScale = 4

// Stepper advances a simulation by dt
type Stepper interface {
	Step(dt time.Duration)
}

// Scheduler drives frame ticks, physics steps and input events from one goroutine
// Frame and step tickers run independently; neither waits on the other
type Scheduler[E any] struct {
	frameInterval time.Duration
	stepInterval  time.Duration

	stepper Stepper
	onFrame func()
	events  <-chan E
	onEvent func(E) bool

	frames atomic.Uint64
	steps  atomic.Uint64
}

// NewScheduler creates a scheduler with the given frame and physics step intervals
func NewScheduler[E any](frameInterval, stepInterval time.Duration) *Scheduler[E] {
	return &Scheduler[E]{
		frameInterval: frameInterval,
		stepInterval:  stepInterval,
	}
}

// SetStepper registers the physics world, must be called before Run
func (s *Scheduler[E]) SetStepper(st Stepper) {
	s.stepper = st
}

// OnFrame registers the per-frame callback, must be called before Run
func (s *Scheduler[E]) OnFrame(fn func()) {
	s.onFrame = fn
}

// HandleEvents registers the event source; fn returns false to stop the scheduler
func (s *Scheduler[E]) HandleEvents(events <-chan E, fn func(E) bool) {
	s.events = events
	s.onEvent = fn
}

// Frames returns the number of frame callbacks executed
func (s *Scheduler[E]) Frames() uint64 {
	return s.frames.Load()
}

// Steps returns the number of physics steps executed
func (s *Scheduler[E]) Steps() uint64 {
	return s.steps.Load()
}

// Run blocks until ctx is done or an event handler returns false
func (s *Scheduler[E]) Run(ctx context.Context) error {
	frameTicker := time.NewTicker(s.frameInterval)
	defer frameTicker.Stop()

	stepTicker := time.NewTicker(s.stepInterval)
	defer stepTicker.Stop()

	lastStep := time.Now()
	maxStep := s.stepInterval * maxStepScale
	events := s.events

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				// Source closed, keep running on tickers
				events = nil
				continue
			}
			if s.onEvent != nil && !s.onEvent(ev) {
				return ErrQuit
			}

		case now := <-stepTicker.C:
			dt := now.Sub(lastStep)
			lastStep = now
			if dt > maxStep {
				dt = maxStep
			}
			if s.stepper != nil {
				s.stepper.Step(dt)
			}
			s.steps.Add(1)

		case <-frameTicker.C:
			if s.onFrame != nil {
				s.onFrame()
			}
			s.frames.Add(1)
		}
	}
}
