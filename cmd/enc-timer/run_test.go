package main

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitLoop runs runLoop in the background and fails the test if it does not return in time
func waitLoop(t *testing.T, run func() error) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- run() }()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("run loop did not return")
		return nil
	}
}

func TestRunLoopQuitWithBusyInput(t *testing.T) {
	// One slot and an input source that never runs dry: after the quit key is handled
	// the poller is left waiting on a full channel
	events := make(chan tcell.Event, 1)
	sched := engine.NewScheduler[tcell.Event](time.Hour, time.Hour)
	var handled atomic.Int32
	sched.HandleEvents(events, func(tcell.Event) bool {
		handled.Add(1)
		return false
	})

	var stopped atomic.Bool
	poll := func() tcell.Event { return key('q') }

	err := waitLoop(t, func() error {
		return runLoop(context.Background(), sched, events, poll, func() { stopped.Store(true) })
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), handled.Load())
	assert.True(t, stopped.Load())
}

func TestRunLoopContextCancel(t *testing.T) {
	events := make(chan tcell.Event, 4)
	sched := engine.NewScheduler[tcell.Event](time.Hour, time.Hour)
	sched.HandleEvents(events, func(tcell.Event) bool { return true })

	// poll blocks like a terminal with no input until stop releases it
	release := make(chan struct{})
	poll := func() tcell.Event {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	err := waitLoop(t, func() error {
		return runLoop(ctx, sched, events, poll, func() { close(release) })
	})
	assert.NoError(t, err)
}
