package audio

import (
	"testing"
	"time"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0.5)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayUnlock(3)
	sm.Cleanup()
}

// TestSoundManagerVolumeClamped verifies volume stays within 0..1
func TestSoundManagerVolumeClamped(t *testing.T) {
	if v := NewSoundManager(4).volume; v != 1 {
		t.Errorf("Expected volume 1, got %f", v)
	}
	if v := NewSoundManager(-1).volume; v != 0 {
		t.Errorf("Expected volume 0, got %f", v)
	}
}

// TestSoundManagerMinGap verifies clicks closer than the minimum gap are dropped
func TestSoundManagerMinGap(t *testing.T) {
	sm := NewSoundManager(0.5)
	now := time.Unix(0, 0)

	if !sm.admit(now) {
		t.Fatal("First click should play")
	}
	if sm.admit(now.Add(sm.minGap / 2)) {
		t.Error("Click inside the gap should be dropped")
	}
	if !sm.admit(now.Add(sm.minGap)) {
		t.Error("Click after the gap should play")
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(0.5)

	// Speaker initialization fails without an audio device, which is not a test failure
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}
	sm.PlayUnlock(1)
	sm.Cleanup()
}
