package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/config"
	"github.com/lixenwraith/enc-timer/engine"
	"github.com/lixenwraith/enc-timer/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSounder struct {
	calls, total int
}

func (s *countingSounder) PlayUnlock(count int) {
	s.calls++
	s.total += count
}

func newTestApp(t *testing.T, sound Sounder) (*app, *engine.ManualClock) {
	t.Helper()
	cfg := config.Default()
	cfg.Timer.Decimal = false

	s, err := resolveSession(cfg, []string{"0:10"})
	require.NoError(t, err)

	clock := engine.NewManualClock(time.Unix(1_700_000_000, 0))
	a, err := newApp(cfg, s, clock, sound, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, a.start(80, 25))
	return a, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestAppStartConfiguresSession(t *testing.T) {
	a, _ := newTestApp(t, nil)

	c := a.anim.Countdown()
	assert.Equal(t, timer.StateConfigured, c.State())
	assert.Equal(t, 10*time.Second, c.Duration())
	assert.Equal(t, 10, c.Items())
	assert.Len(t, a.anim.Markers(), 10)

	w, h := a.canvas.Size()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 384.0, h)
}

func TestAppAutoplay(t *testing.T) {
	cfg := config.Default()
	cfg.Timer.Autoplay = true
	s, err := resolveSession(cfg, nil)
	require.NoError(t, err)

	a, err := newApp(cfg, s, engine.NewManualClock(time.Unix(0, 0)), nil, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	require.NoError(t, a.start(80, 25))
	assert.True(t, a.anim.Countdown().Running())
}

func TestAppToggleAndUnlockSound(t *testing.T) {
	sound := &countingSounder{}
	a, clock := newTestApp(t, sound)

	require.True(t, a.handleEvent(key(' ')))
	assert.True(t, a.anim.Countdown().Running())

	clock.Advance(5 * time.Second)
	a.tick()
	assert.Equal(t, 5, a.anim.Countdown().Locked())
	assert.Equal(t, 1, sound.calls)
	assert.Equal(t, 5, sound.total)

	require.True(t, a.handleEvent(key('p')))
	assert.False(t, a.anim.Countdown().Running())

	// Paused time does not count
	clock.Advance(time.Minute)
	a.tick()
	assert.Equal(t, 5*time.Second, a.anim.Countdown().Remaining())

	require.True(t, a.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	clock.Advance(5 * time.Second)
	a.tick()
	assert.True(t, a.anim.Countdown().Done())
	assert.Equal(t, 10, sound.total)
	assert.Equal(t, "done", a.Status().State)
}

func TestAppMuteSkipsSound(t *testing.T) {
	sound := &countingSounder{}
	a, clock := newTestApp(t, sound)

	require.True(t, a.handleEvent(key('m')))
	assert.Contains(t, a.Status().Hint, "(muted)")

	a.handleEvent(key(' '))
	clock.Advance(3 * time.Second)
	a.tick()
	assert.Zero(t, sound.calls)

	require.True(t, a.handleEvent(key('m')))
	assert.NotContains(t, a.Status().Hint, "(muted)")
}

func TestAppSoundToggleWithoutSpeaker(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.handleEvent(key('m'))
	assert.False(t, a.soundOn)
	assert.NotContains(t, a.Status().Hint, "(muted)")
}

func TestAppRestart(t *testing.T) {
	a, clock := newTestApp(t, nil)
	a.handleEvent(key(' '))
	clock.Advance(4 * time.Second)
	a.tick()

	require.True(t, a.handleEvent(key('r')))
	c := a.anim.Countdown()
	assert.Equal(t, timer.StateConfigured, c.State())
	assert.Equal(t, 10*time.Second, c.Remaining())
	assert.Equal(t, 10, c.Locked())
}

func TestAppModeSwitch(t *testing.T) {
	a, _ := newTestApp(t, nil)
	assert.Equal(t, "classic", a.Status().Mode)

	require.True(t, a.handleEvent(key('d')))
	assert.True(t, a.session.Decimal)
	assert.Equal(t, "decimal", a.Status().Mode)
	// 10s is 1.157 decimal minutes
	assert.Equal(t, 12, a.anim.Countdown().Items())
	assert.Equal(t, 10*time.Second, a.anim.Countdown().Duration())
}

func TestAppResizeKeepsProgress(t *testing.T) {
	a, clock := newTestApp(t, nil)
	a.handleEvent(key(' '))
	clock.Advance(3 * time.Second)
	a.tick()
	remaining := a.anim.Countdown().Remaining()

	require.True(t, a.handleEvent(tcell.NewEventResize(100, 41)))
	w, h := a.canvas.Size()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 640.0, h)
	assert.Equal(t, remaining, a.anim.Countdown().Remaining())
	assert.True(t, a.anim.Countdown().Running())
	assert.Len(t, a.anim.Markers(), 10)
}

func TestAppQuit(t *testing.T) {
	a, _ := newTestApp(t, nil)
	assert.False(t, a.handleEvent(key('q')))
	assert.False(t, a.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.True(t, a.handleEvent(key('x')))
}

func TestAppStatus(t *testing.T) {
	a, clock := newTestApp(t, nil)

	st := a.Status()
	assert.Equal(t, "paused", st.State)
	assert.False(t, st.Running)
	assert.Equal(t, 0, st.Unlocked)
	assert.Equal(t, 10, st.Items)
	assert.Contains(t, st.Readout, "0:10")
	assert.Equal(t, keyHints, st.Hint)

	a.handleEvent(key(' '))
	clock.Advance(2 * time.Second)
	a.tick()

	st = a.Status()
	assert.Equal(t, "running", st.State)
	assert.True(t, st.Running)
	assert.Equal(t, 2, st.Unlocked)
	assert.Contains(t, st.Readout, "0:08")
}
