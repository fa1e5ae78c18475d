package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/config"
	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lixenwraith/enc-timer/display"
	"github.com/lixenwraith/enc-timer/engine"
	"github.com/lixenwraith/enc-timer/input"
	"github.com/lixenwraith/enc-timer/physics"
	"github.com/lixenwraith/enc-timer/render"
	"github.com/lixenwraith/enc-timer/render/renderers"
	"github.com/lixenwraith/enc-timer/segment"
	"github.com/lixenwraith/enc-timer/timer"
	"github.com/lucasb-eyer/go-colorful"
)

const keyHints = "space play/pause  r restart  d mode  m sound  q quit"

// Sounder plays the unlock click
type Sounder interface {
	PlayUnlock(count int)
}

// app wires the session controller to the screen, keyboard and speaker
// All methods run on the scheduler goroutine
type app struct {
	session Session
	world   *physics.World
	anim    *timer.Animation
	canvas  *render.Canvas
	orch    *render.RenderOrchestrator
	keys    *input.KeyTable
	sound   Sounder
	soundOn bool
	log     *slog.Logger

	cols, rows int
	frame      uint64
}

func newApp(cfg config.Config, s Session, clock engine.TimeProvider, sound Sounder, log *slog.Logger) (*app, error) {
	static, err := colorful.Hex(cfg.Colors.Static)
	if err != nil {
		return nil, fmt.Errorf("colors.static: %w", err)
	}
	dynamic, err := colorful.Hex(cfg.Colors.Dynamic)
	if err != nil {
		return nil, fmt.Errorf("colors.dynamic: %w", err)
	}

	a := &app{
		session: s,
		world: physics.NewWorld(
			physics.WithRestitution(cfg.Physics.Restitution),
			physics.WithFriction(cfg.Physics.Friction),
			physics.WithFade(cfg.Physics.UnlockFade),
		),
		canvas:  render.NewCanvas(cfg.Render.CellWidth, cfg.Render.CellHeight, 0, 0),
		keys:    input.DefaultKeyTable(),
		sound:   sound,
		soundOn: sound != nil,
		log:     log,
	}

	a.anim = timer.NewAnimation(a.world, clock,
		timer.WithLayout(timer.Layout{
			Radius:      cfg.Layout.Radius,
			Fill:        cfg.Layout.MarkerFill,
			FloorInset:  cfg.Layout.FloorInset,
			FloorHeight: cfg.Layout.FloorHeight,
			Gravity:     cfg.Physics.Gravity * constant.GravityScale,
			Metrics: segment.Metrics{
				Length:    cfg.Layout.SegmentLength,
				Thickness: cfg.Layout.SegmentThickness,
				Gap:       cfg.Layout.SegmentGap,
				CharGap:   cfg.Layout.CharGap,
			},
		}),
		timer.WithPalette(timer.Palette{Static: static, Dynamic: dynamic}),
		timer.WithUnlockHook(a.unlocked),
		timer.WithLogger(log),
	)
	return a, nil
}

// start binds the screen size and configures the first session
func (a *app) start(cols, rows int) error {
	a.resize(cols, rows)
	if err := a.apply(a.session); err != nil {
		return err
	}
	if a.session.Autoplay {
		a.anim.Play()
	}
	return nil
}

func (a *app) apply(s Session) error {
	if err := a.anim.Set(s.Duration, s.Items, s.Decimal); err != nil {
		return err
	}
	a.session = s
	return nil
}

// resize maps the terminal onto the canvas, reporting whether the surface changed
func (a *app) resize(cols, rows int) bool {
	a.cols, a.rows = cols, rows
	a.canvas.Resize(cols, max(rows-constant.StatusBarRows, 0))
	if a.orch != nil {
		a.orch.Resize(cols, rows)
	}
	return a.anim.Initialize(a.canvas)
}

func (a *app) unlocked(count int) {
	if a.soundOn && a.sound != nil {
		a.sound.PlayUnlock(count)
	}
}

// handleEvent reacts to one terminal event; false stops the scheduler
func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleIntent(a.keys.Translate(ev))
	case *tcell.EventResize:
		cols, rows := ev.Size()
		if a.resize(cols, rows) {
			a.anim.Relayout()
		}
	}
	return true
}

func (a *app) handleIntent(intent input.IntentType) bool {
	switch intent {
	case input.IntentToggle:
		a.anim.Toggle()
	case input.IntentRestart:
		if err := a.anim.Restart(); err != nil {
			a.log.Warn("restart failed", "error", err)
		}
	case input.IntentToggleMode:
		if err := a.apply(a.session.switchMode()); err != nil {
			a.log.Warn("mode switch failed", "error", err)
		}
	case input.IntentToggleSound:
		a.soundOn = !a.soundOn && a.sound != nil
	case input.IntentQuit:
		return false
	}
	if intent != input.IntentNone {
		a.log.Debug("intent", "intent", intent, "state", a.anim.Countdown().State())
	}
	return true
}

// tick advances the controller and draws a frame when a screen is attached
func (a *app) tick() {
	a.anim.Tick()
	a.frame++
	if a.orch == nil {
		return
	}
	a.orch.RenderFrame(render.RenderContext{
		Frame:      a.frame,
		Now:        time.Now(),
		Width:      a.cols,
		Height:     a.rows,
		AreaHeight: max(a.rows-constant.StatusBarRows, 0),
	})
}

// Status implements renderers.StatusSource
func (a *app) Status() renderers.Status {
	c := a.anim.Countdown()
	mode := "classic"
	if c.Decimal() {
		mode = "decimal"
	}
	state := c.State().String()
	if c.Done() {
		state = "done"
	}
	hint := keyHints
	if a.sound != nil && !a.soundOn {
		hint += "  (muted)"
	}
	return renderers.Status{
		Mode:     mode,
		State:    state,
		Running:  c.Running(),
		Readout:  display.Format(c.Remaining(), c.Decimal()),
		Hint:     hint,
		Unlocked: c.Items() - c.Locked(),
		Items:    c.Items(),
	}
}
