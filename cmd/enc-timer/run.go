package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/audio"
	"github.com/lixenwraith/enc-timer/config"
	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lixenwraith/enc-timer/engine"
	"github.com/lixenwraith/enc-timer/render"
	"github.com/lixenwraith/enc-timer/render/renderers"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("stdout is not a terminal")

// runTUI owns the screen for the lifetime of the session
func runTUI(ctx context.Context, cfg config.Config, s Session, log *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	theme, err := render.ParseTheme(cfg.Colors.Background, cfg.Colors.Text, constant.ColorAccent, cfg.Colors.Dynamic, cfg.Colors.Static)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Engine goroutines restore the terminal before reporting a panic
	engine.SetCrashHandler(func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\r\n\x1b[31mENC-TIMER CRASHED: %v\x1b[0m\r\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
		os.Exit(1)
	})
	defer engine.SetCrashHandler(nil)

	screen.HideCursor()
	screen.SetStyle(tcell.StyleDefault.Background(theme.Background).Foreground(theme.Text))

	var sound Sounder
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", "error", err)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	a, err := newApp(cfg, s, engine.SystemClock{}, sound, log)
	if err != nil {
		return err
	}

	a.orch = render.NewRenderOrchestrator(screen, theme.Background)
	a.orch.Register(renderers.NewBodiesRenderer(a.world, a.canvas), render.PriorityBodies)
	a.orch.Register(renderers.NewStatusBarRenderer(a, theme), render.PriorityUI)

	cols, rows := screen.Size()
	if err := a.start(cols, rows); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	events := make(chan tcell.Event, constant.EventChannelSize)
	sched := engine.NewScheduler[tcell.Event](cfg.Render.FrameInterval, cfg.Physics.StepInterval)
	sched.SetStepper(a.world)
	sched.OnFrame(a.tick)
	sched.HandleEvents(events, a.handleEvent)

	err = runLoop(ctx, sched, events, screen.PollEvent, screen.Fini)
	log.Info("stopped", "frames", sched.Frames(), "steps", sched.Steps(), "error", err)
	return err
}

// runLoop pumps poll into events while sched runs; stop must unblock a pending poll
// Any goroutine returning an error cancels the other, so a quit never leaves the poller
// blocked on a full channel
func runLoop(ctx context.Context, sched *engine.Scheduler[tcell.Event], events chan<- tcell.Event, poll func() tcell.Event, stop func()) error {
	g, gctx := errgroup.WithContext(ctx)

	// poll returns nil once stop has run
	g.Go(engine.Guard(func() error {
		defer close(events)
		for {
			ev := poll()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	}))

	g.Go(engine.Guard(func() error {
		defer stop()
		return sched.Run(gctx)
	}))

	err := g.Wait()
	if errors.Is(err, engine.ErrQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
