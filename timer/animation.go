package timer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lixenwraith/enc-timer/display"
	"github.com/lixenwraith/enc-timer/engine"
	"github.com/lixenwraith/enc-timer/physics"
	"github.com/lixenwraith/enc-timer/segment"
	"github.com/lixenwraith/enc-timer/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	LabelFloor  = "floor"
	markerLabel = "m-%d"
)

// World is the physics capability the controller needs
type World interface {
	display.World
	Clear()
	SetGravity(x, y float64)
	SetBounds(width, height float64)
}

// Surface reports the pixel size of whatever the bodies are drawn on
type Surface interface {
	Size() (width, height float64)
}

// Layout holds the geometry of a session in surface pixels
type Layout struct {
	Radius      float64 // circle radius, clamped to fit the surface
	Fill        float64 // share of each marker's arc covered by the marker
	FloorInset  float64 // floor width is surface width minus this
	FloorHeight float64
	Gravity     float64 // px/s²
	Metrics     segment.Metrics
}

func DefaultLayout() Layout {
	return Layout{
		Radius:      constant.CircleRadius,
		Fill:        constant.MarkerFill,
		FloorInset:  constant.FloorInset,
		FloorHeight: constant.FloorHeight,
		Gravity:     constant.Gravity * constant.GravityScale,
		Metrics: segment.Metrics{
			Length:    constant.SegmentLength,
			Thickness: constant.SegmentThickness,
			Gap:       constant.SegmentGap,
			CharGap:   constant.SegmentCharGap,
		},
	}
}

// Palette colors locked and released bodies
type Palette struct {
	Static  colorful.Color
	Dynamic colorful.Color
}

// Frame is the outcome of one controller tick
type Frame struct {
	Remaining time.Duration
	Locked    int
	Unlocked  int // markers released by this tick
	Display   display.Diff
}

// Option configures an Animation
type Option func(*Animation)

func WithLayout(l Layout) Option {
	return func(a *Animation) { a.layout = l }
}

func WithPalette(p Palette) Option {
	return func(a *Animation) { a.palette = p }
}

// WithUnlockHook registers fn to run with the count of markers released in a tick
func WithUnlockHook(fn func(count int)) Option {
	return func(a *Animation) { a.onUnlock = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(a *Animation) { a.log = l }
}

// Animation is the session controller binding countdown, markers and readout to one world
type Animation struct {
	world     World
	countdown *Countdown
	renderer  *display.Renderer

	layout  Layout
	palette Palette
	log     *slog.Logger

	surface       Surface
	width, height float64

	markers  []*physics.Body
	onUnlock func(int)
}

// mustHex parses a built-in color; only compile-time constants reach it
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("timer: bad color constant %q: %v", s, err))
	}
	return c
}

// NewAnimation creates a controller around an externally owned world
func NewAnimation(world World, clock engine.TimeProvider, opts ...Option) *Animation {
	a := &Animation{
		world:     world,
		countdown: NewCountdown(clock),
		layout:    DefaultLayout(),
		palette: Palette{
			Static:  mustHex(constant.ColorStatic),
			Dynamic: mustHex(constant.ColorDynamic),
		},
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.renderer = display.New(world, a.layout.Metrics, display.Palette{
		Locked: a.palette.Static,
		Free:   a.palette.Dynamic,
	})
	return a
}

// Initialize binds the surface and configures the world to its size
// Rebinding the same surface at the same size is a no-op; the return reports whether anything changed
func (a *Animation) Initialize(s Surface) bool {
	w, h := s.Size()
	if s == a.surface && w == a.width && h == a.height {
		return false
	}

	a.surface = s
	a.width, a.height = w, h
	a.world.SetBounds(w, h)
	a.world.SetGravity(0, a.layout.Gravity)
	a.renderer.SetSurface(w, h)
	a.log.Debug("surface bound", "width", w, "height", h)
	return true
}

// Set pauses and rebuilds the session: floor, markers and a fresh readout
func (a *Animation) Set(d time.Duration, items int, decimal bool) error {
	if err := a.countdown.Set(d, items, decimal); err != nil {
		return fmt.Errorf("set %v/%d: %w", d, items, err)
	}

	a.world.Clear()
	a.markers = a.markers[:0]
	a.renderer.SetDecimal(decimal)

	if a.surface == nil {
		a.log.Debug("session set without surface", "duration", d, "items", items)
		return nil
	}

	a.addFloor()
	a.addMarkers(items)
	diff := a.renderer.Render(d, true)

	a.log.Debug("session set",
		"duration", d,
		"items", items,
		"decimal", decimal,
		"text", a.renderer.Text(),
		"segments", diff.Created,
	)
	return nil
}

// Restart re-runs Set with the current settings
func (a *Animation) Restart() error {
	c := a.countdown
	if c.State() == StateIdle {
		return nil
	}
	return a.Set(c.Duration(), c.Items(), c.Decimal())
}

func (a *Animation) addFloor() {
	width := max(a.width-a.layout.FloorInset, a.layout.FloorHeight)
	floor := a.world.NewStatic(physics.Rect(width, a.layout.FloorHeight), a.width/2, a.height, LabelFloor, a.palette.Static)
	a.world.Add(floor)
}

func (a *Animation) addMarkers(items int) {
	radius := a.radius()
	cx, cy := a.width/2, a.height/2
	shape := physics.Circle(vmath.ChordRadius(radius, items, a.layout.Fill))

	for i, p := range vmath.PointsOnCircle(radius, items) {
		m := a.world.NewStatic(shape, cx+p.X, cy+p.Y, fmt.Sprintf(markerLabel, i), a.palette.Static)
		a.markers = append(a.markers, m)
	}
	a.world.Add(a.markers...)
}

// radius keeps the circle inside the surface
func (a *Animation) radius() float64 {
	limit := min(a.width, a.height) / 2 * a.layout.Fill
	return max(min(a.layout.Radius, limit), 0)
}

// Play starts or resumes the countdown
func (a *Animation) Play() {
	if a.countdown.Play() {
		a.log.Debug("play", "remaining", a.countdown.Remaining())
	}
}

// Pause freezes the countdown at its last tick
func (a *Animation) Pause() {
	if a.countdown.Pause() {
		a.log.Debug("pause", "remaining", a.countdown.Remaining())
	}
}

// Toggle switches between running and paused
func (a *Animation) Toggle() {
	if a.countdown.Running() {
		a.Pause()
		return
	}
	a.Play()
}

// Tick advances the countdown, releases markers past the locked count and redraws the readout
func (a *Animation) Tick() Frame {
	if a.countdown.State() == StateIdle {
		return Frame{}
	}

	remaining, locked := a.countdown.Tick()
	frame := Frame{Remaining: remaining, Locked: locked}
	frame.Unlocked = a.release(locked)

	if frame.Unlocked > 0 {
		a.log.Debug("markers released", "count", frame.Unlocked, "locked", locked)
		if a.onUnlock != nil {
			a.onUnlock(frame.Unlocked)
		}
	}

	frame.Display = a.renderer.Render(remaining, false)
	return frame
}

// release frees every still-locked marker at index >= locked and returns how many it freed
func (a *Animation) release(locked int) int {
	n := 0
	for i := max(locked, 0); i < len(a.markers); i++ {
		m := a.markers[i]
		if m.State != physics.StateLocked {
			continue
		}
		a.world.SetStatic(m, false)
		a.world.SetColor(m, a.palette.Dynamic)
		n++
	}
	return n
}

// Relayout rebuilds the scene for the bound surface without touching the countdown
// Markers already released are released again from their circle positions
func (a *Animation) Relayout() {
	c := a.countdown
	if c.State() == StateIdle || a.surface == nil {
		return
	}

	a.world.Clear()
	a.markers = a.markers[:0]
	a.addFloor()
	a.addMarkers(c.Items())
	released := a.release(c.Locked())
	a.renderer.Render(c.Remaining(), true)

	a.log.Debug("relayout", "width", a.width, "height", a.height, "released", released)
}

func (a *Animation) Countdown() *Countdown     { return a.countdown }
func (a *Animation) Markers() []*physics.Body { return a.markers }
func (a *Animation) Text() string             { return a.renderer.Text() }
func (a *Animation) Surface() Surface         { return a.surface }
