package physics

import (
	"strings"
	"sync"
	"time"

	"github.com/lixenwraith/enc-timer/vmath"
	"github.com/lucasb-eyer/go-colorful"
)

// sleepMargin is how far past the bounds a body may travel before it stops integrating
const sleepMargin = 200.0

// World owns bodies and advances them on Step
// Bodies are created detached and join the simulation through Add
type World struct {
	mu sync.RWMutex

	nextID uint64
	bodies []*Body

	gravityX, gravityY int64 // px/s² in Q32.32
	restitution        int64 // Q32.32 fraction of normal velocity kept on bounce
	friction           int64 // Q32.32 fraction of tangential velocity lost on contact
	fadeDuration       time.Duration

	width, height float64
}

// Option configures a World
type Option func(*World)

// WithRestitution sets the bounce factor (0 = no bounce, 1 = elastic)
func WithRestitution(r float64) Option {
	return func(w *World) {
		w.restitution = vmath.FromFloat(r)
	}
}

// WithFriction sets the tangential damping applied on contact
func WithFriction(f float64) Option {
	return func(w *World) {
		w.friction = vmath.FromFloat(f)
	}
}

// WithFade sets how long an unlocking body blends to its new color
func WithFade(d time.Duration) Option {
	return func(w *World) {
		w.fadeDuration = d
	}
}

// NewWorld creates an empty world without gravity
func NewWorld(opts ...Option) *World {
	w := &World{
		nextID:      1,
		bodies:      make([]*Body, 0, 64),
		restitution: vmath.FromFloat(0.2),
		friction:    vmath.FromFloat(0.1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SetGravity sets world acceleration in px/s²
func (w *World) SetGravity(x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gravityX, w.gravityY = vmath.FromFloat(x), vmath.FromFloat(y)
}

// SetBounds sets the simulated area; bodies leaving it by sleepMargin fall asleep
func (w *World) SetBounds(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
}

func (w *World) newBody(shape Shape, x, y float64, label string, color colorful.Color) *Body {
	w.mu.Lock()
	id := w.nextID
	w.nextID++
	w.mu.Unlock()

	b := &Body{
		ID:    id,
		Label: label,
		Shape: shape,
		Color: color,
	}
	b.Kinetic.SetPosition(x, y)
	return b
}

// NewStatic creates a detached locked body centered at (x, y)
func (w *World) NewStatic(shape Shape, x, y float64, label string, color colorful.Color) *Body {
	b := w.newBody(shape, x, y, label, color)
	b.Static = true
	b.State = StateLocked
	return b
}

// NewDynamic creates a detached free body centered at (x, y)
func (w *World) NewDynamic(shape Shape, x, y float64, label string, color colorful.Color) *Body {
	b := w.newBody(shape, x, y, label, color)
	b.State = StateFree
	return b
}

// Add inserts bodies into the simulation, ignoring ones already present
func (w *World) Add(bodies ...*Body) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range bodies {
		if b == nil || b.inWorld {
			continue
		}
		b.inWorld = true
		w.bodies = append(w.bodies, b)
	}
}

// Remove detaches bodies from the simulation
func (w *World) Remove(bodies ...*Body) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, b := range bodies {
		if b != nil {
			b.inWorld = false
		}
	}
	w.compact()
}

// RemoveTagged detaches every body whose label starts with prefix, returns the count
func (w *World) RemoveTagged(prefix string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	n := 0
	for _, b := range w.bodies {
		if strings.HasPrefix(b.Label, prefix) {
			b.inWorld = false
			n++
		}
	}
	w.compact()
	return n
}

// compact drops detached bodies preserving order, caller holds the lock
func (w *World) compact() {
	kept := w.bodies[:0]
	for _, b := range w.bodies {
		if b.inWorld {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = kept
}

// Clear detaches every body
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for i, b := range w.bodies {
		b.inWorld = false
		w.bodies[i] = nil
	}
	w.bodies = w.bodies[:0]
}

// Find returns the first body in the world with the exact label
func (w *World) Find(label string) (*Body, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, b := range w.bodies {
		if b.Label == label {
			return b, true
		}
	}
	return nil, false
}

// Len returns the number of bodies in the world
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.bodies)
}

// Bodies returns a snapshot of the bodies in insertion order
func (w *World) Bodies() []*Body {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Each calls fn for every body under a read lock, fn must not call back into the world
func (w *World) Each(fn func(*Body)) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, b := range w.bodies {
		fn(b)
	}
}

// SetStatic toggles whether the body takes part in integration
// Releasing a locked body tags it Unlocking until its color fade completes
func (w *World) SetStatic(b *Body, static bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if b.Static == static {
		return
	}
	b.Static = static
	b.asleep = false
	Halt(&b.Kinetic)
	if static {
		b.State = StateLocked
		return
	}
	b.State = StateUnlocking
	b.fadeFrom, b.fadeTo = b.Color, b.Color
	b.fadeElapsed = 0
}

// SetColor recolors a body, blending over the fade duration while it is Unlocking
func (w *World) SetColor(b *Body, c colorful.Color) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if b.State == StateUnlocking && w.fadeDuration > 0 {
		b.fadeFrom = b.Color
		b.fadeTo = c
		b.fadeElapsed = 0
		return
	}
	b.Color = c
	b.fadeTo = c
}

// Relabel changes a body's label
func (w *World) Relabel(b *Body, label string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b.Label = label
}

// Step advances every dynamic body by dt
func (w *World) Step(dt time.Duration) {
	if dt <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	dtQ := vmath.FromSeconds(dt.Nanoseconds())

	statics := make([]*Body, 0, len(w.bodies))
	for _, b := range w.bodies {
		if b.Static {
			statics = append(statics, b)
		}
	}

	for _, b := range w.bodies {
		if b.State == StateUnlocking {
			w.advanceFade(b, dt)
		}
		if b.Static || b.asleep {
			continue
		}

		b.Kinetic.AccelX, b.Kinetic.AccelY = w.gravityX, w.gravityY
		Integrate(&b.Kinetic, dtQ)

		for _, s := range statics {
			resolveStatic(b, s, w.restitution, w.friction)
		}

		if w.outOfBounds(b) {
			b.asleep = true
			Halt(&b.Kinetic)
		}
	}
}

func (w *World) advanceFade(b *Body, dt time.Duration) {
	b.fadeElapsed += dt
	if w.fadeDuration <= 0 || b.fadeElapsed >= w.fadeDuration {
		b.Color = b.fadeTo
		b.State = StateFree
		return
	}
	t := float64(b.fadeElapsed) / float64(w.fadeDuration)
	b.Color = b.fadeFrom.BlendLab(b.fadeTo, t).Clamped()
}

func (w *World) outOfBounds(b *Body) bool {
	if w.width <= 0 || w.height <= 0 {
		return false
	}
	minX, minY, maxX, _ := b.Bounds()
	return minY > w.height+sleepMargin || maxX < -sleepMargin || minX > w.width+sleepMargin
}
