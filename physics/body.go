package physics

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// ShapeKind selects the body outline
type ShapeKind uint8

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape describes body extents in surface pixels
type Shape struct {
	Kind          ShapeKind
	Width, Height float64
	Radius        float64
}

// Rect returns an axis-aligned rectangle shape
func Rect(width, height float64) Shape {
	return Shape{Kind: ShapeRect, Width: width, Height: height}
}

// Circle returns a circle shape
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// HalfExtents returns the half width and half height of the bounding box
func (s Shape) HalfExtents() (hw, hh float64) {
	if s.Kind == ShapeCircle {
		return s.Radius, s.Radius
	}
	return s.Width / 2, s.Height / 2
}

// State tags a body's lifecycle
// Locked bodies are static, Unlocking bodies were just released and are fading to their free color,
// Free bodies are carried by physics only
type State uint8

const (
	StateLocked State = iota
	StateUnlocking
	StateFree
)

func (s State) String() string {
	switch s {
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateFree:
		return "free"
	default:
		return "unknown"
	}
}

// Body is a primitive owned by a World
type Body struct {
	ID      uint64
	Label   string
	Shape   Shape
	Kinetic Kinetic
	Static  bool
	State   State
	Color   colorful.Color

	fadeFrom    colorful.Color
	fadeTo      colorful.Color
	fadeElapsed time.Duration

	inWorld bool
	asleep  bool
}

// Position returns the body center
func (b *Body) Position() (x, y float64) {
	return b.Kinetic.Position()
}

// Bounds returns the axis-aligned bounding box
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	x, y := b.Position()
	hw, hh := b.Shape.HalfExtents()
	return x - hw, y - hh, x + hw, y + hh
}

// Contains reports whether the point lies inside the body outline
func (b *Body) Contains(px, py float64) bool {
	x, y := b.Position()
	if b.Shape.Kind == ShapeCircle {
		dx, dy := px-x, py-y
		return dx*dx+dy*dy <= b.Shape.Radius*b.Shape.Radius
	}
	hw, hh := b.Shape.HalfExtents()
	return px >= x-hw && px <= x+hw && py >= y-hh && py <= y+hh
}

// InWorld reports whether the body is currently simulated
func (b *Body) InWorld() bool {
	return b.inWorld
}

// Asleep reports whether the body left the simulated area and stopped integrating
func (b *Body) Asleep() bool {
	return b.asleep
}
