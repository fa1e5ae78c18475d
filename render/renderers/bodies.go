package renderers

import (
	"github.com/lixenwraith/enc-timer/physics"
	"github.com/lixenwraith/enc-timer/render"
)

// BodySource iterates bodies under the world's read lock
type BodySource interface {
	Each(fn func(*physics.Body))
}

// BodiesRenderer rasterizes every body onto the canvas
type BodiesRenderer struct {
	world  BodySource
	canvas *render.Canvas
}

// NewBodiesRenderer creates a bodies renderer drawing through canvas
func NewBodiesRenderer(world BodySource, canvas *render.Canvas) *BodiesRenderer {
	return &BodiesRenderer{world: world, canvas: canvas}
}

// Render implements SystemRenderer
func (r *BodiesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	r.canvas.Reset()
	r.world.Each(func(b *physics.Body) {
		if b.Asleep() {
			return
		}
		color := render.ToTCell(b.Color)
		switch b.Shape.Kind {
		case physics.ShapeCircle:
			x, y := b.Position()
			r.canvas.FillCircle(x, y, b.Shape.Radius, color)
		default:
			minX, minY, maxX, maxY := b.Bounds()
			r.canvas.FillRect(minX, minY, maxX, maxY, color)
		}
	})
	r.canvas.Compose(buf)
}
