package physics

import (
	"github.com/lixenwraith/enc-timer/vmath"
)

// resolveStatic pushes dynamic body b out of static body s along the axis of least penetration
// Normal velocity is reflected and scaled by restitution, tangential velocity is damped by friction
func resolveStatic(b, s *Body, restitution, friction int64) bool {
	bhw, bhh := b.Shape.HalfExtents()
	shw, shh := s.Shape.HalfExtents()

	dx := b.Kinetic.PreciseX - s.Kinetic.PreciseX
	dy := b.Kinetic.PreciseY - s.Kinetic.PreciseY

	px := vmath.FromFloat(bhw+shw) - vmath.Abs(dx)
	if px <= 0 {
		return false
	}
	py := vmath.FromFloat(bhh+shh) - vmath.Abs(dy)
	if py <= 0 {
		return false
	}

	keep := -restitution
	slide := vmath.Scale - friction

	if px < py {
		if dx < 0 {
			px = -px
		}
		b.Kinetic.PreciseX += px
		if (px > 0) != (b.Kinetic.VelX > 0) {
			b.Kinetic.VelX = vmath.Mul(b.Kinetic.VelX, keep)
		}
		b.Kinetic.VelY = vmath.Mul(b.Kinetic.VelY, slide)
		return true
	}

	if dy < 0 {
		py = -py
	}
	b.Kinetic.PreciseY += py
	if (py > 0) != (b.Kinetic.VelY > 0) {
		b.Kinetic.VelY = vmath.Mul(b.Kinetic.VelY, keep)
	}
	b.Kinetic.VelX = vmath.Mul(b.Kinetic.VelX, slide)
	return true
}
