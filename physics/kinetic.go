package physics

import (
	"github.com/lixenwraith/enc-timer/vmath"
)

// Kinetic holds sub-pixel motion state in Q32.32
type Kinetic struct {
	// PreciseX and PreciseY are the body center in surface pixels
	PreciseX, PreciseY int64
	// VelX and VelY are pixels per second
	VelX, VelY int64
	// AccelX and AccelY are pixels per second squared
	AccelX, AccelY int64
}

// Integrate performs physics integration: v = v + a*dt; p = p + v*dt
func Integrate(k *Kinetic, dt int64) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
}

// Halt zeroes velocity and acceleration
func Halt(k *Kinetic) {
	k.VelX, k.VelY = 0, 0
	k.AccelX, k.AccelY = 0, 0
}

// Position returns the body center as floats
func (k *Kinetic) Position() (x, y float64) {
	return vmath.ToFloat(k.PreciseX), vmath.ToFloat(k.PreciseY)
}

// SetPosition places the body center
func (k *Kinetic) SetPosition(x, y float64) {
	k.PreciseX, k.PreciseY = vmath.FromFloat(x), vmath.FromFloat(y)
}
