package constant

import "time"

// World Physics
const (
	// Gravity is the downward pull in units of GravityScale
	Gravity = 0.2

	// GravityScale converts Gravity to px/s²
	GravityScale = 1000.0

	// Restitution is the fraction of normal velocity kept on a bounce
	Restitution = 0.2

	// Friction is the fraction of tangential velocity lost per contact
	Friction = 0.1

	// UnlockFade is how long a released body blends from its locked to its free color
	UnlockFade = 400 * time.Millisecond
)

// Layout Geometry (surface pixels)
const (
	CircleRadius = 200.0
	MarkerFill   = 0.9 // share of each marker's arc covered by the marker
	FloorInset   = 80.0
	FloorHeight  = 20.0
)

// Seven-Segment Metrics (surface pixels)
const (
	SegmentLength    = 40.0
	SegmentThickness = 3.0
	SegmentGap       = 3.0
	SegmentCharGap   = 10.0
)
