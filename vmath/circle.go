package vmath

import "math"

// Point is a 2D offset in surface pixels
type Point struct {
	X, Y float64
}

// PointsOnCircle returns count offsets evenly spaced on a circle of the given radius
// Index 0 sits at 12 o'clock and indices advance clockwise in screen coordinates (Y down)
func PointsOnCircle(radius float64, count int) []Point {
	if count <= 0 {
		return []Point{}
	}

	points := make([]Point, count)
	step := 2 * math.Pi / float64(count)
	for i := range points {
		angle := float64(i)*step - math.Pi/2
		points[i] = Point{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
		}
	}
	return points
}

// ChordRadius returns the radius of a body that fills its share of the circumference
// fill is the fraction of the available arc the body occupies (0.9 leaves a small gap)
func ChordRadius(radius float64, count int, fill float64) float64 {
	if count <= 0 {
		return 0
	}
	return (2 * math.Pi * radius) / float64(count) / 2 * fill
}
