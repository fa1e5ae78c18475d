// Package segment resolves seven-segment digit patterns and segment geometry.
//
// Segment indices:
//
//	 --- 0 ---
//	|         |
//	5         1
//	|         |
//	 --- 6 ---
//	|         |
//	4         2
//	|         |
//	 --- 3 ---
package segment

// Count is the number of segments in a glyph
const Count = 7

// Set is a bitmask of active segment indices
type Set uint8

// Has reports whether segment i is active
func (s Set) Has(i int) bool {
	if i < 0 || i >= Count {
		return false
	}
	return s&(1<<i) != 0
}

// Indices returns the active segment indices in ascending order
func (s Set) Indices() []int {
	out := make([]int, 0, Count)
	for i := 0; i < Count; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Len returns the number of active segments
func (s Set) Len() int {
	n := 0
	for i := 0; i < Count; i++ {
		if s.Has(i) {
			n++
		}
	}
	return n
}

func of(indices ...int) Set {
	var s Set
	for _, i := range indices {
		s |= 1 << i
	}
	return s
}

var digits = [10]Set{
	0: of(0, 1, 2, 3, 4, 5),
	1: of(1, 2),
	2: of(0, 1, 3, 4, 6),
	3: of(0, 1, 2, 3, 6),
	4: of(1, 2, 5, 6),
	5: of(0, 2, 3, 5, 6),
	6: of(0, 2, 3, 4, 5, 6),
	7: of(0, 1, 2),
	8: of(0, 1, 2, 3, 4, 5, 6),
	9: of(0, 1, 2, 3, 5, 6),
}

// For returns the active segments of a decimal digit; anything outside 0-9 lights nothing
func For(digit int) Set {
	if digit < 0 || digit > 9 {
		return 0
	}
	return digits[digit]
}

// ForRune returns the active segments for a display rune; non-digits light nothing
func ForRune(r rune) Set {
	if r < '0' || r > '9' {
		return 0
	}
	return digits[r-'0']
}

// Metrics holds glyph dimensions in surface pixels
type Metrics struct {
	Length    float64 // segment length
	Thickness float64 // segment thickness
	Gap       float64 // gap between adjoining segments
	CharGap   float64 // spacing between characters
}

// Pitch returns the horizontal advance of a full character
func (m Metrics) Pitch() float64 {
	return m.Length + m.CharGap + 2*m.Gap
}

// Height returns the vertical extent from the top segment to the bottom segment
func (m Metrics) Height() float64 {
	return 2*m.Length + 4*m.Gap
}

// Rect is an axis-aligned rectangle given by its center
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Geometry returns the rectangle of segment index for a character whose horizontal
// center is originX and whose top edge is originY
func Geometry(index int, originX, originY float64, m Metrics) Rect {
	if index < 0 || index >= Count {
		return Rect{}
	}

	side := m.Length/2 + m.Gap
	var dx float64
	switch index {
	case 1, 2:
		dx = side
	case 4, 5:
		dx = -side
	}

	var dy float64
	switch index {
	case 0:
		dy = 0
	case 1, 5:
		dy = m.Length/2 + m.Gap
	case 6:
		dy = m.Length + 2*m.Gap
	case 2, 4:
		dy = 1.5*m.Length + 3*m.Gap
	case 3:
		dy = 2*m.Length + 4*m.Gap
	}

	r := Rect{X: originX + dx, Y: originY + dy}
	if Horizontal(index) {
		r.Width, r.Height = m.Length, m.Thickness
	} else {
		r.Width, r.Height = m.Thickness, m.Length
	}
	return r
}

// Horizontal reports whether the segment runs left to right
func Horizontal(index int) bool {
	return index == 0 || index == 3 || index == 6
}
