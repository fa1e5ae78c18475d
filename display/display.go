// Package display draws the remaining time as seven-segment glyphs made of physics bodies.
// Successive renders diff against the previous string so unchanged segments keep their
// identity, and segments that go dark are released into the world instead of deleted.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/enc-timer/duration"
	"github.com/lixenwraith/enc-timer/physics"
	"github.com/lixenwraith/enc-timer/segment"
	"github.com/lucasb-eyer/go-colorful"
)

// Labels identify display bodies in the world; every display body carries Tag as prefix
const (
	Tag          = "t-"
	LabelPoint   = Tag + "point"
	LabelColon1  = Tag + "colon1"
	LabelColon2  = Tag + "colon2"
	LabelRetired = Tag + "x"
)

// World is the subset of the physics world the renderer drives
type World interface {
	NewStatic(shape physics.Shape, x, y float64, label string, color colorful.Color) *physics.Body
	Add(bodies ...*physics.Body)
	SetStatic(b *physics.Body, static bool)
	SetColor(b *physics.Body, c colorful.Color)
	Relabel(b *physics.Body, label string)
	RemoveTagged(prefix string) int
}

// Palette holds the colors of lit and released glyph bodies
type Palette struct {
	Locked colorful.Color
	Free   colorful.Color
}

// Diff summarizes the work done by one Render call
type Diff struct {
	Created int
	Retired int
	Removed int
}

type slot struct {
	pos, seg int
}

// Renderer owns the glyph bodies of the readout
type Renderer struct {
	world   World
	metrics segment.Metrics
	palette Palette

	decimal       bool
	width, height float64

	text     string
	segments map[slot]*physics.Body
	dots     map[string]*physics.Body
}

// New creates a renderer; SetSurface must be called before anything is drawn
func New(world World, metrics segment.Metrics, palette Palette) *Renderer {
	return &Renderer{
		world:    world,
		metrics:  metrics,
		palette:  palette,
		segments: make(map[slot]*physics.Body),
		dots:     make(map[string]*physics.Body),
	}
}

// SetSurface sets the pixel size the readout is centered in
func (r *Renderer) SetSurface(width, height float64) {
	r.width, r.height = width, height
}

// SetDecimal selects decimal-day or m:ss formatting
func (r *Renderer) SetDecimal(decimal bool) {
	r.decimal = decimal
}

// Text returns the last rendered string, including alignment padding
func (r *Renderer) Text() string {
	return r.text
}

// Lit returns the number of glyph segments and dots currently drawn
func (r *Renderer) Lit() int {
	return len(r.segments) + len(r.dots)
}

// Format returns the readout for a remaining duration
func Format(remaining time.Duration, decimal bool) string {
	return duration.Format(remaining, decimal)
}

// Render brings the glyph bodies in line with the remaining duration
// A reset removes every display body first; otherwise only changed segments are touched
func (r *Renderer) Render(remaining time.Duration, reset bool) Diff {
	var diff Diff
	if r.width <= 0 || r.height <= 0 {
		return diff
	}

	text := Format(remaining, r.decimal)

	if reset {
		diff.Removed = r.world.RemoveTagged(Tag)
		clear(r.segments)
		clear(r.dots)
	} else {
		if len(text) < len(r.text) {
			text = strings.Repeat(" ", len(r.text)-len(text)) + text
		}
		if text == r.text {
			return diff
		}
	}

	r.text = text

	m := r.metrics
	pitch := m.Pitch()
	startX := r.width/2 - r.textWidth(text)/2
	startY := r.height * 3 / 7

	cursor := 0.0
	for i, ch := range []byte(text) {
		x := startX + cursor

		switch ch {
		case '.':
			cursor += pitch / 2
			diff.Created += r.ensureDot(LabelPoint, x+pitch/4, startY+2*m.Length+4*m.Gap)
		case ':':
			cursor += pitch / 2
			diff.Created += r.ensureDot(LabelColon1, x+pitch/4, startY+m.Length/2+m.Gap)
			diff.Created += r.ensureDot(LabelColon2, x+pitch/4, startY+1.5*m.Length+3*m.Gap)
		default:
			cursor += pitch
			created, retired := r.drawDigit(i, ch, x+pitch/2, startY)
			diff.Created += created
			diff.Retired += retired
		}
	}

	return diff
}

// textWidth sums character advances; separators take half a pitch
func (r *Renderer) textWidth(text string) float64 {
	pitch := r.metrics.Pitch()
	w := 0.0
	for _, ch := range []byte(text) {
		if ch == '.' || ch == ':' {
			w += pitch / 2
		} else {
			w += pitch
		}
	}
	return w
}

func (r *Renderer) ensureDot(label string, x, y float64) int {
	if _, ok := r.dots[label]; ok {
		return 0
	}
	b := r.world.NewStatic(physics.Circle(r.metrics.Thickness*2), x, y, label, r.palette.Locked)
	r.world.Add(b)
	r.dots[label] = b
	return 1
}

// drawDigit lights the segments of ch at position pos and releases the rest
// Spaces and other non-digits light nothing
func (r *Renderer) drawDigit(pos int, ch byte, centerX, top float64) (created, retired int) {
	active := segment.ForRune(rune(ch))
	var fresh []*physics.Body

	for j := 0; j < segment.Count; j++ {
		key := slot{pos: pos, seg: j}
		b, exists := r.segments[key]

		if active.Has(j) {
			if exists {
				continue
			}
			g := segment.Geometry(j, centerX, top, r.metrics)
			b = r.world.NewStatic(physics.Rect(g.Width, g.Height), g.X, g.Y, segmentLabel(pos, j), r.palette.Locked)
			r.segments[key] = b
			fresh = append(fresh, b)
			continue
		}

		if exists {
			r.retire(b)
			delete(r.segments, key)
			retired++
		}
	}

	if len(fresh) > 0 {
		r.world.Add(fresh...)
	}
	return len(fresh), retired
}

// retire releases a glyph body to physics under the retired label
func (r *Renderer) retire(b *physics.Body) {
	r.world.SetStatic(b, false)
	r.world.SetColor(b, r.palette.Free)
	r.world.Relabel(b, LabelRetired)
}

func segmentLabel(pos, seg int) string {
	return fmt.Sprintf("%s%d-%d", Tag, pos, seg)
}
