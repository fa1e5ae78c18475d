package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/constant"
	"github.com/lixenwraith/enc-timer/physics"
	"github.com/lixenwraith/enc-timer/render"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

var testTheme = render.Theme{
	Background: tcell.NewRGBColor(0, 0, 0),
	Text:       tcell.NewRGBColor(200, 200, 200),
	Accent:     tcell.NewRGBColor(80, 160, 255),
	Running:    tcell.NewRGBColor(255, 165, 0),
	Paused:     tcell.NewRGBColor(25, 118, 210),
}

func rowText(buf *render.RenderBuffer, y int) string {
	w, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func TestBodiesRenderer(t *testing.T) {
	world := physics.NewWorld()
	red := colorful.Color{R: 1}
	world.Add(
		world.NewStatic(physics.Rect(16, 16), 40, 40, "box", red),
		world.NewStatic(physics.Circle(1), 4, 4, "dot", red),
	)

	canvas := render.NewCanvas(8, 16, 10, 5)
	buf := render.NewRenderBuffer(10, 6, testTheme.Background)
	r := NewBodiesRenderer(world, canvas)
	r.Render(render.RenderContext{Width: 10, Height: 6, AreaHeight: 5}, buf)

	for _, col := range []int{4, 5} {
		c := buf.Get(col, 2)
		assert.Equal(t, constant.GlyphFull, c.Rune, "col %d", col)
		f, _, _ := c.Style.Decompose()
		assert.Equal(t, tcell.NewRGBColor(255, 0, 0), f)
	}
	assert.Equal(t, ' ', buf.Get(3, 2).Rune)
	assert.Equal(t, constant.GlyphUpperHalf, buf.Get(0, 0).Rune)

	// a second frame starts from a clean raster
	world.Clear()
	buf.Clear()
	r.Render(render.RenderContext{Width: 10, Height: 6, AreaHeight: 5}, buf)
	assert.Equal(t, ' ', buf.Get(4, 2).Rune)
}

type fixedStatus Status

func (f fixedStatus) Status() Status { return Status(f) }

func TestStatusBarRenderer(t *testing.T) {
	buf := render.NewRenderBuffer(60, 3, testTheme.Background)
	s := NewStatusBarRenderer(fixedStatus{
		Mode:     "decimal",
		State:    "running",
		Running:  true,
		Readout:  "6.5",
		Hint:     "space pause  q quit",
		Unlocked: 5,
		Items:    70,
	}, testTheme)

	s.Render(render.RenderContext{Width: 60, Height: 3, AreaHeight: 2}, buf)

	line := rowText(buf, 2)
	assert.True(t, strings.HasPrefix(line, " running  decimal 6.5 5/70"), line)
	assert.True(t, strings.HasSuffix(line, "space pause  q quit"), line)
	assert.Equal(t, strings.Repeat(" ", 60), rowText(buf, 1), "only the last row is drawn")

	_, badgeBg, _ := buf.Get(1, 2).Style.Decompose()
	assert.Equal(t, testTheme.Running, badgeBg)
}

func TestStatusBarRendererNarrow(t *testing.T) {
	buf := render.NewRenderBuffer(12, 1, testTheme.Background)
	s := NewStatusBarRenderer(fixedStatus{
		Mode:    "classic",
		State:   "paused",
		Readout: "10:00",
		Hint:    "space play  r restart  q quit",
	}, testTheme)

	s.Render(render.RenderContext{Width: 12, Height: 1}, buf)

	line := rowText(buf, 0)
	assert.Equal(t, " paused  cla", line)

	_, badgeBg, _ := buf.Get(0, 0).Style.Decompose()
	assert.Equal(t, testTheme.Paused, badgeBg)
}
