package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/constant"
)

// Canvas maps surface pixels onto terminal cells
// Each cell holds two stacked sub-pixels drawn with half-block glyphs, so a sub-pixel is
// cellWidth wide and cellHeight/2 tall
type Canvas struct {
	cellWidth, cellHeight int
	cols, rows            int

	sub    []tcell.Color
	filled []bool
}

// NewCanvas creates a canvas covering cols x rows cells
func NewCanvas(cellWidth, cellHeight, cols, rows int) *Canvas {
	c := &Canvas{
		cellWidth:  max(cellWidth, 1),
		cellHeight: max(cellHeight, 2),
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell area and clears the raster
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 0), max(rows, 0)
	n := c.cols * c.rows * 2
	if cap(c.sub) < n {
		c.sub = make([]tcell.Color, n)
		c.filled = make([]bool, n)
	} else {
		c.sub = c.sub[:n]
		c.filled = c.filled[:n]
	}
	c.Reset()
}

// Size returns the surface size in pixels
func (c *Canvas) Size() (width, height float64) {
	return float64(c.cols * c.cellWidth), float64(c.rows * c.cellHeight)
}

// Cells returns the covered cell area
func (c *Canvas) Cells() (cols, rows int) {
	return c.cols, c.rows
}

// Reset clears the raster
func (c *Canvas) Reset() {
	clear(c.filled)
}

func (c *Canvas) subSize() (float64, float64) {
	return float64(c.cellWidth), float64(c.cellHeight) / 2
}

// PixelToCell returns the cell holding a surface pixel and whether it falls in the lower half
func (c *Canvas) PixelToCell(x, y float64) (col, row int, lower bool) {
	sw, sh := c.subSize()
	sx := int(math.Floor(x / sw))
	sy := int(math.Floor(y / sh))
	return sx, floorDiv(sy, 2), sy-floorDiv(sy, 2)*2 == 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func (c *Canvas) plot(sx, sy int, color tcell.Color) {
	if sx < 0 || sx >= c.cols || sy < 0 || sy >= c.rows*2 {
		return
	}
	i := sy*c.cols + sx
	c.sub[i] = color
	c.filled[i] = true
}

// span returns the sub-pixel index range touched by [lo, hi); a non-empty extent covers at least one
func span(lo, hi, size float64) (int, int) {
	first := int(math.Floor(lo / size))
	last := int(math.Ceil(hi/size)) - 1
	return first, max(last, first)
}

// FillRect paints every sub-pixel the axis-aligned box overlaps
func (c *Canvas) FillRect(minX, minY, maxX, maxY float64, color tcell.Color) {
	sw, sh := c.subSize()
	x0, x1 := span(minX, maxX, sw)
	y0, y1 := span(minY, maxY, sh)
	for sy := y0; sy <= y1; sy++ {
		for sx := x0; sx <= x1; sx++ {
			c.plot(sx, sy, color)
		}
	}
}

// FillCircle paints sub-pixels whose centers lie inside the circle, and always the one holding its center
func (c *Canvas) FillCircle(cx, cy, r float64, color tcell.Color) {
	sw, sh := c.subSize()
	x0, x1 := span(cx-r, cx+r, sw)
	y0, y1 := span(cy-r, cy+r, sh)
	r2 := r * r
	for sy := y0; sy <= y1; sy++ {
		py := (float64(sy) + 0.5) * sh
		for sx := x0; sx <= x1; sx++ {
			px := (float64(sx) + 0.5) * sw
			if dx, dy := px-cx, py-cy; dx*dx+dy*dy <= r2 {
				c.plot(sx, sy, color)
			}
		}
	}
	c.plot(int(math.Floor(cx/sw)), int(math.Floor(cy/sh)), color)
}

// Compose writes the raster into buf as half blocks; empty cells are left untouched
func (c *Canvas) Compose(buf *RenderBuffer) {
	bg := buf.Background()
	for row := 0; row < c.rows; row++ {
		top := 2 * row * c.cols
		bottom := top + c.cols
		for col := 0; col < c.cols; col++ {
			ut, lt := c.filled[top+col], c.filled[bottom+col]
			switch {
			case ut && lt && c.sub[top+col] == c.sub[bottom+col]:
				buf.SetWithBg(col, row, constant.GlyphFull, c.sub[top+col], bg)
			case ut && lt:
				buf.SetWithBg(col, row, constant.GlyphUpperHalf, c.sub[top+col], c.sub[bottom+col])
			case ut:
				buf.SetWithBg(col, row, constant.GlyphUpperHalf, c.sub[top+col], bg)
			case lt:
				buf.SetWithBg(col, row, constant.GlyphLowerHalf, c.sub[bottom+col], bg)
			}
		}
	}
}
