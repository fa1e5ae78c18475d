package render

import "github.com/gdamore/tcell/v2"

// RenderBuffer is the frame compositor renderers draw into before a single flush to the screen
type RenderBuffer struct {
	cells  []Cell
	width  int
	height int
	blank  Cell
}

// NewRenderBuffer creates a buffer with the specified dimensions, cleared to bg
func NewRenderBuffer(width, height int, bg tcell.Color) *RenderBuffer {
	b := &RenderBuffer{
		blank: Cell{Rune: ' ', Style: tcell.StyleDefault.Background(bg)},
	}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the blank background using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = b.blank
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes a cell, ignoring out-of-bounds coordinates
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// SetWithBg writes a cell with explicit fg and bg colors
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg tcell.Color) {
	b.Set(x, y, r, tcell.StyleDefault.Foreground(fg).Background(bg))
}

// Get returns the cell at (x, y), or the blank cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return b.blank
	}
	return b.cells[y*b.width+x]
}

// Background returns the color cleared cells carry
func (b *RenderBuffer) Background() tcell.Color {
	_, bg, _ := b.blank.Style.Decompose()
	return bg
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (width, height int) {
	return b.width, b.height
}

// FlushToScreen copies the buffer into the screen; tcell diffs against its own back buffer on Show
func (b *RenderBuffer) FlushToScreen(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
