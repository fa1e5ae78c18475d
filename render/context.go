package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame uint64
	Now   time.Time

	// Screen dimensions in cells
	Width  int
	Height int

	// Body area in cells, from the top of the screen; the status bar sits below it
	AreaHeight int
}
