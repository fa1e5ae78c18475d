package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of the render buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}
