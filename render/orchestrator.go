package render

import (
	"cmp"
	"slices"

	"github.com/gdamore/tcell/v2"
)

// Layer orders renderers within a frame; lower layers draw first and are overdrawn
type Layer int

const (
	PriorityBackground Layer = iota
	PriorityBodies
	PriorityUI
	PriorityOverlay
)

// SystemRenderer draws one layer of the frame into the shared buffer
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle lets a renderer skip frames without being unregistered
type VisibilityToggle interface {
	IsVisible() bool
}

type layered struct {
	SystemRenderer
	layer Layer
}

// RenderOrchestrator composes every registered layer into one buffer and flushes it to the screen
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layered
}

func NewRenderOrchestrator(screen tcell.Screen, bg tcell.Color) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h, bg),
	}
}

// Register adds r on the given layer; renderers sharing a layer keep registration order
func (o *RenderOrchestrator) Register(r SystemRenderer, layer Layer) {
	o.layers = append(o.layers, layered{SystemRenderer: r, layer: layer})
	slices.SortStableFunc(o.layers, func(a, b layered) int {
		return cmp.Compare(a.layer, b.layer)
	})
}

// Resize follows a terminal resize; Sync forces a full repaint on the next Show
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame clears the buffer, draws visible layers bottom up and shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()
	for _, l := range o.layers {
		if vt, ok := l.SystemRenderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.Render(ctx, o.buffer)
	}
	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
