package renderers

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/enc-timer/render"
	"github.com/mattn/go-runewidth"
)

// Status is the snapshot the status bar shows
type Status struct {
	Mode     string // "decimal" or "classic"
	State    string
	Running  bool
	Readout  string
	Hint     string
	Unlocked int
	Items    int
}

// StatusSource supplies the status each frame
type StatusSource interface {
	Status() Status
}

// StatusBarRenderer draws the status bar on the last screen row
type StatusBarRenderer struct {
	source StatusSource
	theme  render.Theme
}

// NewStatusBarRenderer creates a status bar renderer
func NewStatusBarRenderer(source StatusSource, theme render.Theme) *StatusBarRenderer {
	return &StatusBarRenderer{source: source, theme: theme}
}

// Render implements SystemRenderer
func (s *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Height <= 0 || ctx.Width <= 0 {
		return
	}
	st := s.source.Status()
	y := ctx.Height - 1

	base := tcell.StyleDefault.Foreground(s.theme.Text).Background(s.theme.Background)
	for x := 0; x < ctx.Width; x++ {
		buf.Set(x, y, ' ', base)
	}

	badgeBg := s.theme.Paused
	if st.Running {
		badgeBg = s.theme.Running
	}
	badge := tcell.StyleDefault.Foreground(s.theme.Background).Background(badgeBg).Bold(true)

	x := drawText(buf, 0, y, ctx.Width, " "+st.State+" ", badge)
	x = drawText(buf, x+1, y, ctx.Width, st.Mode, base.Foreground(s.theme.Accent))
	x = drawText(buf, x+1, y, ctx.Width, st.Readout, base.Bold(true))
	if st.Items > 0 {
		x = drawText(buf, x+1, y, ctx.Width, progress(st.Unlocked, st.Items), base)
	}

	// Key hints are right-aligned and dropped first when space runs out
	if room := ctx.Width - x - 1; room > 0 && st.Hint != "" {
		hint := runewidth.Truncate(st.Hint, room, "…")
		drawText(buf, ctx.Width-runewidth.StringWidth(hint), y, ctx.Width, hint, base.Dim(true))
	}
}

// drawText writes s from x, clipped at limit, and returns the column after it
func drawText(buf *render.RenderBuffer, x, y, limit int, s string, style tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		buf.Set(x, y, r, style)
		x += w
	}
	return x
}

func progress(unlocked, items int) string {
	return strconv.Itoa(unlocked) + "/" + strconv.Itoa(items)
}
