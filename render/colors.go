package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ToTCell converts a blended body color to a terminal truecolor
func ToTCell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Theme is the palette of everything that is not a body
type Theme struct {
	Background tcell.Color
	Text       tcell.Color
	Accent     tcell.Color
	Running    tcell.Color
	Paused     tcell.Color
}

// ParseTheme builds a theme from hex colors; running and paused badges reuse the body palette
func ParseTheme(background, text, accent, running, paused string) (Theme, error) {
	var th Theme
	for _, p := range []struct {
		hex string
		dst *tcell.Color
	}{
		{background, &th.Background},
		{text, &th.Text},
		{accent, &th.Accent},
		{running, &th.Running},
		{paused, &th.Paused},
	} {
		c, err := colorful.Hex(p.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("parse color %q: %w", p.hex, err)
		}
		*p.dst = ToTCell(c)
	}
	return th, nil
}
