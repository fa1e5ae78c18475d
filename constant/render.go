package constant

// Virtual Pixel Grid
// A terminal cell covers CellWidth x CellHeight surface pixels and is drawn as two half-block sub-pixels
const (
	CellWidth  = 8
	CellHeight = 16

	// StatusBarRows are reserved at the bottom of the screen
	StatusBarRows = 1
)

// Palette (hex, parsed by go-colorful)
const (
	ColorStatic     = "#1976d2"
	ColorDynamic    = "#ffa500"
	ColorBackground = "#0d1117"
	ColorText       = "#c9d1d9"
	ColorAccent     = "#58a6ff"
)

// Glyphs
const (
	GlyphUpperHalf = '▀'
	GlyphLowerHalf = '▄'
	GlyphFull      = '█'
)
