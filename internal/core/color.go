package core

// Color is a palette index shared by the simulation and every renderer.
// The zero value doubles as "empty" for board cells and "terminal default"
// for screen text.
type Color uint8

// Palette entries.
const (
	ColorNone Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorWhite
	ColorGray
	ColorDim
)

// RGB holds 8-bit channel values.
type RGB struct {
	R, G, B uint8
}

var palette = [...]RGB{
	ColorNone:    {0, 0, 0},
	ColorRed:     {0xFF, 0x00, 0x00},
	ColorGreen:   {0x00, 0xFF, 0x00},
	ColorBlue:    {0x00, 0x00, 0xFF},
	ColorYellow:  {0xFF, 0xFF, 0x00},
	ColorMagenta: {0xFF, 0x00, 0xFF},
	ColorCyan:    {0x00, 0xFF, 0xFF},
	ColorOrange:  {0xFF, 0xA5, 0x00},
	ColorWhite:   {0xFF, 0xFF, 0xFF},
	ColorGray:    {0x80, 0x80, 0x80},
	ColorDim:     {0x3A, 0x3A, 0x3A},
}

// RGB returns the true-color value used by pixel renderers.
// Unknown colors map to black.
func (c Color) RGB() RGB {
	if int(c) >= len(palette) {
		return RGB{}
	}
	return palette[c]
}

// String returns the hex form, e.g. "#FFA500".
func (c Color) String() string {
	const digits = "0123456789ABCDEF"
	rgb := c.RGB()
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{rgb.R, rgb.G, rgb.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0F]
	}
	return string(b)
}
