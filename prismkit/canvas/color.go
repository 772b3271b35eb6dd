package canvas

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color in 8-bit channels. A is straight (not premultiplied)
// alpha; 255 means opaque.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color     { return Color{R: r, G: g, B: b, A: 0xFF} }
func RGBA(r, g, b, a uint8) Color { return Color{R: r, G: g, B: b, A: a} }

var (
	Black  = RGB(0, 0, 0)
	White  = RGB(0xFF, 0xFF, 0xFF)
	Red    = RGB(0xFF, 0, 0)
	Green  = RGB(0, 0x80, 0)
	Blue   = RGB(0, 0, 0xFF)
	Orange = RGB(0xFF, 0xA5, 0)
	Gray   = RGB(0x80, 0x80, 0x80)
)

var named = map[string]Color{
	"black":  Black,
	"white":  White,
	"red":    Red,
	"green":  Green,
	"blue":   Blue,
	"orange": Orange,
	"gray":   Gray,
}

// Named returns the CSS named color, if known.
func Named(name string) (Color, bool) {
	c, ok := named[name]
	return c, ok
}

// WithOpacity returns c with alpha set from a fraction in [0,1].
func (c Color) WithOpacity(f float64) Color {
	f = math.Max(0, math.Min(1, f))
	c.A = uint8(math.Round(255 * f))
	return c
}

// Opacity returns the alpha channel as a fraction in [0,1].
func (c Color) Opacity() float64 { return float64(c.A) / 255 }

// String renders c in CSS Color 4 space-separated syntax:
// "rgb(r g b)" when opaque, "rgb(r g b / NN%)" otherwise.
func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgb(%d %d %d / %d%%)", c.R, c.G, c.B, int(math.Round(100*c.Opacity())))
}

// NRGBA converts c to the standard library color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA8 returns the opaque device color used by tinyfont displayers.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}
