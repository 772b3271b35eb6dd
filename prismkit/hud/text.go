// Package hud draws text overlays onto rendered frames: the camera readout,
// a scrolling log console and free-form text blocks such as the fault screen.
// Glyphs come from tinyfont's proggy font; the console is a tinyterm terminal.
package hud

import (
	"image"
	"image/color"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font metrics for proggy TinySZ8pt7b.
const (
	FontHeight = 12
	FontOffset = 9
)

var font = &proggy.TinySZ8pt7b

// CharWidth is the advance of one monospace cell.
func CharWidth() int {
	_, w := tinyfont.LineWidth(font, "0")
	if w == 0 {
		return 6
	}
	return int(w)
}

// DrawText writes lines into dst from the top-left corner (x, y), wrapping at
// the right edge. Lines that fall below the bottom are dropped. It returns the
// number of rows written.
func DrawText(dst *image.RGBA, x, y int, lines []string, fg color.RGBA) int {
	d := newImageDisplay(dst)
	cw := CharWidth()
	cols := (dst.Bounds().Dx() - x) / cw
	if cols <= 0 {
		return 0
	}
	rows := 0
	for _, line := range lines {
		for {
			if y+FontHeight > dst.Bounds().Dy() {
				return rows
			}
			chunk, rest := takeRunes(line, cols)
			drawLine(d, x, y, cw, chunk, fg)
			y += FontHeight
			rows++
			if rest == "" {
				break
			}
			line = rest
		}
	}
	return rows
}

func drawLine(d *imageDisplay, x, y, cw int, s string, fg color.RGBA) {
	for _, r := range s {
		tinyfont.DrawChar(d, font, int16(x), int16(y+FontOffset), r, fg)
		x += cw
	}
}

// Shade darkens or lightens r inside dst by blending c over it.
func Shade(dst *image.RGBA, r image.Rectangle, c color.NRGBA) {
	r = r.Intersect(dst.Bounds())
	a := uint32(c.A)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			p := dst.RGBAAt(x, y)
			p.R = uint8((uint32(c.R)*a + uint32(p.R)*(255-a)) / 255)
			p.G = uint8((uint32(c.G)*a + uint32(p.G)*(255-a)) / 255)
			p.B = uint8((uint32(c.B)*a + uint32(p.B)*(255-a)) / 255)
			dst.SetRGBA(x, y, p)
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
