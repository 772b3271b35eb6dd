package hud

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"tinygo.org/x/tinyterm"
)

// Console is a scrolling log strip backed by a tinyterm terminal. It satisfies
// the hal.Logger contract, so it can sit behind a MultiLogger next to stdout.
type Console struct {
	mu    sync.Mutex
	strip *image.RGBA
	d     *imageDisplay
	t     *tinyterm.Terminal
}

// NewConsole allocates a width-pixel strip holding rows lines of text.
func NewConsole(width, rows int) *Console {
	if rows <= 0 {
		rows = 1
	}
	c := &Console{strip: image.NewRGBA(image.Rect(0, 0, max(width, 1), rows*FontHeight))}
	c.d = newImageDisplay(c.strip)
	c.reset()
	return c
}

func (c *Console) reset() {
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: FontHeight,
		FontOffset: FontOffset,
	})
	draw.Draw(c.strip, c.strip.Bounds(), image.Black, image.Point{}, draw.Src)
}

func (c *Console) WriteLineString(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.t.Write([]byte(s))
	_, _ = c.t.Write([]byte{'\r', '\n'})
}

func (c *Console) WriteLineBytes(b []byte) {
	c.WriteLineString(string(b))
}

// Clear blanks the strip and restarts at the top.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Bounds is the strip size.
func (c *Console) Bounds() image.Rectangle { return c.strip.Bounds() }

// Draw copies the strip onto the bottom edge of dst. The terminal paints
// glyphs straight into the strip and scrolls by moving its top row like a
// hardware scroll register, so the strip is copied in two parts starting at
// that row. The last composited row is the blank cursor row.
func (c *Console) Draw(dst *image.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	h := c.strip.Bounds().Dy()
	top := int(c.d.scroll) % h
	if top < 0 {
		top += h
	}
	b := dst.Bounds()
	y0 := b.Max.Y - h
	draw.Draw(dst, image.Rect(b.Min.X, y0, b.Max.X, y0+h-top), c.strip, image.Pt(0, top), draw.Src)
	if top > 0 {
		draw.Draw(dst, image.Rect(b.Min.X, y0+h-top, b.Max.X, b.Max.Y), c.strip, image.Point{}, draw.Src)
	}
}

// Pixel reports a strip pixel, for tests and diagnostics.
func (c *Console) Pixel(x, y int) color.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strip.RGBAAt(x, y)
}
