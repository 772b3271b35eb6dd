package hud

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// imageDisplay exposes an *image.RGBA as a TinyGo displayer, so tinyfont and
// tinyterm can draw into it. Coordinates are relative to the image bounds.
type imageDisplay struct {
	img    *image.RGBA
	scroll int16
}

func newImageDisplay(img *image.RGBA) *imageDisplay {
	return &imageDisplay{img: img}
}

func (d *imageDisplay) Size() (x, y int16) {
	if d.img == nil {
		return 0, 0
	}
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.img == nil {
		return
	}
	b := d.img.Bounds()
	p := image.Pt(b.Min.X+int(x), b.Min.Y+int(y))
	if !p.In(b) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

func (d *imageDisplay) Display() error { return nil }

func (d *imageDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.img == nil {
		return nil
	}
	b := d.img.Bounds()
	r := image.Rect(int(x), int(y), int(x)+int(width), int(y)+int(height)).Add(b.Min).Intersect(b)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			d.img.SetRGBA(px, py, c)
		}
	}
	return nil
}

// SetScroll records the hardware scroll origin: the row shown at the top of
// the panel. imageDisplay itself never moves pixels; Console applies it when
// compositing.
func (d *imageDisplay) SetScroll(line int16) {
	d.scroll = line
}

func (d *imageDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}
