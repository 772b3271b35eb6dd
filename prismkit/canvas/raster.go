package canvas

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"prism/prismkit/geom"
)

// kappa is the cubic Bézier control distance for a quarter circle.
const kappa = 0.5522847498

// strokeWidth matches a canvas lineWidth of 1.
const strokeWidth = 1.0

// Raster draws into an *image.RGBA using an anti-aliasing rasterizer.
//
// Create it once per frame size and reuse it; the rasterizer scratch buffers
// are kept between draws.
type Raster struct {
	Background Color

	img *image.RGBA
	z   *vector.Rasterizer
}

func NewRaster(w, h int) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Raster{
		Background: White,
		img:        image.NewRGBA(image.Rect(0, 0, w, h)),
		z:          vector.NewRasterizer(w, h),
	}
}

// Image returns the backing image. It is overwritten by subsequent draws.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) Size() (w, h int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background.NRGBA()), image.Point{}, draw.Src)
}

func (r *Raster) FillCircle(center geom.Vec2, radius float64, c Color) {
	if !finite(center) || radius <= 0 {
		return
	}
	w, h := r.Size()
	center = clampPoint(center, w, h)
	rr := radius + strokeWidth/2

	r.begin()
	cx, cy := float32(center.X), float32(center.Y)
	rad := float32(rr)
	k := float32(kappa * rr)
	r.z.MoveTo(cx+rad, cy)
	r.z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.paint(c)
}

func (r *Raster) FillPolygon(pts []geom.Vec2, c Color) {
	if len(pts) < 2 || !finite(pts...) {
		return
	}
	w, h := r.Size()
	ring := make([]geom.Vec2, len(pts))
	for i, p := range pts {
		ring[i] = clampPoint(p, w, h)
	}

	if len(ring) > 2 {
		r.begin()
		r.z.MoveTo(float32(ring[0].X), float32(ring[0].Y))
		for _, p := range ring[1:] {
			r.z.LineTo(float32(p.X), float32(p.Y))
		}
		r.z.ClosePath()
		r.paint(c)
	}

	// The stroke is a separate pass: the rasterizer sums signed coverage, and an
	// outline wound against the fill would cancel it out.
	r.begin()
	n := len(ring)
	if n == 2 {
		n = 1
	}
	for i := 0; i < n; i++ {
		r.segment(ring[i], ring[(i+1)%len(ring)])
	}
	r.paint(c)
}

func (r *Raster) begin() {
	w, h := r.Size()
	r.z.Reset(w, h)
	r.z.DrawOp = draw.Over
}

func (r *Raster) paint(c Color) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{})
}

// segment adds a strokeWidth-wide quad around a→b, always wound the same way
// so overlapping joints accumulate instead of cancelling.
func (r *Raster) segment(a, b geom.Vec2) {
	d := b.Sub(a).Unit()
	if d == (geom.Vec2{}) {
		d = geom.V2(1, 0)
	}
	n := d.Rot90().Mul(strokeWidth / 2)
	ext := d.Mul(strokeWidth / 2)
	p0 := a.Sub(ext).Add(n)
	p1 := b.Add(ext).Add(n)
	p2 := b.Add(ext).Sub(n)
	p3 := a.Sub(ext).Sub(n)
	r.z.MoveTo(float32(p0.X), float32(p0.Y))
	r.z.LineTo(float32(p1.X), float32(p1.Y))
	r.z.LineTo(float32(p2.X), float32(p2.Y))
	r.z.LineTo(float32(p3.X), float32(p3.Y))
	r.z.ClosePath()
}
