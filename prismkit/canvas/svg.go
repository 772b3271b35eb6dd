package canvas

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"prism/prismkit/geom"
)

// SVG streams draw commands as SVG elements. Coordinates are rounded to whole
// pixels. Clear paints a background rectangle over everything drawn so far, so
// a document may hold several frames and shows the last one.
type SVG struct {
	Background Color

	w, h int
	out  *errWriter
	doc  *svg.SVG
	open bool
}

// NewSVG starts a w×h document on out. Call Close to finish it.
func NewSVG(out io.Writer, w, h int) *SVG {
	ew := &errWriter{w: out}
	s := &SVG{Background: White, w: w, h: h, out: ew, doc: svg.New(ew)}
	s.doc.Start(w, h)
	s.open = true
	return s
}

func (s *SVG) Size() (w, h int) { return s.w, s.h }

func (s *SVG) Clear() {
	s.doc.Rect(0, 0, s.w, s.h, "fill:"+cssRGB(s.Background))
}

func (s *SVG) FillCircle(center geom.Vec2, radius float64, c Color) {
	if !finite(center) || radius <= 0 {
		return
	}
	center = clampPoint(center, s.w, s.h)
	s.doc.Circle(round(center.X), round(center.Y), max(1, round(radius)), style(c))
}

func (s *SVG) FillPolygon(pts []geom.Vec2, c Color) {
	if len(pts) < 2 || !finite(pts...) {
		return
	}
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		p = clampPoint(p, s.w, s.h)
		xs[i], ys[i] = round(p.X), round(p.Y)
	}
	if len(pts) == 2 {
		s.doc.Line(xs[0], ys[0], xs[1], ys[1], strokeStyle(c))
		return
	}
	s.doc.Polygon(xs, ys, style(c))
}

// Close ends the document and reports the first write error, if any.
func (s *SVG) Close() error {
	if s.open {
		s.doc.End()
		s.open = false
	}
	return s.out.err
}

func style(c Color) string {
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f;%s", cssRGB(c), c.Opacity(), strokeStyle(c))
}

func strokeStyle(c Color) string {
	return fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:1", cssRGB(c), c.Opacity())
}

// cssRGB uses the comma form, which SVG 1.1 renderers understand.
func cssRGB(c Color) string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

func round(f float64) int { return int(math.Round(f)) }

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}
