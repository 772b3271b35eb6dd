package shape

import (
	"math"

	"prism/prismkit/canvas"
	"prism/prismkit/fault"
	"prism/prismkit/geom"
	"prism/prismkit/view"
)

// Polygon is a filled ring of world points. A two-point polygon draws as a
// line segment.
type Polygon struct {
	Base

	Points []geom.Vec3
	// Material is the per-channel reflectance in [0,1] used by SetColor.
	Material [3]float64
	Color    canvas.Color

	prj []geom.Vec2
}

// NewPolygon copies pts, which must not be empty.
func NewPolygon(pts []geom.Vec3, c canvas.Color) *Polygon {
	fault.Assert(len(pts) > 0, "polygon without points")
	return &Polygon{
		Base:   NewBase(),
		Points: append([]geom.Vec3(nil), pts...),
		Color:  c,
	}
}

// NewLine is a two-point polygon.
func NewLine(a, b geom.Vec3, c canvas.Color) *Polygon {
	return NewPolygon([]geom.Vec3{a, b}, c)
}

// NewTriangle orders the corners so the face normal points away from the
// origin, then builds the polygon.
func NewTriangle(p1, p2, p3 geom.Vec3, c canvas.Color) *Polygon {
	a, b, d := SortPoints(p1, p2, p3)
	return NewPolygon([]geom.Vec3{a, b, d}, c)
}

// SortPoints returns the corners in the order whose winding normal
// (p2-p1)×(p3-p1) faces away from the origin. p1 always stays first.
func SortPoints(p1, p2, p3 geom.Vec3) (geom.Vec3, geom.Vec3, geom.Vec3) {
	n := p2.Sub(p1).Cross(p3.Sub(p1))
	if p1.Dot(n) > 0 {
		return p1, p2, p3
	}
	return p1, p3, p2
}

func (s *Polygon) SetProjection(v *view.View) {
	if cap(s.prj) < len(s.Points) {
		s.prj = make([]geom.Vec2, len(s.Points))
	}
	s.prj = s.prj[:len(s.Points)]
	var z float64
	for i, p := range s.Points {
		q := v.Project(p)
		s.prj[i] = q.XY()
		z += q.Z
	}
	if len(s.Points) == 0 {
		// Nothing to draw; paint it before everything else.
		s.setDepth(math.Inf(-1))
		return
	}
	s.setDepth(z / float64(len(s.Points)))
}

func (s *Polygon) Draw(c canvas.Canvas) {
	c.FillPolygon(s.prj, s.Color)
}

// Projected returns the canvas ring from the last SetProjection.
func (s *Polygon) Projected() []geom.Vec2 { return s.prj }

// Norm returns the unit face normal unit((p2-p1)×(p0-p1)).
func (s *Polygon) Norm() geom.Vec3 {
	fault.Assert(len(s.Points) >= 3, "normal of a %d-point polygon", len(s.Points))
	a := s.Points[2].Sub(s.Points[1])
	b := s.Points[0].Sub(s.Points[1])
	return a.Cross(b).Unit()
}

// SetColor shades Material by how squarely the face meets light and stores the
// opaque result in Color.
func (s *Polygon) SetColor(light geom.Vec3) {
	s.Color = Shade(s.Material, s.Norm().Dot(light))
}

// Shade scales material by the light intensity l into an opaque color.
// Negative intensities (faces turned away) go black.
func Shade(material [3]float64, l float64) canvas.Color {
	var ch [3]uint8
	for i, m := range material {
		ch[i] = uint8(math.Round(math.Max(0, math.Min(255, 255*m*l))))
	}
	return canvas.RGB(ch[0], ch[1], ch[2])
}
