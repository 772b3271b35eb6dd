package shape

import (
	"math"

	"prism/prismkit/canvas"
	"prism/prismkit/geom"
	"prism/prismkit/view"
)

// Arrowhead geometry in pixels.
const (
	arrowEdge  = 20.0          // side of the equilateral head
	arrowShaft = arrowEdge / 3 // head inset where the shaft meets it
)

var arrowHeight = arrowEdge * math.Sqrt(3) / 2

// Arrow is a 3D displacement drawn as a flat 2D arrow between the projected
// start and tip. When the projection is shorter than the arrowhead, only a
// triangle is drawn.
type Arrow struct {
	Base

	Pos   geom.Vec3
	Vec   geom.Vec3
	Color canvas.Color

	prj []geom.Vec2
}

func NewArrow(pos, vec geom.Vec3, c canvas.Color) *Arrow {
	return &Arrow{Base: NewBase(), Pos: pos, Vec: vec, Color: c}
}

func (s *Arrow) SetProjection(v *view.View) {
	st := v.Project(s.Pos)
	ed := v.Project(s.Pos.Add(s.Vec))
	s.setDepth((st.Z + ed.Z) / 2)

	st2, ed2 := st.XY(), ed.XY()

	e1 := ed2.Sub(st2).Unit()
	e2 := e1.Rot90()
	e3 := e1.Rot(math.Pi * 5 / 6)

	if ed2.Sub(st2).Len() < arrowHeight {
		d := arrowHeight / math.Sqrt(3)
		s.prj = []geom.Vec2{ed2, st2.Add(e2.Mul(d)), st2.Sub(e2.Mul(d))}
		return
	}

	p1 := ed2.Add(e3.Mul(arrowEdge))
	s.prj = []geom.Vec2{
		ed2,
		p1,
		p1.Sub(e2.Mul(arrowShaft)),
		st2.Add(e2.Mul(arrowEdge / 6)),
		st2.Sub(e2.Mul(arrowEdge / 6)),
		p1.Sub(e2.Mul(arrowEdge * 2 / 3)),
		p1.Sub(e2.Mul(arrowEdge)),
	}
}

func (s *Arrow) Draw(c canvas.Canvas) {
	c.FillPolygon(s.prj, s.Color)
}

// Projected returns the outline from the last SetProjection: 3 points for a
// short arrow, 7 otherwise.
func (s *Arrow) Projected() []geom.Vec2 { return s.prj }
