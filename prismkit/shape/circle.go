package shape

import (
	"math"

	"prism/prismkit/canvas"
	"prism/prismkit/geom"
	"prism/prismkit/view"
)

var nan = math.NaN()

// Circle is a screen-space disc anchored at a world point. Its radius is in
// pixels and does not shrink with distance.
type Circle struct {
	Base

	Pos    geom.Vec3
	Radius float64
	Color  canvas.Color

	prj geom.Vec3
}

func NewCircle(pos geom.Vec3, radius float64, c canvas.Color) *Circle {
	return &Circle{Base: NewBase(), Pos: pos, Radius: radius, Color: c, prj: geom.NaN3()}
}

func (s *Circle) SetProjection(v *view.View) {
	s.prj = v.Project(s.Pos)
	s.setDepth(s.prj.Z)
}

func (s *Circle) Draw(c canvas.Canvas) {
	c.FillCircle(s.prj.XY(), s.Radius, s.Color)
}

// Projected returns the canvas position from the last SetProjection.
func (s *Circle) Projected() geom.Vec2 { return s.prj.XY() }
