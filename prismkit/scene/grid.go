package scene

import (
	"fmt"

	"prism/prismkit/canvas"
	"prism/prismkit/geom"
	"prism/prismkit/shape"
	"prism/prismkit/view"
)

// Frustum guide planes, in world units in front of the eye.
const (
	GridNear  = 30.0
	GridFar   = 40.0
	GridRatio = 0.5

	gridCells = 5
)

// LineWriter receives diagnostic lines.
type LineWriter interface {
	WriteLineString(s string)
}

// GridGuide visualises the camera: circles at the corners of a near and a far
// cross-section in front of the eye, lines from the eye to those corners, and a
// unit grid on the three coordinate planes. It is rebuilt every frame from the
// current view.
type GridGuide struct {
	// Log, when set, receives the eye frame and corner positions on the first
	// Update.
	Log LineWriter

	shapes  []shape.Shape
	visited bool
}

func NewGrid() *GridGuide { return &GridGuide{} }

func (g *GridGuide) Shapes() []shape.Shape { return g.shapes }

func (g *GridGuide) Update(v *view.View) {
	g.shapes = g.shapes[:0]
	ex, ey, ez := v.Axes()

	g.logf("eye   :%v", v.Eye)
	g.logf("ex    :%v", ex)
	g.logf("ey    :%v", ey)
	g.logf("ez    :%v", ez)

	for _, nf := range []float64{GridNear, GridFar} {
		name, color := "near", canvas.Red
		if nf == GridFar {
			name, color = "far", canvas.Blue
		}
		g.logf("%s", name)
		for _, sx := range []float64{-1, 1} {
			for _, sy := range []float64{-1, 1} {
				p := v.Eye.
					Add(ez.Mul(-nf * GridRatio)).
					Add(ex.Mul(sx * nf * GridRatio)).
					Add(ey.Mul(sy * nf * GridRatio))
				g.logf("circle:%v %v %s %s", p, v.Project(p), name, color)
				g.add(
					shape.NewCircle(p, BallDotRadius, color),
					shape.NewLine(v.Eye, p, canvas.Orange),
				)
			}
		}
	}
	g.visited = true

	// The same corner rays, anchored at the world origin instead of the eye.
	for _, s := range [][2]float64{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}} {
		corner := func(d float64) geom.Vec3 {
			return ex.Mul(s[0] * d * GridRatio).Add(ey.Mul(s[1] * d * GridRatio)).Add(ez.Mul(-d * GridRatio))
		}
		g.add(shape.NewLine(corner(GridNear), corner(GridFar), canvas.Orange))
	}

	for i := 0; i < gridCells; i++ {
		f := float64(i)
		g.add(
			shape.NewLine(geom.V3(f, 0, 0), geom.V3(f, gridCells, 0), canvas.Green),
			shape.NewLine(geom.V3(f, 0, 0), geom.V3(f, 0, gridCells), canvas.Blue),
			shape.NewLine(geom.V3(0, f, 0), geom.V3(gridCells, f, 0), canvas.Red),
			shape.NewLine(geom.V3(0, f, 0), geom.V3(0, f, gridCells), canvas.Blue),
			shape.NewLine(geom.V3(0, 0, f), geom.V3(gridCells, 0, f), canvas.Red),
			shape.NewLine(geom.V3(0, 0, f), geom.V3(0, gridCells, f), canvas.Green),
		)
	}
}

func (g *GridGuide) add(s ...shape.Shape) { g.shapes = append(g.shapes, s...) }

func (g *GridGuide) logf(format string, args ...any) {
	if g.Log == nil || g.visited {
		return
	}
	g.Log.WriteLineString(fmt.Sprintf(format, args...))
}
