package scene

import (
	"math"

	"prism/prismkit/canvas"
	"prism/prismkit/fault"
	"prism/prismkit/geom"
	"prism/prismkit/shape"
)

const (
	DefaultRadius = 5.0
	AxisLength    = 5.0

	// BallDotRadius is the on-screen radius of each sphere sample, in pixels.
	BallDotRadius = 5.0
)

// PositionColor encodes pos inside the cube [-r, r]³ as an RGB color: each
// coordinate is clamped, mapped to [0,1] and scaled to a channel.
func PositionColor(r float64, pos geom.Vec3) canvas.Color {
	var ch [3]uint8
	for i, x := range pos.Array() {
		v := 0.5 * (1 + math.Max(-r, math.Min(r, x))/r)
		fault.Assert(0 <= v && v <= 1, "position color fraction %v", v)
		c := math.Floor(255 * v)
		fault.Assert(0 <= c && c <= 255, "position color channel %v", c)
		ch[i] = uint8(c)
	}
	return canvas.RGB(ch[0], ch[1], ch[2])
}

// spherePoints samples a sphere of radius r on n1 polar rings of n2 points
// each, starting at the +Z pole.
func spherePoints(r float64, n1, n2 int) []geom.Vec3 {
	pts := make([]geom.Vec3, 0, n1*n2)
	for i := 0; i < n1; i++ {
		th := math.Pi * float64(i) / float64(n1)
		z := r * math.Cos(th)
		r2 := r * math.Sin(th)
		for j := 0; j < n2; j++ {
			ph := 2 * math.Pi * float64(j) / float64(n2)
			pts = append(pts, geom.V3(r2*math.Cos(ph), r2*math.Sin(ph), z))
		}
	}
	return pts
}

// NewBall is a sphere point cloud: one position-colored dot per sample.
func NewBall(r float64, n1, n2 int) *Static {
	pts := spherePoints(r, n1, n2)
	shapes := make([]shape.Shape, len(pts))
	for i, p := range pts {
		shapes[i] = shape.NewCircle(p, BallDotRadius, PositionColor(r, p))
	}
	return NewStatic(shapes...)
}

// NewArrows puts an outward arrow on every sphere sample, as long as the
// sample's own radius vector.
func NewArrows(r float64, n1, n2 int) *Static {
	pts := spherePoints(r, n1, n2)
	shapes := make([]shape.Shape, len(pts))
	for i, p := range pts {
		shapes[i] = shape.NewArrow(p, p, PositionColor(r, p))
	}
	return NewStatic(shapes...)
}

// NewAxis draws the world axes from the origin: X red, Y green, Z blue.
func NewAxis(length float64) *Static {
	return NewStatic(
		shape.NewArrow(geom.Zero3(), geom.EX().Mul(length), canvas.Red),
		shape.NewArrow(geom.Zero3(), geom.EY().Mul(length), canvas.Green),
		shape.NewArrow(geom.Zero3(), geom.EZ().Mul(length), canvas.Blue),
	)
}
