package shape

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"prism/prismkit/canvas"
	"prism/prismkit/geom"
	"prism/prismkit/view"
)

var ErrGridShape = errors.New("shape: grid dimensions mismatch")

// Grid2 is a rows×cols grid of (x, y) pairs.
type Grid2 struct {
	Rows, Cols int
	data       []float64
}

func NewGrid2(rows, cols int) *Grid2 {
	return &Grid2{Rows: rows, Cols: cols, data: make([]float64, 2*rows*cols)}
}

func (g *Grid2) At(i, j int) (x, y float64) {
	k := 2 * (i*g.Cols + j)
	return g.data[k], g.data[k+1]
}

func (g *Grid2) Set(i, j int, x, y float64) {
	k := 2 * (i*g.Cols + j)
	g.data[k], g.data[k+1] = x, y
}

// Grid1 is a rows×cols grid of scalars.
type Grid1 struct {
	Rows, Cols int
	data       []float64
}

func NewGrid1(rows, cols int) *Grid1 {
	return &Grid1{Rows: rows, Cols: cols, data: make([]float64, rows*cols)}
}

func (g *Grid1) At(i, j int) float64     { return g.data[i*g.Cols+j] }
func (g *Grid1) Set(i, j int, v float64) { g.data[i*g.Cols+j] = v }

// Values returns the backing slice in row-major order.
func (g *Grid1) Values() []float64 { return g.data }

// Surface is a height field split into one quad per grid cell. Each quad is
// colored by its mean height against the whole field's range and shaded by
// the light direction given at construction.
type Surface struct {
	Base

	Min, Max float64

	quads []*Polygon
}

// NewSurface builds the quads for xy positions and heights z, which must have
// the same shape and at least 2×2 samples.
func NewSurface(xy *Grid2, z *Grid1, light geom.Vec3) (*Surface, error) {
	if xy.Rows != z.Rows || xy.Cols != z.Cols {
		return nil, fmt.Errorf("%w: xy %dx%d, z %dx%d", ErrGridShape, xy.Rows, xy.Cols, z.Rows, z.Cols)
	}
	if z.Rows < 2 || z.Cols < 2 {
		return nil, fmt.Errorf("%w: need at least 2x2 samples, got %dx%d", ErrGridShape, z.Rows, z.Cols)
	}

	s := &Surface{Base: NewBase(), Min: floats.Min(z.Values()), Max: floats.Max(z.Values())}
	span := s.Max - s.Min

	point := func(i, j int) geom.Vec3 {
		x, y := xy.At(i, j)
		return geom.V3(x, y, z.At(i, j))
	}
	for i := 0; i < z.Rows-1; i++ {
		for j := 0; j < z.Cols-1; j++ {
			p00, p01 := point(i, j), point(i, j+1)
			p10, p11 := point(i+1, j), point(i+1, j+1)

			q := NewPolygon([]geom.Vec3{p00, p10, p11, p01}, canvas.Black)
			n := 0.0
			if span > 0 {
				avg := (p00.Z + p01.Z + p10.Z + p11.Z) / 4
				n = (avg - s.Min) / span
			}
			q.Material = PseudoColor(n)
			q.SetColor(light)
			s.quads = append(s.quads, q)
		}
	}
	return s, nil
}

// Polygons returns the quads. Renderers that depth-sort individual polygons
// should draw these instead of the Surface itself.
func (s *Surface) Polygons() []*Polygon { return s.quads }

func (s *Surface) SetProjection(v *view.View) {
	var z float64
	for _, q := range s.quads {
		q.SetProjection(v)
		z += q.Depth()
	}
	s.setDepth(z / float64(len(s.quads)))
}

// Draw paints the quads farthest first.
func (s *Surface) Draw(c canvas.Canvas) {
	order := append([]*Polygon(nil), s.quads...)
	sort.SliceStable(order, func(i, j int) bool { return order[i].Depth() < order[j].Depth() })
	for _, q := range order {
		q.Draw(c)
	}
}

// PseudoColor maps n in [0,1] onto a blue-cyan-yellow-red ramp and returns the
// per-channel material. Values outside the range are clamped.
func PseudoColor(n float64) [3]float64 {
	n = math.Max(0, math.Min(1, n))
	ramp := func(center float64) float64 {
		return math.Max(0, math.Min(1, 1.5-math.Abs(4*n-center)))
	}
	return [3]float64{ramp(3), ramp(2), ramp(1)}
}
