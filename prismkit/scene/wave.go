package scene

import (
	"math"

	"prism/prismkit/shape"
	"prism/prismkit/view"
)

// NewWave samples z = r(cos th + sin ph) over th, ph in [-π, π) on an n×n grid
// and returns the quads of the resulting surface as individual shapes, so the
// renderer depth-sorts them one by one.
func NewWave(v *view.View, r float64, n int) (*Static, error) {
	xy := shape.NewGrid2(n, n)
	z := shape.NewGrid1(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			th := 2*math.Pi*float64(i)/float64(n) - math.Pi
			ph := 2*math.Pi*float64(j)/float64(n) - math.Pi
			xy.Set(i, j, r*th, r*ph)
			z.Set(i, j, r*(math.Cos(th)+math.Sin(ph)))
		}
	}

	surf, err := shape.NewSurface(xy, z, v.LightDir)
	if err != nil {
		return nil, err
	}
	quads := surf.Polygons()
	shapes := make([]shape.Shape, len(quads))
	for i, q := range quads {
		shapes[i] = q
	}
	return NewStatic(shapes...), nil
}
