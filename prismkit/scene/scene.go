// Package scene generates the procedural objects prism can show and keeps the
// registry of named scenes.
package scene

import (
	"fmt"

	"prism/prismkit/shape"
	"prism/prismkit/view"
)

// Object owns a list of shapes. Update runs once per frame before projection
// and may replace the list.
type Object interface {
	Shapes() []shape.Shape
	Update(v *view.View)
}

// Static is an Object whose shapes never change after construction.
type Static struct {
	shapes []shape.Shape
}

func NewStatic(shapes ...shape.Shape) *Static { return &Static{shapes: shapes} }

func (s *Static) Shapes() []shape.Shape { return s.shapes }
func (s *Static) Update(*view.View)     {}

// Scene names in menu order.
const (
	Ball     = "Ball"
	Axis     = "Axis"
	Arrow    = "Arrow"
	Wave     = "Wave"
	Geodesic = "Geodesic"
	Grid     = "Grid"
)

var names = []string{Ball, Axis, Arrow, Wave, Geodesic, Grid}

// Names returns the registered scene names in menu order.
func Names() []string { return append([]string(nil), names...) }

// Index returns the menu position of name, or -1.
func Index(name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

// New builds the objects for the named scene. Some generators shade faces from
// v's light direction at construction time.
func New(name string, v *view.View) ([]Object, error) {
	switch name {
	case Ball:
		return []Object{NewBall(DefaultRadius, 16, 32)}, nil
	case Axis:
		return []Object{NewAxis(AxisLength)}, nil
	case Arrow:
		return []Object{NewArrows(DefaultRadius, 8, 16)}, nil
	case Wave:
		w, err := NewWave(v, DefaultRadius, 32)
		if err != nil {
			return nil, fmt.Errorf("scene: %s: %w", name, err)
		}
		return []Object{w}, nil
	case Geodesic:
		return []Object{NewAxis(AxisLength), NewGeodesic(v, DefaultPasses, GeodesicScale)}, nil
	case Grid:
		return []Object{NewAxis(AxisLength), NewGrid()}, nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q", name)
}
