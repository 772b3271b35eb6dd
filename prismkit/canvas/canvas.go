// Package canvas defines the 2D drawing surface that shapes paint onto, and
// ships the surfaces prism renders into: an in-memory raster, an SVG stream,
// and a command recorder.
//
// Coordinates are pixels with the origin at the top-left corner and y growing
// downwards. Every fill is followed by a 1px stroke in the same color, so thin
// geometry (two-point polygons, tiny circles) stays visible.
package canvas

import (
	"math"

	"prism/prismkit/geom"
)

// Canvas is the drawing-surface contract. Implementations never report pixels
// back to the caller.
type Canvas interface {
	Size() (w, h int)
	Clear()
	FillCircle(center geom.Vec2, radius float64, c Color)
	// FillPolygon fills and strokes the closed ring pts in the given order.
	// Two points draw a line segment; fewer draw nothing.
	FillPolygon(pts []geom.Vec2, c Color)
}

// finite reports whether every point is drawable. Points projected from a
// zero camera-space depth come out infinite or NaN and are skipped.
func finite(pts ...geom.Vec2) bool {
	for _, p := range pts {
		if !p.IsFinite() {
			return false
		}
	}
	return true
}

// clampPoint pins p into a generous box around the surface so that far
// off-screen vertices stay representable as float32 without moving visible
// edges noticeably.
func clampPoint(p geom.Vec2, w, h int) geom.Vec2 {
	limit := 4 * float64(max(w, h, 1))
	return geom.Vec2{
		X: math.Max(-limit, math.Min(float64(w)+limit, p.X)),
		Y: math.Max(-limit, math.Min(float64(h)+limit, p.Y)),
	}
}
