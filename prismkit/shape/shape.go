// Package shape defines the drawable primitives: circles, polygons, arrows and
// height-field surfaces. Each keeps its world geometry, projects it through a
// view.View into canvas space, and paints itself onto a canvas.Canvas.
package shape

import (
	"sync/atomic"

	"prism/prismkit/canvas"
	"prism/prismkit/fault"
	"prism/prismkit/view"
)

// Shape is a projectable, drawable primitive.
//
// SetProjection recomputes the 2D geometry and depth from the current world
// geometry and is idempotent. Draw paints the last projection and mutates
// nothing.
type Shape interface {
	SetProjection(v *view.View)
	Draw(c canvas.Canvas)
	// Depth is the camera-space depth of the last projection, NaN before the
	// first one.
	Depth() float64
	ID() int
}

var lastID atomic.Int64

// Base carries the identity and depth shared by every shape. Embed it and
// override SetProjection and Draw; the defaults panic with
// fault.ErrNotImplemented.
type Base struct {
	id    int
	depth float64
}

func NewBase() Base {
	return Base{id: int(lastID.Add(1)), depth: nan}
}

func (b *Base) ID() int            { return b.id }
func (b *Base) Depth() float64     { return b.depth }
func (b *Base) setDepth(z float64) { b.depth = z }

func (b *Base) SetProjection(*view.View) { fault.NotImplemented("shape: SetProjection") }
func (b *Base) Draw(canvas.Canvas)       { fault.NotImplemented("shape: Draw") }
