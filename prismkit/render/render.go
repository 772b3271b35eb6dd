// Package render drives frames: it updates the active scene objects, projects
// every shape through the view, sorts them by depth and paints them onto the
// canvas. There is no depth buffer; overlap is resolved by drawing order only.
package render

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"prism/prismkit/canvas"
	"prism/prismkit/scene"
	"prism/prismkit/shape"
	"prism/prismkit/view"
)

// Order decides which shapes are painted first.
type Order uint8

const (
	// FarthestFirst paints in ascending camera-space depth. Depth is negative
	// in front of the eye, so the most distant shape comes first and nearer
	// shapes cover it.
	FarthestFirst Order = iota
	// NearestFirst paints in descending camera-space depth.
	NearestFirst
)

func (o Order) String() string {
	switch o {
	case FarthestFirst:
		return "far"
	case NearestFirst:
		return "near"
	}
	return fmt.Sprintf("order(%d)", uint8(o))
}

// ParseOrder accepts "far" or "near".
func ParseOrder(s string) (Order, error) {
	switch s {
	case "far", "":
		return FarthestFirst, nil
	case "near":
		return NearestFirst, nil
	}
	return FarthestFirst, fmt.Errorf("render: unknown order %q (want far or near)", s)
}

// Sort orders shapes by their last projected depth. Equal depths keep their
// relative order. A NaN depth sorts as the farthest possible.
func (o Order) Sort(shapes []shape.Shape) {
	if o == NearestFirst {
		sort.SliceStable(shapes, func(i, j int) bool { return depthKey(shapes[i]) > depthKey(shapes[j]) })
		return
	}
	sort.SliceStable(shapes, func(i, j int) bool { return depthKey(shapes[i]) < depthKey(shapes[j]) })
}

func depthKey(s shape.Shape) float64 {
	d := s.Depth()
	if math.IsNaN(d) {
		return math.Inf(-1)
	}
	return d
}

// Stats describes the last frame.
type Stats struct {
	Frame   uint64
	Objects int
	Shapes  int
	Elapsed time.Duration
}

// FieldScene is the readout field carrying the active scene name.
const FieldScene = "scene"

// Driver owns the active object list. Like the View, it is single-threaded:
// Select, Frame and Run must not be called concurrently.
type Driver struct {
	View   *view.View
	Canvas canvas.Canvas
	Order  Order
	// Readout, when set, receives the scene name on every Select.
	Readout view.Readout

	name    string
	objects []scene.Object
	shapes  []shape.Shape
	stats   Stats
}

func NewDriver(v *view.View, c canvas.Canvas) *Driver {
	return &Driver{View: v, Canvas: c}
}

// Select replaces the object list with the named scene. On error the current
// scene is kept.
func (d *Driver) Select(name string) error {
	objs, err := scene.New(name, d.View)
	if err != nil {
		return err
	}
	d.SetObjects(name, objs)
	return nil
}

// SetObjects installs objs wholesale under name.
func (d *Driver) SetObjects(name string, objs []scene.Object) {
	d.name = name
	d.objects = objs
	if d.Readout != nil {
		d.Readout.SetField(FieldScene, name)
	}
}

func (d *Driver) Scene() string           { return d.name }
func (d *Driver) Objects() []scene.Object { return d.objects }
func (d *Driver) Stats() Stats            { return d.stats }

// Frame clears the canvas and draws every shape of the current objects once.
func (d *Driver) Frame() {
	start := time.Now()
	d.Canvas.Clear()

	d.shapes = d.shapes[:0]
	for _, o := range d.objects {
		o.Update(d.View)
		d.shapes = append(d.shapes, o.Shapes()...)
	}
	for _, s := range d.shapes {
		s.SetProjection(d.View)
	}
	d.Order.Sort(d.shapes)
	for _, s := range d.shapes {
		s.Draw(d.Canvas)
	}

	d.stats.Frame++
	d.stats.Objects = len(d.objects)
	d.stats.Shapes = len(d.shapes)
	d.stats.Elapsed = time.Since(start)
}

// Run draws a frame every interval until ctx is done or onFrame fails. onFrame
// runs after each frame and may be nil. It returns ctx.Err() on cancellation.
func (d *Driver) Run(ctx context.Context, interval time.Duration, onFrame func() error) error {
	if interval <= 0 {
		return fmt.Errorf("render: invalid frame interval %v", interval)
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			d.Frame()
			if onFrame != nil {
				if err := onFrame(); err != nil {
					return err
				}
			}
		}
	}
}
