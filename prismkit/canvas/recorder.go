package canvas

import (
	"fmt"
	"strings"

	"prism/prismkit/geom"
)

type Op uint8

const (
	OpClear Op = iota
	OpCircle
	OpPolygon
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpCircle:
		return "circle"
	case OpPolygon:
		return "polygon"
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

// Command is one recorded draw call.
type Command struct {
	Op     Op
	Points []geom.Vec2
	Radius float64
	Color  Color
}

func (c Command) String() string {
	switch c.Op {
	case OpClear:
		return "clear"
	case OpCircle:
		return fmt.Sprintf("circle %v r=%.1f %v", c.Points[0], c.Radius, c.Color)
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "polygon %v", c.Color)
	for _, p := range c.Points {
		sb.WriteByte(' ')
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Recorder keeps every command it receives. Clear is recorded too and does not
// drop earlier commands; use Reset for that.
type Recorder struct {
	W, H     int
	Commands []Command
}

func NewRecorder(w, h int) *Recorder { return &Recorder{W: w, H: h} }

func (r *Recorder) Size() (w, h int) { return r.W, r.H }

func (r *Recorder) Clear() { r.Commands = append(r.Commands, Command{Op: OpClear}) }

func (r *Recorder) FillCircle(center geom.Vec2, radius float64, c Color) {
	r.Commands = append(r.Commands, Command{
		Op:     OpCircle,
		Points: []geom.Vec2{center},
		Radius: radius,
		Color:  c,
	})
}

func (r *Recorder) FillPolygon(pts []geom.Vec2, c Color) {
	r.Commands = append(r.Commands, Command{
		Op:     OpPolygon,
		Points: append([]geom.Vec2(nil), pts...),
		Color:  c,
	})
}

func (r *Recorder) Reset() { r.Commands = r.Commands[:0] }

// Count returns how many commands of kind op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Replay sends every recorded command to dst in order.
func (r *Recorder) Replay(dst Canvas) {
	for _, c := range r.Commands {
		switch c.Op {
		case OpClear:
			dst.Clear()
		case OpCircle:
			dst.FillCircle(c.Points[0], c.Radius, c.Color)
		case OpPolygon:
			dst.FillPolygon(c.Points, c.Color)
		}
	}
}
