package hud

import (
	"image"
	"image/color"
	"sync"
)

// DefaultFields is the readout layout, one field per row.
var DefaultFields = []string{"scene", "theta", "phi", "distance", "eye-x", "eye-y", "eye-z"}

// Readout collects named numeric fields and paints them as a small panel in
// the top-left corner of a frame. It implements view.Readout.
type Readout struct {
	Fields []string
	FG     color.RGBA
	BG     color.NRGBA

	mu     sync.Mutex
	values map[string]string
}

func NewReadout() *Readout {
	return &Readout{
		Fields: DefaultFields,
		FG:     color.RGBA{A: 0xFF},
		BG:     color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xC0},
		values: make(map[string]string),
	}
}

func (r *Readout) SetField(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[name] = value
}

// Field returns the last value set for name.
func (r *Readout) Field(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.values[name]
	return v, ok
}

// Lines returns "name value" rows for the fields that have a value.
func (r *Readout) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	lines := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		if v, ok := r.values[f]; ok {
			lines = append(lines, padRight(f, 9)+v)
		}
	}
	return lines
}

// Draw paints the panel onto dst.
func (r *Readout) Draw(dst *image.RGBA) {
	lines := r.Lines()
	if len(lines) == 0 {
		return
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	const pad = 2
	panel := image.Rect(0, 0, width*CharWidth()+2*pad, len(lines)*FontHeight+2*pad)
	Shade(dst, panel, r.BG)
	DrawText(dst, pad, pad, lines, r.FG)
}

func padRight(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
