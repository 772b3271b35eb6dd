package hal

import (
	"image"

	"prism/prismkit/fault"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = fault.ErrNotImplemented

// Framebuffer is an RGBA pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	// Image is the drawing target. Callers draw between Present calls only.
	Image() *image.RGBA
	Clear(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
)

// InputKind tags an InputEvent.
type InputKind uint8

const (
	PointerDown InputKind = iota + 1
	PointerMove
	PointerUp
	Wheel
	KeyPress
)

// Mouse button bits for InputEvent.Buttons, as in DOM PointerEvent.buttons.
const (
	ButtonPrimary   = 1 << 0
	ButtonSecondary = 1 << 1
	ButtonMiddle    = 1 << 2
)

// InputEvent is one pointer, wheel or key event in device pixels.
type InputEvent struct {
	Kind    InputKind
	X, Y    float64
	Buttons int
	// DeltaY is the wheel travel; positive scrolls down (away from the user).
	DeltaY float64
	Code   KeyCode
	Rune   rune
}

// Input delivers events (best-effort on each platform).
type Input interface {
	Events() <-chan InputEvent
}

// Time provides a base tick stream.
//
// The tick duration is platform-defined; higher-level timers live in userland.
type Time interface {
	Ticks() <-chan uint64
}

// HAL provides the only contact point between prism and the outside world.
type HAL interface {
	Logger() Logger
	Framebuffer() Framebuffer
	Input() Input
	Time() Time
}
