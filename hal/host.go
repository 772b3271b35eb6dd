package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger Logger
	fb     *hostFramebuffer
	input  *hostInput
	t      *hostTime
}

// New returns a host HAL with a w×h framebuffer that logs to stdout.
func New(w, h int) HAL {
	return &hostHAL{
		logger: &hostLogger{w: os.Stdout},
		fb:     newHostFramebuffer(w, h),
		input:  newHostInput(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger           { return h.logger }
func (h *hostHAL) Framebuffer() Framebuffer { return h.fb }
func (h *hostHAL) Input() Input             { return h.input }
func (h *hostHAL) Time() Time               { return h.t }

// SetLogger replaces the HAL logger, e.g. with a MultiLogger that also feeds
// an on-screen console.
func SetLogger(h HAL, l Logger) {
	if hh, ok := h.(*hostHAL); ok && l != nil {
		hh.logger = l
	}
}

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing to w under a mutex.
func NewLogger(w io.Writer) Logger { return &hostLogger{w: w} }

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

// MultiLogger fans every line out to all of its loggers, in order.
type MultiLogger []Logger

func (m MultiLogger) WriteLineString(s string) {
	for _, l := range m {
		if l != nil {
			l.WriteLineString(s)
		}
	}
}

func (m MultiLogger) WriteLineBytes(b []byte) {
	for _, l := range m {
		if l != nil {
			l.WriteLineBytes(b)
		}
	}
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) WriteLineString(string) {}
func (NopLogger) WriteLineBytes([]byte)  {}
