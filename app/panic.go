package app

import (
	"errors"
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"

	"prism/prismkit/fault"
	"prism/prismkit/hud"
)

// panicked logs a recovered panic, paints it over the framebuffer and returns
// it as an error so the host loop stops.
func (s *system) panicked(v any) error {
	err := fault.Recover(v)
	stack := debug.Stack()

	lines := []string{
		"prism panic:",
		fmt.Sprintf("scene: %s", s.driver.Scene()),
		fmt.Sprintf("panic: %v", err),
	}
	if errors.Is(err, fault.ErrAssertion) {
		lines = append(lines, "kind: assertion")
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	if l := s.h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString(line)
		}
	}

	fb := s.h.Framebuffer()
	if fb != nil && fb.Image() != nil {
		fb.Clear(255, 255, 255)
		hud.DrawText(fb.Image(), 0, 0, lines, color.RGBA{A: 255})
		_ = fb.Present()
	}
	return fmt.Errorf("app: %w", err)
}
