package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64
	// Script is injected into the input queue before the first step.
	Script []InputEvent
}

// RunHeadless drives the app step from a ticker without opening a window.
// It returns the HAL so callers can read back the last presented frame.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) (HAL, error) {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := New(cfg.Width, cfg.Height).(*hostHAL)
	step := newApp(h)
	for _, ev := range cfg.Script {
		if !h.input.emit(ev) {
			return h, fmt.Errorf("hal: headless input script exceeds queue (%d events)", len(cfg.Script))
		}
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return h, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return h, ctx.Err()
		case <-t.C:
			h.t.step(1)
			if step != nil {
				if err := step(); err != nil {
					return h, err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return h, nil
			}
		}
	}
}
