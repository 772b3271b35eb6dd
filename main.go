package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"prism/app"
	"prism/hal"
	"prism/internal/buildinfo"
)

func main() {
	var (
		cfgPath string
		version bool
		scale   int
		flags   = app.DefaultConfig()
	)
	flag.StringVar(&cfgPath, "config", "", "TOML config file (flags override its values).")
	flag.BoolVar(&flags.Headless, "headless", false, "Run without a window.")
	flag.IntVar(&flags.Hz, "hz", flags.Hz, "Frame rate.")
	flag.Uint64Var(&flags.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&flags.Scene, "scene", flags.Scene, "Initial scene: Ball, Axis, Arrow, Wave, Geodesic or Grid.")
	flag.IntVar(&flags.Width, "width", flags.Width, "Canvas width in pixels.")
	flag.IntVar(&flags.Height, "height", flags.Height, "Canvas height in pixels.")
	flag.StringVar(&flags.Out, "out", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&flags.Order, "order", flags.Order, "Depth order: far (farthest first) or near.")
	flag.BoolVar(&flags.Console, "console", flags.Console, "Show the on-screen log console.")
	flag.IntVar(&scale, "scale", 1, "Window scale factor.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg := app.DefaultConfig()
	if cfgPath != "" {
		var err error
		if cfg, err = app.LoadConfig(cfgPath); err != nil {
			fail(err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Headless = flags.Headless
		case "hz":
			cfg.Hz = flags.Hz
		case "ticks":
			cfg.Ticks = flags.Ticks
		case "scene":
			cfg.Scene = flags.Scene
		case "width":
			cfg.Width = flags.Width
		case "height":
			cfg.Height = flags.Height
		case "out":
			cfg.Out = flags.Out
		case "order":
			cfg.Order = flags.Order
		case "console":
			cfg.Console = flags.Console
		}
	})
	if err := cfg.Normalize(); err != nil {
		fail(err)
	}

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		h, err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Width,
			Height: cfg.Height,
			Hz:     cfg.Hz,
			Ticks:  cfg.Ticks,
		})
		if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, app.ErrQuit) {
			fail(err)
		}
		if cfg.Out != "" && h != nil {
			if err := app.WritePNG(cfg.Out, h.Framebuffer().Image()); err != nil {
				fail(err)
			}
		}
		return
	}

	err := hal.RunWindow(newApp, hal.WindowConfig{Width: cfg.Width, Height: cfg.Height, Scale: scale, TPS: cfg.Hz})
	if err != nil && !errors.Is(err, app.ErrQuit) {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
