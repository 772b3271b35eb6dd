package app

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"prism/hal"
	"prism/prismkit/canvas"
	"prism/prismkit/geom"
	"prism/prismkit/hud"
	"prism/prismkit/render"
	"prism/prismkit/scene"
	"prism/prismkit/view"
)

// ErrQuit is returned by the step function when the user asks to leave.
var ErrQuit = errors.New("quit")

// rotateStep is the arrow-key orbit increment in degrees.
const rotateStep = 5

type system struct {
	h      hal.HAL
	cfg    Config
	log    hal.Logger
	view   *view.View
	raster *canvas.Raster
	driver *render.Driver

	readout *hud.Readout
	console *hud.Console

	lastStats uint64
	failed    error
}

// New initializes prism with the default config.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig builds the view, driver and overlays for h and returns the
// per-frame step. A bad config is reported by the first step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	order, err := render.ParseOrder(cfg.Order)
	if err != nil {
		return nil, err
	}

	fb := h.Framebuffer()
	w, ht := fb.Width(), fb.Height()
	s := &system{h: h, cfg: cfg, log: h.Logger()}

	if cfg.Console {
		s.console = hud.NewConsole(w, cfg.ConsoleRows)
		s.log = hal.MultiLogger{h.Logger(), s.console}
	}
	if s.log == nil {
		s.log = hal.NopLogger{}
	}

	var opts []view.Option
	if cfg.Readout {
		s.readout = hud.NewReadout()
		opts = append(opts, view.WithReadout(s.readout))
	}
	s.view = view.New(float64(w), float64(ht), opts...)
	s.view.Publish()

	s.raster = canvas.NewRaster(w, ht)
	s.driver = render.NewDriver(s.view, s.raster)
	s.driver.Order = order
	if s.readout != nil {
		s.driver.Readout = s.readout
	}

	if err := s.selectScene(cfg.Scene); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *system) selectScene(name string) error {
	if err := s.driver.Select(name); err != nil {
		s.log.WriteLineString(fmt.Sprintf("sel:%s: %v", name, err))
		return err
	}
	for _, o := range s.driver.Objects() {
		if g, ok := o.(*scene.GridGuide); ok {
			g.Log = s.log
		}
	}
	s.log.WriteLineString("sel:" + name)
	return nil
}

func (s *system) step() (err error) {
	if s.failed != nil {
		return s.failed
	}
	defer func() {
		if v := recover(); v != nil {
			s.failed = s.panicked(v)
			err = s.failed
		}
	}()

	if err := s.handleInput(); err != nil {
		return err
	}

	s.driver.Frame()

	fb := s.h.Framebuffer()
	dst := fb.Image()
	draw.Draw(dst, dst.Bounds(), s.raster.Image(), image.Point{}, draw.Src)
	if s.readout != nil {
		s.readout.Draw(dst)
	}
	if s.console != nil {
		s.console.Draw(dst)
	}
	s.logStats()
	return fb.Present()
}

func (s *system) handleInput() error {
	in := s.h.Input()
	if in == nil {
		return nil
	}
	for {
		select {
		case ev := <-in.Events():
			if err := s.handle(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (s *system) handle(ev hal.InputEvent) error {
	v := s.view
	switch ev.Kind {
	case hal.PointerDown:
		v.PointerDown(ev.X, ev.Y)
	case hal.PointerMove:
		v.PointerMove(ev.X, ev.Y, ev.Buttons)
	case hal.PointerUp:
		v.PointerUp()
	case hal.Wheel:
		v.Wheel(ev.DeltaY)
	case hal.KeyPress:
		return s.key(ev)
	}
	return nil
}

func (s *system) key(ev hal.InputEvent) error {
	v := s.view
	switch ev.Code {
	case hal.KeyEscape:
		s.log.WriteLineString("quit")
		return ErrQuit
	case hal.KeyTab:
		names := scene.Names()
		next := (scene.Index(s.driver.Scene()) + 1) % len(names)
		return s.selectScene(names[next])
	case hal.KeyLeft:
		v.SetPhi(geom.ToDegree(v.Phi) - rotateStep)
	case hal.KeyRight:
		v.SetPhi(geom.ToDegree(v.Phi) + rotateStep)
	case hal.KeyUp:
		v.SetTheta(geom.ToDegree(v.Theta) - rotateStep)
	case hal.KeyDown:
		v.SetTheta(geom.ToDegree(v.Theta) + rotateStep)
	}

	switch r := ev.Rune; {
	case r >= '1' && r <= '9':
		names := scene.Names()
		if i := int(r - '1'); i < len(names) {
			return s.selectScene(names[i])
		}
	case r == 'o':
		if s.driver.Order == render.FarthestFirst {
			s.driver.Order = render.NearestFirst
		} else {
			s.driver.Order = render.FarthestFirst
		}
		s.log.WriteLineString("order:" + s.driver.Order.String())
	case r == 'c':
		if s.console != nil {
			s.console.Clear()
		}
	}
	return nil
}

func (s *system) logStats() {
	if s.cfg.StatsEvery == 0 {
		return
	}
	tm := s.h.Time()
	if tm == nil {
		return
	}
	now := hal.Latest(tm)
	if now == 0 || now-s.lastStats < s.cfg.StatsEvery {
		return
	}
	s.lastStats = now
	st := s.driver.Stats()
	s.log.WriteLineString(fmt.Sprintf("frame %d: %s %d shapes in %v", st.Frame, s.driver.Scene(), st.Shapes, st.Elapsed))
}
