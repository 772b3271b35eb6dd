package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"prism/app"
	"prism/hal"
	"prism/prismkit/canvas"
	"prism/prismkit/render"
	"prism/prismkit/scene"
	"prism/prismkit/view"

	"golang.org/x/sync/errgroup"
)

type options struct {
	dir     string
	width   int
	height  int
	formats []string
	scenes  []string
	order   render.Order
	log     hal.Logger
}

func main() {
	var (
		dir     = flag.String("dir", "out", "Output directory.")
		width   = flag.Int("width", 640, "Image width in pixels.")
		height  = flag.Int("height", 480, "Image height in pixels.")
		formats = flag.String("format", "png,svg", "Comma-separated output formats: png, svg.")
		scenes  = flag.String("scenes", strings.Join(scene.Names(), ","), "Comma-separated scenes to render.")
		order   = flag.String("order", "far", "Depth order: far or near.")
	)
	flag.Parse()

	o, err := render.ParseOrder(*order)
	if err != nil {
		fatalf("%v", err)
	}
	opts := options{
		dir:     *dir,
		width:   *width,
		height:  *height,
		formats: splitList(*formats),
		scenes:  splitList(*scenes),
		order:   o,
		log:     hal.NewLogger(os.Stdout),
	}
	if _, err := export(context.Background(), opts); err != nil {
		fatalf("export: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// export renders every scene in every format, one goroutine per scene, and
// returns the written paths in scene-then-format order.
func export(ctx context.Context, o options) ([]string, error) {
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", o.width, o.height)
	}
	for _, f := range o.formats {
		if f != "png" && f != "svg" {
			return nil, fmt.Errorf("unknown format %q", f)
		}
	}
	for _, name := range o.scenes {
		if scene.Index(name) < 0 {
			return nil, fmt.Errorf("unknown scene %q", name)
		}
	}
	if o.log == nil {
		o.log = hal.NopLogger{}
	}
	if err := os.MkdirAll(o.dir, 0o755); err != nil {
		return nil, err
	}

	paths := make([][]string, len(o.scenes))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range o.scenes {
		g.Go(func() error {
			for _, f := range o.formats {
				if err := ctx.Err(); err != nil {
					return err
				}
				path := filepath.Join(o.dir, strings.ToLower(name)+"."+f)
				st, err := renderScene(name, f, path, o)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				o.log.WriteLineString(fmt.Sprintf("wrote %s (%d shapes)", path, st.Shapes))
				paths[i] = append(paths[i], path)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []string
	for _, p := range paths {
		out = append(out, p...)
	}
	return out, nil
}

// renderScene draws one frame of the named scene with a fresh view.
func renderScene(name, format, path string, o options) (render.Stats, error) {
	v := view.New(float64(o.width), float64(o.height))

	switch format {
	case "png":
		r := canvas.NewRaster(o.width, o.height)
		d, err := frame(name, v, r, o.order)
		if err != nil {
			return render.Stats{}, err
		}
		return d.Stats(), app.WritePNG(path, r.Image())

	case "svg":
		f, err := os.Create(path)
		if err != nil {
			return render.Stats{}, err
		}
		s := canvas.NewSVG(f, o.width, o.height)
		d, err := frame(name, v, s, o.order)
		if err != nil {
			f.Close()
			return render.Stats{}, err
		}
		if err := s.Close(); err != nil {
			f.Close()
			return render.Stats{}, err
		}
		return d.Stats(), f.Close()
	}
	return render.Stats{}, fmt.Errorf("unknown format %q", format)
}

func frame(name string, v *view.View, c canvas.Canvas, order render.Order) (*render.Driver, error) {
	d := render.NewDriver(v, c)
	d.Order = order
	if err := d.Select(name); err != nil {
		return nil, err
	}
	d.Frame()
	return d, nil
}
