package shape

import (
	"errors"
	"math"
	"testing"

	"prism/prismkit/canvas"
	"prism/prismkit/fault"
	"prism/prismkit/geom"
	"prism/prismkit/view"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func recovered(fn func()) (err error) {
	defer func() { err = fault.Recover(recover()) }()
	fn()
	return nil
}

type bare struct{ Base }

func TestBaseDefaultsPanic(t *testing.T) {
	var s Shape = &bare{NewBase()}
	if err := recovered(func() { s.SetProjection(view.New(10, 10)) }); !errors.Is(err, fault.ErrNotImplemented) {
		t.Fatalf("SetProjection err=%v", err)
	}
	if err := recovered(func() { s.Draw(canvas.NewRecorder(10, 10)) }); !errors.Is(err, fault.ErrNotImplemented) {
		t.Fatalf("Draw err=%v", err)
	}
	if !math.IsNaN(s.Depth()) {
		t.Fatalf("depth before projection=%v", s.Depth())
	}
}

func TestIDsAreUnique(t *testing.T) {
	a := NewCircle(geom.Zero3(), 1, canvas.Red)
	b := NewCircle(geom.Zero3(), 1, canvas.Red)
	c := NewLine(geom.Zero3(), geom.EX(), canvas.Red)
	if a.ID() == b.ID() || b.ID() == c.ID() || b.ID() <= a.ID() {
		t.Fatalf("ids %d %d %d", a.ID(), b.ID(), c.ID())
	}
}

func TestCircleProjectsAndDraws(t *testing.T) {
	v := view.New(640, 480)
	c := NewCircle(geom.Zero3(), 5, canvas.Blue)
	c.SetProjection(v)
	if !near(c.Depth(), -30, 1e-9) {
		t.Fatalf("depth=%v", c.Depth())
	}
	rec := canvas.NewRecorder(640, 480)
	c.Draw(rec)
	if len(rec.Commands) != 1 {
		t.Fatalf("commands=%v", rec.Commands)
	}
	cmd := rec.Commands[0]
	if cmd.Op != canvas.OpCircle || cmd.Radius != 5 || cmd.Color != canvas.Blue {
		t.Fatalf("cmd=%v", cmd)
	}
	if p := cmd.Points[0]; !near(p.X, 320, 1e-9) || !near(p.Y, 240, 1e-9) {
		t.Fatalf("center=%v", p)
	}
}

func TestPolygonDepthIsMean(t *testing.T) {
	v := view.New(640, 480)
	pts := []geom.Vec3{geom.V3(1, 0, 0), geom.V3(0, 2, 0), geom.V3(0, 0, 3)}
	p := NewPolygon(pts, canvas.Black)
	p.SetProjection(v)
	want := (v.Project(pts[0]).Z + v.Project(pts[1]).Z + v.Project(pts[2]).Z) / 3
	if !near(p.Depth(), want, 1e-12) {
		t.Fatalf("depth=%v want %v", p.Depth(), want)
	}
	if len(p.Projected()) != 3 {
		t.Fatalf("projected=%v", p.Projected())
	}

	// Idempotent.
	p.SetProjection(v)
	if !near(p.Depth(), want, 1e-12) || len(p.Projected()) != 3 {
		t.Fatalf("second projection changed result")
	}
}

func TestPolygonNormAndShade(t *testing.T) {
	p := NewPolygon([]geom.Vec3{geom.V3(0, 0, 0), geom.V3(1, 0, 0), geom.V3(1, 1, 0)}, canvas.Black)
	if n := p.Norm(); n != geom.EZ() {
		t.Fatalf("norm=%v", n)
	}
	p.Material = [3]float64{1, 0.5, 0}
	p.SetColor(geom.EZ())
	if p.Color != canvas.RGB(255, 128, 0) {
		t.Fatalf("color=%v", p.Color)
	}
	p.SetColor(geom.EZ().Mul(-1))
	if p.Color != canvas.Black {
		t.Fatalf("back-facing color=%v", p.Color)
	}
	p.Material = [3]float64{2, 2, 2}
	p.SetColor(geom.EZ())
	if p.Color != canvas.White {
		t.Fatalf("over-bright color=%v", p.Color)
	}
}

func TestNormOfLinePanics(t *testing.T) {
	l := NewLine(geom.Zero3(), geom.EX(), canvas.Black)
	if err := recovered(func() { l.Norm() }); !errors.Is(err, fault.ErrAssertion) {
		t.Fatalf("err=%v", err)
	}
}

func TestTriangleWindsOutward(t *testing.T) {
	a, b, c := geom.V3(5, 0, 0), geom.V3(0, 5, 0), geom.V3(0, 0, 5)
	for _, tri := range [][3]geom.Vec3{{a, b, c}, {a, c, b}, {b, a, c}, {c, b, a}} {
		p := NewTriangle(tri[0], tri[1], tri[2], canvas.Black)
		n := p.Points[1].Sub(p.Points[0]).Cross(p.Points[2].Sub(p.Points[0]))
		if p.Points[0].Dot(n) <= 0 {
			t.Fatalf("inward winding for %v: %v", tri, p.Points)
		}
		if p.Points[0] != tri[0] {
			t.Fatalf("first corner moved")
		}
	}
}

func TestLineDrawsTwoPoints(t *testing.T) {
	v := view.New(640, 480)
	l := NewLine(geom.Zero3(), geom.V3(0, 5, 0), canvas.Green)
	l.SetProjection(v)
	rec := canvas.NewRecorder(640, 480)
	l.Draw(rec)
	if rec.Commands[0].Op != canvas.OpPolygon || len(rec.Commands[0].Points) != 2 {
		t.Fatalf("cmd=%v", rec.Commands[0])
	}
}

func TestArrowOutline(t *testing.T) {
	v := view.New(640, 480)

	long := NewArrow(geom.Zero3(), geom.V3(5, 0, 0), canvas.Red)
	long.SetProjection(v)
	pts := long.Projected()
	if len(pts) != 7 {
		t.Fatalf("long arrow points=%d", len(pts))
	}
	tip := v.Project(geom.V3(5, 0, 0))
	if pts[0] != tip.XY() {
		t.Fatalf("first point %v, want tip %v", pts[0], tip.XY())
	}
	if d := pts[0].Dist(pts[1]); !near(d, 20, 1e-9) {
		t.Fatalf("head edge=%v", d)
	}
	if d := pts[1].Dist(pts[6]); !near(d, 20, 1e-9) {
		t.Fatalf("head base=%v", d)
	}
	st := v.Project(geom.Zero3())
	if !near(long.Depth(), (st.Z+tip.Z)/2, 1e-12) {
		t.Fatalf("depth=%v", long.Depth())
	}

	short := NewArrow(geom.Zero3(), geom.V3(0.1, 0, 0), canvas.Red)
	short.SetProjection(v)
	if len(short.Projected()) != 3 {
		t.Fatalf("short arrow points=%d", len(short.Projected()))
	}
}

func wave(n int) (*Grid2, *Grid1) {
	xy := NewGrid2(n, n)
	z := NewGrid1(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			xy.Set(i, j, float64(i), float64(j))
			z.Set(i, j, float64(i*j))
		}
	}
	return xy, z
}

func TestSurfaceQuads(t *testing.T) {
	xy, z := wave(3)
	s, err := NewSurface(xy, z, geom.EZ())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if len(s.Polygons()) != 4 {
		t.Fatalf("quads=%d", len(s.Polygons()))
	}
	if s.Min != 0 || s.Max != 4 {
		t.Fatalf("min=%v max=%v", s.Min, s.Max)
	}
	q := s.Polygons()[0]
	if q.Points[0] != geom.V3(0, 0, 0) || q.Points[1] != geom.V3(1, 0, 0) || q.Points[2] != geom.V3(1, 1, 1) || q.Points[3] != geom.V3(0, 1, 0) {
		t.Fatalf("first quad=%v", q.Points)
	}

	v := view.New(640, 480)
	s.SetProjection(v)
	rec := canvas.NewRecorder(640, 480)
	s.Draw(rec)
	if rec.Count(canvas.OpPolygon) != 4 {
		t.Fatalf("drawn=%d", rec.Count(canvas.OpPolygon))
	}
}

func TestSurfaceRejectsBadGrids(t *testing.T) {
	xy, _ := wave(3)
	if _, err := NewSurface(xy, NewGrid1(3, 4), geom.EZ()); !errors.Is(err, ErrGridShape) {
		t.Fatalf("err=%v", err)
	}
	if _, err := NewSurface(NewGrid2(1, 5), NewGrid1(1, 5), geom.EZ()); !errors.Is(err, ErrGridShape) {
		t.Fatalf("err=%v", err)
	}
}

func TestFlatSurfaceIsFinite(t *testing.T) {
	xy, _ := wave(2)
	s, err := NewSurface(xy, NewGrid1(2, 2), geom.EZ())
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if got := s.Polygons()[0].Material; got != PseudoColor(0) {
		t.Fatalf("material=%v", got)
	}
}

func TestPseudoColor(t *testing.T) {
	if got := PseudoColor(0); got != [3]float64{0, 0, 0.5} {
		t.Fatalf("0 -> %v", got)
	}
	if got := PseudoColor(1); got != [3]float64{0.5, 0, 0} {
		t.Fatalf("1 -> %v", got)
	}
	if got := PseudoColor(0.5); got != [3]float64{0.5, 1, 0.5} {
		t.Fatalf("0.5 -> %v", got)
	}
	if PseudoColor(-3) != PseudoColor(0) || PseudoColor(7) != PseudoColor(1) {
		t.Fatalf("out of range not clamped")
	}
}

func TestEmptyPolygon(t *testing.T) {
	if err := recovered(func() { NewPolygon(nil, canvas.Black) }); !errors.Is(err, fault.ErrAssertion) {
		t.Fatalf("NewPolygon(nil) err=%v", err)
	}

	p := NewLine(geom.V3(0, 0, 0), geom.V3(1, 0, 0), canvas.Black)
	p.Points = nil
	p.SetProjection(view.New(100, 100))
	if d := p.Depth(); !math.IsInf(d, -1) {
		t.Fatalf("depth=%v", d)
	}
}
