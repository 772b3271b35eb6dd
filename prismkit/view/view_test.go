package view

import (
	"math"
	"testing"

	"prism/prismkit/geom"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

type fields map[string]string

func (f fields) SetField(name, value string) { f[name] = value }

func TestDefaults(t *testing.T) {
	v := New(640, 480)
	if !near(v.Eye.Len(), DefaultDistance, 1e-9) {
		t.Fatalf("eye distance=%v", v.Eye.Len())
	}
	if !near(v.Eye.Y, 30*math.Cos(math.Pi/4), 1e-9) {
		t.Fatalf("eye.y=%v", v.Eye.Y)
	}
	if !near(v.Aspect, 4.0/3.0, 1e-12) || !near(v.TanHalfX, v.Aspect*math.Tan(math.Pi/6), 1e-12) {
		t.Fatalf("aspect=%v tanHalfX=%v", v.Aspect, v.TanHalfX)
	}
	if v.LightDir != geom.EZ() {
		t.Fatalf("light=%v", v.LightDir)
	}
}

func TestEyeRotationIsOrthonormal(t *testing.T) {
	v := New(640, 480, WithAngles(1.1, -2.3), WithDistance(12))
	for i := 0; i < 3; i++ {
		if !near(v.EyeR.Row(i).Len(), 1, 1e-12) {
			t.Fatalf("row %d len=%v", i, v.EyeR.Row(i).Len())
		}
	}
	ex, ey, ez := v.Axes()
	if !near(ex.Dot(ey), 0, 1e-12) || !near(ey.Dot(ez), 0, 1e-12) || !near(ex.Dot(ez), 0, 1e-12) {
		t.Fatalf("axes not orthogonal: %v %v %v", ex, ey, ez)
	}
	// ez points from the target to the eye.
	if !near(ez.Dot(v.Eye.Unit()), 1, 1e-12) {
		t.Fatalf("ez=%v eye=%v", ez, v.Eye)
	}
	if !near(ex.Y, 0, 1e-12) {
		t.Fatalf("right axis not horizontal: %v", ex)
	}
}

func TestProjectTargetLandsAtCenter(t *testing.T) {
	v := New(640, 480)
	p := v.Project(geom.Zero3())
	if !near(p.X, 320, 1e-9) || !near(p.Y, 240, 1e-9) || !near(p.Z, -30, 1e-9) {
		t.Fatalf("project(target)=%v", p)
	}
}

func TestProjectUpIsScreenUp(t *testing.T) {
	v := New(640, 480)
	p := v.Project(geom.V3(0, 3, 0))
	if p.Y >= 240 {
		t.Fatalf("+Y projected below center: %v", p)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	v := New(800, 600, WithAngles(0.7, 2.0), WithDistance(25))
	for _, w := range []geom.Vec3{geom.V3(1, 2, 3), geom.V3(-4, 0.5, 2), geom.V3(5, -5, -5), geom.V3(0, 0, 0)} {
		p := v.Project(w)
		got := v.Unproject(p.X, p.Y, p.Z)
		if !near(got.X, w.X, 1e-9) || !near(got.Y, w.Y, 1e-9) || !near(got.Z, w.Z, 1e-9) {
			t.Fatalf("round trip %v -> %v -> %v", w, p, got)
		}

		q := v.CameraSpace(w)
		x := (p.X - v.HalfW) / v.HalfW * v.TanHalfX
		y := (v.HalfH - p.Y) / v.HalfH * v.TanHalfY
		if !near(x, q.X/-q.Z, 1e-9) || !near(y, q.Y/-q.Z, 1e-9) {
			t.Fatalf("ratios x=%v want %v, y=%v want %v", x, q.X/-q.Z, y, q.Y/-q.Z)
		}
	}
}

func TestProjectRoundTripAxisAligned(t *testing.T) {
	const d = 20
	v := New(800, 600, WithAngles(math.Pi/2, math.Pi), WithDistance(d))
	if !near(v.Eye.X, 0, 1e-9) || !near(v.Eye.Y, 0, 1e-9) || !near(v.Eye.Z, -d, 1e-9) {
		t.Fatalf("eye=%v", v.Eye)
	}
	for _, w := range []geom.Vec3{geom.V3(1, 2, 3), geom.V3(-4, 0.5, 2), geom.V3(3, -3, -5), geom.V3(0, 0, 0)} {
		p := v.Project(w)
		got := v.Unproject(p.X, p.Y, p.Z)
		if !near(got.X, w.X, 1e-9) || !near(got.Y, w.Y, 1e-9) || !near(got.Z, w.Z, 1e-9) {
			t.Fatalf("round trip %v -> %v -> %v", w, p, got)
		}

		// Looking down +Z with +Y up, world +X is screen left.
		x := (p.X - v.HalfW) / v.HalfW * v.TanHalfX
		y := (v.HalfH - p.Y) / v.HalfH * v.TanHalfY
		wantX, wantY := -w.X/(w.Z+d), w.Y/(w.Z+d)
		if !near(x, wantX, 1e-9) || !near(y, wantY, 1e-9) {
			t.Fatalf("%v: x/z=%v want %v, y/z=%v want %v", w, x, wantX, y, wantY)
		}
	}
}

func TestProjectMatchesFrustum(t *testing.T) {
	v := New(640, 480, WithAngles(1.2, 0.4))
	m := v.Frustum(1, 100)
	for _, w := range []geom.Vec3{geom.V3(1, 1, 1), geom.V3(-3, 2, 4)} {
		q := v.CameraSpace(w)
		ndc := m.MulVec(q.To4())
		n := ndc.To3()
		p := v.Project(w)
		if !near(p.X, v.HalfW+v.HalfW*n.X, 1e-9) || !near(p.Y, v.HalfH-v.HalfH*n.Y, 1e-9) {
			t.Fatalf("project=%v ndc=%v", p, n)
		}
	}
}

func TestDragOrbitsCamera(t *testing.T) {
	f := fields{}
	v := New(640, 480, WithReadout(f))

	v.PointerMove(50, 50, 1)
	if v.Theta != DefaultTheta || v.Phi != DefaultPhi {
		t.Fatalf("move without down changed angles")
	}

	v.PointerDown(100, 100)
	if !v.Dragging() {
		t.Fatalf("not dragging after down")
	}
	v.PointerMove(130, 160, 0)
	if v.Theta != DefaultTheta {
		t.Fatalf("move without buttons changed theta")
	}
	v.PointerMove(130, 160, 1)
	if want := DefaultTheta - 60.0/300; !near(v.Theta, want, 1e-12) {
		t.Fatalf("theta=%v want %v", v.Theta, want)
	}
	if want := DefaultPhi - 30.0/300; !near(v.Phi, want, 1e-12) {
		t.Fatalf("phi=%v want %v", v.Phi, want)
	}
	if f[FieldTheta] != "34" || f[FieldPhi] != "39" {
		t.Fatalf("readouts=%v", f)
	}
	if !near(v.Eye.Len(), DefaultDistance, 1e-9) {
		t.Fatalf("eye left orbit: %v", v.Eye)
	}

	// A second move is relative to the drag start, not the previous move.
	v.PointerMove(100, 100, 1)
	if !near(v.Theta, DefaultTheta, 1e-12) {
		t.Fatalf("theta=%v after returning to start", v.Theta)
	}

	v.PointerUp()
	v.PointerMove(0, 0, 1)
	if !near(v.Theta, DefaultTheta, 1e-12) {
		t.Fatalf("move after up changed theta")
	}
}

func TestWheelZooms(t *testing.T) {
	f := fields{}
	v := New(640, 480)
	v.AddReadout(f)
	v.Wheel(500)
	if !near(v.Distance, 31, 1e-12) || !near(v.Eye.Len(), 31, 1e-9) {
		t.Fatalf("distance=%v eye=%v", v.Distance, v.Eye.Len())
	}
	if f[FieldDistance] != "31" {
		t.Fatalf("distance readout=%q", f[FieldDistance])
	}
	if f[FieldEyeY] != "22" {
		t.Fatalf("eye-y readout=%q", f[FieldEyeY])
	}
}

func TestNumericSetters(t *testing.T) {
	v := New(640, 480)
	v.SetTheta(90)
	v.SetPhi(0)
	if !near(v.Eye.Y, 0, 1e-9) || !near(v.Eye.Z, 30, 1e-9) || !near(v.Eye.X, 0, 1e-9) {
		t.Fatalf("eye=%v", v.Eye)
	}

	if err := v.SetEyeAxis('x', 10); err != nil {
		t.Fatalf("SetEyeAxis: %v", err)
	}
	_, _, ez := v.Axes()
	if want := geom.V3(10, 0, 30).Unit(); !near(ez.Dot(want), 1, 1e-12) {
		t.Fatalf("ez=%v want %v", ez, want)
	}
	if err := v.SetEyeAxis('w', 1); err == nil {
		t.Fatalf("expected error for bad axis")
	}

	v.SetTarget(geom.V3(0, 0, 5))
	if p := v.Project(geom.V3(0, 0, 5)); !near(p.X, 320, 1e-9) || !near(p.Y, 240, 1e-9) {
		t.Fatalf("moved target not centered: %v", p)
	}
}

func TestReadoutFunc(t *testing.T) {
	var names []string
	v := New(100, 100, WithReadout(ReadoutFunc(func(name, _ string) { names = append(names, name) })))
	v.UpdateEye()
	if len(names) != 6 || names[3] != FieldEyeX {
		t.Fatalf("names=%v", names)
	}
}

func TestPublish(t *testing.T) {
	got := map[string]string{}
	v := New(100, 100)
	v.AddReadout(ReadoutFunc(func(name, value string) { got[name] = value }))
	v.Publish()
	want := map[string]string{
		FieldTheta: "45", FieldPhi: "45", FieldDistance: "30",
		FieldEyeX: "15", FieldEyeY: "21", FieldEyeZ: "15",
	}
	for k, w := range want {
		if got[k] != w {
			t.Fatalf("%s=%q want %q (all=%v)", k, got[k], w, got)
		}
	}
	v.SetTheta(90)
	if got[FieldTheta] != "90" || got[FieldEyeY] != "0" {
		t.Fatalf("after SetTheta: %v", got)
	}
}
