package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func nearVec3(a, b Vec3, tol float64) bool {
	return near(a.X, b.X, tol) && near(a.Y, b.Y, tol) && near(a.Z, b.Z, tol)
}

func TestUnitZeroVector(t *testing.T) {
	if got := (Vec3{}).Unit(); got != (Vec3{}) {
		t.Fatalf("Vec3 zero unit=%v", got)
	}
	if got := (Vec2{}).Unit(); got != (Vec2{}) {
		t.Fatalf("Vec2 zero unit=%v", got)
	}
	u := V3(3, 4, 12).Unit()
	if !near(u.Len(), 1, eps) {
		t.Fatalf("len=%v", u.Len())
	}
}

func TestVecOpsDoNotMutate(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 5, 0.5)
	_ = a.Add(b)
	_ = a.Sub(b)
	_ = a.Mul(7)
	_ = a.Cross(b)
	_ = a.Unit()
	if a != V3(1, 2, 3) || b != V3(-4, 5, 0.5) {
		t.Fatalf("operands mutated: a=%v b=%v", a, b)
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-2, 0.5, 4)
	c := a.Cross(b)
	if !near(c.Dot(a), 0, eps) || !near(c.Dot(b), 0, eps) {
		t.Fatalf("cross not orthogonal: %v", c)
	}
	if EX().Cross(EY()) != EZ() {
		t.Fatalf("ex x ey != ez")
	}
}

func TestDivideAndMidPoint(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(2, 4, -6)
	if got := a.MidPoint(b); got != V3(1, 2, -3) {
		t.Fatalf("midpoint=%v", got)
	}
	if got := a.Divide(0.25, b); !nearVec3(got, V3(0.5, 1, -1.5), eps) {
		t.Fatalf("divide=%v", got)
	}
	if got := V2(0, 0).Divide(1, V2(3, 4)); got != V2(3, 4) {
		t.Fatalf("divide t=1 %v", got)
	}
}

func TestVec2Rotations(t *testing.T) {
	v := V2(1, 0)
	if got := v.Rot90(); got != V2(0, 1) {
		t.Fatalf("rot90=%v", got)
	}
	r := v.Rot(math.Pi / 2)
	if !near(r.X, 0, eps) || !near(r.Y, 1, eps) {
		t.Fatalf("rot(pi/2)=%v", r)
	}
	r45 := v.Rot45()
	want := v.Rot(math.Pi / 4)
	if !near(r45.X, want.X, eps) || !near(r45.Y, want.Y, eps) {
		t.Fatalf("rot45=%v want %v", r45, want)
	}
}

func TestAxisRotations(t *testing.T) {
	if got := EX().RotZ(math.Pi / 2); !nearVec3(got, EY(), eps) {
		t.Fatalf("ex rotZ=%v", got)
	}
	if got := EY().RotX(math.Pi / 2); !nearVec3(got, EZ(), eps) {
		t.Fatalf("ey rotX=%v", got)
	}
	if got := EZ().RotY(math.Pi / 2); !nearVec3(got, EX(), eps) {
		t.Fatalf("ez rotY=%v", got)
	}
}

func TestRotationsAreOrthonormal(t *testing.T) {
	for _, m := range []Mat3{RotX(0.3), RotY(-1.2), RotZ(2.5), RotX(0.7).Mul(RotZ(0.4))} {
		for i := 0; i < 3; i++ {
			if !near(m.Row(i).Len(), 1, eps) {
				t.Fatalf("row %d len=%v", i, m.Row(i).Len())
			}
			for j := i + 1; j < 3; j++ {
				if !near(m.Row(i).Dot(m.Row(j)), 0, eps) {
					t.Fatalf("rows %d,%d not orthogonal", i, j)
				}
			}
		}
		if !near(m.Det(), 1, eps) {
			t.Fatalf("det=%v", m.Det())
		}
	}
}

func TestMat3MulIdentity(t *testing.T) {
	a := Mat3{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}}
	if got := a.Mul(Mat3Identity()); got != a {
		t.Fatalf("a*I mismatch")
	}
	if got := Mat3Identity().Mul(a); got != a {
		t.Fatalf("I*a mismatch")
	}
}

func TestMat3InverseMatchesGonum(t *testing.T) {
	a := Mat3{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}}
	inv := a.Inv()

	d := mat.NewDense(3, 3, []float64{2, -1, 0, -1, 2, -1, 0, -1, 2})
	var want mat.Dense
	if err := want.Inverse(d); err != nil {
		t.Fatalf("gonum inverse: %v", err)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if !near(inv[r][c], want.At(r, c), 1e-12) {
				t.Fatalf("inv[%d][%d]=%v, want %v", r, c, inv[r][c], want.At(r, c))
			}
		}
	}

	p := a.Mul(inv)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			if !near(p[r][c], want, 1e-12) {
				t.Fatalf("a*inv[%d][%d]=%v", r, c, p[r][c])
			}
		}
	}
}

func TestMat3DetMatchesGonum(t *testing.T) {
	a := Mat3{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}}
	want := mat.Det(mat.NewDense(3, 3, []float64{1, 2, 3, 0, 4, 5, 1, 0, 6}))
	if !near(a.Det(), want, 1e-12) {
		t.Fatalf("det=%v want %v", a.Det(), want)
	}
}

func TestMat2Inverse(t *testing.T) {
	a := Mat2{{4, 7}, {2, 6}}
	p := a.Mul(a.Inv())
	id := Mat2Identity()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if !near(p[r][c], id[r][c], 1e-12) {
				t.Fatalf("a*inv=%v", p)
			}
		}
	}
	v := a.MulVec(V2(1, 1))
	if v != V2(11, 8) {
		t.Fatalf("mulvec=%v", v)
	}
}

func TestFrustumMatchesMathgl(t *testing.T) {
	l, r, b, tp, n, f := -1.5, 2.0, -1.0, 0.75, 1.0, 50.0
	got := Mat4Frustum(l, r, b, tp, n, f)
	want := mgl64.Frustum(l, r, b, tp, n, f)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !near(got[row][col], want.At(row, col), 1e-12) {
				t.Fatalf("frustum[%d][%d]=%v, want %v", row, col, got[row][col], want.At(row, col))
			}
		}
	}
}

func TestFrustumMapsInsidePointsToNDC(t *testing.T) {
	m := Mat4Perspective(ToRadian(60), 4.0/3.0, 1, 100)
	for _, p := range []Vec3{V3(0, 0, -1), V3(0, 0, -100), V3(0.3, -0.2, -5), V3(-10, 7, -40)} {
		v := m.MulVec(p.To4())
		ndc := v.To3()
		if v.W != 1 {
			t.Fatalf("w after normalize=%v", v.W)
		}
		for _, c := range []float64{ndc.X, ndc.Y, ndc.Z} {
			if c < -1-eps || c > 1+eps {
				t.Fatalf("point %v -> ndc %v outside [-1,1]", p, ndc)
			}
		}
	}
	nearPlane := m.MulVec(V3(0, 0, -1).To4())
	if got := nearPlane.To3().Z; !near(got, -1, 1e-12) {
		t.Fatalf("near plane z=%v", got)
	}
	farPlane := m.MulVec(V3(0, 0, -100).To4())
	if got := farPlane.To3().Z; !near(got, 1, 1e-12) {
		t.Fatalf("far plane z=%v", got)
	}
}

func TestVec4NormalizeInPlace(t *testing.T) {
	v := Vec4{X: 2, Y: 4, Z: 6, W: 2}
	v.Normalize()
	if v != (Vec4{X: 1, Y: 2, Z: 3, W: 1}) {
		t.Fatalf("normalize=%v", v)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Perspective(1, 1.5, 0.1, 10)
	if got := Mat4Identity().Mul(a); got != a {
		t.Fatalf("I*a mismatch")
	}
	if got := a.Transpose().Transpose(); got != a {
		t.Fatalf("transpose twice mismatch")
	}
}
