package geom

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// Vec4 is a homogeneous 3D vector.
type Vec4 struct {
	X, Y, Z, W float64
}

func V2(x, y float64) Vec2    { return Vec2{X: x, Y: y} }
func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Dot(o Vec2) float64   { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Len2() float64        { return v.Dot(v) }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64  { return o.Sub(v).Len() }
func (v Vec2) Equals(o Vec2) bool   { return v == o }
func (v Vec2) MidPoint(o Vec2) Vec2 { return v.Divide(0.5, o) }

// Unit returns v scaled to length 1, or the zero vector when v has zero length.
func (v Vec2) Unit() Vec2 {
	d := v.Len()
	if d == 0 {
		return Vec2{}
	}
	return Vec2{v.X / d, v.Y / d}
}

// Divide returns the point at parameter t on the segment v→o (t=0 is v, t=1 is o).
func (v Vec2) Divide(t float64, o Vec2) Vec2 {
	return Vec2{(1-t)*v.X + t*o.X, (1-t)*v.Y + t*o.Y}
}

// Rot rotates v counter-clockwise by th radians.
func (v Vec2) Rot(th float64) Vec2 {
	cs, sn := math.Cos(th), math.Sin(th)
	return Vec2{v.X*cs - v.Y*sn, v.X*sn + v.Y*cs}
}

func (v Vec2) Rot90() Vec2 { return Vec2{-v.Y, v.X} }

func (v Vec2) Rot45() Vec2 {
	cs := math.Cos(math.Pi / 4)
	return Vec2{cs * (v.X - v.Y), cs * (v.X + v.Y)}
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

func (v Vec2) String() string { return fmt.Sprintf("[ %.1f, %.1f ]", v.X, v.Y) }

func Zero3() Vec3 { return Vec3{} }
func EX() Vec3    { return Vec3{1, 0, 0} }
func EY() Vec3    { return Vec3{0, 1, 0} }
func EZ() Vec3    { return Vec3{0, 0, 1} }

// NaN3 returns a vector whose components are all NaN. It marks derived
// positions that have not been computed yet.
func NaN3() Vec3 {
	n := math.NaN()
	return Vec3{n, n, n}
}

func FromArray(a [3]float64) Vec3 { return Vec3{a[0], a[1], a[2]} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s float64) Vec3   { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) Len2() float64        { return v.Dot(v) }
func (v Vec3) Len() float64         { return math.Sqrt(v.Len2()) }
func (v Vec3) Dist(o Vec3) float64  { return o.Sub(v).Len() }
func (v Vec3) Equals(o Vec3) bool   { return v == o }
func (v Vec3) MidPoint(o Vec3) Vec3 { return v.Divide(0.5, o) }
func (v Vec3) XY() Vec2             { return Vec2{v.X, v.Y} }
func (v Vec3) To4() Vec4            { return Vec4{v.X, v.Y, v.Z, 1} }
func (v Vec3) Array() [3]float64    { return [3]float64{v.X, v.Y, v.Z} }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Unit returns v scaled to length 1, or the zero vector when v has zero length.
func (v Vec3) Unit() Vec3 {
	d := v.Len()
	if d == 0 {
		return Vec3{}
	}
	return Vec3{v.X / d, v.Y / d, v.Z / d}
}

// Divide returns the point at parameter t on the segment v→o.
func (v Vec3) Divide(t float64, o Vec3) Vec3 {
	return Vec3{
		X: (1-t)*v.X + t*o.X,
		Y: (1-t)*v.Y + t*o.Y,
		Z: (1-t)*v.Z + t*o.Z,
	}
}

func (v Vec3) RotX(th float64) Vec3 { return RotX(th).MulVec(v) }
func (v Vec3) RotY(th float64) Vec3 { return RotY(th).MulVec(v) }
func (v Vec3) RotZ(th float64) Vec3 { return RotZ(th).MulVec(v) }

func (v Vec3) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) }

func (v Vec3) String() string { return fmt.Sprintf("[ %.1f, %.1f, %.1f ]", v.X, v.Y, v.Z) }

func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Normalize divides x, y and z by w and sets w to 1, in place.
// A zero w yields infinite or NaN components.
func (v *Vec4) Normalize() *Vec4 {
	v.X /= v.W
	v.Y /= v.W
	v.Z /= v.W
	v.W = 1
	return v
}

// To3 dehomogenizes v and returns its first three components.
func (v *Vec4) To3() Vec3 {
	v.Normalize()
	return Vec3{v.X, v.Y, v.Z}
}

func (v Vec4) String() string {
	return fmt.Sprintf("[ %.1f, %.1f, %.1f, %.1f ]", v.X, v.Y, v.Z, v.W)
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Sum returns the sum of xs.
func Sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func ToRadian(deg float64) float64 { return deg * math.Pi / 180 }
func ToDegree(rad float64) float64 { return rad * 180 / math.Pi }
