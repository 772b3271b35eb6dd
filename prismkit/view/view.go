// Package view holds the orbit camera: where the eye sits around the target,
// the eye rotation that maps world space into camera space, and the pinhole
// projection from camera space onto the canvas.
//
// The eye orbits the world origin at Distance and looks at Target. Theta is
// measured from the world +Y axis and Phi around it from +Z towards +X. Camera space has the
// eye at the origin looking down -Z, so points in front of the camera have a
// negative depth.
package view

import (
	"fmt"
	"math"

	"prism/prismkit/geom"
)

const (
	DefaultDistance = 30.0
	DefaultTheta    = math.Pi / 4
	DefaultPhi      = math.Pi / 4
	DefaultFoV      = 60.0 // degrees, vertical

	// DragDivisor converts pointer travel in pixels into radians.
	DragDivisor = 300.0
	// WheelFactor converts wheel delta units into distance.
	WheelFactor = 0.002
)

// Readout fields published by a View.
const (
	FieldTheta    = "theta"
	FieldPhi      = "phi"
	FieldDistance = "distance"
	FieldEyeX     = "eye-x"
	FieldEyeY     = "eye-y"
	FieldEyeZ     = "eye-z"
)

// Readout receives one-way numeric notifications for display.
type Readout interface {
	SetField(name, value string)
}

// ReadoutFunc adapts a function to Readout.
type ReadoutFunc func(name, value string)

func (f ReadoutFunc) SetField(name, value string) { f(name, value) }

// View is the camera. It is not safe for concurrent use; mutate it from the
// same goroutine that renders frames.
type View struct {
	Eye    geom.Vec3
	Target geom.Vec3
	Up     geom.Vec3

	// EyeR rows are the camera right, up and backward axes in world space.
	EyeR geom.Mat3

	Distance float64
	Theta    float64
	Phi      float64

	FoV      float64 // radians, vertical
	TanHalfY float64
	TanHalfX float64
	Aspect   float64

	HalfW, HalfH float64

	LightDir geom.Vec3

	lastX, lastY       float64
	thetaSave, phiSave float64
	readouts           []Readout
}

// Option customises a View before its first eye update.
type Option func(*View)

func WithDistance(d float64) Option { return func(v *View) { v.Distance = d } }

// WithAngles sets the orbit angles in radians.
func WithAngles(theta, phi float64) Option {
	return func(v *View) { v.Theta, v.Phi = theta, phi }
}

// WithFoV sets the vertical field of view in degrees.
func WithFoV(deg float64) Option { return func(v *View) { v.FoV = geom.ToRadian(deg) } }

func WithTarget(t geom.Vec3) Option { return func(v *View) { v.Target = t } }

func WithLight(dir geom.Vec3) Option { return func(v *View) { v.LightDir = dir } }

func WithReadout(r Readout) Option {
	return func(v *View) { v.readouts = append(v.readouts, r) }
}

// New returns a camera for a canvas of width×height pixels.
func New(width, height float64, opts ...Option) *View {
	v := &View{
		Up:       geom.EY(),
		Distance: DefaultDistance,
		Theta:    DefaultTheta,
		Phi:      DefaultPhi,
		FoV:      geom.ToRadian(DefaultFoV),
		LightDir: geom.EZ(),
		lastX:    math.NaN(),
		lastY:    math.NaN(),
	}
	for _, o := range opts {
		o(v)
	}
	v.Resize(width, height)
	v.UpdateEye()
	return v
}

// Resize updates the canvas-dependent terms without moving the eye.
func (v *View) Resize(width, height float64) {
	v.HalfW = width / 2
	v.HalfH = height / 2
	v.Aspect = 1
	if height != 0 {
		v.Aspect = width / height
	}
	v.TanHalfY = math.Tan(v.FoV / 2)
	v.TanHalfX = v.Aspect * v.TanHalfY
}

// AddReadout registers r for future notifications.
func (v *View) AddReadout(r Readout) {
	if r != nil {
		v.readouts = append(v.readouts, r)
	}
}

func (v *View) notify(name string, value float64) {
	s := fmt.Sprintf("%.0f", value)
	if s == "-0" {
		s = "0"
	}
	for _, r := range v.readouts {
		r.SetField(name, s)
	}
}

// UpdateEye places the eye from Distance, Theta and Phi around the world
// origin, publishes its coordinates and refreshes EyeR.
func (v *View) UpdateEye() {
	v.Eye.Y = v.Distance * math.Cos(v.Theta)
	r := v.Distance * math.Sin(v.Theta)
	v.Eye.Z = r * math.Cos(v.Phi)
	v.Eye.X = r * math.Sin(v.Phi)

	v.notify(FieldEyeX, v.Eye.X)
	v.notify(FieldEyeY, v.Eye.Y)
	v.notify(FieldEyeZ, v.Eye.Z)

	v.UpdateViewMatrix()
}

// UpdateViewMatrix rebuilds EyeR from Eye, Target and Up. It must run after
// any direct change to Eye or Target.
func (v *View) UpdateViewMatrix() {
	ez := v.Eye.Sub(v.Target).Unit()
	ex := v.Up.Cross(ez).Unit()
	ey := ez.Cross(ex)
	v.EyeR = geom.Mat3FromRows(ex, ey, ez)
}

// CameraSpace maps a world point into camera space.
func (v *View) CameraSpace(p geom.Vec3) geom.Vec3 {
	return v.EyeR.MulVec(p.Sub(v.Eye))
}

// Project maps a world point to canvas pixels. The result's Z is the
// camera-space depth, negative in front of the eye. No clipping is done: a
// depth near zero gives huge or non-finite x and y.
func (v *View) Project(p geom.Vec3) geom.Vec3 {
	q := v.CameraSpace(p)
	h := math.Abs(q.Z) * v.TanHalfY
	w := h * v.Aspect
	return geom.Vec3{
		X: v.HalfW + v.HalfW*q.X/w,
		Y: v.HalfH - v.HalfH*q.Y/h,
		Z: q.Z,
	}
}

// Unproject inverts Project for a canvas point at the given camera-space depth
// and returns the world point.
func (v *View) Unproject(x, y, depth float64) geom.Vec3 {
	h := math.Abs(depth) * v.TanHalfY
	w := h * v.Aspect
	q := geom.Vec3{
		X: (x - v.HalfW) / v.HalfW * w,
		Y: (v.HalfH - y) / v.HalfH * h,
		Z: depth,
	}
	// EyeR is orthonormal, so its transpose is its inverse.
	return v.EyeR.Transpose().MulVec(q).Add(v.Eye)
}

// PointerDown starts a drag at device coordinates x, y.
func (v *View) PointerDown(x, y float64) {
	v.lastX, v.lastY = x, y
	v.thetaSave, v.phiSave = v.Theta, v.Phi
}

// PointerMove orbits the camera relative to the drag start. Moves with no
// button held, or without a preceding PointerDown, are ignored.
func (v *View) PointerMove(x, y float64, buttons int) {
	if buttons == 0 || math.IsNaN(v.lastX) {
		return
	}
	v.Theta = v.thetaSave - (y-v.lastY)/DragDivisor
	v.Phi = v.phiSave - (x-v.lastX)/DragDivisor

	v.notify(FieldTheta, math.Round(geom.ToDegree(v.Theta)))
	v.notify(FieldPhi, math.Round(geom.ToDegree(v.Phi)))

	v.UpdateEye()
}

func (v *View) PointerUp() {
	v.lastX, v.lastY = math.NaN(), math.NaN()
}

// Dragging reports whether a PointerDown is active.
func (v *View) Dragging() bool { return !math.IsNaN(v.lastX) }

// Wheel zooms by deltaY wheel units; positive moves the eye away.
func (v *View) Wheel(deltaY float64) {
	v.Distance += WheelFactor * deltaY
	v.notify(FieldDistance, math.Round(v.Distance))
	v.UpdateEye()
}

// SetTheta sets the polar angle in degrees.
func (v *View) SetTheta(deg float64) {
	v.Theta = geom.ToRadian(deg)
	v.notify(FieldTheta, math.Round(deg))
	v.UpdateEye()
}

// SetPhi sets the azimuth in degrees.
func (v *View) SetPhi(deg float64) {
	v.Phi = geom.ToRadian(deg)
	v.notify(FieldPhi, math.Round(deg))
	v.UpdateEye()
}

// Publish sends every readout field its current value.
func (v *View) Publish() {
	v.notify(FieldTheta, math.Round(geom.ToDegree(v.Theta)))
	v.notify(FieldPhi, math.Round(geom.ToDegree(v.Phi)))
	v.notify(FieldDistance, math.Round(v.Distance))
	v.UpdateEye()
}

// SetEyeAxis overrides one eye coordinate ('x', 'y' or 'z') directly. The
// orbit angles are left alone, so the next UpdateEye snaps back to the orbit.
func (v *View) SetEyeAxis(axis byte, value float64) error {
	switch axis {
	case 'x', 'X':
		v.Eye.X = value
	case 'y', 'Y':
		v.Eye.Y = value
	case 'z', 'Z':
		v.Eye.Z = value
	default:
		return fmt.Errorf("view: unknown eye axis %q", axis)
	}
	v.UpdateViewMatrix()
	return nil
}

func (v *View) SetEye(eye geom.Vec3) {
	v.Eye = eye
	v.UpdateViewMatrix()
}

func (v *View) SetTarget(t geom.Vec3) {
	v.Target = t
	v.UpdateViewMatrix()
}

// Axes returns the camera right, up and backward directions.
func (v *View) Axes() (ex, ey, ez geom.Vec3) {
	return v.EyeR.Row(0), v.EyeR.Row(1), v.EyeR.Row(2)
}

// Frustum returns the perspective matrix that matches Project for camera-space
// points between near and far.
func (v *View) Frustum(near, far float64) geom.Mat4 {
	return geom.Mat4Perspective(v.FoV, v.Aspect, near, far)
}
