// Package geom provides the small vector and matrix algebra used by prismkit.
//
// Vectors (Vec2, Vec3, Vec4) and matrices (Mat2, Mat3, Mat4) are plain value
// types with float64 components. Every operation returns a new value and leaves
// its operands untouched; the single exception is (*Vec4).Normalize, which
// dehomogenizes in place.
//
// Matrices are row-major ([row][col]) and multiply column vectors:
//
//	m.MulVec(v)[i] = dot(m[i], v)
//
// Rotation constructors (RotX, RotY, RotZ) return right-handed rotations by a
// positive angle. Mat4Frustum follows the classic glFrustum layout, so a point
// inside the frustum lands in [-1,1]^3 after the perspective divide.
package geom
