package geom

import (
	"fmt"
	"math"
	"strings"
)

// Mat2 is a row-major 2x2 matrix.
type Mat2 [2][2]float64

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Mat4 is a row-major 4x4 matrix.
type Mat4 [4][4]float64

func Mat2Identity() Mat2 { return Mat2{{1, 0}, {0, 1}} }
func Mat3Identity() Mat3 { return Mat3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} }

func Mat4Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mat3FromRows builds a matrix whose rows are a, b and c.
func Mat3FromRows(a, b, c Vec3) Mat3 {
	return Mat3{
		{a.X, a.Y, a.Z},
		{b.X, b.Y, b.Z},
		{c.X, c.Y, c.Z},
	}
}

func (m Mat2) Det() float64 { return m[0][0]*m[1][1] - m[0][1]*m[1][0] }

func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		m[0][0]*v.X + m[0][1]*v.Y,
		m[1][0]*v.X + m[1][1]*v.Y,
	}
}

func (m Mat2) Mul(o Mat2) Mat2 {
	var out Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			out[r][c] = m[r][0]*o[0][c] + m[r][1]*o[1][c]
		}
	}
	return out
}

func (m Mat2) MulScalar(s float64) Mat2 {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

// Inv returns the inverse of m. The caller must ensure Det() != 0.
func (m Mat2) Inv() Mat2 {
	d := m.Det()
	return Mat2{
		{m[1][1] / d, -m[0][1] / d},
		{-m[1][0] / d, m[0][0] / d},
	}
}

// RotX returns the rotation by th radians about the X axis.
func RotX(th float64) Mat3 {
	c, s := math.Cos(th), math.Sin(th)
	return Mat3{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotY returns the rotation by th radians about the Y axis.
func RotY(th float64) Mat3 {
	c, s := math.Cos(th), math.Sin(th)
	return Mat3{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

// RotZ returns the rotation by th radians about the Z axis.
func RotZ(th float64) Mat3 {
	c, s := math.Cos(th), math.Sin(th)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

func (m Mat3) Row(i int) Vec3 { return Vec3{m[i][0], m[i][1], m[i][2]} }
func (m Mat3) Col(i int) Vec3 { return Vec3{m[0][i], m[1][i], m[2][i]} }

func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{m.Row(0).Dot(v), m.Row(1).Dot(v), m.Row(2).Dot(v)}
}

func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m.Row(r).Dot(o.Col(c))
		}
	}
	return out
}

func (m Mat3) MulScalar(s float64) Mat3 {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) +
		m[0][1]*(m[1][2]*m[2][0]-m[1][0]*m[2][2]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cyclic lists the other two indices of a row or column in cyclic order, which
// folds the cofactor sign into the 2x2 minor.
var cyclic = [3][2]int{{1, 2}, {2, 0}, {0, 1}}

// Minor returns the matrix of signed 2x2 minors (the cofactor matrix).
func (m Mat3) Minor() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		ri := cyclic[r]
		for c := 0; c < 3; c++ {
			ci := cyclic[c]
			out[r][c] = m[ri[0]][ci[0]]*m[ri[1]][ci[1]] - m[ri[0]][ci[1]]*m[ri[1]][ci[0]]
		}
	}
	return out
}

// Inv returns the inverse of m via the adjugate. It is only defined for
// Det() != 0; a singular matrix yields infinite or NaN entries.
func (m Mat3) Inv() Mat3 {
	return m.Minor().Transpose().MulScalar(1 / m.Det())
}

func (m Mat3) String() string {
	return matString([][]float64{m[0][:], m[1][:], m[2][:]})
}

func (m Mat4) Row(i int) Vec4 { return Vec4{m[i][0], m[i][1], m[i][2], m[i][3]} }

func (m Mat4) MulVec(v Vec4) Vec4 {
	dot := func(r int) float64 {
		return m[r][0]*v.X + m[r][1]*v.Y + m[r][2]*v.Z + m[r][3]*v.W
	}
	return Vec4{dot(0), dot(1), dot(2), dot(3)}
}

func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var s float64
			for k := 0; k < 4; k++ {
				s += m[r][k] * o[k][c]
			}
			out[r][c] = s
		}
	}
	return out
}

func (m Mat4) MulScalar(s float64) Mat4 {
	for r := range m {
		for c := range m[r] {
			m[r][c] *= s
		}
	}
	return m
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Mat4Frustum returns the off-center perspective projection for the view
// volume bounded by left/right, bottom/top at the near plane and by near/far
// along -Z. The bottom row (0, 0, -1, 0) carries eye depth into w.
func Mat4Frustum(l, r, b, t, n, f float64) Mat4 {
	return Mat4{
		{2 * n / (r - l), 0, (r + l) / (r - l), 0},
		{0, 2 * n / (t - b), (t + b) / (t - b), 0},
		{0, 0, -(f + n) / (f - n), -2 * f * n / (f - n)},
		{0, 0, -1, 0},
	}
}

// Mat4Perspective is the symmetric frustum for a vertical field of view.
func Mat4Perspective(fovY, aspect, near, far float64) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	ymax := near * math.Tan(fovY/2)
	xmax := ymax * aspect
	return Mat4Frustum(-xmax, xmax, -ymax, ymax, near, far)
}

func (m Mat4) String() string {
	return matString([][]float64{m[0][:], m[1][:], m[2][:], m[3][:]})
}

func matString(rows [][]float64) string {
	var sb strings.Builder
	for i, row := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("[ ")
		for j, x := range row {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%.1f", x)
		}
		sb.WriteString(" ]")
	}
	return sb.String()
}
