package scenegraph

import (
	"github.com/chewxy/math32"
)

// Vec3 is an x, y, z triple used for positions, euler angles and scales.
type Vec3 [3]float32

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Scaled returns v with every component multiplied by s.
func (v Vec3) Scaled(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Transform is a node's local transform. Rotation is stored as euler angles in radians
// and applied in z, y, x order (roll, then yaw, then pitch) like the usual node eulerAngles.
type Transform struct {
	Position    Vec3
	EulerAngles Vec3
	Scale       Vec3
}

// Identity returns a transform with no translation or rotation and unit scale.
func Identity() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// Matrix returns the local matrix T * R * S using the transform's own euler angles.
func (t Transform) Matrix() Mat4 {
	return t.matrixWith(t.EulerAngles)
}

func (t Transform) matrixWith(euler Vec3) Mat4 {
	m := Translation(t.Position[0], t.Position[1], t.Position[2])
	m = m.Mul(Rotation(euler))
	return m.Mul(Scaling(t.Scale[0], t.Scale[1], t.Scale[2]))
}

// Mat4 is a 4x4 matrix stored column-major: element (row, col) is at index col*4+row.
// This is the same memory order raylib uses for rl.Matrix.
type Mat4 [16]float32

// Ident4 returns the identity matrix.
func Ident4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at row r, column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Mul returns m * o, i.e. o is applied first when transforming a column vector.
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var s float32
			for k := 0; k < 4; k++ {
				s += m[k*4+r] * o[c*4+k]
			}
			out[c*4+r] = s
		}
	}
	return out
}

// MulPoint transforms p as a point (w = 1).
func (m Mat4) MulPoint(p Vec3) Vec3 {
	return Vec3{
		m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12],
		m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13],
		m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14],
	}
}

// MulDir transforms d as a direction (w = 0), ignoring translation.
func (m Mat4) MulDir(d Vec3) Vec3 {
	return Vec3{
		m[0]*d[0] + m[4]*d[1] + m[8]*d[2],
		m[1]*d[0] + m[5]*d[1] + m[9]*d[2],
		m[2]*d[0] + m[6]*d[1] + m[10]*d[2],
	}
}

// Translation returns a translation matrix.
func Translation(x, y, z float32) Mat4 {
	m := Ident4()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scaling returns a scale matrix.
func Scaling(x, y, z float32) Mat4 {
	m := Ident4()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotationX returns a rotation of a radians about the x axis.
func RotationX(a float32) Mat4 {
	s, c := math32.Sincos(a)
	m := Ident4()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotationY returns a rotation of a radians about the y axis.
func RotationY(a float32) Mat4 {
	s, c := math32.Sincos(a)
	m := Ident4()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotationZ returns a rotation of a radians about the z axis.
func RotationZ(a float32) Mat4 {
	s, c := math32.Sincos(a)
	m := Ident4()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Rotation returns Rx * Ry * Rz for the given euler angles, so z is applied first.
func Rotation(euler Vec3) Mat4 {
	return RotationX(euler[0]).Mul(RotationY(euler[1])).Mul(RotationZ(euler[2]))
}
