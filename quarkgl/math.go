package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3 is a 3D vector.
type Vec3 = mgl32.Vec3

// Vec4 is a homogeneous 4D vector.
type Vec4 = mgl32.Vec4

// Mat4 is a column-major 4x4 matrix: m[col*4+row].
type Mat4 = mgl32.Mat4

func V3(x, y, z float32) Vec3 { return Vec3{x, y, z} }

func Mat4Identity() Mat4 { return mgl32.Ident4() }

// Euler is a rotation in radians applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float32
}

// Matrix returns Rx * Ry * Rz.
func (e Euler) Matrix() Mat4 {
	m := mgl32.Ident4()
	if e.X != 0 {
		m = m.Mul4(mgl32.HomogRotate3DX(e.X))
	}
	if e.Y != 0 {
		m = m.Mul4(mgl32.HomogRotate3DY(e.Y))
	}
	if e.Z != 0 {
		m = m.Mul4(mgl32.HomogRotate3DZ(e.Z))
	}
	return m
}

// Compose builds T * R * S.
func Compose(pos Vec3, rot Euler, scale Vec3) Mat4 {
	m := mgl32.Translate3D(pos[0], pos[1], pos[2]).Mul4(rot.Matrix())
	if scale != (Vec3{1, 1, 1}) {
		m = m.Mul4(mgl32.Scale3D(scale[0], scale[1], scale[2]))
	}
	return m
}

// TransformPoint applies m to p with w=1 and returns the xyz part (no divide).
func TransformPoint(m Mat4, p Vec3) Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// Clamp01 clamps v into [0,1].
func Clamp01(v float32) float32 { return mgl32.Clamp(v, 0, 1) }

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v Vec3) Vec3 {
	if v.Len() == 0 {
		return Vec3{}
	}
	return v.Normalize()
}

// Deg converts degrees to radians.
func Deg(d float32) float32 { return mgl32.DegToRad(d) }

func sin32(v float64) float32 { return float32(math.Sin(v)) }
func cos32(v float64) float32 { return float32(math.Cos(v)) }
