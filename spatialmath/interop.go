package spatialmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"
)

// CastVector3 converts every component of v to precision T with standard float conversion rounding.
func CastVector3[T, S Scalar](v Vector3[S]) Vector3[T] {
	return Vector3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// CastMatrix3 converts every element of m to precision T.
func CastMatrix3[T, S Scalar](m Matrix3[S]) Matrix3[T] {
	var out Matrix3[T]
	for i, v := range m {
		out[i] = T(v)
	}
	return out
}

// CastIsometry3 converts t to precision T.
func CastIsometry3[T, S Scalar](t Isometry3[S]) Isometry3[T] {
	return Isometry3[T]{Linear: CastMatrix3[T](t.Linear), Translation: CastVector3[T](t.Translation)}
}

// R3ToVec converts a golang/geo vector to precision S.
func R3ToVec[S Scalar](v r3.Vector) Vector3[S] {
	return Vector3[S]{S(v.X), S(v.Y), S(v.Z)}
}

// NumberToQuat converts a gonum quaternion to precision S.
func NumberToQuat[S Scalar](q quat.Number) Quaternion[S] {
	return Quaternion[S]{S(q.Real), S(q.Imag), S(q.Jmag), S(q.Kmag)}
}

// mathgl stores matrices column-major, so these transpose the index order on the way through.

// Mat3ToMgl64 converts m to a mathgl double precision matrix.
func Mat3ToMgl64(m Matrix3[float64]) mgl64.Mat3 {
	return mgl64.Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Mgl64ToMat3 converts a mathgl double precision matrix.
func Mgl64ToMat3(m mgl64.Mat3) Matrix3[float64] {
	return Matrix3[float64]{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Mat3ToMgl32 converts m to a mathgl single precision matrix.
func Mat3ToMgl32(m Matrix3[float32]) mgl32.Mat3 {
	return mgl32.Mat3{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// Mgl32ToMat3 converts a mathgl single precision matrix.
func Mgl32ToMat3(m mgl32.Mat3) Matrix3[float32] {
	return Matrix3[float32]{m[0], m[3], m[6], m[1], m[4], m[7], m[2], m[5], m[8]}
}

// QuatToMgl64 converts q to a mathgl double precision quaternion.
func QuatToMgl64(q Quaternion[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// QuatToMgl32 converts q to a mathgl single precision quaternion.
func QuatToMgl32(q Quaternion[float32]) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

// Mgl64ToQuat converts a mathgl double precision quaternion.
func Mgl64ToQuat(q mgl64.Quat) Quaternion[float64] {
	return Quaternion[float64]{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// Mgl32ToQuat converts a mathgl single precision quaternion.
func Mgl32ToQuat(q mgl32.Quat) Quaternion[float32] {
	return Quaternion[float32]{W: q.W, X: q.V[0], Y: q.V[1], Z: q.V[2]}
}

// VecToMgl64 converts v to a mathgl double precision vector.
func VecToMgl64(v Vector3[float64]) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Mgl64ToVec converts a mathgl double precision vector.
func Mgl64ToVec(v mgl64.Vec3) Vector3[float64] {
	return Vector3[float64]{v[0], v[1], v[2]}
}

// VecToMgl32 converts v to a mathgl single precision vector.
func VecToMgl32(v Vector3[float32]) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

// Mgl32ToVec converts a mathgl single precision vector.
func Mgl32ToVec(v mgl32.Vec3) Vector3[float32] {
	return Vector3[float32]{v[0], v[1], v[2]}
}
