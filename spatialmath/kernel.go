package spatialmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// kernel is the matrix and quaternion arithmetic of one precision.
type kernel[S Scalar] interface {
	mul(a, b Matrix3[S]) Matrix3[S]
	mulVec(m Matrix3[S], v Vector3[S]) Vector3[S]
	add(a, b Matrix3[S]) Matrix3[S]
	scale(m Matrix3[S], s S) Matrix3[S]
	transpose(m Matrix3[S]) Matrix3[S]
	det(m Matrix3[S]) S
	quatToMat(q Quaternion[S]) Matrix3[S]
	matToQuat(m Matrix3[S]) Quaternion[S]
}

func kernelFor[S Scalar]() kernel[S] {
	var zero S
	if _, ok := any(zero).(float32); ok {
		return any(kernel32{}).(kernel[S])
	}
	return any(kernel64{}).(kernel[S])
}

type kernel32 struct{}

func (kernel32) mul(a, b Matrix3[float32]) Matrix3[float32] {
	return Mgl32ToMat3(Mat3ToMgl32(a).Mul3(Mat3ToMgl32(b)))
}

func (kernel32) mulVec(m Matrix3[float32], v Vector3[float32]) Vector3[float32] {
	return Mgl32ToVec(Mat3ToMgl32(m).Mul3x1(VecToMgl32(v)))
}

func (kernel32) add(a, b Matrix3[float32]) Matrix3[float32] {
	return Mgl32ToMat3(Mat3ToMgl32(a).Add(Mat3ToMgl32(b)))
}

func (kernel32) scale(m Matrix3[float32], s float32) Matrix3[float32] {
	return Mgl32ToMat3(Mat3ToMgl32(m).Mul(s))
}

func (kernel32) transpose(m Matrix3[float32]) Matrix3[float32] {
	return Mgl32ToMat3(Mat3ToMgl32(m).Transpose())
}

func (kernel32) det(m Matrix3[float32]) float32 {
	return Mat3ToMgl32(m).Det()
}

func (kernel32) quatToMat(q Quaternion[float32]) Matrix3[float32] {
	return Mgl32ToMat3(QuatToMgl32(q).Mat4().Mat3())
}

func (kernel32) matToQuat(m Matrix3[float32]) Quaternion[float32] {
	return Mgl32ToQuat(mgl32.Mat4ToQuat(Mat3ToMgl32(m).Mat4()))
}

type kernel64 struct{}

func (kernel64) mul(a, b Matrix3[float64]) Matrix3[float64] {
	return Mgl64ToMat3(Mat3ToMgl64(a).Mul3(Mat3ToMgl64(b)))
}

func (kernel64) mulVec(m Matrix3[float64], v Vector3[float64]) Vector3[float64] {
	return Mgl64ToVec(Mat3ToMgl64(m).Mul3x1(VecToMgl64(v)))
}

func (kernel64) add(a, b Matrix3[float64]) Matrix3[float64] {
	return Mgl64ToMat3(Mat3ToMgl64(a).Add(Mat3ToMgl64(b)))
}

func (kernel64) scale(m Matrix3[float64], s float64) Matrix3[float64] {
	return Mgl64ToMat3(Mat3ToMgl64(m).Mul(s))
}

func (kernel64) transpose(m Matrix3[float64]) Matrix3[float64] {
	return Mgl64ToMat3(Mat3ToMgl64(m).Transpose())
}

func (kernel64) det(m Matrix3[float64]) float64 {
	return Mat3ToMgl64(m).Det()
}

func (kernel64) quatToMat(q Quaternion[float64]) Matrix3[float64] {
	return Mgl64ToMat3(QuatToMgl64(q).Mat4().Mat3())
}

func (kernel64) matToQuat(m Matrix3[float64]) Quaternion[float64] {
	return Mgl64ToQuat(mgl64.Mat4ToQuat(Mat3ToMgl64(m).Mat4()))
}
