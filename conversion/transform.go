// Package conversion moves rigid transforms and mass properties between the planner's pose vectors
// and isometries, the dynamics engine's native types and the data of a robot description file.
//
// Every function is pure and instantiated for both float32 and float64. None of them validates its
// input: quaternions must already be unit norm and rotation matrices proper orthonormal, otherwise
// the output is silently wrong.
package conversion

import (
	"github.com/golang/geo/r3"

	"go.viam.com/spatialconv/dynamics"
	"go.viam.com/spatialconv/referenceframe/urdf"
	"go.viam.com/spatialconv/spatialmath"
)

// ToPoseVec flattens pose into [tx, ty, tz, qw, qx, qy, qz].
func ToPoseVec[S spatialmath.Scalar](pose spatialmath.Isometry3[S]) spatialmath.PoseVector[S] {
	q := spatialmath.QuaternionFromMatrix(pose.Linear)
	return spatialmath.NewPoseVector(pose.Translation, q)
}

// ToIsometry rebuilds the rigid transform of a pose vector. The quaternion at indices 3-6 is used as
// is; a non-unit quaternion produces a non-orthonormal rotation.
func ToIsometry[S spatialmath.Scalar](poseVec spatialmath.PoseVector[S]) spatialmath.Isometry3[S] {
	return spatialmath.Isometry3[S]{
		Linear:      poseVec.Quaternion().RotationMatrix(),
		Translation: poseVec.Translation(),
	}
}

// SE3ToIsometry copies the rotation and translation of an engine transform.
func SE3ToIsometry[S spatialmath.Scalar](m dynamics.SE3[S]) spatialmath.Isometry3[S] {
	return spatialmath.Isometry3[S]{Linear: m.Rotation, Translation: m.Translation}
}

// PoseToIsometry converts a described pose to precision S.
func PoseToIsometry[S spatialmath.Scalar](pose urdf.Pose) spatialmath.Isometry3[S] {
	r, p := poseComponents[S](pose)
	return spatialmath.Isometry3[S]{Linear: r, Translation: p}
}

// ToSE3 copies the rotation and translation of an isometry into an engine transform.
func ToSE3[S spatialmath.Scalar](pose spatialmath.Isometry3[S]) dynamics.SE3[S] {
	return dynamics.NewSE3(pose.Linear, pose.Translation)
}

// PoseToSE3 converts a described pose straight to an engine transform. The result is identical to
// ToSE3(PoseToIsometry[S](pose)).
func PoseToSE3[S spatialmath.Scalar](pose urdf.Pose) dynamics.SE3[S] {
	return dynamics.NewSE3(poseComponents[S](pose))
}

// poseComponents narrows or keeps each field of pose at precision S before any arithmetic, so the
// rotation matrix is built entirely in S.
func poseComponents[S spatialmath.Scalar](pose urdf.Pose) (spatialmath.Matrix3[S], spatialmath.Vector3[S]) {
	return describedRotation[S](pose.Rotation).RotationMatrix(), describedPosition[S](pose.Position)
}

func describedRotation[S spatialmath.Scalar](r urdf.Rotation) spatialmath.Quaternion[S] {
	return spatialmath.NumberToQuat[S](r.Number())
}

func describedPosition[S spatialmath.Scalar](p r3.Vector) spatialmath.Vector3[S] {
	return spatialmath.R3ToVec[S](p)
}
