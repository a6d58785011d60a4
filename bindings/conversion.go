package bindings

import (
	"github.com/pkg/errors"

	"go.viam.com/spatialconv/conversion"
	"go.viam.com/spatialconv/dynamics"
	"go.viam.com/spatialconv/referenceframe/urdf"
	"go.viam.com/spatialconv/spatialmath"
)

// PoseVecLen is the length of a flat pose vector at the binding surface.
const PoseVecLen = 7

// ToPoseVec returns pose as a flat [tx, ty, tz, qw, qx, qy, qz] slice.
func ToPoseVec(pose spatialmath.Isometry3[float64]) []float64 {
	poseVec := conversion.ToPoseVec(pose)
	return poseVec[:]
}

// ToIsometry rebuilds a rigid transform from a flat pose vector. The quaternion is not normalized.
func ToIsometry(poseVec []float64) (spatialmath.Isometry3[float64], error) {
	if len(poseVec) != PoseVecLen {
		return spatialmath.Isometry3[float64]{}, errors.Errorf("pose vector must have %d elements, got %d", PoseVecLen, len(poseVec))
	}
	return conversion.ToIsometry(spatialmath.PoseVector[float64](poseVec)), nil
}

// RegisterConversions defines the double precision conversions on m.
func RegisterConversions(m *Module) error {
	return m.DefAll(
		Function{
			Name: "to_pose_vec",
			Doc:  "Converts an isometry to a pose vector [px, py, pz, qw, qx, qy, qz].",
			Fn:   ToPoseVec,
		},
		Function{
			Name: "to_isometry",
			Doc:  "Converts a pose vector [px, py, pz, qw, qx, qy, qz] to an isometry. The quaternion must be normalized.",
			Fn:   ToIsometry,
		},
		Function{
			Name: "se3_to_isometry",
			Doc:  "Converts a dynamics SE3 transform to an isometry.",
			Fn:   conversion.SE3ToIsometry[float64],
		},
		Function{
			Name: "pose_to_isometry",
			Doc:  "Converts a URDF pose to an isometry.",
			Fn:   conversion.PoseToIsometry[float64],
		},
		Function{
			Name: "to_se3",
			Doc:  "Converts an isometry to a dynamics SE3 transform.",
			Fn:   conversion.ToSE3[float64],
		},
		Function{
			Name: "pose_to_se3",
			Doc:  "Converts a URDF pose to a dynamics SE3 transform.",
			Fn:   conversion.PoseToSE3[float64],
		},
		Function{
			Name: "convert_inertial",
			Doc:  "Converts a URDF inertial, which may be absent, to a dynamics spatial inertia.",
			Fn: func(y *urdf.Inertial) dynamics.Inertia[float64] {
				return conversion.ConvertOptionalInertial[float64](y)
			},
		},
	)
}
