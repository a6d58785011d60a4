package bindings

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/spatialconv/dynamics"
	"go.viam.com/spatialconv/logging"
	"go.viam.com/spatialconv/referenceframe/urdf"
	"go.viam.com/spatialconv/spatialmath"
)

func TestToPoseVecBinding(t *testing.T) {
	pose := spatialmath.NewIsometry3(
		spatialmath.Matrix3[float64]{-1, 0, 0, 0, -1, 0, 0, 0, 1},
		spatialmath.Vector3[float64]{0.1, 0.2, 0.3},
	)
	test.That(t, ToPoseVec(pose), test.ShouldResemble, []float64{0.1, 0.2, 0.3, 0, 0, 0, 1})
	test.That(t, ToPoseVec(spatialmath.IdentityIsometry3[float64]()), test.ShouldResemble, []float64{0, 0, 0, 1, 0, 0, 0})

	back, err := ToIsometry(ToPoseVec(pose))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, back.AlmostEqual(pose, 1e-12), test.ShouldBeTrue)
}

func TestToIsometryBindingLength(t *testing.T) {
	_, err := ToIsometry([]float64{0, 0, 0, 1, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "7 elements, got 6")

	_, err = ToIsometry(nil)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRegisterConversions(t *testing.T) {
	root := NewModule("mplib", "", logging.NewTestLogger(t))
	test.That(t, RegisterConversions(root), test.ShouldBeNil)

	names := []string{}
	for _, f := range root.Functions() {
		names = append(names, f.Name)
		test.That(t, f.Doc, test.ShouldNotBeEmpty)
	}
	test.That(t, names, test.ShouldResemble, []string{
		"to_pose_vec", "to_isometry", "se3_to_isometry", "pose_to_isometry", "to_se3", "pose_to_se3", "convert_inertial",
	})
	// registering twice reports every duplicate
	err := RegisterConversions(root)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "convert_inertial")

	f, err := root.Lookup("pose_to_se3")
	test.That(t, err, test.ShouldBeNil)
	pose := urdf.PoseFromXYZRPY([3]float64{1, 0, 0}, [3]float64{0, 0, math.Pi})
	m := f.Fn.(func(urdf.Pose) dynamics.SE3[float64])(pose)
	test.That(t, m.Translation, test.ShouldResemble, spatialmath.Vector3[float64]{1, 0, 0})

	f, err = root.Lookup("convert_inertial")
	test.That(t, err, test.ShouldBeNil)
	convert := f.Fn.(func(*urdf.Inertial) dynamics.Inertia[float64])
	test.That(t, convert(nil).IsZero(), test.ShouldBeTrue)
	test.That(t, convert(&urdf.Inertial{Mass: 3, Origin: urdf.IdentityPose()}).Mass, test.ShouldEqual, 3.)
}
