package host

import (
	"testing"

	"go.uber.org/zap/zaptest/observer"
	"go.viam.com/test"

	"go.viam.com/spatialconv/bindings"
	"go.viam.com/spatialconv/logging"
	"go.viam.com/spatialconv/testutils/inject"
)

func TestBuild(t *testing.T) {
	logger, logs := logging.NewObservedTestLogger(t)
	lib := &inject.FCLLibrary{
		BuildFCLFunc: func(m *bindings.Module) error {
			return m.Def("distance", "", func() float64 { return 0 })
		},
	}
	m, err := Build("mplib", lib, logger)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, m.Path(), test.ShouldEqual, "mplib")

	subs := m.Submodules()
	test.That(t, subs, test.ShouldHaveLength, 1)
	test.That(t, subs[0].Name(), test.ShouldEqual, "collision_detection")

	_, err = m.Lookup("to_pose_vec")
	test.That(t, err, test.ShouldBeNil)
	_, err = m.Lookup("collision_detection.fcl.distance")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logs.FilterMessage("built module").Len(), test.ShouldEqual, 1)
	test.That(t, logs.Filter(func(e observer.LoggedEntry) bool {
		return e.LoggerName == "bindings"
	}).Len(), test.ShouldBeGreaterThan, 0)
}

func TestBuildPropagatesLibraryErrors(t *testing.T) {
	lib := &inject.FCLLibrary{
		BuildUtilsFunc: func(m *bindings.Module) error {
			return m.Def("to.bad", "", func() {})
		},
	}
	_, err := Build("mplib", lib, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}
