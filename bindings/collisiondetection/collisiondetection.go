// Package collisiondetection registers the collision detection submodule on a host module.
package collisiondetection

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/spatialconv/bindings"
	"go.viam.com/spatialconv/bindings/fcl"
)

const (
	// SubmoduleName is the name of the submodule created on the host.
	SubmoduleName = "collision_detection"
	// FCLSubmoduleName is the name of the collision library namespace.
	FCLSubmoduleName = "fcl"
)

// Build creates collision_detection and its fcl namespace on host, then lets lib register its
// generic, model and utility bindings, in that order. Every group is attempted; failures are
// returned together.
func Build(host *bindings.Module, lib fcl.Library) error {
	if lib == nil {
		return errors.New("collision library is required to build the collision detection submodule")
	}
	m, err := host.DefSubmodule(SubmoduleName, "Collision detection submodule")
	if err != nil {
		return err
	}
	pyfcl, err := m.DefSubmodule(FCLSubmoduleName, "FCL submodule")
	if err != nil {
		return err
	}
	return multierr.Combine(
		errors.Wrap(lib.BuildFCL(pyfcl), "building fcl bindings"),
		errors.Wrap(lib.BuildModel(pyfcl), "building fcl model bindings"),
		errors.Wrap(lib.BuildUtils(pyfcl), "building fcl utility bindings"),
	)
}
