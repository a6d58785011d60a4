// Package host assembles the top-level module exposed to a scripting caller.
package host

import (
	"go.viam.com/spatialconv/bindings"
	"go.viam.com/spatialconv/bindings/collisiondetection"
	"go.viam.com/spatialconv/bindings/fcl"
	"go.viam.com/spatialconv/logging"
)

// Build returns the top-level module: the conversions directly on it, followed by the collision
// detection submodule.
func Build(name string, lib fcl.Library, logger logging.Logger) (*bindings.Module, error) {
	m := bindings.NewModule(name, "Motion planning spatial conversions", logger.Sublogger("bindings"))
	if err := bindings.RegisterConversions(m); err != nil {
		return nil, err
	}
	if err := collisiondetection.Build(m, lib); err != nil {
		return nil, err
	}
	logger.Debugw("built module", "name", name, "functions", len(m.FunctionPaths()))
	return m, nil
}
