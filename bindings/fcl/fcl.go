// Package fcl describes the binding surface contributed by the external collision library. The
// library owns every shape, object and query in this namespace; transforms handed to it come from
// the conversion package.
package fcl

import "go.viam.com/spatialconv/bindings"

// Library registers the collision library's own API onto the fcl submodule, as three groups.
type Library interface {
	// BuildFCL registers the generic library bindings: geometries, collision objects and queries.
	BuildFCL(m *bindings.Module) error
	// BuildModel registers the model bindings, such as a robot's collision model.
	BuildModel(m *bindings.Module) error
	// BuildUtils registers the utility bindings, such as mesh loaders.
	BuildUtils(m *bindings.Module) error
}
