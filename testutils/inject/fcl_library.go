// Package inject provides injectable stand-ins for the external collaborators, for use in tests.
package inject

import (
	"go.viam.com/spatialconv/bindings"
)

// FCLLibrary is an injected collision library. A nil func registers nothing for that group.
type FCLLibrary struct {
	BuildFCLFunc   func(m *bindings.Module) error
	BuildModelFunc func(m *bindings.Module) error
	BuildUtilsFunc func(m *bindings.Module) error
}

// BuildFCL calls the injected BuildFCL or does nothing.
func (lib *FCLLibrary) BuildFCL(m *bindings.Module) error {
	if lib.BuildFCLFunc == nil {
		return nil
	}
	return lib.BuildFCLFunc(m)
}

// BuildModel calls the injected BuildModel or does nothing.
func (lib *FCLLibrary) BuildModel(m *bindings.Module) error {
	if lib.BuildModelFunc == nil {
		return nil
	}
	return lib.BuildModelFunc(m)
}

// BuildUtils calls the injected BuildUtils or does nothing.
func (lib *FCLLibrary) BuildUtils(m *bindings.Module) error {
	if lib.BuildUtilsFunc == nil {
		return nil
	}
	return lib.BuildUtilsFunc(m)
}
