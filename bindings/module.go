// Package bindings exposes the conversions, and the collision submodule supplied by an external
// library, to a scripting host as a tree of named modules.
package bindings

import (
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/multierr"

	"go.viam.com/spatialconv/logging"
)

// Function is a single callable registered on a Module.
type Function struct {
	Name string
	Doc  string
	Fn   interface{}
}

// Module is a named registry node holding functions and submodules. Registration order is kept so
// a host can expose entries in the order they were defined.
type Module struct {
	name   string
	doc    string
	parent *Module
	logger logging.Logger

	mu         sync.RWMutex
	functions  map[string]*Function
	funcOrder  []string
	submodules map[string]*Module
	subOrder   []string
}

// NewModule returns an empty top-level module.
func NewModule(name, doc string, logger logging.Logger) *Module {
	return &Module{
		name:       name,
		doc:        doc,
		logger:     logger,
		functions:  map[string]*Function{},
		submodules: map[string]*Module{},
	}
}

// Name returns the module's own name.
func (m *Module) Name() string {
	return m.name
}

// Doc returns the module's doc string.
func (m *Module) Doc() string {
	return m.doc
}

// Path returns the dotted path of the module from the top-level module.
func (m *Module) Path() string {
	if m.parent == nil {
		return m.name
	}
	return m.parent.Path() + "." + m.name
}

func validateName(name string) error {
	if name == "" || strings.Contains(name, ".") {
		return errors.Errorf("invalid binding name %q", name)
	}
	return nil
}

// DefSubmodule returns the submodule called name, creating it if it does not exist yet. The doc of
// an existing submodule is left unchanged.
func (m *Module) DefSubmodule(name, doc string) (*Module, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if sub, ok := m.submodules[name]; ok {
		return sub, nil
	}
	if _, ok := m.functions[name]; ok {
		return nil, errors.Errorf("%s already has a function named %s", m.Path(), name)
	}
	sub := NewModule(name, doc, m.logger)
	sub.parent = m
	m.submodules[name] = sub
	m.subOrder = append(m.subOrder, name)
	m.logger.Debugw("defined submodule", "path", sub.Path())
	return sub, nil
}

// Def registers fn under name. Names are unique across the functions and submodules of a module.
func (m *Module) Def(name, doc string, fn interface{}) error {
	if err := validateName(name); err != nil {
		return err
	}
	if v := reflect.ValueOf(fn); !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return errors.Errorf("binding %q has no function", name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.functions[name]; ok {
		return errors.Errorf("trying to register two functions named %s in %s", name, m.Path())
	}
	if _, ok := m.submodules[name]; ok {
		return errors.Errorf("%s already has a submodule named %s", m.Path(), name)
	}
	m.functions[name] = &Function{Name: name, Doc: doc, Fn: fn}
	m.funcOrder = append(m.funcOrder, name)
	m.logger.Debugw("defined function", "module", m.Path(), "name", name)
	return nil
}

// DefAll registers every function and returns the combined error of those that failed.
func (m *Module) DefAll(fns ...Function) error {
	var errs error
	for _, f := range fns {
		errs = multierr.Append(errs, m.Def(f.Name, f.Doc, f.Fn))
	}
	return errs
}

// Function returns the function registered directly on m under name.
func (m *Module) Function(name string) (*Function, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.functions[name]
	return f, ok
}

// Submodule returns the direct submodule called name.
func (m *Module) Submodule(name string) (*Module, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.submodules[name]
	return sub, ok
}

// Functions returns the functions of m in registration order.
func (m *Module) Functions() []*Function {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Map(m.funcOrder, func(name string, _ int) *Function { return m.functions[name] })
}

// Submodules returns the submodules of m in registration order.
func (m *Module) Submodules() []*Module {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return lo.Map(m.subOrder, func(name string, _ int) *Module { return m.submodules[name] })
}

// Lookup resolves a dotted path relative to m, such as "collision_detection.fcl.distance".
func (m *Module) Lookup(path string) (*Function, error) {
	parts := strings.Split(path, ".")
	cur := m
	for _, part := range parts[:len(parts)-1] {
		sub, ok := cur.Submodule(part)
		if !ok {
			return nil, errors.Errorf("no submodule %q in %s", part, cur.Path())
		}
		cur = sub
	}
	f, ok := cur.Function(parts[len(parts)-1])
	if !ok {
		return nil, errors.Errorf("no function %q in %s", parts[len(parts)-1], cur.Path())
	}
	return f, nil
}

// Walk calls visit for every module of the tree rooted at m, parents before children and siblings
// in registration order.
func (m *Module) Walk(visit func(*Module)) {
	visit(m)
	for _, sub := range m.Submodules() {
		sub.Walk(visit)
	}
}

// FunctionPaths returns the dotted path of every function in the tree, sorted.
func (m *Module) FunctionPaths() []string {
	var paths []string
	m.Walk(func(mod *Module) {
		for _, f := range mod.Functions() {
			paths = append(paths, mod.Path()+"."+f.Name)
		}
	})
	sort.Strings(paths)
	return paths
}
