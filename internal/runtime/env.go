package runtime

import "golox/internal/value"

// Environment represents a variable scope with a parent chain.
type Environment struct {
	values map[string]value.Value
	parent *Environment
}

// NewEnvironment creates a new environment with an optional parent scope.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]value.Value),
		parent: parent,
	}
}

// Define binds a name in the current scope, shadowing any outer binding
// and silently replacing an existing one in this scope.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get looks up a variable by walking the scope chain outward.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if val, exists := env.values[name]; exists {
			return val, true
		}
	}
	return nil, false
}

// Assign mutates the nearest existing binding of name. It reports whether
// a binding was found; assignment never creates one.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, exists := env.values[name]; exists {
			env.values[name] = v
			return true
		}
	}
	return false
}
