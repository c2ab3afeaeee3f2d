// Package scope implements the interpreter's lexical environments: the
// chain of named-slot mappings used for variable resolution, assignment,
// and closure capture.
package scope

import "github.com/glint-lang/glint/internal/value"

// Environment is one link in the lexical scope chain. Every function call
// and for-loop iteration gets its own Environment; if/while bodies and
// blocks run in the enclosing one. Parent points toward the enclosing
// scope, or is nil for the global environment.
//
// Environments are shared by reference wherever a closure captures one: a
// function literal stores a pointer to the Environment active at the point
// it was evaluated, not a snapshot of its bindings, so later assignments to
// captured names remain visible inside the function.
type Environment struct {
	vars   map[string]value.Value
	Parent *Environment
}

// New creates an Environment nested inside parent. Pass nil to create the
// global environment.
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), Parent: parent}
}

// Define binds name to v in this environment only. It fails if name is
// already bound in this environment (not parents), leaving the existing
// binding unchanged.
func (e *Environment) Define(name string, v value.Value) bool {
	if _, exists := e.vars[name]; exists {
		return false
	}
	e.vars[name] = v
	return true
}

// DefineOrOverwrite binds name to v in this environment, replacing any
// existing binding. Used for assignment's implicit-declare fallback: "if
// Assign fails anywhere in the chain, Define in the current environment" —
// at the point that fallback runs there cannot already be a binding here
// (Assign would have found it), so this and Define agree in practice; this
// variant exists to make that call site read as "bind, full stop".
func (e *Environment) DefineOrOverwrite(name string, v value.Value) {
	e.vars[name] = v
}

// Assign searches this environment and its parents for name and updates the
// nearest one that has it. It reports whether any scope in the chain held
// the name.
func (e *Environment) Assign(name string, v value.Value) bool {
	for env := e; env != nil; env = env.Parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = v
			return true
		}
	}
	return false
}

// Get searches this environment and its parents for name.
func (e *Environment) Get(name string) (value.Value, bool) {
	for env := e; env != nil; env = env.Parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}
