// Package function defines the Function runtime value. It is kept separate
// from package value so that value itself never has to import scope or
// parser: a Function is a value.Value (it implements the interface
// structurally), but building one requires both a captured Environment and
// a parsed function body, which would otherwise create an import cycle
// through scope -> value.
package function

import (
	"fmt"
	"strings"

	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/scope"
	"github.com/glint-lang/glint/internal/value"
)

// Native is a built-in function body: it receives already-evaluated
// arguments and returns a result or a classified error.
type Native func(args []value.Value) (value.Value, error)

// Function is either a script function (Params/Body/Env populated, Native
// nil) or a native function (Native populated, Params/Body/Env zero).
// Exactly one form is populated per instance.
type Function struct {
	Name   string
	Params []string
	Body   []parser.Stmt
	Env    *scope.Environment

	Native Native
}

// NewScript builds a script function, capturing env by reference so that
// later assignments to names visible from env remain observable inside the
// function body (closure semantics).
func NewScript(name string, params []string, body []parser.Stmt, env *scope.Environment) *Function {
	return &Function{Name: name, Params: params, Body: body, Env: env}
}

// NewNative wraps a Go function as a built-in.
func NewNative(name string, fn Native) *Function {
	return &Function{Name: name, Native: fn}
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }
func (*Function) Truthy() bool       { return true }

func (f *Function) String() string {
	if f.Name != "" {
		return fmt.Sprintf("<function %s>", f.Name)
	}
	return "<function>"
}

func (f *Function) Inspect() string {
	if f.Native != nil {
		return fmt.Sprintf("<native function %s>", f.Name)
	}
	return fmt.Sprintf("<function %s(%s)>", f.Name, strings.Join(f.Params, ", "))
}

// IsNative reports whether this is a native (built-in) function rather than
// a script function with a captured environment.
func (f *Function) IsNative() bool { return f.Native != nil }

// Same reports reference identity, used by the == / != operators: two
// Function values are equal only when they are literally the same object.
func Same(a, b *Function) bool { return a == b }
