// Package stdlib registers Glint's built-in function catalog into an
// interpreter's global environment: I/O, numeric utilities, string
// utilities, array utilities, and the system stacktrace() introspection
// built-in. None of this lives in package interp itself, mirroring the
// teacher's own separation between the evaluator and its std package of
// registered callables.
package stdlib

import (
	"github.com/glint-lang/glint/internal/function"
	"github.com/glint-lang/glint/internal/interp"
)

// Register installs every built-in into it.Globals, ready to run a program.
// It is the function callers pass to interp.Interpret as the registration
// hook.
func Register(it *interp.Interp) {
	registerIO(it)
	registerUtility(it)
	registerMath(it)
	registerStrings(it)
	registerArrays(it)
	registerSystem(it)
}

func define(it *interp.Interp, name string, fn function.Native) {
	it.Globals.Define(name, function.NewNative(name, fn))
}
