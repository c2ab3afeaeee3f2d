// Package interp implements the tree-walking evaluator: it executes an
// already-parsed, already-checked program against a chain of lexical
// scope.Environments and produces runtime Values and classified errors.
//
// Control flow (break, continue, return) is carried as an explicit signal
// value returned alongside an error from every statement-executing
// function, rather than through panics: a loop inspects the signal its
// body produced and decides whether to keep iterating, stop, or let the
// signal keep unwinding toward a function call boundary.
package interp

import (
	"bufio"
	"io"

	"github.com/glint-lang/glint/internal/scope"
)

// Interp holds everything one program run shares: the global environment,
// the I/O streams built-ins read and write, and the call stack
// stacktrace() inspects.
type Interp struct {
	Globals *scope.Environment
	Out     io.Writer
	In      *bufio.Reader

	stack callStack
}

// New creates an Interp with an empty global environment. Built-ins are
// registered into Globals by the caller (package stdlib) before running any
// program, so this package never has to know the built-in catalog itself.
func New(out io.Writer, in io.Reader) *Interp {
	return &Interp{
		Globals: scope.New(nil),
		Out:     out,
		In:      bufio.NewReader(in),
	}
}

// PushFrame records a call-site entry. callFunction calls it for every
// native and script call; Run calls it for the "[global]" frame.
func (it *Interp) PushFrame(f Frame) { it.stack.push(f) }

// PopFrame removes the most recently pushed frame.
func (it *Interp) PopFrame() { it.stack.pop() }

// StackTrace renders the current call stack, outermost frame first.
func (it *Interp) StackTrace() string { return it.stack.render() }
