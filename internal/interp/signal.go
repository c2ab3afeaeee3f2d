package interp

import "github.com/glint-lang/glint/internal/value"

// signalKind tags the non-local control transfer produced by executing a
// statement: Normal means "keep going", the other three unwind to the
// nearest construct that can absorb them (a loop for Break/Continue, a
// function call for Return).
type signalKind int

const (
	sigNormal signalKind = iota
	sigBreak
	sigContinue
	sigReturn
)

// signal is returned by every statement-executing function instead of using
// panics or exceptions for control flow: a loop or function body inspects
// the signal its last statement produced and decides whether to keep
// executing, unwind, or absorb it.
type signal struct {
	kind  signalKind
	value value.Value
}

var normalSignal = signal{kind: sigNormal}

func breakSignal() signal    { return signal{kind: sigBreak} }
func continueSignal() signal { return signal{kind: sigContinue} }
func returnSignal(v value.Value) signal { return signal{kind: sigReturn, value: v} }
