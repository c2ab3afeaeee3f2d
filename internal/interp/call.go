package interp

import (
	"github.com/glint-lang/glint/internal/function"
	"github.com/glint-lang/glint/internal/scope"
	"github.com/glint-lang/glint/internal/value"
)

// callFunction invokes fn with already-evaluated args, pushing and popping
// a call-stack frame around both native and script calls so stacktrace()
// sees every call that is in progress.
func (it *Interp) callFunction(fn *function.Function, args []value.Value, line, column int) (value.Value, error) {
	it.PushFrame(Frame{Name: fn.String(), Line: line, Column: column})
	defer it.PopFrame()

	if fn.IsNative() {
		return fn.Native(args)
	}
	return it.callScript(fn, args, line, column)
}

// callScript binds params into a fresh environment parented to the
// function's captured closure (missing trailing args become Nil; extra
// args are ignored), then runs the body directly in that environment — no
// further wrapping scope, since the call's own parameter-binding
// environment already serves that purpose.
func (it *Interp) callScript(fn *function.Function, args []value.Value, line, column int) (value.Value, error) {
	local := scope.New(fn.Env)
	for i, p := range fn.Params {
		var v value.Value = value.Nil
		if i < len(args) {
			v = args[i]
		}
		local.DefineOrOverwrite(p, v)
	}

	sig, err := it.execStmts(fn.Body, local)
	if err != nil {
		return nil, err
	}
	switch sig.kind {
	case sigReturn:
		return sig.value, nil
	case sigBreak, sigContinue:
		return nil, typeErr(line, column, "%s outside of a loop", signalName(sig.kind))
	default:
		return value.Nil, nil
	}
}
