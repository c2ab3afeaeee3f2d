package interp

import (
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/scope"
	"github.com/glint-lang/glint/internal/value"
)

// execStmts runs stmts in order against env, stopping as soon as one
// produces a non-Normal signal or an error.
func (it *Interp) execStmts(stmts []parser.Stmt, env *scope.Environment) (signal, error) {
	for _, stmt := range stmts {
		sig, err := it.execStmt(stmt, env)
		if err != nil {
			return signal{}, err
		}
		if sig.kind != sigNormal {
			return sig, nil
		}
	}
	return normalSignal, nil
}

func (it *Interp) execStmt(stmt parser.Stmt, env *scope.Environment) (signal, error) {
	switch st := stmt.(type) {
	case *parser.ExprStmt:
		_, err := it.evalExpr(st.X, env)
		return normalSignal, err

	case *parser.IfStmt:
		cond, err := it.evalExpr(st.Cond, env)
		if err != nil {
			return signal{}, err
		}
		if isTrue(cond) {
			return it.execStmts(st.Then, env)
		}
		if st.Else != nil {
			return it.execStmts(st.Else, env)
		}
		return normalSignal, nil

	case *parser.WhileStmt:
		return it.execWhile(st, env)

	case *parser.ForStmt:
		return it.execFor(st, env)

	case *parser.ReturnStmt:
		if st.Value == nil {
			return returnSignal(value.Nil), nil
		}
		v, err := it.evalExpr(st.Value, env)
		if err != nil {
			return signal{}, err
		}
		return returnSignal(v), nil

	case *parser.BlockStmt:
		return it.execStmts(st.Statements, env)

	case *parser.BreakStmt:
		return breakSignal(), nil

	case *parser.ContinueStmt:
		return continueSignal(), nil

	default:
		return normalSignal, nil
	}
}

// execWhile loops while Cond is truthy. A Break signal from the body stops
// the loop (consumed here, not propagated); a Continue signal is likewise
// consumed and simply starts the next iteration; a Return propagates up
// unchanged so it keeps unwinding toward the enclosing call.
func (it *Interp) execWhile(st *parser.WhileStmt, env *scope.Environment) (signal, error) {
	for {
		cond, err := it.evalExpr(st.Cond, env)
		if err != nil {
			return signal{}, err
		}
		if !isTrue(cond) {
			return normalSignal, nil
		}
		sig, err := it.execStmts(st.Body, env)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return normalSignal, nil
		case sigReturn:
			return sig, nil
		}
	}
}

// execFor iterates Var over the Array produced by Iterable, binding it in a
// fresh child environment per element so closures created inside the body
// capture that iteration's value rather than a shared loop variable.
func (it *Interp) execFor(st *parser.ForStmt, env *scope.Environment) (signal, error) {
	iterable, err := it.evalExpr(st.Iterable, env)
	if err != nil {
		return signal{}, err
	}
	arr, ok := iterable.(*value.Array)
	if !ok {
		line, col := st.Iterable.Position()
		return signal{}, typeErr(line, col, "for loop requires a List, got %s", value.Describe(iterable))
	}

	for _, el := range arr.Elements {
		loopEnv := scope.New(env)
		loopEnv.Define(st.Var, el)
		sig, err := it.execStmts(st.Body, loopEnv)
		if err != nil {
			return signal{}, err
		}
		switch sig.kind {
		case sigBreak:
			return normalSignal, nil
		case sigReturn:
			return sig, nil
		}
	}
	return normalSignal, nil
}

// Run executes program directly in it.Globals: the top-level program is an
// implicit block, and assignments at the top level are meant to land in the
// global environment itself, not a scope that's discarded when the program
// ends.
func (it *Interp) Run(program []parser.Stmt) error {
	it.PushFrame(Frame{Name: "[global]"})
	defer it.PopFrame()

	sig, err := it.execStmts(program, it.Globals)
	if err != nil {
		return err
	}
	if sig.kind == sigBreak || sig.kind == sigContinue {
		return typeErr(0, 0, "%s outside of a loop", signalName(sig.kind))
	}
	// sigReturn at the top level simply ends the program; its value is
	// discarded, matching "falling off the end" of the implicit top-level
	// function.
	return nil
}

func signalName(k signalKind) string {
	if k == sigBreak {
		return "break"
	}
	return "continue"
}
