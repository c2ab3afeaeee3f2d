package interp

import (
	"github.com/glint-lang/glint/internal/function"
	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/scope"
	"github.com/glint-lang/glint/internal/value"
)

func (it *Interp) evalExpr(expr parser.Expr, env *scope.Environment) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		return value.Number(e.Value), nil
	case *parser.StringExpr:
		return value.String(e.Value), nil
	case *parser.BoolExpr:
		return value.Bool(e.Value), nil
	case *parser.NilExpr:
		return value.Nil, nil

	case *parser.VariableExpr:
		v, ok := env.Get(e.Name)
		if !ok {
			line, col := e.Position()
			return nil, nameErr(line, col, "undefined name %q", e.Name)
		}
		return v, nil

	case *parser.UnaryExpr:
		return it.evalUnary(e, env)

	case *parser.BinaryExpr:
		return it.evalBinary(e, env)

	case *parser.CallExpr:
		return it.evalCall(e, env)

	case *parser.ListExpr:
		elements := make([]value.Value, len(e.Elements))
		for i, el := range e.Elements {
			v, err := it.evalExpr(el, env)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return value.NewArray(elements), nil

	case *parser.FunctionExpr:
		return function.NewScript("", e.Params, e.Body, env), nil

	case *parser.AssignExpr:
		return it.evalAssign(e, env)

	case *parser.IndexExpr:
		return it.evalIndex(e, env)

	case *parser.SliceExpr:
		return it.evalSlice(e, env)

	default:
		return value.Nil, nil
	}
}

func (it *Interp) evalUnary(e *parser.UnaryExpr, env *scope.Environment) (value.Value, error) {
	line, col := e.Position()

	if e.Op == lexer.NOT {
		operand, err := it.evalExpr(e.Operand, env)
		if err != nil {
			return nil, err
		}
		return logicalNot(operand), nil
	}

	operand, err := it.evalExpr(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case lexer.MINUS:
		return negate(operand, line, col)
	case lexer.PLUS:
		return identity(operand, line, col)
	default:
		return nil, typeErr(line, col, "unsupported unary operator %s", e.Op)
	}
}

func (it *Interp) evalBinary(e *parser.BinaryExpr, env *scope.Environment) (value.Value, error) {
	line, col := e.Position()

	// and/or short-circuit and return whichever operand decided the
	// result, not a coerced Bool.
	if e.Op == lexer.AND {
		left, err := it.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !isTrue(left) {
			return left, nil
		}
		return it.evalExpr(e.Right, env)
	}
	if e.Op == lexer.OR {
		left, err := it.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if isTrue(left) {
			return left, nil
		}
		return it.evalExpr(e.Right, env)
	}

	left, err := it.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case lexer.EQ:
		return value.Bool(isEqual(left, right)), nil
	case lexer.NEQ:
		return value.Bool(!isEqual(left, right)), nil
	case lexer.PLUS:
		return add(left, right, line, col)
	case lexer.MINUS:
		return subtract(left, right, line, col)
	case lexer.STAR:
		return multiply(left, right, line, col)
	case lexer.SLASH:
		return divide(left, right, line, col)
	case lexer.PERCENT:
		return mod(left, right, line, col)
	case lexer.CARET:
		return powerOf(left, right, line, col)
	case lexer.LT:
		return compare(left, right, line, col, true, false)
	case lexer.LE:
		return compare(left, right, line, col, true, true)
	case lexer.GT:
		return compare(left, right, line, col, false, false)
	case lexer.GE:
		return compare(left, right, line, col, false, true)
	default:
		return nil, typeErr(line, col, "unsupported binary operator %s", e.Op)
	}
}

func (it *Interp) evalCall(e *parser.CallExpr, env *scope.Environment) (value.Value, error) {
	line, col := e.Position()

	callee, err := it.evalExpr(e.Callee, env)
	if err != nil {
		return nil, err
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, callErr(line, col, "call of non-function value: %s", value.Describe(callee))
	}

	args := make([]value.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := it.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	return it.callFunction(fn, args, line, col)
}

// evalAssign evaluates Right, then tries to update Name in the nearest
// enclosing scope that already has it; if no scope in the chain has it,
// this assignment implicitly declares it in the current (innermost) scope.
func (it *Interp) evalAssign(e *parser.AssignExpr, env *scope.Environment) (value.Value, error) {
	right, err := it.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	if e.Op == lexer.ASSIGN {
		// A freshly-created, still-anonymous script function takes the
		// name it's first bound to, so stacktrace() shows something more
		// useful than "<function>" for the common `name = function(...) ...`
		// form.
		if fn, ok := right.(*function.Function); ok && !fn.IsNative() && fn.Name == "" {
			fn.Name = e.Name
		}
		if !env.Assign(e.Name, right) {
			env.DefineOrOverwrite(e.Name, right)
		}
		return right, nil
	}

	// Compound assignment desugars to `name = name op right`: it reads the
	// current value of Name first, so the name must already be visible.
	line, col := e.Position()
	current, ok := env.Get(e.Name)
	if !ok {
		return nil, nameErr(line, col, "undefined name %q", e.Name)
	}
	op, ok := binaryOpFor[e.Op]
	if !ok {
		return nil, typeErr(line, col, "unsupported compound-assignment operator %s", e.Op)
	}
	result, err := applyBinaryOp(op, current, right, line, col)
	if err != nil {
		return nil, err
	}
	if !env.Assign(e.Name, result) {
		env.DefineOrOverwrite(e.Name, result)
	}
	return result, nil
}

// binaryOpFor maps a compound-assignment token to the binary operator it
// desugars to.
var binaryOpFor = map[lexer.Kind]lexer.Kind{
	lexer.PLUS_EQ:    lexer.PLUS,
	lexer.MINUS_EQ:   lexer.MINUS,
	lexer.STAR_EQ:    lexer.STAR,
	lexer.SLASH_EQ:   lexer.SLASH,
	lexer.PERCENT_EQ: lexer.PERCENT,
	lexer.CARET_EQ:   lexer.CARET,
}

func applyBinaryOp(op lexer.Kind, left, right value.Value, line, col int) (value.Value, error) {
	switch op {
	case lexer.PLUS:
		return add(left, right, line, col)
	case lexer.MINUS:
		return subtract(left, right, line, col)
	case lexer.STAR:
		return multiply(left, right, line, col)
	case lexer.SLASH:
		return divide(left, right, line, col)
	case lexer.PERCENT:
		return mod(left, right, line, col)
	case lexer.CARET:
		return powerOf(left, right, line, col)
	default:
		return nil, typeErr(line, col, "unsupported operator %s", op)
	}
}

// evalIndex implements Object[Index]: the index truncates toward zero,
// negative indices count from the end, and out-of-range is an IndexError.
func (it *Interp) evalIndex(e *parser.IndexExpr, env *scope.Environment) (value.Value, error) {
	line, col := e.Position()

	object, err := it.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	indexVal, err := it.evalExpr(e.Index, env)
	if err != nil {
		return nil, err
	}
	idxNum, err := asNumber(indexVal, line, col)
	if err != nil {
		return nil, err
	}
	idx := truncToInt(idxNum)

	switch obj := object.(type) {
	case value.String:
		size := len(obj)
		n := normalizeIndex(idx, size)
		if n < 0 || n >= size {
			return nil, indexErr(line, col, "string index out of range: %d", idx)
		}
		return value.String(obj[n]), nil

	case *value.Array:
		size := len(obj.Elements)
		n := normalizeIndex(idx, size)
		if n < 0 || n >= size {
			return nil, indexErr(line, col, "array index out of range: %d", idx)
		}
		return obj.Elements[n], nil

	default:
		return nil, typeErr(line, col, "cannot index a %s value", value.Describe(object))
	}
}

// evalSlice implements Object[From:To]: both bounds normalize negative
// indices from the end and then clamp into [0, size], so an out-of-range
// slice never errors, it just clamps.
func (it *Interp) evalSlice(e *parser.SliceExpr, env *scope.Environment) (value.Value, error) {
	line, col := e.Position()

	object, err := it.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}

	boundOrDefault := func(bound parser.Expr, def int) (int, error) {
		if bound == nil {
			return def, nil
		}
		v, err := it.evalExpr(bound, env)
		if err != nil {
			return 0, err
		}
		n, err := asNumber(v, line, col)
		if err != nil {
			return 0, err
		}
		return truncToInt(n), nil
	}

	switch obj := object.(type) {
	case value.String:
		size := len(obj)
		from, err := boundOrDefault(e.From, 0)
		if err != nil {
			return nil, err
		}
		to, err := boundOrDefault(e.To, size)
		if err != nil {
			return nil, err
		}
		from = clampInt(normalizeIndex(from, size), 0, size)
		to = clampInt(normalizeIndex(to, size), 0, size)
		if to < from {
			to = from
		}
		return value.String(obj[from:to]), nil

	case *value.Array:
		size := len(obj.Elements)
		from, err := boundOrDefault(e.From, 0)
		if err != nil {
			return nil, err
		}
		to, err := boundOrDefault(e.To, size)
		if err != nil {
			return nil, err
		}
		from = clampInt(normalizeIndex(from, size), 0, size)
		to = clampInt(normalizeIndex(to, size), 0, size)
		if to < from {
			to = from
		}
		sliced := make([]value.Value, to-from)
		copy(sliced, obj.Elements[from:to])
		return value.NewArray(sliced), nil

	default:
		return nil, typeErr(line, col, "cannot slice a %s value", value.Describe(object))
	}
}
