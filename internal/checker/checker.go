// Package checker implements the scope/type pre-check pass: one walk over
// the parser's AST that validates name resolution, built-in arity and
// positional argument types, and a small set of static operator
// compatibility rules. It is best-effort: a violation is written to the
// caller's sink and the walk continues into sibling subtrees, so a single
// run can surface more than one problem.
package checker

import (
	"io"

	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
)

// Checker holds the state of one pre-check run: the error sink and the
// running verdict. Each Check call is independent; a Checker is not reused
// across programs.
type Checker struct {
	sink io.Writer
	ok   bool
}

// Check walks program and writes one line per violation to sink. It returns
// true iff no violation was found anywhere in the tree.
func Check(program []parser.Stmt, sink io.Writer) bool {
	c := &Checker{sink: sink, ok: true}
	c.checkStmts(program, newGlobalScope())
	return c.ok
}

func (c *Checker) fail(line, column int, format string, args ...interface{}) {
	c.ok = false
	err := newError(line, column, format, args...)
	io.WriteString(c.sink, err.Error()+"\n")
}

func (c *Checker) checkStmts(stmts []parser.Stmt, s *staticScope) {
	for _, stmt := range stmts {
		c.checkStmt(stmt, s)
	}
}

// checkBlock runs a nested statement list in a fresh child scope — the
// shape used by if/while bodies and the top level of a function literal.
func (c *Checker) checkBlock(stmts []parser.Stmt, parent *staticScope) {
	c.checkStmts(stmts, newStaticScope(parent))
}

func (c *Checker) checkStmt(stmt parser.Stmt, s *staticScope) {
	switch st := stmt.(type) {
	case *parser.ExprStmt:
		c.checkExpr(st.X, s)

	case *parser.IfStmt:
		c.checkExpr(st.Cond, s)
		c.checkBlock(st.Then, s)
		if st.Else != nil {
			c.checkBlock(st.Else, s)
		}

	case *parser.WhileStmt:
		c.checkExpr(st.Cond, s)
		c.checkBlock(st.Body, s)

	case *parser.ForStmt:
		c.checkExpr(st.Iterable, s)
		body := newStaticScope(s)
		body.declare(st.Var, TUnknown)
		c.checkStmts(st.Body, body)

	case *parser.ReturnStmt:
		if st.Value != nil {
			c.checkExpr(st.Value, s)
		}

	case *parser.BlockStmt:
		c.checkBlock(st.Statements, s)

	case *parser.BreakStmt, *parser.ContinueStmt:
		// nothing to validate

	default:
		// unreachable for a well-formed AST
	}
}

// checkExpr validates expr and returns its best-known static type (Unknown
// when the checker cannot determine one, which is never itself an error).
func (c *Checker) checkExpr(expr parser.Expr, s *staticScope) StaticType {
	switch e := expr.(type) {
	case *parser.NumberExpr:
		return TNumber
	case *parser.StringExpr:
		return TString
	case *parser.BoolExpr:
		return TBool
	case *parser.NilExpr:
		return TNil

	case *parser.VariableExpr:
		t, ok := s.lookup(e.Name)
		if !ok {
			line, col := e.Position()
			c.fail(line, col, "undefined name %q", e.Name)
			return TUnknown
		}
		return t

	case *parser.UnaryExpr:
		return c.checkUnary(e, s)

	case *parser.BinaryExpr:
		return c.checkBinary(e, s)

	case *parser.CallExpr:
		return c.checkCall(e, s)

	case *parser.ListExpr:
		for _, el := range e.Elements {
			c.checkExpr(el, s)
		}
		return TList

	case *parser.FunctionExpr:
		body := newStaticScope(s)
		seen := make(map[string]bool, len(e.Params))
		for _, p := range e.Params {
			if seen[p] {
				line, col := e.Position()
				c.fail(line, col, "duplicate parameter %q", p)
				continue
			}
			seen[p] = true
			body.declare(p, TUnknown)
		}
		c.checkStmts(e.Body, body)
		return TFunction

	case *parser.AssignExpr:
		return c.checkAssign(e, s)

	case *parser.IndexExpr:
		return c.checkIndex(e, s)

	case *parser.SliceExpr:
		return c.checkSlice(e, s)

	default:
		return TUnknown
	}
}

func (c *Checker) checkUnary(e *parser.UnaryExpr, s *staticScope) StaticType {
	operand := c.checkExpr(e.Operand, s)
	line, col := e.Position()
	switch e.Op {
	case lexer.MINUS, lexer.PLUS:
		if !compatible(TNumber, operand) {
			c.fail(line, col, "operator %s requires a Number operand, got %s", e.Op, operand)
			return TUnknown
		}
		return TNumber
	case lexer.NOT:
		return TBool
	default:
		return TUnknown
	}
}

func (c *Checker) checkBinary(e *parser.BinaryExpr, s *staticScope) StaticType {
	left := c.checkExpr(e.Left, s)
	right := c.checkExpr(e.Right, s)
	line, col := e.Position()

	switch e.Op {
	case lexer.PLUS:
		if left == TString || right == TString {
			return TString
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
		c.fail(line, col, "operator + requires two Numbers or a String, got %s and %s", left, right)
		return TUnknown

	case lexer.STAR:
		if left == TString || right == TString {
			otherOK := func(t StaticType) bool {
				return t == TString || t == TNumber || t == TBool || t == TUnknown
			}
			if otherOK(left) && otherOK(right) {
				return TString
			}
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
		c.fail(line, col, "operator * requires two Numbers or a String and a scalar, got %s and %s", left, right)
		return TUnknown

	case lexer.MINUS, lexer.SLASH, lexer.PERCENT, lexer.CARET:
		if left == TString && right == TString && e.Op == lexer.MINUS {
			return TString
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
		c.fail(line, col, "operator %s requires two Numbers, got %s and %s", e.Op, left, right)
		return TUnknown

	case lexer.LT, lexer.LE, lexer.GT, lexer.GE,
		lexer.EQ, lexer.NEQ, lexer.AND, lexer.OR:
		return TBool

	default:
		return TUnknown
	}
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

func (c *Checker) checkAssign(e *parser.AssignExpr, s *staticScope) StaticType {
	right := c.checkExpr(e.Right, s)
	line, col := e.Position()

	if e.Op == lexer.ASSIGN {
		s.assignTarget(e.Name, right)
		return right
	}

	// Compound assignment reads the current value of Name, so unlike plain
	// assignment it requires Name to already be visible.
	current, ok := s.lookup(e.Name)
	if !ok {
		c.fail(line, col, "undefined name %q", e.Name)
		return TUnknown
	}
	op := binaryOpFor[e.Op]
	result := c.checkBinaryTypes(op, current, right, line, col)
	s.assignTarget(e.Name, result)
	return result
}

// checkBinaryTypes applies the same rules as checkBinary but against
// already-known operand types, for compound assignment.
func (c *Checker) checkBinaryTypes(op lexer.Kind, left, right StaticType, line, col int) StaticType {
	switch op {
	case lexer.PLUS:
		if left == TString || right == TString {
			return TString
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
	case lexer.STAR:
		otherOK := func(t StaticType) bool {
			return t == TString || t == TNumber || t == TBool || t == TUnknown
		}
		if (left == TString || right == TString) && otherOK(left) && otherOK(right) {
			return TString
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
	case lexer.MINUS:
		if left == TString && right == TString {
			return TString
		}
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
	case lexer.SLASH, lexer.PERCENT, lexer.CARET:
		if compatible(TNumber, left) && compatible(TNumber, right) {
			return TNumber
		}
	}
	c.fail(line, col, "operator %s requires compatible operands, got %s and %s", op, left, right)
	return TUnknown
}

func (c *Checker) checkCall(e *parser.CallExpr, s *staticScope) StaticType {
	line, col := e.Position()

	if name, ok := e.Callee.(*parser.VariableExpr); ok {
		if info, known := lookupBuiltin(name.Name); known {
			c.checkArgs(info, e.Args, s, line, col)
			return TUnknown
		}
	}

	calleeType := c.checkExpr(e.Callee, s)
	for _, arg := range e.Args {
		c.checkExpr(arg, s)
	}
	if !compatible(TFunction, calleeType) {
		c.fail(line, col, "call target is not callable: %s", calleeType)
		return TUnknown
	}
	return TUnknown
}

func (c *Checker) checkArgs(info builtinInfo, args []parser.Expr, s *staticScope, line, col int) {
	n := len(args)
	if n < info.MinArgs || n > info.MaxArgs {
		c.fail(line, col, "%s expects between %d and %d arguments, got %d", info.Name, info.MinArgs, info.MaxArgs, n)
	}
	for i, arg := range args {
		t := c.checkExpr(arg, s)
		if i < len(info.ParamTypes) && !compatible(info.ParamTypes[i], t) {
			c.fail(line, col, "%s argument %d: expected %s, got %s", info.Name, i+1, info.ParamTypes[i], t)
		}
	}
}

func (c *Checker) checkIndex(e *parser.IndexExpr, s *staticScope) StaticType {
	obj := c.checkExpr(e.Object, s)
	idx := c.checkExpr(e.Index, s)
	line, col := e.Position()

	if obj != TList && obj != TString && obj != TUnknown {
		c.fail(line, col, "cannot index a %s value", obj)
	}
	if !compatible(TNumber, idx) {
		c.fail(line, col, "index must be a Number, got %s", idx)
	}
	switch obj {
	case TString:
		return TString
	case TList:
		return TUnknown
	default:
		return TUnknown
	}
}

func (c *Checker) checkSlice(e *parser.SliceExpr, s *staticScope) StaticType {
	obj := c.checkExpr(e.Object, s)
	line, col := e.Position()

	// Function is excluded here, as it is in the evaluator: slicing a
	// Function is a checker/evaluator mismatch in the original language this
	// was ported from, resolved here by rejecting it statically instead.
	if obj != TList && obj != TString && obj != TUnknown {
		c.fail(line, col, "cannot slice a %s value", obj)
	}
	if e.From != nil {
		if t := c.checkExpr(e.From, s); !compatible(TNumber, t) {
			c.fail(line, col, "slice bound must be a Number, got %s", t)
		}
	}
	if e.To != nil {
		if t := c.checkExpr(e.To, s); !compatible(TNumber, t) {
			c.fail(line, col, "slice bound must be a Number, got %s", t)
		}
	}
	if obj == TString {
		return TString
	}
	return TUnknown
}
