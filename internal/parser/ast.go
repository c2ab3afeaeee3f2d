// Package parser turns a lexer.Lexer token stream into an AST: a list of
// top-level Stmt nodes.
package parser

import "github.com/glint-lang/glint/internal/lexer"

// Expr is the marker interface implemented by every expression node.
// The interpreter dispatches on concrete type via a type switch rather than
// a visitor: a direct match is clearer and easier to exhaustively check
// than an indirection layer.
type Expr interface {
	exprNode()
	Position() (line, column int)
}

// Stmt is the marker interface implemented by every statement node.
type Stmt interface {
	stmtNode()
}

type pos struct {
	Line   int
	Column int
}

func (p pos) Position() (int, int) { return p.Line, p.Column }

func posOf(tok lexer.Token) pos { return pos{Line: tok.Line, Column: tok.Column} }

// --- Expressions -----------------------------------------------------------

// NumberExpr is a numeric literal, e.g. 42 or 3.14.
type NumberExpr struct {
	pos
	Value float64
}

// StringExpr is a string literal.
type StringExpr struct {
	pos
	Value string
}

// BoolExpr is a boolean literal.
type BoolExpr struct {
	pos
	Value bool
}

// NilExpr is the nil literal.
type NilExpr struct{ pos }

// VariableExpr references a bound name.
type VariableExpr struct {
	pos
	Name string
}

// UnaryExpr applies a prefix operator (-, +, not) to Operand.
type UnaryExpr struct {
	pos
	Op      lexer.Kind
	Operand Expr
}

// BinaryExpr applies an infix operator to Left and Right.
type BinaryExpr struct {
	pos
	Op    lexer.Kind
	Left  Expr
	Right Expr
}

// CallExpr invokes Callee with Args, left to right.
type CallExpr struct {
	pos
	Callee Expr
	Args   []Expr
}

// ListExpr is an array literal: [e1, e2, ...].
type ListExpr struct {
	pos
	Elements []Expr
}

// FunctionExpr is a function literal: function(params) body end function.
type FunctionExpr struct {
	pos
	Params []string
	Body   []Stmt
}

// AssignExpr assigns Right to Name. Op is either "=" or one of the
// compound-assign kinds; compound assignment desugars to
// `name = name ⊕ right` at evaluation time.
type AssignExpr struct {
	pos
	Name  string
	Op    lexer.Kind
	Right Expr
}

// IndexExpr evaluates Object[Index].
type IndexExpr struct {
	pos
	Object Expr
	Index  Expr
}

// SliceExpr evaluates Object[From:To]; From and To are nil when omitted.
type SliceExpr struct {
	pos
	Object Expr
	From   Expr
	To     Expr
}

func (*NumberExpr) exprNode()   {}
func (*StringExpr) exprNode()   {}
func (*BoolExpr) exprNode()     {}
func (*NilExpr) exprNode()      {}
func (*VariableExpr) exprNode() {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}
func (*ListExpr) exprNode()     {}
func (*FunctionExpr) exprNode() {}
func (*AssignExpr) exprNode()   {}
func (*IndexExpr) exprNode()    {}
func (*SliceExpr) exprNode()    {}

// --- Statements --------------------------------------------------------

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	X Expr
}

// IfStmt executes Then when Cond is truthy, else Else (which may be nil).
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

// WhileStmt loops Body while Cond is truthy.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
}

// ForStmt iterates Var over the array produced by Iterable.
type ForStmt struct {
	Var      string
	Iterable Expr
	Body     []Stmt
}

// ReturnStmt yields Value (nil means implicit nil) from the enclosing
// function.
type ReturnStmt struct {
	Value Expr
}

// BlockStmt runs Statements in sequence within the current environment;
// no new scope opens at runtime for nested blocks.
type BlockStmt struct {
	Statements []Stmt
}

// BreakStmt signals loop termination.
type BreakStmt struct{}

// ContinueStmt signals skipping to the next loop iteration.
type ContinueStmt struct{}

func (*ExprStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*WhileStmt) stmtNode()    {}
func (*ForStmt) stmtNode()      {}
func (*ReturnStmt) stmtNode()   {}
func (*BlockStmt) stmtNode()    {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
