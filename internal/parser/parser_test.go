package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []Stmt {
	t.Helper()
	p, err := New(src)
	require.NoError(t, err)
	stmts, err := p.Parse()
	require.NoError(t, err)
	return stmts
}

func TestParser_Literals(t *testing.T) {
	stmts := parse(t, `1 "s" true false nil x`)
	require.Len(t, stmts, 6)
	assert.IsType(t, &NumberExpr{}, stmts[0].(*ExprStmt).X)
	assert.IsType(t, &StringExpr{}, stmts[1].(*ExprStmt).X)
	assert.IsType(t, &BoolExpr{}, stmts[2].(*ExprStmt).X)
	assert.IsType(t, &BoolExpr{}, stmts[3].(*ExprStmt).X)
	assert.IsType(t, &NilExpr{}, stmts[4].(*ExprStmt).X)
	assert.IsType(t, &VariableExpr{}, stmts[5].(*ExprStmt).X)
}

func TestParser_BinaryPrecedence(t *testing.T) {
	stmts := parse(t, `1 + 2 * 3`)
	require.Len(t, stmts, 1)
	bin := stmts[0].(*ExprStmt).X.(*BinaryExpr)
	assert.Equal(t, "+", string(bin.Op))
	assert.IsType(t, &NumberExpr{}, bin.Left)
	mul := bin.Right.(*BinaryExpr)
	assert.Equal(t, "*", string(mul.Op))
}

func TestParser_LogicalPrecedence(t *testing.T) {
	stmts := parse(t, `a or b and c`)
	or := stmts[0].(*ExprStmt).X.(*BinaryExpr)
	assert.Equal(t, "or", string(or.Op))
	assert.IsType(t, &VariableExpr{}, or.Left)
	assert.IsType(t, &BinaryExpr{}, or.Right)
}

func TestParser_Assignment(t *testing.T) {
	stmts := parse(t, `x = 1`)
	assign := stmts[0].(*ExprStmt).X.(*AssignExpr)
	assert.Equal(t, "x", assign.Name)
	assert.Equal(t, "=", string(assign.Op))
}

func TestParser_CompoundAssignment(t *testing.T) {
	stmts := parse(t, `x += 1`)
	assign := stmts[0].(*ExprStmt).X.(*AssignExpr)
	assert.Equal(t, "+=", string(assign.Op))
}

func TestParser_AssignmentToNonVariableIsError(t *testing.T) {
	p, err := New(`1 = 2`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}

func TestParser_UnaryChain(t *testing.T) {
	stmts := parse(t, `not not x`)
	outer := stmts[0].(*ExprStmt).X.(*UnaryExpr)
	assert.Equal(t, "not", string(outer.Op))
	inner := outer.Operand.(*UnaryExpr)
	assert.Equal(t, "not", string(inner.Op))
}

func TestParser_Call(t *testing.T) {
	stmts := parse(t, `f(1, 2, 3)`)
	call := stmts[0].(*ExprStmt).X.(*CallExpr)
	assert.IsType(t, &VariableExpr{}, call.Callee)
	assert.Len(t, call.Args, 3)
}

func TestParser_Index(t *testing.T) {
	stmts := parse(t, `a[0]`)
	idx := stmts[0].(*ExprStmt).X.(*IndexExpr)
	assert.IsType(t, &VariableExpr{}, idx.Object)
	assert.IsType(t, &NumberExpr{}, idx.Index)
}

func TestParser_Slice(t *testing.T) {
	tests := []string{`a[1:2]`, `a[:2]`, `a[1:]`, `a[:]`}
	for _, src := range tests {
		stmts := parse(t, src)
		_, ok := stmts[0].(*ExprStmt).X.(*SliceExpr)
		assert.True(t, ok, src)
	}
}

func TestParser_ChainedCallIndex(t *testing.T) {
	stmts := parse(t, `f()[0](1)`)
	outer := stmts[0].(*ExprStmt).X.(*CallExpr)
	idx := outer.Callee.(*IndexExpr)
	_, ok := idx.Object.(*CallExpr)
	assert.True(t, ok)
}

func TestParser_ListLiteral(t *testing.T) {
	stmts := parse(t, `[1, 2, 3]`)
	list := stmts[0].(*ExprStmt).X.(*ListExpr)
	assert.Len(t, list.Elements, 3)
}

func TestParser_EmptyListLiteral(t *testing.T) {
	stmts := parse(t, `[]`)
	list := stmts[0].(*ExprStmt).X.(*ListExpr)
	assert.Len(t, list.Elements, 0)
}

func TestParser_FunctionLiteral(t *testing.T) {
	stmts := parse(t, `function(a, b) return a + b end function`)
	fn := stmts[0].(*ExprStmt).X.(*FunctionExpr)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	require.Len(t, fn.Body, 1)
	ret := fn.Body[0].(*ReturnStmt)
	assert.IsType(t, &BinaryExpr{}, ret.Value)
}

func TestParser_FunctionLiteralNoParams(t *testing.T) {
	stmts := parse(t, `function() return nil end function`)
	fn := stmts[0].(*ExprStmt).X.(*FunctionExpr)
	assert.Empty(t, fn.Params)
}

func TestParser_ParenGrouping(t *testing.T) {
	stmts := parse(t, `(1 + 2) * 3`)
	mul := stmts[0].(*ExprStmt).X.(*BinaryExpr)
	assert.Equal(t, "*", string(mul.Op))
	assert.IsType(t, &BinaryExpr{}, mul.Left)
}

func TestParser_If(t *testing.T) {
	stmts := parse(t, `if x then a = 1 end if`)
	ifs := stmts[0].(*IfStmt)
	require.Len(t, ifs.Then, 1)
	assert.Nil(t, ifs.Else)
}

func TestParser_IfElse(t *testing.T) {
	stmts := parse(t, `if x then a = 1 else a = 2 end if`)
	ifs := stmts[0].(*IfStmt)
	require.Len(t, ifs.Then, 1)
	require.Len(t, ifs.Else, 1)
}

func TestParser_IfElseIfChain(t *testing.T) {
	stmts := parse(t, `
if x then
  a = 1
else if y then
  a = 2
else
  a = 3
end if`)
	ifs := stmts[0].(*IfStmt)
	require.Len(t, ifs.Else, 1)
	nested := ifs.Else[0].(*IfStmt)
	require.Len(t, nested.Then, 1)
	require.Len(t, nested.Else, 1)
}

func TestParser_While(t *testing.T) {
	stmts := parse(t, `while x < 10 x = x + 1 end while`)
	ws := stmts[0].(*WhileStmt)
	require.Len(t, ws.Body, 1)
}

func TestParser_For(t *testing.T) {
	stmts := parse(t, `for item in items print(item) end for`)
	fs := stmts[0].(*ForStmt)
	assert.Equal(t, "item", fs.Var)
	require.Len(t, fs.Body, 1)
}

func TestParser_ReturnWithValue(t *testing.T) {
	stmts := parse(t, `function() return 1 end function`)
	fn := stmts[0].(*ExprStmt).X.(*FunctionExpr)
	ret := fn.Body[0].(*ReturnStmt)
	assert.NotNil(t, ret.Value)
}

func TestParser_ReturnBare(t *testing.T) {
	stmts := parse(t, `function() return end function`)
	fn := stmts[0].(*ExprStmt).X.(*FunctionExpr)
	ret := fn.Body[0].(*ReturnStmt)
	assert.Nil(t, ret.Value)
}

func TestParser_BreakContinue(t *testing.T) {
	stmts := parse(t, `while true break continue end while`)
	ws := stmts[0].(*WhileStmt)
	require.Len(t, ws.Body, 2)
	assert.IsType(t, &BreakStmt{}, ws.Body[0])
	assert.IsType(t, &ContinueStmt{}, ws.Body[1])
}

func TestParser_JuxtaposedStatementsNoSeparator(t *testing.T) {
	stmts := parse(t, `a = 0 b = 1 c = a + b`)
	require.Len(t, stmts, 3)
}

func TestParser_UnexpectedEOF(t *testing.T) {
	p, err := New(`1 +`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}

func TestParser_UnclosedBlock(t *testing.T) {
	p, err := New(`while true a = 1`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}

func TestParser_MissingThen(t *testing.T) {
	p, err := New(`if x a = 1 end if`)
	require.NoError(t, err)
	_, err = p.Parse()
	require.Error(t, err)
}
