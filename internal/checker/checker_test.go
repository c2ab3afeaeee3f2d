package checker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glint-lang/glint/internal/parser"
)

func checkSrc(t *testing.T, src string) (bool, string) {
	t.Helper()
	p, err := parser.New(src)
	require.NoError(t, err)
	stmts, err := p.Parse()
	require.NoError(t, err)
	var sink strings.Builder
	ok := Check(stmts, &sink)
	return ok, sink.String()
}

func TestChecker_ValidProgram(t *testing.T) {
	ok, out := checkSrc(t, `
x = 1
y = x + 2
print(y)
`)
	assert.True(t, ok, out)
	assert.Empty(t, out)
}

func TestChecker_UndefinedName(t *testing.T) {
	ok, out := checkSrc(t, `print(x)`)
	assert.False(t, ok)
	assert.Contains(t, out, `undefined name "x"`)
}

func TestChecker_DuplicateParameter(t *testing.T) {
	ok, out := checkSrc(t, `f = function(a, a) return a end function`)
	assert.False(t, ok)
	assert.Contains(t, out, "duplicate parameter")
}

func TestChecker_ArityMismatch(t *testing.T) {
	ok, out := checkSrc(t, `abs(1, 2)`)
	assert.False(t, ok)
	assert.Contains(t, out, "abs expects between 1 and 1 arguments, got 2")
}

func TestChecker_BuiltinArgTypeMismatch(t *testing.T) {
	ok, out := checkSrc(t, `sqrt("x")`)
	assert.False(t, ok)
	assert.Contains(t, out, "sqrt argument 1")
}

func TestChecker_BinaryTypeMismatch(t *testing.T) {
	ok, out := checkSrc(t, `x = true - false`)
	assert.False(t, ok)
	assert.Contains(t, out, "operator -")
}

func TestChecker_StringConcatWithNumberIsValid(t *testing.T) {
	ok, out := checkSrc(t, `x = "a" + 1`)
	assert.True(t, ok, out)
}

func TestChecker_IfBranchesOpenNestedScope(t *testing.T) {
	// a value first assigned inside a branch is not visible to the
	// checker once both branches have closed.
	ok, out := checkSrc(t, `
if true then
  inner = 1
end if
print(inner)
`)
	assert.False(t, ok)
	assert.Contains(t, out, `undefined name "inner"`)
}

func TestChecker_ForLoopVariableScoped(t *testing.T) {
	ok, out := checkSrc(t, `
for item in [1, 2, 3]
  print(item)
end for
print(item)
`)
	assert.False(t, ok)
	assert.Contains(t, out, `undefined name "item"`)
}

func TestChecker_SliceOnFunctionRejected(t *testing.T) {
	ok, out := checkSrc(t, `
f = function() return 1 end function
print(f[0:1])
`)
	assert.False(t, ok)
	assert.Contains(t, out, "cannot slice")
}

func TestChecker_IndexOnNonIndexable(t *testing.T) {
	ok, out := checkSrc(t, `x = true x[0]`)
	assert.False(t, ok)
	assert.Contains(t, out, "cannot index")
}

func TestChecker_CallOfNonFunction(t *testing.T) {
	ok, out := checkSrc(t, `x = 1 x()`)
	assert.False(t, ok)
	assert.Contains(t, out, "not callable")
}

func TestChecker_CompoundAssignRequiresExistingName(t *testing.T) {
	ok, out := checkSrc(t, `x += 1`)
	assert.False(t, ok)
	assert.Contains(t, out, `undefined name "x"`)
}

func TestChecker_CompoundAssignValid(t *testing.T) {
	ok, out := checkSrc(t, `x = 1 x += 1`)
	assert.True(t, ok, out)
}

func TestChecker_BestEffortCollectsMultipleErrors(t *testing.T) {
	ok, out := checkSrc(t, `print(a) print(b)`)
	assert.False(t, ok)
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, `"b"`)
}

func TestChecker_ContinuesAfterFunctionLiteralError(t *testing.T) {
	ok, out := checkSrc(t, `
f = function(a, a) return a end function
print(unknown_after)
`)
	assert.False(t, ok)
	assert.Contains(t, out, "duplicate parameter")
	assert.Contains(t, out, `"unknown_after"`)
}
