package interp

import (
	"math"
	"strings"

	"github.com/glint-lang/glint/internal/value"
)

// asNumber applies the interpreter's number-coercion rule and reports a
// TypeError at (line, column) when the value cannot be coerced.
func asNumber(v value.Value, line, column int) (float64, error) {
	if n, ok := value.AsNumber(v); ok {
		return n, nil
	}
	return 0, typeErr(line, column, "expected a Number, got %s", value.Describe(v))
}

// isTrue is the full truthiness table: Bool itself, Number nonzero, String
// nonempty, Nil false, everything else true.
func isTrue(v value.Value) bool {
	return v.Truthy()
}

func add(left, right value.Value, line, column int) (value.Value, error) {
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return value.String(string(l) + string(r)), nil
		}
	}
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(ln + rn), nil
}

func subtract(left, right value.Value, line, column int) (value.Value, error) {
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			s := string(l)
			suffix := string(r)
			if strings.HasSuffix(s, suffix) {
				s = s[:len(s)-len(suffix)]
			}
			return value.String(s), nil
		}
	}
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(ln - rn), nil
}

// multiply matches the source's branch order: a left String operand always
// tries string-repeat first, coercing right to a repeat count — so
// String * String is a TypeError (the right string fails AsNumber), not a
// concatenation of either operand.
func multiply(left, right value.Value, line, column int) (value.Value, error) {
	if l, ok := left.(value.String); ok {
		n, err := asNumber(right, line, column)
		if err != nil {
			return nil, err
		}
		return value.String(repeatString(string(l), n)), nil
	}
	if r, ok := right.(value.String); ok {
		n, err := asNumber(left, line, column)
		if err != nil {
			return nil, err
		}
		return value.String(repeatString(string(r), n)), nil
	}
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(ln * rn), nil
}

func repeatString(s string, times float64) string {
	n := int(math.Floor(times))
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) * n)
	for i := 0; i < n; i++ {
		b.WriteString(s)
	}
	return b.String()
}

func divide(left, right value.Value, line, column int) (value.Value, error) {
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(ln / rn), nil
}

func mod(left, right value.Value, line, column int) (value.Value, error) {
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(math.Mod(ln, rn)), nil
}

func powerOf(left, right value.Value, line, column int) (value.Value, error) {
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(math.Pow(ln, rn)), nil
}

// compare implements <, <=, >, >=: lexicographic when both operands are
// String, else both operands are number-coerced.
func compare(left, right value.Value, line, column int, lt, eq bool) (value.Value, error) {
	if l, ok := left.(value.String); ok {
		if r, ok := right.(value.String); ok {
			return value.Bool(stringCompare(string(l), string(r), lt, eq)), nil
		}
	}
	ln, err := asNumber(left, line, column)
	if err != nil {
		return nil, err
	}
	rn, err := asNumber(right, line, column)
	if err != nil {
		return nil, err
	}
	return value.Bool(numberCompare(ln, rn, lt, eq)), nil
}

func stringCompare(l, r string, lt, eq bool) bool {
	c := strings.Compare(l, r)
	return compareResult(c, lt, eq)
}

func numberCompare(l, r float64, lt, eq bool) bool {
	switch {
	case l < r:
		return compareResult(-1, lt, eq)
	case l > r:
		return compareResult(1, lt, eq)
	default:
		return compareResult(0, lt, eq)
	}
}

// compareResult maps a three-way comparison result to one of the four
// relational operators, selected by (lt, eq): (true,false)=<, (true,true)=<=,
// (false,false)=>, (false,true)=>=.
func compareResult(c int, lt, eq bool) bool {
	if lt {
		if eq {
			return c <= 0
		}
		return c < 0
	}
	if eq {
		return c >= 0
	}
	return c > 0
}

func negate(operand value.Value, line, column int) (value.Value, error) {
	n, err := asNumber(operand, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(-n), nil
}

// identity implements unary +: number-coerce the operand and return it.
// The source has no unary plus at all; Glint adds it as the least
// surprising choice given unary minus already exists.
func identity(operand value.Value, line, column int) (value.Value, error) {
	n, err := asNumber(operand, line, column)
	if err != nil {
		return nil, err
	}
	return value.Number(n), nil
}

func logicalNot(operand value.Value) value.Value {
	return value.Bool(!isTrue(operand))
}

// truncToInt truncates a Number toward zero the way the source's
// static_cast<int> does.
func truncToInt(f float64) int {
	return int(f)
}

func normalizeIndex(idx, size int) int {
	if idx < 0 {
		return idx + size
	}
	return idx
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
