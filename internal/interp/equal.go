package interp

import (
	"github.com/glint-lang/glint/internal/function"
	"github.com/glint-lang/glint/internal/value"
)

// isEqual implements ==/!=: different kinds are never equal; Number,
// String, Bool, and Nil compare structurally; Array and Function compare by
// reference identity. This lives outside package value because Function is
// defined in package function.
func isEqual(a, b value.Value) bool {
	af, aIsFn := a.(*function.Function)
	bf, bIsFn := b.(*function.Function)
	if aIsFn || bIsFn {
		return aIsFn && bIsFn && function.Same(af, bf)
	}
	return value.Equal(a, b)
}
