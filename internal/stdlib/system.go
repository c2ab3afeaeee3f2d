package stdlib

import (
	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func registerSystem(it *interp.Interp) {
	define(it, "stacktrace", func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, interp.ArityErrorf("stacktrace() expects 0 argument(s)")
		}
		return value.String(it.StackTrace()), nil
	})
}
