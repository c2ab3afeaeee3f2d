package stdlib

import (
	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func registerUtility(it *interp.Interp) {
	define(it, "len", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("len() expects 1 argument(s)")
		}
		switch v := args[0].(type) {
		case value.String:
			return value.Number(len(v)), nil
		case *value.Array:
			return value.Number(len(v.Elements)), nil
		default:
			return nil, interp.TypeErrorf("len() argument must be a String or a List")
		}
	})

	define(it, "type", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("type() expects 1 argument(s)")
		}
		return value.String(value.TypeName(args[0])), nil
	})
}
