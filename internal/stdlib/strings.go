package stdlib

import (
	"strings"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func registerStrings(it *interp.Interp) {
	define(it, "lower", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("lower() expects 1 argument(s)")
		}
		s, err := extractString(args[0], "lower")
		if err != nil {
			return nil, err
		}
		return value.String(strings.ToLower(s)), nil
	})

	define(it, "upper", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("upper() expects 1 argument(s)")
		}
		s, err := extractString(args[0], "upper")
		if err != nil {
			return nil, err
		}
		return value.String(strings.ToUpper(s)), nil
	})

	define(it, "split", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, interp.ArityErrorf("split() expects 2 argument(s)")
		}
		s, err := extractString(args[0], "split")
		if err != nil {
			return nil, err
		}
		delim, err := extractString(args[1], "split")
		if err != nil {
			return nil, err
		}
		if delim == "" {
			return nil, interp.TypeErrorf("split() delimiter cannot be empty")
		}
		parts := strings.Split(s, delim)
		elements := make([]value.Value, len(parts))
		for i, p := range parts {
			elements[i] = value.String(p)
		}
		return value.NewArray(elements), nil
	})

	define(it, "join", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, interp.ArityErrorf("join() expects 2 argument(s)")
		}
		arr, err := extractArray(args[0], "join")
		if err != nil {
			return nil, err
		}
		delim, err := extractString(args[1], "join")
		if err != nil {
			return nil, err
		}
		parts := make([]string, len(arr.Elements))
		for i, el := range arr.Elements {
			parts[i] = displayString(el)
		}
		return value.String(strings.Join(parts, delim)), nil
	})

	define(it, "replace", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, interp.ArityErrorf("replace() expects 3 argument(s)")
		}
		s, err := extractString(args[0], "replace")
		if err != nil {
			return nil, err
		}
		old, err := extractString(args[1], "replace")
		if err != nil {
			return nil, err
		}
		if old == "" {
			return nil, interp.TypeErrorf("replace() old string cannot be empty")
		}
		repl, err := extractString(args[2], "replace")
		if err != nil {
			return nil, err
		}
		return value.String(strings.ReplaceAll(s, old, repl)), nil
	})
}
