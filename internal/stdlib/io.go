package stdlib

import (
	"fmt"
	"io"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

// registerIO installs print, println, and read. Unlike the print this is
// grounded on — which only recognizes Number/String/Bool explicitly and
// silently renders anything else (including Array and Function) as "nil" —
// Glint prints every value via its own String() form: package value was
// built precisely so every variant already knows how to render itself,
// so there is no reason to keep the original's narrower, buggier default.
func registerIO(it *interp.Interp) {
	define(it, "print", func(args []value.Value) (value.Value, error) {
		if len(args) > 1 {
			return nil, interp.ArityErrorf("print() expects 0 or 1 argument(s)")
		}
		if len(args) == 1 {
			fmt.Fprint(it.Out, args[0].String())
		}
		return value.Nil, nil
	})

	define(it, "println", func(args []value.Value) (value.Value, error) {
		if len(args) > 1 {
			return nil, interp.ArityErrorf("println() expects 0 or 1 argument(s)")
		}
		if len(args) == 1 {
			fmt.Fprint(it.Out, args[0].String())
		}
		fmt.Fprintln(it.Out)
		return value.Nil, nil
	})

	define(it, "read", func(args []value.Value) (value.Value, error) {
		if len(args) != 0 {
			return nil, interp.ArityErrorf("read() expects 0 argument(s)")
		}
		line, err := it.In.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, interp.TypeErrorf("read() failed: %v", err)
		}
		if line == "" && err == io.EOF {
			return value.Nil, nil
		}
		return value.String(trimNewline(line)), nil
	})
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
