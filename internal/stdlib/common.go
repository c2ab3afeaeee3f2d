package stdlib

import (
	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func extractNumber(v value.Value, fn string) (float64, error) {
	n, ok := value.AsNumber(v)
	if !ok {
		return 0, interp.TypeErrorf("%s() expects a Number argument, got %s", fn, value.Describe(v))
	}
	return n, nil
}

func extractString(v value.Value, fn string) (string, error) {
	s, ok := v.(value.String)
	if !ok {
		return "", interp.TypeErrorf("%s() expects a String argument, got %s", fn, value.Describe(v))
	}
	return string(s), nil
}

func extractArray(v value.Value, fn string) (*value.Array, error) {
	a, ok := v.(*value.Array)
	if !ok {
		return nil, interp.TypeErrorf("%s() expects a List argument, got %s", fn, value.Describe(v))
	}
	return a, nil
}

// displayString renders a value for join()'s element-to-text conversion,
// which (like print) uses each value's own display form.
func displayString(v value.Value) string {
	return v.String()
}
