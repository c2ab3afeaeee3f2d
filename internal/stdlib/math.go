package stdlib

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func registerMath(it *interp.Interp) {
	define(it, "abs", mathUnary("abs", math.Abs))
	define(it, "ceil", mathUnary("ceil", math.Ceil))
	define(it, "floor", mathUnary("floor", math.Floor))
	define(it, "round", mathUnary("round", math.Round))

	define(it, "sqrt", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("sqrt() expects 1 argument(s)")
		}
		n, err := extractNumber(args[0], "sqrt")
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, interp.TypeErrorf("sqrt() of a negative number")
		}
		return value.Number(math.Sqrt(n)), nil
	})

	define(it, "rnd", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("rnd() expects 1 argument(s)")
		}
		n, err := extractNumber(args[0], "rnd")
		if err != nil {
			return nil, err
		}
		if n <= 0 {
			return nil, interp.TypeErrorf("rnd() argument must be positive")
		}
		return value.Number(rand.Intn(int(n))), nil
	})

	define(it, "parse_num", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("parse_num() expects 1 argument(s)")
		}
		s, err := extractString(args[0], "parse_num")
		if err != nil {
			return nil, err
		}
		n, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			return value.Nil, nil
		}
		return value.Number(n), nil
	})

	define(it, "to_string", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("to_string() expects 1 argument(s)")
		}
		n, err := extractNumber(args[0], "to_string")
		if err != nil {
			return nil, err
		}
		return value.String(value.Number(n).String()), nil
	})

	define(it, "min", aggregate("min", func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	}))
	define(it, "max", aggregate("max", func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	}))
}

func mathUnary(name string, fn func(float64) float64) func(args []value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("%s() expects 1 argument(s)", name)
		}
		n, err := extractNumber(args[0], name)
		if err != nil {
			return nil, err
		}
		return value.Number(fn(n)), nil
	}
}

func aggregate(name string, pick func(a, b float64) float64) func(args []value.Value) (value.Value, error) {
	return func(args []value.Value) (value.Value, error) {
		if len(args) < 2 {
			return nil, interp.ArityErrorf("%s() expects at least 2 argument(s)", name)
		}
		best, err := extractNumber(args[0], name)
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			n, err := extractNumber(a, name)
			if err != nil {
				return nil, err
			}
			best = pick(best, n)
		}
		return value.Number(best), nil
	}
}
