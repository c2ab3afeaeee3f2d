package stdlib

import (
	"sort"

	"github.com/glint-lang/glint/internal/interp"
	"github.com/glint-lang/glint/internal/value"
)

func registerArrays(it *interp.Interp) {
	define(it, "range", func(args []value.Value) (value.Value, error) {
		if len(args) == 0 || len(args) > 3 {
			return nil, interp.ArityErrorf("range() expects 1, 2 or 3 argument(s)")
		}
		start, end, step := 0.0, 0.0, 1.0
		var err error
		switch len(args) {
		case 1:
			if end, err = extractNumber(args[0], "range"); err != nil {
				return nil, err
			}
		case 2:
			if start, err = extractNumber(args[0], "range"); err != nil {
				return nil, err
			}
			if end, err = extractNumber(args[1], "range"); err != nil {
				return nil, err
			}
		case 3:
			if start, err = extractNumber(args[0], "range"); err != nil {
				return nil, err
			}
			if end, err = extractNumber(args[1], "range"); err != nil {
				return nil, err
			}
			if step, err = extractNumber(args[2], "range"); err != nil {
				return nil, err
			}
		}
		if step == 0 {
			return nil, interp.TypeErrorf("range() step cannot be zero")
		}

		var elements []value.Value
		if step > 0 {
			for v := start; v < end; v += step {
				elements = append(elements, value.Number(v))
			}
		} else {
			for v := start; v > end; v += step {
				elements = append(elements, value.Number(v))
			}
		}
		return value.NewArray(elements), nil
	})

	// push/insert/sort operate on a clone of the argument's backing storage
	// and return a new array value, so the caller must reassign
	// (`arr = push(arr, v)`) to observe the change. pop/remove return only
	// the selected element and leave the argument array unchanged.

	define(it, "push", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, interp.ArityErrorf("push() expects 2 argument(s)")
		}
		arr, err := extractArray(args[0], "push")
		if err != nil {
			return nil, err
		}
		clone := arr.Clone()
		clone.Elements = append(clone.Elements, args[1])
		return clone, nil
	})

	define(it, "pop", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("pop() expects 1 argument(s)")
		}
		arr, err := extractArray(args[0], "pop")
		if err != nil {
			return nil, err
		}
		if len(arr.Elements) == 0 {
			return nil, interp.IndexErrorf("pop() from an empty array")
		}
		return arr.Elements[len(arr.Elements)-1], nil
	})

	define(it, "insert", func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, interp.ArityErrorf("insert() expects 3 argument(s)")
		}
		arr, err := extractArray(args[0], "insert")
		if err != nil {
			return nil, err
		}
		idxNum, err := extractNumber(args[1], "insert")
		if err != nil {
			return nil, err
		}
		idx := int(idxNum)
		size := len(arr.Elements)
		if idx < 0 {
			idx += size
		}
		if idx < 0 || idx > size {
			return nil, interp.IndexErrorf("insert() index out of range: %d", int(idxNum))
		}
		clone := arr.Clone()
		clone.Elements = append(clone.Elements[:idx:idx],
			append([]value.Value{args[2]}, clone.Elements[idx:]...)...)
		return clone, nil
	})

	define(it, "remove", func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, interp.ArityErrorf("remove() expects 2 argument(s)")
		}
		arr, err := extractArray(args[0], "remove")
		if err != nil {
			return nil, err
		}
		idxNum, err := extractNumber(args[1], "remove")
		if err != nil {
			return nil, err
		}
		idx := int(idxNum)
		size := len(arr.Elements)
		if idx < 0 {
			idx += size
		}
		if idx < 0 || idx >= size {
			return nil, interp.IndexErrorf("remove() index out of range: %d", int(idxNum))
		}
		return arr.Elements[idx], nil
	})

	define(it, "sort", func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, interp.ArityErrorf("sort() expects 1 argument(s)")
		}
		arr, err := extractArray(args[0], "sort")
		if err != nil {
			return nil, err
		}
		clone := arr.Clone()
		sort.SliceStable(clone.Elements, func(i, j int) bool {
			return lessForSort(clone.Elements[i], clone.Elements[j])
		})
		return clone, nil
	})
}

// lessForSort orders two values when both are Number or both are String;
// any other combination is treated as equal (neither less than the other),
// so sort is stable but leaves heterogeneous pairs in their original order.
func lessForSort(a, b value.Value) bool {
	if an, ok := a.(value.Number); ok {
		if bn, ok := b.(value.Number); ok {
			return an < bn
		}
		return false
	}
	if as, ok := a.(value.String); ok {
		if bs, ok := b.(value.String); ok {
			return as < bs
		}
		return false
	}
	return false
}
