package interp

import "sort"

// builtinEqual reports whether every argument is structurally equal to the
// first (spec.md §4.4). An empty call has no "first" to compare against
// and reports false.
func builtinEqual(args []Value, global *GlobalState) (Value, *EvalError) {
	if len(args) == 0 {
		return &BooleanValue{Value: false}, nil
	}
	for _, a := range args[1:] {
		if !Equal(args[0], a) {
			return &BooleanValue{Value: false}, nil
		}
	}
	return &BooleanValue{Value: true}, nil
}

// builtinLength reports the length of a string (rune count) or a list
// (element count).
func builtinLength(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("length", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *StringValue:
		return &IntegerValue{Value: int64(len([]rune(v.Value)))}, nil
	case *ListValue:
		return &IntegerValue{Value: int64(len(v.Elems))}, nil
	default:
		return nil, newTypeError("string or list", args[0].Type())
	}
}

// builtinAsList collects its arguments into a single list value.
func builtinAsList(args []Value, global *GlobalState) (Value, *EvalError) {
	elems := make([]Value, len(args))
	copy(elems, args)
	return &ListValue{Elems: elems}, nil
}

// builtinGet indexes into a list, reporting a runtime error on an
// out-of-range index rather than panicking.
func builtinGet(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("get", args, 2); err != nil {
		return nil, err
	}
	list, err := asList("get", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := asInteger("get", args, 1)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= int64(len(list.Elems)) {
		return nil, newRuntimeError("index %d out of range for list of length %d", idx, len(list.Elems))
	}
	return list.Elems[idx], nil
}

// builtinSet returns a new list with the element at index replaced by
// value, leaving the original list untouched. It takes exactly three
// arguments: (list, index, value).
func builtinSet(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("set", args, 3); err != nil {
		return nil, err
	}
	list, err := asList("set", args, 0)
	if err != nil {
		return nil, err
	}
	idx, err := asInteger("set", args, 1)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= int64(len(list.Elems)) {
		return nil, newRuntimeError("index %d out of range for list of length %d", idx, len(list.Elems))
	}
	next := make([]Value, len(list.Elems))
	copy(next, list.Elems)
	next[idx] = args[2]
	return &ListValue{Elems: next}, nil
}

// builtinSort returns a new list holding the same elements in ascending
// order per Less. The input list is left untouched.
func builtinSort(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("sort", args, 1); err != nil {
		return nil, err
	}
	list, err := asList("sort", args, 0)
	if err != nil {
		return nil, err
	}
	sorted := make([]Value, len(list.Elems))
	copy(sorted, list.Elems)
	sort.SliceStable(sorted, func(i, j int) bool { return Less(sorted[i], sorted[j]) })
	return &ListValue{Elems: sorted}, nil
}
