package interp

// builtinAdd, builtinSub, and builtinMul are variadic integer folds
// (spec.md §4.4): add sums all arguments (empty -> 0), mul multiplies all
// arguments (empty -> 1), and sub folds "first minus the rest" (empty ->
// 0), matching the reference implementation's exprs_into_i64 + reduce
// shape (original_source/interpreter/src/functions.rs, add/sub/mul) rather
// than a fixed two-argument signature.

func builtinAdd(args []Value, global *GlobalState) (Value, *EvalError) {
	ints, err := allIntegers("add", args)
	if err != nil {
		return nil, err
	}
	var sum int64
	for _, n := range ints {
		sum += n
	}
	return &IntegerValue{Value: sum}, nil
}

func builtinSub(args []Value, global *GlobalState) (Value, *EvalError) {
	ints, err := allIntegers("sub", args)
	if err != nil {
		return nil, err
	}
	if len(ints) == 0 {
		return &IntegerValue{Value: 0}, nil
	}
	result := ints[0]
	for _, n := range ints[1:] {
		result -= n
	}
	return &IntegerValue{Value: result}, nil
}

func builtinMul(args []Value, global *GlobalState) (Value, *EvalError) {
	ints, err := allIntegers("mul", args)
	if err != nil {
		return nil, err
	}
	product := int64(1)
	for _, n := range ints {
		product *= n
	}
	return &IntegerValue{Value: product}, nil
}

func builtinDiv(args []Value, global *GlobalState) (Value, *EvalError) {
	a, b, err := twoIntegers("div", args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newRuntimeError("division by zero")
	}
	return &IntegerValue{Value: a / b}, nil
}

func builtinRem(args []Value, global *GlobalState) (Value, *EvalError) {
	a, b, err := twoIntegers("rem", args)
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, newRuntimeError("division by zero")
	}
	return &IntegerValue{Value: a % b}, nil
}

// builtinZero reports whether its single integer argument is zero.
func builtinZero(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("zero?", args, 1); err != nil {
		return nil, err
	}
	n, err := asInteger("zero?", args, 0)
	if err != nil {
		return nil, err
	}
	return &BooleanValue{Value: n == 0}, nil
}

// builtinGreater and builtinLess compare any two like-typed, orderable
// values (integer, string, boolean, or list) via Less.
func builtinGreater(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("greater?", args, 2); err != nil {
		return nil, err
	}
	return &BooleanValue{Value: Less(args[1], args[0])}, nil
}

func builtinLess(args []Value, global *GlobalState) (Value, *EvalError) {
	if err := checkArgCount("less?", args, 2); err != nil {
		return nil, err
	}
	return &BooleanValue{Value: Less(args[0], args[1])}, nil
}

func twoIntegers(name string, args []Value) (int64, int64, *EvalError) {
	if err := checkArgCount(name, args, 2); err != nil {
		return 0, 0, err
	}
	a, err := asInteger(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := asInteger(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
