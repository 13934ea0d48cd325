package interp

// builtinTable is the full built-in library of spec.md §4.4, installed
// into the root frame by populateDefaults. Each entry is grouped by
// concern across builtins_io.go, builtins_math.go, builtins_strings.go,
// and builtins_collections.go.
var builtinTable = map[string]func(args []Value, global *GlobalState) (Value, *EvalError){
	"print":         builtinPrint,
	"println":       builtinPrintln,
	"dbg":           builtinDbg,
	"add":           builtinAdd,
	"sub":           builtinSub,
	"mul":           builtinMul,
	"div":           builtinDiv,
	"rem":           builtinRem,
	"zero?":         builtinZero,
	"equal?":        builtinEqual,
	"greater?":      builtinGreater,
	"less?":         builtinLess,
	"to_uppercase":  builtinToUppercase,
	"to_lowercase":  builtinToLowercase,
	"concat":        builtinConcat,
	"contains":      builtinContains,
	"length":        builtinLength,
	"as_list":       builtinAsList,
	"get":           builtinGet,
	"set":           builtinSet,
	"sort":          builtinSort,
}

func checkArgCount(name string, args []Value, want int) *EvalError {
	if len(args) != want {
		return newArgCountError(name, want, len(args))
	}
	return nil
}

func asInteger(name string, args []Value, i int) (int64, *EvalError) {
	v, ok := args[i].(*IntegerValue)
	if !ok {
		return 0, newTypeError("integer", args[i].Type())
	}
	return v.Value, nil
}

// allIntegers type-checks every argument as an integer up front, for the
// variadic folds (add/sub/mul) that operate over however many args are
// given rather than a fixed arity.
func allIntegers(name string, args []Value) ([]int64, *EvalError) {
	ints := make([]int64, len(args))
	for i := range args {
		n, err := asInteger(name, args, i)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	return ints, nil
}

func asString(name string, args []Value, i int) (string, *EvalError) {
	v, ok := args[i].(*StringValue)
	if !ok {
		return "", newTypeError("string", args[i].Type())
	}
	return v.Value, nil
}

func asList(name string, args []Value, i int) (*ListValue, *EvalError) {
	v, ok := args[i].(*ListValue)
	if !ok {
		return nil, newTypeError("list", args[i].Type())
	}
	return v, nil
}
