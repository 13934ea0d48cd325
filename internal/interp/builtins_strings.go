package interp

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upperCaser and lowerCaser perform real Unicode case folding rather than
// the byte-wise strings.ToUpper/ToLower, so that to_uppercase/to_lowercase
// behave correctly on non-ASCII text (e.g. "straße" -> "STRASSE").
var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// builtinToUppercase case-folds its string arguments. A single argument
// returns a string; more than one returns a list of strings, one per
// argument (spec.md §4.4).
func builtinToUppercase(args []Value, global *GlobalState) (Value, *EvalError) {
	return caseFold("to_uppercase", args, upperCaser.String)
}

func builtinToLowercase(args []Value, global *GlobalState) (Value, *EvalError) {
	return caseFold("to_lowercase", args, lowerCaser.String)
}

func caseFold(name string, args []Value, fold func(string) string) (Value, *EvalError) {
	if len(args) == 0 {
		return nil, newArgCountError(name, 1, 0)
	}
	if len(args) == 1 {
		s, err := asString(name, args, 0)
		if err != nil {
			return nil, err
		}
		return &StringValue{Value: fold(s)}, nil
	}
	elems := make([]Value, len(args))
	for i := range args {
		s, err := asString(name, args, i)
		if err != nil {
			return nil, err
		}
		elems[i] = &StringValue{Value: fold(s)}
	}
	return &ListValue{Elems: elems}, nil
}

// builtinConcat concatenates all string arguments into one string. Called
// with no arguments it returns the empty string (spec.md §4.4).
func builtinConcat(args []Value, global *GlobalState) (Value, *EvalError) {
	var sb strings.Builder
	for i := range args {
		s, err := asString("concat", args, i)
		if err != nil {
			return nil, err
		}
		sb.WriteString(s)
	}
	return &StringValue{Value: sb.String()}, nil
}

// builtinContains reports whether every argument after the first contains
// the first as a substring: args[0] is the needle, each of args[1:] is a
// haystack that must contain it (spec.md §4.4).
func builtinContains(args []Value, global *GlobalState) (Value, *EvalError) {
	if len(args) < 2 {
		return nil, newArgCountError("contains", 2, len(args))
	}
	needle, err := asString("contains", args, 0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i++ {
		haystack, err := asString("contains", args, i)
		if err != nil {
			return nil, err
		}
		if !strings.Contains(haystack, needle) {
			return &BooleanValue{Value: false}, nil
		}
	}
	return &BooleanValue{Value: true}, nil
}
