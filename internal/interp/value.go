// Package interp implements the tree-walking evaluator: runtime values,
// the environment chain, the evaluator itself, and the built-in function
// library (spec.md §3, §4.3, §4.4).
package interp

import (
	"strconv"
	"strings"

	"github.com/exlang/exl/internal/ast"
)

// Value is the runtime representation of every exl value. It intentionally
// avoids interface{} so that type mismatches are caught by the Go compiler
// wherever possible, falling back to type-switches only where the language
// itself is dynamically typed.
type Value interface {
	// Type returns a short type tag, used in type-error messages.
	Type() string
	// String returns the display form of the value (spec.md §6.3).
	String() string
}

// IntegerValue is a signed 64-bit integer.
type IntegerValue struct {
	Value int64
}

func (*IntegerValue) Type() string   { return "integer" }
func (i *IntegerValue) String() string { return strconv.FormatInt(i.Value, 10) }

// BooleanValue is a boolean.
type BooleanValue struct {
	Value bool
}

func (*BooleanValue) Type() string { return "boolean" }
func (b *BooleanValue) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// StringValue is a string.
type StringValue struct {
	Value string
}

func (*StringValue) Type() string   { return "string" }
func (s *StringValue) String() string { return s.Value }

// ListValue is an ordered list of values.
type ListValue struct {
	Elems []Value
}

func (*ListValue) Type() string { return "list" }
func (l *ListValue) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Function is implemented by both runtime function variants.
type Function interface {
	Value
	functionNode()
}

// BuiltinFunction wraps a host-implemented function. It receives the
// argument slice and a handle to the global state directly — not the
// local frame — because built-ins are pure apart from their effect on
// output (spec.md, Design Notes: "Built-in dispatch").
type BuiltinFunction struct {
	Name string
	Fn   func(args []Value, global *GlobalState) (Value, *EvalError)
}

func (*BuiltinFunction) Type() string          { return "function" }
func (b *BuiltinFunction) String() string       { return "function: " + b.Name }
func (*BuiltinFunction) functionNode()          {}

// anonymousFunctionName is the display name of every user function; binding
// a lambda via let/def does not rename it (original_source/interpreter/src/
// functions.rs leaves user functions unnamed the same way).
const anonymousFunctionName = "Anonymous"

// UserFunction is a value produced by a lambda expression. It captures the
// environment frame visible at the moment the lambda was evaluated, along
// with its parameter names and its (unevaluated) body.
type UserFunction struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    *Frame
}

func (*UserFunction) Type() string    { return "function" }
func (u *UserFunction) String() string { return "function: " + u.Name }
func (*UserFunction) functionNode()    {}

// NewUserFunction builds an unnamed (Anonymous) user function closing over
// env. Binding it to a name with let/def does not rename the function
// value itself — only the environment slot it is stored in.
func NewUserFunction(params []string, body *ast.Block, env *Frame) *UserFunction {
	return &UserFunction{Name: anonymousFunctionName, Params: params, Body: body, Env: env}
}

// Equal reports whether two values are equal under exl's by-value equality
// (spec.md §3): integers, booleans, and strings compare by value; lists
// compare elementwise; function equality is unspecified and always false.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *IntegerValue:
		bv, ok := b.(*IntegerValue)
		return ok && av.Value == bv.Value
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && av.Value == bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value == bv.Value
	case *ListValue:
		bv, ok := b.(*ListValue)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Less reports whether a orders before b for the purposes of sort.
// Integers compare numerically, strings lexically, booleans false<true;
// lists compare lexicographically by element. Mismatched types report
// false (stable, arbitrary but deterministic ordering).
func Less(a, b Value) bool {
	switch av := a.(type) {
	case *IntegerValue:
		bv, ok := b.(*IntegerValue)
		return ok && av.Value < bv.Value
	case *StringValue:
		bv, ok := b.(*StringValue)
		return ok && av.Value < bv.Value
	case *BooleanValue:
		bv, ok := b.(*BooleanValue)
		return ok && !av.Value && bv.Value
	case *ListValue:
		bv, ok := b.(*ListValue)
		if !ok {
			return false
		}
		for i := 0; i < len(av.Elems) && i < len(bv.Elems); i++ {
			if Less(av.Elems[i], bv.Elems[i]) {
				return true
			}
			if Less(bv.Elems[i], av.Elems[i]) {
				return false
			}
		}
		return len(av.Elems) < len(bv.Elems)
	default:
		return false
	}
}
