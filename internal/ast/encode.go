package ast

import (
	"encoding/json"

	"github.com/tidwall/sjson"
)

// The builder functions below assemble the JSON-shaped wire format
// bottom-up as the parser recognizes each production, splicing already-built
// child fragments with sjson rather than constructing an intermediate
// map[string]any tree.
//
// They panic only on sjson errors, which indicate a bug in this package (a
// malformed path), not a problem with user input — the JSON fragments being
// spliced are always produced by other builder functions.

// IntegerJSON encodes an integer literal leaf (spec.md §4.2: "integer →
// the number").
func IntegerJSON(value int64) string {
	b, _ := json.Marshal(value)
	return string(b)
}

// StringJSON encodes a string literal leaf ("string → the string").
func StringJSON(value string) string {
	b, _ := json.Marshal(value)
	return string(b)
}

// IdentifierJSON encodes {"Identifier": name}.
func IdentifierJSON(name string) string {
	return mustSet("{}", "Identifier", name)
}

// BlockJSON encodes {"Block": [exprs...]}.
func BlockJSON(exprs []string) string {
	return wrapArray("Block", exprs)
}

// LambdaJSON encodes {"Lambda": [{"Parameters": [...]}, block]}.
func LambdaJSON(params []string, blockJSON string) string {
	paramIdents := make([]string, len(params))
	for i, p := range params {
		paramIdents[i] = IdentifierJSON(p)
	}
	paramsJSON := wrapArray("Parameters", paramIdents)
	return wrapArray("Lambda", []string{paramsJSON, blockJSON})
}

// ApplicationJSON encodes {"Application": [head, args...]}.
func ApplicationJSON(headJSON string, argsJSON []string) string {
	elems := append([]string{headJSON}, argsJSON...)
	return wrapArray("Application", elems)
}

// ClauseJSON encodes {"Clause": [condition, result]}.
func ClauseJSON(condJSON, resultJSON string) string {
	return wrapArray("Clause", []string{condJSON, resultJSON})
}

// CondJSON encodes {"Cond": [clauses...]}.
func CondJSON(clausesJSON []string) string {
	return wrapArray("Cond", clausesJSON)
}

// LetJSON encodes {"Let": [{"Identifier": name}, value]}.
func LetJSON(name, valueJSON string) string {
	return wrapArray("Let", []string{IdentifierJSON(name), valueJSON})
}

// DefJSON encodes {"Def": [{"Identifier": name}, value]}.
func DefJSON(name, valueJSON string) string {
	return wrapArray("Def", []string{IdentifierJSON(name), valueJSON})
}

// AssignmentJSON encodes {"Assignment": [{"Identifier": name}, value]}.
func AssignmentJSON(name, valueJSON string) string {
	return wrapArray("Assignment", []string{IdentifierJSON(name), valueJSON})
}

func wrapArray(key string, elems []string) string {
	out := mustSetRaw("{}", key, "[]")
	for _, e := range elems {
		out = mustSetRaw(out, key+".-1", e)
	}
	return out
}

func mustSet(json, path string, value any) string {
	out, err := sjson.Set(json, path, value)
	if err != nil {
		panic("ast: sjson.Set: " + err.Error())
	}
	return out
}

func mustSetRaw(json, path, raw string) string {
	out, err := sjson.SetRaw(json, path, raw)
	if err != nil {
		panic("ast: sjson.SetRaw: " + err.Error())
	}
	return out
}
