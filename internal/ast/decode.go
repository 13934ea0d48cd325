package ast

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// Decode parses a JSON-shaped AST tree (the wire format of §4.2/§6.4) and
// normalizes it into a typed Expression tree, validating every tag along
// the way. This is the single boundary where an untrusted JSON document —
// whether produced by this module's parser, or supplied directly over
// the CLI/embeddable "pre-parsed AST" path (spec.md §6.1/§6.2) — becomes a
// value the evaluator can walk without further tag checks.
func Decode(jsonText string) (Expression, error) {
	if !gjson.Valid(jsonText) {
		return nil, fmt.Errorf("ast: input is not valid JSON")
	}
	return decodeValue(gjson.Parse(jsonText))
}

func decodeValue(v gjson.Result) (Expression, error) {
	switch v.Type {
	case gjson.Number:
		return &Integer{Value: v.Int()}, nil
	case gjson.String:
		return &String{Value: v.String()}, nil
	case gjson.True, gjson.False:
		return &Boolean{Value: v.Bool()}, nil
	case gjson.Null:
		return nil, fmt.Errorf("ast: null is not a valid expression")
	case gjson.JSON:
		if v.IsArray() {
			return decodeArray(v)
		}
		return decodeObject(v)
	default:
		return nil, fmt.Errorf("ast: unrecognized JSON value")
	}
}

func decodeArray(v gjson.Result) (Expression, error) {
	items := v.Array()
	elems := make([]Expression, 0, len(items))
	for _, item := range items {
		e, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return &ArrayLiteral{Elems: elems}, nil
}

func decodeObject(v gjson.Result) (Expression, error) {
	if ident := v.Get("Identifier"); ident.Exists() {
		if ident.Type != gjson.String {
			return nil, fmt.Errorf("ast: Identifier must be a string")
		}
		return &Identifier{Name: ident.String()}, nil
	}

	if block := v.Get("Block"); block.Exists() {
		return decodeBlock(block)
	}

	if lambda := v.Get("Lambda"); lambda.Exists() {
		return decodeLambda(lambda)
	}

	if app := v.Get("Application"); app.Exists() {
		return decodeApplication(app)
	}

	if cond := v.Get("Cond"); cond.Exists() {
		return decodeCond(cond)
	}

	if let := v.Get("Let"); let.Exists() {
		name, value, err := decodeNamedPair(let, "Let")
		if err != nil {
			return nil, err
		}
		return &Let{Name: name, Value: value}, nil
	}

	if def := v.Get("Def"); def.Exists() {
		name, value, err := decodeNamedPair(def, "Def")
		if err != nil {
			return nil, err
		}
		return &Def{Name: name, Value: value}, nil
	}

	if assign := v.Get("Assignment"); assign.Exists() {
		name, value, err := decodeNamedPair(assign, "Assignment")
		if err != nil {
			return nil, err
		}
		return &Assignment{Name: name, Value: value}, nil
	}

	return nil, fmt.Errorf("ast: object does not contain a known AST tag: %s", v.Raw)
}

func decodeBlock(v gjson.Result) (*Block, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("ast: Block must be an array")
	}
	items := v.Array()
	exprs := make([]Expression, 0, len(items))
	for _, item := range items {
		e, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return &Block{Exprs: exprs}, nil
}

func decodeLambda(v gjson.Result) (Expression, error) {
	if !v.IsArray() || len(v.Array()) != 2 {
		return nil, fmt.Errorf("ast: Lambda must be a 2-element array of [Parameters, Block]")
	}
	parts := v.Array()
	paramsObj := parts[0].Get("Parameters")
	if !paramsObj.Exists() || !paramsObj.IsArray() {
		return nil, fmt.Errorf("ast: Lambda's first element must be a Parameters array")
	}
	var params []string
	for _, p := range paramsObj.Array() {
		ident := p.Get("Identifier")
		if !ident.Exists() {
			return nil, fmt.Errorf("ast: Lambda parameter must be an Identifier")
		}
		params = append(params, ident.String())
	}
	blockObj := parts[1].Get("Block")
	if !blockObj.Exists() {
		return nil, fmt.Errorf("ast: Lambda's second element must be a Block")
	}
	body, err := decodeBlock(blockObj)
	if err != nil {
		return nil, err
	}
	return &Lambda{Params: params, Body: body}, nil
}

func decodeApplication(v gjson.Result) (Expression, error) {
	if !v.IsArray() || len(v.Array()) < 1 {
		return nil, fmt.Errorf("ast: Application must be a non-empty array of [head, args...]")
	}
	items := v.Array()
	head, err := decodeValue(items[0])
	if err != nil {
		return nil, err
	}
	args := make([]Expression, 0, len(items)-1)
	for _, item := range items[1:] {
		arg, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return &Application{Head: head, Args: args}, nil
}

func decodeCond(v gjson.Result) (Expression, error) {
	if !v.IsArray() {
		return nil, fmt.Errorf("ast: Cond must be an array of Clause objects")
	}
	var clauses []Clause
	for _, item := range v.Array() {
		clauseArr := item.Get("Clause")
		if !clauseArr.Exists() || !clauseArr.IsArray() || len(clauseArr.Array()) != 2 {
			return nil, fmt.Errorf("ast: Cond entry must be a Clause of [condition, result]")
		}
		pair := clauseArr.Array()
		cond, err := decodeValue(pair[0])
		if err != nil {
			return nil, err
		}
		result, err := decodeValue(pair[1])
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, Clause{Cond: cond, Result: result})
	}
	return &Cond{Clauses: clauses}, nil
}

// decodeNamedPair decodes the common [{"Identifier": name}, value] shape
// shared by Let, Def, and Assignment.
func decodeNamedPair(v gjson.Result, tag string) (string, Expression, error) {
	if !v.IsArray() || len(v.Array()) != 2 {
		return "", nil, fmt.Errorf("ast: %s must be a 2-element array of [Identifier, value]", tag)
	}
	pair := v.Array()
	ident := pair[0].Get("Identifier")
	if !ident.Exists() {
		return "", nil, fmt.Errorf("ast: %s's first element must be an Identifier", tag)
	}
	value, err := decodeValue(pair[1])
	if err != nil {
		return "", nil, err
	}
	return ident.String(), value, nil
}
