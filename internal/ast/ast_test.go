package ast

import "testing"

func TestDecodeIdentifier(t *testing.T) {
	expr, err := Decode(IdentifierJSON("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ident, ok := expr.(*Identifier)
	if !ok {
		t.Fatalf("got %T, want *Identifier", expr)
	}
	if ident.Name != "x" {
		t.Fatalf("got %q, want x", ident.Name)
	}
}

func TestDecodeIntegerAndString(t *testing.T) {
	expr, err := Decode(IntegerJSON(42))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i, ok := expr.(*Integer); !ok || i.Value != 42 {
		t.Fatalf("got %#v, want Integer(42)", expr)
	}

	expr, err = Decode(StringJSON(`say "hi"`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := expr.(*String); !ok || s.Value != `say "hi"` {
		t.Fatalf("got %#v, want String", expr)
	}
}

func TestDecodeBlock(t *testing.T) {
	blockJSON := BlockJSON([]string{IntegerJSON(1), IntegerJSON(2)})
	expr, err := Decode(blockJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	block, ok := expr.(*Block)
	if !ok || len(block.Exprs) != 2 {
		t.Fatalf("got %#v, want Block of 2", expr)
	}
}

func TestDecodeLambda(t *testing.T) {
	blockJSON := BlockJSON([]string{IdentifierJSON("n")})
	lambdaJSON := LambdaJSON([]string{"n"}, blockJSON)
	expr, err := Decode(lambdaJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lambda, ok := expr.(*Lambda)
	if !ok {
		t.Fatalf("got %T, want *Lambda", expr)
	}
	if len(lambda.Params) != 1 || lambda.Params[0] != "n" {
		t.Fatalf("got params %v", lambda.Params)
	}
	if len(lambda.Body.Exprs) != 1 {
		t.Fatalf("got body %v", lambda.Body)
	}
}

func TestDecodeApplication(t *testing.T) {
	appJSON := ApplicationJSON(IdentifierJSON("add"), []string{IntegerJSON(4), IntegerJSON(5)})
	expr, err := Decode(appJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	app, ok := expr.(*Application)
	if !ok {
		t.Fatalf("got %T, want *Application", expr)
	}
	if _, ok := app.Head.(*Identifier); !ok {
		t.Fatalf("got head %#v, want *Identifier", app.Head)
	}
	if len(app.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(app.Args))
	}
}

func TestDecodeCond(t *testing.T) {
	clause := ClauseJSON(IdentifierJSON("true"), IntegerJSON(5))
	condJSON := CondJSON([]string{clause})
	expr, err := Decode(condJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cond, ok := expr.(*Cond)
	if !ok || len(cond.Clauses) != 1 {
		t.Fatalf("got %#v, want Cond of 1 clause", expr)
	}
}

func TestDecodeLetDefAssignment(t *testing.T) {
	for _, tc := range []struct {
		name string
		json string
		want func(Expression) bool
	}{
		{"let", LetJSON("x", IntegerJSON(1)), func(e Expression) bool { _, ok := e.(*Let); return ok }},
		{"def", DefJSON("f", IntegerJSON(1)), func(e Expression) bool { _, ok := e.(*Def); return ok }},
		{"assignment", AssignmentJSON("x", IntegerJSON(2)), func(e Expression) bool { _, ok := e.(*Assignment); return ok }},
	} {
		expr, err := Decode(tc.json)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.want(expr) {
			t.Fatalf("%s: got %#v", tc.name, expr)
		}
	}
}

func TestDecodeArrayLiteral(t *testing.T) {
	expr, err := Decode(`[1, 2, 3]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arr, ok := expr.(*ArrayLiteral)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("got %#v, want ArrayLiteral of 3", expr)
	}
}

func TestDecodeRejectsUnknownTag(t *testing.T) {
	_, err := Decode(`{"Bogus": 1}`)
	if err == nil {
		t.Fatal("expected an error for an unknown AST tag")
	}
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	_, err := Decode(`{not json`)
	if err == nil {
		t.Fatal("expected an error for invalid JSON")
	}
}

func TestDecodeRejectsNull(t *testing.T) {
	_, err := Decode(`null`)
	if err == nil {
		t.Fatal("expected an error for null")
	}
}
