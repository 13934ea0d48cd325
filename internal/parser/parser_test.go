package parser

import (
	"strings"
	"testing"

	"github.com/exlang/exl/internal/ast"
)

func mustParse(t *testing.T, source string) ast.Expression {
	t.Helper()
	out, diag := Parse("<test>", source)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %s", diag.Error())
	}
	expr, err := ast.Decode(out)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return expr
}

func TestParseAtoms(t *testing.T) {
	if _, ok := mustParse(t, "42").(*ast.Integer); !ok {
		t.Fatal("expected *ast.Integer")
	}
	if _, ok := mustParse(t, `"hi"`).(*ast.String); !ok {
		t.Fatal("expected *ast.String")
	}
	if _, ok := mustParse(t, "x").(*ast.Identifier); !ok {
		t.Fatal("expected *ast.Identifier")
	}
}

func TestParseApplicationChain(t *testing.T) {
	expr := mustParse(t, "f(x)(y)")
	outer, ok := expr.(*ast.Application)
	if !ok {
		t.Fatalf("got %T, want outer *ast.Application", expr)
	}
	if len(outer.Args) != 1 {
		t.Fatalf("got %d outer args, want 1", len(outer.Args))
	}
	inner, ok := outer.Head.(*ast.Application)
	if !ok {
		t.Fatalf("got %T, want inner *ast.Application", outer.Head)
	}
	if len(inner.Args) != 1 {
		t.Fatalf("got %d inner args, want 1", len(inner.Args))
	}
	if _, ok := inner.Head.(*ast.Identifier); !ok {
		t.Fatalf("got %T, want *ast.Identifier", inner.Head)
	}
}

func TestParseLambdaAndLambdaAlias(t *testing.T) {
	for _, src := range []string{"lambda(n) { n }", "λ(n) { n }"} {
		expr := mustParse(t, src)
		lambda, ok := expr.(*ast.Lambda)
		if !ok {
			t.Fatalf("%q: got %T, want *ast.Lambda", src, expr)
		}
		if len(lambda.Params) != 1 || lambda.Params[0] != "n" {
			t.Fatalf("%q: got params %v", src, lambda.Params)
		}
	}
}

func TestParseCond(t *testing.T) {
	expr := mustParse(t, "cond (true => 1) (false => 2)")
	cond, ok := expr.(*ast.Cond)
	if !ok {
		t.Fatalf("got %T, want *ast.Cond", expr)
	}
	if len(cond.Clauses) != 2 {
		t.Fatalf("got %d clauses, want 2", len(cond.Clauses))
	}
}

func TestParseCondRequiresAtLeastOneClause(t *testing.T) {
	_, diag := Parse("<test>", "cond")
	if diag == nil {
		t.Fatal("expected a diagnostic for cond with no clauses")
	}
}

func TestParseLetWithoutEquals(t *testing.T) {
	expr := mustParse(t, "{ let x 1; x }")
	block, ok := expr.(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block", expr)
	}
	let, ok := block.Exprs[0].(*ast.Let)
	if !ok {
		t.Fatalf("got %T, want *ast.Let", block.Exprs[0])
	}
	if let.Name != "x" {
		t.Fatalf("got name %q, want x", let.Name)
	}
	if v, ok := let.Value.(*ast.Integer); !ok || v.Value != 1 {
		t.Fatalf("got value %#v, want Integer(1)", let.Value)
	}
}

func TestParseDef(t *testing.T) {
	expr := mustParse(t, "{ def f lambda() { 1 }; f() }")
	block := expr.(*ast.Block)
	def, ok := block.Exprs[0].(*ast.Def)
	if !ok {
		t.Fatalf("got %T, want *ast.Def", block.Exprs[0])
	}
	if def.Name != "f" {
		t.Fatalf("got name %q, want f", def.Name)
	}
}

func TestParseAssignment(t *testing.T) {
	expr := mustParse(t, "{ let x 1; x = 2 }")
	block := expr.(*ast.Block)
	assign, ok := block.Exprs[1].(*ast.Assignment)
	if !ok {
		t.Fatalf("got %T, want *ast.Assignment", block.Exprs[1])
	}
	if assign.Name != "x" {
		t.Fatalf("got name %q, want x", assign.Name)
	}
}

func TestParseMissingBlockProducesDiagnostic(t *testing.T) {
	_, diag := Parse("<test>", "let x 1")
	// "let x 1" alone is valid at the top level (no block required); use
	// lambda, which does require one, to exercise the missing-block path.
	_ = diag
	_, diag = Parse("<test>", "lambda(n) n")
	if diag == nil {
		t.Fatal("expected a missing-block diagnostic")
	}
	if !strings.Contains(diag.Error(), "Expected a block") {
		t.Fatalf("got %q", diag.Error())
	}
}

func TestParseUnclosedBlockDecoratesDiagnostic(t *testing.T) {
	_, diag := Parse("<test>", "{ let x 5 ")
	if diag == nil {
		t.Fatal("expected a diagnostic for an unclosed block")
	}
	msg := diag.Error()
	if !strings.Contains(msg, "Found end of block") {
		t.Fatalf("expected relabeled primary message, got %q", msg)
	}
	if !strings.Contains(msg, "Found opening '{' here") {
		t.Fatalf("expected secondary label, got %q", msg)
	}
	if !strings.Contains(msg, "Close the block with a '}'") {
		t.Fatalf("expected help text, got %q", msg)
	}
}

func TestParseTrailingTokenIsAnError(t *testing.T) {
	_, diag := Parse("<test>", "1 2")
	if diag == nil {
		t.Fatal("expected a diagnostic for trailing input")
	}
}

func TestParseLexicalErrorTakesPriority(t *testing.T) {
	_, diag := Parse("<test>", "let 99999999999999999999 1")
	if diag == nil {
		t.Fatal("expected a diagnostic")
	}
	if diag.Kind.String() != "lexical error" {
		t.Fatalf("got kind %s, want lexical error", diag.Kind)
	}
}
