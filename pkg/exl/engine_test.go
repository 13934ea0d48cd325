package exl

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

func TestEvalSuccess(t *testing.T) {
	r := Eval("add(4, 5)")
	if !r.Success {
		t.Fatalf("expected success, got error: %s", r.Error())
	}
	if r.Value != "9" {
		t.Fatalf("got %q, want 9", r.Value)
	}
}

func TestEvalParseDiagnostic(t *testing.T) {
	r := Eval("{ let x 5 ")
	if r.Success {
		t.Fatal("expected failure for an unclosed block")
	}
	if r.Diagnostic == nil {
		t.Fatal("expected a diagnostic, got an eval error instead")
	}
}

func TestEvalRuntimeError(t *testing.T) {
	r := Eval("div(1, 0)")
	if r.Success {
		t.Fatal("expected failure for division by zero")
	}
	if r.EvalErr == nil {
		t.Fatal("expected an eval error, got a diagnostic instead")
	}
}

func TestEvalASTDirect(t *testing.T) {
	r := EvalAST(`{"Application":[{"Identifier":"add"},1,2]}`)
	if !r.Success {
		t.Fatalf("expected success, got error: %s", r.Error())
	}
	if r.Value != "3" {
		t.Fatalf("got %q, want 3", r.Value)
	}
}

func TestWithCapturedOutputCapturesPrintedText(t *testing.T) {
	r := Eval(`{ println("hello"); 1 }`, WithCapturedOutput())
	if !r.Success {
		t.Fatalf("expected success, got error: %s", r.Error())
	}
	if r.Output != "hello\n" {
		t.Fatalf("got output %q, want \"hello\\n\"", r.Output)
	}
}

func TestRunConvenienceFunction(t *testing.T) {
	got := Run(`{ print("value: "); 42 }`)
	if got != "value: 42" {
		t.Fatalf("got %q, want \"value: 42\"", got)
	}
}

// TestEvalSnapshots snapshots the display-form output of a handful of
// representative programs, catching accidental regressions in value
// formatting across releases.
func TestEvalSnapshots(t *testing.T) {
	programs := map[string]string{
		"factorial": `{
			def fact lambda(n) {
				cond (zero?(n) => 1)
				     (true => mul(n, fact(sub(n, 1))))
			};
			fact(6)
		}`,
		"list_sort": `sort(as_list(3, 1, 2))`,
		"cond_chain": `cond (greater?(1, 2) => "a") (less?(1, 2) => "b") (true => "c")`,
	}
	for name, program := range programs {
		r := Eval(program)
		if !r.Success {
			t.Fatalf("%s: unexpected error: %s", name, r.Error())
		}
		snaps.MatchSnapshot(t, name, r.Value)
	}
}
