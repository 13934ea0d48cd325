package errors

import (
	"strings"
	"testing"
)

func TestNewAndError(t *testing.T) {
	source := "let x 1"
	d := New(KindUnexpectedToken, "<test>", source, Span{Start: 4, End: 5}, "unexpected x")
	msg := d.Error()
	if !strings.Contains(msg, "<test>") {
		t.Errorf("expected source name in message, got %q", msg)
	}
	if !strings.Contains(msg, "unexpected x") {
		t.Errorf("expected label in message, got %q", msg)
	}
}

func TestRelabelAndWithHelp(t *testing.T) {
	d := New(KindMissingBlock, "<test>", "{ let x 1 ", Span{Start: 10, End: 11}, "Expected a block")
	d.Relabel("Found end of block").WithHelp("Close the block with a '}'")
	if d.Primary.Message != "Found end of block" {
		t.Fatalf("got %q", d.Primary.Message)
	}
	out := d.Format(false)
	if !strings.Contains(out, "help: Close the block with a '}'") {
		t.Errorf("expected help trailer, got %q", out)
	}
}

func TestWithSecondaryAppendsLabel(t *testing.T) {
	d := New(KindMissingBlock, "<test>", "{ let x 1 ", Span{Start: 10, End: 11}, "Expected a block")
	d.WithSecondary(Span{Start: 0, End: 1}, "Found opening '{' here")
	if len(d.Secondary) != 1 {
		t.Fatalf("got %d secondary labels, want 1", len(d.Secondary))
	}
	out := d.Format(false)
	if !strings.Contains(out, "Found opening '{' here") {
		t.Errorf("expected secondary label in output, got %q", out)
	}
}

func TestFormatReportsLineAndColumn(t *testing.T) {
	source := "let x 1\nlet @ 2"
	d := New(KindLexical, "<test>", source, Span{Start: 12, End: 13}, "unrecognized character")
	out := d.Format(false)
	if !strings.Contains(out, "<test>:2:5:") {
		t.Errorf("expected line:col 2:5 in output, got %q", out)
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{
		KindLexical:         "lexical error",
		KindMissingBlock:    "missing block",
		KindMissingLet:      "missing binding",
		KindUnexpectedToken: "unexpected token",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
