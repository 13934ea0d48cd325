package lexer

import "testing"

func tokenTypes(t *testing.T, source string) []TokenType {
	t.Helper()
	l := New("<test>", source)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	return types
}

func TestPunctuationAndKeywords(t *testing.T) {
	types := tokenTypes(t, "let x ( ) { } , ; => = def cond lambda λ")
	want := []TokenType{
		LET, IDENT, LPAREN, RPAREN, LBRACE, RBRACE, COMMA, SEMICOLON,
		ARROW, EQUALS, DEF, COND, LAMBDA, LAMBDA, EOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i, wt := range want {
		if types[i] != wt {
			t.Errorf("token %d: got %s, want %s", i, types[i], wt)
		}
	}
}

func TestIntegerLiterals(t *testing.T) {
	l := New("<test>", "123 -5 +7")
	tok := l.NextToken()
	if tok.Type != INT || tok.IntVal != 123 {
		t.Fatalf("got %+v, want INT 123", tok)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.IntVal != -5 {
		t.Fatalf("got %+v, want INT -5", tok)
	}
	tok = l.NextToken()
	if tok.Type != INT || tok.IntVal != 7 {
		t.Fatalf("got %+v, want INT 7", tok)
	}
}

func TestIdentifierWithPunctuationSuffix(t *testing.T) {
	l := New("<test>", "zero? greater? a-b")
	tok := l.NextToken()
	if tok.Type != IDENT || tok.Text != "zero?" {
		t.Fatalf("got %+v, want IDENT zero?", tok)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Text != "greater?" {
		t.Fatalf("got %+v, want IDENT greater?", tok)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Text != "a-b" {
		t.Fatalf("got %+v, want IDENT a-b", tok)
	}
}

func TestStringEscapes(t *testing.T) {
	l := New("<test>", `"hello\nworld\t\"quoted\""`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	want := "hello\nworld\t\"quoted\""
	if tok.Text != want {
		t.Fatalf("got %q, want %q", tok.Text, want)
	}
}

func TestLineComments(t *testing.T) {
	l := New("<test>", "let x 1 // trailing comment\nlet y 2")
	types := []TokenType{}
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	want := []TokenType{LET, IDENT, INT, LET, IDENT, INT, EOF}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i, wt := range want {
		if types[i] != wt {
			t.Errorf("token %d: got %s, want %s", i, types[i], wt)
		}
	}
}

func TestUnterminatedStringRecovers(t *testing.T) {
	l := New("<test>", `"unterminated`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("got %s, want STRING", tok.Type)
	}
	if len(l.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors))
	}
}

func TestIllegalCharacterRecovers(t *testing.T) {
	l := New("<test>", "let @ x")
	tok := l.NextToken()
	if tok.Type != LET {
		t.Fatalf("got %s, want LET", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors))
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Text != "x" {
		t.Fatalf("got %+v, want IDENT x", tok)
	}
}

func TestIntegerOverflowRecordsDiagnostic(t *testing.T) {
	l := New("<test>", "99999999999999999999999999")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("got %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors) != 1 {
		t.Fatalf("got %d errors, want 1", len(l.Errors))
	}
}

func TestOffsetsAreByteAccurate(t *testing.T) {
	l := New("<test>", "  let")
	tok := l.NextToken()
	if tok.Offset != 2 {
		t.Fatalf("got offset %d, want 2", tok.Offset)
	}
}
