// Package lexer converts exl source text into a stream of Tokens carrying
// byte offsets, for use by the parser and by diagnostics.
package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/exlang/exl/internal/errors"
)

const delimiters = "\"(){},;= \t\n\r"

// Lexer tokenizes a source string one token at a time.
type Lexer struct {
	source string
	pos    int // byte offset of the next unread rune
	name   string

	// Errors accumulates lexical diagnostics recorded during NextToken.
	// The lexer recovers from an illegal character by advancing one rune
	// and continuing, so a single Lex pass can surface more than one error.
	Errors []*errors.Diagnostic
}

// New creates a Lexer for the given source text. name identifies the
// source in diagnostics (a file path, or "<stdin>").
func New(name, source string) *Lexer {
	return &Lexer{source: source, name: name}
}

func (l *Lexer) peek() (rune, int) {
	if l.pos >= len(l.source) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	return r, size
}

func (l *Lexer) peekAt(offset int) (rune, int) {
	if offset >= len(l.source) {
		return 0, 0
	}
	r, size := utf8.DecodeRuneInString(l.source[offset:])
	return r, size
}

func (l *Lexer) advance() rune {
	r, size := l.peek()
	l.pos += size
	return r
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		r, size := l.peek()
		if size == 0 {
			return
		}
		if unicode.IsSpace(r) {
			l.pos += size
			continue
		}
		if r == '/' {
			if next, nextSize := l.peekAt(l.pos + size); next == '/' {
				l.pos += size + nextSize
				for {
					c, s := l.peek()
					if s == 0 || c == '\n' {
						break
					}
					l.pos += s
				}
				continue
			}
		}
		return
	}
}

// NextToken lexes and returns the next token, skipping whitespace and line
// comments. Iteration terminates once an EOF token has been produced.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	offset := l.pos
	r, size := l.peek()
	if size == 0 {
		return Token{Type: EOF, Offset: offset}
	}

	switch r {
	case '(':
		l.pos += size
		return Token{Type: LPAREN, Text: "(", Offset: offset}
	case ')':
		l.pos += size
		return Token{Type: RPAREN, Text: ")", Offset: offset}
	case '{':
		l.pos += size
		return Token{Type: LBRACE, Text: "{", Offset: offset}
	case '}':
		l.pos += size
		return Token{Type: RBRACE, Text: "}", Offset: offset}
	case ',':
		l.pos += size
		return Token{Type: COMMA, Text: ",", Offset: offset}
	case ';':
		l.pos += size
		return Token{Type: SEMICOLON, Text: ";", Offset: offset}
	case '"':
		return l.lexString(offset)
	case '=':
		if next, nextSize := l.peekAt(l.pos + size); next == '>' {
			l.pos += size + nextSize
			return Token{Type: ARROW, Text: "=>", Offset: offset}
		}
		l.pos += size
		return Token{Type: EQUALS, Text: "=", Offset: offset}
	}

	if isDigit(r) || r == '+' || r == '-' {
		// '+'/'-' start an integer only when immediately followed by a
		// digit; otherwise they begin an identifier (e.g. "zero?" style
		// names are not affected, but a bare "-" used as an operator name
		// must still lex as an identifier).
		if isDigit(r) {
			return l.lexInteger(offset)
		}
		if next, _ := l.peekAt(l.pos + size); isDigit(next) {
			return l.lexInteger(offset)
		}
		return l.lexIdentifierOrKeyword(offset)
	}

	if isIDStart(r) {
		return l.lexIdentifierOrKeyword(offset)
	}

	// Unrecognized character: record a diagnostic and advance one rune so
	// the caller can keep lexing.
	l.Errors = append(l.Errors, errors.New(
		errors.KindLexical, l.name, l.source,
		errors.Span{Start: offset, End: offset + size},
		"unrecognized character",
	))
	l.pos += size
	return Token{Type: ILLEGAL, Text: string(r), Offset: offset}
}

func (l *Lexer) lexIdentifierOrKeyword(offset int) Token {
	start := l.pos
	for {
		r, size := l.peek()
		if size == 0 || !isIDChar(r) {
			break
		}
		l.pos += size
	}
	text := l.source[start:l.pos]
	if kw, ok := keywords[text]; ok {
		return Token{Type: kw, Text: text, Offset: offset}
	}
	return Token{Type: IDENT, Text: text, Offset: offset}
}

func (l *Lexer) lexInteger(offset int) Token {
	start := l.pos
	if r, size := l.peek(); r == '+' || r == '-' {
		l.pos += size
	}
	for {
		r, size := l.peek()
		if size == 0 || !isDigit(r) {
			break
		}
		l.pos += size
	}
	text := l.source[start:l.pos]
	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.Errors = append(l.Errors, errors.New(
			errors.KindLexical, l.name, l.source,
			errors.Span{Start: offset, End: l.pos},
			"integer literal out of range for a signed 64-bit integer",
		))
		return Token{Type: ILLEGAL, Text: text, Offset: offset}
	}
	return Token{Type: INT, Text: text, IntVal: val, Offset: offset}
}

func (l *Lexer) lexString(offset int) Token {
	l.pos++ // consume opening quote
	var sb strings.Builder
	for {
		r, size := l.peek()
		if size == 0 {
			l.Errors = append(l.Errors, errors.New(
				errors.KindLexical, l.name, l.source,
				errors.Span{Start: offset, End: l.pos},
				"unterminated string literal",
			))
			break
		}
		if r == '"' {
			l.pos += size
			break
		}
		if r == '\\' {
			escOffset := l.pos
			l.pos += size
			esc, escSize := l.peek()
			if escSize == 0 {
				l.Errors = append(l.Errors, errors.New(
					errors.KindLexical, l.name, l.source,
					errors.Span{Start: escOffset, End: l.pos},
					"unterminated escape sequence",
				))
				break
			}
			switch esc {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			default:
				l.Errors = append(l.Errors, errors.New(
					errors.KindLexical, l.name, l.source,
					errors.Span{Start: escOffset, End: l.pos + escSize},
					"invalid escape sequence",
				))
				sb.WriteRune(esc)
			}
			l.pos += escSize
			continue
		}
		sb.WriteRune(r)
		l.pos += size
	}
	return Token{Type: STRING, Text: sb.String(), Offset: offset}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isDelimiter(r rune) bool {
	return strings.ContainsRune(delimiters, r)
}

func isIDChar(r rune) bool {
	return !unicode.IsSpace(r) && !isDelimiter(r)
}

func isIDStart(r rune) bool {
	return isIDChar(r) && !isDigit(r) && r != '+' && r != '-'
}
