// Package parser implements a recursive-descent parser over the exl
// grammar (spec.md §4.2), emitting the JSON-shaped wire format via
// internal/ast's builder functions and reporting errors through
// internal/errors diagnostics.
package parser

import (
	"fmt"

	"github.com/exlang/exl/internal/ast"
	"github.com/exlang/exl/internal/errors"
	"github.com/exlang/exl/internal/lexer"
)

// Parser turns a token stream into the AST wire format.
type Parser struct {
	lex    *lexer.Lexer
	name   string
	source string

	curToken  lexer.Token
	peekToken lexer.Token
}

// New creates a Parser for the given named source text.
func New(name, source string) *Parser {
	p := &Parser{lex: lexer.New(name, source), name: name, source: source}
	p.curToken = p.lex.NextToken()
	p.peekToken = p.lex.NextToken()
	return p
}

func (p *Parser) advance() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) span(tok lexer.Token) errors.Span {
	end := tok.Offset + len(tok.Text)
	if end <= tok.Offset {
		end = tok.Offset + 1
	}
	return errors.Span{Start: tok.Offset, End: end}
}

// Parse lexes and parses source into the JSON-shaped AST wire format
// described in spec.md §4.2/§6.4. On success it returns the JSON text and
// a nil diagnostic; on failure it returns an empty string and the first
// diagnostic encountered (a lexical error takes priority over a
// downstream parse error, since it is usually the root cause).
func Parse(name, source string) (string, *errors.Diagnostic) {
	p := New(name, source)
	exprJSON, err := p.parseExp()
	if err == nil && p.curToken.Type != lexer.EOF {
		err = errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "unexpected token after expression")
	}
	if len(p.lex.Errors) > 0 {
		return "", p.lex.Errors[0]
	}
	if err != nil {
		return "", err
	}
	return exprJSON, nil
}

// parseExp implements EXP := ATOM | FORM | BLOCK, followed by an optional
// APPLICATION suffix, reparsed greedily so that "f(x)(y)" chains.
func (p *Parser) parseExp() (string, *errors.Diagnostic) {
	var exprJSON string
	var err *errors.Diagnostic

	switch p.curToken.Type {
	case lexer.IDENT, lexer.INT, lexer.STRING:
		exprJSON, err = p.parseAtom()
	case lexer.LAMBDA, lexer.COND, lexer.LET, lexer.DEF:
		exprJSON, err = p.parseForm()
	case lexer.LBRACE:
		exprJSON, err = p.parseBlock()
	default:
		err = errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), fmt.Sprintf("unexpected token %s", p.curToken.Type))
	}
	if err != nil {
		return "", err
	}

	for p.curToken.Type == lexer.LPAREN {
		exprJSON, err = p.parseApplication(exprJSON)
		if err != nil {
			return "", err
		}
	}
	return exprJSON, nil
}

// parseForm implements FORM := LAMBDA | COND | LET | DEF.
func (p *Parser) parseForm() (string, *errors.Diagnostic) {
	switch p.curToken.Type {
	case lexer.DEF:
		return p.parseDef()
	case lexer.LET:
		return p.parseLet()
	case lexer.LAMBDA:
		return p.parseLambda()
	case lexer.COND:
		return p.parseCond()
	default:
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected a form")
	}
}

// parseAtom implements ATOM := IDENTIFIER | INTEGER | STRING. An
// identifier immediately followed by '=' (not '=>') is reinterpreted here
// as an ASSIGN production, per the grammar note that assignment is
// "parsed inside ATOM resolution".
func (p *Parser) parseAtom() (string, *errors.Diagnostic) {
	switch p.curToken.Type {
	case lexer.IDENT:
		name := p.curToken.Text
		p.advance()
		if p.curToken.Type == lexer.EQUALS {
			p.advance()
			valueJSON, err := p.parseExp()
			if err != nil {
				return "", err
			}
			return ast.AssignmentJSON(name, valueJSON), nil
		}
		return ast.IdentifierJSON(name), nil
	case lexer.INT:
		v := p.curToken.IntVal
		p.advance()
		return ast.IntegerJSON(v), nil
	case lexer.STRING:
		v := p.curToken.Text
		p.advance()
		return ast.StringJSON(v), nil
	default:
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected an identifier, integer, or string")
	}
}

// parseApplication implements APPLICATION := EXP '(' ARGLIST? ')'.
func (p *Parser) parseApplication(headJSON string) (string, *errors.Diagnostic) {
	p.advance() // consume '('
	var args []string
	if p.curToken.Type != lexer.RPAREN {
		for {
			argJSON, err := p.parseExp()
			if err != nil {
				return "", err
			}
			args = append(args, argJSON)
			if p.curToken.Type == lexer.COMMA {
				p.advance()
				continue
			}
			break
		}
	}
	if p.curToken.Type != lexer.RPAREN {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected ')' to close argument list")
	}
	p.advance() // consume ')'
	return ast.ApplicationJSON(headJSON, args), nil
}

// parseLambda implements LAMBDA := ('lambda'|'λ') '(' PARAMS? ')' BLOCK.
func (p *Parser) parseLambda() (string, *errors.Diagnostic) {
	p.advance() // consume 'lambda'/'λ'
	if p.curToken.Type != lexer.LPAREN {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected '(' after lambda")
	}
	p.advance() // consume '('
	var params []string
	for p.curToken.Type == lexer.IDENT {
		params = append(params, p.curToken.Text)
		p.advance()
		if p.curToken.Type == lexer.COMMA {
			p.advance()
			continue
		}
		break
	}
	if p.curToken.Type != lexer.RPAREN {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected ')' to close parameter list")
	}
	p.advance() // consume ')'
	blockJSON, err := p.parseBlock()
	if err != nil {
		return "", err
	}
	return ast.LambdaJSON(params, blockJSON), nil
}

// parseCond implements COND := 'cond' CLAUSE+.
func (p *Parser) parseCond() (string, *errors.Diagnostic) {
	p.advance() // consume 'cond'
	var clauses []string
	for p.curToken.Type == lexer.LPAREN {
		clauseJSON, err := p.parseClause()
		if err != nil {
			return "", err
		}
		clauses = append(clauses, clauseJSON)
	}
	if len(clauses) == 0 {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected at least one clause after cond")
	}
	return ast.CondJSON(clauses), nil
}

// parseClause implements CLAUSE := '(' EXP '=>' EXP ')'.
func (p *Parser) parseClause() (string, *errors.Diagnostic) {
	p.advance() // consume '('
	condJSON, err := p.parseExp()
	if err != nil {
		return "", err
	}
	if p.curToken.Type != lexer.ARROW {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected '=>' in cond clause")
	}
	p.advance() // consume '=>'
	resultJSON, err := p.parseExp()
	if err != nil {
		return "", err
	}
	if p.curToken.Type != lexer.RPAREN {
		return "", errors.New(errors.KindUnexpectedToken, p.name, p.source,
			p.span(p.curToken), "expected ')' to close cond clause")
	}
	p.advance() // consume ')'
	return ast.ClauseJSON(condJSON, resultJSON), nil
}

// parseBlock implements BLOCK := '{' ( EXP (';' EXP)* )? '}'.
func (p *Parser) parseBlock() (string, *errors.Diagnostic) {
	if p.curToken.Type != lexer.LBRACE {
		return "", errors.New(errors.KindMissingBlock, p.name, p.source,
			p.span(p.curToken), "Expected a block").
			WithHelp("Create a block with enclosing braces")
	}
	openOffset := p.curToken.Offset
	p.advance() // consume '{'

	var exprs []string
	for p.curToken.Type != lexer.RBRACE && p.curToken.Type != lexer.EOF {
		exprJSON, err := p.parseExp()
		if err != nil {
			return "", err
		}
		exprs = append(exprs, exprJSON)
		if p.curToken.Type == lexer.SEMICOLON {
			p.advance()
			continue
		}
		break
	}

	if p.curToken.Type != lexer.RBRACE {
		inner := errors.New(errors.KindMissingBlock, p.name, p.source,
			p.span(p.curToken), "Expected a block")
		return "", decorateUnclosedBlock(inner, openOffset)
	}
	p.advance() // consume '}'
	return ast.BlockJSON(exprs), nil
}

// decorateUnclosedBlock implements the required diagnostic enrichment
// (spec.md §4.2, rule 2): when a block's body ends before a matching '}'
// and the inner error is itself a missing-block error, relabel it as
// "Found end of block", point a secondary span at the opening brace, and
// set help text about closing the block.
func decorateUnclosedBlock(inner *errors.Diagnostic, openOffset int) *errors.Diagnostic {
	inner.Relabel("Found end of block")
	inner.WithSecondary(errors.Span{Start: openOffset, End: openOffset + 1}, "Found opening '{' here")
	inner.WithHelp("Close the block with a '}'")
	return inner
}

// parseLet implements LET := 'let' IDENT EXP. The reference implementation
// (original_source/interpreter/src/interpreter.rs, interpret_let) never
// consumes an '=' token despite an earlier grammar draft showing one, and
// every worked example in spec.md §8 writes "let x 1" without one; this
// parser follows the reference behavior.
func (p *Parser) parseLet() (string, *errors.Diagnostic) {
	p.advance() // consume 'let'
	if p.curToken.Type != lexer.IDENT {
		return "", errors.New(errors.KindMissingLet, p.name, p.source,
			p.span(p.curToken), "expected an identifier after let")
	}
	name := p.curToken.Text
	p.advance()
	valueJSON, err := p.parseExp()
	if err != nil {
		return "", err
	}
	return ast.LetJSON(name, valueJSON), nil
}

// parseDef implements DEF := 'def' IDENT EXP.
func (p *Parser) parseDef() (string, *errors.Diagnostic) {
	p.advance() // consume 'def'
	if p.curToken.Type != lexer.IDENT {
		return "", errors.New(errors.KindMissingLet, p.name, p.source,
			p.span(p.curToken), "expected an identifier after def")
	}
	name := p.curToken.Text
	p.advance()
	valueJSON, err := p.parseExp()
	if err != nil {
		return "", err
	}
	return ast.DefJSON(name, valueJSON), nil
}
