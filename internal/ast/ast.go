// Package ast defines the typed Expression tree exl programs are evaluated
// against, along with the JSON-shaped wire format (§4.2/§6.4 of the
// specification) used to move a parsed program between the parser and the
// evaluator, or to hand a pre-parsed program to an embedder directly.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is the base interface every AST node implements. The tree is
// a tagged sum type realized through Go's interface dispatch: each
// concrete type below corresponds to exactly one variant in spec.md §3.
type Expression interface {
	exprNode()
	String() string
}

// Integer is an integer literal leaf.
type Integer struct {
	Value int64
}

func (*Integer) exprNode()          {}
func (i *Integer) String() string   { return strconv.FormatInt(i.Value, 10) }

// String is a string literal leaf.
type String struct {
	Value string
}

func (*String) exprNode()        {}
func (s *String) String() string { return strconv.Quote(s.Value) }

// Boolean is a boolean literal leaf. The grammar never produces this from
// source text directly (true/false are identifiers bound in the default
// environment); it exists so a JSON-shaped AST supplied directly (§6.1's
// "pre-parsed AST" mode) can embed a literal boolean.
type Boolean struct {
	Value bool
}

func (*Boolean) exprNode() {}
func (b *Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}

// Identifier names a binding to resolve in the environment.
type Identifier struct {
	Name string
}

func (*Identifier) exprNode()        {}
func (i *Identifier) String() string { return i.Name }

// ArrayLiteral is a bare JSON array appearing where an Expression was
// expected; it evaluates to a list value whose elements are the evaluated
// children (spec.md §4.3, "used only for nested argument decoding").
type ArrayLiteral struct {
	Elems []Expression
}

func (*ArrayLiteral) exprNode() {}
func (a *ArrayLiteral) String() string {
	parts := make([]string, len(a.Elems))
	for i, e := range a.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Block is an ordered sequence of expressions evaluated for effect; its
// value is the value of the last expression, or false if empty.
type Block struct {
	Exprs []Expression
}

func (*Block) exprNode() {}
func (b *Block) String() string {
	parts := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		parts[i] = e.String()
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

// Lambda captures an ordered parameter-name list and a body block. No
// evaluation of the body occurs until the lambda is applied.
type Lambda struct {
	Params []string
	Body   *Block
}

func (*Lambda) exprNode() {}
func (l *Lambda) String() string {
	return fmt.Sprintf("lambda(%s) %s", strings.Join(l.Params, ", "), l.Body.String())
}

// Application is a function call: a head expression and its argument list.
type Application struct {
	Head Expression
	Args []Expression
}

func (*Application) exprNode() {}
func (a *Application) String() string {
	parts := make([]string, len(a.Args))
	for i, e := range a.Args {
		parts[i] = e.String()
	}
	return fmt.Sprintf("%s(%s)", a.Head.String(), strings.Join(parts, ", "))
}

// Clause is a single (condition => result) pair inside a Cond.
type Clause struct {
	Cond   Expression
	Result Expression
}

// Cond is an ordered list of clauses; the first clause whose condition is
// true supplies the result. If none match, Cond evaluates to false.
type Cond struct {
	Clauses []Clause
}

func (*Cond) exprNode() {}
func (c *Cond) String() string {
	parts := make([]string, len(c.Clauses))
	for i, cl := range c.Clauses {
		parts[i] = fmt.Sprintf("(%s => %s)", cl.Cond.String(), cl.Result.String())
	}
	return "cond " + strings.Join(parts, " ")
}

// Let introduces a new binding in a fresh child frame.
type Let struct {
	Name  string
	Value Expression
}

func (*Let) exprNode()        {}
func (l *Let) String() string { return fmt.Sprintf("let %s = %s", l.Name, l.Value.String()) }

// Def binds a name into the current frame, enabling mutually-recursive
// declarations within a block.
type Def struct {
	Name  string
	Value Expression
}

func (*Def) exprNode()        {}
func (d *Def) String() string { return fmt.Sprintf("def %s = %s", d.Name, d.Value.String()) }

// Assignment mutates the first enclosing frame that already defines Name.
type Assignment struct {
	Name  string
	Value Expression
}

func (*Assignment) exprNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.String())
}
