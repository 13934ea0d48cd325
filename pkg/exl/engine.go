// Package exl is the embeddable front end: a small functional-options API
// over the lexer/parser/ast/interp packages, letting a host program parse
// and evaluate exl source (or a pre-parsed AST document) without touching
// internal/* directly. Modeled on the engine shape of a typical embeddable
// scripting front end: configure with options, call Eval, inspect a
// Result.
package exl

import (
	"io"
	"strings"

	"github.com/exlang/exl/internal/ast"
	"github.com/exlang/exl/internal/errors"
	"github.com/exlang/exl/internal/interp"
	"github.com/exlang/exl/internal/parser"
)

// Option configures an evaluation.
type Option func(*config)

type config struct {
	output       io.Writer
	dynamicScope bool
	captureOut   bool
	sourceName   string
}

// WithOutput streams print/println/dbg output to w as it happens.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithDynamicScope switches function application from the default lexical
// scope to dynamic scope (spec.md §4.3).
func WithDynamicScope() Option {
	return func(c *config) { c.dynamicScope = true }
}

// WithCapturedOutput buffers print/println/dbg output into Result.Output
// instead of streaming it to an io.Writer.
func WithCapturedOutput() Option {
	return func(c *config) { c.captureOut = true }
}

// WithSourceName sets the name reported in diagnostics (default "<input>").
func WithSourceName(name string) Option {
	return func(c *config) { c.sourceName = name }
}

// Result is the outcome of a single Eval/EvalAST call.
type Result struct {
	Success    bool
	Value      string
	Output     string
	Diagnostic *errors.Diagnostic
	EvalErr    *interp.EvalError
}

func (r Result) Error() string {
	switch {
	case r.Diagnostic != nil:
		return r.Diagnostic.Error()
	case r.EvalErr != nil:
		return r.EvalErr.Error()
	default:
		return ""
	}
}

// Parse lexes and parses source, returning the JSON-shaped AST wire format
// (spec.md §4.2/§6.4) on success.
func Parse(sourceName, source string) (string, *errors.Diagnostic) {
	if sourceName == "" {
		sourceName = "<input>"
	}
	return parser.Parse(sourceName, source)
}

// Eval parses and evaluates source text in one step.
func Eval(source string, opts ...Option) Result {
	cfg := resolve(opts)
	astJSON, diag := Parse(cfg.sourceName, source)
	if diag != nil {
		return Result{Diagnostic: diag}
	}
	return evalASTJSON(astJSON, cfg)
}

// EvalAST evaluates a caller-supplied JSON-shaped AST document directly,
// skipping the lexer and parser entirely (spec.md §6.1/§6.2's "pre-parsed
// AST" input path).
func EvalAST(astJSON string, opts ...Option) Result {
	return evalASTJSON(astJSON, resolve(opts))
}

func evalASTJSON(astJSON string, cfg *config) Result {
	expr, err := ast.Decode(astJSON)
	if err != nil {
		return Result{Diagnostic: errors.New(errors.KindUnexpectedToken, cfg.sourceName, astJSON,
			errors.Span{Start: 0, End: 1}, err.Error())}
	}

	it := interp.New(cfg.output)
	it.Global.StoreOutput = cfg.captureOut
	it.Global.LexicalScope = !cfg.dynamicScope

	val, evalErr := interp.Eval(expr, it)
	output := strings.Join(it.Global.Captured, "")
	if evalErr != nil {
		return Result{Output: output, EvalErr: evalErr}
	}
	return Result{Success: true, Value: val.String(), Output: output}
}

func resolve(opts []Option) *config {
	cfg := &config{sourceName: "<input>"}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

// Run is a convenience entry point for hosts that just want a single
// string out of a program: its captured output followed by the display
// form of its final value, or by the diagnostic/eval error text on failure.
func Run(source string) string {
	r := Eval(source, WithCapturedOutput())
	if !r.Success {
		return r.Output + r.Error()
	}
	return r.Output + r.Value
}
