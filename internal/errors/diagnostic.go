// Package errors provides the diagnostic type shared by the lexer and
// parser: a source name, a primary labeled span, optional secondary spans,
// and an optional help string.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic so callers can branch on error category
// without string matching the message.
type Kind int

const (
	KindLexical        Kind = iota // unrecognized character or malformed literal
	KindMissingBlock                // a block was expected but something else started
	KindMissingLet                  // a let/def expression is missing its identifier
	KindUnexpectedToken              // a token did not fit any production
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindMissingBlock:
		return "missing block"
	case KindMissingLet:
		return "missing binding"
	case KindUnexpectedToken:
		return "unexpected token"
	default:
		return "error"
	}
}

// Span is a half-open byte range into the source text.
type Span struct {
	Start int
	End   int
}

// Label pairs a span with the message that should be rendered under it.
type Label struct {
	Span    Span
	Message string
}

// Diagnostic is the shared error type produced by the lexer and parser.
type Diagnostic struct {
	Source     string // source name, e.g. a file path or "<stdin>"
	SourceText string
	Kind       Kind
	Primary    Label
	Secondary  []Label
	Help       string
}

// New builds a diagnostic with only a primary label.
func New(kind Kind, source, sourceText string, span Span, label string) *Diagnostic {
	return &Diagnostic{
		Source:     source,
		SourceText: sourceText,
		Kind:       kind,
		Primary:    Label{Span: span, Message: label},
	}
}

// Error implements the error interface so a *Diagnostic can be returned
// anywhere a plain error is expected.
func (d *Diagnostic) Error() string {
	return d.Format(false)
}

// Relabel changes the primary label's message in place, returning the
// receiver for chaining. Used by enclosing productions to re-describe an
// inner error as it unwinds (spec.md §4.2).
func (d *Diagnostic) Relabel(message string) *Diagnostic {
	d.Primary.Message = message
	return d
}

// WithSecondary appends a secondary label and returns the receiver.
func (d *Diagnostic) WithSecondary(span Span, message string) *Diagnostic {
	d.Secondary = append(d.Secondary, Label{Span: span, Message: message})
	return d
}

// WithHelp sets the help string and returns the receiver.
func (d *Diagnostic) WithHelp(help string) *Diagnostic {
	d.Help = help
	return d
}

// lineCol converts a byte offset into a 1-indexed line and column.
func (d *Diagnostic) lineCol(offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range d.SourceText {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

func (d *Diagnostic) sourceLine(lineNum int) string {
	lines := strings.Split(d.SourceText, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

func (d *Diagnostic) renderLabel(sb *strings.Builder, lbl Label) {
	line, col := d.lineCol(lbl.Span.Start)
	lineNumStr := fmt.Sprintf("%4d | ", line)
	sb.WriteString(lineNumStr)
	sb.WriteString(d.sourceLine(line))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	width := lbl.Span.End - lbl.Span.Start
	if width < 1 {
		width = 1
	}
	sb.WriteString(strings.Repeat("^", width))
	if lbl.Message != "" {
		sb.WriteString(" ")
		sb.WriteString(lbl.Message)
	}
	sb.WriteString("\n")
}

// Format renders the diagnostic as a multi-line, human-readable report:
// a header naming the source and the primary span's position, the source
// excerpt with a caret under the primary span, each secondary span
// similarly annotated, and a trailing help line when present.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	line, col := d.lineCol(d.Primary.Span.Start)
	sb.WriteString(fmt.Sprintf("error in %s:%d:%d: %s\n", d.Source, line, col, d.Kind))

	d.renderLabel(&sb, d.Primary)

	for _, lbl := range d.Secondary {
		sb.WriteString("\n")
		d.renderLabel(&sb, lbl)
	}

	if d.Help != "" {
		sb.WriteString("\nhelp: ")
		sb.WriteString(d.Help)
		sb.WriteString("\n")
	}

	return sb.String()
}
