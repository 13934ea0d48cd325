package interp

import "io"

// Frame is a single lexical scope: a binding table plus a link to the
// enclosing frame. Frames are reference-shared rather than copied, so a
// closure that retains a *Frame observes later mutations made through that
// same frame (spec.md §4.3, "closures capture their defining frame").
type Frame struct {
	vars   map[string]Value
	parent *Frame
}

// NewFrame creates a child frame of parent. parent may be nil for the root.
func NewFrame(parent *Frame) *Frame {
	return &Frame{vars: make(map[string]Value), parent: parent}
}

// Get resolves name by walking outward through the frame chain.
func (f *Frame) Get(name string) (Value, bool) {
	for cur := f; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in this frame, shadowing any outer binding of the same
// name. Used by let (on a newly pushed frame) and def (on the current one).
func (f *Frame) Define(name string, v Value) {
	f.vars[name] = v
}

// DefinedHere reports whether name is bound directly in this frame, without
// walking to parent frames. def uses this to decide whether it is adding a
// fresh sibling binding (stays in the current frame) or redefining a name
// that a closure may already have captured (shadows in a new child frame).
func (f *Frame) DefinedHere(name string) bool {
	_, ok := f.vars[name]
	return ok
}

// Assign mutates the nearest enclosing frame that already defines name,
// leaving all other bindings untouched. It reports false if name is
// undefined anywhere in the chain.
func (f *Frame) Assign(name string, v Value) bool {
	for cur := f; cur != nil; cur = cur.parent {
		if _, ok := cur.vars[name]; ok {
			cur.vars[name] = v
			return true
		}
	}
	return false
}

// GlobalState holds the interpreter-wide configuration and side-channel
// output that built-ins read and write. It is distinct from the frame
// chain: built-ins never receive the caller's local frame (spec.md,
// Design Notes, "Built-in dispatch").
type GlobalState struct {
	// LexicalScope selects closure capture (true, the default) or
	// caller-frame capture (false) when a user function is applied.
	LexicalScope bool
	// StoreOutput, when true, causes print/println/dbg to append to
	// Captured instead of writing to Writer (used by embedders that want
	// the program's output as a string rather than on a stream).
	StoreOutput bool
	Captured    []string
	Writer      io.Writer
}

// Emit sends text to the configured output sink: Captured if StoreOutput
// is set, otherwise Writer.
func (g *GlobalState) Emit(text string) {
	if g.StoreOutput {
		g.Captured = append(g.Captured, text)
		return
	}
	if g.Writer != nil {
		io.WriteString(g.Writer, text)
	}
}

// Interpreter bundles the global state with the interpreter's current
// frame. The current frame is mutated in place as evaluation enters and
// leaves scopes (Block, Let, function application) rather than threaded
// explicitly through every call, mirroring the reference interpreter's
// single mutable "current environment" handle.
type Interpreter struct {
	Global *GlobalState
	Frame  *Frame
}

// New builds an interpreter with a fresh root frame pre-populated per
// spec.md §4.3 ("pre-populated with the constants x=10, v=5, i=1, true,
// false, and the built-ins") and lexical scope enabled by default.
func New(w io.Writer) *Interpreter {
	global := &GlobalState{LexicalScope: true, Writer: w}
	root := NewFrame(nil)
	populateDefaults(root)
	return &Interpreter{Global: global, Frame: root}
}

func populateDefaults(root *Frame) {
	root.Define("x", &IntegerValue{Value: 10})
	root.Define("v", &IntegerValue{Value: 5})
	root.Define("i", &IntegerValue{Value: 1})
	root.Define("true", &BooleanValue{Value: true})
	root.Define("false", &BooleanValue{Value: false})
	for name, fn := range builtinTable {
		root.Define(name, &BuiltinFunction{Name: name, Fn: fn})
	}
}
