package interp

import "github.com/exlang/exl/internal/ast"

// Eval walks expr against interp's current frame, implementing the
// per-variant evaluation rules of spec.md §4.3. Block and function
// application restore the prior frame on every exit — success or error —
// via defer, so a runtime error never leaves the interpreter's current
// frame pointing into a scope that should have been torn down. Let (and a
// def that redefines a name) push a frame without restoring it; that frame
// is discarded when the enclosing block or function body exits.
func Eval(expr ast.Expression, interp *Interpreter) (Value, *EvalError) {
	switch n := expr.(type) {
	case *ast.Integer:
		return &IntegerValue{Value: n.Value}, nil

	case *ast.String:
		return &StringValue{Value: n.Value}, nil

	case *ast.Boolean:
		return &BooleanValue{Value: n.Value}, nil

	case *ast.ArrayLiteral:
		elems := make([]Value, len(n.Elems))
		for i, e := range n.Elems {
			v, err := Eval(e, interp)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return &ListValue{Elems: elems}, nil

	case *ast.Identifier:
		v, ok := interp.Frame.Get(n.Name)
		if !ok {
			return nil, newUndefinedSymbolError(n.Name)
		}
		return v, nil

	case *ast.Block:
		return evalBlock(n, interp)

	case *ast.Lambda:
		return NewUserFunction(n.Params, n.Body, interp.Frame), nil

	case *ast.Application:
		return evalApplication(n, interp)

	case *ast.Cond:
		return evalCond(n, interp)

	case *ast.Let:
		return evalLet(n, interp)

	case *ast.Def:
		return evalDef(n, interp)

	case *ast.Assignment:
		return evalAssignment(n, interp)

	default:
		return nil, newRuntimeError("unhandled expression node %T", expr)
	}
}

// evalBlock pushes a fresh child frame, evaluates each expression in order
// for its value, and always restores the enclosing frame before returning —
// bindings introduced inside the block (by let or def) never leak out.
func evalBlock(b *ast.Block, interp *Interpreter) (Value, *EvalError) {
	return evalBlockIn(b, interp, NewFrame(interp.Frame))
}

// evalBlockIn is evalBlock generalized to an explicit starting frame, used
// by function application to bind parameters before running the body.
func evalBlockIn(b *ast.Block, interp *Interpreter, frame *Frame) (Value, *EvalError) {
	outer := interp.Frame
	interp.Frame = frame
	defer func() { interp.Frame = outer }()

	var result Value = &BooleanValue{Value: false}
	for _, e := range b.Exprs {
		v, err := Eval(e, interp)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalApplication evaluates the head to a function value, evaluates every
// argument left-to-right, then dispatches to the builtin or user-function
// path.
func evalApplication(n *ast.Application, interp *Interpreter) (Value, *EvalError) {
	head, err := Eval(n.Head, interp)
	if err != nil {
		return nil, err
	}
	fn, ok := head.(Function)
	if !ok {
		return nil, newTypeError("function", head.Type())
	}

	args := make([]Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Eval(a, interp)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch f := fn.(type) {
	case *BuiltinFunction:
		return f.Fn(args, interp.Global)
	case *UserFunction:
		return applyUserFunction(f, args, interp)
	default:
		return nil, newRuntimeError("unhandled function variant %T", fn)
	}
}

// applyUserFunction binds args to f's parameters in a new frame and
// evaluates its body there. The new frame's parent is f's captured frame
// under lexical scope (the default), or the caller's current frame under
// dynamic scope — spec.md §4.3's "lexical_scope flag" switch, resolved at
// application time rather than at closure-creation time.
func applyUserFunction(f *UserFunction, args []Value, interp *Interpreter) (Value, *EvalError) {
	if len(args) != len(f.Params) {
		return nil, newArgCountError(f.Name, len(f.Params), len(args))
	}
	var parent *Frame
	if interp.Global.LexicalScope {
		parent = f.Env
	} else {
		parent = interp.Frame
	}
	frame := NewFrame(parent)
	for i, p := range f.Params {
		frame.Define(p, args[i])
	}
	return evalBlockIn(f.Body, interp, frame)
}

// evalCond evaluates clauses in order, returning the result of the first
// whose condition evaluates to true. A non-boolean condition is a type
// error. If no clause matches, Cond evaluates to false.
func evalCond(n *ast.Cond, interp *Interpreter) (Value, *EvalError) {
	for _, cl := range n.Clauses {
		condVal, err := Eval(cl.Cond, interp)
		if err != nil {
			return nil, err
		}
		b, ok := condVal.(*BooleanValue)
		if !ok {
			return nil, newTypeError("boolean", condVal.Type())
		}
		if b.Value {
			return Eval(cl.Result, interp)
		}
	}
	return &BooleanValue{Value: false}, nil
}

// evalLet evaluates the value in the current frame, then pushes a new
// child frame and defines the binding there — so a let can shadow an
// outer binding of the same name without mutating it, and the shadow
// disappears when the enclosing block ends.
func evalLet(n *ast.Let, interp *Interpreter) (Value, *EvalError) {
	value, err := Eval(n.Value, interp)
	if err != nil {
		return nil, err
	}
	interp.Frame = NewFrame(interp.Frame)
	interp.Frame.Define(n.Name, value)
	return value, nil
}

// evalDef defines the binding in the current frame, without pushing a new
// one, so two sibling defs in the same block can see each other (mutual
// recursion) — unless the name is already bound directly in that frame. A
// redefinition of an existing name instead shadows it in a fresh child
// frame, so a closure already captured (by an earlier def/lambda in this
// same frame) keeps resolving the prior binding rather than observing the
// rebind through the frame it shares a pointer with (spec.md §8, Testable
// Property 1: `{ def x 1; def f λ() { x }; def x 2; f() }` must still
// yield 1 under lexical scope).
func evalDef(n *ast.Def, interp *Interpreter) (Value, *EvalError) {
	redefinition := interp.Frame.DefinedHere(n.Name)
	value, err := Eval(n.Value, interp)
	if err != nil {
		return nil, err
	}
	if redefinition {
		interp.Frame = NewFrame(interp.Frame)
	}
	interp.Frame.Define(n.Name, value)
	return value, nil
}

// evalAssignment mutates the nearest enclosing frame that already defines
// the name. Assigning to an undefined name is an error (spec.md §4.3).
func evalAssignment(n *ast.Assignment, interp *Interpreter) (Value, *EvalError) {
	value, err := Eval(n.Value, interp)
	if err != nil {
		return nil, err
	}
	if !interp.Frame.Assign(n.Name, value) {
		return nil, newUndefinedSymbolError(n.Name)
	}
	return value, nil
}
