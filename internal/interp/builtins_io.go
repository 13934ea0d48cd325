package interp

// builtinPrint writes the display form of each argument with no separator
// and no trailing newline, and returns the last argument (or false for a
// zero-argument call). When store_output is set, each argument becomes its
// own Captured entry (spec.md:154) rather than one joined entry per call.
func builtinPrint(args []Value, global *GlobalState) (Value, *EvalError) {
	for _, a := range args {
		global.Emit(a.String())
	}
	return lastOrFalse(args), nil
}

// builtinPrintln writes the display form of each argument with no
// separator, then a single trailing newline. Under store_output, the
// per-call trailing newline becomes a per-entry one instead (spec.md:154:
// "adding \"\n\" for println/dbg"), since each argument gets its own
// Captured entry there rather than sharing one combined write.
func builtinPrintln(args []Value, global *GlobalState) (Value, *EvalError) {
	if global.StoreOutput {
		for _, a := range args {
			global.Emit(a.String() + "\n")
		}
		return lastOrFalse(args), nil
	}
	for _, a := range args {
		global.Emit(a.String())
	}
	global.Emit("\n")
	return lastOrFalse(args), nil
}

// builtinDbg writes a debug form (type prefix plus display form) of each
// argument followed by a newline, and returns the last argument unchanged
// so dbg can be wrapped around any subexpression in place.
func builtinDbg(args []Value, global *GlobalState) (Value, *EvalError) {
	for _, a := range args {
		global.Emit(a.Type() + ": " + a.String() + "\n")
	}
	return lastOrFalse(args), nil
}

func lastOrFalse(args []Value) Value {
	if len(args) == 0 {
		return &BooleanValue{Value: false}
	}
	return args[len(args)-1]
}
