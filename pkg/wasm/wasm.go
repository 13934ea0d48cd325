//go:build js && wasm

// Package wasm bridges the exl engine to a JavaScript host. It exposes a
// single RegisterAPI() call, modeled on go-dws's cmd/dwscript-wasm ->
// pkg/wasm.RegisterAPI() convention, with the actual bridging logic
// (capturing program output into a buffer rather than writing to stdout)
// grounded on Eloquence's wasm/wasm_main.go runCode.
package wasm

import (
	"syscall/js"

	"github.com/exlang/exl/pkg/exl"
)

// RegisterAPI installs window.Exl.run(source[, dynamicScope]) in the
// JavaScript global scope. Call this once from a js/wasm main before
// blocking on an empty channel to keep the module alive.
func RegisterAPI() {
	api := js.Global().Get("Object").New()
	api.Set("run", js.FuncOf(run))
	js.Global().Set("Exl", api)
}

// run is the JS-callable bridge: Exl.run(source) or Exl.run(source, true)
// for dynamic scope. It returns {output, value, error}, where error is
// empty on success.
func run(this js.Value, p []js.Value) any {
	if len(p) == 0 {
		return jsResult("", "", "exl: run() requires a source string argument")
	}
	source := p[0].String()
	dynamicScope := len(p) > 1 && p[1].Bool()

	var opts []exl.Option
	opts = append(opts, exl.WithCapturedOutput())
	if dynamicScope {
		opts = append(opts, exl.WithDynamicScope())
	}

	result := exl.Eval(source, opts...)
	if !result.Success {
		return jsResult(result.Output, "", result.Error())
	}
	return jsResult(result.Output, result.Value, "")
}

func jsResult(output, value, errMsg string) map[string]any {
	return map[string]any{
		"output": output,
		"value":  value,
		"error":  errMsg,
	}
}
