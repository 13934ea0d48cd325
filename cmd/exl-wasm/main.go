//go:build js && wasm

// Package main is the WebAssembly entry point for the exl interpreter.
//
// Build with:
//   GOOS=js GOARCH=wasm go build -o exl.wasm ./cmd/exl-wasm
//
// Usage from JavaScript:
//   <script src="wasm_exec.js"></script>
//   <script>
//     const go = new Go();
//     WebAssembly.instantiateStreaming(fetch("exl.wasm"), go.importObject)
//       .then((result) => {
//         go.run(result.instance);
//         // window.Exl.run(source) is now available
//       });
//   </script>
package main

import (
	"syscall/js"

	"github.com/exlang/exl/pkg/wasm"
)

func main() {
	done := make(chan struct{})

	wasm.RegisterAPI()
	js.Global().Get("console").Call("log", "exl WASM module initialized")

	<-done
}
