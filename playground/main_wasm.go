//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/corelang/pytocpp/internal/compiler"
)

func main() {
	js.Global().Set("compileSRC", js.FuncOf(compileSRCWrapper))

	// Keep the program alive
	select {}
}

// compileSRCWrapper wraps the compilation logic with panic recovery
func compileSRCWrapper(this js.Value, args []js.Value) interface{} {
	var result map[string]interface{}

	defer func() {
		if r := recover(); r != nil {
			result = make(map[string]interface{})
			result["code"] = ""
			result["errors"] = []interface{}{fmt.Sprintf("panic: %v", r)}
		}
	}()

	if len(args) != 1 {
		result = make(map[string]interface{})
		result["code"] = ""
		result["errors"] = []interface{}{"expected 1 argument (source code)"}
		return js.ValueOf(result)
	}

	source := args[0].String()
	code, errs := compileSRC(source)

	result = make(map[string]interface{})
	result["code"] = code

	jsErrors := make([]interface{}, len(errs))
	for i, err := range errs {
		jsErrors[i] = err
	}
	result["errors"] = jsErrors

	return js.ValueOf(result)
}

// compileSRC compiles a source string and returns the generated C++ code
// and any diagnostics as display strings.
func compileSRC(source string) (string, []string) {
	code, _, logger := compiler.Compile(source)
	if !logger.HasErrors() {
		return code, nil
	}

	diags := logger.Diagnostics()
	errs := make([]string, len(diags))
	for i, d := range diags {
		if d.Column > 0 {
			errs[i] = fmt.Sprintf("error[%s]: %s (Line %d, Column %d)", d.Kind, d.Message, d.Line, d.Column)
		} else {
			errs[i] = fmt.Sprintf("error[%s]: %s", d.Kind, d.Message)
		}
	}
	return "", errs
}
