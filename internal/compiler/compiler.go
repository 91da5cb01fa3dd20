// Package compiler wires the transpilation pipeline together: SRC source
// text in, C++ text and diagnostics out.
package compiler

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/corelang/pytocpp/internal/compiler/ast"
	"github.com/corelang/pytocpp/internal/compiler/errors"
	"github.com/corelang/pytocpp/internal/compiler/generator"
	"github.com/corelang/pytocpp/internal/compiler/lexer"
	"github.com/corelang/pytocpp/internal/compiler/parser"
)

// Compile runs lexing, parsing and generation over one source file. Code
// generation is skipped entirely when parsing left diagnostics behind.
// The returned program is non-nil whenever parsing produced a tree, so
// callers can still dump it for inspection. A panic during parsing is an
// internal bug, reported as a location-less diagnostic rather than
// crashing the driver.
func Compile(source string) (code string, prog *ast.Program, logger *errors.Logger) {
	// The lexer scans NFC-normalized text; the logger must slice the same
	// bytes or caret columns drift on non-NFC input.
	source = norm.NFC.String(source)
	logger = errors.NewLogger(source)
	p := parser.New(lexer.NewFilter(lexer.New(source), logger), logger)

	func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log(fmt.Sprintf("internal error: %v", r), errors.Other, 0, -1)
			}
		}()
		prog = p.ParseProgram()
	}()

	if logger.HasErrors() || prog == nil {
		return "", prog, logger
	}
	return generator.New().Generate(prog), prog, logger
}
