// Package generator walks the AST in pre-order and emits the C++
// translation unit.
//
// The generator owns the symbol table: every scope it enters is exited
// through ExitAndDeclare, and the returned declarations are spliced in
// above the body they came from. That hoist is what makes the output
// valid C++ even though SRC allows use-before-declaration inside a block.
package generator

import (
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/ast"
	"github.com/corelang/pytocpp/internal/compiler/symtab"
	"github.com/corelang/pytocpp/internal/compiler/utils"
)

type Generator struct {
	symbols *symtab.Table
	indent  int

	// inConstructor flips return emission: __init__ bodies return void.
	inConstructor bool
}

func New() *Generator {
	return &Generator{symbols: symtab.New()}
}

// Generate emits the whole translation unit. Definitions stay at file
// scope; every other top-level statement is collected into a synthetic
// main that returns 0. Hoisted globals are split by kind: function
// forward declarations go to file scope above the definitions (so
// mutually recursive functions resolve), variables to the top of main.
func (g *Generator) Generate(prog *ast.Program) string {
	var defs, mainBody strings.Builder

	for _, stmt := range prog.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDef:
			g.indent = 0
			g.genFunctionDef(&defs, s)
			defs.WriteString("\n")
		case *ast.ClassDef:
			g.indent = 0
			g.genClassDef(&defs, s)
			defs.WriteString("\n")
		default:
			g.indent = 1
			g.genStatement(&mainBody, stmt)
		}
	}

	decls := g.symbols.ExitAndDeclare(0)

	var out strings.Builder
	out.WriteString("#include \"util.hpp\"\n\n")

	var wroteForward bool
	for _, d := range decls {
		if d.Kind == symtab.Function {
			out.WriteString(d.Text + "\n")
			wroteForward = true
		}
	}
	if wroteForward {
		out.WriteString("\n")
	}

	out.WriteString(defs.String())

	out.WriteString("int main() {\n")
	for _, d := range decls {
		if d.Kind == symtab.Variable {
			out.WriteString(utils.Indent(1) + d.Text + "\n")
		}
	}
	out.WriteString(mainBody.String())
	out.WriteString(utils.Indent(1) + "return 0;\n")
	out.WriteString("}\n")
	return out.String()
}

// line writes one full source line at the current indent level.
func (g *Generator) line(b *strings.Builder, text string) {
	b.WriteString(utils.Indent(g.indent))
	b.WriteString(text)
	b.WriteString("\n")
}

// genBlock emits the statements of a control-flow body one level deeper.
// Control-flow bodies share the enclosing function's scope, so no symbol
// table push happens here — only function and class bodies own a scope.
func (g *Generator) genBlock(b *strings.Builder, block *ast.Block) {
	g.indent++
	for _, stmt := range block.Statements {
		g.genStatement(b, stmt)
	}
	g.indent--
}

// endsWithReturn reports whether the block's last statement is a return,
// so function emission knows whether to append the implicit "return var();".
func endsWithReturn(block *ast.Block) bool {
	if block == nil || len(block.Statements) == 0 {
		return false
	}
	_, ok := block.Statements[len(block.Statements)-1].(*ast.ReturnStmt)
	return ok
}
