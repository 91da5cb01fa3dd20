package generator

import (
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/ast"
)

// builtinNamespace lists the names routed through the runtime prelude's
// Builtin namespace. "sorted" is deliberately absent: the historical
// std::sort mapping returned the wrong type, so a call to sorted falls
// through to ordinary call syntax instead of reproducing it.
var builtinNamespace = map[string]bool{
	"len":   true,
	"sum":   true,
	"min":   true,
	"max":   true,
	"iter":  true,
	"next":  true,
	"abs":   true,
	"round": true,
	"pow":   true,
	"str":   true,
	"int":   true,
	"float": true,
	"tuple": true,
}

// builtinWrappers maps collection constructors to the prelude wrappers.
var builtinWrappers = map[string]string{
	"list": "List",
	"set":  "Set",
	"dict": "Map",
}

// genCall emits a builtin template when the callee is a bare identifier
// from the builtin table, and ordinary call syntax otherwise.
func (g *Generator) genCall(c *ast.CallExpr) string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = g.genExpr(a)
	}
	if id, ok := c.Callee.(*ast.Identifier); ok {
		if out, handled := genBuiltin(id.Name, args); handled {
			return out
		}
	}
	return g.genExpr(c.Callee) + "(" + strings.Join(args, ", ") + ")"
}

func genBuiltin(name string, args []string) (string, bool) {
	switch name {
	case "print":
		if len(args) == 0 {
			return "std::cout << std::endl", true
		}
		return "std::cout << " + strings.Join(args, ` << " " << `) + " << std::endl", true
	case "input":
		if len(args) == 0 {
			return "std::cin", true
		}
		return "std::cin >> " + args[0], true
	}
	if wrapper, ok := builtinWrappers[name]; ok {
		return wrapper + "(" + strings.Join(args, ", ") + ")", true
	}
	if builtinNamespace[name] {
		// int and float are reserved words in the target language; the
		// prelude declares them with a trailing underscore.
		if name == "int" || name == "float" {
			name += "_"
		}
		return "Builtin::" + name + "(" + strings.Join(args, ", ") + ")", true
	}
	return "", false
}
