package generator

import (
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/ast"
	"github.com/corelang/pytocpp/internal/compiler/parser"
	"github.com/corelang/pytocpp/internal/compiler/utils"
)

func (g *Generator) genExpr(e ast.Expression) string {
	switch x := e.(type) {
	case *ast.Identifier:
		if x.Name == "self" {
			return "(*this)"
		}
		return utils.Mangle(x.Name)
	case *ast.Number:
		return genNumber(x)
	case *ast.String:
		return `"` + utils.EscapeString(x.Value) + `"`
	case *ast.Literal:
		return genLiteral(x)
	case *ast.BinaryExpr:
		return g.genBinary(x)
	case *ast.UnaryExpr:
		return g.genUnary(x)
	case *ast.Comparison:
		return g.genComparison(x)
	case *ast.Ternary:
		return "(" + g.genExpr(x.Cond) + " ? " + g.genExpr(x.Then) + " : " + g.genExpr(x.Else) + ")"
	case *ast.CallExpr:
		return g.genCall(x)
	case *ast.AttributeAccess:
		if obj, ok := x.Object.(*ast.Identifier); ok && obj.Name == "self" {
			return "this->" + utils.Mangle(x.Name)
		}
		return g.genExpr(x.Object) + "." + utils.Mangle(x.Name)
	case *ast.Subscript:
		return g.genSubscript(x)
	case *ast.Tuple:
		return "std::make_tuple(" + g.genExprList(x.Elements) + ")"
	case *ast.Group:
		return "(" + g.genExpr(x.Inner) + ")"
	case *ast.ListLit:
		return "List{" + g.genExprList(x.Elements) + "}"
	case *ast.SetLit:
		return "Set{" + g.genExprList(x.Elements) + "}"
	case *ast.DictLit:
		return g.genDict(x)
	}
	return ""
}

func (g *Generator) genExprList(exprs []ast.Expression) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = g.genExpr(e)
	}
	return strings.Join(parts, ", ")
}

func genNumber(n *ast.Number) string {
	if n.IsFloat {
		return n.Raw
	}
	// C++ shares the 0x prefix but not 0o/0b; all three are lowered to
	// decimal so the emitted text is uniform.
	norm, err := parser.NormalizeNumericLiteral(n.Raw)
	if err != nil {
		return n.Raw
	}
	return norm
}

func genLiteral(l *ast.Literal) string {
	switch l.Value {
	case "True":
		return "true"
	case "False":
		return "false"
	}
	return "var()"
}

func (g *Generator) genBinary(x *ast.BinaryExpr) string {
	left := g.genExpr(x.Left)
	right := g.genExpr(x.Right)
	switch x.Op {
	case "or":
		return "(" + left + " || " + right + ")"
	case "and":
		return "(" + left + " && " + right + ")"
	case "**":
		return "Builtin::pow(" + left + ", " + right + ")"
	case "//":
		return "Builtin::floordiv(" + left + ", " + right + ")"
	}
	return "(" + left + " " + x.Op + " " + right + ")"
}

func (g *Generator) genUnary(x *ast.UnaryExpr) string {
	operand := g.genExpr(x.Operand)
	if x.Op == "not" {
		return "(!" + operand + ")"
	}
	return "(" + x.Op + operand + ")"
}

// genComparison emits a single binary form for one operator and the
// &&-expanded form for a chain: "a < b < c" becomes "(a < b && b < c)".
// Re-emitting the shared operand assumes it is side-effect-free, which is
// a precondition of the supported input subset.
func (g *Generator) genComparison(c *ast.Comparison) string {
	left := g.genExpr(c.Left)
	if len(c.Ops) == 1 {
		return compareTerm(left, c.Ops[0].Op, g.genExpr(c.Ops[0].Right))
	}
	var parts []string
	cur := left
	for _, op := range c.Ops {
		right := g.genExpr(op.Right)
		term := compareTerm(cur, op.Op, right)
		// Every link sits directly under &&, which binds looser than any
		// comparison, so the link's own outer parentheses are dropped.
		if strings.HasPrefix(term, "(") && strings.HasSuffix(term, ")") {
			term = term[1 : len(term)-1]
		}
		parts = append(parts, term)
		cur = right
	}
	return "(" + strings.Join(parts, " && ") + ")"
}

func compareTerm(left, op, right string) string {
	switch op {
	case "in":
		return "Builtin::in(" + left + ", " + right + ")"
	case "not in":
		return "(!Builtin::in(" + left + ", " + right + "))"
	case "is":
		return "(" + left + " == " + right + ")"
	case "is not":
		return "(" + left + " != " + right + ")"
	}
	return "(" + left + " " + op + " " + right + ")"
}

// genSubscript folds the index list left to right; a plain index becomes
// operator[], a slice becomes a Builtin::slice call with var() filling
// the omitted bounds.
func (g *Generator) genSubscript(s *ast.Subscript) string {
	cur := g.genExpr(s.Object)
	for _, idx := range s.Indices {
		if sl, ok := idx.(*ast.Slice); ok {
			cur = "Builtin::slice(" + cur + ", " + g.slicePart(sl.Low) + ", " + g.slicePart(sl.High) + ", " + g.slicePart(sl.Step) + ")"
		} else {
			cur = cur + "[" + g.genExpr(idx) + "]"
		}
	}
	return cur
}

func (g *Generator) slicePart(e ast.Expression) string {
	if e == nil {
		return "var()"
	}
	return g.genExpr(e)
}

func (g *Generator) genDict(d *ast.DictLit) string {
	parts := make([]string, len(d.Pairs))
	for i, p := range d.Pairs {
		parts[i] = "{" + g.genExpr(p.Key) + ", " + g.genExpr(p.Value) + "}"
	}
	return "Map{" + strings.Join(parts, ", ") + "}"
}
