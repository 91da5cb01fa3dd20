package generator

import (
	"fmt"
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/ast"
	"github.com/corelang/pytocpp/internal/compiler/symtab"
	"github.com/corelang/pytocpp/internal/compiler/utils"
)

func (g *Generator) genStatement(b *strings.Builder, stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.FunctionDef:
		g.genFunctionDef(b, s)
	case *ast.ClassDef:
		g.genClassDef(b, s)
	case *ast.IfStmt:
		g.genIfStmt(b, s)
	case *ast.WhileStmt:
		g.line(b, "while ("+g.genExpr(s.Cond)+") {")
		g.genBlock(b, s.Body)
		g.line(b, "}")
	case *ast.ForStmt:
		g.genForStmt(b, s)
	case *ast.ReturnStmt:
		g.genReturnStmt(b, s)
	case *ast.PassStmt:
		g.line(b, ";")
	case *ast.BreakStmt:
		g.line(b, "break;")
	case *ast.ContinueStmt:
		g.line(b, "continue;")
	case *ast.DelStmt:
		g.genDelStmt(b, s)
	case *ast.GlobalStmt:
		for _, name := range s.Names {
			g.symbols.AddGlobal(utils.Mangle(name), symtab.Variable)
		}
	case *ast.AssignChain:
		g.genAssignChain(b, s)
	case *ast.AugAssign:
		g.genAugAssign(b, s)
	case *ast.ExprStmt:
		g.line(b, g.genExpr(s.Expr)+";")
	}
}

// genFunctionDef emits a function definition. Inside a class body the
// parameter "self" is stripped from the signature and __init__ becomes
// the constructor of the enclosing class: the mangled class name, no
// return type, no implicit trailing return.
func (g *Generator) genFunctionDef(b *strings.Builder, f *ast.FunctionDef) {
	class := g.symbols.CurrentClass()
	inClass := class != ""
	ctor := inClass && f.Name == "__init__"

	params := f.Params.Params
	if inClass && len(params) > 0 && params[0].Name == "self" {
		params = params[1:]
	}

	var sigParts, sigs []string
	for _, p := range params {
		sig := "var " + utils.Mangle(p.Name)
		sigs = append(sigs, sig)
		if p.Default != nil {
			sig += " = " + g.genExpr(p.Default)
		}
		sigParts = append(sigParts, sig)
	}

	mangled := utils.Mangle(f.Name)
	if ctor {
		mangled = utils.Mangle(class)
	}
	if inClass {
		// Methods are emitted inside the class definition itself, so the
		// name must not reappear as a hoisted declaration.
		g.symbols.Add(mangled, symtab.Parameter, nil)
	} else {
		// Registered before the body is walked, so recursive calls resolve.
		g.symbols.Add(mangled, symtab.Function, sigs)
	}

	g.symbols.EnterScope()
	for _, p := range params {
		g.symbols.Add(utils.Mangle(p.Name), symtab.Parameter, nil)
	}

	var body strings.Builder
	wasCtor := g.inConstructor
	g.inConstructor = ctor
	g.genBlock(&body, f.Body)
	g.inConstructor = wasCtor

	decls := g.symbols.ExitAndDeclare((g.indent + 1) * 4)

	header := "var " + mangled
	if ctor {
		header = mangled
	}
	g.line(b, header+"("+strings.Join(sigParts, ", ")+") {")
	for _, d := range decls {
		b.WriteString(d.Text + "\n")
	}
	b.WriteString(body.String())
	if !ctor && !endsWithReturn(f.Body) {
		g.indent++
		g.line(b, "return var();")
		g.indent--
	}
	g.line(b, "}")
}

// genClassDef emits "class se_Name { public: <members> <methods> };".
// Members come from self.x assignments inside the methods (hoisted into
// the class body scope) and from class-level attribute assignments, which
// keep their initializer.
func (g *Generator) genClassDef(b *strings.Builder, c *ast.ClassDef) {
	mangled := utils.Mangle(c.Name)
	g.symbols.Add(mangled, symtab.Class, nil)
	g.symbols.PushClass(c.Name)
	g.symbols.EnterScope()

	var attrs, methods strings.Builder
	g.indent++
	for _, stmt := range c.Body.Statements {
		switch s := stmt.(type) {
		case *ast.FunctionDef:
			g.genFunctionDef(&methods, s)
		case *ast.AssignChain:
			g.genClassAttr(&attrs, s)
		case *ast.PassStmt:
			// an empty class body
		}
	}
	g.indent--

	decls := g.symbols.ExitAndDeclare((g.indent + 1) * 4)
	g.symbols.PopClass()

	header := "class " + mangled
	if c.Base != "" {
		header += " : public " + utils.Mangle(c.Base)
	}
	g.line(b, header+" {")
	g.line(b, "public:")
	for _, d := range decls {
		if d.Kind == symtab.Variable {
			b.WriteString(d.Text + "\n")
		}
	}
	b.WriteString(attrs.String())
	b.WriteString(methods.String())
	g.line(b, "};")
}

// genClassAttr emits a class-level attribute assignment as a member with
// an initializer. The name is registered as already-declared so the
// hoisted member list does not repeat it.
func (g *Generator) genClassAttr(b *strings.Builder, s *ast.AssignChain) {
	value := g.genExpr(s.Value)
	for _, tl := range s.Targets {
		for _, t := range tl.Targets {
			id, ok := t.(*ast.Identifier)
			if !ok {
				continue
			}
			g.symbols.Add(utils.Mangle(id.Name), symtab.Parameter, nil)
			g.line(b, "var "+utils.Mangle(id.Name)+" = "+value+";")
		}
	}
}

func (g *Generator) genIfStmt(b *strings.Builder, s *ast.IfStmt) {
	g.line(b, "if ("+g.genExpr(s.Cond)+") {")
	g.genBlock(b, s.Then)
	for _, e := range s.Elifs {
		g.line(b, "} else if ("+g.genExpr(e.Cond)+") {")
		g.genBlock(b, e.Body)
	}
	if s.Else != nil {
		g.line(b, "} else {")
		g.genBlock(b, s.Else.Body)
	}
	g.line(b, "}")
}

// genForStmt recognizes "for i in range(...)" and lowers it to a C-style
// numeric loop; any other iterable falls back to a range-for over the
// runtime's iteration protocol. The loop variable is declared by the loop
// header itself, never hoisted.
func (g *Generator) genForStmt(b *strings.Builder, s *ast.ForStmt) {
	loopVar := utils.Mangle(s.Target)
	g.symbols.Add(loopVar, symtab.Parameter, nil)

	if lo, hi, step, ok := g.rangeArgs(s.Iter); ok {
		g.line(b, fmt.Sprintf("for (int %s = %s; %s < %s; %s += %s) {", loopVar, lo, loopVar, hi, loopVar, step))
	} else {
		g.line(b, "for (var "+loopVar+" : "+g.genExpr(s.Iter)+") {")
	}
	g.genBlock(b, s.Body)
	g.line(b, "}")
}

func (g *Generator) rangeArgs(iter ast.Expression) (lo, hi, step string, ok bool) {
	call, isCall := iter.(*ast.CallExpr)
	if !isCall {
		return
	}
	id, isIdent := call.Callee.(*ast.Identifier)
	if !isIdent || id.Name != "range" {
		return
	}
	switch len(call.Args) {
	case 1:
		return "0", g.genExpr(call.Args[0]), "1", true
	case 2:
		return g.genExpr(call.Args[0]), g.genExpr(call.Args[1]), "1", true
	case 3:
		return g.genExpr(call.Args[0]), g.genExpr(call.Args[1]), g.genExpr(call.Args[2]), true
	}
	return
}

func (g *Generator) genReturnStmt(b *strings.Builder, s *ast.ReturnStmt) {
	switch {
	case g.inConstructor:
		g.line(b, "return;")
	case s.Value == nil:
		g.line(b, "return var();")
	default:
		g.line(b, "return "+g.genExpr(s.Value)+";")
	}
}

// genDelStmt resets each deleted name to the empty value; C++ offers no
// way to unbind a hoisted declaration mid-block.
func (g *Generator) genDelStmt(b *strings.Builder, s *ast.DelStmt) {
	for _, t := range s.Targets {
		if id, ok := t.(*ast.Identifier); ok {
			g.line(b, utils.Mangle(id.Name)+" = var();")
		}
	}
}

// genAssignChain flattens every target list of "t1 = t2 = ... = value"
// into one chained C++ assignment; each identifier target is recorded in
// the symbol table so the declaration hoist covers it.
func (g *Generator) genAssignChain(b *strings.Builder, s *ast.AssignChain) {
	var targets []string
	for _, tl := range s.Targets {
		for _, t := range tl.Targets {
			g.registerTarget(t)
			targets = append(targets, g.genExpr(t))
		}
	}
	g.line(b, strings.Join(targets, " = ")+" = "+g.genExpr(s.Value)+";")
}

func (g *Generator) registerTarget(t ast.Expression) {
	switch e := t.(type) {
	case *ast.Identifier:
		g.symbols.Add(utils.Mangle(e.Name), symtab.Variable, nil)
	case *ast.AttributeAccess:
		if obj, ok := e.Object.(*ast.Identifier); ok && obj.Name == "self" {
			g.symbols.AddOver(utils.Mangle(e.Name), symtab.Variable)
		}
	case *ast.Group:
		g.registerTarget(e.Inner)
	case *ast.Tuple:
		for _, el := range e.Elements {
			g.registerTarget(el)
		}
	}
}

func (g *Generator) genAugAssign(b *strings.Builder, s *ast.AugAssign) {
	g.registerTarget(s.Target)
	target := g.genExpr(s.Target)
	value := g.genExpr(s.Value)
	switch s.Op {
	case "**=":
		g.line(b, target+" = Builtin::pow("+target+", "+value+");")
	case "//=":
		g.line(b, target+" = Builtin::floordiv("+target+", "+value+");")
	default:
		g.line(b, target+" "+s.Op+" "+value+";")
	}
}
