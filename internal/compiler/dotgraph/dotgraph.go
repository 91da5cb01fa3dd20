// Package dotgraph renders an AST as a Graphviz DOT document, one box per
// node labeled with its grammar tag and value.
package dotgraph

import (
	"fmt"
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/ast"
)

// Render returns the DOT source for the whole tree.
func Render(prog *ast.Program) string {
	d := &dumper{}
	d.b.WriteString("digraph ast {\n")
	d.b.WriteString("    node [shape=box, fontname=\"monospace\"];\n")
	d.walk(prog)
	d.b.WriteString("}\n")
	return d.b.String()
}

type dumper struct {
	b    strings.Builder
	next int
}

func (d *dumper) walk(node any) int {
	id := d.next
	d.next++
	label, kids := describe(node)
	fmt.Fprintf(&d.b, "    n%d [label=%q];\n", id, label)
	for _, k := range kids {
		fmt.Fprintf(&d.b, "    n%d -> n%d;\n", id, d.walk(k))
	}
	return id
}

// describe maps a node to its display label and child list. Optional
// children are appended only when present, so the drawing never shows
// empty slots.
func describe(node any) (string, []any) {
	var kids []any
	add := func(ns ...any) {
		kids = append(kids, ns...)
	}

	switch n := node.(type) {
	case *ast.Program:
		for _, s := range n.Statements {
			add(s)
		}
		return "statements", kids
	case *ast.Block:
		for _, s := range n.Statements {
			add(s)
		}
		return "block", kids
	case *ast.FunctionDef:
		add(n.Params, n.Body)
		return "function_def: " + n.Name, kids
	case *ast.Parameters:
		for _, p := range n.Params {
			add(p)
		}
		return "parameters", kids
	case *ast.Param:
		if n.Default != nil {
			add(n.Default)
			return "default: " + n.Name, kids
		}
		return "identifier: " + n.Name, kids
	case *ast.ClassDef:
		add(n.Body)
		label := "class_def: " + n.Name
		if n.Base != "" {
			label += " (" + n.Base + ")"
		}
		return label, kids
	case *ast.ReturnStmt:
		if n.Value != nil {
			add(n.Value)
		}
		return "return", kids
	case *ast.PassStmt:
		return "pass", nil
	case *ast.BreakStmt:
		return "break", nil
	case *ast.ContinueStmt:
		return "continue", nil
	case *ast.DelStmt:
		for _, t := range n.Targets {
			add(t)
		}
		return "del", kids
	case *ast.GlobalStmt:
		return "global: " + strings.Join(n.Names, ", "), nil
	case *ast.IfStmt:
		add(n.Cond, n.Then)
		for _, e := range n.Elifs {
			add(e)
		}
		if n.Else != nil {
			add(n.Else)
		}
		return "if_stmt", kids
	case *ast.ElifStmt:
		add(n.Cond, n.Body)
		return "elif_stmt", kids
	case *ast.ElseBlock:
		add(n.Body)
		return "else_block", kids
	case *ast.WhileStmt:
		add(n.Cond, n.Body)
		return "while_stmt", kids
	case *ast.ForStmt:
		add(n.Iter, n.Body)
		return "for_stmt: " + n.Target, kids
	case *ast.ExprStmt:
		add(n.Expr)
		return "simple_stmt", kids
	case *ast.TargetList:
		for _, t := range n.Targets {
			add(t)
		}
		return "target_list", kids
	case *ast.AssignChain:
		for _, t := range n.Targets {
			add(t)
		}
		add(n.Value)
		return "assign_chain", kids
	case *ast.AugAssign:
		add(n.Target, n.Value)
		return "aug_assign: " + n.Op, kids
	case *ast.Comparison:
		add(n.Left)
		for _, op := range n.Ops {
			add(op)
		}
		return "comparison", kids
	case ast.CompareOp:
		add(n.Right)
		return "compare_op: " + n.Op, kids
	case *ast.BinaryExpr:
		add(n.Left, n.Right)
		return "binary_operation: " + n.Op, kids
	case *ast.UnaryExpr:
		add(n.Operand)
		return "unary_operation: " + n.Op, kids
	case *ast.Ternary:
		add(n.Then, n.Cond, n.Else)
		return "ternary", kids
	case *ast.CallExpr:
		add(n.Callee)
		for _, a := range n.Args {
			add(a)
		}
		return "function_call", kids
	case *ast.AttributeAccess:
		add(n.Object)
		return "attribute_access: " + n.Name, kids
	case *ast.Subscript:
		add(n.Object)
		for _, i := range n.Indices {
			add(i)
		}
		return "subscript", kids
	case *ast.Slice:
		if n.Low != nil {
			add(n.Low)
		}
		if n.High != nil {
			add(n.High)
		}
		if n.Step != nil {
			add(n.Step)
		}
		return "slice", kids
	case *ast.Tuple:
		for _, e := range n.Elements {
			add(e)
		}
		return "tuple", kids
	case *ast.Group:
		add(n.Inner)
		return "group", kids
	case *ast.ListLit:
		for _, e := range n.Elements {
			add(e)
		}
		return "list", kids
	case *ast.SetLit:
		for _, e := range n.Elements {
			add(e)
		}
		return "set", kids
	case *ast.DictLit:
		for _, p := range n.Pairs {
			add(p)
		}
		return "dictionary", kids
	case ast.KeyValuePair:
		add(n.Key, n.Value)
		return "key_value_pair", kids
	case *ast.Identifier:
		return "identifier: " + n.Name, nil
	case *ast.Number:
		return "number: " + n.Raw, nil
	case *ast.String:
		return "string: " + n.Value, nil
	case *ast.Literal:
		return "literal: " + n.Value, nil
	}
	return fmt.Sprintf("%T", node), nil
}
