package symtab

import "testing"

func TestAddNoShadowInNestedScope(t *testing.T) {
	tab := New()
	tab.Add("x", Variable, nil)
	tab.EnterScope()
	tab.Add("x", Variable, nil) // no-op: already visible in enclosing scope

	decls := tab.ExitAndDeclare(0)
	if len(decls) != 0 {
		t.Fatalf("expected no declarations hoisted from the inner (shadowed) scope, got %v", decls)
	}

	decls = tab.ExitAndDeclare(0)
	if len(decls) != 1 || decls[0].Name != "x" {
		t.Fatalf("expected x hoisted from the outer scope, got %v", decls)
	}
}

func TestAddVisibleAgainAfterPop(t *testing.T) {
	tab := New()
	tab.EnterScope()
	tab.Add("y", Variable, nil)
	tab.ExitAndDeclare(0)

	tab.EnterScope()
	tab.Add("y", Variable, nil)
	decls := tab.ExitAndDeclare(0)
	if len(decls) != 1 {
		t.Fatalf("expected y declarable again once its original scope popped, got %v", decls)
	}
}

func TestExitAndDeclareOrderAndText(t *testing.T) {
	tab := New()
	tab.EnterScope()
	tab.Add("b", Variable, nil)
	tab.Add("a", Variable, nil)
	tab.Add("helper", Function, []string{"n"})

	decls := tab.ExitAndDeclare(2)
	if len(decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(decls))
	}
	if decls[0].Name != "b" || decls[1].Name != "a" || decls[2].Name != "helper" {
		t.Fatalf("expected declaration order to match insertion order, got %v", decls)
	}
	if decls[0].Text != "  var b;" {
		t.Errorf("variable declaration text = %q", decls[0].Text)
	}
	if decls[2].Text != "  var helper(n);" {
		t.Errorf("function declaration text = %q", decls[2].Text)
	}
}

func TestAddOverTargetsEnclosingScope(t *testing.T) {
	tab := New()
	tab.EnterScope() // class body scope
	tab.EnterScope() // method body scope

	tab.AddOver("x", Variable) // "self.x = ..." inside the method

	methodDecls := tab.ExitAndDeclare(0)
	if len(methodDecls) != 0 {
		t.Fatalf("self.x must not be declared in the method's own scope, got %v", methodDecls)
	}

	classDecls := tab.ExitAndDeclare(0)
	if len(classDecls) != 1 || classDecls[0].Name != "x" {
		t.Fatalf("expected x hoisted into the class body scope, got %v", classDecls)
	}
}

func TestClassStack(t *testing.T) {
	tab := New()
	if tab.CurrentClass() != "" {
		t.Fatalf("expected no current class at file scope")
	}
	tab.PushClass("Animal")
	tab.PushClass("Dog")
	if tab.CurrentClass() != "Dog" {
		t.Fatalf("expected innermost class Dog, got %q", tab.CurrentClass())
	}
	tab.PopClass()
	if tab.CurrentClass() != "Animal" {
		t.Fatalf("expected Animal after popping Dog, got %q", tab.CurrentClass())
	}
}

func TestDepthTracksPushAndPop(t *testing.T) {
	tab := New()
	if tab.Depth() != 1 {
		t.Fatalf("expected depth 1 for a fresh table, got %d", tab.Depth())
	}
	tab.EnterScope()
	if tab.Depth() != 2 {
		t.Fatalf("expected depth 2 after EnterScope, got %d", tab.Depth())
	}
	tab.ExitAndDeclare(0)
	if tab.Depth() != 1 {
		t.Fatalf("expected depth 1 after ExitAndDeclare, got %d", tab.Depth())
	}
}
