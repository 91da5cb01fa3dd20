package dotgraph

import (
	"strings"
	"testing"

	"github.com/corelang/pytocpp/internal/compiler/errors"
	"github.com/corelang/pytocpp/internal/compiler/lexer"
	"github.com/corelang/pytocpp/internal/compiler/parser"
)

func render(t *testing.T, src string) string {
	t.Helper()
	logger := errors.NewLogger(src)
	p := parser.New(lexer.NewFilter(lexer.New(src), logger), logger)
	prog := p.ParseProgram()
	if logger.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", logger.Diagnostics())
	}
	return Render(prog)
}

func TestRenderShape(t *testing.T) {
	dot := render(t, "x = 1 + 2\n")
	if !strings.HasPrefix(dot, "digraph ast {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("missing closing brace:\n%s", dot)
	}
	for _, want := range []string{
		`label="statements"`,
		`label="assign_chain"`,
		`label="target_list"`,
		`label="identifier: x"`,
		`label="binary_operation: +"`,
		`label="number: 1"`,
		`label="number: 2"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %s:\n%s", want, dot)
		}
	}
}

func TestRenderEdgesConnectParentToChildren(t *testing.T) {
	dot := render(t, "if a:\n\tpass\n")
	// one root, and every node except the root has exactly one incoming edge
	nodes := strings.Count(dot, "[label=")
	edges := strings.Count(dot, " -> ")
	if edges != nodes-1 {
		t.Errorf("tree must have n-1 edges, got %d nodes and %d edges:\n%s", nodes, edges, dot)
	}
}

func TestRenderFunctionAndClass(t *testing.T) {
	dot := render(t, "def f(a, b=1):\n\treturn a\nclass C:\n\tpass\n")
	for _, want := range []string{
		`label="function_def: f"`,
		`label="parameters"`,
		`label="default: b"`,
		`label="return"`,
		`label="class_def: C"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %s:\n%s", want, dot)
		}
	}
}
