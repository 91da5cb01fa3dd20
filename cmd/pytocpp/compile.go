package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/corelang/pytocpp/internal/compiler"
	"github.com/corelang/pytocpp/internal/compiler/dotgraph"
	"github.com/corelang/pytocpp/internal/history"
	"github.com/corelang/pytocpp/internal/runtime"
)

const outputName = "CodeTranspiled.cpp"

// errDiagnostics marks a failed run whose diagnostics were already
// rendered; the caller only needs to exit nonzero.
var errDiagnostics = errors.New("diagnostics reported")

func cmdCompile(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	outDir := fs.String("o", "Output", "output directory")
	drawGraph := fs.Bool("drawGraph", false, "also write a Graphviz DOT rendering of the AST")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: pytocpp compile [-o dir] [-drawGraph] <input.py>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	outPath, err := transpile(fs.Arg(0), *outDir, *drawGraph)
	if err != nil {
		if !errors.Is(err, errDiagnostics) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Generated %s successfully\n", outPath)
}

// transpile runs the pipeline over inputFile and writes the translation
// unit plus the runtime header into outDir. On diagnostics it renders
// them to stderr, writes nothing, and returns errDiagnostics.
func transpile(inputFile, outDir string, drawGraph bool) (string, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	source := string(data)

	code, prog, logger := compiler.Compile(source)
	recordRun(inputFile, source, logger.Count())

	if logger.HasErrors() {
		logger.Render(os.Stderr, inputFile)
		return "", errDiagnostics
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	outPath := filepath.Join(outDir, outputName)
	if err := os.WriteFile(outPath, []byte(code), 0644); err != nil {
		return "", fmt.Errorf("writing output file: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, runtime.HeaderName), runtime.UtilHPP, 0644); err != nil {
		return "", fmt.Errorf("writing runtime header: %w", err)
	}

	if drawGraph {
		dotPath := strings.TrimSuffix(outPath, filepath.Ext(outPath)) + ".dot"
		if err := os.WriteFile(dotPath, []byte(dotgraph.Render(prog)), 0644); err != nil {
			return "", fmt.Errorf("writing AST graph: %w", err)
		}
	}
	return outPath, nil
}

// recordRun appends the invocation to the history database. History is a
// convenience; a failure here must never fail the compile.
func recordRun(inputFile, source string, diagnostics int) {
	store, err := history.Open(history.DefaultPath())
	if err != nil {
		return
	}
	abs, err := filepath.Abs(inputFile)
	if err != nil {
		abs = inputFile
	}
	_ = store.Record(&history.Run{
		SourcePath:  abs,
		SourceHash:  history.Hash(source),
		Diagnostics: diagnostics,
		Success:     diagnostics == 0,
	})
}
