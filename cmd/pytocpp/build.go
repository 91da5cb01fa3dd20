package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

func cmdBuild(args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	outputBinary := fs.String("o", "", "output binary path (default: input filename without extension)")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: pytocpp build [-o binary] <input.py>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	inputFile := fs.Arg(0)
	binary := *outputBinary
	if binary == "" {
		base := filepath.Base(inputFile)
		binary = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if err := buildBinary(inputFile, binary); err != nil {
		if !errors.Is(err, errDiagnostics) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	fmt.Printf("Built %s successfully\n", binary)
}

// buildBinary transpiles inputFile into a temp directory and compiles the
// result with the system C++ compiler ($CXX, falling back to c++).
func buildBinary(inputFile, outputBinary string) error {
	tmpDir, err := os.MkdirTemp("", "pytocpp-build-*")
	if err != nil {
		return fmt.Errorf("creating temp dir: %w", err)
	}
	defer func(path string) {
		_ = os.RemoveAll(path)
	}(tmpDir)

	if _, err := transpile(inputFile, tmpDir, false); err != nil {
		return err
	}

	absBinary, err := filepath.Abs(outputBinary)
	if err != nil {
		return fmt.Errorf("resolving output path: %w", err)
	}
	if dir := filepath.Dir(absBinary); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	cxx := os.Getenv("CXX")
	if cxx == "" {
		cxx = "c++"
	}
	compile := exec.Command(cxx, "-std=c++17", "-o", absBinary, outputName)
	compile.Dir = tmpDir
	compile.Stdout = os.Stdout
	compile.Stderr = os.Stderr
	if err := compile.Run(); err != nil {
		return fmt.Errorf("%s: %w", cxx, err)
	}

	return nil
}
