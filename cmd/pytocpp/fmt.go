package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/corelang/pytocpp/internal/compiler/errors"
	"github.com/corelang/pytocpp/internal/compiler/lexer"
	"github.com/corelang/pytocpp/internal/compiler/token"
)

func cmdFmt(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	diff := fs.Bool("d", false, "display diff instead of writing")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: pytocpp fmt [-d] <files...>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}

	exitCode := 0
	for _, file := range fs.Args() {
		if err := fmtFile(file, *diff); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error formatting %s: %v\n", file, err)
			exitCode = 1
		}
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func fmtFile(path string, showDiff bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	original := string(data)
	result, err := formatSource(original)
	if err != nil {
		return err
	}

	if showDiff {
		if result != original {
			fmt.Printf("--- %s\n+++ %s (formatted)\n", path, path)
			printSimpleDiff(original, result)
		}
		return nil
	}

	if result == original {
		return nil
	}

	return os.WriteFile(path, []byte(result), 0644)
}

// formatSource re-indents a source file to four spaces per scope level.
// The depth of every line comes from the lexer filter's own indentation
// accounting, so fmt accepts exactly what the compiler accepts; a file
// with indentation errors is refused rather than rewritten.
func formatSource(source string) (string, error) {
	logger := errors.NewLogger(source)
	f := lexer.NewFilter(lexer.New(source), logger)

	depth := 0
	lineDepth := make(map[int]int)
	for {
		tok := f.Next()
		if tok.Type == token.ENDMARKER {
			break
		}
		switch tok.Type {
		case token.INDENT:
			depth++
		case token.DEDENT:
			depth--
		case token.NEWLINE:
		default:
			if _, seen := lineDepth[tok.Pos.Line]; !seen {
				lineDepth[tok.Pos.Line] = depth
			}
		}
	}
	if logger.HasErrors() {
		return "", fmt.Errorf("file does not lex cleanly; fix it before formatting")
	}

	lines := strings.Split(source, "\n")
	lastDepth := 0
	var b strings.Builder
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t\f")
		trimmed = strings.TrimRight(trimmed, " \t")
		if trimmed == "" {
			b.WriteString("")
		} else {
			// Comment-only lines produce no tokens; they keep the depth
			// of the surrounding code.
			d, ok := lineDepth[i+1]
			if !ok {
				d = lastDepth
			}
			lastDepth = d
			b.WriteString(strings.Repeat("    ", d))
			b.WriteString(trimmed)
		}
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func printSimpleDiff(a, b string) {
	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")

	maxLen := max(len(aLines), len(bLines))

	for i := range maxLen {
		aLine, bLine := "", ""
		if i < len(aLines) {
			aLine = aLines[i]
		}
		if i < len(bLines) {
			bLine = bLines[i]
		}
		if aLine != bLine {
			if i < len(aLines) {
				fmt.Printf("-%s\n", aLine)
			}
			if i < len(bLines) {
				fmt.Printf("+%s\n", bLine)
			}
		}
	}
}
