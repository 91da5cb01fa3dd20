// Package errors collects and renders structured compile diagnostics.
package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type Kind string

const (
	Lexing Kind = "lexing"
	Syntax Kind = "syntax"
	Type   Kind = "type"
	Other  Kind = "other"
)

// Diagnostic is one reported problem. Line/Column are 1-based; Column is 0
// when the diagnostic carries no source location (e.g. an internal error
// caught at the driver boundary).
type Diagnostic struct {
	Message    string
	Kind       Kind
	Line       int
	Column     int
	SourceLine string
}

func (d Diagnostic) hasLocation() bool {
	return d.Line > 0 && d.Column > 0
}

// Logger accumulates diagnostics in insertion order and renders them in the
// caret-frame format. It holds the full source text so it can slice out the
// offending line on demand.
type Logger struct {
	source string
	diags  []Diagnostic
}

func NewLogger(source string) *Logger {
	return &Logger{source: source}
}

// Log records a diagnostic. offset is the byte offset of the location, or -1
// for a location-less diagnostic.
func (l *Logger) Log(message string, kind Kind, line int, offset int) {
	d := Diagnostic{Message: message, Kind: kind, Line: line}
	if offset >= 0 {
		col, src := l.locate(offset)
		d.Column = col
		d.SourceLine = src
	}
	l.diags = append(l.diags, d)
}

// locate scans backward from offset to the previous newline to compute the
// 1-based column, and slices the enclosing source line.
func (l *Logger) locate(offset int) (column int, sourceLine string) {
	if offset < 0 || offset > len(l.source) {
		return 0, ""
	}
	lineStart := strings.LastIndexByte(l.source[:offset], '\n') + 1
	lineEnd := strings.IndexByte(l.source[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(l.source)
	} else {
		lineEnd += offset
	}
	return offset - lineStart + 1, l.source[lineStart:lineEnd]
}

func (l *Logger) Count() int {
	return len(l.diags)
}

func (l *Logger) HasErrors() bool {
	return len(l.diags) > 0
}

func (l *Logger) Clear() {
	l.diags = nil
}

func (l *Logger) Diagnostics() []Diagnostic {
	return l.diags
}

// Render writes every diagnostic in the caret-frame format followed by the
// summary footer, colorized per kind (advisory — disable with NO_COLOR).
func (l *Logger) Render(w io.Writer, filename string) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	magenta := color.New(color.FgMagenta, color.Bold)

	for _, d := range l.diags {
		c := magenta
		switch d.Kind {
		case Syntax, Lexing:
			c = red
		case Type:
			c = yellow
		}
		fmt.Fprintf(w, "%s%s\n", c.Sprintf("error[%s]: ", d.Kind), d.Message)
		if !d.hasLocation() {
			continue
		}
		fmt.Fprintf(w, "  --> Line %d, Column %d\n", d.Line, d.Column)
		fmt.Fprintf(w, "    %s\n", d.SourceLine)
		fmt.Fprintf(w, "    %s^\n", strings.Repeat(" ", d.Column-1))
	}

	n := len(l.diags)
	plural := ""
	if n > 1 {
		plural = "s"
	}
	red.Fprintf(w, "error")
	fmt.Fprintf(w, ": could not transpile '%s' due to %d previous error%s\n", filename, n, plural)
}
