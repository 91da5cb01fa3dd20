package main

import (
	"fmt"
	"os"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pytocpp <command> [arguments]

Commands:
  compile   transpile a source file to C++ (default when given a file)
  build     transpile and compile to a native binary
  run       build to a temporary binary and execute it
  fmt       reformat a source file to canonical indentation
  history   list past transpilation runs

Run "pytocpp <command> -h" for command flags.
`)
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compile":
		cmdCompile(os.Args[2:])
	case "build":
		cmdBuild(os.Args[2:])
	case "run":
		cmdRun(os.Args[2:])
	case "fmt":
		cmdFmt(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	case "-h", "--help", "help":
		usage()
	default:
		// "pytocpp file.py" transpiles, same as "pytocpp compile file.py"
		cmdCompile(os.Args[1:])
	}
}
