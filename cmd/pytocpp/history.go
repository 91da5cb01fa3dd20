package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/corelang/pytocpp/internal/history"
)

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("n", 20, "maximum runs to list")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage: pytocpp history [-n count]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	store, err := history.Open(history.DefaultPath())
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.List(*limit)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	for _, run := range runs {
		status := "ok"
		if !run.Success {
			status = fmt.Sprintf("%d error(s)", run.Diagnostics)
		}
		fmt.Printf("%s  %-8s  %s  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), status, run.SourceHash, run.SourcePath)
	}
}
