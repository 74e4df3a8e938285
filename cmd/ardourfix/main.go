package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/ardour-tools/ardourfix/internal/cli"
	"github.com/ardour-tools/ardourfix/pkg/ardourfix"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ardourfix.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ardourfix.ExitCodeForError(err))
	}
}
