package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/decomment/internal/cli"
	"github.com/vvka-141/decomment/pkg/decomment"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(decomment.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(decomment.ExitCodeForError(err))
	}
}
