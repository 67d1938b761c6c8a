package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/5t3ph/metaschema/internal/cli"
	"github.com/5t3ph/metaschema/pkg/metaschema"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(metaschema.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(metaschema.ExitCodeForError(err))
	}
}
