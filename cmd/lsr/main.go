package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/unxutils/lsr/internal/cli"
	"github.com/unxutils/lsr/pkg/lsr"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(lsr.ExitPanic)
		}
	}()

	if os.Getenv("LSR_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(lsr.ExitCodeForError(err))
	}
}
