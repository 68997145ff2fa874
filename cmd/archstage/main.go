// archstage stages the architecture-specific makefile, cargo config and
// linker script of a multi-target kernel into the paths its build expects.
//
// Usage:
//
//	archstage --arch x86_64
//
// Exit codes:
//   - 0: every artifact was staged
//   - 2: missing or invalid --arch, or any other usage error
//   - 3: a source artifact does not exist for the requested arch
//   - 4: a filesystem operation failed
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Resolve the invocation root.
	root, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, ErrorWorkingDir, err)
		os.Exit(ExitIO)
	}

	// 2. Build the command with a terminal logger.
	logger := NewLogger(LogConfig{
		Level:   zerolog.InfoLevel,
		Output:  os.Stderr,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})
	cmd := newRootCmd(root, logger)

	// 3. Run and map the outcome to an exit code.
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, ErrorStageFailed, AppName, err)
		os.Exit(exitCodeFor(err))
	}
}
