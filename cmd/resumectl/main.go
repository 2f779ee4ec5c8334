// Command resumectl is the CLI companion to the resumegen server (spec.md
// §6): it shares the in-process orchestrator and registry, so CLI and HTTP
// render identical output for the same input.
package main

import (
	"os"

	"github.com/urfave/cli/v2"
)

// Exit codes per spec.md §6.
const (
	exitSuccess          = 0
	exitOther            = 1
	exitInvalidArguments = 2
	exitValidationError  = 3
	exitTemplateNotFound = 4
	exitCompilationError = 5
)

func main() {
	app := &cli.App{
		Name:  "resumectl",
		Usage: "generate résumés and cover letters from the command line",

		Writer:    os.Stdout,
		ErrWriter: os.Stderr,

		Commands: []*cli.Command{
			generateCommand(),
			listCommand(),
			infoCommand(),
			sampleCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		// app.Run already invoked the default ExitErrHandler for any
		// cli.Exit-wrapped error; this final exit only covers errors the
		// library itself returns before reaching a command (e.g. flag
		// parsing), which carry no exit code of their own.
		os.Exit(exitOther)
	}
}
