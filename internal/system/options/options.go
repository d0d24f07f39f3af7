package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	usage       = `jsh

Usage:
  jsh [-c COMMAND]
  jsh -h | --help
  jsh -v | --version

Options:
  -c, --command=COMMAND  Execute COMMAND as one line of input, then exit.
  -h, --help             Display this help.
  -v, --version          Print jsh version.

If jsh's stdin is a TTY and no command was given, jsh reads lines
interactively, with editing, history, and completion. Otherwise jsh reads
lines from stdin without prompting.
`
	version = "0.2.0"
)

func Command() string {
	return command
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseArgs(usage, nil, "jsh "+version)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")

	if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}
