/*
Jsh is a small Unix shell. A line of input is a pipeline of external
commands:

    date
    cat /usr/share/dict/words | wc -l
    ls /var/log | sort -r | head

There is no other syntax. Words are literal and the only builtin is
exit. Every line stands alone; no state carries from one line to the
next.

Jsh is released under an MIT-style license.
*/
package main

import (
	"os"

	"github.com/tyganChin/shell/internal/engine"
	"github.com/tyganChin/shell/internal/system/options"
	"github.com/tyganChin/shell/internal/ui"
)

func main() {
	os.Exit(run())
}

func run() int {
	options.Parse()

	e := engine.New([3]*os.File{os.Stdin, os.Stdout, os.Stderr})

	return ui.Run(e)
}
