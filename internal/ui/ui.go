// Released under an MIT license. See LICENSE.

// Package ui provides jsh's command-line interface.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/tyganChin/shell/internal/pipeline"
	"github.com/tyganChin/shell/internal/reader"
	"github.com/tyganChin/shell/internal/system/cache"
	"github.com/tyganChin/shell/internal/system/history"
	"github.com/tyganChin/shell/internal/system/options"
)

const prompt = "jsh$ "

// Evaluator is the interface for things that can run a pipeline.
type Evaluator interface {
	Run(p pipeline.T) (int, error)
}

// Run reads lines, hands each parsed pipeline to e, and reports each
// pipeline's status. It returns the shell's exit status.
func Run(e Evaluator) int {
	if command := options.Command(); command != "" {
		status, _ := evaluate(e, command)

		return status
	}

	if options.Interactive() {
		return interact(e)
	}

	return script(e, os.Stdin)
}

// evaluate runs one line. It returns the status the session should exit
// with and whether the session is over.
func evaluate(e Evaluator, line string) (int, bool) {
	p, err := reader.Scan(line)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

		return 1, false
	}

	if p.Empty() {
		return 0, false
	}

	if p.Lead() == "exit" {
		return 0, true
	}

	status, err := e.Run(p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

		return 1, true
	}

	fmt.Printf("jsh status: %d\n", status)

	return status, false
}

func interact(e Evaluator) int {
	cooked, err := liner.TerminalMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

		return 1
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

		return 1
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	go cache.Populate(os.Getenv("PATH"))

	for {
		if merr := uncooked.ApplyMode(); merr != nil {
			fmt.Fprintf(os.Stderr, "jsh error: %v\n", merr)

			return 1
		}

		line, err := cli.Prompt(prompt)

		// Stages run with the terminal the way we found it.
		if merr := cooked.ApplyMode(); merr != nil {
			fmt.Fprintf(os.Stderr, "jsh error: %v\n", merr)

			return 1
		}

		switch err {
		case nil:
			if strings.TrimSpace(line) != "" {
				cli.AppendHistory(line)
			}
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			os.Stdout.Write([]byte("exit\n"))

			return 0
		default:
			fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

			return 1
		}

		if status, done := evaluate(e, line); done {
			return status
		}
	}
}

// script reads lines without prompting, the way the shell behaves when
// its input is not a terminal.
func script(e Evaluator, r io.Reader) int {
	in := bufio.NewReaderSize(r, reader.MaxLineBytes)

	for {
		chunk, long, err := in.ReadLine()
		if err == io.EOF {
			return 0
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "jsh error: %v\n", err)

			return 1
		}

		line := string(chunk)

		// Discard the rest of an overlong line; Scan rejects the head.
		for long {
			_, long, err = in.ReadLine()
			if err != nil {
				break
			}
		}

		if status, done := evaluate(e, line); done {
			return status
		}
	}
}

// complete suggests command names for the word being typed, when that
// word is in command position: at the start of the line or after a pipe.
func complete(line string, pos int) (string, []string, string) {
	head, tail := line[:pos], line[pos:]

	start := strings.LastIndexAny(head, " \t|") + 1
	word := head[start:]

	before := strings.TrimRight(head[:start], " \t")
	if word != "" && (before == "" || strings.HasSuffix(before, "|")) {
		return head[:start], cache.Complete(word), tail
	}

	return head, nil, tail
}
