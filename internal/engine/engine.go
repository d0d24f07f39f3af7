// Released under an MIT license. See LICENSE.

// Package engine runs pipelines.
//
// Running a pipeline of N stages means creating N-1 pipes, starting one
// process per stage with its ends of those pipes as stdin and stdout,
// closing the shell's copies, and waiting for the stages in start order.
// The status of a pipeline is the status of its last stage.
package engine

import (
	"fmt"
	"os"

	"github.com/tyganChin/shell/internal/adapted"
	"github.com/tyganChin/shell/internal/pipeline"
	"github.com/tyganChin/shell/internal/system/process"
)

// NotFound is the status of a stage whose program name cannot be resolved.
const NotFound = 127

// T (engine) runs pipelines against a fixed set of shell descriptors.
type T struct {
	files [3]*os.File // The shell's own stdin, stdout, and stderr.
}

type engine = T

// New creates an engine whose pipelines read from files[0], write to
// files[1], and share files[2] for errors.
func New(files [3]*os.File) *engine {
	return &engine{files: files}
}

// Run runs the pipeline p and returns the exit status of its last stage.
// A stage whose program cannot be found is reported on stderr and given
// status NotFound; the rest of the pipeline still runs. A non-nil error
// means the shell itself failed (pipe, spawn, close, or wait) and the
// session cannot safely continue.
func (e *engine) Run(p pipeline.T) (int, error) {
	n := len(p)
	if n == 0 {
		return 0, nil
	}

	pipes, err := plumb(n - 1)
	if err != nil {
		return 0, err
	}

	procs := make([]*os.Process, n)
	status := make([]int, n)

	for i, stage := range p {
		path, exe, err := adapted.LookPath(stage.Name(), os.Getenv("PATH"))
		if err != nil || !exe {
			fmt.Fprintf(e.files[2], "jsh error: Command not found: %s\n", stage.Name())

			status[i] = NotFound

			continue
		}

		files := [3]*os.File{e.files[0], e.files[1], e.files[2]}
		if i > 0 {
			files[0] = pipes[i-1].r
		}

		if i < n-1 {
			files[1] = pipes[i].w
		}

		proc, err := os.StartProcess(path, stage, &os.ProcAttr{Files: files[:]})
		if err != nil {
			return 0, fmt.Errorf("cannot start %s: %w", stage.Name(), err)
		}

		procs[i] = proc
	}

	if err := unplumb(pipes); err != nil {
		return 0, err
	}

	for i, proc := range procs {
		if proc == nil {
			continue
		}

		ws, err := process.Wait(proc.Pid)
		if err != nil {
			return 0, fmt.Errorf("cannot wait for %s: %w", p[i].Name(), err)
		}

		status[i] = process.ExitStatus(ws)

		// The wait above already reaped the child.
		_ = proc.Release()
	}

	return status[n-1], nil
}

type pipe struct {
	r *os.File
	w *os.File
}

// plumb creates the n pipes connecting adjacent stages. os.Pipe sets
// O_CLOEXEC on both ends, so a stage only ever inherits the ends it is
// explicitly given.
func plumb(n int) ([]pipe, error) {
	pipes := make([]pipe, n)

	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			return nil, fmt.Errorf("cannot create pipe: %w", err)
		}

		pipes[i] = pipe{r: r, w: w}
	}

	return pipes, nil
}

// unplumb closes the shell's ends of every pipe. The started stages then
// hold the only remaining ends, so each stage sees EOF as soon as its
// upstream neighbour is done.
func unplumb(pipes []pipe) error {
	for _, p := range pipes {
		if err := p.r.Close(); err != nil {
			return fmt.Errorf("cannot close pipe: %w", err)
		}

		if err := p.w.Close(); err != nil {
			return fmt.Errorf("cannot close pipe: %w", err)
		}
	}

	return nil
}
