// Released under an MIT license. See LICENSE.

// Package pipeline provides jsh's pipeline type: the parsed form of one
// line of input.
package pipeline

// Stage is one command in a pipeline: its words in argv order, with the
// program name first. A stage parsed from consecutive pipes, or from a
// pipe at either end of the line, has no words; its name is the empty
// string, which no program resolution can satisfy.
type Stage []string

// Name returns the stage's program name.
func (s Stage) Name() string {
	if len(s) == 0 {
		return ""
	}

	return s[0]
}

// T (pipeline) is a sequence of stages. The order of the slice is both
// the spawn order and the wait order. A blank line parses to an empty
// pipeline.
type T []Stage

type pipeline = T

// Empty returns true if the pipeline has no stages.
func (p pipeline) Empty() bool {
	return len(p) == 0
}

// Lead returns the first word of the first stage, or "" if there is none.
func (p pipeline) Lead() string {
	if len(p) == 0 {
		return ""
	}

	return p[0].Name()
}
