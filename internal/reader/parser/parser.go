// Released under an MIT license. See LICENSE.

// Package parser provides jsh's parser.
//
// The grammar is a single production: a line is stages separated by '|'
// and terminated by a newline or the end of the token stream. Beyond
// assembling the pipeline the parser enforces the structural ceilings on
// one line of input.
package parser

import (
	"fmt"

	"github.com/tyganChin/shell/internal/pipeline"
	"github.com/tyganChin/shell/internal/reader/token"
)

// Structural ceilings for one line of input.
const (
	MaxStages     = 1000 // Stages in one pipeline.
	MaxStageWords = 500  // Words in one stage.
)

// T holds the state of the parser.
type T struct {
	item func() *token.T
}

type parser = T

// New creates a new parser pulling tokens from item.
func New(item func() *token.T) *parser {
	return &parser{item: item}
}

// Parse consumes tokens up to the first newline, or the end of the token
// stream, and returns the pipeline they describe. Empty stages are kept;
// they fail program resolution when the pipeline runs.
func (p *parser) Parse() (pipeline.T, error) {
	var line pipeline.T

	var stage pipeline.Stage

	seen := false

	for {
		t := p.item()

		switch {
		case t == nil, t.Is('\n'):
			if seen {
				line = append(line, stage)
			}

			return line, nil

		case t.Is(token.Error):
			return nil, fmt.Errorf("column %d: %s", t.Col(), t.Value())

		case t.Is(token.Pipe):
			line = append(line, stage)
			stage = nil
			seen = true

			if len(line) == MaxStages {
				return nil, fmt.Errorf(
					"column %d: too many stages in pipeline (max %d)",
					t.Col(), MaxStages,
				)
			}

		case t.Is(token.Symbol):
			if len(stage) == MaxStageWords {
				return nil, fmt.Errorf(
					"column %d: too many words in stage (max %d)",
					t.Col(), MaxStageWords,
				)
			}

			stage = append(stage, t.Value())
			seen = true
		}
	}
}
