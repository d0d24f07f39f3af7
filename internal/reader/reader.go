// Package reader turns one line of input into a pipeline.
package reader

import (
	"fmt"

	"github.com/tyganChin/shell/internal/pipeline"
	"github.com/tyganChin/shell/internal/reader/lexer"
	"github.com/tyganChin/shell/internal/reader/parser"
)

// MaxLineBytes is the longest line jsh accepts, counting the terminating
// newline.
const MaxLineBytes = 2048

// Scan parses line, given without its terminating newline, and returns the
// pipeline it describes. Anything beyond an embedded newline is ignored.
func Scan(line string) (pipeline.T, error) {
	if len(line) >= MaxLineBytes {
		return nil, fmt.Errorf("line too long (max %d bytes)", MaxLineBytes)
	}

	l := lexer.New()
	l.Scan(line + "\n")

	return parser.New(l.Token).Parse()
}
