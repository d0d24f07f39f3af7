// Released under an MIT license. See LICENSE.

package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tyganChin/shell/internal/pipeline"
	"github.com/tyganChin/shell/internal/reader/lexer"
)

func parse(t *testing.T, s string) (pipeline.T, error) {
	t.Helper()

	l := lexer.New()
	l.Scan(s)

	return New(l.Token).Parse()
}

func check(t *testing.T, s string, want pipeline.T) {
	t.Helper()

	got, err := parse(t, s)
	if err != nil {
		t.Fatalf("parse(%q): %v", s, err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parse(%q) mismatch (-want +got):\n%s", s, diff)
	}
}

func checkError(t *testing.T, s, want string) {
	t.Helper()

	_, err := parse(t, s)
	if err == nil {
		t.Fatalf("parse(%q): expected an error", s)
	}

	if !strings.Contains(err.Error(), want) {
		t.Fatalf("parse(%q) = %q; expected mention of %q", s, err, want)
	}
}

func TestBlankLine(t *testing.T) {
	check(t, "\n", nil)
	check(t, " \t  \n", nil)
}

func TestSimpleCommand(t *testing.T) {
	check(t, "ls -la\n", pipeline.T{{"ls", "-la"}})
}

func TestPipeline(t *testing.T) {
	check(t, "echo hi | cat\n", pipeline.T{{"echo", "hi"}, {"cat"}})
}

func TestStageAndWordOrder(t *testing.T) {
	check(t, "a 1 2 | b 3 | c | d 4 5 6\n", pipeline.T{
		{"a", "1", "2"},
		{"b", "3"},
		{"c"},
		{"d", "4", "5", "6"},
	})
}

func TestEmptyStages(t *testing.T) {
	check(t, "| cat\n", pipeline.T{nil, {"cat"}})
	check(t, "cat |\n", pipeline.T{{"cat"}, nil})
	check(t, "a || b\n", pipeline.T{{"a"}, nil, {"b"}})
	check(t, "|\n", pipeline.T{nil, nil})
}

func TestWordCeiling(t *testing.T) {
	stage := make(pipeline.Stage, MaxStageWords)
	for i := range stage {
		stage[i] = "w"
	}

	line := strings.TrimSuffix(strings.Repeat("w ", MaxStageWords), " ")
	check(t, line+"\n", pipeline.T{stage})

	checkError(t, strings.Repeat("w ", MaxStageWords+1)+"\n",
		"too many words in stage (max 500)")
}

func TestStageCeiling(t *testing.T) {
	line := make(pipeline.T, MaxStages)
	for i := range line {
		line[i] = pipeline.Stage{"p"}
	}

	check(t, strings.Repeat("p|", MaxStages-1)+"p\n", line)

	checkError(t, strings.Repeat("p|", MaxStages)+"p\n",
		"too many stages in pipeline (max 1000)")
}

func TestWordTooLongSurfaces(t *testing.T) {
	checkError(t, strings.Repeat("x", 101)+"\n", "word too long")
}

func TestErrorsNameTheColumn(t *testing.T) {
	checkError(t, "echo "+strings.Repeat("x", 101)+"\n", "column 6")
}
