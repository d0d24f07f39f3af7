// Released under an MIT license. See LICENSE.

package reader

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tyganChin/shell/internal/pipeline"
)

func TestScan(t *testing.T) {
	got, err := Scan("echo hi | cat")
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := pipeline.T{{"echo", "hi"}, {"cat"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Scan mismatch (-want +got):\n%s", diff)
	}
}

func TestScanBlank(t *testing.T) {
	for _, s := range []string{"", " ", "   \t  "} {
		p, err := Scan(s)
		if err != nil {
			t.Fatalf("Scan(%q): %v", s, err)
		}

		if !p.Empty() {
			t.Errorf("Scan(%q) = %v; expected an empty pipeline", s, p)
		}
	}
}

func TestScanLineCeiling(t *testing.T) {
	longest := strings.Repeat(" ", MaxLineBytes-1)

	p, err := Scan(longest)
	if err != nil {
		t.Fatalf("Scan of a %d byte line: %v", len(longest), err)
	}

	if !p.Empty() {
		t.Errorf("Scan of blanks = %v; expected an empty pipeline", p)
	}

	_, err = Scan(longest + " ")
	if err == nil {
		t.Fatal("Scan of a 2048 byte line: expected an error")
	}

	if !strings.Contains(err.Error(), "line too long (max 2048 bytes)") {
		t.Errorf("Scan of a 2048 byte line = %q", err)
	}
}

func TestScanReportsTokenErrors(t *testing.T) {
	_, err := Scan("cat " + strings.Repeat("x", 101))
	if err == nil {
		t.Fatal("Scan with an overlong word: expected an error")
	}
}
