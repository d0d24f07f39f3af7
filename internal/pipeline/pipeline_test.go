// Released under an MIT license. See LICENSE.

package pipeline

import "testing"

func TestStageName(t *testing.T) {
	if n := (Stage{}).Name(); n != "" {
		t.Errorf("empty stage name = %q", n)
	}

	if n := (Stage{"ls", "-l"}).Name(); n != "ls" {
		t.Errorf("stage name = %q; expected %q", n, "ls")
	}
}

func TestEmpty(t *testing.T) {
	if !(T{}).Empty() {
		t.Error("pipeline with no stages is not Empty")
	}

	if (T{{"true"}}).Empty() {
		t.Error("pipeline with a stage is Empty")
	}
}

func TestLead(t *testing.T) {
	if l := (T{}).Lead(); l != "" {
		t.Errorf("empty pipeline lead = %q", l)
	}

	if l := (T{{"exit", "now"}}).Lead(); l != "exit" {
		t.Errorf("lead = %q; expected %q", l, "exit")
	}

	if l := (T{nil, {"cat"}}).Lead(); l != "" {
		t.Errorf("lead of empty first stage = %q", l)
	}
}
