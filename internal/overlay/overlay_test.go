package overlay

import (
	"strings"
	"testing"
)

func TestComposeReplacesAtPosition(t *testing.T) {
	base := "..........\n.........."
	out := Compose(base, AtOffset("XX", 3, 0), 10)

	lines := strings.Split(out, "\n")
	if lines[0] != "...XX....." {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != ".........." {
		t.Errorf("second line changed: %q", lines[1])
	}
}

func TestComposeSkipsBlankOverlayLines(t *testing.T) {
	base := "aaaa\nbbbb"
	out := Compose(base, "\nXX", 4)

	lines := strings.Split(out, "\n")
	if lines[0] != "aaaa" {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "XXbb" {
		t.Errorf("second line = %q", lines[1])
	}
}

func TestComposePadsShortBase(t *testing.T) {
	out := Compose("ab", AtOffset("Z", 5, 0), 8)
	if !strings.Contains(out, "ab   Z") {
		t.Errorf("out = %q", out)
	}
}

func TestAtOffsetClampsNegative(t *testing.T) {
	if got := AtOffset("x", -2, -1); got != "x" {
		t.Errorf("got %q", got)
	}
}
