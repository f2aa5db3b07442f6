package tui

import (
	"strings"
	"testing"
)

func TestOverlayCenterKeepsBaseOutsideCard(t *testing.T) {
	base := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")
	out := overlayCenter(base, "XX", 10, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if lines[0] != "aaaaaaaaaa" || lines[2] != "cccccccccc" {
		t.Fatalf("rows without card changed: %q", lines)
	}
	if lines[1] != "bbbbXXbbbb" {
		t.Fatalf("card row = %q, want %q", lines[1], "bbbbXXbbbb")
	}
}

func TestOverlayCenterWithoutSizeAppends(t *testing.T) {
	if got := overlayCenter("base", "card", 0, 0); got != "base\n\ncard" {
		t.Fatalf("got %q", got)
	}
}
