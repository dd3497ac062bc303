package layout

import (
	"strings"
	"testing"
)

func TestPadToWidth(t *testing.T) {
	if got := PadToWidth("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := PadToWidth("abcdef", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
	if got := PadToWidth("ab", 0); got != "" {
		t.Errorf("zero width = %q", got)
	}
}

func TestNormalizeLines(t *testing.T) {
	got := NormalizeLines([]string{"a", "b", "c"}, 2)
	if len(got) != 2 || got[1] != "b" {
		t.Errorf("truncate = %v", got)
	}
	got = NormalizeLines([]string{"a"}, 3)
	if len(got) != 3 || got[2] != "" {
		t.Errorf("pad = %v", got)
	}
}

func TestComputeColumnWidths(t *testing.T) {
	list, side, show := ComputeColumnWidths(120)
	if !show {
		t.Fatal("side panel should show at 120 columns")
	}
	if list+side != 119 {
		t.Errorf("columns %d+%d should fill 119", list, side)
	}

	list, side, show = ComputeColumnWidths(60)
	if show || side != 0 || list != 60 {
		t.Errorf("narrow layout = (%d, %d, %v)", list, side, show)
	}
}

func TestContainerConstrainsDimensions(t *testing.T) {
	c := Container{Width: 10, Height: 3}
	out := c.Render("one\ntwo")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := len([]rune(line)); w != 10 {
			t.Errorf("line %d width = %d, want 10", i, w)
		}
	}
}
