package cmd

import (
	"strings"
	"testing"

	"github.com/user/sub2clip/subtitle"
)

func rangeTrack() subtitle.Track {
	return subtitle.Track{
		{Start: 1000, End: 2000, Lines: []string{"hello there"}},
		{Start: 3000, End: 4000, Lines: []string{"general kenobi"}},
		{Start: 5000, End: 6000, Lines: []string{"you are a bold one"}},
	}
}

func resetGenerateFlags() {
	generateFlags.start = ""
	generateFlags.end = ""
	generateFlags.query = ""
	generateFlags.index = 0
	generateFlags.count = 1
	generateFlags.pad = 0
}

func TestResolveRangeQuery(t *testing.T) {
	resetGenerateFlags()
	generateFlags.query = "kenobi"
	generateFlags.count = 2

	start, end, err := resolveRange(rangeTrack(), 10000)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if start != 3000 || end != 6000 {
		t.Errorf("range = (%d, %d), want (3000, 6000)", start, end)
	}
}

func TestResolveRangeIndexClampsCount(t *testing.T) {
	resetGenerateFlags()
	generateFlags.index = 3
	generateFlags.count = 5

	start, end, err := resolveRange(rangeTrack(), 10000)
	if err != nil {
		t.Fatalf("resolveRange: %v", err)
	}
	if start != 5000 || end != 6000 {
		t.Errorf("range = (%d, %d), want (5000, 6000)", start, end)
	}
}

func TestResolveRangeRejectsBadCount(t *testing.T) {
	for _, count := range []int{0, -1} {
		resetGenerateFlags()
		generateFlags.query = "hello"
		generateFlags.count = count

		_, _, err := resolveRange(rangeTrack(), 10000)
		if err == nil {
			t.Fatalf("count=%d: expected error", count)
		}
		if !strings.Contains(err.Error(), "--count") {
			t.Errorf("count=%d: error %q does not mention --count", count, err)
		}
	}
}

func TestResolveRangeRequiresFlags(t *testing.T) {
	resetGenerateFlags()
	if _, _, err := resolveRange(rangeTrack(), 10000); err == nil {
		t.Fatal("expected error when no range flags are set")
	}
}
