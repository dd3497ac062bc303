package subtitle

import "testing"

func TestRange(t *testing.T) {
	tests := []struct {
		name      string
		sub       Subtitle
		wantStart int
		wantEnd   int
	}{
		{"no delay", Subtitle{Start: 1000, End: 3000}, 1000, 3000},
		{"positive delay", Subtitle{Start: 1000, End: 3000, Delay: 300}, 1300, 3000},
		{"negative delay", Subtitle{Start: 1000, End: 3000, Delay: -500}, 500, 3000},
		{"delay below zero", Subtitle{Start: 200, End: 3000, Delay: -500}, 0, 3000},
		{"delay past end ignored", Subtitle{Start: 1000, End: 3000, Delay: 5000}, 1000, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.sub.Range()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestClampRange(t *testing.T) {
	start, end := ClampRange(-100, 5000, 4000)
	if start != 0 || end != 4000 {
		t.Errorf("ClampRange = (%d, %d), want (0, 4000)", start, end)
	}

	// Unknown duration only enforces the lower bound.
	start, end = ClampRange(-1, 9000, 0)
	if start != 0 || end != 9000 {
		t.Errorf("ClampRange = (%d, %d), want (0, 9000)", start, end)
	}
}

func TestTrackNavigation(t *testing.T) {
	track := Track{
		{Start: 0, End: 1000, Lines: []string{"a"}},
		{Start: 1000, End: 2000, Lines: []string{"b"}},
		{Start: 2000, End: 3000, Lines: []string{"c"}},
	}

	if prev, ok := track.Prev(1); !ok || prev.Text() != "a" {
		t.Errorf("Prev(1) = %v, %v", prev, ok)
	}
	if _, ok := track.Prev(0); ok {
		t.Error("Prev(0) should not exist")
	}
	if next, ok := track.Next(1); !ok || next.Text() != "c" {
		t.Errorf("Next(1) = %v, %v", next, ok)
	}
	if _, ok := track.Next(2); ok {
		t.Error("Next(2) should not exist")
	}
}

func TestTrackBetween(t *testing.T) {
	track := Track{
		{Start: 0, End: 1000, Lines: []string{"a"}},
		{Start: 1500, End: 2500, Lines: []string{"b"}},
		{Start: 4000, End: 5000, Lines: []string{"c"}},
	}

	within := track.Between(1000, 4000)
	if len(within) != 1 || within[0].Text() != "b" {
		t.Fatalf("Between(1000, 4000) = %v", within)
	}

	// Overlap at either edge counts.
	within = track.Between(500, 1600)
	if len(within) != 2 {
		t.Fatalf("Between(500, 1600) expected 2 cues, got %d", len(within))
	}
}

func TestSearch(t *testing.T) {
	track := Track{
		{Start: 0, End: 1000, Lines: []string{"Le café est chaud"}},
		{Start: 1000, End: 2000, Lines: []string{"NO GOD", "please no"}},
		{Start: 2000, End: 3000, Lines: []string{"something else"}},
	}

	hits := track.Search("cafe")
	if len(hits) != 1 || hits[0].Index != 0 {
		t.Fatalf("accent-insensitive search failed: %v", hits)
	}

	hits = track.Search("PLEASE")
	if len(hits) != 1 || hits[0].Index != 1 {
		t.Fatalf("case-insensitive search failed: %v", hits)
	}

	// Empty query returns everything in order.
	hits = track.Search("  ")
	if len(hits) != 3 {
		t.Fatalf("empty query expected 3 hits, got %d", len(hits))
	}
	for i, h := range hits {
		if h.Index != i {
			t.Errorf("hit %d has index %d", i, h.Index)
		}
	}

	if got := track.Search("zzz"); len(got) != 0 {
		t.Errorf("expected no hits, got %v", got)
	}
}

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Café", "cafe"},
		{"ÀÉÎÕÜ", "aeiou"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
