package cliputil

import (
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "clip"},
		{"the office", "the_office"},
		{"s01/e02: pilot?", "s01e02_pilot"},
		{"a*b\"c<d>e|f", "abcdef"},
	}
	for _, tt := range tests {
		if got := SanitizeName(tt.in); got != tt.want {
			t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0-00-00"},
		{-500, "0-00-00"},
		{61500, "0-01-01"},
		{3723000, "1-02-03"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.ms); got != tt.want {
			t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("/videos/the office.mp4", 61500, ".gif")
	want := filepath.Join("/videos", "the office-clips", "the_office_0-01-01.gif")
	if got != want {
		t.Errorf("OutputPath = %q, want %q", got, want)
	}
}

func TestPadRange(t *testing.T) {
	tests := []struct {
		name                      string
		start, end, pad, duration int
		wantStart, wantEnd        int
	}{
		{"no clamping", 5000, 8000, 1000, 60000, 4000, 9000},
		{"clamp to zero", 500, 8000, 1000, 60000, 0, 9000},
		{"clamp to duration", 5000, 59500, 1000, 60000, 4000, 60000},
		{"unknown duration", 5000, 59500, 1000, 0, 4000, 60500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, e := PadRange(tt.start, tt.end, tt.pad, tt.duration)
			if s != tt.wantStart || e != tt.wantEnd {
				t.Errorf("PadRange = (%d, %d), want (%d, %d)", s, e, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
