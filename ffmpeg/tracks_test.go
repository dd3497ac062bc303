package ffmpeg

import "testing"

func TestSelectTrack(t *testing.T) {
	streams := []SubtitleStream{
		{TrackIndex: 0, Language: "jpn", Title: ""},
		{TrackIndex: 1, Language: "eng", Title: "English (SDH)"},
		{TrackIndex: 2, Language: "eng", Title: "English"},
		{TrackIndex: 3, Language: "fre", Title: ""},
	}

	tests := []struct {
		name      string
		langs     []string
		includeCC bool
		want      int
		wantErr   bool
	}{
		{"skips SDH by default", []string{"eng"}, false, 2, false},
		{"includes SDH when asked", []string{"eng"}, true, 1, false},
		{"language preference order", []string{"ger", "fre"}, false, 3, false},
		{"empty list picks first", nil, false, 0, false},
		{"no match", []string{"spa"}, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectTrack(streams, tt.langs, tt.includeCC)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got track %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectTrack: %v", err)
			}
			if got != tt.want {
				t.Errorf("SelectTrack = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectTrackNoStreams(t *testing.T) {
	if _, err := SelectTrack(nil, []string{"eng"}, false); err == nil {
		t.Fatal("expected error for empty stream list")
	}
}

func TestIsSDH(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"English (SDH)", true},
		{"English [CC]", true},
		{"Hearing Impaired", true},
		{"English", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isSDH(tt.title); got != tt.want {
			t.Errorf("isSDH(%q) = %v, want %v", tt.title, got, tt.want)
		}
	}
}

func TestErrorCommandQuotesFilters(t *testing.T) {
	e := &Error{
		Args:   []string{"-i", "in.mp4", "-filter_complex", "fps=20,scale=320:-2", "out.gif"},
		Output: "something broke\nFilter parse error",
	}
	cmd := e.Command()
	want := `ffmpeg -i in.mp4 -filter_complex "fps=20,scale=320:-2" out.gif`
	if cmd != want {
		t.Errorf("Command() = %q, want %q", cmd, want)
	}
	if got := e.Error(); got == "" || got[:7] != "ffmpeg:" {
		t.Errorf("Error() = %q", got)
	}
}
