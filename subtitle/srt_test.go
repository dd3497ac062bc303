package subtitle

import (
	"strings"
	"testing"
)

const sampleSRT = `1
00:00:01,000 --> 00:00:03,500
NO GOD

2
00:00:03,800 --> 00:00:07,000
<i>No God, please no.</i>
No. No.

3
00:00:08,200 --> 00:00:11,000
{\an8}NOOOOOOOOOO
`

func TestParseSRT(t *testing.T) {
	track, err := ParseSRT(strings.NewReader(sampleSRT))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if len(track) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(track))
	}

	first := track.At(0)
	if first.Start != 1000 || first.End != 3500 {
		t.Errorf("cue 1 timing = (%d, %d), want (1000, 3500)", first.Start, first.End)
	}
	if first.Text() != "NO GOD" {
		t.Errorf("cue 1 text = %q", first.Text())
	}

	second := track.At(1)
	if len(second.Lines) != 2 {
		t.Fatalf("cue 2 expected 2 lines, got %d", len(second.Lines))
	}
	if second.Lines[0] != "No God, please no." {
		t.Errorf("cue 2 markup not stripped: %q", second.Lines[0])
	}

	third := track.At(2)
	if third.Lines[0] != "NOOOOOOOOOO" {
		t.Errorf("cue 3 ASS override not stripped: %q", third.Lines[0])
	}
}

func TestParseSRTTolerance(t *testing.T) {
	// BOM, CRLF line endings, '.' millisecond separator, no trailing blank.
	raw := "\ufeff1\r\n00:00:00.500 --> 00:00:02.000\r\nhello there\r\n"
	track, err := ParseSRT(strings.NewReader(raw))
	if err != nil {
		t.Fatalf("ParseSRT: %v", err)
	}
	if len(track) != 1 {
		t.Fatalf("expected 1 cue, got %d", len(track))
	}
	if track[0].Start != 500 || track[0].End != 2000 {
		t.Errorf("timing = (%d, %d), want (500, 2000)", track[0].Start, track[0].End)
	}
}

func TestParseSRTRejectsInvalidTiming(t *testing.T) {
	raw := "1\n00:00:05,000 --> 00:00:01,000\nbackwards\n"
	if _, err := ParseSRT(strings.NewReader(raw)); err == nil {
		t.Fatal("expected error for start >= end")
	}

	raw = "1\nnot a timing line\ntext\n"
	if _, err := ParseSRT(strings.NewReader(raw)); err == nil {
		t.Fatal("expected error for malformed timing line")
	}
}

func TestParseSRTTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00:29,082", 29_082, false},
		{"01:02:03,004", 3_723_004, false},
		{" 00:00:01,500 ", 1500, false},
		{"00:00:01.500", 1500, false},
		{"", 0, true},
		{"1:2", 0, true},
		{"aa:bb:cc,dd", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseSRTTimestamp(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSRTTimestamp(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSRTTimestamp(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSRTTimestamp(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
