package timeutil

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{90, "0:01:30"},
		{4282, "1:11:22"},
		{-5, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0:00:00.000"},
		{1500, "0:00:01.500"},
		{61_042, "0:01:01.042"},
		{-10, "0:00:00.000"},
	}

	for _, tt := range tests {
		if got := FormatMillis(tt.ms); got != tt.want {
			t.Errorf("FormatMillis(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestParseTimeToMillis(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"1:02:03", 3_723_000, false},
		{"02:30", 150_000, false},
		{"45", 45_000, false},
		{"12.5", 12_500, false},
		{"0:01:30.250", 90_250, false},
		{"abc", 0, true},
		{"1:2:3:4", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToMillis(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToMillis(%q) expected error, got %d", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToMillis(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToMillis(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestASSTimestamp(t *testing.T) {
	tests := []struct {
		ms   int
		want string
	}{
		{0, "0:00:00.00"},
		{1500, "0:00:01.50"},
		{3_723_450, "1:02:03.45"},
		{999, "0:00:01.00"}, // rounds to nearest centisecond
		{-20, "0:00:00.00"},
	}

	for _, tt := range tests {
		if got := ASSTimestamp(tt.ms); got != tt.want {
			t.Errorf("ASSTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
