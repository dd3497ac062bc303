package timeutil

import (
	"fmt"
	"strings"
)

// FormatTime formats seconds as H:MM:SS (e.g. 0:01:30, 1:11:22).
func FormatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	totalSeconds := int(seconds)
	hours := totalSeconds / 3600
	mins := (totalSeconds % 3600) / 60
	secs := totalSeconds % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, mins, secs)
}

// FormatMillis formats a millisecond offset as H:MM:SS.mmm.
func FormatMillis(ms int) string {
	if ms < 0 {
		ms = 0
	}
	return fmt.Sprintf("%s.%03d", FormatTime(float64(ms/1000)), ms%1000)
}

// ParseTimeToMillis parses a time string in HH:MM:SS(.mmm), MM:SS(.mmm), or
// raw seconds format and returns milliseconds.
// Uses colon count: 2 colons = H:M:S, 1 colon = M:S, 0 colons = raw seconds.
func ParseTimeToMillis(timeStr string) (int, error) {
	colons := strings.Count(timeStr, ":")

	switch colons {
	case 2:
		var hours, minutes int
		var seconds float64
		if n, err := fmt.Sscanf(timeStr, "%d:%d:%f", &hours, &minutes, &seconds); n == 3 && err == nil {
			return hours*3600_000 + minutes*60_000 + int(seconds*1000), nil
		}
	case 1:
		var minutes int
		var seconds float64
		if n, err := fmt.Sscanf(timeStr, "%d:%f", &minutes, &seconds); n == 2 && err == nil {
			return minutes*60_000 + int(seconds*1000), nil
		}
	case 0:
		var secs float64
		if n, err := fmt.Sscanf(timeStr, "%f", &secs); n == 1 && err == nil {
			return int(secs * 1000), nil
		}
	}

	return 0, fmt.Errorf("expected HH:MM:SS, MM:SS, or seconds, got '%s'", timeStr)
}

// ASSTimestamp formats a millisecond offset using the ASS event timing format,
// H:MM:SS.cc with centisecond precision (e.g. 0:00:01.50).
func ASSTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	cs := (ms + 5) / 10

	hh := cs / 360_000
	cs %= 360_000

	mm := cs / 6_000
	cs %= 6_000

	ss := cs / 100
	cs %= 100

	return fmt.Sprintf("%d:%02d:%02d.%02d", hh, mm, ss, cs)
}
