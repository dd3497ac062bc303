// Package subtitle models subtitle records extracted from a video and the
// operations that map them to clip time ranges.
package subtitle

import (
	"fmt"
	"strings"
)

// Subtitle is a single subtitle cue. Times are in milliseconds. A record is
// immutable once parsed; Delay is the only caller-supplied adjustment and
// shifts the effective start time.
type Subtitle struct {
	Start int
	End   int
	Lines []string
	Delay int
}

// Duration returns the cue duration in milliseconds.
func (s Subtitle) Duration() int {
	return s.End - s.Start
}

// DurationSeconds returns the cue duration in seconds.
func (s Subtitle) DurationSeconds() float64 {
	return float64(s.Duration()) / 1000.0
}

// StartSeconds returns the start time in seconds.
func (s Subtitle) StartSeconds() float64 {
	return float64(s.Start) / 1000.0
}

// EndSeconds returns the end time in seconds.
func (s Subtitle) EndSeconds() float64 {
	return float64(s.End) / 1000.0
}

// Text returns the cue lines joined with newlines.
func (s Subtitle) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Range resolves the cue to a clip (start, end) pair in milliseconds with the
// delay applied to the start. The start never goes below zero and never
// crosses the end.
func (s Subtitle) Range() (start, end int) {
	start = s.Start + s.Delay
	if start < 0 {
		start = 0
	}
	if start >= s.End {
		start = s.Start
	}
	return start, s.End
}

// Validate checks the record invariants.
func (s Subtitle) Validate() error {
	if s.Start >= s.End {
		return fmt.Errorf("subtitle start %dms is not before end %dms", s.Start, s.End)
	}
	return nil
}

// ClampRange clamps a (start, end) millisecond pair to [0, durationMs].
// A non-positive durationMs means the media duration is unknown and only the
// lower bound is enforced.
func ClampRange(start, end, durationMs int) (int, int) {
	if start < 0 {
		start = 0
	}
	if durationMs > 0 && end > durationMs {
		end = durationMs
	}
	return start, end
}
