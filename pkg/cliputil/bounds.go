package cliputil

// PadRange widens a subtitle time range symmetrically by padMs on each side,
// clamped to [0, durationMs]. A durationMs of 0 means the media duration is
// unknown and only the lower bound is enforced.
func PadRange(startMs, endMs, padMs, durationMs int) (int, int) {
	start := startMs - padMs
	if start < 0 {
		start = 0
	}
	end := endMs + padMs
	if durationMs > 0 && end > durationMs {
		end = durationMs
	}
	return start, end
}
