package subtitle

// Track is an ordered sequence of subtitle records. Insertion order is
// chronological order.
type Track []Subtitle

// At returns the record at index i.
func (t Track) At(i int) Subtitle {
	return t[i]
}

// Prev returns the record before index i, if any.
func (t Track) Prev(i int) (Subtitle, bool) {
	if i <= 0 || i > len(t) {
		return Subtitle{}, false
	}
	return t[i-1], true
}

// Next returns the record after index i, if any.
func (t Track) Next(i int) (Subtitle, bool) {
	if i < 0 || i >= len(t)-1 {
		return Subtitle{}, false
	}
	return t[i+1], true
}

// Between returns the records whose cue overlaps the [startMs, endMs) window.
// Used to collect every subtitle that should be burned into a clip.
func (t Track) Between(startMs, endMs int) []Subtitle {
	var out []Subtitle
	for _, s := range t {
		if s.End <= startMs || s.Start >= endMs {
			continue
		}
		out = append(out, s)
	}
	return out
}
