package subtitle

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Match is a search hit: the record and its index within the track.
type Match struct {
	Index    int
	Subtitle Subtitle
}

// Fold lowercases a string and strips combining marks so that search is
// case- and accent-insensitive ("café" matches "cafe").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Search returns the records whose text contains the query after folding.
// An empty query matches every record, preserving track order.
func (t Track) Search(query string) []Match {
	query = Fold(strings.TrimSpace(query))

	matches := make([]Match, 0, len(t))
	for i, s := range t {
		if query == "" || strings.Contains(Fold(s.Text()), query) {
			matches = append(matches, Match{Index: i, Subtitle: s})
		}
	}
	return matches
}
