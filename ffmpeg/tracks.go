package ffmpeg

import (
	"fmt"
	"strings"
)

// sdhMarkers are title fragments that identify SDH / closed-caption tracks.
var sdhMarkers = []string{"sdh", "cc", "hearing impaired"}

// SelectTrack picks a subtitle track matching the preferred languages, in
// preference order. SDH and closed-caption tracks are skipped unless
// includeCC is set. An empty language list selects the first track.
func SelectTrack(streams []SubtitleStream, langs []string, includeCC bool) (int, error) {
	if len(streams) == 0 {
		return 0, fmt.Errorf("no subtitle streams found")
	}

	if len(langs) == 0 {
		return streams[0].TrackIndex, nil
	}

	for _, lang := range langs {
		for _, stream := range streams {
			if stream.Language != lang {
				continue
			}
			if includeCC || !isSDH(stream.Title) {
				return stream.TrackIndex, nil
			}
		}
	}

	return 0, fmt.Errorf("no subtitle stream for any of the requested languages: %s",
		strings.Join(langs, ","))
}

func isSDH(title string) bool {
	title = strings.ToLower(title)
	for _, marker := range sdhMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}
	return false
}
