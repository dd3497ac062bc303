package cliputil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SanitizeName replaces spaces with underscores and removes filesystem-unsafe
// characters so the result can be used as a file name component.
func SanitizeName(name string) string {
	if name == "" {
		return "clip"
	}
	out := strings.ReplaceAll(name, " ", "_")
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		out = strings.ReplaceAll(out, c, "")
	}
	return out
}

// FormatTimestamp converts milliseconds to H-MM-SS format (hyphens instead of
// colons for filenames).
func FormatTimestamp(ms int) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d-%02d-%02d", h, m, s)
}

// OutputDir returns the clips output directory path based on the video file
// path. For example, "/path/to/office.mp4" returns "/path/to/office-clips".
func OutputDir(videoPath string) string {
	dir := filepath.Dir(videoPath)
	base := filepath.Base(videoPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, name+"-clips")
}

// OutputPath returns the full path for a generated clip.
// Format: {outputDir}/{videoBase}_{H-MM-SS}.{ext}
func OutputPath(videoPath string, startMs int, ext string) string {
	base := filepath.Base(videoPath)
	name := SanitizeName(strings.TrimSuffix(base, filepath.Ext(base)))
	return filepath.Join(OutputDir(videoPath), name+"_"+FormatTimestamp(startMs)+ext)
}
