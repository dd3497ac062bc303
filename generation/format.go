// Package generation assembles clip settings, builds the encoder filter
// graph, and drives the two-pass clip generation.
package generation

import (
	"fmt"
	"strings"
)

// Format is a supported output format for generated clips.
type Format int

const (
	GIF Format = iota + 1
	WEBP
	MP4
)

// ParseFormat parses a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gif":
		return GIF, nil
	case "webp":
		return WEBP, nil
	case "mp4":
		return MP4, nil
	default:
		return 0, fmt.Errorf("unsupported format %q (want gif, webp, or mp4)", s)
	}
}

func (f Format) String() string {
	switch f {
	case GIF:
		return "gif"
	case WEBP:
		return "webp"
	case MP4:
		return "mp4"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the file extension for the format, with the leading dot.
func (f Format) Ext() string {
	return "." + f.String()
}

// Animated reports whether the format is an animated image that should loop.
func (f Format) Animated() bool {
	return f == GIF || f == WEBP
}
