package generation

import (
	"fmt"
	"strings"

	"github.com/user/sub2clip/subtitle"
)

// GIF palette filters. The default palette is capped at 32 colors with bayer
// dithering to keep files small; HD mode uses the full palette.
const (
	paletteHD      = "split[s0][s1];[s0]palettegen[p];[s1][p]paletteuse"
	paletteDefault = "split[s0][s1];[s0]palettegen=max_colors=32[p];[s1][p]paletteuse=dither=bayer"
)

// boomerangFilter reverses the clip and concatenates it after the original.
const boomerangFilter = "[0]reverse[r];[0][r]concat=n=2:v=1:a=0"

// BuildFilters assembles the -filter_complex chain for the final transcode.
// assPath is the burned-subtitle ASS file, padding the extra caption height
// (0 when there is no caption). Order matters: the boomerang concat must come
// first and the GIF palette last.
func (s *Settings) BuildFilters(assPath string, padding int) []string {
	var filters []string

	if s.Boomerang {
		filters = append(filters, boomerangFilter)
	}

	filters = append(filters, fmt.Sprintf("fps=%d", s.FPS))

	if s.Crop {
		filters = append(filters, "crop=in_h:in_h")
	}

	filters = append(filters, fmt.Sprintf("scale=%d:%d:flags=lanczos", s.Width, s.Height))

	if padding > 0 {
		filters = append(filters, fmt.Sprintf("pad=iw:(ih+%d):0:%d", padding, padding))
	}

	filters = append(filters, fmt.Sprintf("subtitles=%s", assPath))

	if s.Format == GIF {
		if s.HDGIF {
			filters = append(filters, paletteHD)
		} else {
			filters = append(filters, paletteDefault)
		}
	}

	return filters
}

// FilterGraph joins the filter chain into the -filter_complex argument.
func (s *Settings) FilterGraph(assPath string, padding int) string {
	return strings.Join(s.BuildFilters(assPath, padding), ",")
}

// boomerangSubtitles duplicates each cue mirrored into the reversed half of a
// boomerang clip so text also shows while the clip plays backwards.
func (s *Settings) boomerangSubtitles(subs []subtitle.Subtitle) []subtitle.Subtitle {
	duration := s.Duration()
	out := make([]subtitle.Subtitle, 0, len(subs)*2)
	out = append(out, subs...)

	for _, sub := range subs {
		relStart := sub.Start - s.Start
		relEnd := sub.End - s.Start
		out = append(out, subtitle.Subtitle{
			Start: s.Start + 2*duration - relEnd,
			End:   s.Start + 2*duration - relStart,
			Lines: sub.Lines,
			Delay: sub.Delay,
		})
	}

	return out
}

// boomerangCaption stretches the caption across both halves of a boomerang.
func boomerangCaption(c subtitle.Subtitle) subtitle.Subtitle {
	return subtitle.Subtitle{
		Start: c.Start,
		End:   c.Start + 2*(c.End-c.Start),
		Lines: c.Lines,
		Delay: c.Delay,
	}
}
