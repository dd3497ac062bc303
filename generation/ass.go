package generation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/user/sub2clip/pkg/timeutil"
	"github.com/user/sub2clip/subtitle"
)

// dialogueEvents renders subtitle cues as ASS Dialogue lines re-based to the
// clip start. The cue delay shifts the start only.
func dialogueEvents(subs []subtitle.Subtitle, clipStart int, style TextStyle) string {
	ordered := make([]subtitle.Subtitle, len(subs))
	copy(ordered, subs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start < ordered[j].Start
	})

	lines := make([]string, 0, len(ordered))
	for _, sub := range ordered {
		start := timeutil.ASSTimestamp(sub.Start + sub.Delay - clipStart)
		end := timeutil.ASSTimestamp(sub.End - clipStart)
		text := strings.Join(sub.Lines, `\N`)

		lines = append(lines, fmt.Sprintf(
			"Dialogue: 0,%s,%s,%s,,%d,%d,%d,,%s",
			start, end, style.Name,
			style.MarginL, style.MarginR, style.MarginV, text,
		))
	}

	return strings.Join(lines, "\n")
}

// BuildASS produces the complete ASS document burned into the clip: the
// script header sized to the output (plus caption padding), the styles, and
// the subtitle and caption events.
func (s *Settings) BuildASS(subs []subtitle.Subtitle, caption *subtitle.Subtitle, padding int) string {
	eventHeader := "[Events]\n" +
		"Format: Layer,Start,End,Style,Name," +
		"MarginL,MarginR,MarginV,Effect,Text"

	var subStyle, subEvents string
	if len(subs) > 0 {
		subStyle = s.SubtitleStyle.StyleLine()
		subEvents = dialogueEvents(subs, s.Start, s.SubtitleStyle)
	}

	var captionStyle, captionEvents string
	if caption != nil {
		captionStyle = s.CaptionStyle.StyleLine()
		captionEvents = dialogueEvents([]subtitle.Subtitle{*caption}, s.Start, s.CaptionStyle)
	}

	return strings.Join([]string{
		"[Script Info]",
		"ScriptType: v4.00+",
		fmt.Sprintf("PlayResX: %d", s.Width),
		fmt.Sprintf("PlayResY: %d", s.Height+padding),
		"",
		s.SubtitleStyle.StyleHeader(),
		subStyle,
		captionStyle,
		"",
		eventHeader,
		subEvents,
		captionEvents,
	}, "\n")
}

// captionASS builds a standalone ASS document holding only the caption text,
// used to measure its rendered height.
func captionASS(style TextStyle, text string, width, height int) string {
	return strings.Join([]string{
		"[Script Info]",
		"ScriptType: v4.00+",
		fmt.Sprintf("PlayResX: %d", width),
		fmt.Sprintf("PlayResY: %d", height),
		"",
		style.StyleHeader(),
		style.StyleLine(),
		"",
		"[Events]",
		"Format: Layer,Start,End,Style,Name,MarginL,MarginR,MarginV,Effect,Text",
		fmt.Sprintf("Dialogue: 0,0:00:00.00,0:00:05.00,%s,,%d,%d,%d,,%s",
			style.Name, style.MarginL, style.MarginR, style.MarginV, text),
	}, "\n")
}
