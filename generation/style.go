package generation

import "fmt"

// TextStyle maps to an ASS subtitle style.
// See http://www.tcax.org/docs/ass-specs.htm for the format specification.
// The zero values of colors and sizes are filled by DefaultSubtitleStyle /
// CaptionStyle; alignment uses ASS numpad values (2 = bottom center,
// 7 = top left).
type TextStyle struct {
	Name         string
	Font         string
	Size         int
	Color        string
	OutlineColor string
	// OutlineWidth of 0 means Size/20.
	OutlineWidth int
	Bold         bool
	Italic       bool
	Shadow       bool
	Alignment    int
	MarginL      int
	MarginR      int
	MarginV      int
}

// DefaultSubtitleStyle returns the style used for burned-in subtitles.
func DefaultSubtitleStyle(font string, size int) TextStyle {
	if font == "" {
		font = "Arial"
	}
	if size <= 0 {
		size = 20
	}
	return TextStyle{
		Name:         "subtitle_style",
		Font:         font,
		Size:         size,
		Color:        "&H00FFFFFF",
		OutlineColor: "&H00000000",
		Alignment:    2,
		MarginV:      10,
	}
}

// CaptionStyle derives the style used for the padded top caption from the
// subtitle style.
func CaptionStyle(base TextStyle) TextStyle {
	style := DefaultSubtitleStyle(base.Font, base.Size)
	style.Name = "caption_style"
	style.Alignment = 7
	style.MarginL = 15
	style.MarginR = 0
	style.MarginV = 10
	return style
}

// EffectiveOutline returns the outline width, defaulting to Size/20.
func (ts TextStyle) EffectiveOutline() int {
	if ts.OutlineWidth > 0 {
		return ts.OutlineWidth
	}
	return ts.Size / 20
}

// StyleHeader returns the ASS [V4+ Styles] section header.
func (ts TextStyle) StyleHeader() string {
	return "[V4+ Styles]\n" +
		"Format: Name,Fontname,Fontsize,PrimaryColour,SecondaryColour," +
		"OutlineColour,BackColour,Bold,Italic,Underline,StrikeOut," +
		"ScaleX,ScaleY,Spacing,Angle,BorderStyle,Outline,Shadow," +
		"Alignment,MarginL,MarginR,MarginV,Encoding"
}

// StyleLine returns the ASS Style: line for this style.
func (ts TextStyle) StyleLine() string {
	return fmt.Sprintf(
		"Style: %s,%s,%d,%s,&H00000000,%s,&H00000000,%d,%d,0,0,"+
			"100,100,0,0,1,%d,%d,%d,%d,%d,%d,1",
		ts.Name, ts.Font, ts.Size, ts.Color, ts.OutlineColor,
		assBool(ts.Bold), assBool(ts.Italic),
		ts.EffectiveOutline(), assBool(ts.Shadow),
		ts.Alignment, ts.MarginL, ts.MarginR, ts.MarginV,
	)
}

func assBool(b bool) int {
	if b {
		return 1
	}
	return 0
}
