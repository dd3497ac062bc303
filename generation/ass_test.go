package generation

import (
	"strings"
	"testing"

	"github.com/user/sub2clip/subtitle"
)

func TestStyleLine(t *testing.T) {
	style := DefaultSubtitleStyle("Arial", 20)
	line := style.StyleLine()
	want := "Style: subtitle_style,Arial,20,&H00FFFFFF,&H00000000," +
		"&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,1,0,2,0,0,10,1"
	if line != want {
		t.Errorf("StyleLine() =\n%s\nwant\n%s", line, want)
	}
}

func TestEffectiveOutline(t *testing.T) {
	style := DefaultSubtitleStyle("Arial", 50)
	if got := style.EffectiveOutline(); got != 2 {
		t.Errorf("EffectiveOutline = %d, want 2", got)
	}
	style.OutlineWidth = 5
	if got := style.EffectiveOutline(); got != 5 {
		t.Errorf("explicit EffectiveOutline = %d, want 5", got)
	}
}

func TestCaptionStyle(t *testing.T) {
	base := DefaultSubtitleStyle("Google Sans", 50)
	cap := CaptionStyle(base)
	if cap.Name != "caption_style" || cap.Alignment != 7 || cap.MarginL != 15 {
		t.Errorf("unexpected caption style: %+v", cap)
	}
	if cap.Font != "Google Sans" || cap.Size != 50 {
		t.Errorf("caption style does not inherit font: %+v", cap)
	}
}

func TestBuildASS(t *testing.T) {
	s := validSettings() // range 1000..4000
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	s.Width = 568
	s.Height = 320

	subs := []subtitle.Subtitle{
		// Out of order on purpose: events must be sorted by start.
		{Start: 3200, End: 3900, Lines: []string{"second"}},
		{Start: 1500, End: 2500, Lines: []string{"first line", "first line b"}, Delay: 100},
	}
	caption := &subtitle.Subtitle{Start: 1000, End: 4000, Lines: []string{"caption"}}

	doc := s.BuildASS(subs, caption, 44)

	if !strings.Contains(doc, "PlayResX: 568") {
		t.Error("missing PlayResX")
	}
	// Caption padding is added to the script height.
	if !strings.Contains(doc, "PlayResY: 364") {
		t.Error("missing padded PlayResY")
	}
	if !strings.Contains(doc, "Style: subtitle_style,") || !strings.Contains(doc, "Style: caption_style,") {
		t.Error("missing style lines")
	}

	// Events are re-based to clip start; 1500+100-1000 = 600ms = 0:00:00.60.
	first := `Dialogue: 0,0:00:00.60,0:00:01.50,subtitle_style,,0,0,10,,first line\Nfirst line b`
	if !strings.Contains(doc, first) {
		t.Errorf("missing re-based dialogue line, doc:\n%s", doc)
	}

	second := "Dialogue: 0,0:00:02.20,0:00:02.90,subtitle_style,"
	if !strings.Contains(doc, second) {
		t.Errorf("missing second dialogue line, doc:\n%s", doc)
	}
	if strings.Index(doc, first) > strings.Index(doc, second) {
		t.Error("dialogue events not sorted by start time")
	}

	capLine := "Dialogue: 0,0:00:00.00,0:00:03.00,caption_style,,15,0,10,,caption"
	if !strings.Contains(doc, capLine) {
		t.Errorf("missing caption dialogue line, doc:\n%s", doc)
	}
}

func TestBuildASSNoCaption(t *testing.T) {
	s := validSettings()
	if err := s.Validate(); err != nil {
		t.Fatal(err)
	}
	s.Width = 100
	s.Height = 100

	doc := s.BuildASS([]subtitle.Subtitle{{Start: 1000, End: 2000, Lines: []string{"x"}}}, nil, 0)
	if strings.Contains(doc, "caption_style") {
		t.Error("caption style emitted without a caption")
	}
	if !strings.Contains(doc, "PlayResY: 100") {
		t.Error("unexpected PlayResY")
	}
}

func TestCaptionASSDocument(t *testing.T) {
	style := CaptionStyle(DefaultSubtitleStyle("Arial", 24))
	doc := captionASS(style, `two\Nlines`, 320, 240)
	if !strings.Contains(doc, "PlayResX: 320") || !strings.Contains(doc, "PlayResY: 240") {
		t.Error("missing play resolution")
	}
	if !strings.Contains(doc, `,,two\Nlines`) {
		t.Errorf("missing caption text, doc:\n%s", doc)
	}
}
