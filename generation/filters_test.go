package generation

import (
	"reflect"
	"strings"
	"testing"

	"github.com/user/sub2clip/subtitle"
)

func TestBuildFilters(t *testing.T) {
	s := validSettings()
	s.Width = 568
	s.Height = 320
	s.Resolution = 0
	s.FPS = 20

	got := s.BuildFilters("/tmp/sub.ass", 0)
	want := []string{
		"fps=20",
		"scale=568:320:flags=lanczos",
		"subtitles=/tmp/sub.ass",
		paletteDefault,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildFilters = %v, want %v", got, want)
	}
}

func TestBuildFiltersFullChain(t *testing.T) {
	s := validSettings()
	s.Width = 320
	s.Height = 320
	s.Resolution = 0
	s.FPS = 15
	s.Crop = true
	s.Boomerang = true
	s.HDGIF = true

	got := s.BuildFilters("sub.ass", 44)
	want := []string{
		boomerangFilter,
		"fps=15",
		"crop=in_h:in_h",
		"scale=320:320:flags=lanczos",
		"pad=iw:(ih+44):0:44",
		"subtitles=sub.ass",
		paletteHD,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildFilters = %v, want %v", got, want)
	}
}

func TestBuildFiltersNoPaletteForMP4(t *testing.T) {
	s := validSettings()
	s.Width = 100
	s.Height = 100
	s.Resolution = 0
	s.Format = MP4
	s.OutputPath = "out.mp4"
	s.FPS = 20

	graph := s.FilterGraph("sub.ass", 0)
	if strings.Contains(graph, "palettegen") {
		t.Errorf("mp4 graph should not contain palettegen: %s", graph)
	}
}

func TestBoomerangSubtitles(t *testing.T) {
	s := validSettings() // range 1000..4000, duration 3000
	subs := []subtitle.Subtitle{
		{Start: 1500, End: 2000, Lines: []string{"hi"}},
	}

	got := s.boomerangSubtitles(subs)
	if len(got) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(got))
	}
	// Original is kept.
	if got[0].Start != subs[0].Start || got[0].End != subs[0].End || got[0].Text() != "hi" {
		t.Errorf("original cue changed: %+v", got[0])
	}
	// Mirrored copy: relStart=500, relEnd=1000; reversed half runs
	// [duration, 2*duration), so the copy shows at 2*3000-1000=5000 rel to
	// clip start 1000.
	mirror := got[1]
	if mirror.Start != 1000+5000 || mirror.End != 1000+5500 {
		t.Errorf("mirrored cue = (%d, %d), want (6000, 6500)", mirror.Start, mirror.End)
	}
	if mirror.Text() != "hi" {
		t.Errorf("mirrored cue text = %q", mirror.Text())
	}
}

func TestBoomerangCaption(t *testing.T) {
	c := boomerangCaption(subtitle.Subtitle{Start: 0, End: 3000, Lines: []string{"cap"}})
	if c.End != 6000 {
		t.Errorf("caption end = %d, want 6000", c.End)
	}
}
