package generation

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Settings is the full parameter set for one clip generation request.
// Times are in milliseconds. Either Resolution (output height, width derived
// keeping aspect ratio) or Width+Height must be set, not both.
type Settings struct {
	InputPath  string
	ClipPath   string // intermediate cut clip
	OutputPath string
	Format     Format

	Start int
	End   int

	FPS        int
	Width      int
	Height     int
	Resolution int

	SubtitleStyle TextStyle
	CaptionStyle  TextStyle

	Crop      bool // crop to a square
	Boomerang bool // append the reversed clip
	HDGIF     bool // full palette GIF (larger files)

	// Re-encoding quality for the cut fallback.
	CRF    int
	Preset string
}

// applyDefaults fills zero-valued fields with the built-in defaults.
func (s *Settings) applyDefaults() {
	if s.FPS == 0 {
		s.FPS = 20
	}
	if s.CRF == 0 {
		s.CRF = 18
	}
	if s.Preset == "" {
		s.Preset = "fast"
	}
	if s.SubtitleStyle == (TextStyle{}) {
		s.SubtitleStyle = DefaultSubtitleStyle("", 0)
	}
	if s.CaptionStyle == (TextStyle{}) {
		s.CaptionStyle = CaptionStyle(s.SubtitleStyle)
	}
}

// Validate checks the cross-field invariants. It does not touch the
// filesystem or the encoder.
func (s *Settings) Validate() error {
	s.applyDefaults()

	if s.InputPath == "" {
		return fmt.Errorf("input path is required")
	}
	if s.ClipPath == "" {
		return fmt.Errorf("intermediate clip path is required")
	}
	if s.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if s.Start >= s.End {
		return fmt.Errorf("clip start time cannot be at or after end time")
	}
	if s.FPS < 0 || s.FPS > 120 {
		return fmt.Errorf("fps must be in 1..120, got %d", s.FPS)
	}

	resSet := s.Resolution > 0
	widthSet := s.Width > 0
	heightSet := s.Height > 0

	if resSet && (widthSet || heightSet) {
		return fmt.Errorf("either set resolution or width+height, not both")
	}
	if !resSet && !(widthSet && heightSet) {
		return fmt.Errorf("either resolution or both width and height must be set")
	}
	if s.Crop && !resSet && s.Width != s.Height {
		return fmt.Errorf("crop requested but width %d does not match height %d", s.Width, s.Height)
	}

	ext := strings.ToLower(filepath.Ext(s.OutputPath))
	if ext != s.Format.Ext() {
		return fmt.Errorf("output file extension %q does not match format %s", ext, s.Format)
	}

	return nil
}

// ResolveDimensions computes the final Width/Height from Resolution using the
// source dimensions. With Crop the output is a Resolution×Resolution square;
// otherwise the height is Resolution and the width preserves the source
// aspect ratio, rounded to the nearest even number. A no-op when Width and
// Height are already set.
func (s *Settings) ResolveDimensions(srcWidth, srcHeight int) error {
	if s.Resolution <= 0 {
		return nil
	}
	if s.Crop {
		s.Width = s.Resolution
		s.Height = s.Resolution
		return nil
	}
	if srcWidth <= 0 || srcHeight <= 0 {
		return fmt.Errorf("invalid source dimensions %dx%d", srcWidth, srcHeight)
	}
	s.Height = s.Resolution
	s.Width = 2 * int(math.Round(float64(srcWidth)*float64(s.Height)/float64(srcHeight)/2))
	return nil
}

// Duration returns the clip duration in milliseconds.
func (s *Settings) Duration() int {
	return s.End - s.Start
}
