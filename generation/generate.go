package generation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/subtitle"
)

// Generator drives the two-pass clip generation: cut the time range into an
// intermediate clip, then transcode it through the filter graph into the
// final format.
type Generator struct {
	exec   *ffmpeg.Executor
	logger zerolog.Logger
}

// NewGenerator creates a Generator on top of an encoder executor.
func NewGenerator(exec *ffmpeg.Executor, logger zerolog.Logger) *Generator {
	return &Generator{
		exec:   exec,
		logger: logger.With().Str("component", "generation").Logger(),
	}
}

// Result describes a successful generation.
type Result struct {
	OutputPath string
	Size       int64
	Elapsed    time.Duration
}

// SizeMB returns the artifact size in megabytes.
func (r *Result) SizeMB() float64 {
	return float64(r.Size) / (1024 * 1024)
}

// Generate produces the final clip. subs are the cues to burn in (usually the
// track slice overlapping the range) and caption is an optional extra line
// padded above the frame. Settings are validated first; the intermediate clip
// at s.ClipPath is left in place for the caller to keep or discard.
func (g *Generator) Generate(ctx context.Context, s Settings, subs []subtitle.Subtitle, caption *subtitle.Subtitle) (*Result, error) {
	began := time.Now()

	if err := s.Validate(); err != nil {
		return nil, err
	}

	if s.Resolution > 0 {
		srcW, srcH := 0, 0
		if !s.Crop {
			var err error
			srcW, srcH, err = g.exec.Dimensions(ctx, s.InputPath)
			if err != nil {
				return nil, fmt.Errorf("probe input dimensions: %w", err)
			}
		}
		if err := s.ResolveDimensions(srcW, srcH); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(s.OutputPath), 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	err := g.exec.Cut(ctx, ffmpeg.CutOptions{
		Input:   s.InputPath,
		Output:  s.ClipPath,
		StartMs: s.Start,
		EndMs:   s.End,
		CRF:     s.CRF,
		Preset:  s.Preset,
	})
	if err != nil {
		return nil, err
	}

	if s.Boomerang {
		subs = s.boomerangSubtitles(subs)
		if caption != nil {
			c := boomerangCaption(*caption)
			caption = &c
		}
	}

	padding := 0
	if caption != nil {
		padding, err = g.MeasureCaptionPadding(ctx, s.CaptionStyle,
			strings.Join(caption.Lines, `\N`), s.Width, s.Height)
		if err != nil {
			return nil, fmt.Errorf("measure caption padding: %w", err)
		}
	}

	tmp, err := os.MkdirTemp("", "sub2clip-gen-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	assPath := filepath.Join(tmp, "sub.ass")
	if err := os.WriteFile(assPath, []byte(s.BuildASS(subs, caption, padding)), 0644); err != nil {
		return nil, fmt.Errorf("write ass file: %w", err)
	}

	graph := s.FilterGraph(assPath, padding)
	if err := g.exec.Transcode(ctx, s.ClipPath, s.OutputPath, graph, s.Format.Animated()); err != nil {
		return nil, err
	}

	info, err := os.Stat(s.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("stat output: %w", err)
	}

	result := &Result{
		OutputPath: s.OutputPath,
		Size:       info.Size(),
		Elapsed:    time.Since(began),
	}

	g.logger.Info().
		Str("output", result.OutputPath).
		Int64("bytes", result.Size).
		Dur("elapsed", result.Elapsed).
		Msg("clip generated")

	return result, nil
}
