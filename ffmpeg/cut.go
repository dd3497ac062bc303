package ffmpeg

import (
	"context"
	"fmt"
)

// CutOptions defines the parameters for cutting the intermediate clip.
type CutOptions struct {
	Input   string
	Output  string
	StartMs int
	EndMs   int
	// Re-encode fallback quality.
	CRF    int
	Preset string
}

// Cut extracts the [StartMs, EndMs) range of the input into an intermediate
// clip using stream copy. Stream-copied cuts can land on a keyframe boundary
// past the whole range and yield a file with no video stream; when that
// happens the cut is redone with a libx265 re-encode.
func (e *Executor) Cut(ctx context.Context, opts CutOptions) error {
	duration := opts.EndMs - opts.StartMs
	if duration <= 0 {
		return fmt.Errorf("invalid clip range: end must be after start")
	}

	e.logger.Info().
		Str("input", opts.Input).
		Str("output", opts.Output).
		Int("start_ms", opts.StartMs).
		Int("duration_ms", duration).
		Msg("cutting clip")

	startArg := fmt.Sprintf("%.3f", float64(opts.StartMs)/1000.0)
	durArg := fmt.Sprintf("%.3f", float64(duration)/1000.0)

	err := e.Run(ctx,
		"-i", opts.Input,
		"-ss", startArg,
		"-t", durArg,
		"-c", "copy",
		opts.Output,
	)
	if err != nil {
		return fmt.Errorf("clip cut failed: %w", err)
	}

	hasVideo, err := e.HasVideoStream(ctx, opts.Output)
	if err != nil {
		return err
	}
	if hasVideo {
		return nil
	}

	e.logger.Debug().Str("output", opts.Output).Msg("stream copy produced no video, re-encoding")

	err = e.Run(ctx,
		"-i", opts.Input,
		"-ss", startArg,
		"-t", durArg,
		"-c:v", "libx265",
		"-crf", fmt.Sprintf("%d", opts.CRF),
		"-preset", opts.Preset,
		opts.Output,
	)
	if err != nil {
		return fmt.Errorf("clip re-encode failed: %w", err)
	}
	return nil
}
