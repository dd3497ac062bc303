package ffmpeg

import (
	"context"
	"fmt"
)

// Transcode runs the intermediate clip through the given filter graph into
// the final output. Loop makes animated outputs (GIF/WEBP) repeat forever.
func (e *Executor) Transcode(ctx context.Context, input, output, filterGraph string, loop bool) error {
	e.logger.Info().
		Str("input", input).
		Str("output", output).
		Str("filters", filterGraph).
		Msg("transcoding clip")

	args := []string{"-i", input}
	if filterGraph != "" {
		args = append(args, "-filter_complex", filterGraph)
	}
	if loop {
		args = append(args, "-loop", "0")
	}
	args = append(args, output)

	if err := e.Run(ctx, args...); err != nil {
		return fmt.Errorf("transcode failed: %w", err)
	}
	return nil
}

// RenderCaptionFrame renders a single frame of a magenta lavfi color source
// through the given video filter to a PNG. Used to measure the rendered
// height of a caption before padding the clip for it.
func (e *Executor) RenderCaptionFrame(ctx context.Context, width, height int, vf, outPNG string) error {
	err := e.Run(ctx,
		"-f", "lavfi",
		"-i", fmt.Sprintf("color=0xFF00FF:size=%dx%d:duration=1", width, height),
		"-vf", vf,
		"-frames:v", "1",
		outPNG,
	)
	if err != nil {
		return fmt.Errorf("caption frame render failed: %w", err)
	}
	return nil
}
