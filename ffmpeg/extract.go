package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/user/sub2clip/subtitle"
)

// ExtractToFile dumps the Nth embedded subtitle stream of video to an SRT
// file at outPath.
func (e *Executor) ExtractToFile(ctx context.Context, video string, track int, outPath string) error {
	err := e.Run(ctx,
		"-i", video,
		"-map", fmt.Sprintf("0:s:%d", track),
		"-an", "-vn",
		outPath,
	)
	if err != nil {
		return fmt.Errorf("could not extract subtitles from %s at track %d: %w", video, track, err)
	}
	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("could not extract subtitles from %s at track %d", video, track)
	}
	return nil
}

// ExtractTrack dumps a subtitle stream to a temporary SRT file and parses it
// into an ordered Track.
func (e *Executor) ExtractTrack(ctx context.Context, video string, track int) (subtitle.Track, error) {
	tmp, err := os.MkdirTemp("", "sub2clip-subs-")
	if err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	srtPath := filepath.Join(tmp, "subs.srt")
	if err := e.ExtractToFile(ctx, video, track, srtPath); err != nil {
		return nil, err
	}

	parsed, err := subtitle.ParseSRTFile(srtPath)
	if err != nil {
		return nil, fmt.Errorf("parse extracted subtitles: %w", err)
	}

	e.logger.Info().Str("video", video).Int("track", track).Int("cues", len(parsed)).
		Msg("extracted subtitle track")
	return parsed, nil
}
