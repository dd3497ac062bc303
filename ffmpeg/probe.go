package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// MediaInfo contains metadata about a media file.
type MediaInfo struct {
	FilePath  string
	Duration  float64 // seconds
	Width     int
	Height    int
	HasVideo  bool
	HasAudio  bool
	Subtitles []SubtitleStream
}

// DurationMillis returns the media duration in milliseconds.
func (m *MediaInfo) DurationMillis() int {
	return int(m.Duration * 1000)
}

// SubtitleStream describes an embedded subtitle stream. TrackIndex is the
// position among subtitle streams (the N in ffmpeg's 0:s:N specifier), not
// the absolute stream index.
type SubtitleStream struct {
	TrackIndex int
	Codec      string
	Language   string
	Title      string
}

// probeResult matches ffprobe JSON output structure.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Tags      struct {
			Language string `json:"language"`
			Title    string `json:"title"`
		} `json:"tags"`
	} `json:"streams"`
}

// Probe extracts metadata from a media file.
func (e *Executor) Probe(ctx context.Context, filePath string) (*MediaInfo, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	out, err := e.runProbe(ctx,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	)
	if err != nil {
		return nil, err
	}

	var probe probeResult
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	info := &MediaInfo{FilePath: filePath}

	if dur, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		info.Duration = dur
	}

	subIndex := 0
	for _, stream := range probe.Streams {
		switch stream.CodecType {
		case "video":
			if !info.HasVideo {
				info.Width = stream.Width
				info.Height = stream.Height
			}
			info.HasVideo = true
		case "audio":
			info.HasAudio = true
		case "subtitle":
			info.Subtitles = append(info.Subtitles, SubtitleStream{
				TrackIndex: subIndex,
				Codec:      stream.CodecName,
				Language:   stream.Tags.Language,
				Title:      stream.Tags.Title,
			})
			subIndex++
		}
	}

	return info, nil
}

// Dimensions returns the width and height of the first video stream.
func (e *Executor) Dimensions(ctx context.Context, filePath string) (int, int, error) {
	info, err := e.Probe(ctx, filePath)
	if err != nil {
		return 0, 0, err
	}
	if !info.HasVideo {
		return 0, 0, fmt.Errorf("no video stream in %s", filePath)
	}
	return info.Width, info.Height, nil
}

// HasVideoStream reports whether the file contains a video stream.
func (e *Executor) HasVideoStream(ctx context.Context, filePath string) (bool, error) {
	info, err := e.Probe(ctx, filePath)
	if err != nil {
		return false, err
	}
	return info.HasVideo, nil
}
