// Package ffmpeg invokes the external encoder (ffmpeg/ffprobe) and surfaces
// its exit status and stderr. All compute-heavy work lives on the other side
// of these invocations.
package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// Executor runs ffmpeg and ffprobe commands.
type Executor struct {
	logger      zerolog.Logger
	ffmpegPath  string
	ffprobePath string
}

// New creates an Executor, resolving ffmpeg and ffprobe from PATH.
func New(logger zerolog.Logger) (*Executor, error) {
	ffmpegPath, err := exec.LookPath("ffmpeg")
	if err != nil {
		return nil, fmt.Errorf("ffmpeg not found in PATH: %w", err)
	}

	ffprobePath, err := exec.LookPath("ffprobe")
	if err != nil {
		return nil, fmt.Errorf("ffprobe not found in PATH: %w", err)
	}

	return &Executor{
		logger:      logger.With().Str("component", "ffmpeg").Logger(),
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
	}, nil
}

// Error carries the failed command and its combined output so callers can
// surface (and users can copy-paste) the exact encoder invocation.
type Error struct {
	Args   []string
	Output string
	Err    error
}

func (e *Error) Error() string {
	msg := strings.TrimSpace(e.Output)
	if msg == "" {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("ffmpeg: %s (command: %s)", lastLine(msg), e.Command())
}

func (e *Error) Unwrap() error { return e.Err }

// Command returns the full invocation with the filter graph quoted, making
// copy-pasting into a shell easy.
func (e *Error) Command() string {
	parts := make([]string, 0, len(e.Args)+1)
	parts = append(parts, "ffmpeg")
	quoteNext := false
	for _, a := range e.Args {
		if quoteNext {
			parts = append(parts, fmt.Sprintf("%q", a))
			quoteNext = false
			continue
		}
		if a == "-filter_complex" || a == "-vf" {
			quoteNext = true
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// Run executes ffmpeg with the given arguments. Output is overwritten without
// prompting. The combined output is attached to the returned error.
func (e *Executor) Run(ctx context.Context, args ...string) error {
	full := append([]string{"-y", "-hide_banner", "-loglevel", "error"}, args...)

	e.logger.Debug().Strs("args", full).Msg("executing ffmpeg")

	cmd := exec.CommandContext(ctx, e.ffmpegPath, full...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &Error{Args: full, Output: string(out), Err: err}
	}
	return nil
}

// runProbe executes ffprobe and returns its stdout.
func (e *Executor) runProbe(ctx context.Context, args ...string) ([]byte, error) {
	e.logger.Debug().Strs("args", args).Msg("executing ffprobe")

	cmd := exec.CommandContext(ctx, e.ffprobePath, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("ffprobe failed: %w: %s", err, lastLine(stderr.String()))
	}
	return out, nil
}
