package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/user/sub2clip/db"
	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/generation"
	"github.com/user/sub2clip/logging"
	"github.com/user/sub2clip/pkg/cliputil"
	"github.com/user/sub2clip/pkg/timeutil"
	"github.com/user/sub2clip/player"
	"github.com/user/sub2clip/subtitle"
)

var generateFlags struct {
	start string
	end   string
	query string
	index int
	count int

	pad   float64
	delay int

	format     string
	fps        int
	resolution int
	width      int
	height     int
	caption    string
	boomerang  bool
	crop       bool
	hd         bool

	track    int
	output   string
	keepClip bool
	preview  bool
}

var generateCmd = &cobra.Command{
	Use:   "generate <video-file>",
	Short: "Generate a clip from a time range or dialogue line",
	Long: `Generate a GIF, WEBP, or MP4 clip from a video with the subtitles burned in.

The clip range comes from one of:
  --start and --end    explicit times (H:MM:SS, MM:SS, or seconds)
  --query              the first subtitle matching a dialogue search
  --index              a 1-based cue number from 'sub2clip subs'

--count extends a query or index range over consecutive cues, and --pad widens
it by seconds on both sides.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideo(args[0])
		if err != nil {
			return err
		}

		logger := logging.WithComponent("generate")

		exec, err := ffmpeg.New(logging.WithComponent("ffmpeg"))
		if err != nil {
			return err
		}

		track, _, media, err := loadTrack(cmd.Context(), exec, videoPath, generateFlags.track)
		if err != nil {
			return err
		}

		start, end, err := resolveRange(track, media.DurationMillis())
		if err != nil {
			return err
		}

		format, err := generation.ParseFormat(pick(generateFlags.format, cfg.Defaults.Format))
		if err != nil {
			return err
		}

		outputPath := generateFlags.output
		if outputPath == "" {
			outputPath = cliputil.OutputPath(videoPath, start, format.Ext())
			if cfg.Output.Dir != "" {
				outputPath = filepath.Join(cfg.Output.Dir, filepath.Base(outputPath))
			}
		}

		style := generation.DefaultSubtitleStyle(cfg.Defaults.FontName, cfg.Defaults.FontSize)

		settings := generation.Settings{
			InputPath:     videoPath,
			ClipPath:      filepath.Join(os.TempDir(), "sub2clip-"+uuid.NewString()+".mp4"),
			OutputPath:    outputPath,
			Format:        format,
			Start:         start,
			End:           end,
			FPS:           pickInt(generateFlags.fps, cfg.Defaults.FPS),
			Width:         generateFlags.width,
			Height:        generateFlags.height,
			SubtitleStyle: style,
			CaptionStyle:  generation.CaptionStyle(style),
			Crop:          generateFlags.crop,
			Boomerang:     generateFlags.boomerang,
			HDGIF:         generateFlags.hd,
			CRF:           cfg.Defaults.CRF,
			Preset:        cfg.Defaults.Preset,
		}
		if generateFlags.width == 0 && generateFlags.height == 0 {
			settings.Resolution = pickInt(generateFlags.resolution, cfg.Defaults.Resolution)
		}

		subs := track.Between(start, end)
		if generateFlags.delay != 0 {
			for i := range subs {
				subs[i].Delay = generateFlags.delay
			}
		}

		var caption *subtitle.Subtitle
		if generateFlags.caption != "" {
			// Caption events use the same absolute coordinates as the cues.
			caption = &subtitle.Subtitle{Start: start, End: end, Lines: []string{generateFlags.caption}}
		}

		gen := generation.NewGenerator(exec, logger)
		result, genErr := gen.Generate(cmd.Context(), settings, subs, caption)
		if !generateFlags.keepClip && !cfg.Output.KeepClip {
			os.Remove(settings.ClipPath)
		}

		recordHistory(settings, result, genErr)

		if genErr != nil {
			return genErr
		}

		fmt.Printf("Wrote %s (%.2f MB in %s)\n", result.OutputPath, result.SizeMB(), result.Elapsed.Round(10*time.Millisecond))

		if generateFlags.preview {
			return player.PreviewAndWait(result.OutputPath, format.Animated())
		}
		return nil
	},
}

// resolveRange derives the clip range in milliseconds from the flags.
func resolveRange(track subtitle.Track, durationMs int) (int, int, error) {
	var start, end int

	if generateFlags.count < 1 {
		return 0, 0, fmt.Errorf("--count must be at least 1, got %d", generateFlags.count)
	}

	switch {
	case generateFlags.start != "" && generateFlags.end != "":
		var err error
		start, err = timeutil.ParseTimeToMillis(generateFlags.start)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --start: %w", err)
		}
		end, err = timeutil.ParseTimeToMillis(generateFlags.end)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --end: %w", err)
		}

	case generateFlags.query != "":
		matches := track.Search(generateFlags.query)
		if len(matches) == 0 {
			return 0, 0, fmt.Errorf("no subtitles matching %q", generateFlags.query)
		}
		first := matches[0].Index
		last := first + generateFlags.count - 1
		if last >= len(track) {
			last = len(track) - 1
		}
		start, _ = track.At(first).Range()
		_, end = track.At(last).Range()

	case generateFlags.index > 0:
		first := generateFlags.index - 1
		if first >= len(track) {
			return 0, 0, fmt.Errorf("cue %d is out of range, the track has %d cues", generateFlags.index, len(track))
		}
		last := first + generateFlags.count - 1
		if last >= len(track) {
			last = len(track) - 1
		}
		start, _ = track.At(first).Range()
		_, end = track.At(last).Range()

	default:
		return 0, 0, fmt.Errorf("a range is required: use --start/--end, --query, or --index")
	}

	if generateFlags.pad > 0 {
		start, end = cliputil.PadRange(start, end, int(generateFlags.pad*1000), durationMs)
	}
	start, end = subtitle.ClampRange(start, end, durationMs)
	if start >= end {
		return 0, 0, fmt.Errorf("clip start time cannot be at or after end time")
	}
	return start, end, nil
}

// recordHistory stores the generation outcome. History is best effort, a
// failure here only logs.
func recordHistory(settings generation.Settings, result *generation.Result, genErr error) {
	logger := logging.WithComponent("history")

	database, err := db.Open()
	if err != nil {
		logger.Warn().Err(err).Msg("history database unavailable")
		return
	}
	defer database.Close()

	record := db.Generation{
		VideoPath:  settings.InputPath,
		OutputPath: settings.OutputPath,
		Format:     settings.Format.String(),
		StartMs:    settings.Start,
		EndMs:      settings.End,
	}
	if genErr != nil {
		record.Status = db.StatusError
		record.Error = genErr.Error()
	} else {
		record.Status = db.StatusOK
		record.SizeBytes = result.Size
		record.ElapsedMs = result.Elapsed.Milliseconds()
	}

	if _, err := db.InsertGeneration(database, record); err != nil {
		logger.Warn().Err(err).Msg("failed to record generation")
	}
}

// pick returns the flag value when set, otherwise the configured default.
func pick(flag, fallback string) string {
	if flag != "" {
		return flag
	}
	return fallback
}

func pickInt(flag, fallback int) int {
	if flag != 0 {
		return flag
	}
	return fallback
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.start, "start", "", "clip start time (H:MM:SS, MM:SS, or seconds)")
	f.StringVar(&generateFlags.end, "end", "", "clip end time")
	f.StringVarP(&generateFlags.query, "query", "q", "", "derive the range from the first matching dialogue line")
	f.IntVarP(&generateFlags.index, "index", "i", 0, "derive the range from a 1-based cue number")
	f.IntVarP(&generateFlags.count, "count", "c", 1, "number of consecutive cues to include")
	f.Float64Var(&generateFlags.pad, "pad", 0, "widen the range by this many seconds on each side")
	f.IntVar(&generateFlags.delay, "delay", 0, "shift subtitle display start by this many milliseconds")

	f.StringVarP(&generateFlags.format, "format", "f", "", "output format: gif, webp, or mp4")
	f.IntVar(&generateFlags.fps, "fps", 0, "output frame rate")
	f.IntVarP(&generateFlags.resolution, "resolution", "r", 0, "output height, width derived from the aspect ratio")
	f.IntVar(&generateFlags.width, "width", 0, "exact output width (use with --height)")
	f.IntVar(&generateFlags.height, "height", 0, "exact output height (use with --width)")
	f.StringVar(&generateFlags.caption, "caption", "", "extra text rendered above the clip")
	f.BoolVar(&generateFlags.boomerang, "boomerang", false, "append the reversed clip")
	f.BoolVar(&generateFlags.crop, "crop", false, "crop to a centered square")
	f.BoolVar(&generateFlags.hd, "hd", false, "full palette GIF (larger files)")

	f.IntVar(&generateFlags.track, "track", -1, "subtitle track index (default: language preference)")
	f.StringVarP(&generateFlags.output, "output", "o", "", "output file path")
	f.BoolVar(&generateFlags.keepClip, "keep-clip", false, "keep the intermediate MP4 cut")
	f.BoolVarP(&generateFlags.preview, "preview", "p", false, "open the result in mpv")

	rootCmd.AddCommand(generateCmd)
}
