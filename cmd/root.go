// Package cmd defines the sub2clip command line interface.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/sub2clip/config"
	"github.com/user/sub2clip/deps"
	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/logging"
	"github.com/user/sub2clip/subtitle"
)

var Version = "0.1.0"

var (
	flagVerbose    bool
	flagConfigPath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sub2clip",
	Short: "Turn subtitled video moments into shareable clips",
	Long: `sub2clip extracts subtitles from a video, lets you search for a line of
dialogue, and renders the matching time range as a GIF, WEBP, or MP4 with the
subtitles burned in.

Features:
  - List and extract embedded subtitle tracks
  - Search dialogue, accent- and case-insensitive
  - Generate clips with captions, boomerang, crop, and palette options
  - Interactive TUI for browsing and clipping`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(flagVerbose)

		path := flagConfigPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sub2clip version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (ffmpeg, ffprobe, mpv) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		missing := map[string]*deps.DependencyError{}
		for _, err := range deps.CheckAll() {
			var depErr *deps.DependencyError
			if errors.As(err, &depErr) {
				missing[depErr.Name] = depErr
			}
		}

		for _, name := range []string{"ffmpeg", "ffprobe"} {
			if depErr, ok := missing[name]; ok {
				fmt.Printf("✗ %s: NOT FOUND\n", name)
				fmt.Printf("  Install from: %s\n", depErr.InstallURL)
			} else {
				fmt.Printf("✓ %s: OK\n", name)
			}
		}

		// mpv is optional, only used for previews.
		if err := deps.CheckMpv(); err != nil {
			fmt.Println("- mpv: not found (optional, used for --preview)")
			fmt.Printf("  Install from: %s\n", deps.MpvInstallURL)
		} else {
			fmt.Println("✓ mpv: OK")
		}

		fmt.Println()
		if len(missing) == 0 {
			fmt.Println("All required dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use sub2clip.")
			os.Exit(1)
		}
	},
}

// resolveVideo resolves the path to an absolute one and checks it points at a file.
func resolveVideo(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("video file not found: %s", absPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to access video file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a video file: %s", absPath)
	}
	return absPath, nil
}

// loadTrack probes the video and extracts the preferred subtitle track.
// An explicit trackIndex >= 0 overrides the configured language preference.
func loadTrack(ctx context.Context, exec *ffmpeg.Executor, videoPath string, trackIndex int) (subtitle.Track, string, *ffmpeg.MediaInfo, error) {
	media, err := exec.Probe(ctx, videoPath)
	if err != nil {
		return nil, "", nil, fmt.Errorf("probe video: %w", err)
	}
	if len(media.Subtitles) == 0 {
		return nil, "", nil, fmt.Errorf("no subtitle streams in %s", filepath.Base(videoPath))
	}

	language := ""
	if trackIndex < 0 {
		trackIndex, err = ffmpeg.SelectTrack(media.Subtitles, cfg.Subtitles.Languages, cfg.Subtitles.IncludeCC)
		if err != nil {
			return nil, "", nil, err
		}
	}
	for _, stream := range media.Subtitles {
		if stream.TrackIndex == trackIndex {
			language = stream.Language
		}
	}

	track, err := exec.ExtractTrack(ctx, videoPath, trackIndex)
	if err != nil {
		return nil, "", nil, fmt.Errorf("extract subtitles: %w", err)
	}
	return track, language, media, nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to the config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
