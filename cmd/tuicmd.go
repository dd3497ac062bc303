package cmd

import (
	"github.com/spf13/cobra"

	"github.com/user/sub2clip/db"
	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/generation"
	"github.com/user/sub2clip/logging"
	"github.com/user/sub2clip/tui"
)

var tuiTrack int

var tuiCmd = &cobra.Command{
	Use:   "tui <video-file>",
	Short: "Browse subtitles and build clips interactively",
	Long: `Open an interactive terminal UI for a video: search the dialogue, pick a
cue range, tune the clip settings in a form, and generate without leaving the
terminal.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideo(args[0])
		if err != nil {
			return err
		}

		exec, err := ffmpeg.New(logging.WithComponent("ffmpeg"))
		if err != nil {
			return err
		}

		track, language, media, err := loadTrack(cmd.Context(), exec, videoPath, tuiTrack)
		if err != nil {
			return err
		}

		// History is best effort, the TUI works without it.
		database, err := db.Open()
		if err != nil {
			logger := logging.WithComponent("tui")
			logger.Warn().Err(err).Msg("history database unavailable")
			database = nil
		}
		if database != nil {
			defer database.Close()
		}

		gen := generation.NewGenerator(exec, logging.WithComponent("generate"))
		return tui.Run(cfg, database, gen, videoPath, language, track, media)
	},
}

func init() {
	tuiCmd.Flags().IntVar(&tuiTrack, "track", -1, "subtitle track index (default: language preference)")
	rootCmd.AddCommand(tuiCmd)
}
