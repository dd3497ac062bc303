package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/logging"
	"github.com/user/sub2clip/pkg/timeutil"
)

var (
	subsTrack int
	subsDump  string
)

var subsCmd = &cobra.Command{
	Use:   "subs <video-file>",
	Short: "Extract and list the subtitles of a video",
	Long: `Extract the preferred subtitle track of a video and print its cues.
Use --dump to write the raw SRT file instead of printing a table.`,
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

		if subsDump != "" {
			trackIndex := subsTrack
			if trackIndex < 0 {
				media, err := exec.Probe(cmd.Context(), videoPath)
				if err != nil {
					return fmt.Errorf("probe video: %w", err)
				}
				trackIndex, err = ffmpeg.SelectTrack(media.Subtitles, cfg.Subtitles.Languages, cfg.Subtitles.IncludeCC)
				if err != nil {
					return err
				}
			}
			if err := exec.ExtractToFile(cmd.Context(), videoPath, trackIndex, subsDump); err != nil {
				return fmt.Errorf("extract subtitles: %w", err)
			}
			fmt.Printf("Wrote %s\n", subsDump)
			return nil
		}

		track, language, _, err := loadTrack(cmd.Context(), exec, videoPath, subsTrack)
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(track))
		for i, cue := range track {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				timeutil.FormatMillis(cue.Start),
				timeutil.FormatMillis(cue.End),
				cue.Text(),
			})
		}

		if language != "" {
			fmt.Printf("%d cues [%s]\n", len(track), language)
		}
		fmt.Println(renderTable(
			[]string{"#", "Start", "End", "Text"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		))
		return nil
	},
}

func init() {
	subsCmd.Flags().IntVar(&subsTrack, "track", -1, "subtitle track index (default: language preference)")
	subsCmd.Flags().StringVar(&subsDump, "dump", "", "write the raw SRT to this path instead of printing")
	rootCmd.AddCommand(subsCmd)
}
