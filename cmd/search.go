package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/logging"
	"github.com/user/sub2clip/pkg/timeutil"
)

var searchTrack int

var searchCmd = &cobra.Command{
	Use:   "search <video-file> <query>",
	Short: "Search the subtitles of a video",
	Long: `Search the subtitle track of a video for a line of dialogue. The match is
case-insensitive and ignores accents, so "creme" finds "crème".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideo(args[0])
		if err != nil {
			return err
		}
		query := args[1]

		exec, err := ffmpeg.New(logging.WithComponent("ffmpeg"))
		if err != nil {
			return err
		}

		track, _, _, err := loadTrack(cmd.Context(), exec, videoPath, searchTrack)
		if err != nil {
			return err
		}

		matches := track.Search(query)
		if len(matches) == 0 {
			return fmt.Errorf("no subtitles matching %q", query)
		}

		rows := make([][]string, 0, len(matches))
		for _, match := range matches {
			rows = append(rows, []string{
				fmt.Sprintf("%d", match.Index+1),
				timeutil.FormatMillis(match.Subtitle.Start),
				timeutil.FormatMillis(match.Subtitle.End),
				match.Subtitle.Text(),
			})
		}

		fmt.Printf("%d matches for %q\n", len(matches), query)
		fmt.Println(renderTable(
			[]string{"#", "Start", "End", "Text"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
		))
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchTrack, "track", -1, "subtitle track index (default: language preference)")
	rootCmd.AddCommand(searchCmd)
}
