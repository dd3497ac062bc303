package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/logging"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks <video-file>",
	Short: "List the subtitle tracks of a video",
	Long:  `List the embedded subtitle streams of a video file with their index, codec, language, and title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		videoPath, err := resolveVideo(args[0])
		if err != nil {
			return err
		}

		exec, err := ffmpeg.New(logging.WithComponent("ffmpeg"))
		if err != nil {
			return err
		}

		media, err := exec.Probe(cmd.Context(), videoPath)
		if err != nil {
			return fmt.Errorf("probe video: %w", err)
		}

		if len(media.Subtitles) == 0 {
			fmt.Println("No subtitle tracks found.")
			return nil
		}

		preferred := -1
		if idx, err := ffmpeg.SelectTrack(media.Subtitles, cfg.Subtitles.Languages, cfg.Subtitles.IncludeCC); err == nil {
			preferred = idx
		}

		rows := make([][]string, 0, len(media.Subtitles))
		for _, stream := range media.Subtitles {
			marker := ""
			if stream.TrackIndex == preferred {
				marker = "*"
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", stream.TrackIndex),
				stream.Codec,
				stream.Language,
				stream.Title,
				marker,
			})
		}

		fmt.Println(renderTable(
			[]string{"Track", "Codec", "Language", "Title", ""},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
		))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tracksCmd)
}
