package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/user/sub2clip/db"
	"github.com/user/sub2clip/pkg/timeutil"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent clip generations",
	Long:  `List the most recent clip generations recorded in the history database, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open()
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer database.Close()

		generations, err := db.ListGenerations(database, historyLimit)
		if err != nil {
			return err
		}

		if len(generations) == 0 {
			fmt.Println("No clips generated yet.")
			return nil
		}

		rows := make([][]string, 0, len(generations))
		for _, g := range generations {
			status := g.Status
			if g.Status == db.StatusError {
				status = "error: " + g.Error
			} else {
				status = fmt.Sprintf("%.2f MB", float64(g.SizeBytes)/(1024*1024))
			}
			rows = append(rows, []string{
				fmt.Sprintf("%d", g.ID),
				g.CreatedAt.Local().Format("2006-01-02 15:04"),
				filepath.Base(g.VideoPath),
				g.Format,
				fmt.Sprintf("%s - %s", timeutil.FormatMillis(g.StartMs), timeutil.FormatMillis(g.EndMs)),
				status,
			})
		}

		fmt.Println(renderTable(
			[]string{"ID", "When", "Video", "Format", "Range", "Result"},
			rows,
			[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
		))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of rows to show")
	rootCmd.AddCommand(historyCmd)
}
