package tui

import (
	"context"
	"database/sql"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/user/sub2clip/db"
	"github.com/user/sub2clip/generation"
	"github.com/user/sub2clip/subtitle"
)

// generationDoneMsg is sent when the encoder finishes successfully.
type generationDoneMsg struct {
	result *generation.Result
}

// generationErrorMsg is sent when generation fails.
type generationErrorMsg struct {
	err error
}

// waitForGenerationMsg returns a tea.Cmd that waits for the next message on the channel.
func waitForGenerationMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// startGenerationGoroutine runs the encoder in a background goroutine and
// records the outcome in the history database. Messages are sent to the
// returned channel.
func startGenerationGoroutine(gen *generation.Generator, database *sql.DB, settings generation.Settings, subs []subtitle.Subtitle, caption *subtitle.Subtitle, keepClip bool) <-chan tea.Msg {
	ch := make(chan tea.Msg, 1)

	go func() {
		defer close(ch)

		result, err := gen.Generate(context.Background(), settings, subs, caption)
		if !keepClip {
			os.Remove(settings.ClipPath)
		}

		record := db.Generation{
			VideoPath:  settings.InputPath,
			OutputPath: settings.OutputPath,
			Format:     settings.Format.String(),
			StartMs:    settings.Start,
			EndMs:      settings.End,
		}
		if err != nil {
			record.Status = db.StatusError
			record.Error = err.Error()
		} else {
			record.Status = db.StatusOK
			record.SizeBytes = result.Size
			record.ElapsedMs = result.Elapsed.Milliseconds()
		}
		// History is best effort; a failed insert must not mask the result.
		if database != nil {
			db.InsertGeneration(database, record)
		}

		if err != nil {
			ch <- generationErrorMsg{err}
			return
		}
		ch <- generationDoneMsg{result}
	}()

	return ch
}
