package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/pkg/timeutil"
	"github.com/user/sub2clip/tui/styles"
)

// StatusBarState holds the state for the status bar.
type StatusBarState struct {
	// VideoPath is the source video file
	VideoPath string
	// Language is the language tag of the loaded subtitle track
	Language string
	// CueCount is the number of cues in the track
	CueCount int
	// RangeStartMs and RangeEndMs are the currently selected clip range
	RangeStartMs int
	RangeEndMs   int
	// Message is a transient status or error message
	Message string
	// MessageIsError styles the message as an error
	MessageIsError bool
}

// StatusBar renders the status bar. It shows the video name, track info and
// selected range on the left and a transient message on the right.
func StatusBar(state StatusBarState, width int) string {
	left := fmt.Sprintf(" %s", filepath.Base(state.VideoPath))
	if state.Language != "" {
		left += fmt.Sprintf("  [%s, %d cues]", state.Language, state.CueCount)
	}
	if state.RangeEndMs > state.RangeStartMs {
		left += fmt.Sprintf("  %s - %s",
			timeutil.FormatMillis(state.RangeStartMs),
			timeutil.FormatMillis(state.RangeEndMs))
	}

	right := ""
	if state.Message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.Green)
		if state.MessageIsError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Red)
		}
		right = msgStyle.Render(state.Message) + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	middle := ""
	for i := 0; i < padding; i++ {
		middle += " "
	}

	barStyle := lipgloss.NewStyle().
		Background(styles.Black).
		Foreground(styles.Cream).
		Bold(true).
		Width(width)

	return barStyle.Render(left + middle + right)
}
