package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/user/sub2clip/tui/styles"
)

// GenerationProgressState holds the state for the generation progress display.
type GenerationProgressState struct {
	Active     bool
	Stage      string
	OutputFile string
	Started    time.Time
	// Frame is a tick counter used to animate the indeterminate bar
	Frame int
}

// GenerationProgress renders a bordered info box while a clip is encoding.
// Encoding a single clip has no meaningful percentage, so it shows a moving
// indeterminate bar, the current stage and the elapsed time.
func GenerationProgress(state GenerationProgressState, width int) string {
	if !state.Active || width < 10 {
		return ""
	}

	amberStyle := lipgloss.NewStyle().Foreground(styles.Amber)
	greenStyle := lipgloss.NewStyle().Foreground(styles.Green)
	textStyle := lipgloss.NewStyle().Foreground(styles.Cream)

	innerW := width - 4
	if innerW < 6 {
		innerW = 6
	}

	var contentLines []string

	// Indeterminate bar: a block of 6 cells sweeping across the width.
	barWidth := innerW - 2
	if barWidth < 8 {
		barWidth = 8
	}
	const blockLen = 6
	span := barWidth - blockLen
	if span < 1 {
		span = 1
	}
	pos := state.Frame % (2 * span)
	if pos > span {
		pos = 2*span - pos
	}
	bar := amberStyle.Render(strings.Repeat("░", pos)) +
		greenStyle.Render(strings.Repeat("█", blockLen)) +
		amberStyle.Render(strings.Repeat("░", span-pos))
	contentLines = append(contentLines, " "+bar)

	elapsed := time.Since(state.Started).Round(100 * time.Millisecond)
	stage := state.Stage
	if stage == "" {
		stage = "encoding"
	}
	contentLines = append(contentLines, textStyle.Render(fmt.Sprintf(" %s... %s", stage, elapsed)))

	if state.OutputFile != "" {
		maxFileW := innerW - 2
		fileDisplay := state.OutputFile
		if lipgloss.Width(fileDisplay) > maxFileW {
			fileDisplay = ansi.Truncate(fileDisplay, maxFileW-3, "...")
		}
		contentLines = append(contentLines, " "+textStyle.Render(fileDisplay))
	}

	return RenderInfoBox("Generating", contentLines, width, true)
}
