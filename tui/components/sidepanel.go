package components

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/tui/styles"
)

// SettingsPanelState holds the clip settings shown in the side panel.
type SettingsPanelState struct {
	Format     string
	FPS        int
	Resolution int
	Caption    string
	Boomerang  bool
	Crop       bool
	HD         bool
}

// SettingsPanel renders the current clip settings inside an info box.
func SettingsPanel(state SettingsPanelState, width int) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.Khaki).Width(12)
	valueStyle := lipgloss.NewStyle().Foreground(styles.Cream)
	onStyle := lipgloss.NewStyle().Foreground(styles.Green)

	flag := func(v bool) string {
		if v {
			return onStyle.Render("on")
		}
		return valueStyle.Render("off")
	}

	lines := []string{
		" " + labelStyle.Render("Format") + valueStyle.Render(state.Format),
		" " + labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", state.FPS)),
		" " + labelStyle.Render("Resolution") + valueStyle.Render(fmt.Sprintf("%dp", state.Resolution)),
		" " + labelStyle.Render("Boomerang") + flag(state.Boomerang),
		" " + labelStyle.Render("Crop") + flag(state.Crop),
		" " + labelStyle.Render("HD") + flag(state.HD),
	}
	if state.Caption != "" {
		lines = append(lines, " "+labelStyle.Render("Caption")+valueStyle.Render(state.Caption))
	}

	return RenderInfoBox("Settings", lines, width, false)
}

// LastClipState describes the outcome of the most recent generation.
type LastClipState struct {
	OutputPath string
	SizeMB     float64
	Elapsed    time.Duration
	Err        string
}

// LastClip renders the outcome of the most recent generation, or an empty
// string when nothing has been generated yet.
func LastClip(state LastClipState, width int) string {
	if state.OutputPath == "" && state.Err == "" {
		return ""
	}

	textStyle := lipgloss.NewStyle().Foreground(styles.Cream)

	var lines []string
	if state.Err != "" {
		lines = append(lines, " "+lipgloss.NewStyle().Foreground(styles.Red).Render(state.Err))
	} else {
		lines = append(lines,
			" "+lipgloss.NewStyle().Foreground(styles.Green).Render(filepath.Base(state.OutputPath)),
			" "+textStyle.Render(fmt.Sprintf("%.2f MB in %s", state.SizeMB, state.Elapsed.Round(100*time.Millisecond))),
			" "+lipgloss.NewStyle().Foreground(styles.Khaki).Render("P to preview"),
		)
	}

	return RenderInfoBox("Last clip", lines, width, false)
}

// KeyHints renders a compact list of the most useful keybindings.
func KeyHints(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(styles.Blue).Bold(true).Width(10)
	descStyle := lipgloss.NewStyle().Foreground(styles.Khaki)

	hints := []struct {
		key  string
		desc string
	}{
		{"/", "search"},
		{"J / K", "move"},
		{"E / W", "grow/shrink"},
		{"G", "generate"},
		{"P", "preview"},
		{"?", "help"},
		{"q", "quit"},
	}

	var lines []string
	for _, h := range hints {
		lines = append(lines, " "+keyStyle.Render(h.key)+descStyle.Render(h.desc))
	}

	return RenderInfoBox("Keys", lines, width, false)
}
