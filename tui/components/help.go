package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/tui/styles"
)

// HelpOverlay renders the help overlay showing all keybindings.
// The overlay is styled with the palette colors and grouped by function.
func HelpOverlay(width, height int) string {
	groups := []struct {
		title    string
		bindings []struct {
			key  string
			desc string
		}
	}{
		{
			title: "Search",
			bindings: []struct {
				key  string
				desc string
			}{
				{"/", "Focus the search input"},
				{"Enter", "Run the search"},
				{"Esc", "Clear search, show all cues"},
				{"n", "Jump to next match"},
				{"N", "Jump to previous match"},
			},
		},
		{
			title: "Selection",
			bindings: []struct {
				key  string
				desc string
			}{
				{"J / ↓", "Select next cue"},
				{"K / ↑", "Select previous cue"},
				{"E", "Extend range by one cue"},
				{"W", "Shrink range by one cue"},
			},
		},
		{
			title: "Clips",
			bindings: []struct {
				key  string
				desc string
			}{
				{"G / Enter", "Open clip settings and generate"},
				{"P", "Preview the last generated clip"},
			},
		},
		{
			title: "General",
			bindings: []struct {
				key  string
				desc string
			}{
				{"?", "Show/hide this help"},
				{"q / Ctrl+C", "Quit"},
			},
		},
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Blue).
		Bold(true).
		Padding(0, 1)

	groupHeaderStyle := lipgloss.NewStyle().
		Foreground(styles.Magenta).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Khaki).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.Cream)

	var lines []string
	lines = append(lines, titleStyle.Render("Keybindings"))
	lines = append(lines, "")

	for _, group := range groups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, binding := range group.bindings {
			lines = append(lines, "  "+keyStyle.Render(binding.key)+descStyle.Render(binding.desc))
		}
	}

	lines = append(lines, "")
	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Khaki).
		Italic(true)
	lines = append(lines, footerStyle.Render("Press any key to close"))

	content := strings.Join(lines, "\n")

	contentLines := strings.Split(content, "\n")
	contentHeight := len(contentLines)
	contentWidth := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}

	paddedWidth := contentWidth + 4
	paddedHeight := contentHeight + 2

	marginLeft := (width - paddedWidth) / 2
	if marginLeft < 0 {
		marginLeft = 0
	}
	marginTop := (height - paddedHeight) / 2
	if marginTop < 0 {
		marginTop = 0
	}

	panelStyle := lipgloss.NewStyle().
		Background(styles.Black).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.Plum).
		Padding(1, 2)

	panel := panelStyle.Render(content)

	positionedStyle := lipgloss.NewStyle().
		MarginLeft(marginLeft).
		MarginTop(marginTop)

	return positionedStyle.Render(panel)
}
