// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/tui/styles"
)

// RenderInfoBox renders a bordered box with a tab-style header and content
// lines. Content lines are rendered as-is (caller handles styling). When
// focused, the border is plum; otherwise dim.
func RenderInfoBox(title string, contentLines []string, width int, focused bool) string {
	if width < 4 {
		return ""
	}

	innerWidth := width - 2
	if innerWidth < 1 {
		innerWidth = 1
	}

	headerStyle := lipgloss.NewStyle().Foreground(styles.Magenta).Bold(true)
	borderColor := styles.Gravel
	if focused {
		borderColor = styles.Plum
	}

	// Tab header: ╭─ Title ─────╮
	headerText := headerStyle.Render(" " + title + " ")
	headerTextWidth := lipgloss.Width(headerText)

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	topLeft := borderStyle.Render("╭─")
	topRight := borderStyle.Render("╮")
	fillWidth := innerWidth - 2 - headerTextWidth - 1 + 2
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := topLeft + headerText + borderStyle.Render(strings.Repeat("─", fillWidth)) + topRight

	var renderedLines []string
	renderedLines = append(renderedLines, topLine)

	for _, line := range contentLines {
		pad := innerWidth - lipgloss.Width(line)
		if pad < 0 {
			pad = 0
		}
		renderedLines = append(renderedLines, borderStyle.Render("│")+line+strings.Repeat(" ", pad)+borderStyle.Render("│"))
	}

	bottomLine := borderStyle.Render("╰" + strings.Repeat("─", innerWidth) + "╯")
	renderedLines = append(renderedLines, bottomLine)

	return strings.Join(renderedLines, "\n")
}
