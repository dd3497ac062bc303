// Package layout provides width/height-constrained rendering helpers for the TUI.
package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/user/sub2clip/tui/styles"
)

// Responsive layout constants.
const (
	// MinTerminalWidth is the minimum terminal width for the two-column layout.
	MinTerminalWidth = 80
	// SideMinWidth is the minimum width of the side panel before hiding it.
	SideMinWidth = 28
)

// PadToWidth pads or truncates a string to exactly the specified width.
// Uses ansi.Truncate for ANSI-aware, grapheme-aware truncation that correctly
// handles double-width characters (emoji, East-Asian).
func PadToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currentWidth := lipgloss.Width(s)
	if currentWidth == width {
		return s
	}
	if currentWidth > width {
		s = ansi.Truncate(s, width, "")
		currentWidth = lipgloss.Width(s)
	}
	if currentWidth < width {
		return s + strings.Repeat(" ", width-currentWidth)
	}
	return s
}

// NormalizeLines pads or truncates a slice of strings to exactly the given height.
func NormalizeLines(lines []string, height int) []string {
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// Container wraps content into an exact Width x Height bounding box.
// Lines are truncated/padded to Width and the line count is padded/truncated
// to Height. When content is truncated vertically, the last visible line
// shows a scroll indicator.
type Container struct {
	Width  int
	Height int
}

// Render returns the content constrained to exactly Width columns and Height lines.
func (c Container) Render(content string) string {
	lines := strings.Split(content, "\n")

	if len(lines) > c.Height {
		lines = lines[:c.Height]
		indicator := lipgloss.NewStyle().Foreground(styles.Gravel).Render("↓ More...")
		lines[c.Height-1] = PadToWidth(indicator, c.Width)
	}

	for len(lines) < c.Height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		lines[i] = PadToWidth(line, c.Width)
	}

	return strings.Join(lines, "\n")
}

// ComputeColumnWidths calculates the widths of the subtitle list column and
// the side panel column for a given terminal width. Below MinTerminalWidth
// the side panel is hidden and the list takes the full width.
func ComputeColumnWidths(termWidth int) (list, side int, showSide bool) {
	showSide = termWidth >= MinTerminalWidth
	if !showSide {
		return termWidth, 0, false
	}

	// One border character between the columns.
	usable := termWidth - 1
	side = usable / 3
	if side < SideMinWidth {
		side = SideMinWidth
	}
	list = usable - side
	return list, side, true
}

// JoinColumns joins pre-rendered column strings side by side with dim border
// separators. Each column is normalized to the given height and padded to its
// width.
func JoinColumns(columns []string, widths []int, height int) string {
	borderStr := lipgloss.NewStyle().
		Foreground(styles.Gravel).
		Render("│")

	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = NormalizeLines(strings.Split(col, "\n"), height)
	}

	var rows []string
	for row := 0; row < height; row++ {
		var parts []string
		for i, lines := range colLines {
			parts = append(parts, PadToWidth(lines[row], widths[i]))
		}
		rows = append(rows, strings.Join(parts, borderStr))
	}

	return strings.Join(rows, "\n")
}
