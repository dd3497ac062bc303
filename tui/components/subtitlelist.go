package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/user/sub2clip/pkg/timeutil"
	"github.com/user/sub2clip/subtitle"
	"github.com/user/sub2clip/tui/styles"
)

// SubtitleListState holds the state for the subtitle list component.
type SubtitleListState struct {
	// Track is the full subtitle track
	Track subtitle.Track
	// Visible holds track indices currently shown (all cues, or search matches)
	Visible []int
	// SelectedRow is the selected row index into Visible
	SelectedRow int
	// ScrollOffset is the scroll position
	ScrollOffset int
	// RangeExtend is how many consecutive cues after the selected one are
	// included in the clip range
	RangeExtend int
}

// ShowAll makes every cue of the track visible.
func (s *SubtitleListState) ShowAll() {
	s.Visible = make([]int, len(s.Track))
	for i := range s.Track {
		s.Visible[i] = i
	}
	s.SelectedRow = 0
	s.ScrollOffset = 0
	s.RangeExtend = 0
}

// ShowMatches restricts the visible cues to the given track indices.
func (s *SubtitleListState) ShowMatches(indices []int) {
	s.Visible = indices
	s.SelectedRow = 0
	s.ScrollOffset = 0
	s.RangeExtend = 0
}

// MoveUp moves the selection up and collapses any range extension.
func (s *SubtitleListState) MoveUp() {
	if s.SelectedRow > 0 {
		s.SelectedRow--
	}
	s.RangeExtend = 0
}

// MoveDown moves the selection down and collapses any range extension.
func (s *SubtitleListState) MoveDown() {
	if s.SelectedRow < len(s.Visible)-1 {
		s.SelectedRow++
	}
	s.RangeExtend = 0
}

// ExtendRange includes one more consecutive cue after the selection.
func (s *SubtitleListState) ExtendRange() {
	start, _, ok := s.SelectedRange()
	if !ok {
		return
	}
	if start+s.RangeExtend < len(s.Track)-1 {
		s.RangeExtend++
	}
}

// ShrinkRange drops the last cue from the extended range.
func (s *SubtitleListState) ShrinkRange() {
	if s.RangeExtend > 0 {
		s.RangeExtend--
	}
}

// SelectedRange returns the first and last track index of the selected cue
// range (inclusive). ok is false when the list is empty.
func (s *SubtitleListState) SelectedRange() (first, last int, ok bool) {
	if len(s.Visible) == 0 || s.SelectedRow < 0 || s.SelectedRow >= len(s.Visible) {
		return 0, 0, false
	}
	first = s.Visible[s.SelectedRow]
	last = first + s.RangeExtend
	if last >= len(s.Track) {
		last = len(s.Track) - 1
	}
	return first, last, true
}

// SelectedCues returns the cues of the selected range.
func (s *SubtitleListState) SelectedCues() []subtitle.Subtitle {
	first, last, ok := s.SelectedRange()
	if !ok {
		return nil
	}
	return s.Track[first : last+1]
}

// SubtitleList renders the subtitle list as a table filling the given height.
func SubtitleList(state SubtitleListState, width, height int) string {
	rows := height - 1 // one line for the header
	if rows < 1 {
		rows = 1
	}

	var lines []string

	headerStyle := lipgloss.NewStyle().
		Foreground(styles.Khaki).
		Bold(true).
		Underline(true)

	// Column widths (#: 5, Start: 10, End: 10, Text: rest)
	idxWidth := 5
	timeWidth := 10
	textWidth := width - idxWidth - 2*timeWidth - 5
	if textWidth < 10 {
		textWidth = 10
	}

	header := fmt.Sprintf(" %-*s %-*s %-*s %-*s",
		idxWidth, "#",
		timeWidth, "Start",
		timeWidth, "End",
		textWidth, "Text")
	lines = append(lines, headerStyle.Render(header))

	if len(state.Visible) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(styles.Gravel).
			Italic(true)
		lines = append(lines, emptyStyle.Render(" No matching subtitles"))
		for i := 1; i < rows; i++ {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	// Keep the selected row visible.
	if state.SelectedRow < state.ScrollOffset {
		state.ScrollOffset = state.SelectedRow
	} else if state.SelectedRow >= state.ScrollOffset+rows {
		state.ScrollOffset = state.SelectedRow - rows + 1
	}
	if state.ScrollOffset < 0 {
		state.ScrollOffset = 0
	}
	maxOffset := len(state.Visible) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if state.ScrollOffset > maxOffset {
		state.ScrollOffset = maxOffset
	}

	first, last, _ := state.SelectedRange()

	for row := 0; row < rows; row++ {
		visIndex := state.ScrollOffset + row
		if visIndex >= len(state.Visible) {
			lines = append(lines, "")
			continue
		}
		trackIndex := state.Visible[visIndex]
		cue := state.Track.At(trackIndex)

		inRange := trackIndex >= first && trackIndex <= last
		selected := visIndex == state.SelectedRow
		lines = append(lines, renderCueRow(trackIndex, cue, selected, inRange,
			idxWidth, timeWidth, textWidth, width))
	}

	return strings.Join(lines, "\n")
}

// renderCueRow renders a single subtitle row.
func renderCueRow(trackIndex int, cue subtitle.Subtitle, selected, inRange bool, idxWidth, timeWidth, textWidth, fullWidth int) string {
	text := cue.Text()
	if lipgloss.Width(text) > textWidth {
		text = ansi.Truncate(text, textWidth, "...")
	}

	content := fmt.Sprintf(" %-*d %-*s %-*s %-*s",
		idxWidth, trackIndex+1,
		timeWidth, timeutil.FormatMillis(cue.Start),
		timeWidth, timeutil.FormatMillis(cue.End),
		textWidth, text)

	var lineStyle lipgloss.Style
	switch {
	case selected:
		lineStyle = lipgloss.NewStyle().
			Background(styles.Plum).
			Foreground(styles.Cream).
			Bold(true).
			Width(fullWidth)
	case inRange:
		lineStyle = lipgloss.NewStyle().
			Background(styles.Black).
			Foreground(styles.Cream).
			Bold(true).
			Width(fullWidth)
	default:
		lineStyle = lipgloss.NewStyle().
			Foreground(styles.Cream).
			Width(fullWidth)
	}

	return lineStyle.Render(content)
}
