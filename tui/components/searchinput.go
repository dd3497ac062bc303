package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/tui/styles"
)

// SearchInputState holds the state for the subtitle search input component.
type SearchInputState struct {
	// Input is the current search query buffer
	Input string
	// CursorPos is the cursor position within the input, in runes
	CursorPos int
	// Matches holds track indices of matching cues
	Matches []int
	// CurrentMatch is the index into Matches of the current match
	CurrentMatch int
}

// SearchInput renders the search input component inside a RenderInfoBox.
// When focused, the box border is plum; otherwise dim.
func SearchInput(state SearchInputState, width int, focused bool) string {
	promptStyle := lipgloss.NewStyle().
		Foreground(styles.Blue).
		Bold(true)

	inputStyle := lipgloss.NewStyle().
		Foreground(styles.Cream)

	// Build input display with cursor
	input := []rune(state.Input)
	var displayInput string
	if focused {
		cursor := "_"
		if state.CursorPos >= len(input) {
			displayInput = state.Input + cursor
		} else {
			displayInput = string(input[:state.CursorPos]) + cursor + string(input[state.CursorPos:])
		}
	} else {
		displayInput = state.Input
	}

	content := " " + promptStyle.Render("/") + inputStyle.Render(displayInput)

	// Match indicator right-aligned
	if len(state.Matches) > 0 {
		indicator := fmt.Sprintf("[%d/%d]", state.CurrentMatch+1, len(state.Matches))
		indicatorStyled := lipgloss.NewStyle().Foreground(styles.Khaki).Render(indicator)

		innerW := width - 4 // InfoBox inner width
		pad := innerW - lipgloss.Width(content) - lipgloss.Width(indicatorStyled)
		if pad < 1 {
			pad = 1
		}
		content = content + strings.Repeat(" ", pad) + indicatorStyled
	}

	return RenderInfoBox("Search", []string{content}, width, focused)
}

// InsertChar inserts a character at the current cursor position.
func (s *SearchInputState) InsertChar(c rune) {
	r := []rune(s.Input)
	if s.CursorPos >= len(r) {
		s.Input += string(c)
	} else {
		s.Input = string(r[:s.CursorPos]) + string(c) + string(r[s.CursorPos:])
	}
	s.CursorPos++
}

// Backspace deletes the character before the cursor.
func (s *SearchInputState) Backspace() {
	r := []rune(s.Input)
	if s.CursorPos > 0 && len(r) > 0 {
		if s.CursorPos >= len(r) {
			s.Input = string(r[:len(r)-1])
		} else {
			s.Input = string(r[:s.CursorPos-1]) + string(r[s.CursorPos:])
		}
		s.CursorPos--
	}
}

// MoveCursorLeft moves the cursor left.
func (s *SearchInputState) MoveCursorLeft() {
	if s.CursorPos > 0 {
		s.CursorPos--
	}
}

// MoveCursorRight moves the cursor right.
func (s *SearchInputState) MoveCursorRight() {
	if s.CursorPos < len([]rune(s.Input)) {
		s.CursorPos++
	}
}

// Clear resets the search input to empty state.
func (s *SearchInputState) Clear() {
	s.Input = ""
	s.CursorPos = 0
	s.Matches = nil
	s.CurrentMatch = 0
}
