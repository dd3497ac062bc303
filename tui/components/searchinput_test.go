package components

import (
	"strings"
	"testing"
)

func TestSearchInputMultibyteEditing(t *testing.T) {
	var s SearchInputState
	for _, c := range "café" {
		s.InsertChar(c)
	}
	if s.Input != "café" || s.CursorPos != 4 {
		t.Fatalf("after insert: input=%q cursor=%d", s.Input, s.CursorPos)
	}

	// Insert in the middle, just before the accented rune.
	s.MoveCursorLeft()
	s.InsertChar('f')
	if s.Input != "caffé" {
		t.Errorf("insert mid-word: input=%q", s.Input)
	}

	// Backspace removes the rune before the cursor, not a byte.
	s.MoveCursorRight()
	s.Backspace()
	if s.Input != "caff" {
		t.Errorf("backspace accented rune: input=%q", s.Input)
	}
	if strings.Contains(s.Input, "�") {
		t.Errorf("input contains replacement char: %q", s.Input)
	}
}

func TestSearchInputCursorBounds(t *testing.T) {
	var s SearchInputState
	s.MoveCursorLeft()
	if s.CursorPos != 0 {
		t.Errorf("cursor moved below zero: %d", s.CursorPos)
	}

	s.Input = "héé"
	s.CursorPos = 0
	for i := 0; i < 10; i++ {
		s.MoveCursorRight()
	}
	if s.CursorPos != 3 {
		t.Errorf("cursor = %d, want rune length 3", s.CursorPos)
	}
}

func TestSearchInputRenderCursorInsideMultibyte(t *testing.T) {
	s := SearchInputState{Input: "héllo", CursorPos: 2}
	out := SearchInput(s, 40, true)
	if strings.Contains(out, "�") {
		t.Errorf("rendered output contains replacement char:\n%s", out)
	}
	if !strings.Contains(out, "hé_llo") {
		t.Errorf("cursor not rendered at rune position:\n%s", out)
	}
}
