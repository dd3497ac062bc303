package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/user/sub2clip/tui/styles"
)

// Theme returns a custom huh theme that matches the TUI color palette.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused field styles
	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.Plum).
		PaddingLeft(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Magenta).
		Bold(true)

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Focused.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red).
		Bold(true)

	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Focused.SelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Blue)

	t.Focused.Option = lipgloss.NewStyle().
		Foreground(styles.Cream)

	t.Focused.NextIndicator = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Focused.PrevIndicator = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Focused.MultiSelectSelector = lipgloss.NewStyle().
		SetString("▸ ").
		Foreground(styles.Blue)

	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Blue)

	t.Focused.SelectedPrefix = lipgloss.NewStyle().
		SetString("[✓] ").
		Foreground(styles.Blue)

	t.Focused.UnselectedOption = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Focused.UnselectedPrefix = lipgloss.NewStyle().
		SetString("[ ] ").
		Foreground(styles.Khaki)

	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Blue)

	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Blue)

	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Cream)

	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.Plum).
		Foreground(styles.Cream).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Gravel).
		Foreground(styles.Khaki).
		Padding(0, 1)

	t.Focused.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Gravel).
		Padding(0, 1)

	t.Focused.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Blue).
		Bold(true)

	t.Focused.Next = t.Focused.FocusedButton

	// Blurred field styles
	t.Blurred.Base = t.Blurred.Base.
		BorderStyle(lipgloss.HiddenBorder()).
		BorderLeft(true).
		PaddingLeft(1)

	t.Blurred.Title = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Blurred.Description = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Blurred.ErrorIndicator = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Red)

	t.Blurred.SelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.Option = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Blurred.MultiSelectSelector = lipgloss.NewStyle().
		SetString("  ")

	t.Blurred.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Blurred.SelectedPrefix = lipgloss.NewStyle().
		SetString("[✓] ").
		Foreground(styles.Khaki)

	t.Blurred.UnselectedOption = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Blurred.UnselectedPrefix = lipgloss.NewStyle().
		SetString("[ ] ").
		Foreground(styles.Gravel)

	t.Blurred.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Blurred.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Gravel)

	t.Blurred.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Blurred.FocusedButton = lipgloss.NewStyle().
		Background(styles.Gravel).
		Foreground(styles.Khaki).
		Padding(0, 1)

	t.Blurred.BlurredButton = lipgloss.NewStyle().
		Background(styles.Charcoal).
		Foreground(styles.Gravel).
		Padding(0, 1)

	t.Blurred.Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Charcoal).
		Padding(0, 1)

	t.Blurred.NoteTitle = lipgloss.NewStyle().
		Foreground(styles.Khaki)

	t.Blurred.Next = t.Blurred.FocusedButton

	return t
}
