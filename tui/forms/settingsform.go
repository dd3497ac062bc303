// Package forms provides huh-based form components for the TUI.
package forms

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/user/sub2clip/pkg/timeutil"
)

// SettingsFormResult holds the data returned by a completed clip settings
// wizard. Numeric fields are strings bound to text inputs and parsed by the
// caller after validation.
type SettingsFormResult struct {
	// Step 1: Range and format
	Start  string
	End    string
	Format string

	// Step 2: Rendering options
	FPS        string
	Resolution string
	Font       string
	FontSize   string
	Caption    string
	Boomerang  bool
	Crop       bool
	HD         bool
}

// StartMillis returns the parsed start time. Call after the form validated.
func (r *SettingsFormResult) StartMillis() (int, error) {
	return timeutil.ParseTimeToMillis(r.Start)
}

// EndMillis returns the parsed end time. Call after the form validated.
func (r *SettingsFormResult) EndMillis() (int, error) {
	return timeutil.ParseTimeToMillis(r.End)
}

// FPSValue returns the parsed frame rate.
func (r *SettingsFormResult) FPSValue() int {
	v, _ := strconv.Atoi(r.FPS)
	return v
}

// ResolutionValue returns the parsed short-edge resolution.
func (r *SettingsFormResult) ResolutionValue() int {
	v, _ := strconv.Atoi(r.Resolution)
	return v
}

// FontSizeValue returns the parsed subtitle font size.
func (r *SettingsFormResult) FontSizeValue() int {
	v, _ := strconv.Atoi(r.FontSize)
	return v
}

// NewSettingsForm creates a multi-step huh wizard for clip settings. The
// result pointer should be pre-filled with the derived range and configured
// defaults; it is bound to the form fields and updated on submit.
func NewSettingsForm(result *SettingsFormResult) *huh.Form {
	requireTime := func(s string) error {
		if s == "" {
			return fmt.Errorf("time is required")
		}
		if _, err := timeutil.ParseTimeToMillis(s); err != nil {
			return fmt.Errorf("invalid time format")
		}
		return nil
	}

	requirePositiveInt := func(name string) func(string) error {
		return func(s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%s must be a number", name)
			}
			if v <= 0 {
				return fmt.Errorf("%s must be positive", name)
			}
			return nil
		}
	}

	form := huh.NewForm(
		// Step 1: Range and format
		huh.NewGroup(
			huh.NewNote().Title("Clip Settings").Description("Step 1 of 2: Range and Format"),

			huh.NewInput().
				Title("Start").
				Description("H:MM:SS, MM:SS, or seconds").
				Value(&result.Start).
				Validate(requireTime),

			huh.NewInput().
				Title("End").
				Description("H:MM:SS, MM:SS, or seconds").
				Value(&result.End).
				Validate(requireTime),

			huh.NewSelect[string]().
				Title("Format").
				Options(
					huh.NewOption("GIF", "gif"),
					huh.NewOption("WEBP", "webp"),
					huh.NewOption("MP4", "mp4"),
				).
				Value(&result.Format),
		),

		// Step 2: Rendering options
		huh.NewGroup(
			huh.NewNote().Title("Clip Settings").Description("Step 2 of 2: Rendering"),

			huh.NewInput().
				Title("FPS").
				Value(&result.FPS).
				Validate(requirePositiveInt("fps")),

			huh.NewInput().
				Title("Resolution").
				Description("Height of the output, e.g. 320").
				Value(&result.Resolution).
				Validate(requirePositiveInt("resolution")),

			huh.NewInput().
				Title("Font").
				Description("Subtitle font name").
				Value(&result.Font),

			huh.NewInput().
				Title("Font size").
				Value(&result.FontSize).
				Validate(requirePositiveInt("font size")),

			huh.NewInput().
				Title("Caption").
				Description("Optional - extra text over the whole clip").
				Value(&result.Caption),

			huh.NewConfirm().
				Title("Boomerang").
				Description("Append the reversed clip").
				Value(&result.Boomerang),

			huh.NewConfirm().
				Title("Crop").
				Description("Crop to a centered square").
				Value(&result.Crop),

			huh.NewConfirm().
				Title("HD").
				Description("Full palette GIF (larger files)").
				Value(&result.HD),
		),
	).WithTheme(Theme())

	return form
}

// NewConfirmDiscardForm creates a huh confirm form asking the user whether to
// discard form data. The result pointer is bound to the confirm field value.
func NewConfirmDiscardForm(discard *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard changes?").
				Description("You have unsaved settings. Are you sure you want to discard?").
				Affirmative("Yes, discard").
				Negative("No, go back").
				Value(discard),
		),
	).WithTheme(Theme())
}
