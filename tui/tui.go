// Package tui implements the interactive subtitle browser and clip builder.
package tui

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/user/sub2clip/config"
	"github.com/user/sub2clip/ffmpeg"
	"github.com/user/sub2clip/generation"
	"github.com/user/sub2clip/pkg/cliputil"
	"github.com/user/sub2clip/pkg/timeutil"
	"github.com/user/sub2clip/player"
	"github.com/user/sub2clip/subtitle"
	"github.com/user/sub2clip/tui/components"
	"github.com/user/sub2clip/tui/forms"
	"github.com/user/sub2clip/tui/layout"
)

const (
	// progressTickInterval animates the generation progress bar.
	progressTickInterval = 100 * time.Millisecond
	// resultDisplayDuration is how long transient status messages stay visible.
	resultDisplayDuration = 3 * time.Second
)

// progressTickMsg advances the progress animation.
type progressTickMsg time.Time

// clearStatusMsg clears the transient status message.
type clearStatusMsg struct{}

// FocusTarget represents which panel currently has focus.
type FocusTarget int

const (
	// FocusList focuses the subtitle list.
	FocusList FocusTarget = iota
	// FocusSearch focuses the search input.
	FocusSearch
)

// Model is the Bubbletea model for the TUI application.
// It implements the tea.Model interface with Init, Update, and View methods.
type Model struct {
	// cfg holds the loaded configuration defaults
	cfg *config.Config
	// database connection for the generation history
	database *sql.DB
	// gen drives ffmpeg
	gen *generation.Generator
	// videoPath is the source video file
	videoPath string
	// media describes the probed source video
	media *ffmpeg.MediaInfo
	// language is the tag of the loaded subtitle track
	language string
	// quitting flag to signal shutdown
	quitting bool
	// terminal dimensions
	width  int
	height int
	// focus is the panel receiving key input
	focus FocusTarget
	// showHelp indicates if the help overlay is visible
	showHelp bool
	// searchInput holds the search query state
	searchInput components.SearchInputState
	// list holds the subtitle list state
	list components.SubtitleListState
	// statusMsg is a transient message shown in the status bar
	statusMsg   string
	statusIsErr bool
	// form is the active clip settings wizard, nil when closed
	form       *huh.Form
	formResult *forms.SettingsFormResult
	// confirmForm asks whether to discard an aborted wizard
	confirmForm    *huh.Form
	confirmDiscard bool
	// progress holds the generation progress state
	progress components.GenerationProgressState
	// genCh receives messages from the generation goroutine
	genCh <-chan tea.Msg
	// lastClip is the outcome of the most recent generation
	lastClip components.LastClipState
}

// NewModel creates a new TUI model for the given video and subtitle track.
func NewModel(cfg *config.Config, database *sql.DB, gen *generation.Generator, videoPath, language string, track subtitle.Track, media *ffmpeg.MediaInfo) *Model {
	m := &Model{
		cfg:       cfg,
		database:  database,
		gen:       gen,
		videoPath: videoPath,
		media:     media,
		language:  language,
	}
	m.list.Track = track
	m.list.ShowAll()
	return m
}

// Init initializes the model. It returns an optional command to run.
func (m *Model) Init() tea.Cmd {
	return nil
}

// progressTickCmd returns a command that sends a progressTickMsg after the
// tick interval.
func progressTickCmd() tea.Cmd {
	return tea.Tick(progressTickInterval, func(t time.Time) tea.Msg {
		return progressTickMsg(t)
	})
}

// clearStatusCmd schedules clearing of the transient status message.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(resultDisplayDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form = m.form.WithWidth(m.formWidth())
		}
		if m.confirmForm != nil {
			m.confirmForm = m.confirmForm.WithWidth(m.formWidth())
		}
		return m, nil

	case progressTickMsg:
		if m.progress.Active {
			m.progress.Frame++
			return m, progressTickCmd()
		}
		return m, nil

	case clearStatusMsg:
		m.statusMsg = ""
		m.statusIsErr = false
		return m, nil

	case generationDoneMsg:
		m.progress.Active = false
		m.genCh = nil
		m.lastClip = components.LastClipState{
			OutputPath: msg.result.OutputPath,
			SizeMB:     msg.result.SizeMB(),
			Elapsed:    msg.result.Elapsed,
		}
		m.setStatus(fmt.Sprintf("saved %s", filepath.Base(msg.result.OutputPath)), false)
		return m, clearStatusCmd()

	case generationErrorMsg:
		m.progress.Active = false
		m.genCh = nil
		m.lastClip = components.LastClipState{Err: msg.err.Error()}
		m.setStatus(msg.err.Error(), true)
		return m, clearStatusCmd()

	case tea.KeyMsg:
		// The help overlay swallows every key.
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		if m.confirmForm != nil {
			return m.updateConfirmForm(msg)
		}

		if m.form != nil {
			return m.updateForm(msg)
		}

		if m.focus == FocusSearch {
			return m.handleSearchInput(msg)
		}

		return m.handleListInput(msg)
	}

	if m.confirmForm != nil {
		return m.updateConfirmForm(msg)
	}
	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

// setStatus sets the transient status bar message.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// handleSearchInput processes keys while the search input is focused.
func (m *Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.runSearch()
		m.focus = FocusList
		return m, nil
	case "esc":
		m.searchInput.Clear()
		m.list.ShowAll()
		m.focus = FocusList
		return m, nil
	case "backspace":
		m.searchInput.Backspace()
		return m, nil
	case "left":
		m.searchInput.MoveCursorLeft()
		return m, nil
	case "right":
		m.searchInput.MoveCursorRight()
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			for _, r := range msg.Runes {
				m.searchInput.InsertChar(r)
			}
		}
		return m, nil
	}
}

// runSearch filters the list to cues matching the current query.
func (m *Model) runSearch() {
	query := m.searchInput.Input
	if query == "" {
		m.searchInput.Matches = nil
		m.list.ShowAll()
		return
	}

	matches := m.list.Track.Search(query)
	indices := make([]int, len(matches))
	for i, match := range matches {
		indices[i] = match.Index
	}
	m.searchInput.Matches = indices
	m.searchInput.CurrentMatch = 0
	m.list.ShowMatches(indices)

	if len(indices) == 0 {
		m.setStatus(fmt.Sprintf("no matches for %q", query), true)
	}
}

// handleListInput processes keys while the subtitle list is focused.
func (m *Model) handleListInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		m.focus = FocusSearch
		return m, nil
	case "j", "down":
		m.list.MoveDown()
		return m, nil
	case "k", "up":
		m.list.MoveUp()
		return m, nil
	case "e":
		m.list.ExtendRange()
		return m, nil
	case "w":
		m.list.ShrinkRange()
		return m, nil
	case "n":
		return m.cycleMatch(1)
	case "N":
		return m.cycleMatch(-1)
	case "g", "enter":
		return m.openSettingsForm()
	case "p":
		return m.previewLastClip()
	}
	return m, nil
}

// cycleMatch moves the selection to the next or previous search match.
func (m *Model) cycleMatch(delta int) (tea.Model, tea.Cmd) {
	n := len(m.searchInput.Matches)
	if n == 0 {
		return m, nil
	}
	m.searchInput.CurrentMatch = ((m.searchInput.CurrentMatch+delta)%n + n) % n
	// Visible rows are exactly the matches, so the row index is the match index.
	m.list.SelectedRow = m.searchInput.CurrentMatch
	m.list.RangeExtend = 0
	return m, nil
}

// previewLastClip opens the most recent artifact in mpv.
func (m *Model) previewLastClip() (tea.Model, tea.Cmd) {
	if m.lastClip.OutputPath == "" {
		m.setStatus("nothing generated yet", true)
		return m, clearStatusCmd()
	}
	loop := filepath.Ext(m.lastClip.OutputPath) != ".mp4"
	if _, err := player.Preview(m.lastClip.OutputPath, loop); err != nil {
		m.setStatus(err.Error(), true)
		return m, clearStatusCmd()
	}
	return m, nil
}

// openSettingsForm opens the clip settings wizard pre-filled with the derived
// range and the configured defaults.
func (m *Model) openSettingsForm() (tea.Model, tea.Cmd) {
	if m.progress.Active {
		m.setStatus("a clip is already encoding", true)
		return m, clearStatusCmd()
	}

	cues := m.list.SelectedCues()
	if len(cues) == 0 {
		m.setStatus("no cue selected", true)
		return m, clearStatusCmd()
	}

	start, _ := cues[0].Range()
	_, end := cues[len(cues)-1].Range()
	start, end = subtitle.ClampRange(start, end, m.media.DurationMillis())

	m.formResult = &forms.SettingsFormResult{
		Start:      timeutil.FormatMillis(start),
		End:        timeutil.FormatMillis(end),
		Format:     m.cfg.Defaults.Format,
		FPS:        fmt.Sprintf("%d", m.cfg.Defaults.FPS),
		Resolution: fmt.Sprintf("%d", m.cfg.Defaults.Resolution),
		Font:       m.cfg.Defaults.FontName,
		FontSize:   fmt.Sprintf("%d", m.cfg.Defaults.FontSize),
	}
	m.form = forms.NewSettingsForm(m.formResult).WithWidth(m.formWidth())
	return m, m.form.Init()
}

// formWidth returns the width the settings wizard should render at.
func (m *Model) formWidth() int {
	w := m.width - 8
	if w > 72 {
		w = 72
	}
	if w < 24 {
		w = 24
	}
	return w
}

// updateForm routes messages to the active settings wizard and reacts to
// completion or abort.
func (m *Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		result := m.formResult
		m.form = nil
		m.formResult = nil
		return m.startGeneration(result)
	case huh.StateAborted:
		// Keep the entered values around until the user confirms the
		// discard, so "go back" can restore the wizard.
		m.form = nil
		m.confirmDiscard = false
		m.confirmForm = forms.NewConfirmDiscardForm(&m.confirmDiscard).WithWidth(m.formWidth())
		return m, m.confirmForm.Init()
	}

	return m, cmd
}

// updateConfirmForm routes messages to the discard prompt shown when the
// settings wizard is aborted.
func (m *Model) updateConfirmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.confirmForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.confirmForm = f
	}

	switch m.confirmForm.State {
	case huh.StateCompleted:
		m.confirmForm = nil
		if m.confirmDiscard {
			m.formResult = nil
			return m, nil
		}
		m.form = forms.NewSettingsForm(m.formResult).WithWidth(m.formWidth())
		return m, m.form.Init()
	case huh.StateAborted:
		// Esc on the prompt reads as "go back".
		m.confirmForm = nil
		m.form = forms.NewSettingsForm(m.formResult).WithWidth(m.formWidth())
		return m, m.form.Init()
	}

	return m, cmd
}

// startGeneration assembles the settings and kicks off the encoder goroutine.
func (m *Model) startGeneration(result *forms.SettingsFormResult) (tea.Model, tea.Cmd) {
	start, err := result.StartMillis()
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, clearStatusCmd()
	}
	end, err := result.EndMillis()
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, clearStatusCmd()
	}

	format, err := generation.ParseFormat(result.Format)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m, clearStatusCmd()
	}

	outputPath := cliputil.OutputPath(m.videoPath, start, format.Ext())
	if m.cfg.Output.Dir != "" {
		outputPath = filepath.Join(m.cfg.Output.Dir, filepath.Base(outputPath))
	}

	style := generation.DefaultSubtitleStyle(result.Font, result.FontSizeValue())

	settings := generation.Settings{
		InputPath:     m.videoPath,
		ClipPath:      filepath.Join(os.TempDir(), "sub2clip-"+uuid.NewString()+".mp4"),
		OutputPath:    outputPath,
		Format:        format,
		Start:         start,
		End:           end,
		FPS:           result.FPSValue(),
		Resolution:    result.ResolutionValue(),
		SubtitleStyle: style,
		CaptionStyle:  generation.CaptionStyle(style),
		Crop:          result.Crop,
		Boomerang:     result.Boomerang,
		HDGIF:         result.HD,
		CRF:           m.cfg.Defaults.CRF,
		Preset:        m.cfg.Defaults.Preset,
	}

	subs := m.list.Track.Between(start, end)
	var caption *subtitle.Subtitle
	if result.Caption != "" {
		// Caption events use the same absolute coordinates as the cues.
		caption = &subtitle.Subtitle{Start: start, End: end, Lines: []string{result.Caption}}
	}

	m.genCh = startGenerationGoroutine(m.gen, m.database, settings, subs, caption, m.cfg.Output.KeepClip)
	m.progress = components.GenerationProgressState{
		Active:     true,
		Stage:      "encoding " + format.String(),
		OutputFile: outputPath,
		Started:    time.Now(),
	}
	return m, tea.Batch(waitForGenerationMsg(m.genCh), progressTickCmd())
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	if m.showHelp {
		return components.HelpOverlay(m.width, m.height)
	}

	if m.confirmForm != nil {
		formStyle := lipgloss.NewStyle().Padding(1, 4)
		return formStyle.Render(m.confirmForm.View())
	}

	if m.form != nil {
		formStyle := lipgloss.NewStyle().Padding(1, 4)
		return formStyle.Render(m.form.View())
	}

	searchView := components.SearchInput(m.searchInput, m.width, m.focus == FocusSearch)
	searchH := lipgloss.Height(searchView)

	var progressView string
	progressH := 0
	if m.progress.Active {
		progressView = components.GenerationProgress(m.progress, m.width)
		progressH = lipgloss.Height(progressView)
	}

	statusH := 1
	contentH := m.height - searchH - progressH - statusH
	if contentH < 3 {
		contentH = 3
	}

	listW, sideW, showSide := layout.ComputeColumnWidths(m.width)

	listView := components.SubtitleList(m.list, listW, contentH)

	var content string
	if showSide {
		sideView := m.renderSidePanel(sideW, contentH)
		content = layout.JoinColumns([]string{listView, sideView}, []int{listW, sideW}, contentH)
	} else {
		content = layout.Container{Width: listW, Height: contentH}.Render(listView)
	}

	statusState := components.StatusBarState{
		VideoPath:      m.videoPath,
		Language:       m.language,
		CueCount:       len(m.list.Track),
		Message:        m.statusMsg,
		MessageIsError: m.statusIsErr,
	}
	if cues := m.list.SelectedCues(); len(cues) > 0 {
		statusState.RangeStartMs, _ = cues[0].Range()
		_, statusState.RangeEndMs = cues[len(cues)-1].Range()
	}
	statusView := components.StatusBar(statusState, m.width)

	sections := []string{searchView, content}
	if progressView != "" {
		sections = append(sections, progressView)
	}
	sections = append(sections, statusView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderSidePanel stacks the settings summary, last clip outcome and key
// hints into the side column.
func (m *Model) renderSidePanel(width, height int) string {
	settingsState := components.SettingsPanelState{
		Format:     m.cfg.Defaults.Format,
		FPS:        m.cfg.Defaults.FPS,
		Resolution: m.cfg.Defaults.Resolution,
	}
	if m.formResult != nil {
		settingsState.Caption = m.formResult.Caption
		settingsState.Boomerang = m.formResult.Boomerang
		settingsState.Crop = m.formResult.Crop
		settingsState.HD = m.formResult.HD
	}

	parts := []string{components.SettingsPanel(settingsState, width)}
	if lastClip := components.LastClip(m.lastClip, width); lastClip != "" {
		parts = append(parts, lastClip)
	}
	parts = append(parts, components.KeyHints(width))

	stacked := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return layout.Container{Width: width, Height: height}.Render(stacked)
}

// Run starts the TUI program and blocks until it exits.
func Run(cfg *config.Config, database *sql.DB, gen *generation.Generator, videoPath, language string, track subtitle.Track, media *ffmpeg.MediaInfo) error {
	m := NewModel(cfg, database, gen, videoPath, language, track, media)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
