// Package styles provides Lipgloss styles for the TUI using the Gruvbox colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Gruvbox Dark theme from Gogh
const (
	// Charcoal is the main background colour (Gruvbox background)
	Charcoal = lipgloss.Color("#282828")
	// Black is a secondary dark background (Gruvbox hard background)
	Black = lipgloss.Color("#1D2021")
	// Gravel is the border/dim accent colour (Gruvbox gray)
	Gravel = lipgloss.Color("#665C54")
	// Plum is used for highlights and focus states (Gruvbox purple)
	Plum = lipgloss.Color("#B16286")
	// Khaki is a secondary text colour (Gruvbox fg4)
	Khaki = lipgloss.Color("#A89984")
	// Cream is the primary text colour (Gruvbox fg1)
	Cream = lipgloss.Color("#EBDBB2")
	// Magenta is an accent colour for headers and special elements (Gruvbox bright purple)
	Magenta = lipgloss.Color("#D3869B")
	// Blue is an accent colour for information and interactive elements (Gruvbox bright blue)
	Blue = lipgloss.Color("#83A598")
	// Amber is a warm accent for sub-headers (Gruvbox yellow)
	Amber = lipgloss.Color("#D79921")
	// Red is used for warnings and errors (Gruvbox bright red)
	Red = lipgloss.Color("#FB4934")
	// Green is used for success messages (Gruvbox bright green)
	Green = lipgloss.Color("#B8BB26")
)

// Pre-defined styles using the color palette

// Background is the main background style for the entire TUI
var Background = lipgloss.NewStyle().
	Background(Charcoal)

// Panel is the style for content panels
var Panel = lipgloss.NewStyle().
	Background(Black).
	Padding(1, 2)

// Border is the style for bordered panels
var Border = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Gravel)

// Highlight is the style for selected/highlighted items
var Highlight = lipgloss.NewStyle().
	Background(Plum).
	Foreground(Cream).
	Bold(true)

// PrimaryText is the style for primary text content
var PrimaryText = lipgloss.NewStyle().
	Foreground(Cream)

// SecondaryText is the style for less prominent text
var SecondaryText = lipgloss.NewStyle().
	Foreground(Khaki)

// Warning is the style for warning messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for success messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
