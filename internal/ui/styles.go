package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette shared by the widgets and the demo
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - focus rings, headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - selection marks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - invalid fields, error text
	WarningColor = lipgloss.Color("#FFA500") // Orange - sort indicators
	MutedColor   = lipgloss.Color("#626262") // Gray - helper text, placeholders
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content

	// Surfaces
	FilledColor    = lipgloss.Color("#2A2A2A") // Filled field background
	HighlightColor = lipgloss.Color("#2E2650") // Selected row background
	CursorColor    = lipgloss.Color("#3C3270") // Cursor row background
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Shared text styles
var (
	// LabelStyle is for field labels (e.g., "Full name")
	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// HelperStyle is for helper text under a field
	HelperStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorTextStyle is for caller-supplied error messages
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// PlaceholderStyle is for empty-field placeholders
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// AffordanceStyle is for the clear and reveal markers
	AffordanceStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(1)

	// DisabledStyle dims a whole disabled control
	DisabledStyle = lipgloss.NewStyle().
			Faint(true)

	// TableHeaderStyle is for column titles
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Padding(0, 1)

	// TableCellStyle is for ordinary cells
	TableCellStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	// SortIndicatorStyle is for the ▲/▼ marker
	SortIndicatorStyle = lipgloss.NewStyle().
				Foreground(WarningColor)

	// StatusStyle is for the loading region
	StatusStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Padding(1, 2)

	// EmptyStyle is for the empty-state message
	EmptyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(1, 2)
)

// Command output styles
var (
	// HeaderTitleStyle is for the uppercase banner title
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// HeaderCommandStyle is for the command line under the title
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)

	// HeaderParamKeyStyle is for parameter names (e.g., "Dataset:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Width(12)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningTitleStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	HintTitleStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	HintItemStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// Markers
const (
	SortAscendingMarker  = "▲"
	SortDescendingMarker = "▼"
	CheckedMarker        = "[x]"
	UncheckedMarker      = "[ ]"
	ClearMarker          = "✕"
	CursorMarker         = "›"
	SuccessMarker        = "✓"
	FailureMarker        = "✗"
	WarningMarker        = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// GetTerminalSize returns the current terminal width and height
func GetTerminalSize() (int, int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth, 24 // Default fallback
	}
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if width > MaxContentWidth {
		width = MaxContentWidth
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal. Interactive
// programs fall back to plain output when it is not.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FocusBorderStyle returns the border used around a focused control
func FocusBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor)
}

// BlurBorderStyle returns the border used around an unfocused control
func BlurBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor)
}

// InvalidBorderStyle returns the border used around an invalid control
func InvalidBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ErrorColor)
}

// RenderHorizontalDivider renders a divider line of the given width
func RenderHorizontalDivider(width int, char string) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}

// Checkbox renders a selection checkbox
func Checkbox(checked bool) string {
	if checked {
		return CheckedMarker
	}
	return UncheckedMarker
}
