package demo

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuikit/internal/ui"
	"github.com/muurk/tuikit/internal/version"
)

// Application branding constants
const (
	AppName   = "TUIKIT COMPONENTS"
	GitHubURL = "github.com/muurk/tuikit"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Common styles
var (
	// Title style - bold, with space below
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.PrimaryColor).
			Bold(true).
			MarginBottom(1)

	// Section heading style (e.g., "Field", "Table")
	SectionStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Italic(true).
			MarginTop(1)

	// Status bar style
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ui.MutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1)

	// Selection summary style
	SelectionStyle = lipgloss.NewStyle().
			Foreground(ui.SuccessColor)

	// Help modal style
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ui.PrimaryColor).
			Padding(1, 2)
)

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSection renders a section heading
func RenderSection(text string) string {
	return SectionStyle.Render(text)
}

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(ui.TextColor).
		Bold(true).
		Render(AppName + " " + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(ui.MutedColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the full-terminal panel with
// the application header and a help footer.
//
// Pattern:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    return RenderApplicationContainer(content, m.Help.View(keys), m.Width, m.Height)
//	}
//
// Uses lipgloss.Place() to fill the entire terminal and pin footer to bottom
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	// Create header section with bottom border
	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1).
		Render(BuildHeaderContent())

	// Create footer section with top border
	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(BuildFooterContent(footerText))

	styledContent := lipgloss.NewStyle().
		Width(terminalWidth-4).
		Padding(0, 1).
		Render(content)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		styledHeader,
		styledContent,
		styledFooter,
	)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ui.PrimaryColor).
		Width(terminalWidth - 2).
		Height(terminalHeight - 2).
		AlignVertical(lipgloss.Top).
		Render(innerContent)

	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Left,
		lipgloss.Top,
		bordered,
	)
}

// RenderModal centers modal content on a dimmed full-screen background.
func RenderModal(modalContent string, terminalWidth int, terminalHeight int) string {
	return lipgloss.Place(
		terminalWidth,
		terminalHeight,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}
