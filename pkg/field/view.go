package field

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuikit/internal/ui"
)

// Reveal affordance labels
const (
	RevealLabel  = "show"
	ConcealLabel = "hide"
)

// View renders the label, the input row with its affordances, and the
// helper or error line.
func (m Model) View() string {
	var lines []string

	if m.cfg.Label != "" {
		lines = append(lines, ui.LabelStyle.Render(m.cfg.Label))
	}

	lines = append(lines, m.boxStyle().Render(m.inputRow()))

	if footer := m.footer(); footer != "" {
		lines = append(lines, footer)
	}

	out := lipgloss.JoinVertical(lipgloss.Left, lines...)
	if m.cfg.Disabled {
		return ui.DisabledStyle.Render(out)
	}
	return out
}

func (m Model) inputRow() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if m.ClearVisible() {
		b.WriteString(ui.AffordanceStyle.Render(ui.ClearMarker))
	}
	if m.RevealVisible() {
		b.WriteString(ui.AffordanceStyle.Render(m.RevealText()))
	}
	return b.String()
}

// RevealText returns the label of the reveal affordance: what pressing it
// would do next.
func (m Model) RevealText() string {
	if m.revealed {
		return ConcealLabel
	}
	return RevealLabel
}

// footer returns the error message when the field is invalid and has one,
// otherwise the helper text.
func (m Model) footer() string {
	if m.cfg.Invalid && m.cfg.ErrorMessage != "" {
		return ui.ErrorTextStyle.Render(m.cfg.ErrorMessage)
	}
	if m.cfg.HelperText != "" {
		return ui.HelperStyle.Render(m.cfg.HelperText)
	}
	return ""
}

func (m Model) boxStyle() lipgloss.Style {
	var style lipgloss.Style
	switch m.cfg.Variant {
	case VariantFilled:
		style = lipgloss.NewStyle().Background(ui.FilledColor)
		if m.cfg.Invalid {
			style = style.Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(ui.ErrorColor)
		}
	case VariantGhost:
		style = lipgloss.NewStyle()
		if m.cfg.Invalid {
			style = style.Foreground(ui.ErrorColor)
		}
	default:
		switch {
		case m.cfg.Invalid:
			style = ui.InvalidBorderStyle()
		case m.input.Focused():
			style = ui.FocusBorderStyle()
		default:
			style = ui.BlurBorderStyle()
		}
	}

	switch m.cfg.Size {
	case SizeSmall:
		style = style.Padding(0, 0)
	case SizeLarge:
		style = style.Padding(1, ui.DefaultPadding)
	default:
		style = style.Padding(0, 1)
	}
	return style
}
