package field

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/internal/ui"
)

// Variant selects the field's surface treatment.
type Variant string

const (
	// VariantOutlined draws a border around the input. This is the default.
	VariantOutlined Variant = "outlined"
	// VariantFilled fills the input background and draws no border.
	VariantFilled Variant = "filled"
	// VariantGhost draws neither border nor background.
	VariantGhost Variant = "ghost"
)

// ParseVariant maps a name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantOutlined, VariantFilled, VariantGhost:
		return v, nil
	default:
		return "", fmt.Errorf("unknown variant %q (want filled, outlined or ghost)", s)
	}
}

// Size selects the field's padding and default width.
type Size string

const (
	// SizeSmall is a compact field.
	SizeSmall Size = "sm"
	// SizeMedium is the default.
	SizeMedium Size = "md"
	// SizeLarge adds vertical padding.
	SizeLarge Size = "lg"
)

// ParseSize maps a name to a Size.
func ParseSize(s string) (Size, error) {
	switch v := Size(s); v {
	case SizeSmall, SizeMedium, SizeLarge:
		return v, nil
	default:
		return "", fmt.Errorf("unknown size %q (want sm, md or lg)", s)
	}
}

// defaultWidth returns the input width used when Config.Width is 0.
func (s Size) defaultWidth() int {
	switch s {
	case SizeSmall:
		return 20
	case SizeLarge:
		return 40
	default:
		return 30
	}
}

// InputType is the kind of text the field holds.
type InputType string

const (
	// TypeText shows characters as typed. This is the default.
	TypeText InputType = "text"
	// TypePassword masks characters unless revealed.
	TypePassword InputType = "password"
)

// Config configures a field. Every option has a usable zero value.
type Config struct {
	// Label is shown above the input. Default none.
	Label string
	// Placeholder is shown while the input is empty. Default none.
	Placeholder string
	// HelperText is shown below the input unless an error is shown.
	HelperText string
	// ErrorMessage is shown below the input when Invalid is set.
	ErrorMessage string
	// Disabled dims the field and ignores typing, focus and clearing.
	// Default false.
	Disabled bool
	// Invalid marks the field with error styling. The field never sets this
	// itself. Default false.
	Invalid bool
	// Variant defaults to VariantOutlined.
	Variant Variant
	// Size defaults to SizeMedium.
	Size Size
	// ShowClear adds a clear affordance while the field has text and is
	// enabled. Default false.
	ShowClear bool
	// ShowPasswordToggle adds a reveal affordance to password fields.
	// Default false.
	ShowPasswordToggle bool
	// Type defaults to TypeText.
	Type InputType
	// Value is the initial text.
	Value string
	// Width is the input width in characters. 0 uses the size default.
	Width int
	// CharLimit caps the text length. 0 means no limit.
	CharLimit int
	// OnChange is called with the new text after every edit or clear.
	// Optional.
	OnChange func(string)
}

// ChangedMsg is emitted by Update after the text changes.
type ChangedMsg struct {
	Value string
}

// Model is a labeled text field.
type Model struct {
	cfg      Config
	input    textinput.Model
	revealed bool

	KeyMap KeyMap
}

// New creates a field from cfg.
func New(cfg Config) Model {
	if cfg.Variant == "" {
		cfg.Variant = VariantOutlined
	}
	if cfg.Size == "" {
		cfg.Size = SizeMedium
	}
	if cfg.Type == "" {
		cfg.Type = TypeText
	}

	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = cfg.Placeholder
	input.CharLimit = cfg.CharLimit
	input.EchoCharacter = '•'
	input.PlaceholderStyle = ui.PlaceholderStyle
	input.Cursor.Style = lipgloss.NewStyle().Foreground(ui.PrimaryColor)
	input.Width = cfg.Width
	if input.Width == 0 {
		input.Width = cfg.Size.defaultWidth()
	}
	input.SetValue(cfg.Value)

	m := Model{
		cfg:    cfg,
		input:  input,
		KeyMap: DefaultKeyMap(),
	}
	m.applyEcho()
	return m
}

func (m *Model) applyEcho() {
	if m.Masked() {
		m.input.EchoMode = textinput.EchoPassword
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Value returns the displayed text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetValue replaces the displayed text without notifying OnChange. Use it to
// push a new controlled value into the field.
func (m *Model) SetValue(v string) {
	m.input.SetValue(v)
}

// ChangeText replaces the displayed text and notifies OnChange. No
// validation is performed.
func (m *Model) ChangeText(text string) {
	m.input.SetValue(text)
	m.notify()
}

// ClearVisible reports whether the clear affordance is shown.
func (m Model) ClearVisible() bool {
	return m.cfg.ShowClear && !m.cfg.Disabled && m.input.Value() != ""
}

// Clear empties the field and notifies OnChange with "". It only acts while
// the clear affordance is visible and reports whether it did.
func (m *Model) Clear() bool {
	if !m.ClearVisible() {
		return false
	}
	m.input.SetValue("")
	logging.LogFieldEvent(m.AccessibleLabel(), "clear", 0)
	m.notify()
	return true
}

// RevealVisible reports whether the reveal affordance is shown.
func (m Model) RevealVisible() bool {
	return m.cfg.ShowPasswordToggle && m.cfg.Type == TypePassword
}

// ToggleReveal flips between masked and plain display of a password. It
// only acts while the reveal affordance is visible and reports whether it
// did.
func (m *Model) ToggleReveal() bool {
	if !m.RevealVisible() {
		return false
	}
	m.revealed = !m.revealed
	m.applyEcho()
	logging.LogFieldEvent(m.AccessibleLabel(), revealEvent(m.revealed), len(m.input.Value()))
	return true
}

func revealEvent(revealed bool) string {
	if revealed {
		return "reveal"
	}
	return "conceal"
}

// Revealed reports whether a password is currently shown in plain text.
func (m Model) Revealed() bool {
	return m.revealed
}

// Masked reports whether characters are hidden.
func (m Model) Masked() bool {
	return m.cfg.Type == TypePassword && !m.revealed
}

func (m *Model) notify() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.input.Value())
	}
}

// AccessibleLabel returns the label, the placeholder, or "input".
func (m Model) AccessibleLabel() string {
	switch {
	case m.cfg.Label != "":
		return m.cfg.Label
	case m.cfg.Placeholder != "":
		return m.cfg.Placeholder
	default:
		return "input"
	}
}

// Focus gives the field keyboard focus. Disabled fields cannot be focused.
func (m *Model) Focus() tea.Cmd {
	if m.cfg.Disabled {
		return nil
	}
	return m.input.Focus()
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.input.Blur()
}

// Focused reports whether the field has keyboard focus.
func (m Model) Focused() bool {
	return m.input.Focused()
}

// SetDisabled sets the disabled flag. Disabling a field also blurs it.
func (m *Model) SetDisabled(disabled bool) {
	m.cfg.Disabled = disabled
	if disabled {
		m.input.Blur()
	}
}

// Disabled reports whether the field is disabled.
func (m Model) Disabled() bool {
	return m.cfg.Disabled
}

// SetInvalid sets the caller-controlled invalid flag and error message.
func (m *Model) SetInvalid(invalid bool, message string) {
	m.cfg.Invalid = invalid
	m.cfg.ErrorMessage = message
}

// SetHelperText replaces the helper text.
func (m *Model) SetHelperText(text string) {
	m.cfg.HelperText = text
}

// Config returns the field configuration.
func (m Model) Config() Config {
	return m.cfg
}

// Update handles key presses while focused and forwards everything else to
// the underlying text input.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.cfg.Disabled || !m.input.Focused() {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, m.KeyMap.Clear):
			if m.Clear() {
				return m, changedCmd("")
			}
			return m, nil
		case key.Matches(keyMsg, m.KeyMap.Reveal):
			m.ToggleReveal()
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if after := m.input.Value(); after != before {
		logging.LogFieldEvent(m.AccessibleLabel(), "change", len(after))
		m.notify()
		return m, tea.Batch(cmd, changedCmd(after))
	}
	return m, cmd
}

func changedCmd(value string) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{Value: value} }
}
