package field

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// changes collects OnChange notifications.
type changes struct {
	values []string
}

func (c *changes) record(v string) {
	c.values = append(c.values, v)
}

func TestClearResetsAndNotifiesOnce(t *testing.T) {
	var got changes
	m := New(Config{ShowClear: true, Value: "hello", OnChange: got.record})

	if !m.Clear() {
		t.Fatal("Clear() = false, want true")
	}
	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty", m.Value())
	}
	if len(got.values) != 1 || got.values[0] != "" {
		t.Errorf("OnChange calls = %q, want exactly one empty value", got.values)
	}
}

func TestClearVisible(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected bool
	}{
		{"shown with text", Config{ShowClear: true, Value: "x"}, true},
		{"hidden without text", Config{ShowClear: true}, false},
		{"hidden when disabled", Config{ShowClear: true, Value: "x", Disabled: true}, false},
		{"hidden when not requested", Config{Value: "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.cfg)
			if got := m.ClearVisible(); got != tt.expected {
				t.Errorf("ClearVisible() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClearIgnoredWhenHidden(t *testing.T) {
	var got changes
	m := New(Config{ShowClear: true, Value: "keep", Disabled: true, OnChange: got.record})

	if m.Clear() {
		t.Error("Clear() on a disabled field = true, want false")
	}
	if m.Value() != "keep" {
		t.Errorf("Value() = %q, want unchanged", m.Value())
	}
	if len(got.values) != 0 {
		t.Errorf("OnChange called %d times, want 0", len(got.values))
	}
}

func TestChangeTextNotifies(t *testing.T) {
	var got changes
	m := New(Config{OnChange: got.record})

	m.ChangeText("a")
	m.ChangeText("ab")

	if m.Value() != "ab" {
		t.Errorf("Value() = %q, want \"ab\"", m.Value())
	}
	if strings.Join(got.values, ",") != "a,ab" {
		t.Errorf("OnChange calls = %q, want [a ab]", got.values)
	}
}

func TestSetValueDoesNotNotify(t *testing.T) {
	var got changes
	m := New(Config{OnChange: got.record})

	m.SetValue("controlled")
	if m.Value() != "controlled" {
		t.Errorf("Value() = %q", m.Value())
	}
	if len(got.values) != 0 {
		t.Errorf("OnChange called %d times, want 0", len(got.values))
	}
}

func TestToggleReveal(t *testing.T) {
	m := New(Config{Type: TypePassword, ShowPasswordToggle: true, Value: "secret"})

	if !m.Masked() {
		t.Fatal("password field should start masked")
	}
	if !m.ToggleReveal() {
		t.Fatal("ToggleReveal() = false, want true")
	}
	if m.Masked() || !m.Revealed() {
		t.Error("field should be revealed after one toggle")
	}
	m.ToggleReveal()
	if !m.Masked() {
		t.Error("two toggles should restore masking")
	}
	if m.Value() != "secret" {
		t.Errorf("Value() = %q, toggling must not change the text", m.Value())
	}
}

func TestToggleRevealRequiresPasswordToggle(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"text field", Config{ShowPasswordToggle: true}},
		{"password without toggle", Config{Type: TypePassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(tt.cfg)
			if m.RevealVisible() {
				t.Error("RevealVisible() = true, want false")
			}
			if m.ToggleReveal() {
				t.Error("ToggleReveal() = true, want false")
			}
		})
	}
}

func TestPasswordWithoutToggleStaysMasked(t *testing.T) {
	m := New(Config{Type: TypePassword, Value: "secret"})
	if !m.Masked() {
		t.Error("password field without toggle should be masked")
	}
	if strings.Contains(m.View(), "secret") {
		t.Errorf("View() leaks the password: %q", m.View())
	}
}

func TestAccessibleLabel(t *testing.T) {
	tests := []struct {
		cfg      Config
		expected string
	}{
		{Config{Label: "Email", Placeholder: "you@example.com"}, "Email"},
		{Config{Placeholder: "Search"}, "Search"},
		{Config{}, "input"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := New(tt.cfg).AccessibleLabel(); got != tt.expected {
				t.Errorf("AccessibleLabel() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDefaults(t *testing.T) {
	cfg := New(Config{}).Config()
	if cfg.Variant != VariantOutlined {
		t.Errorf("Variant = %q, want %q", cfg.Variant, VariantOutlined)
	}
	if cfg.Size != SizeMedium {
		t.Errorf("Size = %q, want %q", cfg.Size, SizeMedium)
	}
	if cfg.Type != TypeText {
		t.Errorf("Type = %q, want %q", cfg.Type, TypeText)
	}
}

func TestParseVariantAndSize(t *testing.T) {
	for _, s := range []string{"filled", "outlined", "ghost"} {
		if v, err := ParseVariant(s); err != nil || string(v) != s {
			t.Errorf("ParseVariant(%q) = %q, %v", s, v, err)
		}
	}
	if _, err := ParseVariant("dotted"); err == nil {
		t.Error("ParseVariant(\"dotted\") should fail")
	}

	for _, s := range []string{"sm", "md", "lg"} {
		if v, err := ParseSize(s); err != nil || string(v) != s {
			t.Errorf("ParseSize(%q) = %q, %v", s, v, err)
		}
	}
	if _, err := ParseSize("xl"); err == nil {
		t.Error("ParseSize(\"xl\") should fail")
	}
}

func TestFocusDisabled(t *testing.T) {
	m := New(Config{Disabled: true})
	m.Focus()
	if m.Focused() {
		t.Error("disabled field should not take focus")
	}

	m = New(Config{})
	m.Focus()
	m.SetDisabled(true)
	if m.Focused() {
		t.Error("disabling should blur the field")
	}
}

func TestUpdateTyping(t *testing.T) {
	var got changes
	m := New(Config{OnChange: got.record})
	m.Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})

	if m.Value() != "hi" {
		t.Errorf("Value() = %q, want \"hi\"", m.Value())
	}
	if strings.Join(got.values, ",") != "h,hi" {
		t.Errorf("OnChange calls = %q, want [h hi]", got.values)
	}
}

func TestUpdateIgnoresKeysWhenBlurredOrDisabled(t *testing.T) {
	var got changes

	m := New(Config{OnChange: got.record})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.Value() != "" {
		t.Errorf("blurred field accepted input: %q", m.Value())
	}

	m = New(Config{OnChange: got.record})
	m.Focus()
	m.SetDisabled(true)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if m.Value() != "" {
		t.Errorf("disabled field accepted input: %q", m.Value())
	}

	if len(got.values) != 0 {
		t.Errorf("OnChange called %d times, want 0", len(got.values))
	}
}

func TestUpdateClearKey(t *testing.T) {
	var got changes
	m := New(Config{ShowClear: true, Value: "hello", OnChange: got.record})
	m.Focus()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.Value() != "" {
		t.Errorf("Value() = %q, want empty", m.Value())
	}
	if cmd == nil {
		t.Fatal("clear key should return a command")
	}
	if msg, ok := cmd().(ChangedMsg); !ok || msg.Value != "" {
		t.Errorf("cmd() = %#v, want ChangedMsg{\"\"}", msg)
	}
	if len(got.values) != 1 {
		t.Errorf("OnChange called %d times, want 1", len(got.values))
	}

	// Nothing left to clear.
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlL})
	if cmd != nil || len(got.values) != 1 {
		t.Error("clearing an empty field should do nothing")
	}
}

func TestUpdateRevealKey(t *testing.T) {
	m := New(Config{Type: TypePassword, ShowPasswordToggle: true, Value: "pw"})
	m.Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if !m.Revealed() {
		t.Error("ctrl+r should reveal the password")
	}
	if m.Value() != "pw" {
		t.Errorf("Value() = %q, reveal key must not edit text", m.Value())
	}
}
