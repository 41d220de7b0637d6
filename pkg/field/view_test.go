package field

import (
	"strings"
	"testing"

	"github.com/muurk/tuikit/internal/ui"
)

func TestViewLabelAndHelper(t *testing.T) {
	m := New(Config{Label: "Email", HelperText: "We never share it"})
	out := m.View()

	for _, want := range []string{"Email", "We never share it"} {
		if !strings.Contains(out, want) {
			t.Errorf("View() missing %q:\n%s", want, out)
		}
	}
}

func TestViewErrorReplacesHelper(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		expected string
		hidden   string
	}{
		{
			name:     "invalid with message",
			cfg:      Config{HelperText: "help", Invalid: true, ErrorMessage: "required"},
			expected: "required",
			hidden:   "help",
		},
		{
			name:     "invalid without message",
			cfg:      Config{HelperText: "help", Invalid: true},
			expected: "help",
		},
		{
			name:     "message without invalid",
			cfg:      Config{HelperText: "help", ErrorMessage: "required"},
			expected: "help",
			hidden:   "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New(tt.cfg).View()
			if !strings.Contains(out, tt.expected) {
				t.Errorf("View() missing %q:\n%s", tt.expected, out)
			}
			if tt.hidden != "" && strings.Contains(out, tt.hidden) {
				t.Errorf("View() should not show %q:\n%s", tt.hidden, out)
			}
		})
	}
}

func TestViewClearAffordance(t *testing.T) {
	m := New(Config{ShowClear: true, Value: "hello"})
	if !strings.Contains(m.View(), ui.ClearMarker) {
		t.Errorf("View() should show the clear marker:\n%s", m.View())
	}

	m.Clear()
	if strings.Contains(m.View(), ui.ClearMarker) {
		t.Errorf("View() should hide the clear marker once empty:\n%s", m.View())
	}
}

func TestViewRevealAffordance(t *testing.T) {
	m := New(Config{Type: TypePassword, ShowPasswordToggle: true, Value: "secret"})

	out := m.View()
	if strings.Contains(out, "secret") {
		t.Errorf("masked View() leaks the password:\n%s", out)
	}
	if !strings.Contains(out, RevealLabel) {
		t.Errorf("View() should offer %q:\n%s", RevealLabel, out)
	}

	m.ToggleReveal()
	out = m.View()
	if !strings.Contains(out, "secret") {
		t.Errorf("revealed View() should show the password:\n%s", out)
	}
	if !strings.Contains(out, ConcealLabel) {
		t.Errorf("View() should offer %q:\n%s", ConcealLabel, out)
	}
}

func TestViewPlaceholder(t *testing.T) {
	m := New(Config{Placeholder: "Search"})
	if !strings.Contains(m.View(), "Search") {
		t.Errorf("View() should show the placeholder:\n%s", m.View())
	}
}

func TestViewVariantsAndSizes(t *testing.T) {
	for _, v := range []Variant{VariantOutlined, VariantFilled, VariantGhost} {
		for _, s := range []Size{SizeSmall, SizeMedium, SizeLarge} {
			m := New(Config{Variant: v, Size: s, Value: "text", Invalid: true})
			if !strings.Contains(m.View(), "text") {
				t.Errorf("%s/%s View() missing value:\n%s", v, s, m.View())
			}
		}
	}
}
