package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/muurk/tuikit/internal/config"
	"github.com/muurk/tuikit/internal/dataset"
	"github.com/muurk/tuikit/pkg/field"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addTableFlags(cmd)
	addFieldFlags(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v) error = %v", args, err)
	}

	t.Cleanup(func() {
		tableFile, tableSortKey, tableDesc = "", "", false
		fieldPassword, fieldError = false, ""
	})
	return cmd
}

func TestSettingsPrecedence(t *testing.T) {
	prefs := config.DefaultPreferences()
	prefs.Field.Variant = "ghost"
	prefs.Table.Height = 7

	tests := []struct {
		name     string
		env      map[string]string
		args     []string
		key      string
		expected string
	}{
		{"preferences", nil, nil, "field.variant", "ghost"},
		{"env over preferences", map[string]string{"TUIKIT_FIELD_VARIANT": "filled"}, nil, "field.variant", "filled"},
		{"flag over env", map[string]string{"TUIKIT_FIELD_VARIANT": "filled"}, []string{"--variant", "outlined"}, "field.variant", "outlined"},
		{"int preference", nil, nil, "table.height", "7"},
		{"int flag", nil, []string{"--height", "3"}, "table.height", "3"},
		{"bool env", map[string]string{"TUIKIT_TABLE_SELECTABLE": "false"}, nil, "table.selectable", "false"},
		{"bool flag", nil, []string{"--clear=false"}, "field.show_clear", "false"},
		{"underscored key", map[string]string{"TUIKIT_TABLE_NULL_TEXT": "n/a"}, nil, "table.null_text", "n/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			v, err := newSettings(newTestCommand(t, tt.args...), prefs)
			if err != nil {
				t.Fatalf("newSettings() error = %v", err)
			}
			if got := v.GetString(tt.key); got != tt.expected {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestSettingsNilPreferences(t *testing.T) {
	v, err := newSettings(newTestCommand(t), nil)
	if err != nil {
		t.Fatalf("newSettings() error = %v", err)
	}
	if !v.GetBool("table.selectable") {
		t.Error("table.selectable should default to true")
	}
	if got := v.GetString("field.size"); got != "md" {
		t.Errorf("field.size = %q, want md", got)
	}
}

func TestFieldConfig(t *testing.T) {
	cmd := newTestCommand(t, "--password", "--error", "Required", "--size", "lg")
	v, err := newSettings(cmd, config.DefaultPreferences())
	if err != nil {
		t.Fatalf("newSettings() error = %v", err)
	}

	cfg, err := fieldConfig(v)
	if err != nil {
		t.Fatalf("fieldConfig() error = %v", err)
	}
	if cfg.Type != field.TypePassword {
		t.Errorf("Type = %q, want password", cfg.Type)
	}
	if !cfg.Invalid || cfg.ErrorMessage != "Required" {
		t.Errorf("Invalid = %v, ErrorMessage = %q", cfg.Invalid, cfg.ErrorMessage)
	}
	if cfg.Size != field.SizeLarge || cfg.Variant != field.VariantOutlined {
		t.Errorf("Size = %q, Variant = %q", cfg.Size, cfg.Variant)
	}
	if !cfg.ShowClear || !cfg.ShowPasswordToggle {
		t.Error("affordances should default on from preferences")
	}
}

func TestFieldConfigRejectsUnknownVariant(t *testing.T) {
	v, err := newSettings(newTestCommand(t, "--variant", "shiny"), nil)
	if err != nil {
		t.Fatalf("newSettings() error = %v", err)
	}
	if _, err := fieldConfig(v); err == nil {
		t.Error("fieldConfig() should reject an unknown variant")
	}
}

func TestOpenDataset(t *testing.T) {
	registry := config.NewRegistry()

	t.Run("sample", func(t *testing.T) {
		v, _ := newSettings(newTestCommand(t), registry.Preferences)
		ds, key, desc, err := openDataset(registry, v)
		if err != nil {
			t.Fatalf("openDataset() error = %v", err)
		}
		if ds.Name != "people" || key != "" || desc {
			t.Errorf("got %q sorted by %q desc=%v", ds.Name, key, desc)
		}
	})

	t.Run("file with sort", func(t *testing.T) {
		cmd := newTestCommand(t, "--file", "../../internal/dataset/testdata/people.json", "--sort", "score", "--desc")
		v, _ := newSettings(cmd, registry.Preferences)
		ds, key, desc, err := openDataset(registry, v)
		if err != nil {
			t.Fatalf("openDataset() error = %v", err)
		}
		if key != "points" || !desc {
			t.Errorf("sort = %q desc=%v, want points descending", key, desc)
		}
		if len(ds.Rows) == 0 {
			t.Error("expected rows from the file")
		}
	})

	t.Run("misspelled sort", func(t *testing.T) {
		v, _ := newSettings(newTestCommand(t, "--sort", "agee"), registry.Preferences)
		_, _, _, err := openDataset(registry, v)
		if !errors.Is(err, dataset.ErrUnknownColumn) {
			t.Fatalf("error = %v, want ErrUnknownColumn", err)
		}
		if !strings.Contains(err.Error(), `did you mean "age"`) {
			t.Errorf("error should suggest age, got %v", err)
		}
	})

	t.Run("unknown dataset", func(t *testing.T) {
		v, _ := newSettings(newTestCommand(t, "--dataset", "missing"), registry.Preferences)
		_, _, _, err := openDataset(registry, v)
		if !errors.Is(err, errUnknownDataset) {
			t.Errorf("error = %v, want errUnknownDataset", err)
		}
	})
}

func TestDescribeSort(t *testing.T) {
	tests := []struct {
		entry    config.Dataset
		expected string
	}{
		{config.Dataset{}, "-"},
		{config.Dataset{SortKey: "age"}, "age ascending"},
		{config.Dataset{SortKey: "age", SortDesc: true}, "age descending"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := describeSort(&tt.entry); got != tt.expected {
				t.Errorf("describeSort() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestKnownDatasets(t *testing.T) {
	registry := config.NewRegistry()
	if got := knownDatasets(registry); !strings.HasPrefix(got, "none") {
		t.Errorf("knownDatasets() = %q", got)
	}

	registry.SetDatasetPath("zeta", "z.yaml")
	registry.SetDatasetPath("alpha", "a.yaml")
	if got := knownDatasets(registry); got != "alpha, zeta" {
		t.Errorf("knownDatasets() = %q, want %q", got, "alpha, zeta")
	}
}
