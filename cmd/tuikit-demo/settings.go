package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/muurk/tuikit/internal/config"
	"github.com/muurk/tuikit/pkg/field"
)

// envPrefix namespaces the environment overrides, e.g. TUIKIT_FIELD_VARIANT
const envPrefix = "TUIKIT"

// settingFlags maps layered setting keys to the flag that overrides them
var settingFlags = map[string]string{
	"field.variant":              "variant",
	"field.size":                 "size",
	"field.show_clear":           "clear",
	"field.show_password_toggle": "reveal-toggle",
	"table.selectable":           "selectable",
	"table.height":               "height",
	"table.null_text":            "null-text",
	"table.dataset":              "dataset",
}

// newSettings layers, from lowest to highest precedence: the preferences
// file, TUIKIT_* environment variables, then flags set on cmd.
func newSettings(cmd *cobra.Command, prefs *config.Preferences) (*viper.Viper, error) {
	if prefs == nil {
		prefs = config.DefaultPreferences()
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("field.variant", prefs.Field.Variant)
	v.SetDefault("field.size", prefs.Field.Size)
	v.SetDefault("field.show_clear", prefs.Field.ShowClear)
	v.SetDefault("field.show_password_toggle", prefs.Field.ShowPasswordToggle)
	v.SetDefault("table.selectable", prefs.Table.Selectable)
	v.SetDefault("table.height", prefs.Table.Height)
	v.SetDefault("table.null_text", prefs.Table.NullText)
	v.SetDefault("table.dataset", prefs.Table.DefaultDataset)

	for key, name := range settingFlags {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	return v, nil
}

// loadPreferences reads the preferences file, or defaults when there is none
func loadPreferences() (*config.Registry, error) {
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences (run 'tuikit-demo config path' to locate the file): %w", err)
	}
	return registry, nil
}

// fieldVariantAndSize parses the layered field.variant and field.size.
// Empty values fall back to the field defaults.
func fieldVariantAndSize(v *viper.Viper) (field.Variant, field.Size, error) {
	var (
		variant = field.VariantOutlined
		size    = field.SizeMedium
		err     error
	)
	if name := v.GetString("field.variant"); name != "" {
		if variant, err = field.ParseVariant(name); err != nil {
			return "", "", err
		}
	}
	if name := v.GetString("field.size"); name != "" {
		if size, err = field.ParseSize(name); err != nil {
			return "", "", err
		}
	}
	return variant, size, nil
}
