package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func TestGetConfigDir(t *testing.T) {
	if runtime.GOOS == "linux" {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	}

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if filepath.Base(configDir) != "tuikit" {
		t.Errorf("GetConfigDir() = %v, should end in 'tuikit'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirHonorsXDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if configDir != filepath.Join(dir, "tuikit") {
		t.Errorf("GetConfigDir() = %v, want %v", configDir, filepath.Join(dir, "tuikit"))
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestNewRegistry(t *testing.T) {
	reg := NewRegistry()

	if reg.Version != 1 {
		t.Errorf("NewRegistry().Version = %v, want 1", reg.Version)
	}

	if reg.Datasets == nil {
		t.Error("NewRegistry().Datasets should not be nil")
	}

	if reg.Preferences == nil || reg.Preferences.Field == nil || reg.Preferences.Table == nil {
		t.Fatal("NewRegistry().Preferences should be fully populated")
	}

	if reg.Preferences.Field.Variant != "outlined" {
		t.Errorf("Field.Variant = %v, want outlined", reg.Preferences.Field.Variant)
	}

	if reg.Preferences.Field.Size != "md" {
		t.Errorf("Field.Size = %v, want md", reg.Preferences.Field.Size)
	}

	if !reg.Preferences.Table.Selectable {
		t.Error("Table.Selectable should be true by default")
	}
}

func TestRegistryEnsureDataset(t *testing.T) {
	reg := NewRegistry()

	ds1 := reg.EnsureDataset("people")
	if ds1 == nil {
		t.Fatal("EnsureDataset() returned nil")
	}

	ds2 := reg.EnsureDataset("people")
	if ds1 != ds2 {
		t.Error("EnsureDataset() should return same instance for same name")
	}

	ds3 := reg.EnsureDataset("orders")
	if ds1 == ds3 {
		t.Error("EnsureDataset() should create new instance for different name")
	}
}

func TestRegistrySetDatasetSort(t *testing.T) {
	reg := NewRegistry()

	reg.SetDatasetSort("people", "age", true)
	ds := reg.GetDataset("people")
	if ds == nil {
		t.Fatal("Dataset should exist after SetDatasetSort()")
	}
	if ds.SortKey != "age" || !ds.SortDesc {
		t.Errorf("sort = %q desc=%v, want age desc=true", ds.SortKey, ds.SortDesc)
	}

	reg.SetDatasetSort("people", "", true)
	if ds.SortKey != "" || ds.SortDesc {
		t.Errorf("clearing the key should clear the direction, got %q desc=%v", ds.SortKey, ds.SortDesc)
	}
}

func TestRegistryMarkDatasetUsed(t *testing.T) {
	reg := NewRegistry()

	before := time.Now()
	reg.MarkDatasetUsed("people")
	after := time.Now()

	ds := reg.GetDataset("people")
	if ds.LastUsed.Before(before) || ds.LastUsed.After(after) {
		t.Errorf("LastUsed = %v, should be between %v and %v", ds.LastUsed, before, after)
	}
}

func TestRegistryRemoveDataset(t *testing.T) {
	reg := NewRegistry()
	reg.SetDatasetPath("people", "people.yaml")
	reg.Preferences.Table.DefaultDataset = "people"

	if !reg.RemoveDataset("people") {
		t.Error("RemoveDataset() = false, want true")
	}
	if reg.GetDataset("people") != nil {
		t.Error("dataset should be gone")
	}
	if reg.Preferences.Table.DefaultDataset != "" {
		t.Error("removing the default dataset should clear the default")
	}
	if reg.RemoveDataset("people") {
		t.Error("RemoveDataset() on a missing dataset = true, want false")
	}
}

func TestRegistrySaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	reg := NewRegistry()
	reg.SetDatasetPath("people", "/data/people.yaml")
	reg.SetDatasetSort("people", "name", false)
	reg.Preferences.Field.Variant = "filled"
	reg.Preferences.Table.Height = 12

	if err := reg.SaveFile(path); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	loaded, err := LoadRegistryFile(path)
	if err != nil {
		t.Fatalf("LoadRegistryFile() error = %v", err)
	}

	ds := loaded.GetDataset("people")
	if ds == nil {
		t.Fatal("Dataset should exist in loaded registry")
	}
	if ds.Path != "/data/people.yaml" || ds.SortKey != "name" {
		t.Errorf("loaded dataset = %+v", ds)
	}
	if loaded.Preferences.Field.Variant != "filled" {
		t.Errorf("loaded variant = %v, want filled", loaded.Preferences.Field.Variant)
	}
	if loaded.Preferences.Table.Height != 12 {
		t.Errorf("loaded height = %v, want 12", loaded.Preferences.Table.Height)
	}
}

func TestLoadRegistryFileMissing(t *testing.T) {
	reg, err := LoadRegistryFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadRegistryFile() error = %v", err)
	}
	if reg.Version != 1 || reg.Preferences == nil {
		t.Error("missing file should load the default registry")
	}
}

func TestLoadRegistryFileFillsMissingSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("version: 1\npreferences:\n  table:\n    selectable: false\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	reg, err := LoadRegistryFile(path)
	if err != nil {
		t.Fatalf("LoadRegistryFile() error = %v", err)
	}
	if reg.Preferences.Table.Selectable {
		t.Error("explicit selectable: false should be kept")
	}
	if reg.Preferences.Field == nil || reg.Preferences.Field.Variant != "outlined" {
		t.Error("missing field section should get defaults")
	}
	if reg.Datasets == nil {
		t.Error("Datasets should be initialized")
	}
}

func TestLoadRegistryFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errText string
	}{
		{"bad version", "version: 2\n", "unsupported config version"},
		{"bad yaml", "version: [1\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadRegistryFile(path)
			if err == nil || !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("LoadRegistryFile() error = %v, want %q", err, tt.errText)
			}
		})
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := CreateDefaultConfig(false)
	if err != nil {
		t.Fatalf("CreateDefaultConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.HasPrefix(string(data), "# tuikit Configuration File") {
		t.Error("config file should start with the header comment")
	}

	if _, err := CreateDefaultConfig(false); err == nil {
		t.Error("CreateDefaultConfig() should refuse to overwrite")
	}
	if _, err := CreateDefaultConfig(true); err != nil {
		t.Errorf("CreateDefaultConfig(force) error = %v", err)
	}
}

func TestResolveDatasetPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on XDG_CONFIG_HOME")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"relative", "people.yaml", filepath.Join(base, appName, "people.yaml")},
		{"absolute", "/data/people.json", "/data/people.json"},
		{"home", "~/people.yaml", "~/people.yaml"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDatasetPath(tt.path)
			if err != nil {
				t.Fatalf("ResolveDatasetPath() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("ResolveDatasetPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

// Benchmark tests

func BenchmarkGetConfigDir(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = GetConfigDir()
	}
}

func BenchmarkEnsureDataset(b *testing.B) {
	reg := NewRegistry()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.EnsureDataset("people")
	}
}
