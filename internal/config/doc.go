// Package config provides user configuration management for tuikit-demo.
//
// This package manages a YAML-based configuration file that stores widget
// defaults (field variant and size, table selectability) and named datasets
// the demo can open. The configuration follows OS-specific conventions for
// storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/tuikit/config.yaml or $HOME/.config/tuikit/config.yaml
//   - macOS: $HOME/.config/tuikit/config.yaml
//   - Windows: %LOCALAPPDATA%\tuikit\config.yaml
//
// Relative dataset paths in the file are resolved against this directory by
// ResolveDatasetPath.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetDatasetPath("people", "/data/people.yaml")
//	registry.SetDatasetSort("people", "age", true)
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
