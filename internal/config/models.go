package config

import "time"

// Registry represents the entire user configuration file.
// This stores widget preferences and named datasets for the demo.
type Registry struct {
	Version     int                 `yaml:"version"`
	Datasets    map[string]*Dataset `yaml:"datasets,omitempty"` // Keyed by dataset name
	Preferences *Preferences        `yaml:"preferences,omitempty"`
}

// Dataset represents a named fixture file the demo can open by name.
type Dataset struct {
	Path     string    `yaml:"path"`                // YAML or JSON fixture file
	SortKey  string    `yaml:"sort_key,omitempty"`  // Column data index sorted on open
	SortDesc bool      `yaml:"sort_desc,omitempty"` // Start with a descending sort
	LastUsed time.Time `yaml:"last_used,omitempty"` // Last time the dataset was opened
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Field *FieldPrefs `yaml:"field,omitempty"`
	Table *TablePrefs `yaml:"table,omitempty"`
}

// FieldPrefs are the defaults used when the demo builds a field.
type FieldPrefs struct {
	Variant            string `yaml:"variant"`              // filled, outlined or ghost
	Size               string `yaml:"size"`                 // sm, md or lg
	ShowClear          bool   `yaml:"show_clear"`           // Offer the clear affordance
	ShowPasswordToggle bool   `yaml:"show_password_toggle"` // Offer the reveal affordance on passwords
}

// TablePrefs are the defaults used when the demo builds a table.
type TablePrefs struct {
	Selectable     bool   `yaml:"selectable"`                // Render selection checkboxes
	Height         int    `yaml:"height,omitempty"`          // Visible rows, 0 for all
	NullText       string `yaml:"null_text,omitempty"`       // Text for absent cells
	DefaultDataset string `yaml:"default_dataset,omitempty"` // Dataset opened when none is named
}

// DefaultPreferences returns the preferences used when the file has none.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Field: &FieldPrefs{
			Variant:            "outlined",
			Size:               "md",
			ShowClear:          true,
			ShowPasswordToggle: true,
		},
		Table: &TablePrefs{
			Selectable: true,
		},
	}
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Datasets:    make(map[string]*Dataset),
		Preferences: DefaultPreferences(),
	}
}

// normalize fills sections missing from a loaded file.
func (r *Registry) normalize() {
	if r.Datasets == nil {
		r.Datasets = make(map[string]*Dataset)
	}
	defaults := DefaultPreferences()
	if r.Preferences == nil {
		r.Preferences = defaults
		return
	}
	if r.Preferences.Field == nil {
		r.Preferences.Field = defaults.Field
	}
	if r.Preferences.Table == nil {
		r.Preferences.Table = defaults.Table
	}
}

// GetDataset retrieves a dataset by name.
// Returns nil if the dataset doesn't exist in the registry.
func (r *Registry) GetDataset(name string) *Dataset {
	return r.Datasets[name]
}

// EnsureDataset ensures a dataset entry exists in the registry.
// Returns the dataset entry (existing or newly created).
func (r *Registry) EnsureDataset(name string) *Dataset {
	if r.Datasets == nil {
		r.Datasets = make(map[string]*Dataset)
	}

	if dataset, exists := r.Datasets[name]; exists {
		return dataset
	}

	dataset := &Dataset{}
	r.Datasets[name] = dataset
	return dataset
}

// SetDatasetPath registers or updates the file behind a named dataset.
func (r *Registry) SetDatasetPath(name, path string) {
	r.EnsureDataset(name).Path = path
}

// SetDatasetSort records the sort a dataset opens with. An empty key clears it.
func (r *Registry) SetDatasetSort(name, key string, descending bool) {
	dataset := r.EnsureDataset(name)
	dataset.SortKey = key
	dataset.SortDesc = descending && key != ""
}

// MarkDatasetUsed stamps a dataset with the current time.
func (r *Registry) MarkDatasetUsed(name string) {
	r.EnsureDataset(name).LastUsed = time.Now()
}

// RemoveDataset deletes a dataset entry. It reports whether one existed.
func (r *Registry) RemoveDataset(name string) bool {
	if _, exists := r.Datasets[name]; !exists {
		return false
	}
	delete(r.Datasets, name)
	if r.Preferences != nil && r.Preferences.Table != nil && r.Preferences.Table.DefaultDataset == name {
		r.Preferences.Table.DefaultDataset = ""
	}
	return true
}
