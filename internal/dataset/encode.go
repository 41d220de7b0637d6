package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Encode renders the dataset in the given format. Titles and data indexes
// equal to the column key are omitted, so Parse(Encode()) round trips.
func (d *Dataset) Encode(format Format) ([]byte, error) {
	f := file{
		Name:    d.Name,
		RowKey:  d.RowKey,
		Columns: make([]ColumnSpec, len(d.Columns)),
		Rows:    make([]map[string]any, len(d.Rows)),
	}
	for i, col := range d.Columns {
		spec := ColumnSpec{Key: col.Key, Sortable: col.Sortable, Width: col.Width}
		if col.Title != col.Key {
			spec.Title = col.Title
		}
		if col.DataIndex != col.Key {
			spec.DataIndex = col.DataIndex
		}
		f.Columns[i] = spec
	}
	for i, row := range d.Rows {
		f.Rows[i] = map[string]any(row)
	}

	switch format {
	case FormatYAML:
		return yaml.Marshal(&f)
	case FormatJSON:
		return json.MarshalIndent(&f, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// Save writes the dataset to path in the format implied by its extension.
// Missing parent directories are created.
func (d *Dataset) Save(path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand path %s: %w", path, err)
	}

	format, err := FormatForPath(expanded)
	if err != nil {
		return err
	}

	data, err := d.Encode(format)
	if err != nil {
		return fmt.Errorf("failed to encode dataset: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expanded), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}
	if err := os.WriteFile(expanded, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	return nil
}
