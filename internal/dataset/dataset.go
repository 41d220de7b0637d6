package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/pkg/table"
)

// Format is the encoding of a dataset file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// ColumnSpec is a column as written in a dataset file. DataIndex and Title
// default to Key.
type ColumnSpec struct {
	Key       string `yaml:"key" json:"key"`
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	DataIndex string `yaml:"data_index,omitempty" json:"data_index,omitempty"`
	Sortable  bool   `yaml:"sortable,omitempty" json:"sortable,omitempty"`
	Width     int    `yaml:"width,omitempty" json:"width,omitempty"`
}

// file is the on-disk layout shared by both formats.
type file struct {
	Name    string           `yaml:"name" json:"name"`
	RowKey  string           `yaml:"row_key" json:"row_key"`
	Columns []ColumnSpec     `yaml:"columns" json:"columns"`
	Rows    []map[string]any `yaml:"rows" json:"rows"`
}

// Dataset is a validated set of columns and rows ready for a table.
type Dataset struct {
	Name    string
	RowKey  string
	Columns []table.Column
	Rows    []table.Row
}

// Load reads a dataset file. A leading ~ in path is expanded to the home
// directory.
func Load(path string) (*Dataset, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand path %s: %w", path, err)
	}

	format, err := FormatForPath(expanded)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	ds, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ds.Name == "" {
		ds.Name = strings.TrimSuffix(filepath.Base(expanded), filepath.Ext(expanded))
	}

	logging.Debug("dataset loaded",
		zap.String("path", expanded),
		zap.Int("columns", len(ds.Columns)),
		zap.Int("rows", len(ds.Rows)))
	return ds, nil
}

// Parse decodes and validates a dataset in the given format.
func Parse(data []byte, format Format) (*Dataset, error) {
	var f file
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	columns, err := buildColumns(f.Columns)
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(f.Rows))
	for i, r := range f.Rows {
		rows[i] = normalizeRow(r)
	}
	if err := checkRowKeys(f.RowKey, rows); err != nil {
		return nil, err
	}

	return &Dataset{
		Name:    f.Name,
		RowKey:  f.RowKey,
		Columns: columns,
		Rows:    rows,
	}, nil
}

// checkRowKeys requires every row to carry a distinct row_key value, since
// the value becomes the row's selection identity.
func checkRowKeys(rowKey string, rows []table.Row) error {
	if rowKey == "" {
		return nil
	}
	seen := make(map[string]int, len(rows))
	for i, row := range rows {
		v, ok := row.Lookup(rowKey)
		if !ok {
			return fmt.Errorf("%w: row %d has no %q", ErrMissingRowKey, i+1, rowKey)
		}
		id := table.FormatValue(v)
		if first, dup := seen[id]; dup {
			return fmt.Errorf("%w: rows %d and %d share %s %q", ErrDuplicateRowKey, first+1, i+1, rowKey, id)
		}
		seen[id] = i
	}
	return nil
}

func buildColumns(specs []ColumnSpec) ([]table.Column, error) {
	if len(specs) == 0 {
		return nil, ErrNoColumns
	}

	seen := make(map[string]bool, len(specs))
	columns := make([]table.Column, 0, len(specs))
	for i, spec := range specs {
		if spec.Key == "" {
			return nil, fmt.Errorf("column %d has no key", i+1)
		}
		if seen[spec.Key] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumnKey, spec.Key)
		}
		seen[spec.Key] = true

		col := table.Column{
			Key:       spec.Key,
			Title:     spec.Title,
			DataIndex: spec.DataIndex,
			Sortable:  spec.Sortable,
			Width:     spec.Width,
		}
		if col.Title == "" {
			col.Title = spec.Key
		}
		if col.DataIndex == "" {
			col.DataIndex = spec.Key
		}
		columns = append(columns, col)
	}
	return columns, nil
}

// normalizeRow converts JSON numbers to int64 or float64 so rows from both
// formats sort the same way.
func normalizeRow(r map[string]any) table.Row {
	row := make(table.Row, len(r))
	for k, v := range r {
		if n, ok := v.(json.Number); ok {
			if i, err := n.Int64(); err == nil {
				v = i
			} else if f, err := n.Float64(); err == nil {
				v = f
			} else {
				v = n.String()
			}
		}
		row[k] = v
	}
	return row
}

// RowKeyFunc returns a table row identity function for the dataset's
// row_key field, or nil when the dataset has none.
func (d *Dataset) RowKeyFunc() func(table.Row) string {
	if d.RowKey == "" {
		return nil
	}
	field := d.RowKey
	return func(r table.Row) string {
		return table.FormatValue(r[field])
	}
}

// ResolveSortKey maps a column key or data index to the data index of a
// sortable column. Unknown names get a suggestion when one is close.
func (d *Dataset) ResolveSortKey(name string) (string, error) {
	for _, col := range d.Columns {
		if col.Sortable && (col.DataIndex == name || col.Key == name) {
			return col.DataIndex, nil
		}
	}
	if suggestion, ok := d.SuggestColumn(name); ok {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownColumn, name, suggestion)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
}

// SuggestColumn returns the sortable column key closest to name, if any is
// within two edits.
func (d *Dataset) SuggestColumn(name string) (string, bool) {
	best, bestDist := "", 3
	for _, col := range d.Columns {
		if !col.Sortable {
			continue
		}
		dist := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(col.Key))
		if dist < bestDist {
			best, bestDist = col.Key, dist
		}
	}
	return best, best != ""
}

// SortableKeys lists the keys of the sortable columns in order.
func (d *Dataset) SortableKeys() []string {
	var keys []string
	for _, col := range d.Columns {
		if col.Sortable {
			keys = append(keys, col.Key)
		}
	}
	return keys
}

// Sample returns the built-in people dataset.
func Sample() *Dataset {
	return &Dataset{
		Name:   "people",
		RowKey: "id",
		Columns: []table.Column{
			{Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
			{Key: "email", Title: "Email", DataIndex: "email"},
			{Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
		},
		Rows: []table.Row{
			{"id": 1, "name": "Alice", "email": "alice@example.com", "age": 24},
			{"id": 2, "name": "Bob", "email": "bob@example.com", "age": 30},
			{"id": 3, "name": "Charlie", "email": "charlie@example.com", "age": 28},
		},
	}
}
