package dataset

import "errors"

// Common errors returned by the dataset package.
var (
	// ErrNoColumns is returned when a dataset declares no columns.
	ErrNoColumns = errors.New("dataset has no columns")

	// ErrDuplicateColumnKey is returned when two columns share a key.
	ErrDuplicateColumnKey = errors.New("duplicate column key")

	// ErrUnknownFormat is returned for files that are neither YAML nor JSON.
	ErrUnknownFormat = errors.New("unknown dataset format")

	// ErrMissingRowKey is returned when a row lacks the dataset's row_key field.
	ErrMissingRowKey = errors.New("row has no row_key value")

	// ErrDuplicateRowKey is returned when two rows share a row_key value.
	ErrDuplicateRowKey = errors.New("duplicate row_key value")

	// ErrUnknownColumn is returned when a sort key names no sortable column.
	ErrUnknownColumn = errors.New("unknown sortable column")
)
