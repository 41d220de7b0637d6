package table

import (
	"fmt"
	"sort"
)

// Column describes how one field of each row is rendered and sorted.
type Column struct {
	// Key identifies the column for rendering. Defaults to DataIndex.
	Key string
	// Title is the header label.
	Title string
	// DataIndex names the row field projected into this column.
	DataIndex string
	// Sortable enables sorting on this column.
	Sortable bool
	// Width fixes the cell width in characters. 0 sizes to content.
	Width int
}

// ID returns the column key, falling back to the data index.
func (c Column) ID() string {
	if c.Key != "" {
		return c.Key
	}
	return c.DataIndex
}

// State is the derived render state of a table.
type State int

const (
	// StateLoading shows a status region.
	StateLoading State = iota
	// StateEmpty shows the empty-state message.
	StateEmpty
	// StatePopulated shows headers and rows.
	StatePopulated
)

// String returns the string representation of a State.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateEmpty:
		return "Empty"
	case StatePopulated:
		return "Populated"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// SortState is the active sort key and direction.
type SortState struct {
	// Key is the DataIndex being sorted on. Empty means unsorted.
	Key string
	// Ascending is the sort direction.
	Ascending bool
}

// IsSorted returns true if this state represents an active sort.
func (s SortState) IsSorted() bool {
	return s.Key != ""
}

// Next returns the state that results from requesting a sort on dataIndex:
// the same key flips direction, a new key starts ascending.
func (s SortState) Next(dataIndex string) SortState {
	if s.Key == dataIndex {
		return SortState{Key: dataIndex, Ascending: !s.Ascending}
	}
	return SortState{Key: dataIndex, Ascending: true}
}

// String returns a short description like "age ascending", or "unsorted".
func (s SortState) String() string {
	if !s.IsSorted() {
		return "unsorted"
	}
	if s.Ascending {
		return s.Key + " ascending"
	}
	return s.Key + " descending"
}

// Selection is an immutable set of row identities. The zero value is an
// empty selection. Methods never modify the receiver.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection returns a selection holding ids.
func NewSelection(ids ...string) Selection {
	if len(ids) == 0 {
		return Selection{}
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Selection{ids: set}
}

// Len returns the number of selected identities.
func (s Selection) Len() int {
	return len(s.ids)
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Toggle returns a copy with id's membership flipped.
func (s Selection) Toggle(id string) Selection {
	next := make(map[string]struct{}, len(s.ids)+1)
	for k := range s.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// Retain returns a copy keeping only identities accepted by keep.
func (s Selection) Retain(keep func(id string) bool) Selection {
	next := make(map[string]struct{}, len(s.ids))
	for k := range s.ids {
		if keep(k) {
			next[k] = struct{}{}
		}
	}
	return Selection{ids: next}
}

// IDs returns the selected identities in lexical order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s.ids))
	for k := range s.ids {
		ids = append(ids, k)
	}
	sort.Strings(ids)
	return ids
}
