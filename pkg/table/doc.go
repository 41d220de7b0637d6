// Package table provides a sortable, selectable data table for Bubble Tea
// programs.
//
// A table is configured once with columns and rows and then owns three
// pieces of derived state: the active sort, the selected rows, and a cursor.
// The sorted view is recomputed on every change; the input rows are never
// reordered.
//
// # Render States
//
// The table renders one of three states, derived only from its inputs:
//
//   - Loading: a spinner and status text, whatever the rows are
//   - Empty: the empty-state message, without headers
//   - Populated: headers and one line per row in sorted order
//
// # Sorting
//
// RequestSort ignores non-sortable columns. Requesting the active column
// flips the direction; a new column starts ascending. Absent values (nil or
// missing) always sort last. The sort is stable.
//
// # Selection
//
// Selection is keyed by row identity, not position. Supply Config.RowKey to
// derive identities from the data; otherwise each row receives a generated
// identity when rows are installed. Because identities are stable, a
// selection keeps pointing at the same rows after a re-sort.
//
// Selection and SortState are immutable values. Every transition replaces
// them wholesale.
//
// # Usage Example
//
//	t := table.New(table.Config{
//	    Columns: []table.Column{
//	        {Key: "name", Title: "Name", DataIndex: "name", Sortable: true},
//	        {Key: "age", Title: "Age", DataIndex: "age", Sortable: true},
//	    },
//	    Rows:       rows,
//	    Selectable: true,
//	    OnRowSelect: func(selected []table.Row) {
//	        // ...
//	    },
//	})
//	t.Focus()
//
// Embed the model in a parent and forward messages to Update. Update also
// emits SortChangedMsg and SelectionChangedMsg for parents that prefer
// messages to callbacks.
package table
