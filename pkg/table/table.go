package table

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/internal/ui"
)

// Default texts for the non-populated states
const (
	DefaultEmptyText   = "No records to display"
	DefaultLoadingText = "Loading..."
)

// Config configures a table. The zero value is a read-only, non-selectable
// table with no rows.
type Config struct {
	// Columns are rendered in order.
	Columns []Column
	// Rows are the input data. The table never reorders or modifies them.
	Rows []Row
	// Selectable adds checkboxes and enables the selection operations.
	// Default false.
	Selectable bool
	// Loading shows the status region instead of rows. Default false.
	Loading bool
	// RowKey derives a stable identity for a row and must return distinct
	// values for distinct rows. When nil, each row gets a generated identity
	// whenever rows are installed.
	RowKey func(Row) string
	// OnRowSelect is called with the selected rows after every selection
	// change. Optional.
	OnRowSelect func([]Row)
	// EmptyText replaces DefaultEmptyText.
	EmptyText string
	// LoadingText replaces DefaultLoadingText.
	LoadingText string
	// NullText is shown for absent cell values. Default "".
	NullText string
	// Height limits the number of visible rows. 0 shows every row.
	Height int
}

// SelectionChangedMsg is emitted by Update after the selection changes.
type SelectionChangedMsg struct {
	Rows []Row
}

// SortChangedMsg is emitted by Update after the sort state changes.
type SortChangedMsg struct {
	State SortState
}

// Model is a sortable, selectable table. Sort state and selection are
// replaced wholesale on every transition and the sorted view is recomputed
// synchronously.
type Model struct {
	cfg Config

	rows []Row
	ids  []string
	view []int

	sort      SortState
	selection Selection

	cursor    int
	colCursor int
	offset    int
	focused   bool

	Spinner spinner.Model
	KeyMap  KeyMap
}

// New creates a table from cfg.
func New(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = ui.StatusStyle.UnsetPadding()

	if cfg.EmptyText == "" {
		cfg.EmptyText = DefaultEmptyText
	}
	if cfg.LoadingText == "" {
		cfg.LoadingText = DefaultLoadingText
	}

	m := Model{
		cfg:     cfg,
		Spinner: s,
		KeyMap:  DefaultKeyMap(),
	}
	m.cfg.Columns = append([]Column(nil), cfg.Columns...)
	m.SetRows(cfg.Rows)
	return m
}

// Init starts the spinner when the table is created in the loading state.
func (m Model) Init() tea.Cmd {
	if m.cfg.Loading {
		return m.Spinner.Tick
	}
	return nil
}

// SetRows installs a new row sequence. Selected identities that no longer
// match a row are dropped.
func (m *Model) SetRows(rows []Row) {
	cursorID := m.cursorID()
	m.rows = append([]Row(nil), rows...)
	m.ids = make([]string, len(m.rows))
	present := make(map[string]bool, len(m.rows))
	for i, row := range m.rows {
		m.ids[i] = m.identity(row)
		present[m.ids[i]] = true
	}
	m.selection = m.selection.Retain(func(id string) bool { return present[id] })
	m.recompute(cursorID)
}

func (m *Model) identity(row Row) string {
	if m.cfg.RowKey != nil {
		return m.cfg.RowKey(row)
	}
	return uuid.NewString()
}

// SetColumns replaces the columns. An active sort on a column that is gone
// or no longer sortable is reset.
func (m *Model) SetColumns(cols []Column) {
	m.cfg.Columns = append([]Column(nil), cols...)
	if m.sort.IsSorted() {
		if _, ok := m.sortableColumn(m.sort.Key); !ok {
			m.sort = SortState{}
		}
	}
	if m.colCursor >= len(m.cfg.Columns) {
		m.colCursor = max(0, len(m.cfg.Columns)-1)
	}
	m.recompute(m.cursorID())
}

// SetLoading switches the loading flag. Turning it on returns the spinner
// tick command.
func (m *Model) SetLoading(loading bool) tea.Cmd {
	m.cfg.Loading = loading
	if loading {
		return m.Spinner.Tick
	}
	return nil
}

// SetSelectable toggles the selection checkboxes and operations.
func (m *Model) SetSelectable(selectable bool) {
	m.cfg.Selectable = selectable
}

// SetHeight sets the visible row window. 0 shows every row.
func (m *Model) SetHeight(height int) {
	m.cfg.Height = max(0, height)
	m.scrollToCursor()
}

// Focus gives the table keyboard focus.
func (m *Model) Focus() {
	m.focused = true
}

// Blur removes keyboard focus.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the table has keyboard focus.
func (m Model) Focused() bool {
	return m.focused
}

// State returns the derived render state.
func (m Model) State() State {
	switch {
	case m.cfg.Loading:
		return StateLoading
	case len(m.rows) == 0:
		return StateEmpty
	default:
		return StatePopulated
	}
}

// Columns returns the configured columns.
func (m Model) Columns() []Column {
	return append([]Column(nil), m.cfg.Columns...)
}

// Selectable reports whether selection is enabled.
func (m Model) Selectable() bool {
	return m.cfg.Selectable
}

// SortState returns the active sort.
func (m Model) SortState() SortState {
	return m.sort
}

// Selection returns the selected row identities.
func (m Model) Selection() Selection {
	return m.selection
}

// Cursor returns the cursor position in the sorted view.
func (m Model) Cursor() int {
	return m.cursor
}

// Rows returns the input rows in their original order.
func (m Model) Rows() []Row {
	return append([]Row(nil), m.rows...)
}

// SortedRows returns the rows in sorted view order.
func (m Model) SortedRows() []Row {
	rows := make([]Row, len(m.view))
	for i, pos := range m.view {
		rows[i] = m.rows[pos]
	}
	return rows
}

// SelectedRows returns the selected rows in sorted view order.
func (m Model) SelectedRows() []Row {
	rows := make([]Row, 0, m.selection.Len())
	for _, pos := range m.view {
		if m.selection.Has(m.ids[pos]) {
			rows = append(rows, m.rows[pos])
		}
	}
	return rows
}

// IsSelected reports whether the row at index in the sorted view is selected.
func (m Model) IsSelected(index int) bool {
	if index < 0 || index >= len(m.view) {
		return false
	}
	return m.selection.Has(m.ids[m.view[index]])
}

// AllSelected reports whether every row in the sorted view is selected.
func (m Model) AllSelected() bool {
	return m.selection.Len() == len(m.view)
}

// RowID returns the identity of the row at index in the sorted view.
func (m Model) RowID(index int) (string, bool) {
	if index < 0 || index >= len(m.view) {
		return "", false
	}
	return m.ids[m.view[index]], true
}

// RequestSort sorts on col. Non-sortable columns, and columns whose DataIndex
// no sortable column of the table owns, are ignored. Requesting the
// active column flips the direction; any other column starts ascending.
// Reports whether the sort state changed.
func (m *Model) RequestSort(col Column) bool {
	if !col.Sortable {
		logging.LogSortIgnored(col.ID())
		return false
	}
	if _, ok := m.sortableColumn(col.DataIndex); !ok {
		logging.LogSortIgnored(col.ID())
		return false
	}
	m.sort = m.sort.Next(col.DataIndex)
	logging.LogSortChange(m.sort.Key, m.sort.Ascending)
	m.recompute(m.cursorID())
	return true
}

// RequestSortKey sorts on the sortable column whose DataIndex is dataIndex.
func (m *Model) RequestSortKey(dataIndex string) bool {
	col, ok := m.sortableColumn(dataIndex)
	if !ok {
		return false
	}
	return m.RequestSort(col)
}

func (m Model) sortableColumn(dataIndex string) (Column, bool) {
	for _, col := range m.cfg.Columns {
		if col.DataIndex == dataIndex && col.Sortable {
			return col, true
		}
	}
	return Column{}, false
}

// ToggleRowSelection flips the selection of the row at index in the sorted
// view, then notifies OnRowSelect. Out-of-range indexes and non-selectable
// tables are ignored. Reports whether the selection changed.
func (m *Model) ToggleRowSelection(index int) bool {
	if !m.cfg.Selectable {
		return false
	}
	id, ok := m.RowID(index)
	if !ok {
		return false
	}
	m.selection = m.selection.Toggle(id)
	logging.LogSelectionChange("toggle_row", m.selection.Len(), len(m.view))
	m.notify(m.SelectedRows())
	return true
}

// ToggleSelectAll clears the selection when every row is selected and
// selects every row otherwise, then notifies OnRowSelect.
func (m *Model) ToggleSelectAll() bool {
	if !m.cfg.Selectable {
		return false
	}
	if m.AllSelected() {
		m.selection = Selection{}
		logging.LogSelectionChange("clear_all", 0, len(m.view))
		m.notify([]Row{})
		return true
	}

	ids := make([]string, len(m.view))
	for i, pos := range m.view {
		ids[i] = m.ids[pos]
	}
	m.selection = NewSelection(ids...)
	logging.LogSelectionChange("select_all", m.selection.Len(), len(m.view))
	m.notify(m.SortedRows())
	return true
}

func (m *Model) notify(rows []Row) {
	if m.cfg.OnRowSelect != nil {
		m.cfg.OnRowSelect(rows)
	}
}

func (m *Model) cursorID() string {
	id, _ := m.RowID(m.cursor)
	return id
}

// recompute rebuilds the sorted view and moves the cursor back onto the row
// identified by cursorID when it is still present.
func (m *Model) recompute(cursorID string) {
	m.view = SortedView(m.rows, m.sort)

	m.cursor = min(m.cursor, max(0, len(m.view)-1))
	if cursorID != "" {
		for i, pos := range m.view {
			if m.ids[pos] == cursorID {
				m.cursor = i
				break
			}
		}
	}
	m.scrollToCursor()
}

// MoveCursor moves the cursor by delta rows, clamped to the sorted view.
func (m *Model) MoveCursor(delta int) {
	if len(m.view) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.view)-1)
	m.scrollToCursor()
}

// MoveColumn moves the focused column by delta, clamped to the columns.
func (m *Model) MoveColumn(delta int) {
	if len(m.cfg.Columns) == 0 {
		m.colCursor = 0
		return
	}
	m.colCursor = min(max(m.colCursor+delta, 0), len(m.cfg.Columns)-1)
}

// FocusedColumn returns the column under the column cursor.
func (m Model) FocusedColumn() (Column, bool) {
	if m.colCursor < 0 || m.colCursor >= len(m.cfg.Columns) {
		return Column{}, false
	}
	return m.cfg.Columns[m.colCursor], true
}

func (m *Model) scrollToCursor() {
	height := m.cfg.Height
	if height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+height {
		m.offset = m.cursor - height + 1
	}
	m.offset = min(m.offset, max(0, len(m.view)-height))
}

// Update handles spinner ticks and, when focused, key presses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.cfg.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.focused || m.State() != StatePopulated {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Up):
		m.MoveCursor(-1)
	case key.Matches(msg, m.KeyMap.Down):
		m.MoveCursor(1)
	case key.Matches(msg, m.KeyMap.Left):
		m.MoveColumn(-1)
	case key.Matches(msg, m.KeyMap.Right):
		m.MoveColumn(1)
	case key.Matches(msg, m.KeyMap.Sort):
		col, ok := m.FocusedColumn()
		if ok && m.RequestSort(col) {
			state := m.sort
			return m, func() tea.Msg { return SortChangedMsg{State: state} }
		}
	case key.Matches(msg, m.KeyMap.Toggle):
		if m.ToggleRowSelection(m.cursor) {
			return m, m.selectionCmd()
		}
	case key.Matches(msg, m.KeyMap.ToggleAll):
		if m.ToggleSelectAll() {
			return m, m.selectionCmd()
		}
	}
	return m, nil
}

func (m Model) selectionCmd() tea.Cmd {
	rows := m.SelectedRows()
	return func() tea.Msg { return SelectionChangedMsg{Rows: rows} }
}

// SortLabel returns the accessible label for a column header.
func (m Model) SortLabel(col Column) string {
	if col.Sortable {
		return "Sort by " + col.Title
	}
	return col.Title
}

// RowLabel returns the accessible label for the checkbox of the row at index.
func (m Model) RowLabel(index int) string {
	return fmt.Sprintf("select row %d", index+1)
}

// SelectAllLabel is the accessible label for the header checkbox.
const SelectAllLabel = "select all rows"
