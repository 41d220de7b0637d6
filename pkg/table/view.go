package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	rtruncate "github.com/muesli/reflow/truncate"

	"github.com/muurk/tuikit/internal/ui"
)

// View renders the loading status, the empty message, or the table.
func (m Model) View() string {
	switch m.State() {
	case StateLoading:
		return ui.StatusStyle.Render(m.Spinner.View() + " " + m.cfg.LoadingText)
	case StateEmpty:
		return ui.EmptyStyle.Render(m.cfg.EmptyText)
	}

	start, end := m.visibleRange()

	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(m.borderColor())).
		BorderRow(false).
		Headers(m.headerCells()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return m.cellStyle(start, row, col)
		})

	for i := start; i < end; i++ {
		t.Row(m.rowCells(i)...)
	}

	return t.String()
}

// HeaderCells returns the header labels, including the select-all checkbox
// and the sort indicator, without styling.
func (m Model) HeaderCells() []string {
	return m.headerCells()
}

// RowCells returns the display cells of the row at index in the sorted view.
func (m Model) RowCells(index int) []string {
	if index < 0 || index >= len(m.view) {
		return nil
	}
	return m.rowCells(index)
}

func (m Model) visibleRange() (int, int) {
	if m.cfg.Height <= 0 || m.cfg.Height >= len(m.view) {
		return 0, len(m.view)
	}
	return m.offset, min(m.offset+m.cfg.Height, len(m.view))
}

func (m Model) headerCells() []string {
	cells := make([]string, 0, len(m.cfg.Columns)+1)
	if m.cfg.Selectable {
		cells = append(cells, ui.Checkbox(m.AllSelected()))
	}
	for _, col := range m.cfg.Columns {
		title := col.Title
		if col.Sortable && m.sort.Key == col.DataIndex {
			title += " " + sortMarker(m.sort.Ascending)
		}
		cells = append(cells, title)
	}
	return cells
}

func sortMarker(ascending bool) string {
	if ascending {
		return ui.SortAscendingMarker
	}
	return ui.SortDescendingMarker
}

func (m Model) rowCells(index int) []string {
	row := m.rows[m.view[index]]
	cells := make([]string, 0, len(m.cfg.Columns)+1)
	if m.cfg.Selectable {
		cells = append(cells, ui.Checkbox(m.IsSelected(index)))
	}
	for _, col := range m.cfg.Columns {
		cells = append(cells, m.cellText(row, col))
	}
	return cells
}

func (m Model) cellText(row Row, col Column) string {
	v, ok := row.Lookup(col.DataIndex)
	if !ok {
		return m.cfg.NullText
	}
	text := FormatValue(v)
	if col.Width > 0 {
		text = truncate(text, col.Width)
	}
	return text
}

// truncate shortens text to width cells, marking the cut with an ellipsis.
func truncate(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return rtruncate.StringWithTail(text, uint(width), "…")
}

func (m Model) borderColor() lipgloss.Color {
	if m.focused {
		return ui.PrimaryColor
	}
	return ui.MutedColor
}

// cellStyle styles one cell. row is relative to the visible window.
func (m Model) cellStyle(start, row, col int) lipgloss.Style {
	column, isData := m.columnAt(col)

	if row == ltable.HeaderRow {
		style := ui.TableHeaderStyle
		if isData && m.focused && m.cfg.Columns[m.colCursor].ID() == column.ID() {
			style = style.Underline(true)
		}
		return widthFor(style, column, isData)
	}

	index := start + row
	style := ui.TableCellStyle
	switch {
	case m.focused && index == m.cursor:
		style = style.Background(ui.CursorColor)
	case m.IsSelected(index):
		style = style.Background(ui.HighlightColor)
	}
	if !isData {
		style = style.Foreground(ui.SuccessColor)
	}
	return widthFor(style, column, isData)
}

// columnAt maps a rendered column index to its Column. The leading checkbox
// column reports isData false.
func (m Model) columnAt(col int) (Column, bool) {
	if m.cfg.Selectable {
		col--
	}
	if col < 0 || col >= len(m.cfg.Columns) {
		return Column{}, false
	}
	return m.cfg.Columns[col], true
}

func widthFor(style lipgloss.Style, col Column, isData bool) lipgloss.Style {
	if isData && col.Width > 0 {
		// Padding is inside the width in lipgloss.
		return style.Width(col.Width + 2)
	}
	return style
}
