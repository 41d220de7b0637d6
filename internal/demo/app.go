package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/tuikit/internal/dataset"
	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/pkg/field"
	"github.com/muurk/tuikit/pkg/table"
)

// Mode selects which widgets the demo shows
type Mode int

const (
	ModeAll Mode = iota
	ModeTable
	ModeField
)

// Focus identifies the widget receiving key presses
type Focus int

const (
	FocusField Focus = iota
	FocusTable
)

// Rows above and below the table inside the container
const tableChrome = 18

// Options configures the demo application
type Options struct {
	Mode    Mode
	Dataset *dataset.Dataset // Defaults to dataset.Sample()
	Field   field.Config

	Selectable bool
	SortKey    string // Data index of a sortable column, resolved by the caller
	SortDesc   bool
	Height     int // Visible table rows, 0 to fit the terminal
	NullText   string

	// LoadDelay shows the loading state for this long before rows appear
	LoadDelay time.Duration
}

// rowsLoadedMsg delivers the dataset rows after LoadDelay
type rowsLoadedMsg struct{}

// AppModel is the top-level model composing the field and the table
type AppModel struct {
	Mode  Mode
	Focus Focus

	Field field.Model
	Table table.Model

	// Status is the last event shown in the status bar
	Status string

	// UI state
	Width    int
	Height   int
	ShowHelp bool

	Help help.Model
	Keys appKeyMap

	pending   []table.Row
	loadDelay time.Duration
	fitHeight bool
}

// NewAppModel creates the application model from opts
func NewAppModel(opts Options) AppModel {
	ds := opts.Dataset
	if ds == nil {
		ds = dataset.Sample()
	}

	cfg := table.Config{
		Columns:    ds.Columns,
		Rows:       ds.Rows,
		Selectable: opts.Selectable,
		RowKey:     ds.RowKeyFunc(),
		NullText:   opts.NullText,
		Height:     opts.Height,
	}
	var pending []table.Row
	if opts.LoadDelay > 0 {
		pending = ds.Rows
		cfg.Rows = nil
		cfg.Loading = true
	}

	t := table.New(cfg)
	if opts.SortKey != "" {
		t.RequestSortKey(opts.SortKey)
		if opts.SortDesc {
			t.RequestSortKey(opts.SortKey)
		}
	}

	m := AppModel{
		Mode:      opts.Mode,
		Field:     field.New(opts.Field),
		Table:     t,
		Status:    "Ready",
		Help:      help.New(),
		Keys:      defaultAppKeyMap(),
		pending:   pending,
		loadDelay: opts.LoadDelay,
		fitHeight: opts.Height == 0,
	}

	if m.Mode == ModeTable {
		m.Focus = FocusTable
	}
	m.applyFocus()
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Table.Init()}
	if m.showField() {
		cmds = append(cmds, textinput.Blink)
	}
	if m.pending != nil {
		cmds = append(cmds, tea.Tick(m.loadDelay, func(time.Time) tea.Msg {
			return rowsLoadedMsg{}
		}))
	}
	return tea.Batch(cmds...)
}

func (m AppModel) showField() bool { return m.Mode != ModeTable }
func (m AppModel) showTable() bool { return m.Mode != ModeField }

// applyFocus gives key focus to exactly one widget
func (m *AppModel) applyFocus() tea.Cmd {
	if m.Focus == FocusTable {
		m.Field.Blur()
		m.Table.Focus()
		return nil
	}
	m.Table.Blur()
	return m.Field.Focus()
}

// Update handles all messages and routes them to the widgets
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		if m.fitHeight {
			m.Table.SetHeight(max(3, msg.Height-tableChrome))
		}
		return m, nil

	case rowsLoadedMsg:
		m.Table.SetRows(m.pending)
		m.Table.SetLoading(false)
		m.Status = fmt.Sprintf("Loaded %d rows", len(m.pending))
		m.pending = nil
		logging.Debug("demo rows loaded", zap.Int("rows", len(m.Table.Rows())))
		return m, nil

	case field.ChangedMsg:
		m.Status = fmt.Sprintf("%s: %d characters", m.Field.AccessibleLabel(), len([]rune(msg.Value)))
		return m, nil

	case table.SortChangedMsg:
		m.Status = "Sorted by " + msg.State.String()
		return m, nil

	case table.SelectionChangedMsg:
		m.Status = fmt.Sprintf("%d of %d rows selected", len(msg.Rows), len(m.Table.Rows()))
		return m, nil

	case tea.KeyMsg:
		if m.ShowHelp {
			m.ShowHelp = false
			return m, nil
		}
		if handled, model, cmd := m.handleAppKey(msg); handled {
			return model, cmd
		}
	}

	return m.updateWidgets(msg)
}

// handleAppKey applies application bindings. Printable bindings only apply
// while the field does not have focus, so they can be typed.
func (m AppModel) handleAppKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	typing := m.showField() && m.Focus == FocusField
	printable := msg.Type == tea.KeyRunes

	switch {
	case key.Matches(msg, m.Keys.Quit) && !(typing && printable):
		return true, m, tea.Quit

	case key.Matches(msg, m.Keys.NextFocus) && m.Mode == ModeAll:
		if m.Focus == FocusField {
			m.Focus = FocusTable
		} else {
			m.Focus = FocusField
		}
		cmd := m.applyFocus()
		return true, m, cmd

	case key.Matches(msg, m.Keys.Help) && !typing:
		m.ShowHelp = true
		return true, m, nil
	}
	return false, m, nil
}

// updateWidgets routes a message to the visible widgets. Each widget ignores
// keys while unfocused.
func (m AppModel) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.showField() {
		var cmd tea.Cmd
		m.Field, cmd = m.Field.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.showTable() {
		var cmd tea.Cmd
		m.Table, cmd = m.Table.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// SelectedNames returns the first-column values of the selected rows
func (m AppModel) SelectedNames() []string {
	cols := m.Table.Columns()
	if len(cols) == 0 {
		return nil
	}
	rows := m.Table.SelectedRows()
	names := make([]string, len(rows))
	for i, row := range rows {
		names[i] = table.FormatValue(row[cols[0].DataIndex])
	}
	return names
}

// View renders the application
func (m AppModel) View() string {
	content := m.buildContent()
	helpText := m.Help.View(m.helpKeys())

	if m.Width == 0 || m.Height == 0 {
		// No size yet; render without the container
		return lipgloss.JoinVertical(lipgloss.Left, content, "", BuildFooterContent(helpText))
	}

	if m.ShowHelp {
		full := m.Help
		full.ShowAll = true
		return RenderModal(HelpBoxStyle.Render(full.View(m.helpKeys())), m.Width, m.Height)
	}

	return RenderApplicationContainer(content, helpText, m.Width, m.Height)
}

func (m AppModel) helpKeys() combinedKeyMap {
	if m.Focus == FocusTable {
		return combinedKeyMap{app: m.Keys, widget: m.Table.KeyMap}
	}
	return combinedKeyMap{app: m.Keys, widget: m.Field.KeyMap}
}

// buildContent builds the main screen content
func (m AppModel) buildContent() string {
	var b strings.Builder

	b.WriteString(RenderTitle("UI Components"))
	b.WriteString("\n")

	if m.showField() {
		b.WriteString(RenderSection("Field"))
		b.WriteString("\n")
		b.WriteString(m.Field.View())
		b.WriteString("\n")
	}

	if m.showTable() {
		b.WriteString(RenderSection("Table"))
		b.WriteString("\n")
		b.WriteString(m.Table.View())
		b.WriteString("\n")

		if m.Table.Selectable() {
			names := m.SelectedNames()
			summary := "Selected: none"
			if len(names) > 0 {
				summary = "Selected: " + strings.Join(names, ", ")
			}
			b.WriteString(SelectionStyle.Render(summary))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(StatusBarStyle.Render(m.Status))
	return b.String()
}
