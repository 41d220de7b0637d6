package main

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/muurk/tuikit/internal/config"
	"github.com/muurk/tuikit/internal/dataset"
	"github.com/muurk/tuikit/internal/demo"
	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/internal/ui"
	"github.com/muurk/tuikit/pkg/field"
)

var errUnknownDataset = errors.New("unknown dataset")

var (
	// Table flags
	tableFile    string
	tableSortKey string
	tableDesc    bool
	tablePlain   bool
	tableOnce    bool
	loadDelay    time.Duration

	// Field flags
	fieldLabel       string
	fieldPlaceholder string
	fieldHelper      string
	fieldError       string
	fieldValue       string
	fieldPassword    bool
	fieldDisabled    bool
)

func init() {
	addTableFlags(rootCmd)
	addFieldFlags(rootCmd)

	addTableFlags(tableCmd)
	tableCmd.Flags().BoolVar(&tablePlain, "plain", false, "Print the sorted table as plain text and exit")
	tableCmd.Flags().BoolVar(&tableOnce, "once", false, "Render the styled table once and exit")

	addFieldFlags(fieldCmd)

	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(fieldCmd)
}

// addTableFlags registers the flags shared by every command showing a table.
// Flags without a variable are read through the layered settings.
func addTableFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&tableFile, "file", "f", "", "Dataset file (.yaml, .yml or .json)")
	f.StringP("dataset", "d", "", "Named dataset from the preferences file")
	f.StringVarP(&tableSortKey, "sort", "s", "", "Initial sort column")
	f.BoolVar(&tableDesc, "desc", false, "Start with a descending sort")
	f.Bool("selectable", false, "Show selection checkboxes (default from preferences)")
	f.Int("height", 0, "Visible rows, 0 to fit the terminal")
	f.String("null-text", "", "Text shown for absent values")
	f.DurationVar(&loadDelay, "loading", 0, "Show the loading state for this long before rows appear")
}

// addFieldFlags registers the flags shared by every command showing a field.
func addFieldFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&fieldLabel, "label", "Name", "Field label")
	f.StringVar(&fieldPlaceholder, "placeholder", "Type something", "Placeholder shown while empty")
	f.StringVar(&fieldHelper, "helper", "", "Helper text below the field")
	f.StringVar(&fieldError, "error", "", "Mark the field invalid with this message")
	f.StringVar(&fieldValue, "value", "", "Initial text")
	f.BoolVar(&fieldPassword, "password", false, "Mask the text as a password")
	f.BoolVar(&fieldDisabled, "disabled", false, "Disable the field")
	f.String("variant", "", "Surface style: outlined, filled or ghost")
	f.String("size", "", "Size: sm, md or lg")
	f.Bool("clear", false, "Offer the clear affordance (default from preferences)")
	f.Bool("reveal-toggle", false, "Offer the password reveal affordance (default from preferences)")
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Show the sortable, selectable table",
	Long: `Show the table widget on its own.

Rows come from --file, from a dataset named in the preferences file, or from
the built-in people sample. Press enter on a header to sort; press space to
select a row. Selected first-column values are printed on exit.

With --plain, or when stdout is not a terminal, the sorted table is printed
once as plain text instead.`,
	Example: `  # Built-in sample sorted by age, newest first
  tuikit-demo table --sort age --desc

  # A dataset file, printed for a script
  tuikit-demo table --file ~/data/staff.json --plain

  # A named dataset with a two second loading state
  tuikit-demo table --dataset example --loading 2s`,
	Args: cobra.NoArgs,
	RunE: runTable,
}

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Show the text field",
	Long: `Show the field widget on its own.

ctrl+l clears the text while the clear affordance is shown. ctrl+r toggles
between masked and plain text on password fields with the reveal affordance.`,
	Example: `  # A password field with both affordances
  tuikit-demo field --label Password --password --clear --reveal-toggle

  # A large filled field in the error state
  tuikit-demo field --variant filled --size lg --error "Name is required"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, demo.ModeField)
	},
}

func runDemo(cmd *cobra.Command, args []string) error {
	return runApp(cmd, demo.ModeAll)
}

func runTable(cmd *cobra.Command, args []string) error {
	if tablePlain || tableOnce || !ui.IsTerminal() {
		return printTable(cmd)
	}
	return runApp(cmd, demo.ModeTable)
}

// runApp runs the interactive demo and prints the selected rows on exit
func runApp(cmd *cobra.Command, mode demo.Mode) error {
	if !ui.IsTerminal() {
		return fmt.Errorf("%s needs an interactive terminal", cmd.CommandPath())
	}

	opts, err := buildOptions(cmd, mode)
	if err != nil {
		return err
	}

	p := tea.NewProgram(demo.NewAppModel(opts), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("error running demo: %w", err)
	}

	if app, ok := final.(demo.AppModel); ok {
		for _, name := range app.SelectedNames() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	}
	return nil
}

// printTable prints the sorted dataset without starting an interactive
// program.
func printTable(cmd *cobra.Command) error {
	opts, err := buildOptions(cmd, demo.ModeTable)
	if err != nil {
		return err
	}
	opts.Selectable = false
	opts.LoadDelay = 0
	if tablePlain || !ui.IsTerminal() {
		opts.Height = 0
	}

	t := demo.NewAppModel(opts).Table

	if tableOnce && !tablePlain {
		return ui.RenderOnce(t.View())
	}

	rows := make([][]string, len(t.SortedRows()))
	for i := range rows {
		rows[i] = t.RowCells(i)
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if ui.IsTerminal() {
		printer.PrintHeader(opts.Dataset.Name, cmd.CommandPath(),
			ui.Param{Key: "Rows", Value: fmt.Sprint(len(rows))},
			ui.Param{Key: "Sort", Value: t.SortState().String()},
		)
	}
	printer.PrintTable(t.HeaderCells(), rows)
	return nil
}

// buildOptions resolves the demo options for mode from the layered settings
func buildOptions(cmd *cobra.Command, mode demo.Mode) (demo.Options, error) {
	registry, err := loadPreferences()
	if err != nil {
		return demo.Options{}, err
	}

	v, err := newSettings(cmd, registry.Preferences)
	if err != nil {
		return demo.Options{}, err
	}

	opts := demo.Options{Mode: mode, LoadDelay: loadDelay}

	if mode != demo.ModeField {
		ds, sortKey, sortDesc, err := openDataset(registry, v)
		if err != nil {
			return demo.Options{}, err
		}
		opts.Dataset = ds
		opts.SortKey = sortKey
		opts.SortDesc = sortDesc
		opts.Selectable = v.GetBool("table.selectable")
		opts.Height = v.GetInt("table.height")
		opts.NullText = v.GetString("table.null_text")
	}

	if mode != demo.ModeTable {
		cfg, err := fieldConfig(v)
		if err != nil {
			return demo.Options{}, err
		}
		opts.Field = cfg
	}

	logging.Debug("demo options resolved",
		zap.Int("mode", int(mode)),
		zap.Bool("selectable", opts.Selectable),
		zap.String("sort", opts.SortKey))
	return opts, nil
}

// openDataset loads the table rows from --file, a named dataset or the
// built-in sample, and resolves the initial sort against its columns. An
// explicit --sort overrides the sort stored with a named dataset.
func openDataset(registry *config.Registry, v *viper.Viper) (*dataset.Dataset, string, bool, error) {
	var (
		ds       *dataset.Dataset
		err      error
		sortKey  = tableSortKey
		sortDesc = tableDesc
	)

	name := v.GetString("table.dataset")
	switch {
	case tableFile != "":
		ds, err = dataset.Load(tableFile)
		if err != nil {
			return nil, "", false, err
		}

	case name != "":
		entry := registry.GetDataset(name)
		if entry == nil {
			return nil, "", false, fmt.Errorf("%w: %q (known: %s)", errUnknownDataset, name, knownDatasets(registry))
		}
		path, err := config.ResolveDatasetPath(entry.Path)
		if err != nil {
			return nil, "", false, err
		}
		ds, err = dataset.Load(path)
		if err != nil {
			return nil, "", false, err
		}
		if sortKey == "" {
			sortKey = entry.SortKey
			sortDesc = sortDesc || entry.SortDesc
		}

		registry.MarkDatasetUsed(name)
		if err := registry.Save(); err != nil {
			logging.Warn("failed to record dataset use", zap.String("dataset", name), zap.Error(err))
		}

	default:
		ds = dataset.Sample()
	}

	if sortKey == "" {
		return ds, "", false, nil
	}
	key, err := ds.ResolveSortKey(sortKey)
	if err != nil {
		return nil, "", false, err
	}
	return ds, key, sortDesc, nil
}

func knownDatasets(registry *config.Registry) string {
	if len(registry.Datasets) == 0 {
		return "none, see 'tuikit-demo config dataset add'"
	}
	names := make([]string, 0, len(registry.Datasets))
	for name := range registry.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// fieldConfig builds the field configuration from flags and settings
func fieldConfig(v *viper.Viper) (field.Config, error) {
	variant, size, err := fieldVariantAndSize(v)
	if err != nil {
		return field.Config{}, err
	}

	cfg := field.Config{
		Label:              fieldLabel,
		Placeholder:        fieldPlaceholder,
		HelperText:         fieldHelper,
		ErrorMessage:       fieldError,
		Invalid:            fieldError != "",
		Disabled:           fieldDisabled,
		Variant:            variant,
		Size:               size,
		ShowClear:          v.GetBool("field.show_clear"),
		ShowPasswordToggle: v.GetBool("field.show_password_toggle"),
		Value:              fieldValue,
	}
	if fieldPassword {
		cfg.Type = field.TypePassword
	}
	return cfg, nil
}
