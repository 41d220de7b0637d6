package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/tuikit/internal/config"
	"github.com/muurk/tuikit/internal/dataset"
	"github.com/muurk/tuikit/internal/ui"
)

// sampleDatasetFile is written next to the configuration by 'config init'
const sampleDatasetFile = "people.yaml"

var (
	configForce    bool
	datasetSortKey string
	datasetDesc    bool
	datasetDefault bool
)

func init() {
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing configuration")

	datasetAddCmd.Flags().StringVarP(&datasetSortKey, "sort", "s", "", "Column sorted when the dataset opens")
	datasetAddCmd.Flags().BoolVar(&datasetDesc, "desc", false, "Open with a descending sort")
	datasetAddCmd.Flags().BoolVar(&datasetDefault, "default", false, "Open this dataset when none is named")

	configDatasetCmd.AddCommand(datasetListCmd)
	configDatasetCmd.AddCommand(datasetAddCmd)
	configDatasetCmd.AddCommand(datasetRemoveCmd)

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDatasetCmd)

	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage widget preferences and named datasets",
	Long: `Manage the preferences file.

The file stores defaults for the field and table widgets and a list of named
datasets. Command-line flags override TUIKIT_* environment variables, which
override the file. For example TUIKIT_FIELD_VARIANT=filled or
TUIKIT_TABLE_SELECTABLE=false.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with an example dataset",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configDatasetCmd = &cobra.Command{
	Use:     "dataset",
	Aliases: []string{"datasets"},
	Short:   "Manage named datasets",
}

var datasetListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List named datasets",
	Args:    cobra.NoArgs,
	RunE:    runDatasetList,
}

var datasetAddCmd = &cobra.Command{
	Use:   "add <name> <file>",
	Short: "Register a dataset file under a name",
	Example: `  tuikit-demo config dataset add staff ~/data/staff.json --sort age --desc
  tuikit-demo table --dataset staff`,
	Args: cobra.ExactArgs(2),
	RunE: runDatasetAdd,
}

var datasetRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Forget a named dataset",
	Args:    cobra.ExactArgs(1),
	RunE:    runDatasetRemove,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	printer := ui.NewPrinter(cmd.OutOrStdout())

	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		if !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if ui.IsTerminal() {
			warnings := []string{
				"Replaces " + path,
				"Named datasets and preferences are reset to defaults",
			}
			if !ui.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Overwrite configuration", warnings, "overwrite") {
				return nil
			}
		}
	}

	path, err = config.CreateDefaultConfig(true)
	if err != nil {
		return err
	}

	samplePath := filepath.Join(filepath.Dir(path), sampleDatasetFile)
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		if err := dataset.Sample().Save(samplePath); err != nil {
			return err
		}
	}

	printer.PrintSuccess("Configuration created",
		ui.Param{Key: "Config", Value: path},
		ui.Param{Key: "Dataset", Value: samplePath},
	)
	printer.Println("Open the example with: tuikit-demo table --dataset example")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	registry, err := loadPreferences()
	if err != nil {
		return err
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	data, err := registry.Marshal()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if ui.IsTerminal() {
		printer.PrintHeader("Configuration", cmd.CommandPath(), ui.Param{Key: "Path", Value: path})
	}
	printer.Print(string(data))
	return nil
}

func runDatasetList(cmd *cobra.Command, args []string) error {
	registry, err := loadPreferences()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())
	if len(registry.Datasets) == 0 {
		printer.Println("No datasets. Add one with: tuikit-demo config dataset add <name> <file>")
		return nil
	}

	names := make([]string, 0, len(registry.Datasets))
	for name := range registry.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	defaultName := registry.Preferences.Table.DefaultDataset
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		entry := registry.Datasets[name]
		label := name
		if name == defaultName {
			label += " *"
		}
		lastUsed := "never"
		if !entry.LastUsed.IsZero() {
			lastUsed = entry.LastUsed.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{label, entry.Path, describeSort(entry), lastUsed})
	}
	printer.PrintTable([]string{"Name", "Path", "Sort", "Last used"}, rows)
	return nil
}

func describeSort(entry *config.Dataset) string {
	switch {
	case entry.SortKey == "":
		return "-"
	case entry.SortDesc:
		return entry.SortKey + " descending"
	default:
		return entry.SortKey + " ascending"
	}
}

func runDatasetAdd(cmd *cobra.Command, args []string) error {
	name, path := args[0], args[1]
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("dataset name must not be empty")
	}

	// Store the path absolute, relative to the working directory, so the
	// registry does not read it as relative to the config directory
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "~") {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		path = abs
	}

	ds, err := dataset.Load(path)
	if err != nil {
		return err
	}
	sortKey := ""
	if datasetSortKey != "" {
		if sortKey, err = ds.ResolveSortKey(datasetSortKey); err != nil {
			return err
		}
	}

	registry, err := loadPreferences()
	if err != nil {
		return err
	}
	registry.SetDatasetPath(name, path)
	registry.SetDatasetSort(name, sortKey, datasetDesc)
	if datasetDefault {
		registry.Preferences.Table.DefaultDataset = name
	}
	if err := registry.Save(); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Dataset added",
		ui.Param{Key: "Name", Value: name},
		ui.Param{Key: "Path", Value: path},
		ui.Param{Key: "Columns", Value: fmt.Sprint(len(ds.Columns))},
		ui.Param{Key: "Rows", Value: fmt.Sprint(len(ds.Rows))},
		ui.Param{Key: "Sort", Value: describeSort(registry.GetDataset(name))},
	)
	return nil
}

func runDatasetRemove(cmd *cobra.Command, args []string) error {
	registry, err := loadPreferences()
	if err != nil {
		return err
	}

	name := args[0]
	if !registry.RemoveDataset(name) {
		return fmt.Errorf("%w: %q (known: %s)", errUnknownDataset, name, knownDatasets(registry))
	}
	if err := registry.Save(); err != nil {
		return err
	}

	ui.NewPrinter(cmd.OutOrStdout()).PrintSuccess("Dataset removed", ui.Param{Key: "Name", Value: name})
	return nil
}
