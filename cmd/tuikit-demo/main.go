// Tuikit-demo shows the tuikit field and table widgets.
//
// It runs the widgets together or alone in a full-screen terminal UI, prints
// datasets as plain tables for scripts and pipes, and manages a small
// preferences file with widget defaults and named datasets.
//
// Usage:
//
//	tuikit-demo [command] [flags]
//
// Running without arguments launches the combined demo.
// See 'tuikit-demo --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/tuikit/internal/logging"
	"github.com/muurk/tuikit/internal/ui"
	"github.com/muurk/tuikit/internal/version"
)

var (
	logLevel string
	verbose  bool
)

func main() {
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tuikit-demo",
	Short: "Demo of the tuikit field and table widgets",
	Long: `An interactive demo of the tuikit terminal widgets.

The field is a labeled text input with optional clear and password reveal
affordances. The table sorts by column and selects rows by identity, so a
selection survives re-sorting.

If no command is specified, both widgets are shown together. Press tab to
move focus between them.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Silent unless --log-level or TUIKIT_LOG_LEVEL is set
		return logging.Initialize(logLevel)
	},
	RunE: runDemo,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr or $"+logging.LogFileEnvVar)

	versionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show build details")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if !verbose {
			fmt.Fprintf(cmd.OutOrStdout(), "tuikit-demo %s\n", version.Full())
			return
		}

		rows := make([][]string, 0, 4)
		for _, kv := range version.Info() {
			rows = append(rows, []string{kv[0], kv[1]})
		}
		ui.NewPrinter(cmd.OutOrStdout()).PrintTable([]string{"Component", "Value"}, rows)
	},
}
