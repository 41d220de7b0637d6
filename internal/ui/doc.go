// Package ui provides shared styling and command output for tuikit.
//
// The palette, markers and text styles in styles.go are used by the field
// and table widgets and by the demo. The rest of the package renders
// "run once and exit" output for tuikit-demo subcommands:
//
//   - Header: command banner showing the operation and its parameters
//   - Result: success, failure and warning boxes
//   - Confirm: a typed confirmation prompt before overwriting files
//   - Printer: writes the above to any io.Writer, plus plain tables via
//     gosuri/uitable when output is not a terminal
//
// # Logging Integration
//
// This package expects logging to be controlled via the TUIKIT_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
