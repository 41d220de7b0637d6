// Package logging provides structured logging for tuikit widgets and the
// demo program.
//
// This package wraps a global zap logger with convenience functions. Widgets
// call the event helpers below; the demo initializes the logger at startup.
//
// # Log Levels
//
//   - Debug: Widget transitions and dataset loads
//   - Warn: Recoverable issues, such as a dataset use that was not recorded
//
// # Silent By Default
//
// A Bubble Tea program owns the terminal, so stray log lines would corrupt
// the screen. Logging is therefore silent unless TUIKIT_LOG_LEVEL is set.
// Set TUIKIT_LOG_FILE to send output to a file instead of stderr:
//
//	TUIKIT_LOG_LEVEL=debug TUIKIT_LOG_FILE=/tmp/tuikit.log tuikit-demo
//
// # Widget Events
//
//	logging.LogSortChange("age", true)
//	logging.LogSelectionChange("toggle_row", 2, 3)
//	logging.LogFieldEvent("Email", "clear", 0)
//
// Field events record the text length only, never the text.
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize and SetLogger
// are meant to be called once during startup.
package logging
