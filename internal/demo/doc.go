// Package demo implements the interactive tuikit-demo application.
//
// AppModel composes a field and a table in one screen. Tab moves key focus
// between them; each widget ignores keys while unfocused. Widget messages
// (field.ChangedMsg, table.SortChangedMsg, table.SelectionChangedMsg) update
// the status bar, and the footer shows the bindings of the focused widget.
//
// The demo can also show a single widget (ModeField, ModeTable) and can
// simulate a slow data source with Options.LoadDelay, which keeps the table
// in its loading state until the rows arrive.
//
// Every screen is wrapped by RenderApplicationContainer once the terminal
// size is known.
package demo
