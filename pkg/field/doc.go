// Package field provides a labeled text input for Bubble Tea programs.
//
// The field wraps a bubbles text input and adds a label, helper and error
// lines, three visual variants, three sizes, and two optional affordances:
//
//   - Clear (ctrl+l): shown while ShowClear is set, the field is enabled and
//     it has text. Clearing empties the text and notifies OnChange with "".
//   - Reveal (ctrl+r): shown on password fields with ShowPasswordToggle.
//     Toggling switches between masked and plain display.
//
// The field never validates. Invalid and ErrorMessage are set by the caller.
//
// # Usage Example
//
//	f := field.New(field.Config{
//	    Label:     "Email",
//	    ShowClear: true,
//	    OnChange: func(v string) {
//	        // ...
//	    },
//	})
//	cmd := f.Focus()
package field
