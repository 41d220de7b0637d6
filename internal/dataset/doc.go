// Package dataset loads table fixtures for tuikit-demo.
//
// A dataset file is YAML or JSON with the same layout:
//
//	name: people
//	row_key: id
//	columns:
//	  - key: name
//	    title: Name
//	    sortable: true
//	  - key: email
//	    title: Email
//	rows:
//	  - {id: 1, name: Alice, email: alice@example.com}
//
// Column titles and data indexes default to the column key. row_key names
// the row field used as the selection identity; without it the table
// generates identities. Sample returns the built-in people dataset, and
// Save writes a dataset back out in either format.
package dataset
