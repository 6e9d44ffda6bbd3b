// Package cli provides the interactive roster command-line client.
//
// It wires configuration, the selected store (local SQLite file, S3 bucket
// or remote server), the view-state coordinator and a REPL. The student list
// is loaded in the background on start; the form and the list are driven by
// commands:
//
//   - add              fill in the student form
//   - view | list | l  show the list (with the active search filter)
//   - search [term]    filter by name, roll number, email or department
//   - edit <id>        change a student
//   - delete <id>      remove a student after confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
