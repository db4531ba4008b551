// Package logging provides the structured logger used across fibgen.
// Entries are written by zerolog: a console format for terminals and JSON
// lines when diagnostics are redirected.
package logging
