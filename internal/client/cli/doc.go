// Package cli implements the interactive terminal front end of cipherdir.
//
// The REPL exposes the directory operations (list, filter, add, delete)
// and renders decrypted records as a table for a single display refresh.
// Fields whose decryption failed are shown as <unreadable> together with a
// report of what failed and why; a partially failed batch is never rendered
// as a silently empty table.
package cli
