// Package cli provides the cobra command tree for the apply binary.
//
// Running apply with no subcommand launches the interactive wizard. The
// remaining commands inspect or reset the saved session, run extraction on
// a single file, and manage settings and submission history.
package cli
