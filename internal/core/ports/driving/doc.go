// Package driving defines the ports the TUI and CLI call into: the wizard
// controller and its step payloads, file intake, settings, submission
// history and one-off extraction.
//
// Implementations live in internal/core/services.
package driving
