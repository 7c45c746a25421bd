// Package services implements the driving ports.
//
// WizardController owns the wizard session. It moves through the summary,
// upload, review and completion steps, and writes a snapshot to the
// SnapshotStore after each change so an interrupted application can be
// resumed. IntakeService, SettingsService, HistoryService and
// ExtractService back the CLI commands and the upload step.
package services
