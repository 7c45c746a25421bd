// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - SnapshotStore: Wizard session persistence (file or SQLite)
//   - Extractor: Derives an ExtractedRecord from an uploaded CV
//   - Submitter: Delivers the final application to the form-relay endpoint
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Submission history. Without it, no reference is recorded.
//   - TextExtractor: PDF to text conversion. Only used by LLM extraction.
//   - LLMService: Language model chat. Without it, LLM extraction falls back to rules.
//   - PromptStore: Customisable prompts. Without it, built-in prompts are used.
//   - HistoryExporter: Writes history entries to a file format.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
