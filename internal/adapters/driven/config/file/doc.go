// Package file provides file-based configuration adapters.
//
// Adapters:
//   - ConfigStore: TOML configuration at ~/.apply/config.toml
//   - PromptStore: editable extraction prompts under ~/.apply/prompts
package file
