package driving

import "github.com/custodia-labs/apply-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings, with defaults for unset keys.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// Set validates and persists a single setting by key.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// Validate checks if current settings are usable.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ValidateLLMConfig validates the LLM configuration by pinging the provider.
	ValidateLLMConfig() error
}
