package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keySubmissionEndpoint = "submission.endpoint"
	keySubmissionFormID   = "submission.form_id"
	keyExtractionMode     = "extraction.mode"
	keyExtractionDelayMS  = "extraction.delay_ms"
	keyLLMBaseURL         = "llm.base_url"
	keyLLMModel           = "llm.model"
	keyIntakeMaxSize      = "intake.max_size_bytes"
	keyStorageBackend     = "storage.backend"
	keyPdftotextPath      = "pdftotext.path"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore  driven.ConfigStore
	llmValidator driven.LLMConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, llmValidator driven.LLMConfigValidator) *SettingsService {
	return &SettingsService{
		configStore:  configStore,
		llmValidator: llmValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Submission: domain.SubmissionSettings{
			Endpoint: s.getString(keySubmissionEndpoint, defaults.Submission.Endpoint),
			FormID:   s.getString(keySubmissionFormID, defaults.Submission.FormID),
		},
		Extraction: domain.ExtractionSettings{
			Mode:          s.getExtractionMode(defaults.Extraction.Mode),
			Delay:         s.getDelay(defaults.Extraction.Delay),
			PdftotextPath: s.getString(keyPdftotextPath, defaults.Extraction.PdftotextPath),
		},
		LLM: domain.LLMSettings{
			BaseURL: s.getString(keyLLMBaseURL, defaults.LLM.BaseURL),
			Model:   s.getString(keyLLMModel, defaults.LLM.Model),
		},
		Intake: domain.IntakeSettings{
			MaxSizeBytes: s.getMaxSize(defaults.Intake.MaxSizeBytes),
		},
		Storage: domain.StorageSettings{
			Backend: s.getStorageBackend(defaults.Storage.Backend),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save submission settings
	if err := s.configStore.Set(keySubmissionEndpoint, settings.Submission.Endpoint); err != nil {
		return fmt.Errorf("save submission endpoint: %w", err)
	}
	if err := s.configStore.Set(keySubmissionFormID, settings.Submission.FormID); err != nil {
		return fmt.Errorf("save submission form_id: %w", err)
	}

	// Save extraction settings
	if err := s.configStore.Set(keyExtractionMode, settings.Extraction.Mode.String()); err != nil {
		return fmt.Errorf("save extraction mode: %w", err)
	}
	if err := s.configStore.Set(keyExtractionDelayMS, settings.Extraction.Delay.Milliseconds()); err != nil {
		return fmt.Errorf("save extraction delay: %w", err)
	}
	if err := s.configStore.Set(keyPdftotextPath, settings.Extraction.PdftotextPath); err != nil {
		return fmt.Errorf("save pdftotext path: %w", err)
	}

	// Save LLM settings
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}

	if err := s.configStore.Set(keyIntakeMaxSize, settings.Intake.MaxSizeBytes); err != nil {
		return fmt.Errorf("save intake max size: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}

	return nil
}

// Keys returns the recognised setting keys in display order.
func (s *SettingsService) Keys() []string {
	return []string{
		keySubmissionEndpoint,
		keySubmissionFormID,
		keyExtractionMode,
		keyExtractionDelayMS,
		keyPdftotextPath,
		keyLLMBaseURL,
		keyLLMModel,
		keyIntakeMaxSize,
		keyStorageBackend,
	}
}

// Set validates and persists a single setting.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keySubmissionEndpoint, keySubmissionFormID, keyLLMBaseURL, keyLLMModel, keyPdftotextPath:
		if value == "" {
			return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, value)
	case keyExtractionMode:
		if !domain.ExtractionMode(value).IsValid() {
			return fmt.Errorf("%w: invalid extraction mode: %s", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)
	case keyStorageBackend:
		if !domain.StorageBackend(value).IsValid() {
			return fmt.Errorf("%w: invalid storage backend: %s", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, value)
	case keyExtractionDelayMS, keyIntakeMaxSize:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrInvalidInput, key)
		}
		return s.configStore.Set(key, n)
	default:
		return fmt.Errorf("%w: unknown setting: %s", domain.ErrInvalidInput, key)
	}
}

// Validate checks if current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Submission.IsConfigured() {
		return fmt.Errorf("submission endpoint and form_id must be configured")
	}

	if unknown := s.unknownKeys(); len(unknown) > 0 {
		return fmt.Errorf("unrecognised settings in %s: %s", s.configStore.Path(), strings.Join(unknown, ", "))
	}

	if settings.Extraction.Mode == domain.ExtractionModeLLM && !settings.LLM.IsConfigured() {
		return fmt.Errorf(
			"extraction mode %q requires llm.base_url and llm.model to be configured",
			settings.Extraction.Mode.Description(),
		)
	}

	return nil
}

// unknownKeys lists stored keys that no setting reads, usually typos in a
// hand-edited config file.
func (s *SettingsService) unknownKeys() []string {
	known := make(map[string]bool)
	for _, k := range s.Keys() {
		known[k] = true
	}
	var unknown []string
	for _, k := range s.configStore.Keys() {
		if !known[k] {
			unknown = append(unknown, k)
		}
	}
	return unknown
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.llmValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.llmValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getExtractionMode(defaultVal domain.ExtractionMode) domain.ExtractionMode {
	mode := domain.ExtractionMode(s.configStore.GetString(keyExtractionMode))
	if !mode.IsValid() {
		return defaultVal
	}
	return mode
}

func (s *SettingsService) getStorageBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorageBackend))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}

// getDelay reads extraction.delay_ms. An explicit zero disables the delay.
func (s *SettingsService) getDelay(defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(keyExtractionDelayMS); !exists {
		return defaultVal
	}
	ms := s.configStore.GetInt(keyExtractionDelayMS)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

// getMaxSize reads intake.max_size_bytes. An explicit zero disables the limit.
func (s *SettingsService) getMaxSize(defaultVal int64) int64 {
	if _, exists := s.configStore.Get(keyIntakeMaxSize); !exists {
		return defaultVal
	}
	n := s.configStore.GetInt(keyIntakeMaxSize)
	if n < 0 {
		return defaultVal
	}
	return int64(n)
}
