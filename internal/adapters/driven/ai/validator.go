package ai

import (
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

var _ driven.LLMConfigValidator = ConfigValidator{}

// ConfigValidator checks LLM settings against a live Ollama server. It backs
// the settings wizard's connection test.
type ConfigValidator struct{}

// NewConfigValidator returns a ConfigValidator.
func NewConfigValidator() ConfigValidator {
	return ConfigValidator{}
}

// ValidateLLM pings the server and confirms the model is available.
// Unconfigured settings pass, since extraction then uses the rules.
func (ConfigValidator) ValidateLLM(config *domain.LLMSettings) error {
	return ValidateLLMConfig(config)
}
