// Package ai provides factory functions for creating the extraction and LLM adapters.
package ai

import (
	"context"
	"fmt"
	"time"

	llmextract "github.com/custodia-labs/apply-cli/internal/adapters/driven/extract/llm"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/extract/pdftext"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/extract/stub"
	ollamallm "github.com/custodia-labs/apply-cli/internal/adapters/driven/llm/ollama"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for service connectivity validation.
const pingTimeout = 5 * time.Second

// pinger lets tests replace connectivity validation.
var pinger = func(ctx context.Context, svc driven.LLMService) error {
	return svc.Ping(ctx)
}

// InitResult contains the extractor chosen for the current settings.
type InitResult struct {
	Extractor  driven.Extractor
	LLMService driven.LLMService // Nil unless LLM extraction is active.
	Warnings   []string          // Non-fatal issues that caused fallback.
	FellBack   bool              // True if LLM extraction runs rules-only.
}

// Close releases all resources held by InitResult.
func (r *InitResult) Close() {
	if r.LLMService != nil {
		r.LLMService.Close()
	}
}

// CreateExtractor builds the extractor selected by settings.Extraction.Mode.
// In LLM mode an unreachable model is a warning, not an error: the
// extractor then uses rule-based extraction on the pdftotext output.
func CreateExtractor(settings *domain.AppSettings, prompts driven.PromptStore, runner pdftext.Runner) *InitResult {
	if settings == nil || settings.Extraction.Mode != domain.ExtractionModeLLM {
		delay := domain.DefaultExtractionDelay
		if settings != nil {
			delay = settings.Extraction.Delay
		}
		return &InitResult{Extractor: stub.New(delay)}
	}

	result := &InitResult{}
	text := pdftext.New(settings.Extraction.PdftotextPath, runner)

	svc, err := CreateAndValidateLLMService(&settings.LLM)
	if err != nil {
		result.Warnings = append(result.Warnings, err.Error())
		result.FellBack = true
		svc = nil
	} else if svc == nil {
		result.Warnings = append(result.Warnings, "LLM not configured, using rule-based extraction")
		result.FellBack = true
	}
	result.LLMService = svc

	extractor := llmextract.New(text, svc)
	if prompts != nil {
		extractor.SetPromptStore(prompts)
	}
	result.Extractor = extractor
	return result
}

// CreateAndValidateLLMService creates an LLM service and validates connectivity.
// Returns the service if successful, or an error with guidance.
func CreateAndValidateLLMService(settings *domain.LLMSettings) (driven.LLMService, error) {
	svc := CreateLLMService(settings)
	if svc == nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := pinger(ctx, svc); err != nil {
		svc.Close()
		return nil, fmt.Errorf("%w: %w. Check 'apply settings show'",
			domain.ErrLLMUnavailable, err)
	}

	return svc, nil
}

// ValidateLLMConfig validates an LLM configuration by creating a service and pinging it.
func ValidateLLMConfig(settings *domain.LLMSettings) error {
	svc := CreateLLMService(settings)
	if svc == nil {
		return nil
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return pinger(ctx, svc)
}

// CreateLLMService creates an Ollama LLM service.
// Returns nil if the LLM is not configured.
func CreateLLMService(settings *domain.LLMSettings) driven.LLMService {
	if settings == nil || !settings.IsConfigured() {
		return nil
	}

	return ollamallm.NewLLMService(ollamallm.LLMConfig{
		BaseURL: settings.BaseURL,
		Model:   settings.Model,
	})
}
