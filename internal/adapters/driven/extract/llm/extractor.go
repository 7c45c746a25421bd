package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure Extractor implements the interfaces.
var (
	_ driven.Extractor        = (*Extractor)(nil)
	_ driven.PromptStoreAware = (*Extractor)(nil)
)

// Sampling options used for extraction.
const (
	Temperature = 0.1
	MaxTokens   = 600
)

// Built-in prompts, used when no PromptStore is set.
const (
	defaultSystemPrompt = "You are an expert ATS system. Extract structured information from CVs. " +
		"Return ONLY valid JSON without any additional text."
	defaultUserPrompt = "ANALYZE THIS CV AND EXTRACT experience (job titles), leadership (formal positions), " +
		"profile_summary (2-3 sentences) and education (degree names) AS A JSON OBJECT.\n\nCV CONTENT:\n%s"
)

// Extractor implements driven.Extractor on top of a TextExtractor and an
// optional LLMService.
type Extractor struct {
	text    driven.TextExtractor
	llm     driven.LLMService
	prompts driven.PromptStore
}

// New creates an extractor. A nil llm uses rule-based extraction only.
func New(text driven.TextExtractor, llm driven.LLMService) *Extractor {
	return &Extractor{text: text, llm: llm}
}

// SetPromptStore sets the store the extraction prompts are loaded from.
func (e *Extractor) SetPromptStore(store driven.PromptStore) {
	e.prompts = store
}

// Extract converts the document to text and derives the record from it.
// Only text extraction failures and cancellation are returned as errors.
func (e *Extractor) Extract(ctx context.Context, doc *domain.Document) (*domain.ExtractedRecord, error) {
	raw, err := e.text.ExtractText(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	cleaned := cleanText(raw)

	rec, err := e.structured(ctx, cleaned)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		logger.Warn("LLM extraction failed, using rules: %v", err)
		rec = ruleBased(cleaned)
	}

	rec.FullName, rec.Email, rec.Phone = contactDetails(raw)
	return rec, nil
}

func (e *Extractor) structured(ctx context.Context, cleaned string) (*domain.ExtractedRecord, error) {
	if e.llm == nil {
		return nil, errors.New("no LLM configured")
	}

	system := e.loadPrompt(driven.PromptExtractSystem, defaultSystemPrompt)
	user := e.loadPrompt(driven.PromptExtractUser, defaultUserPrompt)

	logger.Debug("sending %d chars to %s", len(cleaned), e.llm.ModelName())
	reply, err := e.llm.Chat(ctx, []driven.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: fmt.Sprintf(user, truncateRunes(cleaned, MaxPromptChars))},
	}, driven.ChatOptions{MaxTokens: MaxTokens, Temperature: Temperature})
	if err != nil {
		return nil, err
	}

	parsed, err := parseReply(reply)
	if err != nil {
		return nil, err
	}
	return postProcess(parsed), nil
}

func (e *Extractor) loadPrompt(name, fallback string) string {
	if e.prompts == nil {
		return fallback
	}
	p, err := e.prompts.Load(name)
	if err != nil || p == "" {
		return fallback
	}
	return p
}
