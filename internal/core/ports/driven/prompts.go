package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations return the built-in default
	// or an error when no default exists.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names.
const (
	// PromptExtractSystem is the system prompt for CV extraction.
	// This prompt has no format placeholders.
	PromptExtractSystem = "extract_system"

	// PromptExtractUser asks for the structured fields of a CV.
	// The prompt template expects a %s placeholder for the CV text.
	PromptExtractUser = "extract_user"
)

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service uses its built-in prompts.
	SetPromptStore(store PromptStore)
}
