package domain

import "time"

// ExtractionMode selects how fields are extracted from an uploaded CV.
type ExtractionMode string

// Available extraction modes.
const (
	// ExtractionModeStub returns a fixed record after a delay, regardless of the file.
	ExtractionModeStub ExtractionMode = "stub"

	// ExtractionModeLLM extracts text with pdftotext and structures it with a local LLM.
	ExtractionModeLLM ExtractionMode = "llm"
)

// IsValid returns true if the extraction mode is recognised.
func (m ExtractionMode) IsValid() bool {
	return m == ExtractionModeStub || m == ExtractionModeLLM
}

// String returns the string representation.
func (m ExtractionMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ExtractionMode) Description() string {
	switch m {
	case ExtractionModeStub:
		return "Stub (fixed sample record)"
	case ExtractionModeLLM:
		return "LLM (pdftotext + Ollama)"
	default:
		return unknownDescription
	}
}

// StorageBackend selects where the session snapshot is persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageBackendFile stores the snapshot as a JSON file.
	StorageBackendFile StorageBackend = "file"

	// StorageBackendSQLite stores the snapshot in the SQLite database.
	StorageBackendSQLite StorageBackend = "sqlite"
)

// IsValid returns true if the storage backend is recognised.
func (b StorageBackend) IsValid() bool {
	return b == StorageBackendFile || b == StorageBackendSQLite
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// SubmissionSettings configures the form-relay endpoint.
type SubmissionSettings struct {
	// Endpoint is the form-relay base URL.
	Endpoint string

	// FormID identifies the form on the relay service.
	FormID string
}

// URL returns the full submission URL.
func (s SubmissionSettings) URL() string {
	return s.Endpoint + "/f/" + s.FormID
}

// IsConfigured returns true if both endpoint and form ID are set.
func (s SubmissionSettings) IsConfigured() bool {
	return s.Endpoint != "" && s.FormID != ""
}

// ExtractionSettings configures field extraction.
type ExtractionSettings struct {
	// Mode selects stub or LLM extraction.
	Mode ExtractionMode

	// Delay is the simulated processing time of the stub.
	Delay time.Duration

	// PdftotextPath is the pdftotext binary used by LLM extraction.
	PdftotextPath string
}

// LLMSettings configures the local LLM used for extraction.
type LLMSettings struct {
	// BaseURL is the Ollama API endpoint.
	BaseURL string

	// Model is the LLM model name.
	Model string
}

// IsConfigured returns true if both base URL and model are set.
func (s LLMSettings) IsConfigured() bool {
	return s.BaseURL != "" && s.Model != ""
}

// IntakeSettings configures document intake.
type IntakeSettings struct {
	// MaxSizeBytes is the largest accepted file. Zero disables the check.
	MaxSizeBytes int64
}

// StorageSettings configures session persistence.
type StorageSettings struct {
	// Backend selects the snapshot store.
	Backend StorageBackend
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Submission SubmissionSettings
	Extraction ExtractionSettings
	LLM        LLMSettings
	Intake     IntakeSettings
	Storage    StorageSettings
}

// Default configuration values.
const (
	DefaultSubmissionEndpoint = "https://formspree.io"
	DefaultFormID             = "xjkerjkb"
	DefaultExtractionDelay    = time.Second
	DefaultPdftotextPath      = "pdftotext"
	DefaultLLMBaseURL         = "http://localhost:11434"
	DefaultLLMModel           = "llama3.2"
	DefaultMaxSizeBytes       = 5 << 20
)

// DefaultAppSettings returns the default application settings.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Submission: SubmissionSettings{
			Endpoint: DefaultSubmissionEndpoint,
			FormID:   DefaultFormID,
		},
		Extraction: ExtractionSettings{
			Mode:          ExtractionModeStub,
			Delay:         DefaultExtractionDelay,
			PdftotextPath: DefaultPdftotextPath,
		},
		LLM: LLMSettings{
			BaseURL: DefaultLLMBaseURL,
			Model:   DefaultLLMModel,
		},
		Intake: IntakeSettings{
			MaxSizeBytes: DefaultMaxSizeBytes,
		},
		Storage: StorageSettings{
			Backend: StorageBackendFile,
		},
	}
}
