package driven

// ConfigStore holds settings addressed by dotted keys such as
// "submission.endpoint" or "llm.model".
//
// Typed getters return the zero value when a key is missing or holds a
// different type, so callers supply their own defaults.
type ConfigStore interface {
	Get(key string) (any, bool)
	GetString(key string) string
	// GetInt accepts any integer type and whole floats.
	GetInt(key string) int
	GetBool(key string) bool
	GetStringSlice(key string) []string

	// Set stores a value and persists it immediately.
	Set(key string, value any) error

	// Save persists the current values; Load replaces them from storage.
	Save() error
	Load() error

	// Keys lists every stored key in sorted order.
	Keys() []string

	// Path returns where the values are stored.
	Path() string
}
