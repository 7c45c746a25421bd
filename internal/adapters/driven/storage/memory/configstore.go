package memory

import (
	"sort"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map. It mirrors the TOML store's typing:
// integers read back through GetInt whatever their Go type, and writes can be
// made to fail to exercise the settings service's error paths.
type ConfigStore struct {
	mu       sync.RWMutex
	values   map[string]any
	writeErr error
}

// NewConfigStore creates an empty in-memory config store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values: make(map[string]any),
	}
}

// NewConfigStoreWith creates a store seeded with values, keyed in dot notation.
func NewConfigStoreWith(values map[string]any) *ConfigStore {
	s := NewConfigStore()
	for k, v := range values {
		s.values[k] = v
	}
	return s
}

// FailWrites makes every later Set and Save return err. A nil err restores writes.
func (s *ConfigStore) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, _ := s.Get(key)
	str, _ := val.(string)
	return str
}

// GetInt retrieves an integer configuration value.
// Fractional floats read as 0, as they do from the TOML store.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}
	switch v := val.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return 0
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, _ := s.Get(key)
	b, _ := val.(bool)
	return b
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Set stores a configuration value.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return s.writeErr
	}
	s.values[key] = value
	return nil
}

// Save is a no-op unless writes have been made to fail.
func (s *ConfigStore) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writeErr
}

// Load is a no-op.
func (s *ConfigStore) Load() error {
	return nil
}

// Keys returns the stored keys in sorted order.
func (s *ConfigStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Path returns a placeholder, there is no backing file.
func (s *ConfigStore) Path() string {
	return ":memory:"
}
