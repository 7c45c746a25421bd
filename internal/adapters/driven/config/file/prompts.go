package file

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

var _ driven.PromptStore = (*PromptStore)(nil)

//go:embed defaults/*.txt defaults/README.md
var defaultFiles embed.FS

// defaultPrompts maps prompt names to the built-in templates.
var defaultPrompts = loadDefaults()

func loadDefaults() map[string]string {
	out := make(map[string]string)
	for _, name := range []string{driven.PromptExtractSystem, driven.PromptExtractUser} {
		data, err := defaultFiles.ReadFile("defaults/" + name + ".txt")
		if err != nil {
			panic(fmt.Sprintf("missing built-in prompt %s: %v", name, err))
		}
		out[name] = strings.TrimSpace(string(data))
	}
	return out
}

// PromptStore serves the extraction prompts from <dir>/<name>.txt so users
// can tune them. Missing or unreadable files fall back to the built-in text.
//
// Nothing touches the disk until the first Load, which seeds the directory
// with the defaults and a README without overwriting existing files.
type PromptStore struct {
	dir string

	seedOnce sync.Once
	seedErr  error

	mu    sync.Mutex
	cache map[string]string
}

// NewPromptStore returns a store rooted at dir, or ~/.apply/prompts when dir
// is empty.
func NewPromptStore(dir string) (*PromptStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		dir = filepath.Join(home, ".apply", "prompts")
	}
	return &PromptStore{dir: dir, cache: make(map[string]string)}, nil
}

// Load returns the named template, reading it from disk the first time.
func (s *PromptStore) Load(name string) (string, error) {
	fallback, known := defaultPrompts[name]

	s.seedOnce.Do(func() { s.seedErr = s.seed() })
	if s.seedErr != nil {
		if known {
			return fallback, nil
		}
		return "", fmt.Errorf("prompt store unavailable: %w", s.seedErr)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if prompt, ok := s.cache[name]; ok {
		return prompt, nil
	}

	data, err := os.ReadFile(filepath.Join(s.dir, name+".txt"))
	if err != nil {
		if known {
			return fallback, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	prompt := strings.TrimSpace(string(data))
	s.cache[name] = prompt
	return prompt, nil
}

// Reload drops cached templates so edited files are picked up.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory.
func (s *PromptStore) Dir() string {
	return s.dir
}

// seed creates the directory and writes any default file that is missing.
func (s *PromptStore) seed() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("create prompt directory: %w", err)
	}

	entries, err := fs.ReadDir(defaultFiles, "defaults")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		target := filepath.Join(s.dir, entry.Name())
		if _, err := os.Stat(target); !errors.Is(err, fs.ErrNotExist) {
			continue
		}
		content, err := defaultFiles.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0600); err != nil {
			return fmt.Errorf("write %s: %w", entry.Name(), err)
		}
	}
	return nil
}
