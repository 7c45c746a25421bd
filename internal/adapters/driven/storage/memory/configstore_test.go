package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("submission.form_id", "abc123"))
	require.NoError(t, store.Set("submission.form_id", "xyz"))

	val, ok := store.Get("submission.form_id")
	assert.True(t, ok)
	assert.Equal(t, "xyz", val)
	assert.Equal(t, "xyz", store.GetString("submission.form_id"))
}

func TestConfigStore_Missing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("llm.model")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("llm.model"))
	assert.Equal(t, 0, store.GetInt("llm.model"))
	assert.False(t, store.GetBool("llm.model"))
	assert.Nil(t, store.GetStringSlice("llm.model"))
}

func TestConfigStore_GetInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int
	}{
		{"int", 250, 250},
		{"int32", int32(7), 7},
		{"int64 as decoded from TOML", int64(5242880), 5242880},
		{"whole float", float64(1000), 1000},
		{"fractional float", 2.5, 0},
		{"string", "250", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStoreWith(map[string]any{"extraction.delay_ms": tt.value})
			assert.Equal(t, tt.want, store.GetInt("extraction.delay_ms"))
		})
	}
}

func TestConfigStore_GetBoolAndSlice(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"debug":        true,
		"intake.types": []any{"application/pdf", 1, "application/x-pdf"},
		"roles":        []string{"Sub Warden"},
		"mode":         "llm",
	})

	assert.True(t, store.GetBool("debug"))
	assert.False(t, store.GetBool("mode"))
	assert.Equal(t, []string{"application/pdf", "application/x-pdf"}, store.GetStringSlice("intake.types"))
	assert.Equal(t, []string{"Sub Warden"}, store.GetStringSlice("roles"))
	assert.Nil(t, store.GetStringSlice("mode"))
}

func TestConfigStore_FailWrites(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{"llm.model": "llama3.2"})
	diskFull := errors.New("disk full")

	store.FailWrites(diskFull)

	assert.ErrorIs(t, store.Set("llm.model", "qwen2.5"), diskFull)
	assert.ErrorIs(t, store.Save(), diskFull)
	assert.Equal(t, "llama3.2", store.GetString("llm.model"))

	store.FailWrites(nil)
	require.NoError(t, store.Set("llm.model", "qwen2.5"))
	assert.NoError(t, store.Save())
	assert.Equal(t, "qwen2.5", store.GetString("llm.model"))
}

func TestConfigStore_KeysAndPath(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"storage.backend":     "file",
		"extraction.mode":     "stub",
		"submission.endpoint": "https://formspree.io",
	})

	assert.Equal(t, []string{"extraction.mode", "storage.backend", "submission.endpoint"}, store.Keys())
	assert.Equal(t, ":memory:", store.Path())
	assert.NoError(t, store.Load())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Set("extraction.delay_ms", i)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("extraction.delay_ms")
			_ = store.Keys()
		}()
	}
	wg.Wait()

	_, ok := store.Get("extraction.delay_ms")
	assert.True(t, ok)
}
