package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture redirects logging into a buffer for the duration of the test.
func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetTimestamps(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_Verbose(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want string
	}{
		{"debug", func() { Debug("extracting fields from %s", "cv.pdf") }, "[DEBUG] extracting fields from cv.pdf\n"},
		{"info", func() { Info("wizard at %s step", "upload") }, "[INFO] wizard at upload step\n"},
		{"warn", func() { Warn("llm unavailable") }, "[WARN] llm unavailable\n"},
		{"error", func() { Error("submission failed: status %d", 502) }, "[ERROR] submission failed: status 502\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_Quiet(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Section("Hidden")
	Warn("snapshot save failed: %s", "disk full")
	Error("boom")

	assert.Equal(t, "[WARN] snapshot save failed: disk full\n[ERROR] boom\n", buf.String())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)

	Section("Bootstrap")

	assert.Equal(t, "\n=== Bootstrap ===\n", buf.String())
}

func TestSetTimestamps(t *testing.T) {
	buf := capture(t, false)
	SetTimestamps(true)

	Warn("saved")

	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}[-+Z][0-9:]* \[WARN\] saved\n$`, buf.String())
}

func TestSync(t *testing.T) {
	capture(t, true)
	assert.NotPanics(t, Sync)
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			SetVerbose(i%2 == 0)
			Debug("concurrent %d", i)
			Warn("concurrent %d", i)
			IsVerbose()
		}(i)
	}
	wg.Wait()
}
