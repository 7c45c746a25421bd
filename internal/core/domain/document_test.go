package domain

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Open_InMemory(t *testing.T) {
	doc := &Document{Name: "cv.pdf", Content: []byte("%PDF-1.4")}

	rc, err := doc.Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestDocument_Open_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0600))

	rc, err := (&Document{Name: "cv.pdf", Path: path}).Open()
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
}

func TestDocument_Open_Missing(t *testing.T) {
	_, err := (*Document)(nil).Open()
	assert.ErrorIs(t, err, ErrMissingDocument)

	_, err = (&Document{Name: "restored.pdf"}).Open()
	assert.ErrorIs(t, err, ErrMissingDocument)
}

func TestDocument_Readable(t *testing.T) {
	assert.True(t, (&Document{Path: "/tmp/cv.pdf"}).Readable())
	assert.True(t, (&Document{Content: []byte{}}).Readable())
	assert.False(t, (&Document{Name: "restored.pdf"}).Readable())
	assert.False(t, (*Document)(nil).Readable())
}
