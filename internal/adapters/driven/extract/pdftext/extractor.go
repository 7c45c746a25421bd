// Package pdftext converts PDF documents to plain text with the poppler
// pdftotext binary.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// ErrNoText is returned when pdftotext succeeds but the document has no text layer.
var ErrNoText = errors.New("pdf has no extractable text")

// Extractor runs pdftotext on a document.
type Extractor struct {
	binary string
	runner Runner
}

// New creates an extractor using the given pdftotext binary.
// A nil runner uses ExecRunner.
func New(binary string, runner Runner) *Extractor {
	if binary == "" {
		binary = domain.DefaultPdftotextPath
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Extractor{binary: binary, runner: runner}
}

// ExtractText returns the text of every page, separated by form feeds.
// In-memory documents are spooled to a temporary file first.
func (e *Extractor) ExtractText(ctx context.Context, doc *domain.Document) (string, error) {
	if !doc.Readable() {
		return "", domain.ErrMissingDocument
	}

	path := doc.Path
	if path == "" {
		tmp, cleanup, err := spool(doc)
		if err != nil {
			return "", err
		}
		defer cleanup()
		path = tmp
	}

	// pdftotext -layout -enc UTF-8 -eol unix <path> -
	out, errb, err := e.runner.Run(ctx, e.binary, "-layout", "-enc", "UTF-8", "-eol", "unix", path, "-")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		msg := strings.TrimSpace(string(errb))
		if msg == "" {
			return "", fmt.Errorf("%s: %w", e.binary, err)
		}
		return "", fmt.Errorf("%s: %w: %s", e.binary, err, msg)
	}

	text := string(out)
	if strings.TrimSpace(strings.ReplaceAll(text, "\f", "")) == "" {
		return "", ErrNoText
	}
	return text, nil
}

func spool(doc *domain.Document) (string, func(), error) {
	src, err := doc.Open()
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	f, err := os.CreateTemp("", "apply-cv-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("create temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	if _, err := io.Copy(f, src); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close temp file: %w", err)
	}
	return f.Name(), cleanup, nil
}
