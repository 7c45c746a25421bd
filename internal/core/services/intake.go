package services

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure IntakeService implements the interface.
var _ driving.IntakeService = (*IntakeService)(nil)

// IntakeService validates files offered to the upload step.
// Files are sniffed by content, not by extension.
type IntakeService struct {
	maxSize int64
}

// NewIntakeService creates an intake service. A maxSize of zero disables the size check.
func NewIntakeService(maxSize int64) *IntakeService {
	if maxSize < 0 {
		maxSize = 0
	}
	return &IntakeService{maxSize: maxSize}
}

// MaxSize returns the configured size limit in bytes.
func (s *IntakeService) MaxSize() int64 {
	return s.maxSize
}

// Open validates the file at path and returns a document handle.
func (s *IntakeService) Open(path string, origin domain.IntakeOrigin) (*domain.Document, error) {
	if origin == domain.OriginDrop {
		path = NormaliseDroppedPath(path)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("%w: no file selected", domain.ErrInvalidInput)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", domain.ErrInvalidInput, path)
	}
	if s.maxSize > 0 && info.Size() > s.maxSize {
		logger.Debug("Rejected %s from %s: %d bytes", path, origin, info.Size())
		return nil, fmt.Errorf("%w: %s is %s, limit is %s",
			domain.ErrFileTooLarge, info.Name(), formatSize(info.Size()), formatSize(s.maxSize))
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("detect type of %s: %w", path, err)
	}
	if !mtype.Is(domain.MIMETypePDF) {
		logger.Debug("Rejected %s from %s: detected %s", path, origin, mtype.String())
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrNotPDF, info.Name(), mtype.String())
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	logger.Debug("Accepted %s from %s (%d bytes)", abs, origin, info.Size())
	return &domain.Document{
		Name:     info.Name(),
		Path:     abs,
		MIMEType: domain.MIMETypePDF,
		Size:     info.Size(),
	}, nil
}

// NormaliseDroppedPath turns text pasted by dragging a file onto a terminal
// into a plain path. Terminals quote the path, escape spaces with backslashes
// or paste a file:// URL depending on the platform.
func NormaliseDroppedPath(raw string) string {
	p := strings.TrimSpace(raw)

	if len(p) >= 2 {
		first, last := p[0], p[len(p)-1]
		if (first == '\'' || first == '"') && first == last {
			return p[1 : len(p)-1]
		}
	}

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			return u.Path
		}
	}

	if !strings.Contains(p, `\`) || filepath.Separator == '\\' {
		return p
	}
	var b strings.Builder
	escaped := false
	for _, r := range p {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

func formatSize(n int64) string {
	const mib = 1 << 20
	if n >= mib {
		return fmt.Sprintf("%.1f MB", float64(n)/mib)
	}
	return fmt.Sprintf("%d KB", (n+1023)/1024)
}
