package domain

import (
	"bytes"
	"io"
	"os"
)

// MIMETypePDF is the only MIME type accepted by document intake.
const MIMETypePDF = "application/pdf"

// IntakeOrigin identifies how a file reached document intake.
type IntakeOrigin string

// Available intake origins.
const (
	// OriginPicker is a path typed or chosen by the applicant.
	OriginPicker IntakeOrigin = "picker"

	// OriginDrop is a path pasted into the terminal by dragging a file onto it.
	OriginDrop IntakeOrigin = "drop"
)

// Document is a handle to an uploaded file.
// Only Name is ever persisted; the bytes stay where they are.
type Document struct {
	// Name is the display name (base file name).
	Name string

	// Path is the location on disk. Empty for in-memory documents.
	Path string

	// MIMEType is the detected content type.
	MIMEType string

	// Size is the file size in bytes.
	Size int64

	// Content holds the bytes for documents that do not live on disk.
	Content []byte
}

// Open returns a reader for the document contents.
func (d *Document) Open() (io.ReadCloser, error) {
	if d == nil {
		return nil, ErrMissingDocument
	}
	if d.Content != nil {
		return io.NopCloser(bytes.NewReader(d.Content)), nil
	}
	if d.Path == "" {
		return nil, ErrMissingDocument
	}
	return os.Open(d.Path)
}

// Readable reports whether the document still has contents to open.
// Documents restored from a snapshot only carry a name.
func (d *Document) Readable() bool {
	return d != nil && (d.Content != nil || d.Path != "")
}

// NamePtr returns a pointer to the document name, or nil for a nil document.
func (d *Document) NamePtr() *string {
	if d == nil {
		return nil
	}
	name := d.Name
	return &name
}
