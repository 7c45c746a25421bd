// Package formrelay submits applications to a hosted form-relay service
// (Formspree-compatible) as a multipart POST.
package formrelay

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure Submitter implements the interface.
var _ driven.Submitter = (*Submitter)(nil)

// ErrSubmissionRejected is returned when the endpoint answers with a non-2xx status.
var ErrSubmissionRejected = errors.New("form relay rejected submission")

// RejectedError carries the status code of a rejected submission.
// The response body is deliberately discarded.
type RejectedError struct {
	StatusCode int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrSubmissionRejected, e.StatusCode)
}

// Unwrap returns ErrSubmissionRejected.
func (e *RejectedError) Unwrap() error {
	return ErrSubmissionRejected
}

// Form field names.
const (
	fieldName            = "name"
	fieldStudentNumber   = "student_number"
	fieldLeadershipRoles = "leadership_roles"
	fieldOtherRole       = "other_role"
	fieldCV              = "cv"
)

// Submitter posts applications to <endpoint>/f/<form-id>.
type Submitter struct {
	client *http.Client
	url    string
}

// New creates a submitter for the given settings.
// The client has no timeout; callers bound a submission with ctx.
func New(settings domain.SubmissionSettings, client *http.Client) *Submitter {
	if client == nil {
		client = &http.Client{}
	}
	return &Submitter{
		client: client,
		url:    strings.TrimRight(settings.Endpoint, "/") + "/f/" + settings.FormID,
	}
}

// URL returns the submission URL.
func (s *Submitter) URL() string {
	return s.url
}

// Submit sends the record in a single request. There is no retry.
func (s *Submitter) Submit(ctx context.Context, record domain.ApplicationRecord) error {
	body, contentType, err := encode(record)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	logger.Debug("submitting application to %s", s.url)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{StatusCode: resp.StatusCode}
	}
	return nil
}

// encode builds the multipart body. The CV part is included when the
// document is readable.
func encode(record domain.ApplicationRecord) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{fieldName, record.DisplayName()},
		{fieldStudentNumber, record.StudentNumber},
	}
	if len(record.LeadershipRoles) > 0 {
		fields = append(fields, [2]string{fieldLeadershipRoles, strings.Join(record.LeadershipRoles, ", ")})
	}
	if record.OtherRole != nil && *record.OtherRole != "" {
		fields = append(fields, [2]string{fieldOtherRole, *record.OtherRole})
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f[0], err)
		}
	}

	if record.CV.Readable() {
		if err := writeDocument(w, record.CV); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}

func writeDocument(w *multipart.Writer, doc *domain.Document) error {
	src, err := doc.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", doc.Name, err)
	}
	defer src.Close()

	contentType := doc.MIMEType
	if contentType == "" {
		contentType = domain.MIMETypePDF
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldCV, doc.Name))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create cv part: %w", err)
	}
	if _, err := io.Copy(part, src); err != nil {
		return fmt.Errorf("copy %s: %w", doc.Name, err)
	}
	return nil
}
