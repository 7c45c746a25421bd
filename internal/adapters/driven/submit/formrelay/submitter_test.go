package formrelay

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

type received struct {
	path   string
	accept string
	values map[string][]string
	files  map[string][]byte
	names  map[string]string
	types  map[string]string
}

func relayServer(t *testing.T, status int, body string) (*httptest.Server, *received) {
	t.Helper()
	got := &received{files: map[string][]byte{}, names: map[string]string{}, types: map[string]string{}}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.path = r.URL.Path
		got.accept = r.Header.Get("Accept")
		if !assert.NoError(t, r.ParseMultipartForm(10<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		got.values = r.MultipartForm.Value
		for field, headers := range r.MultipartForm.File {
			f, err := headers[0].Open()
			if !assert.NoError(t, err) {
				continue
			}
			data, _ := io.ReadAll(f)
			_ = f.Close()
			got.files[field] = data
			got.names[field] = headers[0].Filename
			got.types[field] = headers[0].Header.Get("Content-Type")
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, got
}

func record() domain.ApplicationRecord {
	other := "Chess Club Chair"
	return domain.ApplicationRecord{
		Name:            "Jane",
		Surname:         "van der Berg",
		StudentNumber:   "VBRJAN001",
		LeadershipRoles: []string{"Sub Warden", "Tutor", "Chess Club Chair"},
		OtherRole:       &other,
		TermsAccepted:   true,
		CV: &domain.Document{
			Name:     "jane-cv.pdf",
			MIMEType: domain.MIMETypePDF,
			Content:  []byte("%PDF-1.4 jane"),
		},
	}
}

func TestSubmit_Success(t *testing.T) {
	server, got := relayServer(t, http.StatusOK, `{"ok":true}`)
	s := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "xjkerjkb"}, nil)

	err := s.Submit(context.Background(), record())

	require.NoError(t, err)
	assert.Equal(t, "/f/xjkerjkb", got.path)
	assert.Equal(t, "application/json", got.accept)
	assert.Equal(t, []string{"Jane van der Berg"}, got.values["name"])
	assert.Equal(t, []string{"VBRJAN001"}, got.values["student_number"])
	assert.Equal(t, []string{"Sub Warden, Tutor, Chess Club Chair"}, got.values["leadership_roles"])
	assert.Equal(t, []string{"Chess Club Chair"}, got.values["other_role"])
	assert.Equal(t, []byte("%PDF-1.4 jane"), got.files["cv"])
	assert.Equal(t, "jane-cv.pdf", got.names["cv"])
	assert.Equal(t, "application/pdf", got.types["cv"])
}

func TestSubmit_FromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7 disk"), 0600))
	server, got := relayServer(t, http.StatusOK, "")

	rec := record()
	rec.CV = &domain.Document{Name: "cv.pdf", Path: path}
	err := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "f"}, nil).Submit(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 disk"), got.files["cv"])
	assert.Equal(t, "application/pdf", got.types["cv"])
}

func TestSubmit_OptionalFieldsOmitted(t *testing.T) {
	server, got := relayServer(t, http.StatusOK, "")

	rec := record()
	rec.LeadershipRoles = nil
	rec.OtherRole = nil
	rec.CV = &domain.Document{Name: "restored.pdf"}
	err := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "f"}, nil).Submit(context.Background(), rec)

	require.NoError(t, err)
	assert.NotContains(t, got.values, "leadership_roles")
	assert.NotContains(t, got.values, "other_role")
	assert.NotContains(t, got.files, "cv")
}

func TestSubmit_Rejected(t *testing.T) {
	server, _ := relayServer(t, http.StatusUnprocessableEntity, `{"error":"form not found","secret":"x"}`)

	err := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "f"}, nil).Submit(context.Background(), record())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmissionRejected)
	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusUnprocessableEntity, rejected.StatusCode)
	assert.NotContains(t, err.Error(), "form not found")
}

func TestSubmit_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	err := New(domain.SubmissionSettings{Endpoint: url, FormID: "f"}, nil).Submit(context.Background(), record())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSubmissionRejected)
}

func TestSubmit_ContextCancelled(t *testing.T) {
	server, _ := relayServer(t, http.StatusOK, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "f"}, nil).Submit(ctx, record())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSubmit_SingleAttempt(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := New(domain.SubmissionSettings{Endpoint: server.URL, FormID: "f"}, nil).Submit(context.Background(), record())

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestNew_URL(t *testing.T) {
	s := New(domain.SubmissionSettings{Endpoint: "https://formspree.io/", FormID: "xjkerjkb"}, nil)

	assert.Equal(t, "https://formspree.io/f/xjkerjkb", s.URL())
	assert.Zero(t, s.client.Timeout)
}

func TestSubmit_UnreadableDocument(t *testing.T) {
	rec := record()
	rec.CV = &domain.Document{Name: "gone.pdf", Path: filepath.Join(t.TempDir(), "gone.pdf")}

	err := New(domain.SubmissionSettings{Endpoint: "http://127.0.0.1:1", FormID: "f"}, nil).Submit(context.Background(), rec)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gone.pdf")
}
