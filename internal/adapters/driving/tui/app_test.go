package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/apply-cli/internal/adapters/driven/extract/stub"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apply-cli/internal/core/services"
)

const minimalPDF = "%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n"

func newTestApp(t *testing.T, submitter *fakeSubmitter, store *memory.SnapshotStore) *App {
	t.Helper()
	if store == nil {
		store = memory.NewSnapshotStore()
	}
	wizard := services.NewWizardController(context.Background(), store, stub.New(0), submitter, nil)
	app, err := NewApp(NewPorts(wizard, services.NewIntakeService(domain.DefaultMaxSizeBytes)))
	require.NoError(t, err)
	app.SetDimensions(120, 200)
	return app
}

func TestNewApp_SummaryShowsSettings(t *testing.T) {
	wizard := services.NewWizardController(context.Background(), memory.NewSnapshotStore(), stub.New(0), &fakeSubmitter{}, nil)
	config := memory.NewConfigStoreWith(map[string]any{
		"submission.endpoint": "https://relay.example.com",
		"submission.form_id":  "abc123",
		"extraction.mode":     "llm",
	})
	ports := NewPorts(wizard, services.NewIntakeService(domain.DefaultMaxSizeBytes))
	ports.Settings = services.NewSettingsService(config, nil)

	app, err := NewApp(ports)
	require.NoError(t, err)
	app.SetDimensions(120, 200)

	view := app.View()
	assert.Contains(t, view, "Submitting to: https://relay.example.com/f/abc123")
	assert.Contains(t, view, "CV extraction: LLM")
}

func TestNewApp_SummaryWithoutSettings(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)

	assert.Nil(t, app.summaryView.Setup())
	assert.NotContains(t, app.View(), "Submitting to")
}

// fixedSettings serves a fixed AppSettings or a read error.
type fixedSettings struct {
	driving.SettingsService
	settings domain.AppSettings
	err      error
}

func (f fixedSettings) Get() (*domain.AppSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.settings, nil
}

func TestSetupLines(t *testing.T) {
	t.Run("unconfigured submission", func(t *testing.T) {
		lines := setupLines(fixedSettings{settings: domain.AppSettings{
			Extraction: domain.ExtractionSettings{Mode: domain.ExtractionModeStub},
		}})

		require.Len(t, lines, 2)
		assert.Equal(t, "Submitting to: not configured (run 'apply settings wizard')", lines[0])
		assert.Equal(t, "CV extraction: Stub (fixed sample record)", lines[1])
	})

	t.Run("read error hides the lines", func(t *testing.T) {
		assert.Nil(t, setupLines(fixedSettings{err: errors.New("config unreadable")}))
	})

	t.Run("nil service", func(t *testing.T) {
		assert.Nil(t, setupLines(nil))
	})
}

// requestFrom runs cmd and returns the AdvanceRequested it produces.
func requestFrom(t *testing.T, cmd tea.Cmd) messages.AdvanceRequested {
	t.Helper()
	require.NotNil(t, cmd)
	req, ok := cmd().(messages.AdvanceRequested)
	require.True(t, ok, "expected AdvanceRequested")
	return req
}

// completion runs the command returned for an AdvanceRequested and returns the
// resulting AdvanceCompleted. Labelled requests are batched with a spinner tick.
func completion(t *testing.T, cmd tea.Cmd) messages.AdvanceCompleted {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case messages.AdvanceCompleted:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if done, ok := c().(messages.AdvanceCompleted); ok {
				return done
			}
		}
	}
	t.Fatal("no AdvanceCompleted produced")
	return messages.AdvanceCompleted{}
}

// step sends a key, follows the resulting request through the wizard and
// feeds the completion back to the app.
func step(t *testing.T, app *App, key tea.KeyMsg) messages.AdvanceCompleted {
	t.Helper()
	_, cmd := app.Update(key)
	req := requestFrom(t, cmd)
	_, cmd = app.Update(req)
	done := completion(t, cmd)
	app.Update(done)
	return done
}

func typeInto(app *App, text string) {
	app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(newTestPorts())

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewSummary, app.CurrentView())
	assert.False(t, app.Ready())
	assert.Equal(t, "", app.summaryView.ResumeNote())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{})

	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrMissingWizardController)

	app, err = NewApp(nil)
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrInvalidPorts)
}

func TestApp_WithContext(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)

	assert.NotNil(t, app.Init())
}

func TestApp_Update_WindowSize(t *testing.T) {
	app, err := NewApp(newTestPorts())
	require.NoError(t, err)
	assert.Equal(t, "Initialising...", app.View())

	_, cmd := app.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Nil(t, cmd)
	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.width)
	assert.Equal(t, 100, app.Status().Width())
	assert.Contains(t, app.View(), "Subwarden Application")
	assert.Contains(t, app.View(), "1 Application Summary")
}

func TestApp_FullWizard(t *testing.T) {
	submitter := &fakeSubmitter{}
	app := newTestApp(t, submitter, nil)
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte(minimalPDF), 0600))

	done := step(t, app, enter)
	require.NoError(t, done.Err)
	assert.Equal(t, messages.ViewUpload, app.CurrentView())

	typeInto(app, path)
	done = step(t, app, enter)
	require.NoError(t, done.Err)
	assert.Equal(t, messages.ViewReview, app.CurrentView())
	assert.Equal(t, status.StateReady, app.Status().State())
	assert.Contains(t, app.View(), "Extracted")

	// Student number is empty after extraction: move to it and fill it in.
	app.Update(tab)
	app.Update(tab)
	typeInto(app, "SMTJAN001")
	done = step(t, app, save)
	require.NoError(t, done.Err)
	assert.Equal(t, messages.ViewComplete, app.CurrentView())

	app.Update(space)
	done = step(t, app, enter)
	require.NoError(t, done.Err)
	assert.Equal(t, messages.ViewSuccess, app.CurrentView())
	assert.Contains(t, app.View(), "Application Submitted Successfully!")

	require.Len(t, submitter.records, 1)
	record := submitter.records[0]
	assert.Equal(t, "Extracted Name", record.DisplayName())
	assert.Equal(t, "SMTJAN001", record.StudentNumber)
	assert.True(t, record.TermsAccepted)
	require.NotNil(t, record.CV)
	assert.Equal(t, "resume.pdf", record.CV.Name)
}

func TestApp_SubmissionFailure_StaysOnComplete(t *testing.T) {
	submitter := &fakeSubmitter{err: errors.New("relay returned 502")}
	app := newTestApp(t, submitter, nil)
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte(minimalPDF), 0600))

	step(t, app, enter)
	typeInto(app, path)
	step(t, app, enter)
	app.Update(tab)
	app.Update(tab)
	typeInto(app, "SMTJAN001")
	step(t, app, save)
	app.Update(space)

	done := step(t, app, enter)

	assert.ErrorIs(t, done.Err, domain.ErrSubmissionFailed)
	assert.Equal(t, messages.ViewComplete, app.CurrentView())
	assert.ErrorIs(t, app.Err(), domain.ErrSubmissionFailed)
	assert.Equal(t, status.StateError, app.Status().State())
	assert.Contains(t, app.View(), "Failed to submit application. Please try again.")
	assert.True(t, app.completeView.CanSubmit(), "resubmission is possible")
}

func TestApp_Upload_RejectedFileShowsToast(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)
	step(t, app, enter)
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0600))
	typeInto(app, path)

	_, cmd := app.Update(enter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.ErrorOccurred)
	require.True(t, ok)
	app.Update(msg)

	assert.Equal(t, messages.ViewUpload, app.CurrentView())
	assert.Equal(t, status.StateError, app.Status().State())
	assert.Equal(t, "Please select a PDF document", app.Status().Message())
}

func TestApp_AdvanceMismatchedPayload(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)

	_, cmd := app.Update(messages.AdvanceRequested{Payload: driving.CompletePayload{TermsAccepted: true}})
	done := completion(t, cmd)
	app.Update(done)

	assert.ErrorIs(t, done.Err, domain.ErrUnexpectedPayload)
	assert.Equal(t, messages.ViewSummary, app.CurrentView())
}

func TestApp_RestoredSession(t *testing.T) {
	store := memory.NewSnapshotStore()
	cv := "resume.pdf"
	require.NoError(t, store.Save(context.Background(), &domain.PersistedSnapshot{
		ApplicationData: &domain.ApplicationRecord{Name: "Jane", Surname: "Doe"},
		Documents:       domain.DocumentNames{CV: &cv},
	}))

	app := newTestApp(t, &fakeSubmitter{}, store)

	assert.Equal(t, messages.ViewSummary, app.CurrentView())
	note := app.summaryView.ResumeNote()
	assert.Contains(t, note, "Jane Doe")
	assert.Contains(t, note, "CV: resume.pdf")

	step(t, app, enter)
	assert.Contains(t, app.View(), "Previously selected: resume.pdf")
}

func TestApp_ClearSession(t *testing.T) {
	store := memory.NewSnapshotStore()
	cv := "resume.pdf"
	require.NoError(t, store.Save(context.Background(), &domain.PersistedSnapshot{
		Documents: domain.DocumentNames{CV: &cv},
	}))
	app := newTestApp(t, &fakeSubmitter{}, store)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	_, cmd = app.Update(cmd())
	require.NotNil(t, cmd)
	cleared, ok := cmd().(messages.SessionCleared)
	require.True(t, ok)
	app.Update(cleared)

	assert.NoError(t, cleared.Err)
	assert.Equal(t, "", app.summaryView.ResumeNote())
	assert.Equal(t, "Saved session cleared", app.Status().Message())
	assert.Nil(t, store.Raw())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)
	err := errors.New("something broke")

	_, cmd := app.Update(messages.ErrorOccurred{Err: err})

	assert.NotNil(t, cmd)
	assert.Equal(t, err, app.Err())
	assert.Contains(t, app.View(), "Error: something broke")

	app.Update(messages.ToastExpired{Seq: 1})
	assert.Equal(t, status.StateReady, app.Status().State())
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)
	question := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}

	app.Update(question)
	assert.True(t, app.ShowingHelp())
	assert.Contains(t, app.View(), "clear saved session")

	app.Update(question)
	assert.False(t, app.ShowingHelp())

	step(t, app, enter)
	app.Update(question)
	assert.False(t, app.ShowingHelp(), "? is typed into the upload field")
	assert.Equal(t, "?", app.uploadView.Path())
}

func TestApp_Update_CtrlC(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_Update_Quit(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_ViewChanged(t *testing.T) {
	app := newTestApp(t, &fakeSubmitter{}, nil)

	app.Update(messages.ViewChanged{View: messages.ViewSuccess})

	assert.Equal(t, messages.ViewSuccess, app.CurrentView())
	assert.NotContains(t, app.View(), "1 Application Summary")
}
