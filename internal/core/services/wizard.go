package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// Ensure WizardController implements the interface.
var _ driving.WizardController = (*WizardController)(nil)

// WizardController owns the state of one wizard session and sequences its steps.
// Extraction and submission run without holding the state lock; the processing
// flag rejects any other transition while they are in flight.
type WizardController struct {
	mu    sync.Mutex
	state domain.WizardState

	store     driven.SnapshotStore
	extractor driven.Extractor
	submitter driven.Submitter
	history   driving.HistoryService

	lastReference string
}

// NewWizardController creates a controller and restores the persisted session.
// A corrupt or unreadable snapshot is logged and treated as no prior session.
// history may be nil.
func NewWizardController(
	ctx context.Context,
	store driven.SnapshotStore,
	extractor driven.Extractor,
	submitter driven.Submitter,
	history driving.HistoryService,
) *WizardController {
	w := &WizardController{
		store:     store,
		extractor: extractor,
		submitter: submitter,
		history:   history,
	}
	w.restore(ctx)
	return w
}

func (w *WizardController) restore(ctx context.Context) {
	snapshot, err := w.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotCorrupt) {
			logger.Warn("Ignoring corrupt session snapshot: %v", err)
		} else {
			logger.Warn("Failed to load session snapshot: %v", err)
		}
		return
	}
	if snapshot.IsEmpty() {
		return
	}

	w.state.ExtractedData = snapshot.ExtractedData.Clone()
	if snapshot.ApplicationData != nil {
		app := snapshot.ApplicationData.Clone()
		w.state.ApplicationData = &app
	}
	// Only names survive a restart. The file must be selected again to submit.
	if snapshot.Documents.CV != nil {
		w.state.Documents.CV = &domain.Document{Name: *snapshot.Documents.CV}
	}
	if snapshot.Documents.Motivation != nil {
		w.state.Documents.Motivation = &domain.Document{Name: *snapshot.Documents.Motivation}
	}
	logger.Debug("Restored session snapshot (cv=%v)", snapshot.Documents.CV != nil)
}

// Advance completes the current step with its payload.
func (w *WizardController) Advance(ctx context.Context, payload driving.StepPayload) error {
	if payload == nil {
		return fmt.Errorf("%w: nil payload", domain.ErrUnexpectedPayload)
	}

	w.mu.Lock()
	if err := w.checkAdvanceLocked(payload); err != nil {
		w.mu.Unlock()
		return err
	}

	switch p := payload.(type) {
	case driving.AcknowledgePayload:
		w.state.CurrentStep = domain.StepUpload
		w.mu.Unlock()
		logger.Debug("Wizard advanced to %s", domain.StepUpload)
		return nil
	case driving.UploadPayload:
		return w.upload(ctx, p)
	case driving.ReviewPayload:
		defer w.mu.Unlock()
		return w.reviewLocked(ctx, p)
	case driving.CompletePayload:
		return w.complete(ctx, p)
	default:
		w.mu.Unlock()
		return fmt.Errorf("%w: %T", domain.ErrUnexpectedPayload, payload)
	}
}

func (w *WizardController) checkAdvanceLocked(payload driving.StepPayload) error {
	if w.state.Submitted {
		return domain.ErrAlreadySubmitted
	}
	if w.state.Processing {
		return domain.ErrBusy
	}
	if payload.CompletesStep() != w.state.CurrentStep {
		return fmt.Errorf("%w: %s payload on %s step",
			domain.ErrUnexpectedPayload, payload.CompletesStep(), w.state.CurrentStep)
	}
	return nil
}

// upload runs extraction and seeds name and surname from the extracted full name.
// Called with w.mu held; releases it while extracting.
func (w *WizardController) upload(ctx context.Context, p driving.UploadPayload) error {
	if p.Document == nil {
		w.mu.Unlock()
		return domain.ErrMissingDocument
	}
	w.state.Processing = true
	w.mu.Unlock()

	logger.Debug("Extracting fields from %s", p.Document.Name)
	record, err := w.extractor.Extract(ctx, p.Document)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Processing = false

	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
	}
	if record == nil {
		return fmt.Errorf("%w: extractor returned no record", domain.ErrExtractionFailed)
	}

	name, surname := domain.SplitFullName(record.FullName)
	app := w.accumulatedLocked().Merge(domain.ApplicationPatch{
		Name:    &name,
		Surname: &surname,
		CV:      p.Document,
	})

	w.state.ExtractedData = record.Clone()
	w.state.ApplicationData = &app
	w.state.Documents.CV = p.Document
	w.state.CurrentStep = domain.StepReview
	w.saveLocked(ctx)

	logger.Debug("Wizard advanced to %s", domain.StepReview)
	return nil
}

// reviewLocked merges the edited fields. Called with w.mu held.
func (w *WizardController) reviewLocked(ctx context.Context, p driving.ReviewPayload) error {
	app := w.accumulatedLocked().Merge(p.ApplicationPatch)
	if p.FullName == nil {
		app.FullName = ""
	}

	if missing := app.MissingFields(); len(missing) > 0 {
		return missing[0]
	}

	w.state.ApplicationData = &app
	w.state.CurrentStep = domain.StepComplete
	w.saveLocked(ctx)

	logger.Debug("Wizard advanced to %s", domain.StepComplete)
	return nil
}

// complete builds the final record and submits it.
// Called with w.mu held; releases it while submitting.
func (w *WizardController) complete(ctx context.Context, p driving.CompletePayload) error {
	accepted := p.TermsAccepted
	final := w.accumulatedLocked().Merge(domain.ApplicationPatch{TermsAccepted: &accepted})
	if final.CV == nil {
		final.CV = w.state.Documents.CV
	}

	if !final.TermsAccepted {
		w.mu.Unlock()
		return domain.ErrTermsNotAccepted
	}
	if !final.CV.Readable() {
		w.mu.Unlock()
		return domain.ErrMissingDocument
	}

	w.state.Processing = true
	w.mu.Unlock()

	logger.Debug("Submitting application for %s", final.DisplayName())
	err := w.submitter.Submit(ctx, final)

	w.mu.Lock()
	w.state.Processing = false
	if err != nil {
		w.mu.Unlock()
		logger.Warn("Submission failed: %v", err)
		return fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	w.state.ApplicationData = &final
	w.state.Submitted = true
	w.state.CurrentStep = domain.StepSuccess
	w.saveLocked(ctx)
	w.mu.Unlock()

	logger.Info("Application submitted for %s", final.DisplayName())
	w.recordHistory(ctx, final)
	return nil
}

// recordHistory stores a history entry. Failures are logged only:
// the application has already been accepted.
func (w *WizardController) recordHistory(ctx context.Context, record domain.ApplicationRecord) {
	if w.history == nil {
		return
	}
	entry, err := w.history.Record(ctx, record)
	if err != nil {
		logger.Warn("Failed to record submission history: %v", err)
		return
	}

	w.mu.Lock()
	w.lastReference = entry.Reference
	w.mu.Unlock()
}

// saveLocked mirrors the session to the snapshot store. Errors are logged, never returned.
func (w *WizardController) saveLocked(ctx context.Context) {
	if err := w.store.Save(ctx, w.snapshotLocked()); err != nil {
		logger.Warn("Failed to save session snapshot: %v", err)
	}
}

func (w *WizardController) snapshotLocked() *domain.PersistedSnapshot {
	snapshot := &domain.PersistedSnapshot{
		ExtractedData: w.state.ExtractedData.Clone(),
		Documents:     w.state.Documents.Names(),
	}
	if w.state.ApplicationData != nil {
		app := w.state.ApplicationData.Clone()
		snapshot.ApplicationData = &app
	}
	return snapshot
}

func (w *WizardController) accumulatedLocked() domain.ApplicationRecord {
	if w.state.ApplicationData == nil {
		return domain.ApplicationRecord{}
	}
	return w.state.ApplicationData.Clone()
}

// CurrentStep returns the active step.
func (w *WizardController) CurrentStep() domain.Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.CurrentStep
}

// Accumulated returns a copy of the application record built so far.
func (w *WizardController) Accumulated() domain.ApplicationRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.accumulatedLocked()
}

// Extracted returns a copy of the extracted record.
func (w *WizardController) Extracted() *domain.ExtractedRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.ExtractedData.Clone()
}

// Documents returns the session's document handles.
func (w *WizardController) Documents() domain.Documents {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Documents
}

// Processing reports whether an extraction or submission is in flight.
func (w *WizardController) Processing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Processing
}

// Submitted reports whether the application was accepted.
func (w *WizardController) Submitted() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Submitted
}

// Steps returns the step indicator entries.
func (w *WizardController) Steps() []domain.StepStatus {
	return domain.StepIndicator(w.CurrentStep())
}

// LastReference returns the history reference of the submission.
func (w *WizardController) LastReference() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastReference
}

// Snapshot returns the persistable view of the session.
func (w *WizardController) Snapshot() *domain.PersistedSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// Clear removes the persisted snapshot and forgets the accumulated data.
// The current step is left as it is.
func (w *WizardController) Clear(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Processing {
		return domain.ErrBusy
	}
	if err := w.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear snapshot: %w", err)
	}

	w.state.ExtractedData = nil
	w.state.ApplicationData = nil
	w.state.Documents = domain.Documents{}
	return nil
}
