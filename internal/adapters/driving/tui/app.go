package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/components/steps"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/views/complete"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/views/review"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/views/success"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/views/summary"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui/views/upload"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// App is the wizard application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Views never call the wizard themselves: they emit AdvanceRequested and the
// app runs the transition off the update loop, then shows the view for the
// step the wizard ends up on.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model

	steps  *steps.Indicator
	status *status.Bar

	summaryView  *summary.View
	uploadView   *upload.View
	reviewView   *review.View
	completeView *complete.View
	successView  *success.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	showHelp bool

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new wizard application with the given ports.
// The view matches the wizard's current step, so a restored session resumes.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, ErrInvalidPorts
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		keymap:       km,
		help:         help.New(),
		steps:        steps.New(s),
		status:       status.NewBar(s, km),
		summaryView:  summary.NewView(s),
		uploadView:   upload.NewView(s, ports.Intake),
		reviewView:   review.NewView(s),
		completeView: complete.NewView(s),
		successView:  success.NewView(s),
	}

	a.summaryView.SetResumeNote(resumeNote(ports.Wizard.Snapshot()))
	a.summaryView.SetSetup(setupLines(ports.Settings))
	a.currentView = messages.ViewForStep(ports.Wizard.CurrentStep())
	a.loadView(a.currentView)

	return a, nil
}

func resumeNote(snapshot *domain.PersistedSnapshot) string {
	if snapshot.IsEmpty() {
		return ""
	}
	var who []string
	if snapshot.ApplicationData != nil {
		if name := strings.TrimSpace(snapshot.ApplicationData.DisplayName()); name != "" {
			who = append(who, name)
		}
	}
	if snapshot.Documents.CV != nil {
		who = append(who, "CV: "+*snapshot.Documents.CV)
	}
	note := "A saved application was found"
	if len(who) > 0 {
		note += " (" + strings.Join(who, ", ") + ")"
	}
	return note + ". Start to continue with it, or Start Over to discard it."
}

// setupLines describes the submission target and extraction mode.
func setupLines(settings driving.SettingsService) []string {
	if settings == nil {
		return nil
	}
	current, err := settings.Get()
	if err != nil {
		logger.Warn("read settings for summary: %v", err)
		return nil
	}

	target := "not configured (run 'apply settings wizard')"
	if current.Submission.IsConfigured() {
		target = current.Submission.URL()
	}
	return []string{
		"Submitting to: " + target,
		"CV extraction: " + current.Extraction.Mode.Description(),
	}
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("apply - Subwarden Application"),
		a.initView(a.currentView),
	)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "ctrl+r":
			if a.ports.Wizard.Processing() {
				return a, a.status.ShowToast(ErrorMessage(domain.ErrBusy))
			}
			return a, func() tea.Msg { return messages.ClearRequested{} }
		case "?":
			if !a.acceptsText() {
				a.showHelp = !a.showHelp
				return a, nil
			}
		}
		return a, a.forward(msg)

	case messages.AdvanceRequested:
		return a, a.advance(msg)

	case messages.AdvanceCompleted:
		if a.status.State() == status.StateProcessing {
			a.status.Clear()
		}
		if msg.Err != nil {
			a.err = msg.Err
			logger.Debug("Advance from %s failed: %v", msg.From, msg.Err)
			return a, tea.Batch(a.forward(msg), a.status.ShowToast(ErrorMessage(msg.Err)))
		}
		a.err = nil
		fwd := a.forward(msg)
		next := messages.ViewForStep(a.ports.Wizard.CurrentStep())
		return a, tea.Batch(fwd, a.switchTo(next))

	case messages.ViewChanged:
		return a, a.switchTo(msg.View)

	case messages.ClearRequested:
		err := a.ports.Wizard.Clear(a.ctx)
		return a, func() tea.Msg { return messages.SessionCleared{Err: err} }

	case messages.SessionCleared:
		if msg.Err != nil {
			a.err = msg.Err
			return a, a.status.ShowToast(ErrorMessage(msg.Err))
		}
		a.summaryView.SetResumeNote("")
		a.uploadView.SetPrevious("")
		a.status.SetMessage("Saved session cleared")
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.status.ShowToast(ErrorMessage(msg.Err))

	case messages.ToastExpired, spinner.TickMsg:
		var cmd tea.Cmd
		a.status, cmd = a.status.Update(msg)
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks) to the active view.
	return a, a.forward(msg)
}

// advance runs a wizard transition in a command so the spinner keeps moving.
func (a *App) advance(req messages.AdvanceRequested) tea.Cmd {
	from := a.ports.Wizard.CurrentStep()
	if a.ports.Wizard.Processing() {
		return func() tea.Msg {
			return messages.AdvanceCompleted{From: from, Err: domain.ErrBusy}
		}
	}

	wizard, ctx := a.ports.Wizard, a.ctx
	run := func() tea.Msg {
		return messages.AdvanceCompleted{From: from, Err: wizard.Advance(ctx, req.Payload)}
	}
	if req.Label == "" {
		return run
	}
	return tea.Batch(a.status.StartProcessing(req.Label), run)
}

func (a *App) switchTo(view messages.ViewType) tea.Cmd {
	if view == a.currentView {
		return nil
	}
	a.currentView = view
	a.loadView(view)
	return a.initView(view)
}

// loadView copies the wizard state the view needs.
func (a *App) loadView(view messages.ViewType) {
	wizard := a.ports.Wizard
	a.status.SetFormHints(view == messages.ViewReview)

	switch view {
	case messages.ViewUpload:
		a.uploadView.Reset()
		previous := ""
		if cv := wizard.Documents().CV; cv != nil && !cv.Readable() {
			previous = cv.Name
		}
		a.uploadView.SetPrevious(previous)
	case messages.ViewReview:
		a.reviewView.Load(wizard.Accumulated(), wizard.Extracted())
	case messages.ViewComplete:
		a.completeView.SetRecord(wizard.Accumulated())
	case messages.ViewSuccess:
		a.successView.SetReference(wizard.LastReference())
	case messages.ViewSummary:
	}
}

func (a *App) initView(view messages.ViewType) tea.Cmd {
	switch view {
	case messages.ViewUpload:
		return a.uploadView.Init()
	case messages.ViewReview:
		return a.reviewView.Init()
	case messages.ViewComplete:
		return a.completeView.Init()
	case messages.ViewSuccess:
		return a.successView.Init()
	default:
		return a.summaryView.Init()
	}
}

// forward sends msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewSummary:
		a.summaryView, cmd = a.summaryView.Update(msg)
	case messages.ViewUpload:
		a.uploadView, cmd = a.uploadView.Update(msg)
	case messages.ViewReview:
		a.reviewView, cmd = a.reviewView.Update(msg)
	case messages.ViewComplete:
		a.completeView, cmd = a.completeView.Update(msg)
	case messages.ViewSuccess:
		a.successView, cmd = a.successView.Update(msg)
	}
	return cmd
}

// acceptsText reports whether the active view has text entry.
func (a *App) acceptsText() bool {
	return a.currentView == messages.ViewUpload || a.currentView == messages.ViewReview
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Subwarden Application"))
	b.WriteString("\n")
	b.WriteString(a.styles.Muted.Render("Apply for the Subwarden position at Respublica"))
	b.WriteString("\n\n")

	if a.currentView != messages.ViewSuccess {
		b.WriteString(a.steps.View(a.ports.Wizard.Steps()))
		b.WriteString("\n\n")
	}

	switch a.currentView {
	case messages.ViewUpload:
		b.WriteString(a.uploadView.View())
	case messages.ViewReview:
		b.WriteString(a.reviewView.View())
	case messages.ViewComplete:
		b.WriteString(a.completeView.View())
	case messages.ViewSuccess:
		b.WriteString(a.successView.View())
	default:
		b.WriteString(a.summaryView.View())
	}

	if a.showHelp {
		b.WriteString("\n\n")
		b.WriteString(a.help.FullHelpView(a.keymap.FullHelp()))
	}

	b.WriteString("\n\n")
	b.WriteString(a.status.View())
	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// ShowingHelp reports whether the full key help is visible.
func (a *App) ShowingHelp() bool {
	return a.showHelp
}

// Status returns the status bar.
func (a *App) Status() *status.Bar {
	return a.status
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.help.Width = width
	a.steps.SetWidth(width)
	a.status.SetWidth(width)
	a.summaryView.SetDimensions(width, height)
	a.uploadView.SetDimensions(width, height)
	a.reviewView.SetDimensions(width, height)
	a.completeView.SetDimensions(width, height)
	a.successView.SetDimensions(width, height)
}
