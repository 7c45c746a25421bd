// Package tui provides the interactive application wizard.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Wizard sequences the application steps and owns the session.
	Wizard driving.WizardController

	// Intake validates files offered to the upload step.
	Intake driving.IntakeService

	// Settings is optional. When set, the summary step shows where the
	// application goes and how the CV will be read.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(wizard driving.WizardController, intake driving.IntakeService) *Ports {
	return &Ports{
		Wizard: wizard,
		Intake: intake,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Wizard == nil {
		return ErrMissingWizardController
	}
	if p.Intake == nil {
		return ErrMissingIntakeService
	}
	return nil
}
