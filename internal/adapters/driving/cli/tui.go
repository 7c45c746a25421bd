package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/apply-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// ErrNotTerminal is returned when the wizard is started without a terminal.
var ErrNotTerminal = errors.New("the application wizard needs an interactive terminal")

// isTerminal reports whether stdin and stdout are attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive application wizard",
	Long: `Launch the interactive terminal wizard for the Subwarden application.

This is what running apply without a subcommand does.

Controls:
  ↑/k, ↓/j   - Navigate
  Enter      - Select / Continue
  Tab        - Next field
  Space      - Toggle checkbox
  Ctrl+S     - Submit the review form
  Ctrl+R     - Clear the saved session
  ?          - Toggle help
  Ctrl+C     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	if !isTerminal() {
		return fmt.Errorf("%w; use 'apply status' or 'apply extract' from scripts", ErrNotTerminal)
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic in TUI: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ports := tui.NewPorts(wizardController, intakeService)
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if ctx := cmd.Context(); ctx != nil {
		app.WithContext(ctx)
	}

	logger.Info("Starting wizard at %s step", wizardController.CurrentStep())
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
