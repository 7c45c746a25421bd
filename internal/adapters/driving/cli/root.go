package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apply-cli/internal/core/ports/driving"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose bool
	dataDir string
)

// Service references, populated by SetServices or the bootstrap.
var (
	wizardController driving.WizardController
	intakeService    driving.IntakeService
	settingsService  driving.SettingsService
	historyService   driving.HistoryService
	extractService   driving.ExtractService
)

// Options are the global flag values handed to the bootstrap.
type Options struct {
	DataDir string
	Verbose bool
	// Interactive is true when the TUI will own the terminal, so logs must
	// not be written to stderr.
	Interactive bool
}

// Services groups the driving ports the commands use.
type Services struct {
	Wizard   driving.WizardController
	Intake   driving.IntakeService
	Settings driving.SettingsService
	History  driving.HistoryService
	Extract  driving.ExtractService
	// Cleanup releases resources (database handles, log files). May be nil.
	Cleanup func()
}

// Bootstrap builds services once flags are parsed.
type Bootstrap func(ctx context.Context, opts Options) (*Services, error)

var (
	bootstrap Bootstrap
	cleanup   func()
)

var rootCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply for the Subwarden position at Respublica",
	Long: `apply walks you through the Subwarden application for Respublica.

Run without arguments to start the interactive wizard: read the summary,
upload your CV, review the extracted details and submit. Progress is saved
between runs, so you can stop at any step and continue later.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:              runTUI,
}

func init() {
	// Assigned here: setup refers back to rootCmd.
	rootCmd.PersistentPreRunE = setup

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.apply)")
}

// SetServices injects ready-made services. Commands prefer these over the bootstrap.
func SetServices(s *Services) {
	if s == nil {
		wizardController, intakeService, settingsService, historyService, extractService = nil, nil, nil, nil, nil
		cleanup = nil
		return
	}
	wizardController = s.Wizard
	intakeService = s.Intake
	settingsService = s.Settings
	historyService = s.History
	extractService = s.Extract
	cleanup = s.Cleanup
}

// SetBootstrap sets the function that builds services before a command runs.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx. Services built by the
// bootstrap are released when it returns, whether or not the command failed.
func ExecuteContext(ctx context.Context) error {
	defer teardown()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if bootstrap == nil || !needsServices(cmd) || wizardController != nil {
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	services, err := bootstrap(ctx, Options{
		DataDir:     dataDir,
		Verbose:     verbose,
		Interactive: cmd == rootCmd || cmd == tuiCmd,
	})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	if services == nil {
		return errors.New("bootstrap returned no services")
	}
	SetServices(services)
	return nil
}

func teardown() {
	if cleanup != nil {
		cleanup()
		cleanup = nil
	}
}

// needsServices reports whether cmd touches the wizard or its stores.
func needsServices(cmd *cobra.Command) bool {
	return cmd != versionCmd
}

// exitCode maps an error returned by Execute to a process exit status.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, ErrNotTerminal) {
		return 2
	}
	return 1
}

// Run executes the command tree, reports any error on stderr and returns the
// process exit status. Cleanup has finished by the time it returns.
func Run(ctx context.Context) int {
	err := ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return exitCode(err)
}
