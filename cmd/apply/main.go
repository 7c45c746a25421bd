// Command apply is the Subwarden application wizard for Respublica.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/custodia-labs/apply-cli/internal/adapters/driven/ai"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/export"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/extract/pdftext"
	filestore "github.com/custodia-labs/apply-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/apply-cli/internal/adapters/driven/submit/formrelay"
	"github.com/custodia-labs/apply-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/apply-cli/internal/core/domain"
	"github.com/custodia-labs/apply-cli/internal/core/ports/driven"
	"github.com/custodia-labs/apply-cli/internal/core/services"
	"github.com/custodia-labs/apply-cli/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetBootstrap(bootstrap)
	code := cli.Run(ctx)
	stop()
	os.Exit(code)
}

// bootstrap wires adapters to services for one command invocation.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	root, err := resolveRoot(opts.DataDir)
	if err != nil {
		return nil, err
	}

	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if opts.Interactive {
		closeLog, err := logToFile(filepath.Join(root, "apply.log"))
		if err != nil {
			return nil, err
		}
		closers = append(closers, closeLog)
	}

	logger.Section("Bootstrap")
	logger.Debug("Data directory: %s", root)

	configStore, err := file.NewConfigStore(root)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("load config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore, ai.NewConfigValidator())
	settings, err := settingsService.Get()
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("read settings: %w", err)
	}

	dataDir := filepath.Join(root, "data")
	db, err := sqlite.NewStore(dataDir)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("open database: %w", err)
	}
	closers = append(closers, func() {
		if err := db.Close(); err != nil {
			logger.Warn("close database: %v", err)
		}
	})

	var snapshots driven.SnapshotStore
	switch settings.Storage.Backend {
	case domain.StorageBackendSQLite:
		snapshots = db.SnapshotStore()
	default:
		fs, err := filestore.NewSnapshotStore(dataDir)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		snapshots = fs
	}
	logger.Debug("Snapshot backend: %s", settings.Storage.Backend)

	prompts, err := file.NewPromptStore(filepath.Join(root, "prompts"))
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("open prompt store: %w", err)
	}

	extraction := ai.CreateExtractor(settings, prompts, pdftext.ExecRunner{})
	closers = append(closers, extraction.Close)
	for _, w := range extraction.Warnings {
		logger.Warn("%s", w)
	}
	logger.Debug("Extraction mode: %s (fallback: %t)", settings.Extraction.Mode, extraction.FellBack)

	submitter := formrelay.New(settings.Submission, nil)
	history := services.NewHistoryService(db.HistoryStore(), export.NewCSVExporter(), export.NewXLSXExporter())
	intake := services.NewIntakeService(settings.Intake.MaxSizeBytes)
	wizard := services.NewWizardController(ctx, snapshots, extraction.Extractor, submitter, history)

	return &cli.Services{
		Wizard:   wizard,
		Intake:   intake,
		Settings: settingsService,
		History:  history,
		Extract:  services.NewExtractService(intake, extraction.Extractor),
		Cleanup:  cleanup,
	}, nil
}

// resolveRoot returns the data root, defaulting to ~/.apply.
func resolveRoot(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".apply"), nil
}

// logToFile sends log output to path while the TUI owns the terminal.
func logToFile(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	logger.SetTimestamps(true)
	return func() {
		logger.Sync()
		logger.SetTimestamps(false)
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}
