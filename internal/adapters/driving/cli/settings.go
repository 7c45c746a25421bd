package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the submission endpoint, CV extraction and storage.

Use subcommands to change a single key or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a single setting",
	Long: `Change a single setting by its dotted key.

Keys:
  submission.endpoint     - Form relay base URL
  submission.form_id      - Form identifier on the relay
  extraction.mode         - stub or llm
  extraction.delay_ms     - Stub extraction delay in milliseconds
  pdftotext.path          - pdftotext binary used by llm extraction
  llm.base_url            - Ollama base URL
  llm.model               - Ollama model name
  intake.max_size_bytes   - Upload size limit (0 disables it)
  storage.backend         - file or sqlite`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure extraction and submission step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Submission]")
	cmd.Printf("  Endpoint: %s\n", settings.Submission.Endpoint)
	cmd.Printf("  Form ID: %s\n", settings.Submission.FormID)
	cmd.Println()

	cmd.Println("[Extraction]")
	cmd.Printf("  Mode: %s\n", settings.Extraction.Mode.Description())
	if settings.Extraction.Mode == domain.ExtractionModeStub {
		cmd.Printf("  Delay: %s\n", settings.Extraction.Delay)
	} else {
		cmd.Printf("  pdftotext: %s\n", settings.Extraction.PdftotextPath)
	}
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
	cmd.Printf("  Model: %s\n", settings.LLM.Model)
	status := "configured"
	if !settings.LLM.IsConfigured() {
		status = "not configured"
	}
	cmd.Printf("  Status: %s\n", status)
	cmd.Println()

	cmd.Println("[Intake]")
	if settings.Intake.MaxSizeBytes > 0 {
		cmd.Printf("  Max size: %d bytes\n", settings.Intake.MaxSizeBytes)
	} else {
		cmd.Println("  Max size: unlimited")
	}
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'apply settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Apply Settings Wizard")
	cmd.Println("=====================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())
	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	// Step 1: Extraction mode
	cmd.Println("Step 1: Select CV Extraction Mode")
	cmd.Println("---------------------------------")
	modes := []domain.ExtractionMode{domain.ExtractionModeStub, domain.ExtractionModeLLM}
	defaultIdx := 1
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
		if mode == current.Extraction.Mode {
			defaultIdx = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	mode := modes[parseChoice(readLine(reader), len(modes), defaultIdx)-1]
	if err := settingsService.Set("extraction.mode", mode.String()); err != nil {
		return fmt.Errorf("failed to set extraction mode: %w", err)
	}
	cmd.Printf("Set extraction mode to: %s\n\n", mode.Description())

	// Step 2: LLM (only when needed)
	if mode == domain.ExtractionModeLLM {
		cmd.Println("Step 2: Configure Ollama")
		cmd.Println("------------------------")
		if err := configureLLM(cmd, reader, current.LLM); err != nil {
			return err
		}
	} else {
		cmd.Println("Step 2: Ollama (skipped)")
		cmd.Println("------------------------")
		cmd.Println("Not required for stub extraction.")
		cmd.Println()
	}

	// Step 3: Submission
	cmd.Println("Step 3: Submission Endpoint")
	cmd.Println("---------------------------")
	endpoint := prompt(cmd, reader, "Endpoint", current.Submission.Endpoint)
	formID := prompt(cmd, reader, "Form ID", current.Submission.FormID)
	if err := settingsService.Set("submission.endpoint", endpoint); err != nil {
		return fmt.Errorf("failed to set endpoint: %w", err)
	}
	if err := settingsService.Set("submission.form_id", formID); err != nil {
		return fmt.Errorf("failed to set form id: %w", err)
	}
	cmd.Println()

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func configureLLM(cmd *cobra.Command, reader *bufio.Reader, current domain.LLMSettings) error {
	baseURL := prompt(cmd, reader, "Ollama base URL", current.BaseURL)
	model := prompt(cmd, reader, "Model name", current.Model)

	if err := settingsService.Set("llm.base_url", baseURL); err != nil {
		return fmt.Errorf("failed to set base URL: %w", err)
	}
	if err := settingsService.Set("llm.model", model); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}

	// Validate the configuration by pinging the service
	cmd.Print("Validating configuration... ")
	if err := settingsService.ValidateLLMConfig(); err != nil {
		cmd.Printf("FAILED: %v\n", err)
		cmd.Println("Extraction will fall back to rule-based parsing until Ollama is reachable.")
		cmd.Println()
		return nil
	}
	cmd.Println("OK")
	cmd.Printf("LLM configured: %s (%s)\n\n", model, baseURL)
	return nil
}

// Helper functions.

func prompt(cmd *cobra.Command, reader *bufio.Reader, label, defaultVal string) string {
	cmd.Printf("%s [%s]: ", label, defaultVal)
	if input := readLine(reader); input != "" {
		return input
	}
	return defaultVal
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
