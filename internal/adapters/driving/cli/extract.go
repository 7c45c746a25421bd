package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract application details from a CV",
	Long: `Run CV extraction on a single PDF without touching the saved application.

The extractor is chosen by the extraction.mode setting: "stub" returns a fixed
sample record, "llm" converts the PDF with pdftotext and asks a local Ollama
model for the structured fields.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the record as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractService == nil {
		return errors.New("extract service not configured")
	}

	record, err := extractService.Extract(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractJSON {
		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	outputRecord(cmd, record)
	return nil
}

func outputRecord(cmd *cobra.Command, record *domain.ExtractedRecord) {
	cmd.Printf("Full Name: %s\n", orNotSet(record.FullName))
	cmd.Printf("Email: %s\n", orNotSet(record.Email))
	cmd.Printf("Phone: %s\n", orNotSet(record.Phone))
	cmd.Println()
	cmd.Println("Profile Summary:")
	cmd.Printf("  %s\n", orNotSet(record.ProfileSummary))
	outputList(cmd, "Experience", record.Experience)
	outputList(cmd, "Education", record.Education)
	outputList(cmd, "Leadership", record.Leadership)
}

func outputList(cmd *cobra.Command, title string, items []string) {
	cmd.Println()
	cmd.Printf("%s:\n", title)
	if len(items) == 0 {
		cmd.Println("  (none)")
		return
	}
	for _, item := range items {
		cmd.Printf("  - %s\n", item)
	}
}
