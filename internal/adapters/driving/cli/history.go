package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/apply-cli/internal/core/domain"
)

var (
	historyFormat string
	historyOut    string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List submitted applications",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export submitted applications",
	Long: `Export the submission history as CSV or as an Excel workbook.

Without --out the export is written to standard output; xlsx requires --out.`,
	Args: cobra.NoArgs,
	RunE: runHistoryExport,
}

func init() {
	historyExportCmd.Flags().StringVarP(&historyFormat, "format", "f", string(domain.ExportFormatCSV), "export format (csv or xlsx)")
	historyExportCmd.Flags().StringVarP(&historyOut, "out", "o", "", "output file (default stdout)")
	historyCmd.AddCommand(historyExportCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	entries, err := historyService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		cmd.Println("No submitted applications.")
		return nil
	}

	cmd.Printf("Submitted applications (%d):\n\n", len(entries))
	for i := range entries {
		e := &entries[i]
		cmd.Printf("  %s  %s\n", e.Reference, e.SubmittedAt.Local().Format("2006-01-02 15:04"))
		cmd.Printf("    Name: %s (%s)\n", orNotSet(e.FullName), orNotSet(e.StudentNumber))
		cmd.Printf("    CV: %s\n", orNotSet(e.DocumentName))
		if len(e.LeadershipRoles) > 0 {
			cmd.Printf("    Roles: %s\n", strings.Join(e.LeadershipRoles, ", "))
		}
		cmd.Println()
	}
	return nil
}

func runHistoryExport(cmd *cobra.Command, _ []string) (err error) {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	format := domain.ExportFormat(strings.ToLower(historyFormat))
	if !format.IsValid() {
		return fmt.Errorf("unsupported format %q (use csv or xlsx)", historyFormat)
	}
	if format == domain.ExportFormatXLSX && historyOut == "" {
		return errors.New("xlsx export needs --out")
	}

	var w io.Writer = cmd.OutOrStdout()
	if historyOut != "" {
		f, createErr := os.Create(historyOut)
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", historyOut, createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("failed to write %s: %w", historyOut, cerr)
			}
		}()
		w = f
	}

	if err := historyService.Export(cmd.Context(), w, format); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if historyOut != "" {
		cmd.Printf("Exported history to %s\n", historyOut)
	}
	return nil
}
