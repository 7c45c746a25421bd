package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved application progress",
	Long: `Show which step the saved application is on and what has been filled in.

A restored session always resumes at the summary step, so this reports the
data that will be carried forward rather than a step to jump to.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if wizardController == nil {
		return errors.New("wizard not configured")
	}

	snapshot := wizardController.Snapshot()
	if snapshot.IsEmpty() {
		cmd.Println("No saved application.")
		cmd.Println("Run 'apply' to start one.")
		return nil
	}

	cmd.Println("Saved Application")
	cmd.Println("=================")
	cmd.Println()

	cmd.Println("[Progress]")
	for _, s := range wizardController.Steps() {
		mark := " "
		if s.Completed {
			mark = "x"
		}
		cmd.Printf("  [%s] %d. %s\n", mark, s.Number, s.Title)
	}
	cmd.Println()

	cmd.Println("[Details]")
	if app := snapshot.ApplicationData; app != nil {
		cmd.Printf("  Name: %s\n", orNotSet(strings.TrimSpace(app.DisplayName())))
		cmd.Printf("  Student Number: %s\n", orNotSet(app.StudentNumber))
		if len(app.LeadershipRoles) > 0 {
			cmd.Printf("  Leadership Roles: %s\n", strings.Join(app.LeadershipRoles, ", "))
		}
	} else {
		cmd.Println("  (no details entered yet)")
	}
	if snapshot.ExtractedData != nil {
		cmd.Println("  Extracted CV data: yes")
	}
	cv := ""
	if snapshot.Documents.CV != nil {
		cv = *snapshot.Documents.CV
	}
	cmd.Printf("  CV: %s\n", orNotSet(cv))

	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
