package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the saved application",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, _ []string) error {
	if wizardController == nil {
		return errors.New("wizard not configured")
	}

	if wizardController.Snapshot().IsEmpty() {
		cmd.Println("No saved application to clear.")
		return nil
	}

	if err := wizardController.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear saved application: %w", err)
	}

	cmd.Println("Saved application cleared.")
	return nil
}
