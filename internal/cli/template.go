package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jay4webdev/Bill-Tracker/internal/importer"
)

// NewTemplateCommand creates the template command.
func NewTemplateCommand(_ *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "template <file>",
		Short: "Write the bulk upload template workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := importer.Template()
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("failed to write template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", args[0])
			return nil
		},
	}
}
