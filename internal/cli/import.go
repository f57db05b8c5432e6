package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jay4webdev/Bill-Tracker/internal/importer"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	DryRun bool
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk import bills from a spreadsheet",
		Long: `Import bills from an .xlsx or .csv file laid out like the upload
template. The batch is all or nothing: if any row is invalid, nothing is
imported and every rejected row is listed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			rows, err := importer.Decode(filepath.Base(args[0]), data)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if opts.DryRun {
				bills, err := importer.Normalize(rows, importer.Options{Today: a.state.Today()})
				if err != nil {
					return reportImportError(out, err)
				}
				fmt.Fprintf(out, "%d bills are valid, nothing imported (dry run)\n", len(bills))
				return nil
			}

			bills, err := a.state.ImportBills(cmd.Context(), rows)
			if err != nil {
				return reportImportError(out, err)
			}
			fmt.Fprintf(out, "Imported %d bills\n", len(bills))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "validate the file without importing")

	return cmd
}

func reportImportError(w io.Writer, err error) error {
	var batch *importer.BatchError
	if !errors.As(err, &batch) {
		return err
	}
	for _, row := range batch.Rows {
		fmt.Fprintf(w, "  %s\n", row)
	}
	return fmt.Errorf("import rejected: %d invalid rows", batch.Invalid())
}
