package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jay4webdev/Bill-Tracker/internal/calculator"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer a.Close()

			rates, err := a.cfg.CalculatorRates()
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), calculator.Summarize(a.state.Bills(), rates), rates)
			return nil
		},
	}
}

func printSummary(w io.Writer, s calculator.Summary, rates calculator.Rates) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Totals (%s)\n", s.Label)
	fmt.Fprintf(tw, "Outstanding\t%s\n", calculator.FormatAmount(s.Outstanding, rates.Base))
	fmt.Fprintf(tw, "Paid\t%s\n", calculator.FormatAmount(s.Paid, rates.Base))
	fmt.Fprintf(tw, "Overdue\t%d bills\t%s\n", s.OverdueCount, calculator.FormatAmount(s.OverdueAmount, rates.Base))
	fmt.Fprintf(tw, "Pending\t%d bills\n", s.PendingCount)
	tw.Flush()

	if len(s.Upcoming) > 0 {
		fmt.Fprintln(w, "\nUpcoming")
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, b := range s.Upcoming {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.DueDate, b.CompanyName, b.Description, calculator.FormatAmount(b.Amount, b.Currency))
		}
		tw.Flush()
	}
}
