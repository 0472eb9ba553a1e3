package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal trades",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var (
	listFrom     string
	listTo       string
	listSymbol   string
	listStatus   string
	listStrategy string
	listSearch   string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listFrom, "from", "", "start date YYYY-MM-DD")
	listCmd.Flags().StringVar(&listTo, "to", "", "end date YYYY-MM-DD")
	listCmd.Flags().StringVar(&listSymbol, "symbol", "", "filter by symbol")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by status (Open or Closed)")
	listCmd.Flags().StringVar(&listStrategy, "strategy", "", "filter by strategy label")
	listCmd.Flags().StringVar(&listSearch, "search", "", "substring search over symbol and notes")
}

func runList(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}

	trades, err := d.svc.List()
	if err != nil {
		return err
	}

	f := journal.Filter{
		StartDate: listFrom,
		EndDate:   listTo,
		Search:    listSearch,
	}
	if listSymbol != "" {
		f.Symbols = []string{listSymbol}
	}
	if listStatus != "" {
		f.Statuses = []string{listStatus}
	}
	if listStrategy != "" {
		f.Strategies = []models.Strategy{models.Strategy(listStrategy)}
	}
	trades = f.Apply(trades)

	if len(trades) == 0 {
		fmt.Println("No trades match.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tSYMBOL\tSTRATEGY\tENTRY\tEXIT\tQTY\tPNL\tSTATUS\tNOTES")
	for _, t := range trades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			t.Date, t.Symbol, t.Strategy,
			t.EntryPrice.StringFixed(2), t.ExitPrice.StringFixed(2),
			t.Quantity, t.PnL.StringFixed(2), t.Status, t.Notes)
	}
	return w.Flush()
}
