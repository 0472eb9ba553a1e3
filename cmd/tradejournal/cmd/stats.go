package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"trade-journal-go/internal/journal"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}

	trades, err := d.svc.List()
	if err != nil {
		return err
	}
	stats := journal.Summarize(trades)

	cur := d.cfg.Journal.Currency
	fmt.Printf("Total P&L:     %s %s\n", stats.TotalPnL.StringFixed(2), cur)
	fmt.Printf("Win rate:      %.1f%%\n", stats.WinRate*100)
	fmt.Printf("Avg trade:     %s %s\n", stats.AvgTrade.StringFixed(2), cur)
	fmt.Printf("Total trades:  %d (%d closed)\n", stats.TotalTrades, stats.ClosedTrades)
	return nil
}
