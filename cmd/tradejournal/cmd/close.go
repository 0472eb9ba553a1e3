package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close <date|SYMBOL|entry> <exit-price>",
	Short: "Close an open position",
	Long: `Close an open position by its identity key and exit price. The key is
the date, symbol and entry price joined with '|', as printed by list.

Example:
  tradejournal close "2025-08-15|ETHA|1.06" 0.15`,
	Args: cobra.ExactArgs(2),
	RunE: runClose,
}

func init() {
	rootCmd.AddCommand(closeCmd)
}

func runClose(cmd *cobra.Command, args []string) error {
	exit, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("exit price: %w", err)
	}

	d, err := setup()
	if err != nil {
		return err
	}

	t, err := d.svc.Close(args[0], exit)
	if err != nil {
		return err
	}

	fmt.Printf("Closed %s %s  pnl %s %s\n", t.Symbol, t.Strategy, t.PnL.StringFixed(2), d.cfg.Journal.Currency)
	return nil
}
