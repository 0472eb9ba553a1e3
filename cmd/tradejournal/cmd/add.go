package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"trade-journal-go/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new trade",
	Long: `Record a new trade in the journal.

For option-selling strategies (Cash Secured Put, Covered Call) the entry
price is the premium received and the exit price the premium paid to
close. For long options the entry price is the premium paid. An exit
price of 0 means the position is still open.

Examples:
  tradejournal add --symbol AAPL --strategy "Long Stock" --entry 150.00 --qty 10
  tradejournal add --symbol ETHA --strategy "Cash Secured Put" --entry 1.06 --qty -2`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

var (
	addDate     string
	addSymbol   string
	addStrategy string
	addEntry    string
	addExit     string
	addQty      int64
	addMult     int64
	addNotes    string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addDate, "date", "", "trade date YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&addSymbol, "symbol", "", "instrument symbol")
	addCmd.Flags().StringVar(&addStrategy, "strategy", "", "strategy label (default from config)")
	addCmd.Flags().StringVar(&addEntry, "entry", "", "entry price")
	addCmd.Flags().StringVar(&addExit, "exit", "", "exit price, 0 while open")
	addCmd.Flags().Int64Var(&addQty, "qty", 0, "quantity (shares or contracts, sign encodes direction)")
	addCmd.Flags().Int64Var(&addMult, "mult", 0, "contract multiplier override, 0 = auto")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}

	if addDate == "" {
		addDate = time.Now().Format("2006-01-02")
	}
	if addStrategy == "" {
		addStrategy = d.cfg.Journal.DefaultStrategy
	}

	entry, err := decimal.NewFromString(addEntry)
	if err != nil {
		return fmt.Errorf("entry price: %w", err)
	}
	exit := decimal.Zero
	if addExit != "" {
		exit, err = decimal.NewFromString(addExit)
		if err != nil {
			return fmt.Errorf("exit price: %w", err)
		}
	}

	t, err := d.svc.Add(models.Trade{
		Date:               addDate,
		Symbol:             addSymbol,
		Strategy:           models.Strategy(addStrategy),
		EntryPrice:         entry,
		ExitPrice:          exit,
		Quantity:           addQty,
		ContractMultiplier: addMult,
		Notes:              addNotes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s %s %s  qty %d  status %s  pnl %s %s\n",
		t.Date, t.Symbol, t.Strategy, t.Quantity, t.Status, t.PnL.StringFixed(2), d.cfg.Journal.Currency)
	return nil
}
