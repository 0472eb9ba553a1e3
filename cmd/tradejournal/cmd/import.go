package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"trade-journal-go/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a brokerage CSV export",
	Long: `Import trades from a brokerage CSV export and reconcile them against
the journal.

Tastytrade activity exports are recognized by their header and decoded
from the free-text description column. Any other CSV goes through
column mapping: headers like "ticker" or "qty" are matched
automatically, the rest can be mapped explicitly with --map.

Examples:
  tradejournal import activity.csv
  tradejournal import trades.csv --map symbol=Instrument --map quantity=Lots
  tradejournal import --url https://broker.example.com/export.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

var (
	importURL      string
	importSkipDups bool
	importMapping  map[string]string
)

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importURL, "url", "", "download the export from a URL instead of a file")
	importCmd.Flags().BoolVar(&importSkipDups, "skip-duplicates", true, "drop rows whose (date, symbol, entry price) already exists")
	importCmd.Flags().StringToStringVar(&importMapping, "map", nil, "column mapping field=header, e.g. symbol=Ticker")
}

func runImport(cmd *cobra.Command, args []string) error {
	if importURL == "" && len(args) == 0 {
		return fmt.Errorf("either a file argument or --url is required")
	}

	d, err := setup()
	if err != nil {
		return err
	}

	var data []byte
	if importURL != "" {
		fetcher := importer.NewFetcher(&d.cfg.Importer, d.log)
		data, err = fetcher.FetchExport(context.Background(), importURL)
		if err != nil {
			return err
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read export: %w", err)
		}
	}

	opts := importer.Options{
		SkipDuplicates: importSkipDups,
		Mapping:        importer.ColumnMapping(importMapping),
	}
	res, err := importer.New(d.log, d.store).ImportCSV(bytes.NewReader(data), opts)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d trade(s), %d duplicate(s) skipped.\n", res.Imported, res.Duplicates)
	for _, re := range res.RowErrors {
		fmt.Printf("  line %d skipped: %s\n", re.Line, re.Reason)
	}
	return nil
}
