package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dedupCmd = &cobra.Command{
	Use:   "dedup",
	Short: "Remove duplicate trades from the journal",
	Long: `Remove stored trades whose (date, symbol, entry price) identity
repeats, keeping the first occurrence of each.`,
	Args: cobra.NoArgs,
	RunE: runDedup,
}

func init() {
	rootCmd.AddCommand(dedupCmd)
}

func runDedup(cmd *cobra.Command, args []string) error {
	d, err := setup()
	if err != nil {
		return err
	}

	removed, err := d.svc.RemoveDuplicates()
	if err != nil {
		return err
	}
	if removed == 0 {
		fmt.Println("No duplicates found.")
		return nil
	}
	fmt.Printf("Removed %d duplicate trade(s).\n", removed)
	return nil
}
