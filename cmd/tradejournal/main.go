package main

import (
	"os"

	"trade-journal-go/cmd/tradejournal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
