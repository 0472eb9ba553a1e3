package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trade-journal-go/internal/config"
	"trade-journal-go/internal/database"
	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/logger"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "tradejournal",
	Short: "Personal trade journal for stock and option positions",
	Long: `Tradejournal keeps a local journal of stock and option trades.

It provides commands for:
  - Recording trades with strategy-aware P&L
  - Closing open positions
  - Importing brokerage CSV exports, with duplicate detection
  - Summary statistics over the journal
  - Cleaning duplicate records`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "./configs", "directory containing config.yml")
}

// deps is the shared service stack a command runs against.
type deps struct {
	cfg   config.Config
	log   *zap.Logger
	svc   *journal.Service
	store journal.Store
}

func setup() (*deps, error) {
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	store := database.NewGormStore(db)
	return &deps{
		cfg:   cfg,
		log:   log,
		svc:   journal.NewService(log, store),
		store: store,
	}, nil
}
