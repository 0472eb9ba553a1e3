package journal

import (
	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// Stats summarizes journal performance. P&L figures consider closed
// trades only; TotalTrades counts every record.
type Stats struct {
	TotalPnL     decimal.Decimal `json:"total_pnl"`
	WinRate      float64         `json:"win_rate"`
	TotalTrades  int             `json:"total_trades"`
	ClosedTrades int             `json:"closed_trades"`
	AvgTrade     decimal.Decimal `json:"avg_trade"`
}

// Summarize computes summary statistics over a trade collection.
func Summarize(trades []models.Trade) Stats {
	stats := Stats{
		TotalPnL: decimal.Zero,
		AvgTrade: decimal.Zero,
	}
	stats.TotalTrades = len(trades)

	wins := 0
	for _, t := range trades {
		if t.Status != models.StatusClosed {
			continue
		}
		stats.ClosedTrades++
		stats.TotalPnL = stats.TotalPnL.Add(t.PnL)
		if t.PnL.IsPositive() {
			wins++
		}
	}
	if stats.ClosedTrades > 0 {
		stats.WinRate = float64(wins) / float64(stats.ClosedTrades)
		stats.AvgTrade = stats.TotalPnL.Div(decimal.NewFromInt(int64(stats.ClosedTrades))).Round(2)
	}
	return stats
}
