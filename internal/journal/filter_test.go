package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trade-journal-go/internal/models"
)

func sampleTrades() []models.Trade {
	return []models.Trade{
		{Date: "2023-01-05", Symbol: "AAPL", Strategy: models.LongStock, Status: models.StatusClosed, PnL: dec("100"), Notes: "earnings play"},
		{Date: "2023-02-10", Symbol: "MSFT", Strategy: models.CashSecuredPut, Status: models.StatusOpen, PnL: dec("0"), Notes: "wheel entry"},
		{Date: "2023-03-15", Symbol: "AAPL", Strategy: models.CoveredCall, Status: models.StatusClosed, PnL: dec("-25"), Notes: ""},
	}
}

func TestFilterApply(t *testing.T) {
	trades := sampleTrades()
	minPnL := dec("0")

	testCases := []struct {
		name    string
		filter  Filter
		wantLen int
	}{
		{"no criteria", Filter{}, 3},
		{"date range", Filter{StartDate: "2023-02-01", EndDate: "2023-02-28"}, 1},
		{"start date only", Filter{StartDate: "2023-02-01"}, 2},
		{"symbol case-insensitive", Filter{Symbols: []string{"aapl"}}, 2},
		{"strategy", Filter{Strategies: []models.Strategy{models.CashSecuredPut}}, 1},
		{"status", Filter{Statuses: []string{models.StatusClosed}}, 2},
		{"min pnl", Filter{MinPnL: &minPnL}, 2},
		{"search notes", Filter{Search: "wheel"}, 1},
		{"search symbol", Filter{Search: "msf"}, 1},
		{"combined", Filter{Symbols: []string{"AAPL"}, Statuses: []string{models.StatusClosed}, StartDate: "2023-03-01"}, 1},
		{"no match", Filter{Symbols: []string{"TSLA"}}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.filter.Apply(trades)
			assert.Len(t, got, tc.wantLen)
		})
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter{Symbols: []string{"AAPL"}}.Apply(sampleTrades())
	assert.Len(t, got, 2)
	assert.Equal(t, "2023-01-05", got[0].Date)
	assert.Equal(t, "2023-03-15", got[1].Date)
}
