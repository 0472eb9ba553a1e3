package database

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"trade-journal-go/internal/models"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := NewDatabase("file::memory:?cache=shared&test=" + t.Name())
	assert.NoError(t, err)
	return NewGormStore(db)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)

	trades, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, trades)

	in := []models.Trade{
		{
			Date:       "2023-01-05",
			Symbol:     "AAPL",
			Strategy:   models.LongStock,
			EntryPrice: dec("150.00"),
			ExitPrice:  dec("160.00"),
			Quantity:   10,
			PnL:        dec("100"),
			Status:     models.StatusClosed,
			Notes:      "swing",
		},
		{
			Date:       "2023-02-10",
			Symbol:     "ETHA",
			Strategy:   models.CashSecuredPut,
			EntryPrice: dec("1.06"),
			Quantity:   -2,
			Status:     models.StatusOpen,
		},
	}
	assert.NoError(t, store.Replace(in))

	trades, err = store.Load()
	assert.NoError(t, err)
	assert.Len(t, trades, 2)
	assert.Equal(t, "AAPL", trades[0].Symbol)
	assert.True(t, trades[0].EntryPrice.Equal(dec("150.00")))
	assert.True(t, trades[0].PnL.Equal(dec("100")))
	assert.Equal(t, models.CashSecuredPut, trades[1].Strategy)
	assert.Equal(t, int64(-2), trades[1].Quantity)
}

func TestStoreReplaceIsAFullSwap(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Replace([]models.Trade{
		{Date: "2023-01-01", Symbol: "AAPL", Strategy: models.LongStock, EntryPrice: dec("1"), Quantity: 1, Status: models.StatusOpen},
		{Date: "2023-01-02", Symbol: "MSFT", Strategy: models.LongStock, EntryPrice: dec("2"), Quantity: 1, Status: models.StatusOpen},
	}))

	assert.NoError(t, store.Replace([]models.Trade{
		{Date: "2023-01-03", Symbol: "TSLA", Strategy: models.LongStock, EntryPrice: dec("3"), Quantity: 1, Status: models.StatusOpen},
	}))

	trades, err := store.Load()
	assert.NoError(t, err)
	assert.Len(t, trades, 1)
	assert.Equal(t, "TSLA", trades[0].Symbol)
}

func TestStoreLoadPreservesInsertionOrder(t *testing.T) {
	store := newTestStore(t)

	in := []models.Trade{
		{Date: "2023-03-01", Symbol: "CCC", Strategy: models.LongStock, EntryPrice: dec("3"), Quantity: 1, Status: models.StatusOpen},
		{Date: "2023-01-01", Symbol: "AAA", Strategy: models.LongStock, EntryPrice: dec("1"), Quantity: 1, Status: models.StatusOpen},
		{Date: "2023-02-01", Symbol: "BBB", Strategy: models.LongStock, EntryPrice: dec("2"), Quantity: 1, Status: models.StatusOpen},
	}
	assert.NoError(t, store.Replace(in))

	// Loaded records keep their ids through a replace, so appending
	// after a reload does not reorder the collection.
	trades, err := store.Load()
	assert.NoError(t, err)
	trades = append(trades, models.Trade{Date: "2023-04-01", Symbol: "DDD", Strategy: models.LongStock, EntryPrice: dec("4"), Quantity: 1, Status: models.StatusOpen})
	assert.NoError(t, store.Replace(trades))

	trades, err = store.Load()
	assert.NoError(t, err)
	assert.Len(t, trades, 4)
	for i, want := range []string{"CCC", "AAA", "BBB", "DDD"} {
		assert.Equal(t, want, trades[i].Symbol)
	}
}
