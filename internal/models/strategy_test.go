package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStrategyClassification(t *testing.T) {
	testCases := []struct {
		strategy   Strategy
		instrument InstrumentKind
		optionType OptionType
		direction  int
		multiplier int64
	}{
		{LongStock, InstrumentStock, OptionNone, +1, 1},
		{ShortStock, InstrumentStock, OptionNone, -1, 1},
		{LongCall, InstrumentOption, OptionCall, +1, 100},
		{ShortCall, InstrumentOption, OptionCall, -1, 100},
		{LongPut, InstrumentOption, OptionPut, +1, 100},
		{ShortPut, InstrumentOption, OptionPut, -1, 100},
		{CoveredCall, InstrumentOption, OptionCall, -1, 100},
		{CashSecuredPut, InstrumentOption, OptionPut, -1, 100},
		{Other, InstrumentStock, OptionNone, +1, 1},
	}

	for _, tc := range testCases {
		t.Run(string(tc.strategy), func(t *testing.T) {
			assert.True(t, tc.strategy.Valid())
			assert.Equal(t, tc.instrument, tc.strategy.Instrument())
			assert.Equal(t, tc.optionType, tc.strategy.Option())
			assert.Equal(t, tc.direction, tc.strategy.Direction())
			assert.Equal(t, tc.multiplier, tc.strategy.Multiplier())
		})
	}
}

func TestParseStrategy(t *testing.T) {
	s, ok := ParseStrategy("  Cash Secured Put ")
	assert.True(t, ok)
	assert.Equal(t, CashSecuredPut, s)

	_, ok = ParseStrategy("Iron Condor")
	assert.False(t, ok)

	_, ok = ParseStrategy("")
	assert.False(t, ok)
}

func TestStrategiesCoversEnum(t *testing.T) {
	all := Strategies()
	assert.Len(t, all, 9)
	for _, s := range all {
		assert.True(t, s.Valid(), string(s))
	}
}

func TestTradeMultiplierOverride(t *testing.T) {
	trade := Trade{Strategy: LongCall}
	assert.Equal(t, int64(100), trade.Multiplier())

	// Nonzero per-trade override wins over the strategy default.
	trade.ContractMultiplier = 10
	assert.Equal(t, int64(10), trade.Multiplier())

	stock := Trade{Strategy: LongStock}
	assert.Equal(t, int64(1), stock.Multiplier())
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusOpen, DeriveStatus(decimal.Zero))
	assert.Equal(t, StatusClosed, DeriveStatus(decimal.RequireFromString("0.15")))
}

func TestDedupKeyStability(t *testing.T) {
	a := Trade{Date: "2023-01-01", Symbol: "AAPL", EntryPrice: decimal.RequireFromString("150.0")}
	b := Trade{Date: "2023-01-01", Symbol: "  aapl ", EntryPrice: decimal.RequireFromString("150.00")}

	// Symbol case/whitespace and decimal formatting must not create
	// spurious distinct keys.
	assert.Equal(t, a.DedupKey(), b.DedupKey())
}
