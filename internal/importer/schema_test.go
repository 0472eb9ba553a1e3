package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSchema(t *testing.T) {
	testCases := []struct {
		name   string
		header []string
		want   Schema
	}{
		{
			name:   "tastytrade activity export",
			header: []string{"Time", "Symbol", "MarketOrFill", "Description"},
			want:   SchemaTastytrade,
		},
		{
			name:   "tastytrade with price column and timestamp",
			header: []string{"symbol", "price", "description", "time"},
			want:   SchemaTastytrade,
		},
		{
			name:   "tastytrade with price column and status",
			header: []string{"Symbol", "Price", "Description", "Status"},
			want:   SchemaTastytrade,
		},
		{
			name:   "generic journal export",
			header: []string{"Date", "Symbol", "Strategy", "Entry Price", "Exit Price", "Quantity"},
			want:   SchemaGeneric,
		},
		{
			name:   "description without a price column stays generic",
			header: []string{"Symbol", "Description", "Quantity"},
			want:   SchemaGeneric,
		},
		{
			name:   "price and description without corroboration stays generic",
			header: []string{"Symbol", "Price", "Description"},
			want:   SchemaGeneric,
		},
		{
			name:   "strategy column is conclusively generic",
			header: []string{"Date", "Symbol", "Strategy", "Price", "Qty", "Description"},
			want:   SchemaGeneric,
		},
		{
			name:   "entry price column is conclusively generic",
			header: []string{"Symbol", "Entry Price", "Description", "Time"},
			want:   SchemaGeneric,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectSchema(tc.header))
		})
	}
}

func TestGuessMapping(t *testing.T) {
	mapping := GuessMapping([]string{"Trade Date", "Ticker", "Strategy", "Entry Price", "Close Price", "Qty", "Comments"})

	assert.Equal(t, "Trade Date", mapping[FieldDate])
	assert.Equal(t, "Ticker", mapping[FieldSymbol])
	assert.Equal(t, "Strategy", mapping[FieldStrategy])
	assert.Equal(t, "Entry Price", mapping[FieldEntryPrice])
	assert.Equal(t, "Close Price", mapping[FieldExitPrice])
	assert.Equal(t, "Qty", mapping[FieldQuantity])
	assert.Equal(t, "Comments", mapping[FieldNotes])
}

func TestGuessMappingFirstColumnWins(t *testing.T) {
	// Both "Entry" and "Price" are entry-price synonyms; the earlier
	// column keeps the slot.
	mapping := GuessMapping([]string{"Entry", "Price"})
	assert.Equal(t, "Entry", mapping[FieldEntryPrice])
}

func TestGuessMappingIgnoresUnknownHeaders(t *testing.T) {
	mapping := GuessMapping([]string{"Symbol", "Broker Account", "Commission"})
	assert.Len(t, mapping, 1)
	assert.Equal(t, "Symbol", mapping[FieldSymbol])
}
