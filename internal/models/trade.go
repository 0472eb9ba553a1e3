package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trade status values, also the literal strings used on disk.
const (
	StatusOpen   = "Open"
	StatusClosed = "Closed"
)

// Trade represents a single journal entry in the database.
//
// EntryPrice is the fill price for stock, the premium received for
// option-selling strategies and the premium paid for option-buying
// strategies. ExitPrice of zero is the sentinel for a position that is
// still open. PnL and Status are derived fields and are always
// recomputed from the others, never entered directly.
type Trade struct {
	gorm.Model
	Date               string          `gorm:"index;not null" json:"date"` // YYYY-MM-DD
	Symbol             string          `gorm:"index;not null" json:"symbol"`
	Strategy           Strategy        `gorm:"not null" json:"strategy"`
	EntryPrice         decimal.Decimal `gorm:"type:numeric(20,8);not null" json:"entry_price"`
	ExitPrice          decimal.Decimal `gorm:"type:numeric(20,8)" json:"exit_price"`
	Quantity           int64           `gorm:"not null" json:"quantity"`
	ContractMultiplier int64           `json:"contract_multiplier,omitempty"` // 0 = auto by strategy
	// Explicit column name because the default GORM naming turns "PnL"
	// into "pn_l".
	PnL    decimal.Decimal `gorm:"column:pnl;type:numeric(20,8)" json:"pnl"`
	Status string          `json:"status"`
	Notes  string          `json:"notes"`
}

// NormalizeSymbol returns the canonical form a symbol is stored in.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// DeriveStatus returns the lifecycle status implied by the exit price
// sentinel: zero means the position is still open.
func DeriveStatus(exit decimal.Decimal) string {
	if exit.IsZero() {
		return StatusOpen
	}
	return StatusClosed
}

// Multiplier returns the effective contract multiplier for this trade.
// A nonzero per-trade override takes precedence over the strategy
// default.
func (t *Trade) Multiplier() int64 {
	if t.ContractMultiplier != 0 {
		return t.ContractMultiplier
	}
	return t.Strategy.Multiplier()
}

// DedupKey is the identity used for duplicate detection. Two trades
// with the same date, symbol and entry price are considered the same
// trade by the import pipeline.
func (t *Trade) DedupKey() string {
	return fmt.Sprintf("%s|%s|%s", t.Date, NormalizeSymbol(t.Symbol), t.EntryPrice.String())
}
