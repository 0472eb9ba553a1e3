package journal

import (
	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// ComputePnL returns the realized profit/loss of a trade.
//
// Price conventions per strategy:
//   - Option sellers (Short Call/Put, Covered Call, Cash Secured Put):
//     entry is the premium received, exit the premium paid to close, so
//     pnl = (entry - exit) * |quantity| * multiplier.
//   - Option buyers (Long Call/Put): entry is the premium paid, exit the
//     premium received, so pnl = (exit - entry) * |quantity| * multiplier.
//   - Stock and Other: pnl = (exit - entry) * quantity * multiplier with
//     the stored signed quantity. A short stock position recorded with
//     negative quantity already carries its sign there, so direction
//     comes from the quantity rather than the strategy.
//
// An exit price of zero is the open-position sentinel and always yields
// zero: open trades never carry realized P&L. multiplierOverride of zero
// means "use the strategy default".
func ComputePnL(entry, exit decimal.Decimal, quantity int64, strategy models.Strategy, multiplierOverride int64) decimal.Decimal {
	if exit.IsZero() {
		return decimal.Zero
	}
	// Zero quantity is rejected by validation before it gets here; guard
	// so a stray record cannot produce a bogus figure.
	if quantity == 0 {
		return decimal.Zero
	}

	mult := multiplierOverride
	if mult == 0 {
		mult = strategy.Multiplier()
	}
	m := decimal.NewFromInt(mult)

	if strategy.Instrument() == models.InstrumentOption {
		qty := decimal.NewFromInt(quantity).Abs()
		if strategy.Direction() < 0 {
			return entry.Sub(exit).Mul(qty).Mul(m)
		}
		return exit.Sub(entry).Mul(qty).Mul(m)
	}

	return exit.Sub(entry).Mul(decimal.NewFromInt(quantity)).Mul(m)
}

// Recompute derives pnl and status on t from the entered fields. Any
// edit to date, prices, quantity or strategy must be followed by a call
// here before the trade is persisted.
func Recompute(t *models.Trade) {
	t.PnL = ComputePnL(t.EntryPrice, t.ExitPrice, t.Quantity, t.Strategy, t.ContractMultiplier)
	t.Status = models.DeriveStatus(t.ExitPrice)
}
