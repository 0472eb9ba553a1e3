package journal

import (
	"strings"

	"github.com/shopspring/decimal"

	"trade-journal-go/internal/models"
)

// Filter selects a subset of the journal. Zero-valued criteria are
// inactive. Dates compare lexicographically, which is correct for the
// canonical YYYY-MM-DD form.
type Filter struct {
	StartDate  string
	EndDate    string
	Symbols    []string
	Strategies []models.Strategy
	Statuses   []string
	MinPnL     *decimal.Decimal
	MaxPnL     *decimal.Decimal
	Search     string // case-insensitive substring over symbol and notes
}

// Apply returns the trades matching every active criterion, preserving
// order.
func (f Filter) Apply(trades []models.Trade) []models.Trade {
	var out []models.Trade
	for _, t := range trades {
		if f.matches(&t) {
			out = append(out, t)
		}
	}
	return out
}

func (f Filter) matches(t *models.Trade) bool {
	if f.StartDate != "" && t.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && t.Date > f.EndDate {
		return false
	}
	if len(f.Symbols) > 0 && !containsFold(f.Symbols, t.Symbol) {
		return false
	}
	if len(f.Strategies) > 0 {
		found := false
		for _, s := range f.Strategies {
			if s == t.Strategy {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Statuses) > 0 && !containsFold(f.Statuses, t.Status) {
		return false
	}
	if f.MinPnL != nil && t.PnL.LessThan(*f.MinPnL) {
		return false
	}
	if f.MaxPnL != nil && t.PnL.GreaterThan(*f.MaxPnL) {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Symbol), needle) &&
			!strings.Contains(strings.ToLower(t.Notes), needle) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, s string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, s) {
			return true
		}
	}
	return false
}
