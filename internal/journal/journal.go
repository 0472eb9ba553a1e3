package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"trade-journal-go/internal/models"
)

// ErrNotFound is returned when no stored trade matches a dedup key.
var ErrNotFound = errors.New("trade not found")

// Store is the persistence boundary. The journal never touches files or
// SQL itself; it loads the full collection, computes a replacement and
// hands it back as a unit, so readers never observe a half-written
// state.
type Store interface {
	Load() ([]models.Trade, error)
	Replace([]models.Trade) error
}

// Service implements the journal operations on top of a Store.
type Service struct {
	log   *zap.Logger
	store Store
}

// NewService creates a journal service.
func NewService(log *zap.Logger, store Store) *Service {
	return &Service{log: log, store: store}
}

// dateLayouts are the input formats accepted for trade dates, tried in
// order. The canonical stored form is always YYYY-MM-DD.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// NormalizeDate coerces a raw date string to the canonical YYYY-MM-DD
// form.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date %q", s)
}

// Normalize puts the entered fields of t into canonical form: symbol
// upper-cased and trimmed, date in YYYY-MM-DD. Derived fields are left
// for Recompute.
func Normalize(t *models.Trade) error {
	t.Symbol = models.NormalizeSymbol(t.Symbol)
	t.Notes = strings.TrimSpace(t.Notes)
	if strings.TrimSpace(t.Date) == "" {
		return &ValidationError{Field: "date", Code: CodeMissingField, Reason: "date is required"}
	}
	date, err := NormalizeDate(t.Date)
	if err != nil {
		return &ValidationError{Field: "date", Code: CodeInvalidDate, Reason: err.Error()}
	}
	t.Date = date
	return nil
}

// List returns all stored trades in insertion order.
func (s *Service) List() ([]models.Trade, error) {
	return s.store.Load()
}

// Add validates and appends one trade, recomputing its derived fields
// before the collection is persisted.
func (s *Service) Add(t models.Trade) (models.Trade, error) {
	if err := Normalize(&t); err != nil {
		return models.Trade{}, err
	}
	if err := Validate(&t); err != nil {
		return models.Trade{}, err
	}
	Recompute(&t)

	trades, err := s.store.Load()
	if err != nil {
		return models.Trade{}, err
	}
	trades = append(trades, t)
	if err := s.store.Replace(trades); err != nil {
		return models.Trade{}, err
	}

	s.log.Info("trade added",
		zap.String("symbol", t.Symbol),
		zap.String("strategy", string(t.Strategy)),
		zap.String("status", t.Status),
		zap.String("pnl", t.PnL.String()),
	)
	return t, nil
}

// Update replaces the stored trade identified by key with t, after
// validation and recomputation. This is how a position is closed: edit
// the trade, set a nonzero exit price, and pnl plus status follow.
func (s *Service) Update(key string, t models.Trade) (models.Trade, error) {
	if err := Normalize(&t); err != nil {
		return models.Trade{}, err
	}
	if err := Validate(&t); err != nil {
		return models.Trade{}, err
	}
	Recompute(&t)

	trades, err := s.store.Load()
	if err != nil {
		return models.Trade{}, err
	}
	idx := -1
	for i := range trades {
		if trades[i].DedupKey() == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Trade{}, fmt.Errorf("update %q: %w", key, ErrNotFound)
	}
	t.Model = trades[idx].Model
	trades[idx] = t
	if err := s.store.Replace(trades); err != nil {
		return models.Trade{}, err
	}

	s.log.Info("trade updated", zap.String("key", key), zap.String("status", t.Status))
	return t, nil
}

// Close sets the exit price on the trade identified by key and lets the
// derived fields follow.
func (s *Service) Close(key string, exit decimal.Decimal) (models.Trade, error) {
	trades, err := s.store.Load()
	if err != nil {
		return models.Trade{}, err
	}
	for i := range trades {
		if trades[i].DedupKey() != key {
			continue
		}
		trades[i].ExitPrice = exit
		Recompute(&trades[i])
		if err := s.store.Replace(trades); err != nil {
			return models.Trade{}, err
		}
		s.log.Info("trade closed",
			zap.String("key", key),
			zap.String("exit_price", exit.String()),
			zap.String("pnl", trades[i].PnL.String()),
		)
		return trades[i], nil
	}
	return models.Trade{}, fmt.Errorf("close %q: %w", key, ErrNotFound)
}

// RemoveDuplicates drops stored trades whose dedup key repeats, keeping
// the first occurrence, and returns how many were removed.
func (s *Service) RemoveDuplicates() (int, error) {
	trades, err := s.store.Load()
	if err != nil {
		return 0, err
	}

	seen := make(map[string]struct{}, len(trades))
	kept := trades[:0]
	for _, t := range trades {
		key := t.DedupKey()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, t)
	}

	removed := len(trades) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.store.Replace(kept); err != nil {
		return 0, err
	}
	s.log.Info("duplicate trades removed", zap.Int("removed", removed))
	return removed, nil
}
