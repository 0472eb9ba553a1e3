package database

import (
	"gorm.io/gorm"

	"trade-journal-go/internal/journal"
	"trade-journal-go/internal/models"
)

// GormStore persists the trade collection in the trades table. It
// implements journal.Store: every mutation arrives as a full
// replacement collection and is applied inside one transaction, so a
// reader either sees the old collection or the new one, never a mix.
type GormStore struct {
	db *gorm.DB
}

var _ journal.Store = (*GormStore)(nil)

// NewGormStore creates a store backed by db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load returns all trades in insertion order.
func (s *GormStore) Load() ([]models.Trade, error) {
	var trades []models.Trade
	if err := s.db.Order("id").Find(&trades).Error; err != nil {
		return nil, &journal.StorageError{Op: "load", Err: err}
	}
	return trades, nil
}

// Replace swaps the stored collection for trades as a unit. Records that
// were loaded keep their ids, appended records get fresh ones, so the
// id column still reflects insertion order after the swap.
func (s *GormStore) Replace(trades []models.Trade) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		del := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(&models.Trade{})
		if del.Error != nil {
			return del.Error
		}
		// Insert row by row: a batch insert mixing kept ids with fresh
		// records would write explicit zero ids instead of letting
		// sqlite assign them.
		for i := range trades {
			if err := tx.Create(&trades[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &journal.StorageError{Op: "save", Err: err}
	}
	return nil
}
