package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	model "auction-settlement/internal/models"
	"auction-settlement/internal/tradeerrors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store persists per-item royalty terms and the settlement journal in SQLite.
// It satisfies both the trading service's RoyaltyPolicy and Journal contracts.
type Store struct {
	db *gorm.DB
}

// Open creates a new SQLite store at path. ":memory:" is accepted for tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create DB directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&model.RoyaltyTermsRecord{}, &model.JournalEntry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

// SetRoyaltyTerms creates or replaces the royalty configuration for an item.
// A fraction at or above one can never settle, so it is rejected at intake.
func (s *Store) SetRoyaltyTerms(item model.ItemID, terms model.RoyaltyTerms) error {
	if terms.Numerator > 0 && terms.Numerator >= terms.Denominator {
		return fmt.Errorf("set royalty terms for item %s: %d/%d: %w", item, terms.Numerator, terms.Denominator, tradeerrors.ErrRoyaltyOutOfRange)
	}
	record := model.RoyaltyTermsRecord{
		Item:        string(item),
		Numerator:   terms.Numerator,
		Denominator: terms.Denominator,
		Recipient:   string(terms.Recipient),
	}
	return s.db.Save(&record).Error
}

// TermsFor retrieves the royalty terms for an item. A missing record is not
// an error; it means no royalty is due.
func (s *Store) TermsFor(item model.ItemID) (*model.RoyaltyTerms, error) {
	var record model.RoyaltyTermsRecord
	err := s.db.First(&record, "item = ?", string(item)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.RoyaltyTerms{
		Numerator:   record.Numerator,
		Denominator: record.Denominator,
		Recipient:   model.AccountID(record.Recipient),
	}, nil
}

// Append writes one journal entry
func (s *Store) Append(entry model.JournalEntry) error {
	return s.db.Create(&entry).Error
}

// EntriesForItem returns the journal entries recorded for an item, oldest first
func (s *Store) EntriesForItem(item model.ItemID) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := s.db.Where("item = ?", string(item)).Order("created_at asc").Find(&entries).Error
	return entries, err
}

// EntriesForBidder returns the journal entries recorded for a bidder, oldest first
func (s *Store) EntriesForBidder(bidder model.AccountID) ([]model.JournalEntry, error) {
	var entries []model.JournalEntry
	err := s.db.Where("bidder = ?", string(bidder)).Order("created_at asc").Find(&entries).Error
	return entries, err
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
