package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"pointarthub/models"
)

// CollectionStore is the read/write boundary the backup engine works
// through: select-all, delete-matching, insert-batch over a known
// collection. Collection names come from the closed enum in models, never
// from caller-supplied strings.
type CollectionStore interface {
	SelectAll(ctx context.Context, c models.Collection) ([]map[string]any, error)
	DeleteAll(ctx context.Context, c models.Collection) error
	InsertBatch(ctx context.Context, c models.Collection, records []map[string]any) error
}

type gormCollectionStore struct {
	db *gorm.DB
}

// NewCollectionStore creates a CollectionStore backed by the GORM
// connection.
func NewCollectionStore(db *gorm.DB) CollectionStore {
	return &gormCollectionStore{db: db}
}

func (s *gormCollectionStore) SelectAll(ctx context.Context, c models.Collection) ([]map[string]any, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("unknown collection %q", c)
	}
	var rows []map[string]any
	if err := s.db.WithContext(ctx).Table(c.String()).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormCollectionStore) DeleteAll(ctx context.Context, c models.Collection) error {
	if !c.Valid() {
		return fmt.Errorf("unknown collection %q", c)
	}
	// Table name comes from the closed enum, so string concatenation is safe.
	return s.db.WithContext(ctx).Exec("DELETE FROM " + c.String()).Error
}

func (s *gormCollectionStore) InsertBatch(ctx context.Context, c models.Collection, records []map[string]any) error {
	if !c.Valid() {
		return fmt.Errorf("unknown collection %q", c)
	}
	if len(records) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Table(c.String()).Create(&records).Error
}
