package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is the single-table layout for the Postgres-backed store:
// one row per collection key.
type Entry struct {
	Key       string `gorm:"type:varchar(64);primaryKey"`
	Value     []byte `gorm:"type:jsonb;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime"`
}

// TableName keeps the table name explicit instead of gorm's pluralization.
func (Entry) TableName() string { return "store_entries" }

// Gorm is a Store persisted in Postgres through GORM.
type Gorm struct {
	db *gorm.DB
}

// NewGorm opens a connection pool against dsn and migrates the entries table.
func NewGorm(dsn string) (*Gorm, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("migrate store_entries: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry Entry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	entry := Entry{Key: key, Value: value}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}
	return nil
}

func (g *Gorm) Has(ctx context.Context, key string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&Entry{}).
		Where("key = ? AND octet_length(value) > 0", key).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("store has %q: %w", key, err)
	}
	return count > 0, nil
}
