package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inventory-control/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SlotRecord is one row of the inventory_snapshots table.
type SlotRecord struct {
	Key       string    `gorm:"column:slot_key;primaryKey;size:64"`
	Data      []byte    `gorm:"column:data;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name used by SlotRecord.
func (SlotRecord) TableName() string {
	return "inventory_snapshots"
}

// GormBackend stores each key as a row of inventory_snapshots.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend creates a backend on an open connection. Call Migrate before use.
func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

// Migrate creates or updates the snapshot table and verifies its columns.
func (b *GormBackend) Migrate(ctx context.Context) error {
	db := b.db.WithContext(ctx)
	if err := db.AutoMigrate(&SlotRecord{}); err != nil {
		return fmt.Errorf("failed to migrate snapshot table: %w", err)
	}
	missing, err := database.MissingColumns(db, SlotRecord{}.TableName(), "slot_key", "data", "updated_at")
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("snapshot table is missing columns: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Get reads the row for key.
func (b *GormBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var rec SlotRecord
	err := b.db.WithContext(ctx).Where("slot_key = ?", key).Take(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}
	return rec.Data, nil
}

// Put inserts or replaces the row for key.
func (b *GormBackend) Put(ctx context.Context, key string, data []byte) error {
	rec := SlotRecord{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}
