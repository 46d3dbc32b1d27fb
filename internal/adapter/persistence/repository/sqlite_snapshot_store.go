package repository

import (
	"context"
	"errors"
	"time"

	"github.com/mayconabentes-bi/calculadora-orcamento-cdl-sub001/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRow is the single-key blob table backing the local durable store.
type snapshotRow struct {
	Key       string    `gorm:"primaryKey;column:key"`
	Blob      []byte    `gorm:"column:blob"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (snapshotRow) TableName() string { return "snapshots" }

// SQLiteSnapshotStore persists the serialized application state in an
// embedded SQLite database. It is the durability boundary of the service:
// a calculation is saved once this store accepts the write, regardless of
// the remote mirror.
type SQLiteSnapshotStore struct {
	db *gorm.DB
}

var _ interfaces.ISnapshotStore = (*SQLiteSnapshotStore)(nil)

func NewSQLiteSnapshotStore(db *gorm.DB) (*SQLiteSnapshotStore, error) {
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, err
	}
	return &SQLiteSnapshotStore{db: db}, nil
}

func (s *SQLiteSnapshotStore) Load(ctx context.Context, key string) ([]byte, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Blob, nil
}

func (s *SQLiteSnapshotStore) Save(ctx context.Context, key string, blob []byte) error {
	row := snapshotRow{Key: key, Blob: blob, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(&row).Error
}
