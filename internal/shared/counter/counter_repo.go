package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Counter menyimpan nilai terakhir untuk setiap jenis nomor referensi.
type Counter struct {
	CounterType string `gorm:"type:varchar(40);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	var nextValue int64

	// Upsert + increment dalam satu statement supaya aman dari race antar request
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (counter_type, last_value, updated_at)
		VALUES (?, 1, ?)
		ON CONFLICT (counter_type) DO UPDATE
		SET last_value = counters.last_value + 1, updated_at = excluded.updated_at
		RETURNING last_value
	`, counterType, time.Now().UTC()).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}
