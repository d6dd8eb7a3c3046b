package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/dbtx"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Record) error
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error)
	CheckOut(ctx context.Context, id uuid.UUID, at time.Time, photo string) (int64, error)
	CreateBreak(ctx context.Context, b *BreakLog) error
	CloseBreak(ctx context.Context, id uuid.UUID, end time.Time, minutes int) (int64, error)
	FindInRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error)
	FindByDate(ctx context.Context, date time.Time) ([]Record, error)
	FindStaleOpenBreaks(ctx context.Context, before time.Time) ([]BreakLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Preload("Breaks", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC")
		}).
		Scopes(scope.User(userID)).
		Where("attendance_date = ?", date).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CheckOut hanya mengisi check_out yang masih kosong; nol baris berarti sudah checkout.
func (r *repository) CheckOut(ctx context.Context, id uuid.UUID, at time.Time, photo string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Record{}).
		Where("id = ? AND check_out IS NULL", id).
		Updates(map[string]any{
			"check_out":       at,
			"check_out_photo": photo,
			"updated_at":      at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) CreateBreak(ctx context.Context, b *BreakLog) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *repository) CloseBreak(ctx context.Context, id uuid.UUID, end time.Time, minutes int) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&BreakLog{}).
		Where("id = ? AND end_time IS NULL", id).
		Updates(map[string]any{
			"end_time":         end,
			"duration_minutes": minutes,
		})
	return res.RowsAffected, res.Error
}

// FindInRange memuat absensi beserta break pada rentang tanggal inklusif.
// userID kosong berarti semua user.
func (r *repository) FindInRange(ctx context.Context, userID string, from, to time.Time) ([]Record, error) {
	var out []Record
	err := r.db.WithContext(ctx).
		Preload("Breaks").
		Scopes(
			scope.Optional("user_id", userID),
			scope.Between("attendance_date", from, to),
		).
		Order("attendance_date ASC").
		Order("check_in ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindByDate(ctx context.Context, date time.Time) ([]Record, error) {
	var out []Record
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Breaks").
		Where("attendance_date = ?", date).
		Order("check_in ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindStaleOpenBreaks(ctx context.Context, before time.Time) ([]BreakLog, error) {
	var out []BreakLog
	err := r.db.WithContext(ctx).
		Where("end_time IS NULL AND start_time < ?", before).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}
