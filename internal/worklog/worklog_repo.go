package worklog

import (
	"context"
	"database/sql"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/dbtx"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=worklog_repo.go -destination=mock/worklog_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *WorkLog) error
	FindByUserAndDateForUpdate(ctx context.Context, userID string, date time.Time) (*WorkLog, error)
	UpdateOpen(ctx context.Context, w *WorkLog) (int64, error)
	Close(ctx context.Context, id uuid.UUID, closing []byte, at time.Time) (int64, error)
	FindAll(ctx context.Context, f Filter) ([]WorkLog, error)
	CountInRange(ctx context.Context, userID string, from, to time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, w *WorkLog) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(w).Error
}

func (r *repository) FindByUserAndDateForUpdate(ctx context.Context, userID string, date time.Time) (*WorkLog, error) {
	var w WorkLog
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(scope.User(userID)).
		Where("log_date = ?", date).
		First(&w).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateOpen menimpa isi log selama statusnya masih OPEN.
func (r *repository) UpdateOpen(ctx context.Context, w *WorkLog) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&WorkLog{}).
		Where("id = ? AND log_status = ?", w.ID, StatusOpen).
		Updates(map[string]any{
			"designation":     w.Designation,
			"payload":         w.Payload,
			"opening_metrics": w.OpeningMetrics,
			"closing_metrics": w.ClosingMetrics,
			"updated_at":      w.UpdatedAt,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) Close(ctx context.Context, id uuid.UUID, closing []byte, at time.Time) (int64, error) {
	updates := map[string]any{
		"log_status": StatusClosed,
		"closed_at":  at,
		"updated_at": at,
	}
	if len(closing) > 0 {
		updates["closing_metrics"] = datatypes.JSON(closing)
	}
	res := r.db.WithContext(ctx).
		Model(&WorkLog{}).
		Where("id = ? AND log_status = ?", id, StatusOpen).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]WorkLog, error) {
	var out []WorkLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Scopes(
			scope.Optional("user_id", f.UserID),
			scope.Optional("designation", f.Designation),
			scope.Between("log_date", f.From, f.To),
		).
		Order("log_date DESC").
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) CountInRange(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&WorkLog{}).
		Scopes(scope.User(userID), scope.Between("log_date", from, to)).
		Count(&n).Error
	return n, err
}
