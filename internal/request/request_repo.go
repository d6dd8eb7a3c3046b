package request

import (
	"context"
	"database/sql"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/dbtx"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByIDForUpdate(ctx context.Context, id string) (*Request, error)
	ApplyDecision(ctx context.Context, id uuid.UUID, track approval.Track, from, to approval.State, actorID uuid.UUID, at time.Time) (int64, error)
	FindByUser(ctx context.Context, userID, kind string) ([]Request, error)
	FindPendingForBH(ctx context.Context, bhID string) ([]Request, error)
	FindPendingForHR(ctx context.Context) ([]Request, error)
	FindAll(ctx context.Context, f Filter) ([]Request, error)
	CountActivePermissions(ctx context.Context, userID string, from, to time.Time) (int64, error)
	FindApprovedInRange(ctx context.Context, userID, kind string, from, to time.Time) ([]Request, error)
	FindInRange(ctx context.Context, kinds []string, from, to time.Time) ([]Request, error)
	UpdateExceededLimit(ctx context.Context, id uuid.UUID, exceeded bool) error
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

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(req).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Preload("User").
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*Request, error) {
	var req Request
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// ApplyDecision menulis keputusan satu track secara compare-and-set.
// Baris hanya berubah jika track masih PENDING dan track lain belum bergeser
// sejak dibaca; nol baris berarti keputusan kalah balapan.
func (r *repository) ApplyDecision(
	ctx context.Context,
	id uuid.UUID,
	track approval.Track,
	from, to approval.State,
	actorID uuid.UUID,
	at time.Time,
) (int64, error) {
	statusCol, actorCol, actedCol := columns(track)
	otherCol, _, _ := columns(other(track))

	res := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Where(statusCol+" = ?", string(approval.StatusPending)).
		Where(otherCol+" = ?", string(from.Other(track))).
		Updates(map[string]any{
			statusCol:    string(to.Of(track)),
			actorCol:     actorID,
			actedCol:     at,
			"status":     string(to.Aggregate()),
			"updated_at": at,
		})
	return res.RowsAffected, res.Error
}

func (r *repository) FindByUser(ctx context.Context, userID, kind string) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Scopes(scope.User(userID), scope.Optional("kind", kind)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindPendingForBH(ctx context.Context, bhID string) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("target_bh_id = ? AND bh_status = ? AND status = ?", bhID, string(approval.StatusPending), string(approval.StatusPending)).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindPendingForHR(ctx context.Context) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("hr_status = ? AND status = ?", string(approval.StatusPending), string(approval.StatusPending)).
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]Request, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Scopes(
			scope.Optional("status", f.Status),
			scope.Optional("kind", f.Kind),
			scope.Optional("user_id", f.UserID),
		)
	if f.From != nil {
		q = q.Where("end_date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_date <= ?", *f.To)
	}

	var out []Request
	err := q.Order("start_date DESC").Order("created_at DESC").Find(&out).Error
	return out, err
}

// CountActivePermissions menghitung permission yang belum ditolak pada rentang tanggal.
func (r *repository) CountActivePermissions(ctx context.Context, userID string, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&Request{}).
		Scopes(scope.User(userID), scope.Between("start_date", from, to)).
		Where("kind = ? AND status <> ?", KindPermission, string(approval.StatusRejected)).
		Count(&n).Error
	return n, err
}

func (r *repository) FindApprovedInRange(ctx context.Context, userID, kind string, from, to time.Time) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Scopes(scope.User(userID), scope.Optional("kind", kind)).
		Where("status = ?", string(approval.StatusApproved)).
		Where("start_date <= ? AND end_date >= ?", to, from).
		Order("start_date ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindInRange(ctx context.Context, kinds []string, from, to time.Time) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Where("kind IN ?", kinds).
		Scopes(scope.Between("start_date", from, to)).
		Order("user_id ASC").
		Order("start_date ASC").
		Order("created_at ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) UpdateExceededLimit(ctx context.Context, id uuid.UUID, exceeded bool) error {
	return r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", id).
		Update("is_exceeded_limit", exceeded).Error
}

func other(t approval.Track) approval.Track {
	if t == approval.TrackBH {
		return approval.TrackHR
	}
	return approval.TrackBH
}
