package wfh

import (
	"context"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/scope"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=wfh_repo.go -destination=mock/wfh_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r *Request) error
	FindByID(ctx context.Context, id string) (*Request, error)
	FindByUser(ctx context.Context, userID string) ([]Request, error)
	FindPendingAtLevel(ctx context.Context, level int) ([]Request, error)
	FindDecided(ctx context.Context, status string) ([]Request, error)
	ApplyStep(ctx context.Context, next Request, s Step) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
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

func (r *repository) FindByUser(ctx context.Context, userID string) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Scopes(scope.User(userID)).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *repository) FindPendingAtLevel(ctx context.Context, level int) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ? AND current_level = ?", string(approval.StatusPending), level).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// FindDecided memuat request yang sudah final; status kosong berarti keduanya.
func (r *repository) FindDecided(ctx context.Context, status string) ([]Request, error) {
	var out []Request
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("status <> ?", string(approval.StatusPending)).
		Scopes(scope.Optional("status", status)).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// ApplyStep menulis keputusan satu level secara compare-and-set: baris hanya
// berubah jika request masih PENDING di level yang sama. Nol baris berarti
// keputusan kalah balapan.
func (r *repository) ApplyStep(ctx context.Context, next Request, s Step) (int64, error) {
	statusCol, actorCol := levelColumns(s.Level)

	res := r.db.WithContext(ctx).
		Model(&Request{}).
		Where("id = ?", next.ID).
		Where("status = ?", string(approval.StatusPending)).
		Where("current_level = ?", s.Level).
		Updates(map[string]any{
			statusCol:       string(s.Decision.Status()),
			actorCol:        s.ActorID,
			"status":        next.Status,
			"current_level": next.CurrentLevel,
			"remarks":       next.Remarks,
			"updated_at":    s.DecidedAt,
		})
	return res.RowsAffected, res.Error
}
