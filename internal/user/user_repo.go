package user

import (
	"context"
	"database/sql"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/dbtx"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=user_repo.go -destination=mock/user_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, f Filter) ([]User, error)
	Update(ctx context.Context, u *User) error
	UpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx menjalankan query repository di atas transaksi milik service.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).
		Preload("ReportingBh").
		First(&u, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindAll(ctx context.Context, f Filter) ([]User, error) {
	var users []User
	err := r.db.WithContext(ctx).
		Preload("ReportingBh").
		Scopes(
			scope.Optional("role", f.Role),
			scope.Optional("designation", f.Designation),
			scope.Optional("status", f.Status),
		).
		Order("name ASC").
		Find(&users).Error
	return users, err
}

func (r *repository) Update(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Omit("ReportingBh").Save(u).Error
}

func (r *repository) UpdateStatus(ctx context.Context, ids []string, status string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&User{}).
		Where("id IN ?", ids).
		Update("status", status)
	return res.RowsAffected, res.Error
}
