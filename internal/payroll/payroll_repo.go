package payroll

import (
	"context"
	"database/sql"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/dbtx"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, p *ManualPayroll) error
	FindByEmailAndPeriod(ctx context.Context, email string, month, year int) (*ManualPayroll, error)
	FindByPeriod(ctx context.Context, month, year int) ([]ManualPayroll, error)
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

// Upsert menimpa angka untuk (email, month, year) yang sudah ada.
func (r *repository) Upsert(ctx context.Context, p *ManualPayroll) error {
	p.Email = strings.ToLower(strings.TrimSpace(p.Email))
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "email"}, {Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"allocated_salary",
				"absenteeism_deduction",
				"shortage_deduction",
				"manual_deductions",
				"net_payout",
				"imported_by",
				"updated_at",
			}),
		}).
		Create(p).Error
}

func (r *repository) FindByEmailAndPeriod(ctx context.Context, email string, month, year int) (*ManualPayroll, error) {
	var p ManualPayroll
	err := r.db.WithContext(ctx).
		Where("email = ? AND month = ? AND year = ?", strings.ToLower(strings.TrimSpace(email)), month, year).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByPeriod(ctx context.Context, month, year int) ([]ManualPayroll, error) {
	var out []ManualPayroll
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("email ASC").
		Find(&out).Error
	return out, err
}
