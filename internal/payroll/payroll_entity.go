package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ManualPayroll adalah angka gaji hasil import untuk mode MANUAL.
// Satu baris per (email, month, year).
type ManualPayroll struct {
	ID                   uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	Email                string          `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_manual_payrolls_email_period,priority:1"`
	Month                int             `gorm:"column:month;not null;uniqueIndex:uq_manual_payrolls_email_period,priority:2;check:chk_manual_payrolls_month,month BETWEEN 1 AND 12"`
	Year                 int             `gorm:"column:year;not null;uniqueIndex:uq_manual_payrolls_email_period,priority:3"`
	AllocatedSalary      decimal.Decimal `gorm:"column:allocated_salary;type:decimal(18,2);not null;default:0"`
	AbsenteeismDeduction decimal.Decimal `gorm:"column:absenteeism_deduction;type:decimal(18,2);not null;default:0"`
	ShortageDeduction    decimal.Decimal `gorm:"column:shortage_deduction;type:decimal(18,2);not null;default:0"`
	ManualDeductions     decimal.Decimal `gorm:"column:manual_deductions;type:decimal(18,2);not null;default:0"`
	NetPayout            decimal.Decimal `gorm:"column:net_payout;type:decimal(18,2);not null;default:0"`
	ImportedBy           *uuid.UUID      `gorm:"column:imported_by;type:uuid"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (ManualPayroll) TableName() string {
	return "manual_payrolls"
}
