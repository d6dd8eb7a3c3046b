package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;type:varchar(255);not null"`
	Email       string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_users_email"`
	Password    string    `gorm:"column:password;type:text;not null"`
	Role        string    `gorm:"column:role;type:varchar(30);not null;default:EMPLOYEE;index"`
	Designation string    `gorm:"column:designation;type:varchar(50);index"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:ACTIVE"`

	// Payroll profile
	AllocatedSalary              decimal.Decimal `gorm:"column:allocated_salary;type:decimal(18,2);not null;default:0"`
	SalaryViewEnabled            bool            `gorm:"column:salary_view_enabled;not null;default:true"`
	TimeShortageDeductionEnabled bool            `gorm:"column:time_shortage_deduction_enabled;not null;default:true"`
	SalaryDeductions             decimal.Decimal `gorm:"column:salary_deductions;type:decimal(18,2);not null;default:0"`
	DeductionBreakdown           datatypes.JSON  `gorm:"column:deduction_breakdown"`

	WfhViewEnabled bool `gorm:"column:wfh_view_enabled;not null;default:false"`

	ReportingBhID *uuid.UUID `gorm:"column:reporting_bh_id;type:uuid;index"`
	ReportingBh   *User      `gorm:"foreignKey:ReportingBhID"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (User) TableName() string {
	return "users"
}

type Filter struct {
	Role        string
	Designation string
	Status      string
}
