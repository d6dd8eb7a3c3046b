package user

import "github.com/shopspring/decimal"

type CreateUserRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Password      string  `json:"password" binding:"required,min=8"`
	Role          string  `json:"role" binding:"required"`
	Designation   string  `json:"designation"`
	ReportingBhID *string `json:"reporting_bh_id" binding:"omitempty,uuid"`
}

type DeductionEntryDTO struct {
	Label   string          `json:"label" binding:"required"`
	Amount  decimal.Decimal `json:"amount"`
	IsFixed *bool           `json:"isFixed"`
	Month   int             `json:"month,omitempty"`
	Year    int             `json:"year,omitempty"`
}

type UpdatePayrollProfileRequest struct {
	AllocatedSalary              decimal.Decimal     `json:"allocated_salary"`
	SalaryViewEnabled            bool                `json:"salary_view_enabled"`
	TimeShortageDeductionEnabled bool                `json:"time_shortage_deduction_enabled"`
	SalaryDeductions             decimal.Decimal     `json:"salary_deductions"`
	DeductionBreakdown           []DeductionEntryDTO `json:"deduction_breakdown" binding:"dive"`
}

type AssignReportingBHRequest struct {
	BusinessHeadID string `json:"business_head_id" binding:"required,uuid"`
}

type UpdateWfhAccessRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE BLOCKED"`
}

type UserResponse struct {
	ID                           string              `json:"id"`
	Name                         string              `json:"name"`
	Email                        string              `json:"email"`
	Role                         string              `json:"role"`
	Designation                  string              `json:"designation"`
	Status                       string              `json:"status"`
	AllocatedSalary              string              `json:"allocated_salary"`
	SalaryViewEnabled            bool                `json:"salary_view_enabled"`
	TimeShortageDeductionEnabled bool                `json:"time_shortage_deduction_enabled"`
	SalaryDeductions             string              `json:"salary_deductions"`
	DeductionBreakdown           []DeductionEntryDTO `json:"deduction_breakdown"`
	WfhViewEnabled               bool                `json:"wfh_view_enabled"`
	ReportingBhID                *string             `json:"reporting_bh_id,omitempty"`
	ReportingBhName              string              `json:"reporting_bh_name,omitempty"`
	CreatedAt                    string              `json:"created_at"`
}
