package wfh

type CreateRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date"`
	WfhDays   int    `json:"wfh_days" binding:"min=0"`

	Plan
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required"`
	Remarks  string `json:"remarks"`
}

type WfhResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EmployeeName string `json:"employee_name"`
	Designation  string `json:"designation"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	WfhDays      int    `json:"wfh_days"`

	Plan

	CurrentLevel int    `json:"current_level"`
	Status       string `json:"status"`
	HrStatus     string `json:"hr_status"`
	BhStatus     string `json:"bh_status"`
	AdminStatus  string `json:"admin_status"`
	Remarks      string `json:"remarks,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}
