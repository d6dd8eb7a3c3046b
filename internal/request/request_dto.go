package request

type SubmitRequest struct {
	Kind      string `json:"kind" binding:"required"`
	LeaveType string `json:"leave_type"`

	// LEAVE memakai start_date/end_date, jenis lain memakai date.
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`

	Location            string `json:"location"`
	ProjectName         string `json:"project_name"`
	SourceShowroom      string `json:"source_showroom"`
	DestinationShowroom string `json:"destination_showroom"`
	Reason              string `json:"reason"`
}

type DecisionRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVE REJECT"`
}

type RecomputeLimitsRequest struct {
	Month int `json:"month" binding:"required,min=1,max=12"`
	Year  int `json:"year" binding:"required,min=2000"`
}

type RecomputeLimitsResponse struct {
	Month   int   `json:"month"`
	Year    int   `json:"year"`
	Updated int64 `json:"updated"`
}

type RequestResponse struct {
	ID                  string  `json:"id"`
	RefNo               string  `json:"ref_no"`
	Kind                string  `json:"kind"`
	UserID              string  `json:"user_id"`
	UserName            string  `json:"user_name,omitempty"`
	UserEmail           string  `json:"user_email,omitempty"`
	LeaveType           string  `json:"leave_type,omitempty"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Days                int     `json:"days"`
	StartTime           string  `json:"start_time,omitempty"`
	EndTime             string  `json:"end_time,omitempty"`
	Location            string  `json:"location,omitempty"`
	ProjectName         string  `json:"project_name,omitempty"`
	SourceShowroom      string  `json:"source_showroom,omitempty"`
	DestinationShowroom string  `json:"destination_showroom,omitempty"`
	Reason              string  `json:"reason"`
	TargetBhID          *string `json:"target_bh_id"`
	Status              string  `json:"status"`
	BhStatus            string  `json:"bh_status"`
	HrStatus            string  `json:"hr_status"`
	BhID                *string `json:"bh_id"`
	HrID                *string `json:"hr_id"`
	BhActedAt           *string `json:"bh_acted_at"`
	HrActedAt           *string `json:"hr_acted_at"`
	IsExceededLimit     bool    `json:"is_exceeded_limit"`
	CreatedAt           string  `json:"created_at"`
}
