package attendance

type CheckInRequest struct {
	Photo      string `json:"photo"`
	DeviceInfo string `json:"device_info"`
	IPAddress  string `json:"-"`
}

type CheckOutRequest struct {
	Photo string `json:"photo"`
}

type StartBreakRequest struct {
	BreakType string `json:"break_type" binding:"required,oneof=TEA LUNCH CLIENT_MEETING BH_MEETING OTHER"`
}

type BreakResponse struct {
	ID              string  `json:"id"`
	BreakType       string  `json:"break_type"`
	StartTime       string  `json:"start_time"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes"`
}

type AttendanceResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name,omitempty"`
	AttendanceDate string          `json:"attendance_date"`
	CheckIn        string          `json:"check_in"`
	CheckOut       *string         `json:"check_out,omitempty"`
	CheckInPhoto   string          `json:"check_in_photo,omitempty"`
	CheckOutPhoto  string          `json:"check_out_photo,omitempty"`
	DeviceInfo     string          `json:"device_info,omitempty"`
	IPAddress      string          `json:"ip_address,omitempty"`
	WorkedMinutes  int             `json:"worked_minutes"`
	BreakMinutes   int             `json:"break_minutes"`
	MeetingMinutes int             `json:"meeting_minutes"`
	Breaks         []BreakResponse `json:"breaks"`
}

type TodayResponse struct {
	Marked     bool                `json:"marked"`
	CheckedOut bool                `json:"checked_out"`
	Data       *AttendanceResponse `json:"data"`
	OpenBreak  *BreakResponse      `json:"open_break,omitempty"`
}

type CloseStaleBreaksResponse struct {
	Closed int `json:"closed"`
}
