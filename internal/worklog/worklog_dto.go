package worklog

import "encoding/json"

type SaveWorkLogRequest struct {
	Payload        json.RawMessage `json:"payload" binding:"required"`
	OpeningMetrics json.RawMessage `json:"opening_metrics"`
	ClosingMetrics json.RawMessage `json:"closing_metrics"`
}

type CloseWorkLogRequest struct {
	ClosingMetrics json.RawMessage `json:"closing_metrics"`
}

type WorkLogResponse struct {
	ID             string          `json:"id"`
	UserID         string          `json:"user_id"`
	UserName       string          `json:"user_name,omitempty"`
	LogDate        string          `json:"log_date"`
	Designation    string          `json:"designation"`
	Payload        json.RawMessage `json:"payload"`
	OpeningMetrics json.RawMessage `json:"opening_metrics,omitempty"`
	ClosingMetrics json.RawMessage `json:"closing_metrics,omitempty"`
	LogStatus      string          `json:"log_status"`
	ClosedAt       *string         `json:"closed_at,omitempty"`
	UpdatedAt      string          `json:"updated_at"`
}

type FormResponse struct {
	Designation string   `json:"designation"`
	Fields      []string `json:"fields"`
}
