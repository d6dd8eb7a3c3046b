package events

import "time"

const RequestDecidedTopic = "hr.request.decided.v1"

const RequestDecidedEventType = "request_decided"

// RequestDecidedEvent dikirim saat status agregat sebuah request menjadi final.
type RequestDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	RefNo      string    `json:"ref_no"`
	Kind       string    `json:"kind"`
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	BhStatus   string    `json:"bh_status"`
	HrStatus   string    `json:"hr_status"`
	DecidedBy  string    `json:"decided_by"`
	Track      string    `json:"track"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	OccurredAt time.Time `json:"occurred_at"`
}
