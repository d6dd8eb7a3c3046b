package worklog

import (
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusOpen   = "OPEN"
	StatusClosed = "CLOSED"
)

// WorkLog adalah laporan kerja harian; isi payload bergantung designation.
type WorkLog struct {
	ID             uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID      `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_work_logs_user_date,priority:1"`
	User           *user.User     `gorm:"foreignKey:UserID"`
	LogDate        time.Time      `gorm:"column:log_date;type:date;not null;uniqueIndex:uq_work_logs_user_date,priority:2;index"`
	Designation    string         `gorm:"column:designation;type:varchar(50);index"`
	Payload        datatypes.JSON `gorm:"column:payload"`
	OpeningMetrics datatypes.JSON `gorm:"column:opening_metrics"`
	ClosingMetrics datatypes.JSON `gorm:"column:closing_metrics"`
	LogStatus      string         `gorm:"column:log_status;type:varchar(10);not null;default:OPEN;check:chk_work_logs_status,log_status IN ('OPEN','CLOSED')"`
	ClosedAt       *time.Time     `gorm:"column:closed_at"`
	CreatedAt      time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

func (w WorkLog) IsClosed() bool {
	return w.LogStatus == StatusClosed
}

type Filter struct {
	From        time.Time
	To          time.Time
	Designation string
	UserID      string
}
