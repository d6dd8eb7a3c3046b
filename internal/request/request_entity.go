package request

import (
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
)

const (
	KindLeave         = "LEAVE"
	KindPermission    = "PERMISSION"
	KindSiteVisit     = "SITE_VISIT"
	KindShowroomVisit = "SHOWROOM_VISIT"
)

var Kinds = []string{KindLeave, KindPermission, KindSiteVisit, KindShowroomVisit}

func IsValidKind(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Request menampung keempat jenis pengajuan dalam satu tabel.
// Untuk jenis satu hari, StartDate == EndDate.
// Check constraint menjaga status agregat selalu konsisten dengan kedua track.
type Request struct {
	ID     uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	RefNo  string     `gorm:"column:ref_no;type:varchar(20);uniqueIndex:uq_requests_ref_no"`
	Kind   string     `gorm:"column:kind;type:varchar(20);not null;index:idx_requests_kind_dates"`
	UserID uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:idx_requests_user_dates"`
	User   *user.User `gorm:"foreignKey:UserID"`

	LeaveType string    `gorm:"column:leave_type;type:varchar(30)"`
	StartDate time.Time `gorm:"column:start_date;type:date;not null;index:idx_requests_user_dates;index:idx_requests_kind_dates"`
	EndDate   time.Time `gorm:"column:end_date;type:date;not null;index:idx_requests_user_dates"`
	StartTime string    `gorm:"column:start_time;type:varchar(10)"`
	EndTime   string    `gorm:"column:end_time;type:varchar(10)"`

	Location            string `gorm:"column:location;type:varchar(255)"`
	ProjectName         string `gorm:"column:project_name;type:varchar(255)"`
	SourceShowroom      string `gorm:"column:source_showroom;type:varchar(255)"`
	DestinationShowroom string `gorm:"column:destination_showroom;type:varchar(255)"`
	Reason              string `gorm:"column:reason;type:text;not null"`

	TargetBhID *uuid.UUID `gorm:"column:target_bh_id;type:uuid;index"`

	Status   string `gorm:"column:status;type:varchar(20);not null;default:PENDING;index;check:chk_requests_status,(status = 'APPROVED' AND bh_status = 'APPROVED' AND hr_status = 'APPROVED') OR (status = 'REJECTED' AND (bh_status = 'REJECTED' OR hr_status = 'REJECTED')) OR (status = 'PENDING' AND bh_status <> 'REJECTED' AND hr_status <> 'REJECTED' AND NOT (bh_status = 'APPROVED' AND hr_status = 'APPROVED'))"`
	BhStatus string `gorm:"column:bh_status;type:varchar(20);not null;default:PENDING"`
	HrStatus string `gorm:"column:hr_status;type:varchar(20);not null;default:PENDING"`

	BhID      *uuid.UUID `gorm:"column:bh_id;type:uuid"`
	HrID      *uuid.UUID `gorm:"column:hr_id;type:uuid"`
	BhActedAt *time.Time `gorm:"column:bh_acted_at"`
	HrActedAt *time.Time `gorm:"column:hr_acted_at"`

	IsExceededLimit bool `gorm:"column:is_exceeded_limit;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Request) TableName() string {
	return "requests"
}

func (r Request) State() approval.State {
	return approval.State{BH: approval.Status(r.BhStatus), HR: approval.Status(r.HrStatus)}
}

// Days menghitung jumlah hari inklusif: ceil((end-start)/hari) + 1.
func (r Request) Days() int {
	return inclusiveDays(r.StartDate, r.EndDate)
}

type Filter struct {
	Status string
	Kind   string
	UserID string
	From   *time.Time
	To     *time.Time
}

// columns mengembalikan nama kolom status, aktor dan waktu untuk satu track.
func columns(t approval.Track) (status, actor, actedAt string) {
	if t == approval.TrackBH {
		return "bh_status", "bh_id", "bh_acted_at"
	}
	return "hr_status", "hr_id", "hr_acted_at"
}
