package wfh

import (
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
)

// Level approval berurutan: HR, lalu BH, lalu Admin.
const (
	LevelHR    = 1
	LevelBH    = 2
	LevelAdmin = 3
)

// LevelForRole memetakan role pemutus ke level yang boleh ia putuskan.
func LevelForRole(role string) (int, error) {
	switch {
	case role == domain.RoleHR:
		return LevelHR, nil
	case domain.IsBusinessHead(role):
		return LevelBH, nil
	case role == domain.RoleAdmin:
		return LevelAdmin, nil
	default:
		return 0, approval.ErrNotAuthorized
	}
}

// Plan adalah rencana kerja yang diisi pemohon.
type Plan struct {
	ReportingManager string `gorm:"column:reporting_manager;type:varchar(255)" json:"reporting_manager"`

	RealReason       string `gorm:"column:real_reason;type:text;not null" json:"real_reason"`
	NecessityReason  string `gorm:"column:necessity_reason;type:text" json:"necessity_reason"`
	ImpactIfRejected string `gorm:"column:impact_if_rejected;type:text" json:"impact_if_rejected"`
	ProofDetails     string `gorm:"column:proof_details;type:text" json:"proof_details"`

	PrimaryProject   string `gorm:"column:primary_project;type:varchar(255)" json:"primary_project"`
	CriticalReason   string `gorm:"column:critical_reason;type:text" json:"critical_reason"`
	Deliverables     string `gorm:"column:deliverables;type:text" json:"deliverables"`
	MeasurableOutput string `gorm:"column:measurable_output;type:text" json:"measurable_output"`
	Deadline         string `gorm:"column:deadline;type:varchar(50)" json:"deadline"`

	WorkingHours      string `gorm:"column:working_hours;type:varchar(50)" json:"working_hours"`
	TrackingMethod    string `gorm:"column:tracking_method;type:text" json:"tracking_method"`
	CommunicationPlan string `gorm:"column:communication_plan;type:text" json:"communication_plan"`
	ResponseTime      int    `gorm:"column:response_time;not null;default:0" json:"response_time"`

	EnvironmentSetup      string `gorm:"column:environment_setup;type:text" json:"environment_setup"`
	HasDedicatedWorkspace bool   `gorm:"column:has_dedicated_workspace;not null;default:false" json:"has_dedicated_workspace"`
	HasStableInternet     bool   `gorm:"column:has_stable_internet;not null;default:false" json:"has_stable_internet"`
	NoInterruptions       bool   `gorm:"column:no_interruptions;not null;default:false" json:"no_interruptions"`
	HasPowerBackup        bool   `gorm:"column:has_power_backup;not null;default:false" json:"has_power_backup"`
	HasSecurityCompliance bool   `gorm:"column:has_security_compliance;not null;default:false" json:"has_security_compliance"`
	HasErgonomicSeating   bool   `gorm:"column:has_ergonomic_seating;not null;default:false" json:"has_ergonomic_seating"`

	RisksManagement       string `gorm:"column:risks_management;type:text" json:"risks_management"`
	FailurePlan           string `gorm:"column:failure_plan;type:text" json:"failure_plan"`
	OfficeVisitCommitment bool   `gorm:"column:office_visit_commitment;not null;default:false" json:"office_visit_commitment"`
}

// Request hanya final APPROVED setelah ketiga level menyetujui; penolakan di
// level mana pun langsung final REJECTED.
type Request struct {
	ID     uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	User   *user.User `gorm:"foreignKey:UserID"`

	EmployeeName string    `gorm:"column:employee_name;type:varchar(255)"`
	Designation  string    `gorm:"column:designation;type:varchar(50)"`
	StartDate    time.Time `gorm:"column:start_date;type:date;not null"`
	EndDate      time.Time `gorm:"column:end_date;type:date;not null"`
	WfhDays      int       `gorm:"column:wfh_days;not null;default:0"`

	Plan Plan `gorm:"embedded"`

	CurrentLevel int    `gorm:"column:current_level;not null;default:1;index:idx_wfh_pending,priority:2"`
	Status       string `gorm:"column:status;type:varchar(20);not null;default:PENDING;index:idx_wfh_pending,priority:1"`
	HrStatus     string `gorm:"column:hr_status;type:varchar(20);not null;default:PENDING"`
	BhStatus     string `gorm:"column:bh_status;type:varchar(20);not null;default:PENDING"`
	AdminStatus  string `gorm:"column:admin_status;type:varchar(20);not null;default:PENDING"`

	HrID    *uuid.UUID `gorm:"column:hr_id;type:uuid"`
	BhID    *uuid.UUID `gorm:"column:bh_id;type:uuid"`
	AdminID *uuid.UUID `gorm:"column:admin_id;type:uuid"`
	Remarks string     `gorm:"column:remarks;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Request) TableName() string {
	return "wfh_requests"
}

// Step adalah perubahan satu level yang ditulis secara compare-and-set.
type Step struct {
	Level     int
	Decision  approval.Decision
	ActorID   uuid.UUID
	Remarks   string
	DecidedAt time.Time
}

// Apply mengembalikan salinan r setelah step diterapkan.
func (r Request) Apply(s Step) Request {
	status := string(s.Decision.Status())
	actor := s.ActorID
	switch s.Level {
	case LevelHR:
		r.HrStatus, r.HrID = status, &actor
	case LevelBH:
		r.BhStatus, r.BhID = status, &actor
	case LevelAdmin:
		r.AdminStatus, r.AdminID = status, &actor
	}
	if s.Remarks != "" {
		r.Remarks = s.Remarks
	}

	switch {
	case s.Decision == approval.DecisionReject:
		r.Status = string(approval.StatusRejected)
	case s.Level == LevelAdmin:
		r.Status = string(approval.StatusApproved)
	default:
		r.CurrentLevel = s.Level + 1
	}
	r.UpdatedAt = s.DecidedAt
	return r
}

// levelColumns mengembalikan kolom status dan aktor untuk satu level.
func levelColumns(level int) (status, actor string) {
	switch level {
	case LevelHR:
		return "hr_status", "hr_id"
	case LevelBH:
		return "bh_status", "bh_id"
	default:
		return "admin_status", "admin_id"
	}
}
