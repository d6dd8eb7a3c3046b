package attendance

import (
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
)

const (
	BreakTea           = "TEA"
	BreakLunch         = "LUNCH"
	BreakClientMeeting = "CLIENT_MEETING"
	BreakBHMeeting     = "BH_MEETING"
	BreakOther         = "OTHER"
)

var BreakTypes = []string{BreakTea, BreakLunch, BreakClientMeeting, BreakBHMeeting, BreakOther}

func IsValidBreakType(t string) bool {
	for _, v := range BreakTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Record adalah absensi satu user untuk satu hari kalender (zona waktu bisnis).
type Record struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_date,priority:1"`
	User           *user.User `gorm:"foreignKey:UserID"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_user_date,priority:2;index"`
	CheckIn        time.Time  `gorm:"column:check_in;not null"`
	CheckOut       *time.Time `gorm:"column:check_out"`
	CheckInPhoto   string     `gorm:"column:check_in_photo;type:text"`
	CheckOutPhoto  string     `gorm:"column:check_out_photo;type:text"`
	DeviceInfo     string     `gorm:"column:device_info;type:text"`
	IPAddress      string     `gorm:"column:ip_address;type:varchar(64)"`
	Breaks         []BreakLog `gorm:"foreignKey:AttendanceID"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Record) TableName() string {
	return "attendance_records"
}

type BreakLog struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey"`
	AttendanceID    uuid.UUID  `gorm:"column:attendance_id;type:uuid;not null;index;uniqueIndex:uq_break_logs_open,where:end_time IS NULL"`
	BreakType       string     `gorm:"column:break_type;type:varchar(30);not null"`
	StartTime       time.Time  `gorm:"column:start_time;not null;index"`
	EndTime         *time.Time `gorm:"column:end_time"`
	DurationMinutes int        `gorm:"column:duration_minutes;not null;default:0"`
	CreatedAt       time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (BreakLog) TableName() string {
	return "break_logs"
}

// CountsAgainstWork: hanya TEA dan LUNCH yang mengurangi jam kerja.
// Meeting dengan klien atau BH tetap dihitung kerja.
func (b BreakLog) CountsAgainstWork() bool {
	return b.BreakType == BreakTea || b.BreakType == BreakLunch
}

func (b BreakLog) IsOpen() bool {
	return b.EndTime == nil
}

// OpenBreak mengembalikan break yang belum ditutup, jika ada.
func (r Record) OpenBreak() *BreakLog {
	for i := range r.Breaks {
		if r.Breaks[i].IsOpen() {
			return &r.Breaks[i]
		}
	}
	return nil
}

// WorkedMinutes = (checkout - checkin) dikurangi durasi break TEA/LUNCH.
// Record yang belum checkout bernilai 0.
func (r Record) WorkedMinutes() int {
	if r.CheckOut == nil {
		return 0
	}
	gross := int(r.CheckOut.Sub(r.CheckIn).Minutes())
	for _, b := range r.Breaks {
		if b.CountsAgainstWork() {
			gross -= b.DurationMinutes
		}
	}
	if gross < 0 {
		return 0
	}
	return gross
}

// BreakMinutes menjumlahkan durasi break pribadi (TEA/LUNCH) dan dinas (meeting).
func (r Record) BreakMinutes() (personal, official int) {
	for _, b := range r.Breaks {
		switch b.BreakType {
		case BreakTea, BreakLunch:
			personal += b.DurationMinutes
		case BreakClientMeeting, BreakBHMeeting:
			official += b.DurationMinutes
		}
	}
	return personal, official
}

// durationMinutes membulatkan selisih ke menit terdekat.
func durationMinutes(start, end time.Time) int {
	return int(end.Sub(start).Round(time.Minute) / time.Minute)
}
