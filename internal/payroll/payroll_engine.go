package payroll

import (
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/deduction"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/timewindow"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/shopspring/decimal"
)

const (
	lopBufferDays          = 4
	lopDivisorDays         = 30
	shortageDivisorHours   = 240
	expectedHoursPerDay    = 8
	maxCreditedPermissions = 4
	permissionCreditCap    = 2 * time.Hour

	MessageDashboardDisabled = "salary dashboard disabled"
	MessageViewDisabled      = "salary view disabled"
)

// Input adalah semua data satu user untuk satu cycle.
type Input struct {
	Profile     user.User
	Settings    settings.Settings
	Cycle       cycle.Cycle
	Records     []attendance.Record
	Permissions []request.Request
	Leaves      []request.Request
	WorkLogDays int64
	Manual      *ManualPayroll
	ShiftStart  string
	Location    *time.Location

	// BypassGates dipakai tampilan admin: toggle dashboard dan salary view diabaikan.
	BypassGates bool
}

type CyclePeriod struct {
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Start     string `json:"start"`
	End       string `json:"end"`
	TotalDays int    `json:"total_days"`
}

type Stats struct {
	PresentDays           int             `json:"present_days"`
	AbsentDays            int             `json:"absent_days"`
	ApprovedLeaves        int             `json:"approved_leaves"`
	ApprovedPermissions   int             `json:"approved_permissions"`
	PermissionCreditHours decimal.Decimal `json:"permission_credit_hours"`
	ActualWorkingHours    decimal.Decimal `json:"actual_working_hours"`
	ExpectedHours         decimal.Decimal `json:"expected_hours"`
	ShortageHours         decimal.Decimal `json:"shortage_hours"`
	LateArrivals          int             `json:"late_arrivals"`
	ExcusedLateArrivals   int             `json:"excused_late_arrivals"`
	WorkLogDays           int64           `json:"work_log_days"`
}

type DeductionLine struct {
	Label   string          `json:"label"`
	Amount  decimal.Decimal `json:"amount"`
	IsFixed bool            `json:"is_fixed"`
	Month   int             `json:"month,omitempty"`
	Year    int             `json:"year,omitempty"`
}

type Financials struct {
	AllocatedSalary      decimal.Decimal `json:"allocated_salary"`
	AbsenteeismDeduction decimal.Decimal `json:"absenteeism_deduction"`
	ShortageDeduction    decimal.Decimal `json:"shortage_deduction"`
	ManualDeductions     decimal.Decimal `json:"manual_deductions"`
	DeductionBreakdown   []DeductionLine `json:"deduction_breakdown"`
	NetPayout            decimal.Decimal `json:"net_payout"`
}

type Summary struct {
	Cycle         CyclePeriod `json:"cycle"`
	Disabled      bool        `json:"disabled"`
	Message       string      `json:"message,omitempty"`
	IsManual      bool        `json:"is_manual"`
	PendingUpload bool        `json:"pending_upload"`
	Stats         *Stats      `json:"stats,omitempty"`
	Financials    *Financials `json:"financials,omitempty"`
}

// Hidden true jika salah satu toggle menutup angka gaji.
func (s Summary) Hidden() bool {
	return s.Message != ""
}

// Compute menghitung ringkasan gaji. Fungsi ini murni; semua data sudah dimuat caller.
func Compute(in Input) Summary {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	from, to := in.Cycle.DateRange()
	out := Summary{
		Cycle: CyclePeriod{
			Month:     in.Cycle.Month,
			Year:      in.Cycle.Year,
			Start:     from.Format(dateLayout),
			End:       to.Format(dateLayout),
			TotalDays: in.Cycle.Days(),
		},
	}

	if !in.BypassGates {
		if !in.Settings.SalaryDashboardEnabled {
			out.Disabled = true
			out.Message = MessageDashboardDisabled
			return out
		}
		if !in.Profile.SalaryViewEnabled {
			out.Message = MessageViewDisabled
			return out
		}
	}

	present := len(in.Records)
	absent := max(0, out.Cycle.TotalDays-present)

	actualMinutes := 0
	for _, r := range in.Records {
		actualMinutes += r.WorkedMinutes()
	}

	stats := Stats{
		PresentDays:           present,
		AbsentDays:            absent,
		ApprovedLeaves:        len(in.Leaves),
		ApprovedPermissions:   len(in.Permissions),
		PermissionCreditHours: decimal.Zero,
		ActualWorkingHours:    minutesToHours(actualMinutes),
		ExpectedHours:         decimal.Zero,
		ShortageHours:         decimal.Zero,
		WorkLogDays:           in.WorkLogDays,
	}
	out.Stats = &stats

	if in.Settings.IsManual() {
		out.IsManual = true
		if in.Manual == nil {
			out.PendingUpload = true
			return out
		}
		out.Financials = manualFinancials(*in.Manual)
		return out
	}

	allocated := in.Profile.AllocatedSalary

	lopDays := max(0, absent-lopBufferDays)
	lop := allocated.Mul(decimal.NewFromInt(int64(lopDays))).Div(decimal.NewFromInt(lopDivisorDays))

	shortage := decimal.Zero
	if in.Settings.ShortageDeductionEnabled {
		stats.LateArrivals, stats.ExcusedLateArrivals = lateArrivals(in.Records, in.Permissions, in.ShiftStart, loc)

		if in.Profile.TimeShortageDeductionEnabled {
			expectedMinutes := present * expectedHoursPerDay * 60
			creditMinutes := permissionCreditMinutes(in.Permissions)
			shortageMinutes := max(0, expectedMinutes-creditMinutes-actualMinutes)

			stats.ExpectedHours = minutesToHours(expectedMinutes)
			stats.PermissionCreditHours = minutesToHours(creditMinutes)
			stats.ShortageHours = minutesToHours(shortageMinutes)
			shortage = allocated.Mul(decimal.NewFromInt(int64(shortageMinutes))).
				Div(decimal.NewFromInt(shortageDivisorHours * 60))
		}
	}

	entries, _ := deduction.Parse(in.Profile.DeductionBreakdown)
	resolved := deduction.Resolve(entries, in.Cycle.Month, in.Cycle.Year)
	manual := resolved.Total.Add(in.Profile.SalaryDeductions)

	net := allocated.Sub(lop).Sub(shortage).Sub(manual)
	if net.IsNegative() {
		net = decimal.Zero
	}

	out.Financials = &Financials{
		AllocatedSalary:      allocated,
		AbsenteeismDeduction: lop.Round(2),
		ShortageDeduction:    shortage.Round(2),
		ManualDeductions:     manual.Round(2),
		DeductionBreakdown:   deductionLines(resolved.Applied),
		NetPayout:            net.Round(2),
	}
	return out
}

// permissionCreditMinutes: maksimal 4 izin pertama, masing-masing maksimal 2 jam.
func permissionCreditMinutes(perms []request.Request) int {
	total := time.Duration(0)
	for i, p := range perms {
		if i >= maxCreditedPermissions {
			break
		}
		d := timewindow.Window{Start: p.StartTime, End: p.EndTime}.Duration()
		total += min(d, permissionCreditCap)
	}
	return int(total / time.Minute)
}

// lateArrivals menghitung check-in setelah jam masuk dan berapa yang tertutup izin di hari yang sama.
func lateArrivals(records []attendance.Record, perms []request.Request, shiftStart string, loc *time.Location) (int, int) {
	startMinutes, err := timewindow.ParseTimeToMinutes(shiftStart)
	if err != nil {
		return 0, 0
	}

	late, excused := 0, 0
	for _, r := range records {
		if timewindow.MinutesOfDay(r.CheckIn, loc) <= startMinutes {
			continue
		}
		late++
		for _, p := range perms {
			if !p.StartDate.Equal(r.AttendanceDate) {
				continue
			}
			if (timewindow.Window{Start: p.StartTime, End: p.EndTime}).Covers(r.CheckIn, loc) {
				excused++
				break
			}
		}
	}
	return late, excused
}

func manualFinancials(m ManualPayroll) *Financials {
	return &Financials{
		AllocatedSalary:      m.AllocatedSalary,
		AbsenteeismDeduction: m.AbsenteeismDeduction,
		ShortageDeduction:    m.ShortageDeduction,
		ManualDeductions:     m.ManualDeductions,
		DeductionBreakdown:   []DeductionLine{},
		NetPayout:            m.NetPayout,
	}
}

func deductionLines(entries []deduction.Entry) []DeductionLine {
	lines := make([]DeductionLine, 0, len(entries))
	for _, e := range entries {
		line := DeductionLine{Label: e.Label, Amount: e.Amount, IsFixed: e.Kind != deduction.KindScoped}
		if !line.IsFixed {
			line.Month, line.Year = e.Month, e.Year
		}
		lines = append(lines, line)
	}
	return lines
}

func minutesToHours(m int) decimal.Decimal {
	return decimal.NewFromInt(int64(m)).Div(decimal.NewFromInt(60)).Round(2)
}
