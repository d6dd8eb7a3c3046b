package payroll_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/payroll"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// workedDay: 8 jam di kantor dengan teh 15 menit, jadi 465 menit kerja.
func workedDay(loc *time.Location, d time.Time, hour, minute int) attendance.Record {
	in := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, loc)
	out := in.Add(8 * time.Hour)
	teaStart := in.Add(2 * time.Hour)
	teaEnd := teaStart.Add(15 * time.Minute)
	return attendance.Record{
		ID:             uuid.New(),
		AttendanceDate: cycle.DateOnly(d),
		CheckIn:        in,
		CheckOut:       &out,
		Breaks: []attendance.BreakLog{
			{BreakType: attendance.BreakTea, StartTime: teaStart, EndTime: &teaEnd, DurationMinutes: 15},
		},
	}
}

func permission(d time.Time, start, end string) request.Request {
	date := cycle.DateOnly(d)
	return request.Request{
		ID:        uuid.New(),
		Kind:      request.KindPermission,
		StartDate: date,
		EndDate:   date,
		StartTime: start,
		EndTime:   end,
	}
}

func profile() user.User {
	return user.User{
		ID:                           uuid.New(),
		Name:                         "kavya",
		Email:                        "kavya@peopledesk.test",
		AllocatedSalary:              dec("24000"),
		SalaryViewEnabled:            true,
		TimeShortageDeductionEnabled: true,
		SalaryDeductions:             dec("100"),
		DeductionBreakdown: []byte(`[
			{"label":"Advance","amount":500},
			{"label":"Fine","amount":"100","isFixed":false,"month":3,"year":2026},
			{"label":"Old fine","amount":50,"isFixed":false,"month":2,"year":2026}
		]`),
	}
}

// marchInput: cycle Maret 2026 (26 Feb - 25 Mar, 28 hari), 20 hari hadir.
func marchInput(t *testing.T) payroll.Input {
	t.Helper()
	loc := kolkata(t)
	c, err := cycle.For(3, 2026, loc)
	require.NoError(t, err)

	var records []attendance.Record
	for i := 0; i < 20; i++ {
		d := time.Date(2026, 3, 1+i, 0, 0, 0, 0, loc)
		switch i {
		case 0:
			records = append(records, workedDay(loc, d, 10, 15))
		case 1:
			records = append(records, workedDay(loc, d, 9, 45))
		default:
			records = append(records, workedDay(loc, d, 9, 30))
		}
	}

	return payroll.Input{
		Profile:  profile(),
		Settings: settings.Default(),
		Cycle:    c,
		Records:  records,
		Permissions: []request.Request{
			permission(time.Date(2026, 3, 1, 0, 0, 0, 0, loc), "10:00 AM", "11:00 AM"),
			permission(time.Date(2026, 3, 10, 0, 0, 0, 0, loc), "02:00 PM", "05:00 PM"),
		},
		Leaves:      []request.Request{{ID: uuid.New(), Kind: request.KindLeave}},
		WorkLogDays: 18,
		ShiftStart:  "09:30 AM",
		Location:    loc,
	}
}

func TestCompute_Auto(t *testing.T) {
	sum := payroll.Compute(marchInput(t))

	assert.False(t, sum.Hidden())
	assert.False(t, sum.IsManual)
	assert.Equal(t, "2026-02-26", sum.Cycle.Start)
	assert.Equal(t, "2026-03-25", sum.Cycle.End)
	assert.Equal(t, 28, sum.Cycle.TotalDays)

	require.NotNil(t, sum.Stats)
	assert.Equal(t, 20, sum.Stats.PresentDays)
	assert.Equal(t, 8, sum.Stats.AbsentDays)
	assert.Equal(t, 1, sum.Stats.ApprovedLeaves)
	assert.Equal(t, 2, sum.Stats.ApprovedPermissions)
	assert.True(t, dec("155").Equal(sum.Stats.ActualWorkingHours))
	assert.True(t, dec("160").Equal(sum.Stats.ExpectedHours))
	assert.True(t, dec("3").Equal(sum.Stats.PermissionCreditHours))
	assert.True(t, dec("2").Equal(sum.Stats.ShortageHours))
	assert.Equal(t, 2, sum.Stats.LateArrivals)
	assert.Equal(t, 1, sum.Stats.ExcusedLateArrivals)
	assert.Equal(t, int64(18), sum.Stats.WorkLogDays)

	require.NotNil(t, sum.Financials)
	f := sum.Financials
	assert.True(t, dec("3200").Equal(f.AbsenteeismDeduction), f.AbsenteeismDeduction.String())
	assert.True(t, dec("200").Equal(f.ShortageDeduction), f.ShortageDeduction.String())
	assert.True(t, dec("700").Equal(f.ManualDeductions), f.ManualDeductions.String())
	assert.True(t, dec("19900").Equal(f.NetPayout), f.NetPayout.String())
	require.Len(t, f.DeductionBreakdown, 2)
	assert.Equal(t, "Advance", f.DeductionBreakdown[0].Label)
	assert.True(t, f.DeductionBreakdown[0].IsFixed)
	assert.Equal(t, "Fine", f.DeductionBreakdown[1].Label)
	assert.Equal(t, 3, f.DeductionBreakdown[1].Month)
}

func TestCompute_ShortageToggles(t *testing.T) {
	t.Run("global flag off skips shortage and late arrivals", func(t *testing.T) {
		in := marchInput(t)
		in.Settings.ShortageDeductionEnabled = false

		sum := payroll.Compute(in)
		assert.True(t, sum.Financials.ShortageDeduction.IsZero())
		assert.True(t, sum.Stats.ExpectedHours.IsZero())
		assert.Zero(t, sum.Stats.LateArrivals)
		assert.True(t, dec("20100").Equal(sum.Financials.NetPayout))
	})

	t.Run("user flag off keeps late arrivals", func(t *testing.T) {
		in := marchInput(t)
		in.Profile.TimeShortageDeductionEnabled = false

		sum := payroll.Compute(in)
		assert.True(t, sum.Financials.ShortageDeduction.IsZero())
		assert.Equal(t, 2, sum.Stats.LateArrivals)
	})
}

func TestCompute_PermissionCredit(t *testing.T) {
	in := marchInput(t)
	loc := in.Location
	in.Permissions = nil
	for i := 0; i < 6; i++ {
		in.Permissions = append(in.Permissions, permission(time.Date(2026, 3, 2+i, 0, 0, 0, 0, loc), "01:00 PM", "04:00 PM"))
	}

	sum := payroll.Compute(in)
	// 4 izin x 2 jam
	assert.True(t, dec("8").Equal(sum.Stats.PermissionCreditHours))
	assert.True(t, sum.Stats.ShortageHours.IsZero())
	assert.Equal(t, 6, sum.Stats.ApprovedPermissions)
}

func TestCompute_NetNeverNegative(t *testing.T) {
	in := marchInput(t)
	in.Records = nil
	in.Profile.SalaryDeductions = dec("50000")

	sum := payroll.Compute(in)
	assert.Equal(t, 28, sum.Stats.AbsentDays)
	assert.True(t, sum.Financials.NetPayout.IsZero())
}

func TestCompute_MalformedBreakdown(t *testing.T) {
	in := marchInput(t)
	in.Profile.DeductionBreakdown = []byte(`{"oops":`)
	in.Profile.SalaryDeductions = decimal.Zero

	sum := payroll.Compute(in)
	assert.True(t, sum.Financials.ManualDeductions.IsZero())
	assert.Empty(t, sum.Financials.DeductionBreakdown)
}

func TestCompute_Gates(t *testing.T) {
	t.Run("dashboard disabled", func(t *testing.T) {
		in := marchInput(t)
		in.Settings.SalaryDashboardEnabled = false

		sum := payroll.Compute(in)
		assert.True(t, sum.Disabled)
		assert.Equal(t, payroll.MessageDashboardDisabled, sum.Message)
		assert.Nil(t, sum.Stats)
		assert.Nil(t, sum.Financials)
	})

	t.Run("salary view disabled", func(t *testing.T) {
		in := marchInput(t)
		in.Profile.SalaryViewEnabled = false

		sum := payroll.Compute(in)
		assert.False(t, sum.Disabled)
		assert.Equal(t, payroll.MessageViewDisabled, sum.Message)
		assert.Nil(t, sum.Financials)
	})

	t.Run("admin view ignores toggles", func(t *testing.T) {
		in := marchInput(t)
		in.Settings.SalaryDashboardEnabled = false
		in.Profile.SalaryViewEnabled = false
		in.BypassGates = true

		sum := payroll.Compute(in)
		assert.False(t, sum.Hidden())
		require.NotNil(t, sum.Financials)
		assert.True(t, dec("19900").Equal(sum.Financials.NetPayout))
	})
}

func TestCompute_Manual(t *testing.T) {
	t.Run("stored row returned verbatim", func(t *testing.T) {
		in := marchInput(t)
		in.Settings.PayrollMode = settings.ModeManual
		in.Manual = &payroll.ManualPayroll{
			Email:                in.Profile.Email,
			Month:                3,
			Year:                 2026,
			AllocatedSalary:      dec("30000"),
			AbsenteeismDeduction: dec("1000"),
			ShortageDeduction:    dec("250.5"),
			ManualDeductions:     dec("0"),
			NetPayout:            dec("28749.5"),
		}

		sum := payroll.Compute(in)
		assert.True(t, sum.IsManual)
		assert.False(t, sum.PendingUpload)
		assert.True(t, dec("28749.5").Equal(sum.Financials.NetPayout))
		assert.True(t, dec("30000").Equal(sum.Financials.AllocatedSalary))
		assert.Empty(t, sum.Financials.DeductionBreakdown)
		assert.Equal(t, 20, sum.Stats.PresentDays)
	})

	t.Run("missing row is pending upload", func(t *testing.T) {
		in := marchInput(t)
		in.Settings.PayrollMode = settings.ModeManual

		sum := payroll.Compute(in)
		assert.True(t, sum.IsManual)
		assert.True(t, sum.PendingUpload)
		assert.Nil(t, sum.Financials)
	})
}
