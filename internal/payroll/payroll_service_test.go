package payroll_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/payroll"
	payrollerrors "github.com/code-hero23/peopledesk-sub002/internal/payroll/errors"
	mock_payroll "github.com/code-hero23/peopledesk-sub002/internal/payroll/mock"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	svc        payroll.Service
	sqlMock    sqlmock.Sqlmock
	redis      redismock.ClientMock
	repo       *mock_payroll.MockRepository
	users      *mock_payroll.MockUserRepository
	attendance *mock_payroll.MockAttendanceSource
	requests   *mock_payroll.MockRequestSource
	worklogs   *mock_payroll.MockWorkLogCounter
	settings   *mock_payroll.MockSettingsProvider
	loc        *time.Location
}

func newServiceDeps(t *testing.T, withRedis bool) serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sqlMock.ExpectationsWereMet())
		db.Close()
	})

	rdb, redisMock := redismock.NewClientMock()
	t.Cleanup(func() { assert.NoError(t, redisMock.ExpectationsWereMet()) })

	d := serviceDeps{
		sqlMock:    sqlMock,
		redis:      redisMock,
		repo:       mock_payroll.NewMockRepository(ctrl),
		users:      mock_payroll.NewMockUserRepository(ctrl),
		attendance: mock_payroll.NewMockAttendanceSource(ctrl),
		requests:   mock_payroll.NewMockRequestSource(ctrl),
		worklogs:   mock_payroll.NewMockWorkLogCounter(ctrl),
		settings:   mock_payroll.NewMockSettingsProvider(ctrl),
		loc:        kolkata(t),
	}

	src := payroll.Sources{
		Users:      d.users,
		Attendance: d.attendance,
		Requests:   d.requests,
		WorkLogs:   d.worklogs,
		Settings:   d.settings,
	}
	if withRedis {
		d.svc = payroll.NewService(db, d.repo, src, rdb, "09:30 AM", d.loc)
	} else {
		d.svc = payroll.NewService(db, d.repo, src, nil, "09:30 AM", d.loc)
	}
	return d
}

// expectCycleData menyiapkan data marchInput untuk user u.
func (d serviceDeps) expectCycleData(t *testing.T, u user.User) payroll.Input {
	in := marchInput(t)
	in.Profile = u
	from, to := in.Cycle.DateRange()
	userID := u.ID.String()

	d.attendance.EXPECT().FindInRange(gomock.Any(), userID, from, to).Return(in.Records, nil)
	d.requests.EXPECT().FindApprovedInRange(gomock.Any(), userID, request.KindPermission, from, to).Return(in.Permissions, nil)
	d.requests.EXPECT().FindApprovedInRange(gomock.Any(), userID, request.KindLeave, from, to).Return(in.Leaves, nil)
	d.worklogs.EXPECT().CountForCycle(gomock.Any(), userID, 3, 2026).Return(in.WorkLogDays, nil)
	return in
}

func TestPayrollService_MySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("computes and caches on miss", func(t *testing.T) {
		d := newServiceDeps(t, true)
		u := profile()
		key := "payroll:summary:" + u.ID.String() + ":2026-03:self"

		d.redis.ExpectGet(key).RedisNil()
		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)
		in := d.expectCycleData(t, u)

		want := payroll.Compute(in)
		data, err := json.Marshal(want)
		require.NoError(t, err)
		d.redis.ExpectSet(key, data, 15*time.Minute).SetVal("OK")

		got, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.True(t, dec("19900").Equal(got.Financials.NetPayout))
		assert.Equal(t, 20, got.Stats.PresentDays)
	})

	t.Run("cache hit", func(t *testing.T) {
		d := newServiceDeps(t, true)
		u := profile()
		key := "payroll:summary:" + u.ID.String() + ":2026-03:self"

		cached := payroll.Summary{
			Cycle:      payroll.CyclePeriod{Month: 3, Year: 2026},
			Financials: &payroll.Financials{NetPayout: dec("12345.67")},
		}
		data, err := json.Marshal(cached)
		require.NoError(t, err)
		d.redis.ExpectGet(key).SetVal(string(data))

		got, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.True(t, dec("12345.67").Equal(got.Financials.NetPayout))
	})

	t.Run("salary view disabled skips data load", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()
		u.SalaryViewEnabled = false

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)

		got, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, payroll.MessageViewDisabled, got.Message)
		assert.Nil(t, got.Financials)
	})

	t.Run("manual mode reads the imported row", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()
		cfg := settings.Default()
		cfg.PayrollMode = settings.ModeManual

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(cfg, nil)
		d.expectCycleData(t, u)
		d.repo.EXPECT().FindByEmailAndPeriod(gomock.Any(), u.Email, 3, 2026).
			Return(nil, gorm.ErrRecordNotFound)

		got, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.True(t, got.IsManual)
		assert.True(t, got.PendingUpload)
	})

	t.Run("source failure", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()
		in := marchInput(t)
		from, to := in.Cycle.DateRange()

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)
		d.attendance.EXPECT().FindInRange(gomock.Any(), u.ID.String(), from, to).Return(nil, errors.New("db down"))
		d.requests.EXPECT().FindApprovedInRange(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil).AnyTimes()
		d.worklogs.EXPECT().CountForCycle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(0), nil).AnyTimes()

		_, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		assert.Error(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		d := newServiceDeps(t, false)

		_, err := d.svc.MySummary(ctx, "not-a-uuid", 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidUserID)

		_, err = d.svc.MySummary(ctx, profile().ID.String(), 13, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)

		_, err = d.svc.MySummary(ctx, profile().ID.String(), 3, 1999)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidYear)
	})

	t.Run("unknown user", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()
		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := d.svc.MySummary(ctx, u.ID.String(), 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrUserNotFound)
	})
}

func TestPayrollService_UserSummary(t *testing.T) {
	d := newServiceDeps(t, false)
	u := profile()
	u.SalaryViewEnabled = false
	cfg := settings.Default()
	cfg.SalaryDashboardEnabled = false

	d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
	d.settings.EXPECT().Get(gomock.Any()).Return(cfg, nil)
	d.expectCycleData(t, u)

	got, err := d.svc.UserSummary(context.Background(), u.ID.String(), 3, 2026)
	require.NoError(t, err)
	assert.False(t, got.Hidden())
	assert.True(t, dec("19900").Equal(got.Financials.NetPayout))
}

func TestPayrollService_Invalidate(t *testing.T) {
	ctx := context.Background()

	t.Run("one user", func(t *testing.T) {
		d := newServiceDeps(t, true)
		pattern := "payroll:summary:u-1:*"
		keys := []string{"payroll:summary:u-1:2026-03:self", "payroll:summary:u-1:2026-03:admin"}

		d.redis.ExpectScan(0, pattern, 100).SetVal(keys, 0)
		d.redis.ExpectDel(keys...).SetVal(2)

		require.NoError(t, d.svc.InvalidateUser(ctx, "u-1"))
	})

	t.Run("all users across pages", func(t *testing.T) {
		d := newServiceDeps(t, true)
		pattern := "payroll:summary:*"

		d.redis.ExpectScan(0, pattern, 100).SetVal([]string{"payroll:summary:a:2026-03:self"}, 7)
		d.redis.ExpectDel("payroll:summary:a:2026-03:self").SetVal(1)
		d.redis.ExpectScan(7, pattern, 100).SetVal([]string{}, 0)

		require.NoError(t, d.svc.InvalidateAll(ctx))
	})

	t.Run("without redis", func(t *testing.T) {
		d := newServiceDeps(t, false)
		assert.NoError(t, d.svc.InvalidateAll(ctx))
	})
}

func TestPayrollService_ImportManual(t *testing.T) {
	ctx := context.Background()
	actorID := "7d0c1a5e-9b44-4f3f-8a51-0f3a3f7a2b10"

	t.Run("csv with headers", func(t *testing.T) {
		d := newServiceDeps(t, true)
		csv := "Email,Allocated Salary,Absenteeism Deduction,Shortage Deduction,Manual Deductions,Net Payout\n" +
			"a@peopledesk.test,30000,1000,0,500,28500\n" +
			"not-an-email,1,1,1,1,1\n" +
			",,,,,\n" +
			"B@PeopleDesk.test,\"20,000\",0,100,abc,19900\n"

		var saved []payroll.ManualPayroll
		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.ManualPayroll) error {
				saved = append(saved, *p)
				return nil
			}).Times(2)
		d.sqlMock.ExpectCommit()
		d.redis.ExpectScan(0, "payroll:summary:*", 100).SetVal([]string{}, 0)

		res, err := d.svc.ImportManual(ctx, actorID, []byte(csv), "march.csv", 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Imported)
		require.Len(t, res.Skipped, 1)
		assert.Equal(t, 3, res.Skipped[0].Row)
		assert.Equal(t, "not-an-email", res.Skipped[0].Email)

		require.Len(t, saved, 2)
		assert.Equal(t, "a@peopledesk.test", saved[0].Email)
		assert.True(t, dec("28500").Equal(saved[0].NetPayout))
		assert.Equal(t, "b@peopledesk.test", saved[1].Email)
		assert.True(t, dec("20000").Equal(saved[1].AllocatedSalary))
		assert.True(t, saved[1].ManualDeductions.IsZero())
		assert.Equal(t, 3, saved[1].Month)
		require.NotNil(t, saved[1].ImportedBy)
		assert.Equal(t, actorID, saved[1].ImportedBy.String())
	})

	t.Run("positional columns in xlsx", func(t *testing.T) {
		d := newServiceDeps(t, false)
		data, err := spreadsheet.Write("Sheet1",
			[]string{"Mail", "Gross", "LOP", "Short", "Other", "Net"},
			[][]any{{"c@peopledesk.test", 15000, 0, 0, 0, 15000}},
		)
		require.NoError(t, err)

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p *payroll.ManualPayroll) error {
				assert.Equal(t, "c@peopledesk.test", p.Email)
				assert.True(t, dec("15000").Equal(p.NetPayout))
				return nil
			})
		d.sqlMock.ExpectCommit()

		res, err := d.svc.ImportManual(ctx, actorID, data, "march.xlsx", 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Imported)
	})

	t.Run("rejections", func(t *testing.T) {
		d := newServiceDeps(t, false)

		_, err := d.svc.ImportManual(ctx, actorID, nil, "march.csv", 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrFileRequired)

		_, err = d.svc.ImportManual(ctx, actorID, []byte("x"), "march.pdf", 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrUnsupportedFile)

		_, err = d.svc.ImportManual(ctx, actorID, []byte("Email\nnobody\n"), "march.csv", 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrNoValidRows)

		_, err = d.svc.ImportManual(ctx, actorID, []byte("Email\na@b.c\n"), "march.csv", 0, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
	})

	t.Run("upsert failure rolls back", func(t *testing.T) {
		d := newServiceDeps(t, false)

		d.sqlMock.ExpectBegin()
		d.repo.EXPECT().WithTx(gomock.Any()).Return(d.repo)
		d.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("write failed"))
		d.sqlMock.ExpectRollback()

		_, err := d.svc.ImportManual(ctx, actorID, []byte("Email\na@b.c\n"), "march.csv", 3, 2026)
		assert.Error(t, err)
	})
}

func TestPayrollService_ExportReport(t *testing.T) {
	d := newServiceDeps(t, false)
	u := profile()
	u.Designation = "AE"

	d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)
	d.users.EXPECT().FindAll(gomock.Any(), user.Filter{
		Role:        domain.RoleEmployee,
		Status:      domain.UserStatusActive,
		Designation: "AE",
	}).Return([]user.User{u}, nil)
	d.expectCycleData(t, u)

	data, filename, err := d.svc.ExportReport(context.Background(), 3, 2026, "ae")
	require.NoError(t, err)
	assert.Equal(t, "Payroll_Report_3_2026.xlsx", filename)

	rows, err := spreadsheet.ReadRows(data, filename)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, "Mode", rows[0][11])
	assert.Equal(t, "kavya", rows[1][0])
	assert.Equal(t, "AE", rows[1][2])
	assert.Equal(t, "20", rows[1][4])
	assert.Equal(t, "19900", rows[1][10])
	assert.Equal(t, settings.ModeAuto, rows[1][11])
}

func TestPayrollService_SalarySlipPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil).Times(2)
		d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)
		d.expectCycleData(t, u)

		data, filename, err := d.svc.SalarySlipPDF(ctx, u.ID.String(), 3, 2026)
		require.NoError(t, err)
		assert.Equal(t, "salary-slip-2026-03.pdf", filename)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4")))
		assert.Contains(t, string(data), "Net payout: 19900.00")
		assert.Contains(t, string(data), "kavya@peopledesk.test")
	})

	t.Run("hidden salary", func(t *testing.T) {
		d := newServiceDeps(t, false)
		u := profile()
		u.SalaryViewEnabled = false

		d.users.EXPECT().FindByID(gomock.Any(), u.ID.String()).Return(&u, nil)
		d.settings.EXPECT().Get(gomock.Any()).Return(settings.Default(), nil)

		_, _, err := d.svc.SalarySlipPDF(ctx, u.ID.String(), 3, 2026)
		assert.ErrorIs(t, err, payrollerrors.ErrSalaryHidden)
	})
}
