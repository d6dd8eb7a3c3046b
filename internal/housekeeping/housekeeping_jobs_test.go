package housekeeping_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/bootstrap"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/housekeeping"
	mock_housekeeping "github.com/code-hero23/peopledesk-sub002/internal/housekeeping/mock"
	"github.com/code-hero23/peopledesk-sub002/internal/notify"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (r *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
}

type jobDeps struct {
	users      *mock_housekeeping.MockUserStore
	attendance *mock_housekeeping.MockAttendanceSource
	leaves     *mock_housekeeping.MockLeaveSource
	breaks     *mock_housekeeping.MockBreakSweeper
	outbox     *mock_housekeeping.MockOutboxPurger
	summaries  *mock_housekeeping.MockSummaryInvalidator
	daily      *mock_housekeeping.MockDailyAttendance
	mailer     *mock_housekeeping.MockMailer
	audit      *recordingAudit
	jobs       *housekeeping.Jobs
}

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func newJobDeps(t *testing.T) jobDeps {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := jobDeps{
		users:      mock_housekeeping.NewMockUserStore(ctrl),
		attendance: mock_housekeeping.NewMockAttendanceSource(ctrl),
		leaves:     mock_housekeeping.NewMockLeaveSource(ctrl),
		breaks:     mock_housekeeping.NewMockBreakSweeper(ctrl),
		outbox:     mock_housekeeping.NewMockOutboxPurger(ctrl),
		summaries:  mock_housekeeping.NewMockSummaryInvalidator(ctrl),
		daily:      mock_housekeeping.NewMockDailyAttendance(ctrl),
		mailer:     mock_housekeeping.NewMockMailer(ctrl),
		audit:      &recordingAudit{},
	}
	d.jobs = housekeeping.NewJobs(housekeeping.Deps{
		Users:       d.users,
		Attendance:  d.attendance,
		Leaves:      d.leaves,
		Breaks:      d.breaks,
		Outbox:      d.outbox,
		Invalidator: d.summaries,
		Audit:       d.audit,
		Daily:       d.daily,
		Mailer:      d.mailer,
	}, kolkata(t))
	return d
}

func utcDay(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func employee(created time.Time) user.User {
	return user.User{
		ID:        uuid.New(),
		Name:      "ravi",
		Email:     uuid.NewString() + "@peopledesk.test",
		Role:      domain.RoleEmployee,
		Status:    domain.UserStatusActive,
		CreatedAt: created,
	}
}

func TestCheckDates(t *testing.T) {
	loc := kolkata(t)

	t.Run("weekdays", func(t *testing.T) {
		now := time.Date(2026, 3, 12, 1, 0, 0, 0, loc)
		assert.Equal(t, []time.Time{utcDay(3, 11), utcDay(3, 10), utcDay(3, 9)}, housekeeping.CheckDates(now, loc))
	})

	t.Run("sunday skipped", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 1, 0, 0, 0, loc)
		assert.Equal(t, []time.Time{utcDay(3, 9), utcDay(3, 7), utcDay(3, 6)}, housekeeping.CheckDates(now, loc))
	})

	t.Run("business timezone decides today", func(t *testing.T) {
		// 2026-03-11 20:00 UTC sudah 12 Maret di Kolkata
		now := time.Date(2026, 3, 11, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, utcDay(3, 11), housekeeping.CheckDates(now, loc)[0])
	})
}

func TestJobs_BlockAbsentees(t *testing.T) {
	ctx := context.Background()
	loc := kolkata(t)
	now := time.Date(2026, 3, 12, 1, 0, 0, 0, loc)
	from, to := utcDay(3, 9), utcDay(3, 11)

	t.Run("blocks only unexplained absence", func(t *testing.T) {
		d := newJobDeps(t)
		absent := employee(utcDay(1, 5))
		present := employee(utcDay(1, 5))
		onLeave := employee(utcDay(1, 5))
		fresh := employee(utcDay(3, 10))

		d.users.EXPECT().FindAll(ctx, user.Filter{Role: domain.RoleEmployee, Status: domain.UserStatusActive}).
			Return([]user.User{absent, present, onLeave, fresh}, nil)

		d.attendance.EXPECT().FindInRange(ctx, absent.ID.String(), from, to).Return(nil, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, absent.ID.String(), request.KindLeave, from, to).Return(nil, nil)

		d.attendance.EXPECT().FindInRange(ctx, present.ID.String(), from, to).
			Return([]attendance.Record{{UserID: present.ID, AttendanceDate: utcDay(3, 10)}}, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, present.ID.String(), request.KindLeave, from, to).Return(nil, nil)

		d.attendance.EXPECT().FindInRange(ctx, onLeave.ID.String(), from, to).Return(nil, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, onLeave.ID.String(), request.KindLeave, from, to).
			Return([]request.Request{{Kind: request.KindLeave, StartDate: utcDay(3, 10), EndDate: utcDay(3, 13)}}, nil)

		d.users.EXPECT().UpdateStatus(ctx, []string{absent.ID.String()}, domain.UserStatusBlocked).Return(int64(1), nil)
		d.summaries.EXPECT().InvalidateUser(ctx, absent.ID.String()).Return(nil)

		res, err := d.jobs.BlockAbsentees(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{absent.ID.String()}, res.Blocked)
		assert.Equal(t, []string{"2026-03-11", "2026-03-10", "2026-03-09"}, res.Checked)

		require.Len(t, d.audit.entries, 1)
		assert.Equal(t, housekeeping.ActionAutoBlock, d.audit.entries[0].Action)
		assert.Equal(t, absent.ID.String(), d.audit.entries[0].Meta["user_id"])
	})

	t.Run("account exactly at minimum age is checked", func(t *testing.T) {
		d := newJobDeps(t)
		u := employee(utcDay(3, 8))

		d.users.EXPECT().FindAll(ctx, gomock.Any()).Return([]user.User{u}, nil)
		d.attendance.EXPECT().FindInRange(ctx, u.ID.String(), from, to).
			Return([]attendance.Record{{AttendanceDate: utcDay(3, 9)}}, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, u.ID.String(), request.KindLeave, from, to).Return(nil, nil)

		res, err := d.jobs.BlockAbsentees(ctx, now)
		require.NoError(t, err)
		assert.Empty(t, res.Blocked)
		assert.Empty(t, d.audit.entries)
	})

	t.Run("load users failed", func(t *testing.T) {
		d := newJobDeps(t)
		d.users.EXPECT().FindAll(ctx, gomock.Any()).Return(nil, errors.New("db down"))

		_, err := d.jobs.BlockAbsentees(ctx, now)
		assert.Error(t, err)
	})

	t.Run("update status failed", func(t *testing.T) {
		d := newJobDeps(t)
		u := employee(utcDay(1, 5))

		d.users.EXPECT().FindAll(ctx, gomock.Any()).Return([]user.User{u}, nil)
		d.attendance.EXPECT().FindInRange(ctx, u.ID.String(), from, to).Return(nil, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, u.ID.String(), request.KindLeave, from, to).Return(nil, nil)
		d.users.EXPECT().UpdateStatus(ctx, []string{u.ID.String()}, domain.UserStatusBlocked).Return(int64(0), errors.New("boom"))

		_, err := d.jobs.BlockAbsentees(ctx, now)
		assert.Error(t, err)
		assert.Empty(t, d.audit.entries)
	})

	t.Run("summary invalidation failure does not fail the job", func(t *testing.T) {
		d := newJobDeps(t)
		u := employee(utcDay(1, 5))

		d.users.EXPECT().FindAll(ctx, gomock.Any()).Return([]user.User{u}, nil)
		d.attendance.EXPECT().FindInRange(ctx, u.ID.String(), from, to).Return(nil, nil)
		d.leaves.EXPECT().FindApprovedInRange(ctx, u.ID.String(), request.KindLeave, from, to).Return(nil, nil)
		d.users.EXPECT().UpdateStatus(ctx, []string{u.ID.String()}, domain.UserStatusBlocked).Return(int64(1), nil)
		d.summaries.EXPECT().InvalidateUser(ctx, u.ID.String()).Return(errors.New("redis down"))

		res, err := d.jobs.BlockAbsentees(ctx, now)
		require.NoError(t, err)
		assert.Len(t, res.Blocked, 1)
	})
}

func TestJobs_SweepAndPurge(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 12, 0, 5, 0, 0, time.UTC)

	t.Run("stale breaks", func(t *testing.T) {
		d := newJobDeps(t)
		d.breaks.EXPECT().CloseStaleBreaks(ctx, now).Return(4, nil)

		n, err := d.jobs.SweepStaleBreaks(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
	})

	t.Run("stale breaks failed", func(t *testing.T) {
		d := newJobDeps(t)
		d.breaks.EXPECT().CloseStaleBreaks(ctx, now).Return(0, errors.New("boom"))

		_, err := d.jobs.SweepStaleBreaks(ctx, now)
		assert.Error(t, err)
	})

	t.Run("outbox retention", func(t *testing.T) {
		d := newJobDeps(t)
		d.outbox.EXPECT().PurgeSent(ctx, now.Add(-housekeeping.OutboxRetention)).Return(int64(12), nil)

		n, err := d.jobs.PurgeOutbox(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(12), n)
	})
}

func TestJobs_RemindMissingCheckouts(t *testing.T) {
	ctx := context.Background()
	loc := kolkata(t)
	// 23:30 Kolkata, masih 12 Maret
	now := time.Date(2026, 3, 12, 23, 30, 0, 0, loc)
	today := utcDay(3, 12)

	open := func(u *user.User) attendance.Record {
		r := attendance.Record{ID: uuid.New(), AttendanceDate: today, CheckIn: today.Add(4 * time.Hour), User: u}
		if u != nil {
			r.UserID = u.ID
		} else {
			r.UserID = uuid.New()
		}
		return r
	}

	t.Run("mails only active users with email", func(t *testing.T) {
		d := newJobDeps(t)
		pending := employee(utcDay(1, 5))
		blocked := employee(utcDay(1, 5))
		blocked.Status = domain.UserStatusBlocked
		noEmail := employee(utcDay(1, 5))
		noEmail.Email = ""
		done := employee(utcDay(1, 5))

		out := today.Add(12 * time.Hour)
		closed := open(&done)
		closed.CheckOut = &out

		d.daily.EXPECT().FindByDate(ctx, today).
			Return([]attendance.Record{open(&pending), open(&blocked), open(&noEmail), closed}, nil)
		d.mailer.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg notify.Message) error {
			assert.Equal(t, pending.Email, msg.To)
			assert.Equal(t, notify.CheckoutReminderSubject, msg.Subject)
			assert.Contains(t, msg.HTML, pending.Name)
			return nil
		})

		res, err := d.jobs.RemindMissingCheckouts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, "2026-03-12", res.Date)
		assert.Equal(t, 3, res.Open)
		assert.Equal(t, 1, res.Sent)
		assert.ElementsMatch(t, []string{blocked.ID.String(), noEmail.ID.String()}, res.Skipped)
	})

	t.Run("record without user is skipped", func(t *testing.T) {
		d := newJobDeps(t)
		orphan := open(nil)
		d.daily.EXPECT().FindByDate(ctx, today).Return([]attendance.Record{orphan}, nil)

		res, err := d.jobs.RemindMissingCheckouts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, []string{orphan.UserID.String()}, res.Skipped)
		assert.Zero(t, res.Sent)
	})

	t.Run("send failure does not stop the batch", func(t *testing.T) {
		d := newJobDeps(t)
		first := employee(utcDay(1, 5))
		second := employee(utcDay(1, 5))
		d.daily.EXPECT().FindByDate(ctx, today).Return([]attendance.Record{open(&first), open(&second)}, nil)
		gomock.InOrder(
			d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down")),
			d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil),
		)

		res, err := d.jobs.RemindMissingCheckouts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, res.Open)
		assert.Equal(t, 1, res.Sent)
	})

	t.Run("smtp not configured counts nothing", func(t *testing.T) {
		d := newJobDeps(t)
		u := employee(utcDay(1, 5))
		d.daily.EXPECT().FindByDate(ctx, today).Return([]attendance.Record{open(&u)}, nil)
		d.mailer.EXPECT().Send(ctx, gomock.Any()).Return(notify.ErrNotConfigured)

		res, err := d.jobs.RemindMissingCheckouts(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Open)
		assert.Zero(t, res.Sent)
	})

	t.Run("negative load error", func(t *testing.T) {
		d := newJobDeps(t)
		d.daily.EXPECT().FindByDate(ctx, today).Return(nil, errors.New("db down"))

		_, err := d.jobs.RemindMissingCheckouts(ctx, now)
		assert.Error(t, err)
	})
}

func TestNewScheduler(t *testing.T) {
	d := newJobDeps(t)
	c, err := housekeeping.NewScheduler(context.Background(), d.jobs)
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 4)
	assert.Equal(t, kolkata(t).String(), c.Location().String())
}
