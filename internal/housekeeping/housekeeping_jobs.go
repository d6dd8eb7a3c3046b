package housekeeping

import (
	"context"
	"errors"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/bootstrap"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/notify"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"go.uber.org/zap"
)

const (
	// AbsenceWindow: jumlah hari kerja terakhir yang diperiksa.
	AbsenceWindow = 3
	// MinAccountAge: akun yang lebih muda dari ini tidak diblokir.
	MinAccountAge   = 4 * 24 * time.Hour
	OutboxRetention = 7 * 24 * time.Hour

	ActionAutoBlock = "AUTO_BLOCK"
)

//go:generate mockgen -source=housekeeping_jobs.go -destination=mock/housekeeping_jobs_mock.go -package=mock
type UserStore interface {
	FindAll(ctx context.Context, f user.Filter) ([]user.User, error)
	UpdateStatus(ctx context.Context, ids []string, status string) (int64, error)
}

type AttendanceSource interface {
	FindInRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error)
}

// DailyAttendance memuat absensi satu hari beserta usernya.
type DailyAttendance interface {
	FindByDate(ctx context.Context, date time.Time) ([]attendance.Record, error)
}

type Mailer interface {
	Send(ctx context.Context, msg notify.Message) error
}

type LeaveSource interface {
	FindApprovedInRange(ctx context.Context, userID, kind string, from, to time.Time) ([]request.Request, error)
}

type BreakSweeper interface {
	CloseStaleBreaks(ctx context.Context, now time.Time) (int, error)
}

type OutboxPurger interface {
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}

// SummaryInvalidator dipenuhi oleh payroll.Service.
type SummaryInvalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

type Deps struct {
	Users       UserStore
	Attendance  AttendanceSource
	Leaves      LeaveSource
	Breaks      BreakSweeper
	Outbox      OutboxPurger
	Invalidator SummaryInvalidator
	Audit       bootstrap.AuditLogger
	Daily       DailyAttendance
	Mailer      Mailer
}

type BlockResult struct {
	Checked []string `json:"checked_dates"`
	Blocked []string `json:"blocked_user_ids"`
}

type ReminderResult struct {
	Date    string   `json:"date"`
	Open    int      `json:"open_records"`
	Sent    int      `json:"sent"`
	Skipped []string `json:"skipped_user_ids"`
}

type Jobs struct {
	deps   Deps
	loc    *time.Location
	logger *zap.Logger
}

func NewJobs(deps Deps, loc *time.Location, logger ...*zap.Logger) *Jobs {
	l := zap.L().Named("housekeeping.jobs")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("housekeeping.jobs")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Jobs{deps: deps, loc: loc, logger: l}
}

// CheckDates mengembalikan hari kerja (bukan Minggu) sebelum hari ini, terbaru dulu.
func CheckDates(now time.Time, loc *time.Location) []time.Time {
	day := cycle.DateOnly(now.In(loc))
	dates := make([]time.Time, 0, AbsenceWindow)
	for len(dates) < AbsenceWindow {
		day = day.AddDate(0, 0, -1)
		if day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, day)
	}
	return dates
}

// BlockAbsentees memblokir karyawan aktif yang tidak hadir tanpa cuti pada
// seluruh hari kerja di CheckDates.
func (j *Jobs) BlockAbsentees(ctx context.Context, now time.Time) (BlockResult, error) {
	dates := CheckDates(now, j.loc)
	res := BlockResult{Checked: make([]string, len(dates)), Blocked: []string{}}
	for i, d := range dates {
		res.Checked[i] = d.Format("2006-01-02")
	}
	from, to := dates[len(dates)-1], dates[0]

	users, err := j.deps.Users.FindAll(ctx, user.Filter{
		Role:   domain.RoleEmployee,
		Status: domain.UserStatusActive,
	})
	if err != nil {
		j.logger.Error("absence check load users failed", zap.Error(err))
		return res, err
	}

	today := cycle.DateOnly(now.In(j.loc))
	for _, u := range users {
		if today.Sub(cycle.DateOnly(u.CreatedAt.In(j.loc))) < MinAccountAge {
			continue
		}

		absent, err := j.absentOnAll(ctx, u.ID.String(), dates, from, to)
		if err != nil {
			j.logger.Error("absence check failed",
				zap.String("user_id", u.ID.String()),
				zap.Error(err),
			)
			return res, err
		}
		if !absent {
			continue
		}

		if _, err := j.deps.Users.UpdateStatus(ctx, []string{u.ID.String()}, domain.UserStatusBlocked); err != nil {
			j.logger.Error("auto block failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			return res, err
		}
		res.Blocked = append(res.Blocked, u.ID.String())

		if j.deps.Audit != nil {
			j.deps.Audit.Log(ctx, bootstrap.AuditLog{
				Action:  ActionAutoBlock,
				Message: "blocked after consecutive unexplained absence",
				Meta: map[string]any{
					"user_id": u.ID.String(),
					"email":   u.Email,
					"dates":   res.Checked,
				},
			})
		}
		if j.deps.Invalidator != nil {
			if err := j.deps.Invalidator.InvalidateUser(ctx, u.ID.String()); err != nil {
				j.logger.Warn("auto block invalidate summary failed", zap.String("user_id", u.ID.String()), zap.Error(err))
			}
		}
	}

	j.logger.Info("absence check done",
		zap.Strings("dates", res.Checked),
		zap.Int("users", len(users)),
		zap.Int("blocked", len(res.Blocked)),
	)
	return res, nil
}

func (j *Jobs) absentOnAll(ctx context.Context, userID string, dates []time.Time, from, to time.Time) (bool, error) {
	records, err := j.deps.Attendance.FindInRange(ctx, userID, from, to)
	if err != nil {
		return false, err
	}
	present := make(map[time.Time]struct{}, len(records))
	for _, r := range records {
		present[cycle.DateOnly(r.AttendanceDate)] = struct{}{}
	}

	leaves, err := j.deps.Leaves.FindApprovedInRange(ctx, userID, request.KindLeave, from, to)
	if err != nil {
		return false, err
	}

	for _, d := range dates {
		if _, ok := present[d]; ok {
			return false, nil
		}
		for _, l := range leaves {
			if !d.Before(cycle.DateOnly(l.StartDate)) && !d.After(cycle.DateOnly(l.EndDate)) {
				return false, nil
			}
		}
	}
	return true, nil
}

func (j *Jobs) SweepStaleBreaks(ctx context.Context, now time.Time) (int, error) {
	n, err := j.deps.Breaks.CloseStaleBreaks(ctx, now)
	if err != nil {
		j.logger.Error("stale break sweep failed", zap.Error(err))
		return 0, err
	}
	j.logger.Info("stale break sweep done", zap.Int("closed", n))
	return n, nil
}

func (j *Jobs) PurgeOutbox(ctx context.Context, now time.Time) (int64, error) {
	n, err := j.deps.Outbox.PurgeSent(ctx, now.Add(-OutboxRetention))
	if err != nil {
		j.logger.Error("outbox purge failed", zap.Error(err))
		return 0, err
	}
	j.logger.Info("outbox purge done", zap.Int64("deleted", n))
	return n, nil
}

// RemindMissingCheckouts mengirim email ke karyawan aktif yang check-in hari ini
// tetapi belum check-out.
func (j *Jobs) RemindMissingCheckouts(ctx context.Context, now time.Time) (ReminderResult, error) {
	today := cycle.DateOnly(now.In(j.loc))
	res := ReminderResult{Date: today.Format("2006-01-02"), Skipped: []string{}}

	records, err := j.deps.Daily.FindByDate(ctx, today)
	if err != nil {
		j.logger.Error("checkout reminder load attendance failed", zap.Error(err))
		return res, err
	}

	for _, r := range records {
		if r.CheckOut != nil {
			continue
		}
		res.Open++

		u := r.User
		if u == nil || u.Status != domain.UserStatusActive || u.Email == "" {
			res.Skipped = append(res.Skipped, r.UserID.String())
			continue
		}

		msg, err := notify.CheckoutReminder(u.Email, u.Name)
		if err != nil {
			return res, err
		}
		if err := j.deps.Mailer.Send(ctx, msg); err != nil {
			if !errors.Is(err, notify.ErrNotConfigured) {
				j.logger.Warn("checkout reminder send failed", zap.String("user_id", r.UserID.String()), zap.Error(err))
			}
			continue
		}
		res.Sent++
	}

	j.logger.Info("checkout reminder done",
		zap.String("date", res.Date),
		zap.Int("open", res.Open),
		zap.Int("sent", res.Sent),
	)
	return res, nil
}
