package report

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	reporterrors "github.com/code-hero23/peopledesk-sub002/internal/report/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/storage"
	"github.com/code-hero23/peopledesk-sub002/internal/timewindow"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	"github.com/code-hero23/peopledesk-sub002/internal/worklog"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type UserSource interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindAll(ctx context.Context, f user.Filter) ([]user.User, error)
}

type AttendanceSource interface {
	FindInRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error)
}

type WorkLogSource interface {
	FindAll(ctx context.Context, f worklog.Filter) ([]worklog.WorkLog, error)
}

type RequestSource interface {
	FindAll(ctx context.Context, f request.Filter) ([]request.Request, error)
}

// Sources adalah data baca untuk analitik dan export.
type Sources struct {
	Users      UserSource
	Attendance AttendanceSource
	WorkLogs   WorkLogSource
	Requests   RequestSource
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	EmployeeStats(ctx context.Context, userID string, r Range) (EmployeeStatsResponse, error)
	TeamOverview(ctx context.Context, r Range, designation string) ([]TeamMemberResponse, error)
	PerformanceXLSX(ctx context.Context, r Range, userID, designation string) ([]byte, string, error)
	AttendanceXLSX(ctx context.Context, f ExportFilter) ([]byte, string, error)
	WorkLogXLSX(ctx context.Context, f ExportFilter) ([]byte, string, error)
}

type service struct {
	src     Sources
	storage storage.Resolver
	target  int
	loc     *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(src Sources, resolver storage.Resolver, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	target, _ := timewindow.ParseTimeToMinutes(PunctualityTarget)
	return &service{
		src:     src,
		storage: resolver,
		target:  target,
		loc:     loc,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) EmployeeStats(ctx context.Context, userID string, r Range) (EmployeeStatsResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("employee stats requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
	)

	if _, err := uuid.Parse(userID); err != nil {
		return EmployeeStatsResponse{}, reporterrors.ErrInvalidUserID
	}
	from, to, err := s.resolveRange(r)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}

	u, err := s.src.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeStatsResponse{}, reporterrors.ErrUserNotFound
		}
		s.logger.Error("employee stats load user failed", zap.Error(err))
		return EmployeeStatsResponse{}, err
	}

	acts, err := s.loadActivity(ctx, userID, from, to)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}
	st := Compute(acts[u.ID.String()], s.target, s.loc)

	return EmployeeStatsResponse{
		UserID:             u.ID.String(),
		Name:               u.Name,
		Designation:        u.Designation,
		From:               from.Format(dateLayout),
		To:                 to.Format(dateLayout),
		ConsistencyScore:   st.Consistency,
		EfficiencyScore:    st.Efficiency,
		AvgLateness:        st.AvgLateness,
		LimitExceededFlags: st.LimitExceededFlags,
		TotalNetTime:       FormatMinutes(st.NetMinutes),
		TotalDaysPresent:   st.DaysPresent,
		DaysWithLogs:       st.DaysWithLogs,
		DailyTrends:        st.DailyTrends,
	}, nil
}

func (s *service) TeamOverview(ctx context.Context, r Range, designation string) ([]TeamMemberResponse, error) {
	from, to, err := s.resolveRange(r)
	if err != nil {
		return nil, err
	}

	users, err := s.activeEmployees(ctx, "", designation, "")
	if err != nil {
		return nil, err
	}
	acts, err := s.loadActivity(ctx, "", from, to)
	if err != nil {
		return nil, err
	}

	res := make([]TeamMemberResponse, 0, len(users))
	for _, u := range users {
		st := Compute(acts[u.ID.String()], s.target, s.loc).Capped()
		res = append(res, TeamMemberResponse{
			ID:            u.ID.String(),
			Name:          u.Name,
			Designation:   u.Designation,
			Efficiency:    st.Efficiency,
			Consistency:   st.Consistency,
			DaysPresent:   st.DaysPresent,
			TotalHours:    st.TotalHours(),
			LogsSubmitted: st.LogsSubmitted,
			AvgLateness:   st.AvgLateness,
		})
	}

	s.logger.Info("team overview success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("employees", len(res)),
	)
	return res, nil
}

func (s *service) PerformanceXLSX(ctx context.Context, r Range, userID, designation string) ([]byte, string, error) {
	if userID != "" {
		if _, err := uuid.Parse(userID); err != nil {
			return nil, "", reporterrors.ErrInvalidUserID
		}
	}
	from, to, err := s.resolveRange(r)
	if err != nil {
		return nil, "", err
	}

	users, err := s.activeEmployees(ctx, userID, designation, "")
	if err != nil {
		return nil, "", err
	}
	acts, err := s.loadActivity(ctx, userID, from, to)
	if err != nil {
		return nil, "", err
	}

	data, err := performanceSheet(users, acts, s.target, s.loc)
	if err != nil {
		s.logger.Error("performance export write failed", zap.Error(err))
		return nil, "", err
	}

	title := "team_performance"
	if userID != "" {
		title = "performance_detail"
	}
	filename := fmt.Sprintf("%s_%s_to_%s.xlsx", title, from.Format(dateLayout), to.Format(dateLayout))
	return data, filename, nil
}

func (s *service) AttendanceXLSX(ctx context.Context, f ExportFilter) ([]byte, string, error) {
	from, to, err := s.exportRange(f)
	if err != nil {
		return nil, "", err
	}

	users, err := s.filteredUsers(ctx, user.Filter{Status: domain.UserStatusActive, Designation: f.Designation}, f)
	if err != nil {
		return nil, "", err
	}
	records, err := s.src.Attendance.FindInRange(ctx, f.UserID, from, to)
	if err != nil {
		s.logger.Error("attendance export load failed", zap.Error(err))
		return nil, "", err
	}

	var dates []time.Time
	if f.Date != nil {
		dates = []time.Time{cycle.DateOnly(*f.Date)}
	}
	data, err := attendanceSheet(users, records, dates, s.loc, s.photoURL)
	if err != nil {
		s.logger.Error("attendance export write failed", zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("attendance export success",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.Int("records", len(records)),
	)
	filename := "attendance_report.xlsx"
	if f.Date != nil {
		filename = fmt.Sprintf("attendance_report_%s.xlsx", f.Date.Format(dateLayout))
	}
	return data, filename, nil
}

func (s *service) WorkLogXLSX(ctx context.Context, f ExportFilter) ([]byte, string, error) {
	from, to, err := s.exportRange(f)
	if err != nil {
		return nil, "", err
	}

	users, err := s.filteredUsers(ctx, user.Filter{
		Role:        domain.RoleEmployee,
		Status:      domain.UserStatusActive,
		Designation: f.Designation,
	}, f)
	if err != nil {
		return nil, "", err
	}
	logs, err := s.src.WorkLogs.FindAll(ctx, worklog.Filter{
		From:        from,
		To:          to,
		UserID:      f.UserID,
		Designation: strings.ToUpper(strings.TrimSpace(f.Designation)),
	})
	if err != nil {
		s.logger.Error("work log export load failed", zap.Error(err))
		return nil, "", err
	}

	var dates []time.Time
	if f.Date != nil {
		dates = []time.Time{cycle.DateOnly(*f.Date)}
	}
	data, err := workLogSheets(users, logs, dates)
	if err != nil {
		s.logger.Error("work log export write failed", zap.Error(err))
		return nil, "", err
	}

	filename := "worklogs_all.xlsx"
	if f.Month != 0 && f.Year != 0 {
		filename = fmt.Sprintf("worklogs_%d_%d.xlsx", f.Year, f.Month)
	}
	return data, filename, nil
}

// loadActivity memuat absensi, work log dan request dalam rentang, dikelompokkan per user.
// userID kosong berarti semua user.
func (s *service) loadActivity(ctx context.Context, userID string, from, to time.Time) (map[string]Activity, error) {
	var (
		records []attendance.Record
		logs    []worklog.WorkLog
		reqs    []request.Request
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.src.Attendance.FindInRange(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.src.WorkLogs.FindAll(gctx, worklog.Filter{From: from, To: to, UserID: userID})
		return err
	})
	g.Go(func() error {
		var err error
		reqs, err = s.src.Requests.FindAll(gctx, request.Filter{UserID: userID, From: &from, To: &to})
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("load activity failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}

	out := make(map[string]Activity)
	for _, r := range records {
		a := out[r.UserID.String()]
		a.Attendance = append(a.Attendance, r)
		out[r.UserID.String()] = a
	}
	for _, w := range logs {
		a := out[w.UserID.String()]
		a.WorkLogs = append(a.WorkLogs, w)
		out[w.UserID.String()] = a
	}
	for _, r := range reqs {
		a := out[r.UserID.String()]
		a.Requests = append(a.Requests, r)
		out[r.UserID.String()] = a
	}
	return out, nil
}

func (s *service) activeEmployees(ctx context.Context, userID, designation, search string) ([]user.User, error) {
	return s.filteredUsers(ctx, user.Filter{
		Role:        domain.RoleEmployee,
		Status:      domain.UserStatusActive,
		Designation: designation,
	}, ExportFilter{UserID: userID, Search: search})
}

// filteredUsers menerapkan filter user id dan pencarian nama di memori, urut nama.
func (s *service) filteredUsers(ctx context.Context, uf user.Filter, f ExportFilter) ([]user.User, error) {
	uf.Designation = strings.ToUpper(strings.TrimSpace(uf.Designation))
	users, err := s.src.Users.FindAll(ctx, uf)
	if err != nil {
		s.logger.Error("report load users failed", zap.Error(err))
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if f.UserID != "" && u.ID.String() != f.UserID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(u.Name), search) {
			continue
		}
		out = append(out, u)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *service) resolveRange(r Range) (time.Time, time.Time, error) {
	if r.From.IsZero() && r.To.IsZero() {
		from, to := cycle.Containing(s.now(), s.loc).DateRange()
		return from, to, nil
	}
	from, to := r.From, r.To
	if from.IsZero() {
		from = to
	}
	if to.IsZero() {
		to = cycle.DateOnly(s.now().In(s.loc))
	}
	from, to = cycle.DateOnly(from), cycle.DateOnly(to)
	if to.Before(from) {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	return from, to, nil
}

// exportRange: satu tanggal, satu bulan kalender, atau cycle berjalan.
func (s *service) exportRange(f ExportFilter) (time.Time, time.Time, error) {
	if f.UserID != "" {
		if _, err := uuid.Parse(f.UserID); err != nil {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidUserID
		}
	}
	switch {
	case f.Date != nil:
		d := cycle.DateOnly(*f.Date)
		return d, d, nil
	case f.Month != 0 || f.Year != 0:
		if f.Month < 1 || f.Month > 12 || f.Year < 2000 {
			return time.Time{}, time.Time{}, reporterrors.ErrInvalidPeriod
		}
		from := time.Date(f.Year, time.Month(f.Month), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, -1), nil
	default:
		from, to := cycle.Containing(s.now(), s.loc).DateRange()
		return from, to, nil
	}
}

func (s *service) photoURL(stored string) string {
	if stored == "" || s.storage == nil {
		return stored
	}
	return s.storage.URL(stored)
}
