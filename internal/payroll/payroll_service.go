package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/attendance"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/deduction"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	payrollerrors "github.com/code-hero23/peopledesk-sub002/internal/payroll/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/request"
	"github.com/code-hero23/peopledesk-sub002/internal/settings"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/spreadsheet"
	"github.com/code-hero23/peopledesk-sub002/internal/user"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	dateLayout      = "2006-01-02"
	summaryCacheTTL = 15 * time.Minute
	summaryPrefix   = "payroll:summary:"
	reportWorkers   = 4

	viewSelf  = "self"
	viewAdmin = "admin"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindAll(ctx context.Context, f user.Filter) ([]user.User, error)
}

type AttendanceSource interface {
	FindInRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.Record, error)
}

type RequestSource interface {
	FindApprovedInRange(ctx context.Context, userID, kind string, from, to time.Time) ([]request.Request, error)
}

type WorkLogCounter interface {
	CountForCycle(ctx context.Context, userID string, month, year int) (int64, error)
}

type SettingsProvider interface {
	Get(ctx context.Context) (settings.Settings, error)
}

// Sources adalah data baca yang dibutuhkan perhitungan gaji.
type Sources struct {
	Users      UserRepository
	Attendance AttendanceSource
	Requests   RequestSource
	WorkLogs   WorkLogCounter
	Settings   SettingsProvider
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	MySummary(ctx context.Context, userID string, month, year int) (Summary, error)
	UserSummary(ctx context.Context, userID string, month, year int) (Summary, error)
	SalarySlipPDF(ctx context.Context, userID string, month, year int) ([]byte, string, error)
	ImportManual(ctx context.Context, actorID string, data []byte, filename string, month, year int) (ImportResult, error)
	ExportReport(ctx context.Context, month, year int, designation string) ([]byte, string, error)
	InvalidateUser(ctx context.Context, userID string) error
	InvalidateAll(ctx context.Context) error
}

type service struct {
	db         *sql.DB
	repo       Repository
	src        Sources
	rdb        *redis.Client
	sf         *singleflight.Group
	shiftStart string
	loc        *time.Location
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	src Sources,
	rdb *redis.Client,
	shiftStart string,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:         db,
		repo:       repo,
		src:        src,
		rdb:        rdb,
		sf:         &singleflight.Group{},
		shiftStart: shiftStart,
		loc:        loc,
		now:        time.Now,
		logger:     l,
	}
}

func (s *service) MySummary(ctx context.Context, userID string, month, year int) (Summary, error) {
	return s.summary(ctx, userID, month, year, viewSelf)
}

// UserSummary adalah tampilan admin; toggle dashboard dan salary view tidak berlaku.
func (s *service) UserSummary(ctx context.Context, userID string, month, year int) (Summary, error) {
	return s.summary(ctx, userID, month, year, viewAdmin)
}

func (s *service) summary(ctx context.Context, userID string, month, year int, view string) (Summary, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("salary summary requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.Int("month", month),
		zap.Int("year", year),
		zap.String("view", view),
	)

	if _, err := uuid.Parse(userID); err != nil {
		return Summary{}, payrollerrors.ErrInvalidUserID
	}
	c, err := s.resolveCycle(month, year)
	if err != nil {
		return Summary{}, err
	}

	key := summaryKey(userID, c, view)
	if cached, ok := s.readCache(ctx, key); ok {
		return cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		u, err := s.loadUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		cfg, err := s.src.Settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		sum, err := s.compute(ctx, u, c, cfg, view == viewAdmin)
		if err != nil {
			return nil, err
		}
		s.writeCache(ctx, key, sum)
		return sum, nil
	})
	if err != nil {
		s.logger.Error("salary summary failed",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return Summary{}, err
	}
	return v.(Summary), nil
}

// compute memuat data cycle secara paralel lalu memanggil Compute.
func (s *service) compute(ctx context.Context, u *user.User, c cycle.Cycle, cfg settings.Settings, bypass bool) (Summary, error) {
	in := Input{
		Profile:     *u,
		Settings:    cfg,
		Cycle:       c,
		ShiftStart:  s.shiftStart,
		Location:    s.loc,
		BypassGates: bypass,
	}
	if !bypass && (!cfg.SalaryDashboardEnabled || !u.SalaryViewEnabled) {
		return Compute(in), nil
	}

	if _, err := deduction.Parse(u.DeductionBreakdown); err != nil {
		s.logger.Warn("malformed deduction breakdown ignored",
			zap.String("user_id", u.ID.String()),
			zap.Error(err),
		)
	}

	userID := u.ID.String()
	from, to := c.DateRange()

	var (
		records []attendance.Record
		perms   []request.Request
		leaves  []request.Request
		logDays int64
		manual  *ManualPayroll
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.src.Attendance.FindInRange(gctx, userID, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		perms, err = s.src.Requests.FindApprovedInRange(gctx, userID, request.KindPermission, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		leaves, err = s.src.Requests.FindApprovedInRange(gctx, userID, request.KindLeave, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		logDays, err = s.src.WorkLogs.CountForCycle(gctx, userID, c.Month, c.Year)
		return err
	})
	if cfg.IsManual() {
		g.Go(func() error {
			m, err := s.repo.FindByEmailAndPeriod(gctx, u.Email, c.Month, c.Year)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			manual = m
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	in.Records = records
	in.Permissions = perms
	in.Leaves = leaves
	in.WorkLogDays = logDays
	in.Manual = manual
	return Compute(in), nil
}

func (s *service) SalarySlipPDF(ctx context.Context, userID string, month, year int) ([]byte, string, error) {
	sum, err := s.MySummary(ctx, userID, month, year)
	if err != nil {
		return nil, "", err
	}
	if sum.Hidden() {
		return nil, "", payrollerrors.ErrSalaryHidden
	}
	if sum.PendingUpload {
		return nil, "", payrollerrors.ErrPendingUpload
	}

	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	data, err := buildSalarySlipPDF(slipLines(*u, sum))
	if err != nil {
		s.logger.Error("build salary slip failed", zap.String("user_id", userID), zap.Error(err))
		return nil, "", err
	}
	filename := fmt.Sprintf("salary-slip-%04d-%02d.pdf", sum.Cycle.Year, sum.Cycle.Month)
	return data, filename, nil
}

func (s *service) ImportManual(
	ctx context.Context,
	actorID string,
	data []byte,
	filename string,
	month, year int,
) (ImportResult, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("manual payroll import requested",
		zap.String("request_id", rid),
		zap.String("actor_id", actorID),
		zap.String("filename", filename),
		zap.Int("month", month),
		zap.Int("year", year),
	)

	if len(data) == 0 {
		return ImportResult{}, payrollerrors.ErrFileRequired
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".csv":
	default:
		return ImportResult{}, payrollerrors.ErrUnsupportedFile
	}
	if err := validatePeriod(month, year); err != nil {
		return ImportResult{}, err
	}

	rows, err := spreadsheet.ReadRows(data, filename)
	if err != nil {
		s.logger.Warn("manual payroll import unreadable", zap.String("filename", filename), zap.Error(err))
		return ImportResult{}, payrollerrors.ErrUnreadableFile
	}

	var importedBy *uuid.UUID
	if id, err := uuid.Parse(actorID); err == nil {
		importedBy = &id
	}

	parsed, skipped := parseManualRows(rows, month, year)
	if len(parsed) == 0 {
		s.logger.Warn("manual payroll import has no valid rows",
			zap.String("filename", filename),
			zap.Int("skipped", len(skipped)),
		)
		return ImportResult{}, payrollerrors.ErrNoValidRows
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("manual payroll import begin tx failed", zap.Error(err))
		return ImportResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for i := range parsed {
		parsed[i].ImportedBy = importedBy
		if err := qtx.Upsert(ctx, &parsed[i]); err != nil {
			s.logger.Error("manual payroll upsert failed",
				zap.String("email", parsed[i].Email),
				zap.Error(err),
			)
			return ImportResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("manual payroll import commit failed", zap.Error(err))
		return ImportResult{}, err
	}

	if err := s.InvalidateAll(ctx); err != nil {
		s.logger.Warn("invalidate salary summaries after import failed", zap.Error(err))
	}

	s.logger.Info("manual payroll import success",
		zap.String("request_id", rid),
		zap.Int("imported", len(parsed)),
		zap.Int("skipped", len(skipped)),
	)
	return ImportResult{
		Month:    month,
		Year:     year,
		Imported: len(parsed),
		Skipped:  skipped,
	}, nil
}

func (s *service) ExportReport(ctx context.Context, month, year int, designation string) ([]byte, string, error) {
	c, err := s.resolveCycle(month, year)
	if err != nil {
		return nil, "", err
	}
	cfg, err := s.src.Settings.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	users, err := s.src.Users.FindAll(ctx, user.Filter{
		Role:        domain.RoleEmployee,
		Status:      domain.UserStatusActive,
		Designation: strings.ToUpper(strings.TrimSpace(designation)),
	})
	if err != nil {
		s.logger.Error("payroll report load users failed", zap.Error(err))
		return nil, "", err
	}

	summaries := make([]Summary, len(users))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(reportWorkers)
	for i := range users {
		g.Go(func() error {
			sum, err := s.compute(gctx, &users[i], c, cfg, true)
			if err != nil {
				return err
			}
			summaries[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("payroll report compute failed", zap.Error(err))
		return nil, "", err
	}

	rows := make([][]any, 0, len(users))
	for i, u := range users {
		rows = append(rows, reportRow(u, summaries[i]))
	}

	data, err := spreadsheet.Write("Payroll Report", reportHeaders, rows)
	if err != nil {
		s.logger.Error("payroll report write failed", zap.Error(err))
		return nil, "", err
	}

	s.logger.Info("payroll report generated",
		zap.String("cycle", c.String()),
		zap.Int("employees", len(users)),
	)
	return data, fmt.Sprintf("Payroll_Report_%d_%d.xlsx", c.Month, c.Year), nil
}

func (s *service) InvalidateUser(ctx context.Context, userID string) error {
	return s.deleteMatching(ctx, summaryPrefix+userID+":*")
}

func (s *service) InvalidateAll(ctx context.Context) error {
	return s.deleteMatching(ctx, summaryPrefix+"*")
}

func (s *service) deleteMatching(ctx context.Context, pattern string) error {
	if s.rdb == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (s *service) readCache(ctx context.Context, key string) (Summary, bool) {
	if s.rdb == nil {
		return Summary{}, false
	}
	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return Summary{}, false
	}
	var out Summary
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Summary{}, false
	}
	return out, true
}

func (s *service) writeCache(ctx context.Context, key string, sum Summary) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(sum)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, summaryCacheTTL).Err(); err != nil {
		s.logger.Warn("cache salary summary failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *service) loadUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.src.Users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// resolveCycle: tanpa month/year dipakai cycle terakhir yang sudah selesai.
func (s *service) resolveCycle(month, year int) (cycle.Cycle, error) {
	if month == 0 && year == 0 {
		current := cycle.Containing(s.now(), s.loc)
		month, year = current.Month-1, current.Year
		if month < 1 {
			month, year = 12, year-1
		}
	}
	if err := validatePeriod(month, year); err != nil {
		return cycle.Cycle{}, err
	}
	return cycle.For(month, year, s.loc)
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return payrollerrors.ErrInvalidMonth
	}
	if year < 2000 || year > 2100 {
		return payrollerrors.ErrInvalidYear
	}
	return nil
}

func summaryKey(userID string, c cycle.Cycle, view string) string {
	return fmt.Sprintf("%s%s:%04d-%02d:%s", summaryPrefix, userID, c.Year, c.Month, view)
}

var reportHeaders = []string{
	"Employee", "Email", "Designation", "Allocated", "Present", "Absent", "LOP",
	"Shortage Hours", "Shortage Deduction", "Manual Deductions", "Net Payout", "Mode",
}

func reportRow(u user.User, sum Summary) []any {
	mode := settings.ModeAuto
	if sum.IsManual {
		mode = settings.ModeManual
	}
	if sum.PendingUpload {
		mode = "PENDING_UPLOAD"
	}

	designation := u.Designation
	if designation == "" {
		designation = domain.RoleEmployee
	}

	row := []any{u.Name, u.Email, designation}
	stats := sum.Stats
	if stats == nil {
		stats = &Stats{}
	}
	fin := sum.Financials
	if fin == nil {
		fin = &Financials{AllocatedSalary: u.AllocatedSalary}
	}
	return append(row,
		money(fin.AllocatedSalary),
		stats.PresentDays,
		stats.AbsentDays,
		money(fin.AbsenteeismDeduction),
		money(stats.ShortageHours),
		money(fin.ShortageDeduction),
		money(fin.ManualDeductions),
		money(fin.NetPayout),
		mode,
	)
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
