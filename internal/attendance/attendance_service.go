package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	attendanceerrors "github.com/code-hero23/peopledesk-sub002/internal/attendance/errors"
	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, userID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, userID string, req CheckOutRequest) (AttendanceResponse, error)
	StartBreak(ctx context.Context, userID string, req StartBreakRequest) (BreakResponse, error)
	EndBreak(ctx context.Context, userID string) (BreakResponse, error)
	Today(ctx context.Context, userID string) (TodayResponse, error)
	History(ctx context.Context, userID string, from, to time.Time) ([]AttendanceResponse, error)
	ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error)
	CloseStaleBreaks(ctx context.Context, now time.Time) (int, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	storage storage.Resolver
	loc     *time.Location
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	resolver storage.Resolver,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:      db,
		repo:    repo,
		storage: resolver,
		loc:     loc,
		now:     time.Now,
		logger:  l,
	}
}

// today adalah tanggal kalender di zona waktu bisnis, disimpan sebagai DATE.
func (s *service) today(now time.Time) time.Time {
	return cycle.DateOnly(now.In(s.loc))
}

func (s *service) CheckIn(ctx context.Context, userID string, req CheckInRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("check in requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := s.today(now)

	_, err = qtx.FindByUserAndDate(ctx, userID, today)
	if err == nil {
		s.logger.Warn("check in already marked", zap.String("user_id", userID))
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("check in lookup failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	rec := &Record{
		ID:             uuid.New(),
		UserID:         userUUID,
		AttendanceDate: today,
		CheckIn:        now.UTC(),
		CheckInPhoto:   req.Photo,
		DeviceInfo:     req.DeviceInfo,
		IPAddress:      req.IPAddress,
	}
	if err := qtx.Create(ctx, rec); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("check in persist failed", zap.Error(err))
		}
		return AttendanceResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check in success",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.String("attendance_id", rec.ID.String()),
	)
	return s.mapToResponse(*rec), nil
}

func (s *service) CheckOut(ctx context.Context, userID string, req CheckOutRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("check out requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
	)

	if _, err := uuid.Parse(userID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.loadToday(ctx, qtx, userID, now)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if rec.CheckOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	// break yang masih terbuka ikut ditutup saat checkout
	if open := rec.OpenBreak(); open != nil {
		minutes := durationMinutes(open.StartTime, now)
		if _, err := qtx.CloseBreak(ctx, open.ID, now.UTC(), minutes); err != nil {
			s.logger.Error("check out close break failed", zap.Error(err))
			return AttendanceResponse{}, err
		}
		end := now.UTC()
		open.EndTime = &end
		open.DurationMinutes = minutes
	}

	rows, err := qtx.CheckOut(ctx, rec.ID, now.UTC(), req.Photo)
	if err != nil {
		s.logger.Error("check out persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	if rows == 0 {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	out := now.UTC()
	rec.CheckOut = &out
	rec.CheckOutPhoto = req.Photo

	s.logger.Info("check out success",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.Int("worked_minutes", rec.WorkedMinutes()),
	)
	return s.mapToResponse(*rec), nil
}

func (s *service) StartBreak(ctx context.Context, userID string, req StartBreakRequest) (BreakResponse, error) {
	if !IsValidBreakType(req.BreakType) {
		return BreakResponse{}, attendanceerrors.ErrInvalidBreakType
	}
	if _, err := uuid.Parse(userID); err != nil {
		return BreakResponse{}, attendanceerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("start break begin tx failed", zap.Error(err))
		return BreakResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.loadToday(ctx, qtx, userID, now)
	if err != nil {
		return BreakResponse{}, err
	}
	if rec.CheckOut != nil {
		return BreakResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}
	if rec.OpenBreak() != nil {
		return BreakResponse{}, attendanceerrors.ErrBreakAlreadyOpen
	}

	b := &BreakLog{
		ID:           uuid.New(),
		AttendanceID: rec.ID,
		BreakType:    req.BreakType,
		StartTime:    now.UTC(),
	}
	if err := qtx.CreateBreak(ctx, b); err != nil {
		mapped := mapRepositoryError(err)
		if mapped == err {
			s.logger.Error("start break persist failed", zap.Error(err))
		}
		return BreakResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("start break commit failed", zap.Error(err))
		return BreakResponse{}, err
	}

	s.logger.Info("start break success",
		zap.String("user_id", userID),
		zap.String("break_type", b.BreakType),
	)
	return mapBreak(*b), nil
}

func (s *service) EndBreak(ctx context.Context, userID string) (BreakResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return BreakResponse{}, attendanceerrors.ErrInvalidUserID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("end break begin tx failed", zap.Error(err))
		return BreakResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	rec, err := s.loadToday(ctx, qtx, userID, now)
	if err != nil {
		return BreakResponse{}, err
	}
	open := rec.OpenBreak()
	if open == nil {
		return BreakResponse{}, attendanceerrors.ErrNoOpenBreak
	}

	minutes := durationMinutes(open.StartTime, now)
	rows, err := qtx.CloseBreak(ctx, open.ID, now.UTC(), minutes)
	if err != nil {
		s.logger.Error("end break persist failed", zap.Error(err))
		return BreakResponse{}, err
	}
	if rows == 0 {
		return BreakResponse{}, attendanceerrors.ErrNoOpenBreak
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("end break commit failed", zap.Error(err))
		return BreakResponse{}, err
	}

	end := now.UTC()
	open.EndTime = &end
	open.DurationMinutes = minutes

	s.logger.Info("end break success",
		zap.String("user_id", userID),
		zap.String("break_type", open.BreakType),
		zap.Int("duration_minutes", minutes),
	)
	return mapBreak(*open), nil
}

func (s *service) Today(ctx context.Context, userID string) (TodayResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return TodayResponse{}, attendanceerrors.ErrInvalidUserID
	}

	rec, err := s.repo.FindByUserAndDate(ctx, userID, s.today(s.now()))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return TodayResponse{}, nil
	}
	if err != nil {
		s.logger.Error("today attendance lookup failed", zap.Error(err))
		return TodayResponse{}, err
	}

	resp := s.mapToResponse(*rec)
	out := TodayResponse{
		Marked:     true,
		CheckedOut: rec.CheckOut != nil,
		Data:       &resp,
	}
	if open := rec.OpenBreak(); open != nil {
		b := mapBreak(*open)
		out.OpenBreak = &b
	}
	return out, nil
}

func (s *service) History(ctx context.Context, userID string, from, to time.Time) ([]AttendanceResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, attendanceerrors.ErrInvalidUserID
	}
	// tanpa rentang: cycle berjalan
	if from.IsZero() && to.IsZero() {
		from, to = cycle.Containing(s.now(), s.loc).DateRange()
	}
	if to.Before(from) {
		return nil, attendanceerrors.ErrInvalidDateRange
	}

	rows, err := s.repo.FindInRange(ctx, userID, cycle.DateOnly(from), cycle.DateOnly(to))
	if err != nil {
		s.logger.Error("attendance history failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(rows), nil
}

func (s *service) ListByDate(ctx context.Context, date time.Time) ([]AttendanceResponse, error) {
	if date.IsZero() {
		date = s.today(s.now())
	}
	rows, err := s.repo.FindByDate(ctx, cycle.DateOnly(date))
	if err != nil {
		s.logger.Error("attendance list by date failed", zap.Error(err))
		return nil, err
	}
	return s.mapToListResponse(rows), nil
}

// CloseStaleBreaks menutup break terbuka yang dimulai sebelum hari ini.
// endTime dipaksa ke 23:59:59.999 hari mulainya.
func (s *service) CloseStaleBreaks(ctx context.Context, now time.Time) (int, error) {
	startOfToday, _ := cycle.DayBounds(now, s.loc)

	stale, err := s.repo.FindStaleOpenBreaks(ctx, startOfToday)
	if err != nil {
		s.logger.Error("close stale breaks lookup failed", zap.Error(err))
		return 0, err
	}

	closed := 0
	for _, b := range stale {
		_, end := cycle.DayBounds(b.StartTime, s.loc)
		minutes := durationMinutes(b.StartTime, end)

		rows, err := s.repo.CloseBreak(ctx, b.ID, end.UTC(), minutes)
		if err != nil {
			s.logger.Error("close stale break failed",
				zap.String("break_id", b.ID.String()),
				zap.Error(err),
			)
			return closed, err
		}
		if rows > 0 {
			closed++
		}
	}

	if closed > 0 {
		s.logger.Info("close stale breaks success",
			zap.Int("found", len(stale)),
			zap.Int("closed", closed),
		)
	}
	return closed, nil
}

func (s *service) loadToday(ctx context.Context, repo Repository, userID string, now time.Time) (*Record, error) {
	rec, err := repo.FindByUserAndDate(ctx, userID, s.today(now))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendanceerrors.ErrNotCheckedIn
		}
		s.logger.Error("attendance lookup failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func (s *service) photoURL(stored string) string {
	if s.storage == nil {
		return stored
	}
	return s.storage.URL(stored)
}

func (s *service) mapToResponse(r Record) AttendanceResponse {
	personal, official := r.BreakMinutes()
	resp := AttendanceResponse{
		ID:             r.ID.String(),
		UserID:         r.UserID.String(),
		AttendanceDate: r.AttendanceDate.Format(dateLayout),
		CheckIn:        r.CheckIn.In(s.loc).Format(time.RFC3339),
		CheckInPhoto:   s.photoURL(r.CheckInPhoto),
		CheckOutPhoto:  s.photoURL(r.CheckOutPhoto),
		DeviceInfo:     r.DeviceInfo,
		IPAddress:      r.IPAddress,
		WorkedMinutes:  r.WorkedMinutes(),
		BreakMinutes:   personal,
		MeetingMinutes: official,
		Breaks:         make([]BreakResponse, 0, len(r.Breaks)),
	}
	if r.User != nil {
		resp.UserName = r.User.Name
	}
	if r.CheckOut != nil {
		v := r.CheckOut.In(s.loc).Format(time.RFC3339)
		resp.CheckOut = &v
	}
	for _, b := range r.Breaks {
		resp.Breaks = append(resp.Breaks, mapBreak(b))
	}
	return resp
}

func (s *service) mapToListResponse(rows []Record) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = s.mapToResponse(r)
	}
	return res
}

func mapBreak(b BreakLog) BreakResponse {
	resp := BreakResponse{
		ID:              b.ID.String(),
		BreakType:       b.BreakType,
		StartTime:       b.StartTime.Format(time.RFC3339),
		DurationMinutes: b.DurationMinutes,
	}
	if b.EndTime != nil {
		v := b.EndTime.Format(time.RFC3339)
		resp.EndTime = &v
	}
	return resp
}
