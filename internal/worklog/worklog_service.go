package worklog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/cycle"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	worklogerrors "github.com/code-hero23/peopledesk-sub002/internal/worklog/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// UserLookup cukup dipenuhi oleh user.Repository.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

//go:generate mockgen -source=worklog_service.go -destination=mock/worklog_service_mock.go -package=mock
type Service interface {
	Form(ctx context.Context, userID string) (FormResponse, error)
	SaveToday(ctx context.Context, userID string, req SaveWorkLogRequest) (WorkLogResponse, error)
	Close(ctx context.Context, userID string, req CloseWorkLogRequest) (WorkLogResponse, error)
	Mine(ctx context.Context, userID string, from, to time.Time) ([]WorkLogResponse, error)
	ListByRange(ctx context.Context, from, to time.Time, designation string) ([]WorkLogResponse, error)
	CountForCycle(ctx context.Context, userID string, month, year int) (int64, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	users  UserLookup
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	users UserLookup,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("worklog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worklog.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:     db,
		repo:   repo,
		users:  users,
		loc:    loc,
		now:    time.Now,
		logger: l,
	}
}

func (s *service) Form(ctx context.Context, userID string) (FormResponse, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return FormResponse{}, err
	}
	return FormResponse{
		Designation: formName(u.Designation),
		Fields:      FormFields(u.Designation),
	}, nil
}

// SaveToday membuat atau menimpa log hari ini selama masih OPEN.
func (s *service) SaveToday(ctx context.Context, userID string, req SaveWorkLogRequest) (WorkLogResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("save work log requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
	)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return WorkLogResponse{}, worklogerrors.ErrInvalidUserID
	}

	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return WorkLogResponse{}, err
	}
	designation := strings.ToUpper(strings.TrimSpace(u.Designation))

	if err := ValidatePayload(designation, req.Payload); err != nil {
		s.logger.Warn("save work log validation failed",
			zap.String("user_id", userID),
			zap.String("designation", designation),
			zap.Error(err),
		)
		return WorkLogResponse{}, err
	}
	if err := validateMetrics(req.OpeningMetrics); err != nil {
		return WorkLogResponse{}, err
	}
	if err := validateMetrics(req.ClosingMetrics); err != nil {
		return WorkLogResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save work log begin tx failed", zap.Error(err))
		return WorkLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := cycle.DateOnly(now.In(s.loc))

	existing, err := qtx.FindByUserAndDateForUpdate(ctx, userID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("save work log lookup failed", zap.Error(err))
		return WorkLogResponse{}, err
	}

	var w *WorkLog
	if existing == nil {
		w = &WorkLog{
			ID:             uuid.New(),
			UserID:         userUUID,
			LogDate:        today,
			Designation:    designation,
			Payload:        datatypes.JSON(req.Payload),
			OpeningMetrics: jsonOrNil(req.OpeningMetrics),
			ClosingMetrics: jsonOrNil(req.ClosingMetrics),
			LogStatus:      StatusOpen,
		}
		if err := qtx.Create(ctx, w); err != nil {
			s.logger.Error("save work log create failed", zap.Error(err))
			return WorkLogResponse{}, err
		}
	} else {
		if existing.IsClosed() {
			return WorkLogResponse{}, worklogerrors.ErrWorkLogClosed
		}
		w = existing
		w.Designation = designation
		w.Payload = datatypes.JSON(req.Payload)
		if m := jsonOrNil(req.OpeningMetrics); m != nil {
			w.OpeningMetrics = m
		}
		if m := jsonOrNil(req.ClosingMetrics); m != nil {
			w.ClosingMetrics = m
		}
		w.UpdatedAt = now.UTC()

		rows, err := qtx.UpdateOpen(ctx, w)
		if err != nil {
			s.logger.Error("save work log update failed", zap.Error(err))
			return WorkLogResponse{}, err
		}
		if rows == 0 {
			return WorkLogResponse{}, worklogerrors.ErrWorkLogClosed
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save work log commit failed", zap.Error(err))
		return WorkLogResponse{}, err
	}

	s.logger.Info("save work log success",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
		zap.String("work_log_id", w.ID.String()),
		zap.Bool("created", existing == nil),
	)
	return mapToResponse(*w), nil
}

func (s *service) Close(ctx context.Context, userID string, req CloseWorkLogRequest) (WorkLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return WorkLogResponse{}, worklogerrors.ErrInvalidUserID
	}
	if err := validateMetrics(req.ClosingMetrics); err != nil {
		return WorkLogResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("close work log begin tx failed", zap.Error(err))
		return WorkLogResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()

	w, err := qtx.FindByUserAndDateForUpdate(ctx, userID, cycle.DateOnly(now.In(s.loc)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkLogResponse{}, worklogerrors.ErrWorkLogNotFound
		}
		s.logger.Error("close work log lookup failed", zap.Error(err))
		return WorkLogResponse{}, err
	}
	if w.IsClosed() {
		return WorkLogResponse{}, worklogerrors.ErrWorkLogClosed
	}

	closing := jsonOrNil(req.ClosingMetrics)
	rows, err := qtx.Close(ctx, w.ID, closing, now.UTC())
	if err != nil {
		s.logger.Error("close work log persist failed", zap.Error(err))
		return WorkLogResponse{}, err
	}
	if rows == 0 {
		return WorkLogResponse{}, worklogerrors.ErrWorkLogClosed
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("close work log commit failed", zap.Error(err))
		return WorkLogResponse{}, err
	}

	closedAt := now.UTC()
	w.LogStatus = StatusClosed
	w.ClosedAt = &closedAt
	w.UpdatedAt = closedAt
	if closing != nil {
		w.ClosingMetrics = closing
	}

	s.logger.Info("close work log success",
		zap.String("user_id", userID),
		zap.String("work_log_id", w.ID.String()),
	)
	return mapToResponse(*w), nil
}

func (s *service) Mine(ctx context.Context, userID string, from, to time.Time) ([]WorkLogResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, worklogerrors.ErrInvalidUserID
	}
	return s.list(ctx, Filter{From: from, To: to, UserID: userID})
}

func (s *service) ListByRange(ctx context.Context, from, to time.Time, designation string) ([]WorkLogResponse, error) {
	return s.list(ctx, Filter{From: from, To: to, Designation: strings.ToUpper(strings.TrimSpace(designation))})
}

func (s *service) list(ctx context.Context, f Filter) ([]WorkLogResponse, error) {
	if f.From.IsZero() && f.To.IsZero() {
		f.From, f.To = cycle.Containing(s.now(), s.loc).DateRange()
	}
	if f.To.Before(f.From) {
		return nil, worklogerrors.ErrInvalidDateRange
	}
	f.From, f.To = cycle.DateOnly(f.From), cycle.DateOnly(f.To)

	rows, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("list work logs failed", zap.Error(err))
		return nil, err
	}
	res := make([]WorkLogResponse, len(rows))
	for i, w := range rows {
		res[i] = mapToResponse(w)
	}
	return res, nil
}

// CountForCycle menghitung jumlah hari yang punya work log dalam cycle.
func (s *service) CountForCycle(ctx context.Context, userID string, month, year int) (int64, error) {
	c, err := cycle.For(month, year, s.loc)
	if err != nil {
		return 0, apperror.InvalidField("month")
	}
	from, to := c.DateRange()
	n, err := s.repo.CountInRange(ctx, userID, from, to)
	if err != nil {
		s.logger.Error("count work logs failed", zap.String("user_id", userID), zap.Error(err))
		return 0, err
	}
	return n, nil
}

func (s *service) loadUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, worklogerrors.ErrUserNotFound
		}
		s.logger.Error("work log load user failed", zap.Error(err))
		return nil, err
	}
	return u, nil
}

func jsonOrNil(raw json.RawMessage) datatypes.JSON {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	return datatypes.JSON(trimmed)
}

func mapToResponse(w WorkLog) WorkLogResponse {
	resp := WorkLogResponse{
		ID:             w.ID.String(),
		UserID:         w.UserID.String(),
		LogDate:        w.LogDate.Format(dateLayout),
		Designation:    w.Designation,
		Payload:        json.RawMessage(w.Payload),
		OpeningMetrics: json.RawMessage(w.OpeningMetrics),
		ClosingMetrics: json.RawMessage(w.ClosingMetrics),
		LogStatus:      w.LogStatus,
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
	if w.User != nil {
		resp.UserName = w.User.Name
	}
	if w.ClosedAt != nil {
		v := w.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &v
	}
	return resp
}
