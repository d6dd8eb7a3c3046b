package wfh

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/contextutil"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	wfherrors "github.com/code-hero23/peopledesk-sub002/internal/wfh/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Actor adalah identitas yang sudah diverifikasi oleh auth middleware.
type Actor struct {
	ID   string
	Role string
}

// UserLookup cukup dipenuhi oleh user.Repository.
type UserLookup interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
}

//go:generate mockgen -source=wfh_service.go -destination=mock/wfh_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (WfhResponse, error)
	Mine(ctx context.Context, userID string) ([]WfhResponse, error)
	Manageable(ctx context.Context, actor Actor) ([]WfhResponse, error)
	History(ctx context.Context, status string) ([]WfhResponse, error)
	Decide(ctx context.Context, actor Actor, id string, req DecisionRequest) (WfhResponse, error)
}

type service struct {
	repo   Repository
	users  UserLookup
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, users UserLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("wfh.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("wfh.service")
	}
	return &service{repo: repo, users: users, now: time.Now, logger: l}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (WfhResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create wfh requested",
		zap.String("request_id", rid),
		zap.String("user_id", userID),
	)

	uid, err := uuid.Parse(userID)
	if err != nil {
		return WfhResponse{}, wfherrors.ErrInvalidUserID
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WfhResponse{}, wfherrors.ErrUserNotFound
		}
		s.logger.Error("create wfh load user failed", zap.Error(err))
		return WfhResponse{}, err
	}
	if !u.WfhViewEnabled {
		s.logger.Warn("create wfh disabled for user", zap.String("user_id", userID))
		return WfhResponse{}, wfherrors.ErrWfhDisabled
	}

	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return WfhResponse{}, err
	}
	if strings.TrimSpace(req.RealReason) == "" {
		return WfhResponse{}, apperror.RequiredField("real_reason")
	}

	days := req.WfhDays
	if days == 0 {
		days = int(end.Sub(start).Hours()/24) + 1
	}

	rec := &Request{
		ID:           uuid.New(),
		UserID:       uid,
		EmployeeName: u.Name,
		Designation:  u.Designation,
		StartDate:    start,
		EndDate:      end,
		WfhDays:      days,
		Plan:         req.Plan,
		CurrentLevel: LevelHR,
		Status:       string(approval.StatusPending),
		HrStatus:     string(approval.StatusPending),
		BhStatus:     string(approval.StatusPending),
		AdminStatus:  string(approval.StatusPending),
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		s.logger.Error("create wfh persist failed", zap.Error(err))
		return WfhResponse{}, err
	}

	s.logger.Info("create wfh success",
		zap.String("request_id", rid),
		zap.String("wfh_id", rec.ID.String()),
		zap.Int("days", days),
	)
	return mapToResponse(*rec), nil
}

func (s *service) Mine(ctx context.Context, userID string) ([]WfhResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, wfherrors.ErrInvalidUserID
	}
	recs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list own wfh failed", zap.Error(err))
		return nil, err
	}
	return mapList(recs), nil
}

// Manageable: setiap role hanya melihat antrian level miliknya.
func (s *service) Manageable(ctx context.Context, actor Actor) ([]WfhResponse, error) {
	level, err := LevelForRole(actor.Role)
	if err != nil {
		return nil, err
	}
	recs, err := s.repo.FindPendingAtLevel(ctx, level)
	if err != nil {
		s.logger.Error("list manageable wfh failed", zap.Int("level", level), zap.Error(err))
		return nil, err
	}
	return mapList(recs), nil
}

func (s *service) History(ctx context.Context, status string) ([]WfhResponse, error) {
	status = strings.ToUpper(strings.TrimSpace(status))
	if status != "" && status != string(approval.StatusApproved) && status != string(approval.StatusRejected) {
		return nil, wfherrors.ErrInvalidStatus
	}
	recs, err := s.repo.FindDecided(ctx, status)
	if err != nil {
		s.logger.Error("list wfh history failed", zap.Error(err))
		return nil, err
	}
	return mapList(recs), nil
}

func (s *service) Decide(ctx context.Context, actor Actor, id string, req DecisionRequest) (WfhResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("decide wfh requested",
		zap.String("request_id", rid),
		zap.String("wfh_id", id),
		zap.String("actor_id", actor.ID),
		zap.String("role", actor.Role),
	)

	actorID, err := uuid.Parse(actor.ID)
	if err != nil {
		return WfhResponse{}, wfherrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(id); err != nil {
		return WfhResponse{}, wfherrors.ErrInvalidWfhID
	}
	level, err := LevelForRole(actor.Role)
	if err != nil {
		return WfhResponse{}, err
	}
	decision, err := parseDecision(req.Decision)
	if err != nil {
		return WfhResponse{}, err
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WfhResponse{}, wfherrors.ErrWfhNotFound
		}
		s.logger.Error("decide wfh load failed", zap.Error(err))
		return WfhResponse{}, err
	}
	if rec.Status != string(approval.StatusPending) {
		return WfhResponse{}, approval.ErrInvalidTransition
	}
	if rec.CurrentLevel != level {
		s.logger.Warn("decide wfh wrong level",
			zap.String("wfh_id", id),
			zap.Int("current_level", rec.CurrentLevel),
			zap.Int("actor_level", level),
		)
		return WfhResponse{}, wfherrors.ErrWrongLevel
	}

	step := Step{
		Level:     level,
		Decision:  decision,
		ActorID:   actorID,
		Remarks:   strings.TrimSpace(req.Remarks),
		DecidedAt: s.now().UTC(),
	}
	next := rec.Apply(step)

	rows, err := s.repo.ApplyStep(ctx, next, step)
	if err != nil {
		s.logger.Error("decide wfh persist failed", zap.Error(err))
		return WfhResponse{}, err
	}
	if rows == 0 {
		s.logger.Warn("decide wfh lost race", zap.String("wfh_id", id))
		return WfhResponse{}, approval.ErrInvalidTransition
	}

	s.logger.Info("decide wfh success",
		zap.String("request_id", rid),
		zap.String("wfh_id", id),
		zap.Int("level", level),
		zap.String("decision", string(decision)),
		zap.String("status", next.Status),
	)
	return mapToResponse(next), nil
}

// parseDecision juga menerima bentuk APPROVED/REJECTED.
func parseDecision(v string) (approval.Decision, error) {
	v = strings.ToUpper(strings.TrimSpace(v))
	switch v {
	case string(approval.StatusApproved):
		v = string(approval.DecisionApprove)
	case string(approval.StatusRejected):
		v = string(approval.DecisionReject)
	}
	return approval.ParseDecision(v)
}

func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, strings.TrimSpace(startRaw))
	if err != nil {
		return time.Time{}, time.Time{}, wfherrors.ErrInvalidDateFormat
	}
	end := start
	if strings.TrimSpace(endRaw) != "" {
		end, err = time.Parse(dateLayout, strings.TrimSpace(endRaw))
		if err != nil {
			return time.Time{}, time.Time{}, wfherrors.ErrInvalidDateFormat
		}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, wfherrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func mapList(recs []Request) []WfhResponse {
	out := make([]WfhResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, mapToResponse(r))
	}
	return out
}

func mapToResponse(r Request) WfhResponse {
	resp := WfhResponse{
		ID:           r.ID.String(),
		UserID:       r.UserID.String(),
		EmployeeName: r.EmployeeName,
		Designation:  r.Designation,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		WfhDays:      r.WfhDays,
		Plan:         r.Plan,
		CurrentLevel: r.CurrentLevel,
		Status:       r.Status,
		HrStatus:     r.HrStatus,
		BhStatus:     r.BhStatus,
		AdminStatus:  r.AdminStatus,
		Remarks:      r.Remarks,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
	if r.User != nil && resp.EmployeeName == "" {
		resp.EmployeeName = r.User.Name
	}
	return resp
}
