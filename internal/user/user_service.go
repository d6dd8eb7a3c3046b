package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/deduction"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	usererrors "github.com/code-hero23/peopledesk-sub002/internal/user/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetProfile(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, f Filter) ([]UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	UpdatePayrollProfile(ctx context.Context, id string, req UpdatePayrollProfileRequest) (UserResponse, error)
	AssignReportingBH(ctx context.Context, id string, req AssignReportingBHRequest) (UserResponse, error)
	SetStatus(ctx context.Context, id, status string) error
	SetWfhAccess(ctx context.Context, id string, enabled bool) (UserResponse, error)
}

// SummaryInvalidator dipanggil setelah profil payroll berubah
// supaya ringkasan gaji yang sudah di-cache tidak basi.
type SummaryInvalidator interface {
	InvalidateUser(ctx context.Context, userID string) error
}

type service struct {
	repo        Repository
	invalidator SummaryInvalidator
	logger      *zap.Logger
}

func NewService(repo Repository, invalidator SummaryInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, invalidator: invalidator, logger: l}
}

func (s *service) GetProfile(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) List(ctx context.Context, f Filter) ([]UserResponse, error) {
	if f.Role != "" && !domain.IsValidRole(f.Role) {
		return nil, usererrors.ErrInvalidRole
	}

	users, err := s.repo.FindAll(ctx, f)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested",
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if !domain.IsValidRole(role) {
		s.logger.Warn("create user validation failed", zap.String("role", req.Role))
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u := &User{
		ID:                           uuid.New(),
		Name:                         strings.TrimSpace(req.Name),
		Email:                        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:                         role,
		Designation:                  strings.ToUpper(strings.TrimSpace(req.Designation)),
		Status:                       domain.UserStatusActive,
		AllocatedSalary:              decimal.Zero,
		SalaryViewEnabled:            true,
		TimeShortageDeductionEnabled: true,
		SalaryDeductions:             decimal.Zero,
	}

	if req.ReportingBhID != nil && *req.ReportingBhID != "" {
		bhID, err := s.resolveBusinessHead(ctx, u.ID.String(), *req.ReportingBhID)
		if err != nil {
			return UserResponse{}, err
		}
		u.ReportingBhID = &bhID
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("create user hash password failed", zap.Error(err))
		return UserResponse{}, err
	}
	u.Password = string(hashed)

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success",
		zap.String("user_id", u.ID.String()),
		zap.String("email", u.Email),
	)
	return mapToResponse(*u), nil
}

func (s *service) UpdatePayrollProfile(ctx context.Context, id string, req UpdatePayrollProfileRequest) (UserResponse, error) {
	s.logger.Debug("update payroll profile requested", zap.String("user_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}
	if req.AllocatedSalary.IsNegative() || req.SalaryDeductions.IsNegative() {
		return UserResponse{}, usererrors.ErrNegativeSalary
	}

	entries, err := toEntries(req.DeductionBreakdown)
	if err != nil {
		s.logger.Warn("update payroll profile validation failed",
			zap.String("user_id", id),
			zap.Error(err),
		)
		return UserResponse{}, usererrors.ErrInvalidDeduction
	}
	breakdown, err := deduction.Marshal(entries)
	if err != nil {
		return UserResponse{}, err
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	u.AllocatedSalary = req.AllocatedSalary.Round(2)
	u.SalaryViewEnabled = req.SalaryViewEnabled
	u.TimeShortageDeductionEnabled = req.TimeShortageDeductionEnabled
	u.SalaryDeductions = req.SalaryDeductions.Round(2)
	u.DeductionBreakdown = breakdown

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update payroll profile persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.invalidate(ctx, id)
	s.logger.Info("update payroll profile success",
		zap.String("user_id", id),
		zap.Int("deduction_entries", len(entries)),
	)
	return mapToResponse(*u), nil
}

func (s *service) AssignReportingBH(ctx context.Context, id string, req AssignReportingBHRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	bhID, err := s.resolveBusinessHead(ctx, id, req.BusinessHeadID)
	if err != nil {
		return UserResponse{}, err
	}
	u.ReportingBhID = &bhID

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("assign reporting bh persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("assign reporting bh success",
		zap.String("user_id", id),
		zap.String("business_head_id", bhID.String()),
	)
	return mapToResponse(*u), nil
}

func (s *service) SetStatus(ctx context.Context, id, status string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}
	if status != domain.UserStatusActive && status != domain.UserStatusBlocked {
		return usererrors.ErrInvalidStatus
	}

	affected, err := s.repo.UpdateStatus(ctx, []string{id}, status)
	if err != nil {
		s.logger.Error("set user status failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return usererrors.ErrUserNotFound
	}

	s.logger.Info("set user status success", zap.String("user_id", id), zap.String("status", status))
	return nil
}

func (s *service) SetWfhAccess(ctx context.Context, id string, enabled bool) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	u.WfhViewEnabled = enabled

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("set wfh access persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("set wfh access success", zap.String("user_id", id), zap.Bool("enabled", enabled))
	return mapToResponse(*u), nil
}

func (s *service) resolveBusinessHead(ctx context.Context, userID, bhID string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(bhID)
	if err != nil {
		return uuid.Nil, usererrors.ErrInvalidBusinessHead
	}
	if bhID == userID {
		return uuid.Nil, usererrors.ErrSelfReporting
	}

	bh, err := s.repo.FindByID(ctx, bhID)
	if err != nil {
		if errors.Is(mapRepositoryError(err), usererrors.ErrUserNotFound) {
			return uuid.Nil, usererrors.ErrInvalidBusinessHead
		}
		return uuid.Nil, err
	}
	if !domain.IsBusinessHead(bh.Role) {
		return uuid.Nil, usererrors.ErrInvalidBusinessHead
	}
	return parsed, nil
}

func (s *service) invalidate(ctx context.Context, userID string) {
	if s.invalidator == nil {
		return
	}
	if err := s.invalidator.InvalidateUser(ctx, userID); err != nil {
		s.logger.Warn("invalidate salary summary failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func toEntries(items []DeductionEntryDTO) ([]deduction.Entry, error) {
	entries := make([]deduction.Entry, 0, len(items))
	for _, item := range items {
		var e deduction.Entry
		if item.IsFixed == nil || *item.IsFixed {
			e = deduction.Fixed(strings.TrimSpace(item.Label), item.Amount)
		} else {
			e = deduction.Scoped(strings.TrimSpace(item.Label), item.Amount, item.Month, item.Year)
		}
		if err := deduction.Validate(e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func mapToResponse(u User) UserResponse {
	resp := UserResponse{
		ID:                           u.ID.String(),
		Name:                         u.Name,
		Email:                        u.Email,
		Role:                         u.Role,
		Designation:                  u.Designation,
		Status:                       u.Status,
		AllocatedSalary:              u.AllocatedSalary.StringFixed(2),
		SalaryViewEnabled:            u.SalaryViewEnabled,
		TimeShortageDeductionEnabled: u.TimeShortageDeductionEnabled,
		SalaryDeductions:             u.SalaryDeductions.StringFixed(2),
		DeductionBreakdown:           []DeductionEntryDTO{},
		WfhViewEnabled:               u.WfhViewEnabled,
		CreatedAt:                    u.CreatedAt.Format(time.RFC3339),
	}

	// Data lama yang rusak tetap ditampilkan sebisanya, tidak menggagalkan response.
	if entries, err := deduction.Parse(u.DeductionBreakdown); err == nil {
		for _, e := range entries {
			fixed := e.Kind == deduction.KindFixed
			resp.DeductionBreakdown = append(resp.DeductionBreakdown, DeductionEntryDTO{
				Label:   e.Label,
				Amount:  e.Amount,
				IsFixed: &fixed,
				Month:   e.Month,
				Year:    e.Year,
			})
		}
	}

	if u.ReportingBhID != nil {
		bhID := u.ReportingBhID.String()
		resp.ReportingBhID = &bhID
	}
	if u.ReportingBh != nil {
		resp.ReportingBhName = u.ReportingBh.Name
	}
	return resp
}
