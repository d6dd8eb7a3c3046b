package wfh_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
	"github.com/code-hero23/peopledesk-sub002/internal/user"
	"github.com/code-hero23/peopledesk-sub002/internal/wfh"
	wfherrors "github.com/code-hero23/peopledesk-sub002/internal/wfh/errors"
	mock_wfh "github.com/code-hero23/peopledesk-sub002/internal/wfh/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newWfhService(t *testing.T) (wfh.Service, *mock_wfh.MockRepository, *mock_wfh.MockUserLookup) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_wfh.NewMockRepository(ctrl)
	users := mock_wfh.NewMockUserLookup(ctrl)
	return wfh.NewService(repo, users), repo, users
}

func validCreate() wfh.CreateRequest {
	return wfh.CreateRequest{
		StartDate: "2026-03-09",
		EndDate:   "2026-03-11",
		Plan:      wfh.Plan{RealReason: "renovation", HasStableInternet: true},
	}
}

func TestWfhService_Create(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run("success", func(t *testing.T) {
		svc, repo, users := newWfhService(t)
		users.EXPECT().FindByID(gomock.Any(), uid.String()).
			Return(&user.User{ID: uid, Name: "Meera", Designation: "FA", WfhViewEnabled: true}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *wfh.Request) error {
			assert.Equal(t, uid, r.UserID)
			assert.Equal(t, wfh.LevelHR, r.CurrentLevel)
			assert.Equal(t, "PENDING", r.AdminStatus)
			return nil
		})

		resp, err := svc.Create(ctx, uid.String(), validCreate())
		require.NoError(t, err)
		assert.Equal(t, "Meera", resp.EmployeeName)
		assert.Equal(t, 3, resp.WfhDays)
		assert.Equal(t, "2026-03-11", resp.EndDate)
		assert.True(t, resp.HasStableInternet)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("negative disabled for user", func(t *testing.T) {
		svc, _, users := newWfhService(t)
		users.EXPECT().FindByID(gomock.Any(), uid.String()).Return(&user.User{ID: uid}, nil)

		_, err := svc.Create(ctx, uid.String(), validCreate())
		assert.ErrorIs(t, err, wfherrors.ErrWfhDisabled)
	})

	t.Run("negative user not found", func(t *testing.T) {
		svc, _, users := newWfhService(t)
		users.EXPECT().FindByID(gomock.Any(), uid.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Create(ctx, uid.String(), validCreate())
		assert.ErrorIs(t, err, wfherrors.ErrUserNotFound)
	})

	t.Run("negative end before start", func(t *testing.T) {
		svc, _, users := newWfhService(t)
		users.EXPECT().FindByID(gomock.Any(), uid.String()).Return(&user.User{ID: uid, WfhViewEnabled: true}, nil)

		req := validCreate()
		req.EndDate = "2026-03-01"
		_, err := svc.Create(ctx, uid.String(), req)
		assert.ErrorIs(t, err, wfherrors.ErrInvalidDateRange)
	})

	t.Run("negative missing reason", func(t *testing.T) {
		svc, _, users := newWfhService(t)
		users.EXPECT().FindByID(gomock.Any(), uid.String()).Return(&user.User{ID: uid, WfhViewEnabled: true}, nil)

		req := validCreate()
		req.RealReason = "  "
		_, err := svc.Create(ctx, uid.String(), req)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Contains(t, httpErr.Message, "real_reason")
	})
}

func TestWfhService_Decide(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	hr := wfh.Actor{ID: uuid.NewString(), Role: domain.RoleHR}
	bh := wfh.Actor{ID: uuid.NewString(), Role: domain.RoleBusinessHead}
	admin := wfh.Actor{ID: uuid.NewString(), Role: domain.RoleAdmin}

	atLevel := func(level int) *wfh.Request {
		r := pending()
		r.ID = id
		r.CurrentLevel = level
		return &r
	}

	t.Run("hr approval moves to bh", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(atLevel(wfh.LevelHR), nil)
		repo.EXPECT().ApplyStep(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, next wfh.Request, s wfh.Step) (int64, error) {
				assert.Equal(t, wfh.LevelHR, s.Level)
				assert.Equal(t, wfh.LevelBH, next.CurrentLevel)
				return 1, nil
			})

		resp, err := svc.Decide(ctx, hr, id.String(), wfh.DecisionRequest{Decision: "APPROVED"})
		require.NoError(t, err)
		assert.Equal(t, wfh.LevelBH, resp.CurrentLevel)
		assert.Equal(t, "APPROVED", resp.HrStatus)
		assert.Equal(t, "PENDING", resp.Status)
	})

	t.Run("admin approval is final", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(atLevel(wfh.LevelAdmin), nil)
		repo.EXPECT().ApplyStep(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		resp, err := svc.Decide(ctx, admin, id.String(), wfh.DecisionRequest{Decision: "approve"})
		require.NoError(t, err)
		assert.Equal(t, "APPROVED", resp.Status)
	})

	t.Run("bh rejection is final", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(atLevel(wfh.LevelBH), nil)
		repo.EXPECT().ApplyStep(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)

		resp, err := svc.Decide(ctx, bh, id.String(), wfh.DecisionRequest{Decision: "REJECT", Remarks: "client visit"})
		require.NoError(t, err)
		assert.Equal(t, "REJECTED", resp.Status)
		assert.Equal(t, "client visit", resp.Remarks)
	})

	t.Run("negative wrong level", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(atLevel(wfh.LevelHR), nil)

		_, err := svc.Decide(ctx, bh, id.String(), wfh.DecisionRequest{Decision: "APPROVE"})
		assert.ErrorIs(t, err, wfherrors.ErrWrongLevel)
	})

	t.Run("negative already decided", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		rec := atLevel(wfh.LevelBH)
		rec.Status = "REJECTED"
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(rec, nil)

		_, err := svc.Decide(ctx, bh, id.String(), wfh.DecisionRequest{Decision: "APPROVE"})
		assert.ErrorIs(t, err, approval.ErrInvalidTransition)
	})

	t.Run("negative lost race", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(atLevel(wfh.LevelHR), nil)
		repo.EXPECT().ApplyStep(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)

		_, err := svc.Decide(ctx, hr, id.String(), wfh.DecisionRequest{Decision: "APPROVE"})
		assert.ErrorIs(t, err, approval.ErrInvalidTransition)
	})

	t.Run("negative employee cannot decide", func(t *testing.T) {
		svc, _, _ := newWfhService(t)
		_, err := svc.Decide(ctx, wfh.Actor{ID: uuid.NewString(), Role: domain.RoleEmployee}, id.String(), wfh.DecisionRequest{Decision: "APPROVE"})
		assert.ErrorIs(t, err, approval.ErrNotAuthorized)
	})

	t.Run("negative bad decision", func(t *testing.T) {
		svc, _, _ := newWfhService(t)
		_, err := svc.Decide(ctx, hr, id.String(), wfh.DecisionRequest{Decision: "MAYBE"})
		assert.ErrorIs(t, err, approval.ErrInvalidDecision)
	})

	t.Run("negative not found", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindByID(gomock.Any(), id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Decide(ctx, hr, id.String(), wfh.DecisionRequest{Decision: "APPROVE"})
		assert.ErrorIs(t, err, wfherrors.ErrWfhNotFound)
	})
}

func TestWfhService_Queues(t *testing.T) {
	ctx := context.Background()

	t.Run("manageable uses role level", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindPendingAtLevel(gomock.Any(), wfh.LevelBH).Return([]wfh.Request{pending()}, nil)

		resp, err := svc.Manageable(ctx, wfh.Actor{ID: uuid.NewString(), Role: domain.RoleAEManager})
		require.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("history filter", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		repo.EXPECT().FindDecided(gomock.Any(), "APPROVED").Return(nil, nil)

		resp, err := svc.History(ctx, "approved")
		require.NoError(t, err)
		assert.Empty(t, resp)
	})

	t.Run("negative history status", func(t *testing.T) {
		svc, _, _ := newWfhService(t)
		_, err := svc.History(ctx, "PENDING")
		assert.ErrorIs(t, err, wfherrors.ErrInvalidStatus)
	})

	t.Run("mine", func(t *testing.T) {
		svc, repo, _ := newWfhService(t)
		uid := uuid.NewString()
		repo.EXPECT().FindByUser(gomock.Any(), uid).Return([]wfh.Request{pending(), pending()}, nil)

		resp, err := svc.Mine(ctx, uid)
		require.NoError(t, err)
		assert.Len(t, resp, 2)
	})
}
