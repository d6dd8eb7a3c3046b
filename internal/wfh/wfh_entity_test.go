package wfh_test

import (
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/approval"
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/wfh"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelForRole(t *testing.T) {
	cases := []struct {
		role  string
		level int
	}{
		{domain.RoleHR, wfh.LevelHR},
		{domain.RoleBusinessHead, wfh.LevelBH},
		{domain.RoleAEManager, wfh.LevelBH},
		{domain.RoleAdmin, wfh.LevelAdmin},
	}
	for _, tc := range cases {
		got, err := wfh.LevelForRole(tc.role)
		require.NoError(t, err, tc.role)
		assert.Equal(t, tc.level, got, tc.role)
	}

	_, err := wfh.LevelForRole(domain.RoleEmployee)
	assert.ErrorIs(t, err, approval.ErrNotAuthorized)
}

func pending() wfh.Request {
	return wfh.Request{
		ID:           uuid.New(),
		CurrentLevel: wfh.LevelHR,
		Status:       string(approval.StatusPending),
		HrStatus:     string(approval.StatusPending),
		BhStatus:     string(approval.StatusPending),
		AdminStatus:  string(approval.StatusPending),
	}
}

func TestRequest_Apply(t *testing.T) {
	actor := uuid.New()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("approval walks every level", func(t *testing.T) {
		r := pending()
		r = r.Apply(wfh.Step{Level: wfh.LevelHR, Decision: approval.DecisionApprove, ActorID: actor, DecidedAt: now})
		assert.Equal(t, wfh.LevelBH, r.CurrentLevel)
		assert.Equal(t, "APPROVED", r.HrStatus)
		assert.Equal(t, "PENDING", r.Status)
		require.NotNil(t, r.HrID)

		r = r.Apply(wfh.Step{Level: wfh.LevelBH, Decision: approval.DecisionApprove, ActorID: actor, DecidedAt: now})
		assert.Equal(t, wfh.LevelAdmin, r.CurrentLevel)
		assert.Equal(t, "PENDING", r.Status)

		r = r.Apply(wfh.Step{Level: wfh.LevelAdmin, Decision: approval.DecisionApprove, ActorID: actor, Remarks: "ok", DecidedAt: now})
		assert.Equal(t, wfh.LevelAdmin, r.CurrentLevel)
		assert.Equal(t, "APPROVED", r.Status)
		assert.Equal(t, "APPROVED", r.AdminStatus)
		assert.Equal(t, "ok", r.Remarks)
	})

	t.Run("rejection is final", func(t *testing.T) {
		r := pending()
		r.CurrentLevel = wfh.LevelBH
		r.HrStatus = "APPROVED"
		r.Remarks = "hr note"

		r = r.Apply(wfh.Step{Level: wfh.LevelBH, Decision: approval.DecisionReject, ActorID: actor, DecidedAt: now})
		assert.Equal(t, "REJECTED", r.Status)
		assert.Equal(t, "REJECTED", r.BhStatus)
		assert.Equal(t, wfh.LevelBH, r.CurrentLevel)
		assert.Equal(t, "hr note", r.Remarks)
	})
}
