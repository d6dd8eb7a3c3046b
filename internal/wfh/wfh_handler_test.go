package wfh_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/wfh"
	wfherrors "github.com/code-hero23/peopledesk-sub002/internal/wfh/errors"
	mock_wfh "github.com/code-hero23/peopledesk-sub002/internal/wfh/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const handlerUserID = "2a9c4e1b-7d3f-4b8a-9c6e-5f1d2b3a4c70"

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newWfhRouter(svc wfh.Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := wfh.NewHandler(svc)
	r.Use(func(c *gin.Context) {
		c.Set("user_id", handlerUserID)
		c.Set("role", role)
		c.Next()
	})
	r.POST("/wfh", h.Create)
	r.GET("/wfh/me", h.Mine)
	r.GET("/wfh/manage", h.Manage)
	r.GET("/wfh/history", h.History)
	r.PUT("/wfh/:id/approve", h.Decide)
	return r
}

func send(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWfhHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_wfh.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), handlerUserID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, req wfh.CreateRequest) (wfh.WfhResponse, error) {
				assert.Equal(t, "2026-03-09", req.StartDate)
				assert.Equal(t, "renovation", req.RealReason)
				assert.True(t, req.HasPowerBackup)
				return wfh.WfhResponse{ID: "x", Status: "PENDING"}, nil
			})

		rec := send(newWfhRouter(svc, domain.RoleEmployee), http.MethodPost, "/wfh",
			`{"start_date":"2026-03-09","real_reason":"renovation","has_power_backup":true}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("negative missing start date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_wfh.NewMockService(ctrl)

		rec := send(newWfhRouter(svc, domain.RoleEmployee), http.MethodPost, "/wfh", `{"real_reason":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("negative disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock_wfh.NewMockService(ctrl)
		svc.EXPECT().Create(gomock.Any(), handlerUserID, gomock.Any()).Return(wfh.WfhResponse{}, wfherrors.ErrWfhDisabled)

		rec := send(newWfhRouter(svc, domain.RoleEmployee), http.MethodPost, "/wfh", `{"start_date":"2026-03-09"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		var env apiEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Ok)
	})
}

func TestWfhHandler_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_wfh.NewMockService(ctrl)
	svc.EXPECT().Decide(gomock.Any(), wfh.Actor{ID: handlerUserID, Role: domain.RoleHR}, "42", wfh.DecisionRequest{Decision: "APPROVED", Remarks: "ok"}).
		Return(wfh.WfhResponse{CurrentLevel: wfh.LevelBH}, nil)

	rec := send(newWfhRouter(svc, domain.RoleHR), http.MethodPut, "/wfh/42/approve", `{"decision":"APPROVED","remarks":"ok"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWfhHandler_Queues(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mock_wfh.NewMockService(ctrl)
	svc.EXPECT().Manageable(gomock.Any(), wfh.Actor{ID: handlerUserID, Role: domain.RoleAdmin}).
		Return([]wfh.WfhResponse{{ID: "a"}}, nil)
	svc.EXPECT().History(gomock.Any(), "REJECTED").Return([]wfh.WfhResponse{{ID: "b"}, {ID: "c"}}, nil)
	svc.EXPECT().Mine(gomock.Any(), handlerUserID).Return(nil, nil)

	r := newWfhRouter(svc, domain.RoleAdmin)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/wfh/manage", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/wfh/history?status=REJECTED", "").Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/wfh/me", "").Code)
}
