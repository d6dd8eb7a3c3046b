package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/auth"
	autherrors "github.com/code-hero23/peopledesk-sub002/internal/auth/errors"
	authMock "github.com/code-hero23/peopledesk-sub002/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupAuthRouter(handler *auth.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", handler.Login)
	r.POST("/logout", handler.Logout)
	return r
}

func TestHandler_Login(t *testing.T) {
	reqBody := auth.LoginRequest{Email: "test@example.com", Password: "password123"}
	body, _ := json.Marshal(reqBody)

	t.Run("web client gets cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := authMock.NewMockService(ctrl)
		router := setupAuthRouter(auth.NewHandler(mockService, false))

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "user-1", Email: reqBody.Email}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "WEB")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		names := map[string]string{}
		for _, c := range w.Result().Cookies() {
			names[c.Name] = c.Value
		}
		assert.Equal(t, "access-token", names["access_token"])
		assert.Equal(t, "refresh-token", names["refresh_token"])
	})

	t.Run("mobile client gets no cookies", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := authMock.NewMockService(ctrl)
		router := setupAuthRouter(auth.NewHandler(mockService, false))

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Email, reqBody.Password).
			Return("access-token", "refresh-token", auth.AuthResponse{ID: "user-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Client-Type", "MOBILE")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())
		assert.Contains(t, w.Body.String(), "access-token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := authMock.NewMockService(ctrl)
		router := setupAuthRouter(auth.NewHandler(mockService, false))

		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "AUTH_FAILED")
	})

	t.Run("validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		router := setupAuthRouter(auth.NewHandler(authMock.NewMockService(ctrl), false))

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"nope"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := setupAuthRouter(auth.NewHandler(authMock.NewMockService(ctrl), true))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.Empty(t, c.Value)
		assert.True(t, c.Secure)
	}
	assert.Len(t, w.Result().Cookies(), 2)
}
