package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-secret"

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTSecret(secret)
	r := gin.New()
	r.GET("/private", middleware.AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     c.GetString("user_id"),
			"role":        c.GetString("role"),
			"designation": c.GetString("designation"),
		})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := authRouter()

	t.Run("bearer token sets identity", func(t *testing.T) {
		token := signed(t, jwt.MapClaims{
			"user_id": "u-1", "role": domain.RoleHR, "designation": "", "typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":"u-1","role":"HR","designation":""}`, w.Body.String())
	})

	t.Run("cookie token", func(t *testing.T) {
		token := signed(t, jwt.MapClaims{
			"user_id": "u-2", "role": domain.RoleEmployee, "designation": "CRE", "typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "CRE")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signed(t, jwt.MapClaims{
			"user_id": "u-1", "role": domain.RoleHR, "exp": time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "TOKEN_EXPIRED")
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		token := signed(t, jwt.MapClaims{
			"user_id": "u-1", "role": domain.RoleHR, "typ": "refresh",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeRBAC struct {
	got     domain.EnforceRequest
	allowed bool
	err     error
}

func (f *fakeRBAC) Enforce(req domain.EnforceRequest) (bool, error) {
	f.got = req
	return f.allowed, f.err
}

func rbacRouter(svc middleware.RBACService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/resource",
		func(c *gin.Context) {
			c.Set("user_id", "u-1")
			c.Set("role", domain.RoleEmployee)
		},
		middleware.RBACAuthorize(svc, "request", "create"),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)
	return r
}

func TestRBACAuthorize(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		svc := &fakeRBAC{allowed: true}
		w := httptest.NewRecorder()
		rbacRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, domain.EnforceRequest{UserID: "u-1", Role: domain.RoleEmployee, Resource: "request", Action: "create"}, svc.got)
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacRouter(&fakeRBAC{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "request:create")
	})

	t.Run("enforcer error", func(t *testing.T) {
		w := httptest.NewRecorder()
		rbacRouter(&fakeRBAC{err: errors.New("boom")}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/resource", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/hr",
		func(c *gin.Context) { c.Set("role", domain.RoleEmployee) },
		middleware.RoleMiddleware(domain.RoleHR, domain.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/hr", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cacheKey := "idemp:/import:u-1:key-1"

	newRouter := func(t *testing.T) (*gin.Engine, redismock.ClientMock, *bool) {
		rdb, mock := redismock.NewClientMock()
		reached := false
		r := gin.New()
		r.POST("/import",
			func(c *gin.Context) { c.Set("user_id", "u-1") },
			middleware.Idempotency(rdb),
			func(c *gin.Context) {
				reached = true
				c.Status(http.StatusCreated)
			},
		)
		return r, mock, &reached
	}

	t.Run("replays cached response", func(t *testing.T) {
		r, mock, reached := newRouter(t)
		mock.ExpectGet(cacheKey).SetVal(`{"imported":3}`)

		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.False(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate conflicts", func(t *testing.T) {
		r, mock, reached := newRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.False(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request passes through", func(t *testing.T) {
		r, mock, reached := newRouter(t)
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		req := httptest.NewRequest(http.MethodPost, "/import", nil)
		req.Header.Set("Idempotency-Key", "key-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key skips redis", func(t *testing.T) {
		r, mock, reached := newRouter(t)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/import", nil))

		assert.True(t, *reached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRateLimitByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	newRouter := func(userID string) *gin.Engine {
		r := gin.New()
		r.POST("/check-in",
			func(c *gin.Context) {
				if userID != "" {
					c.Set("user_id", userID)
				}
			},
			middleware.RateLimitByUser(0.5, 1),
			func(c *gin.Context) { c.Status(http.StatusNoContent) },
		)
		return r
	}

	t.Run("second request within window rejected", func(t *testing.T) {
		r := newRouter("u-1")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "TOO_MANY_REQUESTS")
	})

	t.Run("anonymous request skips the limiter", func(t *testing.T) {
		r := newRouter("")
		for range 3 {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/check-in", nil))
			assert.Equal(t, http.StatusNoContent, w.Code)
		}
	})
}

func TestRateLimitByIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.RateLimitByIP(0.1, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", middleware.RequestID(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	t.Run("keeps client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "trace-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "trace-123", w.Body.String())
		assert.Equal(t, "trace-123", w.Header().Get(middleware.HeaderRequestID))
	})

	t.Run("replaces unusable id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.HeaderRequestID, "has space")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.NotEqual(t, "has space", w.Body.String())
		assert.Len(t, w.Body.String(), 36)
	})
}
