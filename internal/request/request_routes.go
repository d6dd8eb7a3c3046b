package request

import (
	"github.com/code-hero23/peopledesk-sub002/internal/domain"
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	requests := r.Group("/requests")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "request", "create"),
			handler.Submit,
		)

		requests.GET("/mine",
			middleware.RBACAuthorize(rbacService, "request", "read_own"),
			handler.Mine,
		)

		requests.GET("/pending/bh",
			middleware.RoleMiddleware(domain.RoleBusinessHead, domain.RoleAEManager),
			middleware.RBACAuthorize(rbacService, "request", "decide"),
			handler.PendingForBH,
		)

		requests.GET("/pending/hr",
			middleware.RBACAuthorize(rbacService, "request", "read_all"),
			handler.PendingForHR,
		)

		requests.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "request", "read_all"),
			handler.GetAll,
		)

		requests.GET("/export",
			middleware.RateLimitByUser(0.2, 1),
			middleware.RBACAuthorize(rbacService, "request", "export"),
			handler.Export,
		)

		requests.GET("/:id",
			middleware.RBACAuthorize(rbacService, "request", "read_own"),
			handler.GetById,
		)

		requests.POST("/:id/decision",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "request", "decide"),
			handler.Decide,
		)

		requests.POST("/limits/recompute",
			middleware.RBACAuthorize(rbacService, "request", "repair"),
			handler.RecomputeLimits,
		)
	}
}
