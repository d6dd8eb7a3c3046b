package wfh

import (
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
	wfh := r.Group("/wfh")
	wfh.Use(middleware.AuthMiddleware())
	wfh.Use(middleware.ContextLogger(logger))
	{
		wfh.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "wfh", "create"),
			handler.Create,
		)

		wfh.GET("/me",
			middleware.RBACAuthorize(rbacService, "wfh", "create"),
			handler.Mine,
		)

		wfh.GET("/manage",
			middleware.RBACAuthorize(rbacService, "wfh", "decide"),
			handler.Manage,
		)

		wfh.GET("/history",
			middleware.RBACAuthorize(rbacService, "wfh", "decide"),
			handler.History,
		)

		wfh.PUT("/:id/approve",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "wfh", "decide"),
			handler.Decide,
		)
	}
}
