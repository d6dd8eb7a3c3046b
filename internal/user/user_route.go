package user

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
	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("/me", handler.Me)

		users.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetAll,
		)

		users.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "user", "read"),
			handler.GetById,
		)

		users.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "create"),
			handler.Create,
		)

		users.PUT("/:id/payroll",
			middleware.RBACAuthorize(rbacService, "payroll_profile", "update"),
			handler.UpdatePayrollProfile,
		)

		users.PATCH("/:id/reporting-bh",
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.AssignReportingBH,
		)

		users.PATCH("/:id/wfh-access",
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.UpdateWfhAccess,
		)

		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.UpdateStatus,
		)
	}
}
