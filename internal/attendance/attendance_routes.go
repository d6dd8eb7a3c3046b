package attendance

import (
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	att := r.Group("/attendance")
	att.Use(middleware.AuthMiddleware())
	att.Use(middleware.ContextLogger(logger))
	{
		att.POST("/check-in",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "self"),
			h.CheckIn,
		)
		att.PUT("/check-out",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "self"),
			h.CheckOut,
		)
		att.POST("/breaks/start",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "self"),
			h.StartBreak,
		)
		att.PUT("/breaks/end",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "self"),
			h.EndBreak,
		)
		att.GET("/today", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.Today)
		att.GET("/mine", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.Mine)

		att.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read_all"), h.ListByDate)
		att.GET("/users/:userId", middleware.RBACAuthorize(rbacService, "attendance", "read_all"), h.UserHistory)
		att.POST("/breaks/close-stale", middleware.RBACAuthorize(rbacService, "attendance", "repair"), h.CloseStaleBreaks)
	}
}
