package worklog

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
	logs := r.Group("/worklogs")
	logs.Use(middleware.AuthMiddleware())
	logs.Use(middleware.ContextLogger(logger))
	{
		logs.GET("/form", middleware.RBACAuthorize(rbacService, "worklog", "write"), h.Form)
		logs.PUT("/today",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "worklog", "write"),
			h.SaveToday,
		)
		logs.POST("/today/close", middleware.RBACAuthorize(rbacService, "worklog", "write"), h.Close)
		logs.GET("/mine", middleware.RBACAuthorize(rbacService, "worklog", "write"), h.Mine)
		logs.GET("", middleware.RBACAuthorize(rbacService, "worklog", "read_all"), h.GetAll)
	}
}
