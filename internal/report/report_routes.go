package report

import (
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, logger *zap.Logger) {
	analytics := r.Group("/analytics")
	analytics.Use(middleware.AuthMiddleware())
	analytics.Use(middleware.ContextLogger(logger))
	{
		analytics.GET("/overview", middleware.RBACAuthorize(rbacService, "analytics", "read"), h.TeamOverview)
		analytics.GET("/employee/:id", middleware.RBACAuthorize(rbacService, "analytics", "read"), h.EmployeeStats)
	}

	exports := r.Group("/exports")
	exports.Use(middleware.AuthMiddleware())
	exports.Use(middleware.ContextLogger(logger))
	exports.Use(middleware.RBACAuthorize(rbacService, "export", "read"))
	{
		exports.GET("/attendance", h.ExportAttendance)
		exports.GET("/worklogs", h.ExportWorkLogs)
		exports.GET("/performance", h.ExportPerformance)
	}
}
