package payroll

import (
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	payroll.Use(middleware.ContextLogger(logger))
	{
		payroll.GET("/my-summary", middleware.RBACAuthorize(rbacService, "payroll", "read_own"), h.MySummary)
		payroll.GET("/my-summary/slip", middleware.RBACAuthorize(rbacService, "payroll", "read_own"), h.SalarySlip)
		payroll.GET("/users/:userId/summary", middleware.RBACAuthorize(rbacService, "payroll", "read_all"), h.UserSummary)
		payroll.GET("/report", middleware.RBACAuthorize(rbacService, "payroll", "export"), h.ExportReport)

		importHandlers := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "import"),
		}
		if rdb != nil {
			importHandlers = append(importHandlers, middleware.Idempotency(rdb))
		}
		importHandlers = append(importHandlers, h.ImportManual)
		payroll.POST("/import-manual", importHandlers...)
	}
}
