package settings

import (
	"github.com/code-hero23/peopledesk-sub002/internal/middleware"
	"github.com/code-hero23/peopledesk-sub002/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", middleware.RBACAuthorize(rbacService, "settings", "read"), handler.GetAll)
		settings.GET("/effective", middleware.RBACAuthorize(rbacService, "settings", "read"), handler.Effective)
		settings.PUT("/:key",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "settings", "update"),
			handler.Update,
		)
	}
}
