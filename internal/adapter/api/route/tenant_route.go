package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
	"github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

// RegisterTenantRoutes registra as rotas de administração de academias.
// Todas exigem o papel de superadmin.
func RegisterTenantRoutes(r *gin.RouterGroup, tenantController *controller.TenantController, jwtService *auth.JWTService) {
	tenants := r.Group("/tenants")
	tenants.Use(auth.JWTAuthMiddleware(jwtService), auth.RoleAuthMiddleware(tenant.RoleSuperAdmin))
	{
		tenants.POST("", tenantController.Create)
		tenants.GET("", tenantController.List)
		tenants.GET("/:id", tenantController.Get)
		tenants.PUT("/:id", tenantController.Update)
		tenants.DELETE("/:id", tenantController.Delete)
	}
}
