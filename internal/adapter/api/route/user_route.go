package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
	"github.com/hugohenrick/academia-backoffice/pkg/tenant"
)

// RegisterUserRoutes registra as rotas do módulo de usuários.
// Criação e remoção são restritas a administradores.
func RegisterUserRoutes(r *gin.RouterGroup, userController *controller.UserController, jwtService *auth.JWTService) {
	users := r.Group("/users")
	users.Use(auth.JWTAuthMiddleware(jwtService))
	{
		users.GET("", userController.List)

		admin := users.Group("")
		admin.Use(auth.RoleAuthMiddleware(tenant.RoleSuperAdmin, "admin"))
		{
			admin.POST("", userController.Create)
			admin.DELETE("/:id", userController.Delete)
		}
	}
}
