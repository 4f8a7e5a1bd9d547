package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterAuthRoutes registra as rotas de autenticação
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", authController.Login)
		authGroup.GET("/me", auth.JWTAuthMiddleware(jwtService), authController.Me)
	}
}
