package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterSettingsRoutes registra as rotas da configuração de divisão de lucros
func RegisterSettingsRoutes(r *gin.RouterGroup, settingsController *controller.SettingsController, jwtService *auth.JWTService) {
	settings := r.Group("/settings")
	settings.Use(auth.JWTAuthMiddleware(jwtService))
	{
		settings.GET("", settingsController.Get)
		settings.PUT("", settingsController.Save)
	}
}
