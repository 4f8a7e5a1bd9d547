package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterReminderRoutes registra as rotas de lembretes de mensalidade
func RegisterReminderRoutes(r *gin.RouterGroup, reminderController *controller.ReminderController, jwtService *auth.JWTService) {
	reminders := r.Group("/reminders")
	reminders.Use(auth.JWTAuthMiddleware(jwtService))
	{
		reminders.GET("", reminderController.List)
		reminders.POST("/bulk", reminderController.SendBulk)
		reminders.POST("/:memberId", reminderController.Send)
	}
}
