package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterDebtRoutes registra as rotas do módulo de fiados
func RegisterDebtRoutes(r *gin.RouterGroup, debtController *controller.DebtController, jwtService *auth.JWTService) {
	debts := r.Group("/debts")
	debts.Use(auth.JWTAuthMiddleware(jwtService))
	{
		debts.POST("", debtController.Create)
		debts.GET("", debtController.ListPending)
		debts.GET("/member/:memberId", debtController.ListByMember)
		debts.PUT("/:id/pay", debtController.Pay)
		debts.POST("/pay-partial", debtController.PayPartial)
	}
}
