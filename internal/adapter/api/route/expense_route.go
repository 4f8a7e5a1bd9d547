package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterExpenseRoutes registra as rotas do módulo de despesas
func RegisterExpenseRoutes(r *gin.RouterGroup, expenseController *controller.ExpenseController, jwtService *auth.JWTService) {
	expenses := r.Group("/expenses")
	expenses.Use(auth.JWTAuthMiddleware(jwtService))
	{
		expenses.POST("", expenseController.Create)
		expenses.GET("", expenseController.ListByPeriod)
		expenses.PUT("/:id", expenseController.Update)
		expenses.DELETE("/:id", expenseController.Delete)
	}
}
