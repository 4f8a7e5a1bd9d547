package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterPaymentRoutes registra as rotas do módulo de recebimentos
func RegisterPaymentRoutes(r *gin.RouterGroup, paymentController *controller.PaymentController, jwtService *auth.JWTService) {
	payments := r.Group("/payments")
	payments.Use(auth.JWTAuthMiddleware(jwtService))
	{
		payments.POST("", paymentController.Create)
		payments.GET("", paymentController.ListByPeriod)
		payments.GET("/member/:memberId", paymentController.ListByMember)
		payments.DELETE("/:id", paymentController.Delete)
	}
}
