package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterMemberRoutes registra as rotas do módulo de sócios
func RegisterMemberRoutes(r *gin.RouterGroup, memberController *controller.MemberController, jwtService *auth.JWTService) {
	members := r.Group("/members")
	members.Use(auth.JWTAuthMiddleware(jwtService))
	{
		members.POST("", memberController.Create)
		members.GET("", memberController.List)
		members.GET("/search", memberController.Search)
		members.GET("/:id", memberController.Get)
		members.PUT("/:id", memberController.Update)
		members.DELETE("/:id", memberController.Delete)
	}
}
