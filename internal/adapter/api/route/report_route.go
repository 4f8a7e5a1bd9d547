package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
)

// RegisterReportRoutes registra as rotas de relatórios financeiros
func RegisterReportRoutes(r *gin.RouterGroup, reportController *controller.ReportController, jwtService *auth.JWTService) {
	reports := r.Group("/reports")
	reports.Use(auth.JWTAuthMiddleware(jwtService))
	{
		reports.GET("/profit-split", reportController.ProfitSplit)
		reports.GET("/summary", reportController.Summary)
	}
}
