package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/academia-backoffice/docs"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/controller"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/api/route"
	"github.com/hugohenrick/academia-backoffice/internal/adapter/repository"
	"github.com/hugohenrick/academia-backoffice/internal/infrastructure/database"
	"github.com/hugohenrick/academia-backoffice/internal/service"
	"github.com/hugohenrick/academia-backoffice/pkg/auth"
	"github.com/hugohenrick/academia-backoffice/pkg/logger"
	"github.com/hugohenrick/academia-backoffice/pkg/notifier"
	"github.com/hugohenrick/academia-backoffice/pkg/tenant"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp monta a aplicação: banco, repositórios, serviços, middlewares e rotas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar ao banco de dados: %w", err)
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositórios
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewUserRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	productRepo := repository.NewProductRepository(db)
	debtRepo := repository.NewDebtRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	reminderRepo := repository.NewReminderRepository(db)

	txManager := database.NewTxManager(db)

	// Notificador de WhatsApp; nil quando o webhook não está configurado
	var whatsApp notifier.Notifier
	if n := notifier.NewWhatsAppNotifier(log); n != nil {
		whatsApp = n
	} else {
		log.Warn("WHATSAPP_WEBHOOK_URL não definida, envio de lembretes desabilitado")
	}

	// Serviços
	debtService := service.NewDebtService(debtRepo, productRepo, paymentRepo, txManager, log)
	profitService := service.NewProfitService(tenantRepo, settingsRepo, paymentRepo, expenseRepo)
	reminderService := service.NewReminderService(memberRepo, paymentRepo, reminderRepo, whatsApp, log)

	// Controllers
	authController := controller.NewAuthController(userRepo, jwtService, log)
	tenantController := controller.NewTenantController(tenantRepo, log)
	userController := controller.NewUserController(userRepo, log)
	memberController := controller.NewMemberController(memberRepo, log)
	productController := controller.NewProductController(productRepo, log)
	debtController := controller.NewDebtController(debtService, debtRepo, memberRepo, log)
	paymentController := controller.NewPaymentController(paymentRepo, memberRepo, log)
	expenseController := controller.NewExpenseController(expenseRepo, log)
	settingsController := controller.NewSettingsController(settingsRepo, log)
	reminderController := controller.NewReminderController(reminderService, log)
	reportController := controller.NewReportController(profitService, paymentRepo, expenseRepo, debtRepo, log)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	// O Resolver instala o escopo de tenant em c.Request.Context(); o
	// fallback faz o *gin.Context entregá-lo aos repositórios via Value.
	router.ContextWithFallback = true
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", tenant.SlugHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Toda a API passa pela resolução de tenant: o escopo fica no contexto
	// da requisição antes de qualquer handler
	api := router.Group("/api")
	api.Use(tenant.Resolver(jwtService, repository.NewTenantResolver(tenantRepo)))

	route.RegisterAuthRoutes(api, authController, jwtService)
	route.RegisterTenantRoutes(api, tenantController, jwtService)
	route.RegisterUserRoutes(api, userController, jwtService)
	route.RegisterMemberRoutes(api, memberController, jwtService)
	route.RegisterProductRoutes(api, productController, jwtService)
	route.RegisterDebtRoutes(api, debtController, jwtService)
	route.RegisterPaymentRoutes(api, paymentController, jwtService)
	route.RegisterExpenseRoutes(api, expenseController, jwtService)
	route.RegisterSettingsRoutes(api, settingsController, jwtService)
	route.RegisterReminderRoutes(api, reminderController, jwtService)
	route.RegisterReportRoutes(api, reportController, jwtService)

	return &App{
		router: router,
		db:     db,
		logger: log,
	}, nil
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("servidor iniciado", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// corsOrigins lê as origens permitidas da variável CORS_ORIGINS
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"http://localhost:3000"}
	}

	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
