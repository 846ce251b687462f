package router

import (
	"time"

	"github.com/raweer420/CRMBUTECO/internal/config"
	"github.com/raweer420/CRMBUTECO/internal/domain"
	"github.com/raweer420/CRMBUTECO/internal/handler"
	"github.com/raweer420/CRMBUTECO/internal/middleware"
	"github.com/raweer420/CRMBUTECO/internal/repository"
	"github.com/raweer420/CRMBUTECO/internal/service"
	"github.com/raweer420/CRMBUTECO/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	tabRepo := repository.NewTabRepository(db)
	productRepo := repository.NewProductRepository(db)
	financeRepo := repository.NewFinanceRepository(db)
	cashCloseRepo := repository.NewCashCloseRepository(db)
	stockRepo := repository.NewStockRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	tabSvc := service.NewTabService(tabRepo, productRepo, financeRepo, stockRepo, settingsRepo, dispatcher)
	productSvc := service.NewProductService(productRepo, dispatcher)
	financeSvc := service.NewFinanceService(financeRepo, cashCloseRepo, dispatcher)
	stockSvc := service.NewStockService(stockRepo, productRepo, dispatcher)
	settingsSvc := service.NewSettingsService(settingsRepo, dispatcher)
	authSvc := service.NewAuthService(userRepo, cfg, dispatcher)
	auditSvc := service.NewAuditService(auditRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	tabsH := handler.NewTabsHandler(tabSvc)
	productsH := handler.NewProductsHandler(productSvc)
	financeH := handler.NewFinanceHandler(financeSvc)
	stockH := handler.NewStockHandler(stockSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	authH := handler.NewAuthHandler(authSvc)
	usersH := handler.NewUsersHandler(authSvc)
	auditH := handler.NewAuditHandler(auditSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes. Coarse role gates live here; fine-grained rules
	// (admin override, BILLING edit policy, self-deactivation) live in the
	// services via capability checks.
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.GET("/auth/me", authH.Me)

		// Tabs — every role can open and add items; services gate the rest
		tabs := v1.Group("/tabs")
		{
			tabs.POST("", tabsH.CreateTab)
			tabs.GET("", tabsH.ListTabs)
			tabs.GET("/:id", tabsH.GetTab)
			tabs.POST("/:id/items", tabsH.AddItem)
			tabs.PUT("/:id/discount", tabsH.ApplyDiscount)
			tabs.POST("/:id/payments", tabsH.RegisterPayment)
			tabs.PUT("/:id/status", tabsH.UpdateStatus)
			tabs.POST("/:id/reopen", middleware.RequireRole(domain.RoleAdmin), tabsH.ReopenTab)
		}
		// Item cancel lives outside /tabs/:id — the item UUID is enough
		v1.POST("/tab-items/:itemId/cancel", tabsH.CancelItem)

		// Products — reads for everyone, writes for admin/manager
		v1.GET("/products", productsH.List)
		v1.GET("/products/:id", productsH.Get)
		products := v1.Group("/products", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Deactivate)
			products.POST("/:id/reactivate", productsH.Reactivate)
		}

		// Finance
		finance := v1.Group("/finance")
		{
			finance.GET("/categories", financeH.ListCategories)
			finance.POST("/categories", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), financeH.CreateCategory)
			finance.GET("/entries", financeH.ListEntries)
			finance.POST("/entries", financeH.CreateEntry)
			finance.GET("/cash-closes", financeH.ListCashCloses)
			finance.POST("/cash-closes", financeH.CreateCashClose)
			finance.GET("/cash-closes/:id", financeH.GetCashClose)
			finance.GET("/cash-closes/:id/pdf", financeH.CashClosePDF)
		}

		// Stock
		stock := v1.Group("/stock")
		{
			stock.GET("/movements", stockH.ListMovements)
			stock.POST("/movements", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleStock), stockH.CreateMovement)
		}

		// Settings — admin only
		settings := v1.Group("/settings", middleware.RequireRole(domain.RoleAdmin))
		{
			settings.GET("", settingsH.Get)
			settings.PUT("", settingsH.Update)
		}

		// Users — admin only
		users := v1.Group("/users", middleware.RequireRole(domain.RoleAdmin))
		{
			users.POST("", usersH.Create)
			users.GET("", usersH.List)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Deactivate)
			users.POST("/:id/reactivate", usersH.Reactivate)
		}

		// Audit trail — admin and manager
		v1.GET("/audit", middleware.RequireRole(domain.RoleAdmin, domain.RoleManager), auditH.List)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
