package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bsm/redislock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/config"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/handler"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// Per-user upload serialization via Redis advisory locks
	locker := redislock.New(rdb)

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	stockRepo := repository.NewStockRepository(db)
	salesRepo := repository.NewSalesRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	uow := repository.NewUnitOfWork(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, dispatcher, cfg)
	stockSvc := service.NewStockService(stockRepo, uow, locker)
	salesSvc := service.NewSalesService(salesRepo, uow, locker)
	analyticsSvc := service.NewAnalyticsService(salesRepo)
	storeSvc := service.NewStoreService(storeRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	uploadsH := handler.NewUploadsHandler(stockSvc, salesSvc, cfg.UploadDir)
	stockH := handler.NewStockHandler(stockSvc)
	salesH := handler.NewSalesHandler(salesSvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	storesH := handler.NewStoresHandler(storeSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/verify-otp", authH.VerifyOTP)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/stock/upload", uploadsH.UploadStock)
		v1.GET("/stock", stockH.List)

		v1.POST("/sales/upload", uploadsH.UploadSales)
		v1.GET("/sales", salesH.List)

		v1.GET("/analytics", analyticsH.Dashboard)

		v1.GET("/store", storesH.Get)
		v1.POST("/store", storesH.Save)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
