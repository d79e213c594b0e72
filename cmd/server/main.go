package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	archiveapp "github.com/palengke/backend/internal/application/archive"
	auditapp "github.com/palengke/backend/internal/application/audit"
	financeapp "github.com/palengke/backend/internal/application/finance"
	identityapp "github.com/palengke/backend/internal/application/identity"
	inventoryapp "github.com/palengke/backend/internal/application/inventory"
	leasingapp "github.com/palengke/backend/internal/application/leasing"
	legacyapp "github.com/palengke/backend/internal/application/legacy"
	lendingapp "github.com/palengke/backend/internal/application/lending"
	reportapp "github.com/palengke/backend/internal/application/report"
	settingsapp "github.com/palengke/backend/internal/application/settings"
	tradeapp "github.com/palengke/backend/internal/application/trade"
	"github.com/palengke/backend/internal/infrastructure/auth"
	"github.com/palengke/backend/internal/infrastructure/config"
	"github.com/palengke/backend/internal/infrastructure/event"
	"github.com/palengke/backend/internal/infrastructure/logger"
	"github.com/palengke/backend/internal/infrastructure/persistence"
	"github.com/palengke/backend/internal/interfaces/http/handler"
	"github.com/palengke/backend/internal/interfaces/http/middleware"
	"github.com/palengke/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Palengke Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	leaseRepo := persistence.NewGormLeaseRepository(db.DB)
	stallRepo := persistence.NewGormStallRepository(db.DB)
	tenantRepo := persistence.NewGormMarketTenantRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	paymentRepo := persistence.NewGormRentPaymentRepository(db.DB)
	itemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	loanRepo := persistence.NewGormLoanApplicationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	store := persistence.NewGormKeyedStore(db.DB, log)

	// Token blacklist: Redis when reachable, in-memory otherwise.
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, falling back to in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			_ = redisBlacklist.Close()
		}()
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	settingsService := settingsapp.NewSettingsService(store, log)

	leaseService := leasingapp.NewLeaseService(leaseRepo, stallRepo, tenantRepo)
	stallService := leasingapp.NewStallService(stallRepo)
	tenantService := leasingapp.NewMarketTenantService(tenantRepo)
	// Thresholds are re-read from settings on every approval decision.
	expenseService := financeapp.NewExpenseService(expenseRepo, settingsService)
	paymentService := financeapp.NewRentPaymentService(paymentRepo, leaseRepo)
	inventoryService := inventoryapp.NewInventoryService(itemRepo)
	orderService := tradeapp.NewPurchaseOrderService(orderRepo)
	loanService := lendingapp.NewLoanApplicationService(loanRepo, tenantRepo)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo, log)
	syncService := legacyapp.NewSyncService(store, log)
	importService := legacyapp.NewImportService(store, log)
	archiveService := archiveapp.NewArchiveService(store, log)
	trailService := auditapp.NewTrailService(auditRepo)
	reportService := reportapp.NewReportService(
		leaseRepo, expenseRepo, paymentRepo, loanRepo, store,
		cfg.Leasing.ExpiryWarningWindow, log,
	)

	// Event bus and cross-context handlers
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(leasingapp.NewLeaseApprovedHandler(stallRepo, log))
	eventBus.Subscribe(inventoryapp.NewPurchaseOrderReceivedHandler(itemRepo, log))
	eventBus.Subscribe(inventoryapp.NewStockBelowMinimumHandler(log))
	eventBus.Subscribe(legacyapp.NewMirrorHandler(
		leaseRepo, expenseRepo, paymentRepo, itemRepo, orderRepo, loanRepo, syncService, log,
	))
	eventBus.Subscribe(auditapp.NewTrailHandler(auditRepo, log))

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	leaseService.SetEventPublisher(eventBus)
	expenseService.SetEventPublisher(eventBus)
	paymentService.SetEventPublisher(eventBus)
	inventoryService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)
	loanService.SetEventPublisher(eventBus)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	r.Register(handler.NewAuthHandler(authService))
	r.Register(handler.NewUserHandler(userService))
	r.Register(handler.NewLeaseHandler(leaseService))
	r.Register(handler.NewStallHandler(stallService, tenantService))
	r.Register(handler.NewExpenseHandler(expenseService))
	r.Register(handler.NewPaymentHandler(paymentService))
	r.Register(handler.NewInventoryHandler(inventoryService))
	r.Register(handler.NewPurchaseOrderHandler(orderService))
	r.Register(handler.NewLoanHandler(loanService))
	r.Register(handler.NewReportHandler(reportService))
	r.Register(handler.NewArchiveHandler(archiveService))
	r.Register(handler.NewTransferHandler(importService))
	r.Register(handler.NewSettingsHandler(settingsService))
	r.Register(handler.NewAuditHandler(trailService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
