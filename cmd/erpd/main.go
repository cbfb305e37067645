package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/handlers"
	"backoffice/internal/middleware"
	"backoffice/internal/repositories"
	"backoffice/internal/services"
	"backoffice/internal/settings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Repositories
	accountRepo := repositories.NewAccountRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	transferRepo := repositories.NewTransferRepository(db.DB)
	dilarRepo := repositories.NewDilarRepository(db.DB)
	exchangeRepo := repositories.NewExchangeRepository(db.DB)
	reserveRepo := repositories.NewReserveRepository(db.DB)
	categoryRepo := repositories.NewCategoryRepository(db.DB)
	userRepo := repositories.NewUserRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()
	accountService := services.NewAccountService(accountRepo, transactionRepo, transferRepo, metrics, logger)
	exchangeService := services.NewExchangeService(exchangeRepo, reserveRepo, dilarRepo, metrics, logger)
	dilarService := services.NewDilarService(dilarRepo, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	statementService := services.NewStatementService(accountRepo, transactionRepo, logger)
	authService := services.NewAuthService(userRepo, cfg, metrics, logger)

	seedService := services.NewSeedService(authService, accountService, dilarService, exchangeService, categoryService, logger)
	if err := seedService.SeedIfEnabled(); err != nil {
		logger.Error("database seeding failed", "error", err)
	}

	// Handlers
	accountHandler := handlers.NewAccountHandler(accountService, statementService)
	exchangeHandler := handlers.NewExchangeHandler(exchangeService)
	dilarHandler := handlers.NewDilarHandler(dilarService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(settings.NewStore(cfg.Server.SettingsPath))
	healthHandler := handlers.NewHealthCheckHandler(db.DB)

	e := newServer(cfg, logger, authService,
		accountHandler, exchangeHandler, dilarHandler, categoryHandler, authHandler, settingsHandler, healthHandler)

	// Start server
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newServer(
	cfg *config.Config,
	logger *slog.Logger,
	authService services.AuthServiceInterface,
	accountHandler *handlers.AccountHandler,
	exchangeHandler *handlers.ExchangeHandler,
	dilarHandler *handlers.DilarHandler,
	categoryHandler *handlers.CategoryHandler,
	authHandler *handlers.AuthHandler,
	settingsHandler *handlers.SettingsHandler,
	healthHandler *handlers.HealthCheckHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	rateLimiter := middleware.NewRateLimiter(
		float64(cfg.Security.RateLimitPerSecond),
		cfg.Security.RateLimitBurst,
	)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(rateLimiter.Middleware())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, "Idempotency-Key", "X-Trace-ID"},
	}))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/auth/login", authHandler.Login)

	auth := api.Group("", middleware.RequireAuth(authService))

	auth.GET("/auth/me", authHandler.Me)
	auth.POST("/auth/users", authHandler.CreateUser, middleware.RequireAdmin())

	auth.POST("/bank-accounts", accountHandler.CreateAccount)
	auth.GET("/bank-accounts", accountHandler.ListAccounts)
	auth.GET("/bank-accounts/stats", accountHandler.GetStats)
	auth.POST("/bank-accounts/transfers", accountHandler.Transfer)
	auth.GET("/bank-accounts/:accountId", accountHandler.GetAccount)
	auth.PUT("/bank-accounts/:accountId", accountHandler.UpdateAccount)
	auth.DELETE("/bank-accounts/:accountId", accountHandler.DeleteAccount, middleware.RequireAdmin())
	auth.POST("/bank-accounts/:accountId/adjust-balance", accountHandler.AdjustBalance)
	auth.GET("/bank-accounts/:accountId/transactions", accountHandler.GetAccountTransactions)
	auth.GET("/bank-accounts/:accountId/summary", accountHandler.GetAccountSummary)
	auth.GET("/bank-accounts/:accountId/statement", accountHandler.DownloadStatement)

	auth.POST("/exchanges", exchangeHandler.CreateExchange)
	auth.GET("/exchanges", exchangeHandler.ListExchanges)
	auth.GET("/exchanges/reserves", exchangeHandler.GetReserves)
	auth.GET("/exchanges/dashboard", exchangeHandler.GetDashboard)
	auth.GET("/exchanges/:exchangeId", exchangeHandler.GetExchange)
	auth.PUT("/exchanges/:exchangeId", exchangeHandler.UpdateExchange)
	auth.DELETE("/exchanges/:exchangeId", exchangeHandler.DeleteExchange)
	auth.GET("/exchanges/:exchangeId/receipt", exchangeHandler.DownloadReceipt)

	auth.POST("/dilars", dilarHandler.CreateDilar)
	auth.GET("/dilars", dilarHandler.ListDilars)
	auth.GET("/dilars/:dilarId", dilarHandler.GetDilar)
	auth.PUT("/dilars/:dilarId", dilarHandler.UpdateDilar)
	auth.DELETE("/dilars/:dilarId", dilarHandler.DeactivateDilar)

	auth.GET("/settings", settingsHandler.GetSettings)
	auth.PUT("/settings", settingsHandler.UpdateSettings, middleware.RequireAdmin())

	auth.POST("/categories", categoryHandler.CreateCategory)
	auth.GET("/categories", categoryHandler.ListCategories)
	auth.GET("/categories/:categoryId", categoryHandler.GetCategory)
	auth.PUT("/categories/:categoryId", categoryHandler.UpdateCategory)
	auth.DELETE("/categories/:categoryId", categoryHandler.DeleteCategory, middleware.RequireAdmin())

	return e
}
