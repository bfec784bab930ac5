package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/trademindiq/trading-account/internal/api/handler"
	"github.com/trademindiq/trading-account/internal/api/middleware"
	"github.com/trademindiq/trading-account/internal/core/service"
	"github.com/trademindiq/trading-account/internal/infrastructure/db/sqlite"
)

// Options carries the auth settings the router threads into its services.
type Options struct {
	JWTSecret   string
	TokenTTL    time.Duration
	LookupField service.LookupField
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(store *sqlite.Store, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Demo-grade CORS: every origin and header. Scope this down for any real
	// deployment.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
	}))
	e.Use(echoprometheus.NewMiddleware("trademind"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(store)
	tradeRepo := sqlite.NewTradeRepository(store)
	authService := service.NewAuthService(userRepo, opts.JWTSecret, opts.TokenTTL, opts.LookupField, log)

	authHandler := handler.NewAuthHandler(authService)
	tradeHandler := handler.NewTradeHandler(tradeRepo)
	healthHandler := handler.NewHealthHandler(store)
	authMiddleware := middleware.Auth(authService)

	// --- Probes and metrics (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- API routes ---
	api := e.Group("/api")
	api.GET("/health", healthHandler.APIHealth)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, authMiddleware)
	api.GET("/trades", tradeHandler.List, authMiddleware)

	return e
}
