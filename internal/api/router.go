package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fittrack/fitness-tracker/internal/api/handler"
	"github.com/fittrack/fitness-tracker/internal/api/middleware"
	"github.com/fittrack/fitness-tracker/internal/core/service"
	mongodb "github.com/fittrack/fitness-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/fittrack/fitness-tracker/internal/infrastructure/db/redis"

	_ "github.com/fittrack/fitness-tracker/docs"
)

// Options carries the router's external dependencies and settings.
type Options struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Tokens     *service.TokenManager
	ClientURL  string
	Production bool
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger, opts.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fittrack"))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{opts.ClientURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(opts.Mongo)
	entryRepo := mongodb.NewEntryRepository(opts.Mongo)
	limiter := redisdb.NewLoginRateLimiter(opts.Redis, 0, 0)

	authService := service.NewAuthService(userRepo, opts.Tokens, limiter, opts.Logger)
	entryService := service.NewEntryService(entryRepo, opts.Logger)

	authHandler := handler.NewAuthHandler(authService)
	entryHandler := handler.NewEntryHandler(entryService)
	authGate := middleware.Auth(opts.Tokens)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.SignUp)
	auth.POST("/signin", authHandler.SignIn)

	// --- Entry routes (bearer token required) ---
	entries := e.Group("/api/entries", authGate)
	entries.GET("", entryHandler.List)
	entries.POST("", entryHandler.Create)
	entries.GET("/:id", entryHandler.Get)
	entries.PUT("/:id", entryHandler.Update)
	entries.PATCH("/:id", entryHandler.Update)
	entries.DELETE("/:id", entryHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(opts.Mongo, opts.Redis)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
