package routes

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arklim/access-pass-service/internal/infra/config"
	"github.com/arklim/access-pass-service/internal/transport/http/handlers"
	"github.com/arklim/access-pass-service/internal/transport/http/middleware"
	"github.com/arklim/access-pass-service/internal/usecase"
)

// ServiceSet groups the services the HTTP layer depends on.
type ServiceSet struct {
	Auth   *usecase.AuthService
	Users  *usecase.UserService
	Passes *usecase.PassService
	Places *usecase.PlaceService
	Access *usecase.AccessService
}

// Dependencies encapsulates the objects required to register routes.
type Dependencies struct {
	Config      *config.AppConfig
	Logger      *zap.Logger
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.HTTPMetrics
	Services    ServiceSet
	Database    DatabaseChecker
	Cache       CacheChecker
}

// DatabaseChecker exposes readiness behaviour for database connections.
type DatabaseChecker interface {
	Ping(ctx context.Context) error
}

// CacheChecker exposes readiness behaviour for cache backends.
type CacheChecker interface {
	HealthCheck(ctx context.Context) error
}

// Register configures the Gin engine with routes and middleware.
func Register(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.EnrichContext())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.CORS(allowedOrigins(deps.Config)))

	if deps.Metrics != nil {
		r.Use(deps.Metrics.Handler())
	}

	authMiddleware := middleware.RequireAuth(deps.Services.Auth)

	healthOptions := make([]handlers.HealthOption, 0, 2)
	if deps.Database != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("database", deps.Database.Ping))
	}
	if deps.Cache != nil {
		healthOptions = append(healthOptions, handlers.WithReadinessCheck("redis", deps.Cache.HealthCheck))
	}
	healthHandler := handlers.NewHealthHandler(healthOptions...)

	r.GET("/healthz", healthHandler.Status)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := handlers.NewAuthHandler(deps.Services.Auth)
	userHandler := handlers.NewUserHandler(deps.Services.Users)
	passHandler := handlers.NewPassHandler(deps.Services.Passes)
	placeHandler := handlers.NewPlaceHandler(deps.Services.Places, deps.Services.Access)

	authGroup := r.Group("/auth")
	{
		registerHandlers := append(credentialRateLimit(deps, "auth_register_ip", deps.Config.RateLimit.RegisterMaxAttempts), authHandler.Register)
		authGroup.POST("/register", registerHandlers...)

		loginHandlers := append(credentialRateLimit(deps, "auth_login_ip", deps.Config.RateLimit.LoginMaxAttempts), authHandler.Login)
		authGroup.POST("/login", loginHandlers...)

		authGroup.GET("/me", authMiddleware, authHandler.Me)
	}

	userGroup := r.Group("/users")
	userGroup.Use(authMiddleware)
	{
		userGroup.GET("", userHandler.List)
		userGroup.POST("", userHandler.Create)
		userGroup.GET("/:id", userHandler.Get)
		userGroup.PUT("/:id", userHandler.Update)
		userGroup.DELETE("/:id", userHandler.Delete)
	}

	passGroup := r.Group("/passes")
	passGroup.Use(authMiddleware)
	{
		passGroup.GET("", passHandler.List)
		passGroup.POST("", passHandler.Create)
		// Registered before /:id so "user" is not captured as an id.
		passGroup.GET("/user", passHandler.Mine)
		passGroup.GET("/:id", passHandler.Get)
		passGroup.PUT("/:id", passHandler.Update)
		passGroup.DELETE("/:id", passHandler.Delete)
	}

	placeGroup := r.Group("/places")
	placeGroup.Use(authMiddleware)
	{
		placeGroup.GET("", placeHandler.List)
		placeGroup.POST("", placeHandler.Create)
		placeGroup.GET("/access/:userId/:placeId", placeHandler.CheckAccess)
		placeGroup.GET("/accessible/:userId", placeHandler.AccessiblePlaces)
		placeGroup.GET("/:id", placeHandler.Get)
		placeGroup.PUT("/:id", placeHandler.Update)
		placeGroup.DELETE("/:id", placeHandler.Delete)
	}

	return r
}

func allowedOrigins(cfg *config.AppConfig) []string {
	if cfg == nil || strings.TrimSpace(cfg.App.AllowedOrigins) == "" {
		return []string{"*"}
	}

	parts := strings.Split(cfg.App.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func credentialRateLimit(deps Dependencies, name string, limit int) []gin.HandlerFunc {
	if deps.RateLimiter == nil || deps.Config == nil || limit <= 0 {
		return nil
	}

	window := deps.Config.RateLimit.WindowDuration
	if window <= 0 {
		window = time.Minute
	}

	rule := middleware.RateLimitRule{
		Name:       name,
		Limit:      limit,
		Window:     window,
		Identifier: middleware.ClientIPIdentifier(),
	}

	return []gin.HandlerFunc{deps.RateLimiter.RateLimit(rule)}
}
