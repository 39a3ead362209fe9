package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/userhub/internal/health"
	"github.com/polkiloo/userhub/internal/server/http/handlers"
	"github.com/polkiloo/userhub/internal/server/http/middleware"
)

const maxRequestBody = 1 << 20

// Setup configures gin router with handlers and middleware.
func Setup(users handlers.UserService, probes []health.Probe, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(users, logger)
	healthHandler := handlers.NewHealthHandler(probes)

	engine.GET("/healthz", healthHandler.Healthz)
	engine.GET("/readyz", healthHandler.Readyz)

	api := engine.Group("/api")
	user := api.Group("/users")
	user.GET("", userHandler.List)
	user.POST("", userHandler.Create)
	user.GET("/:id", userHandler.Get)
	user.PUT("/:id", userHandler.Update)
	user.DELETE("/:id", userHandler.Delete)

	return engine
}
