package api

import (
	"taskapp/internal/adapter/http/handler"
	"taskapp/pkg/auth"
	"taskapp/pkg/config"
	"taskapp/pkg/metrics"
	"taskapp/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type Handlers struct {
	Auth *handler.AuthHandler
	Task *handler.TaskHandler
	JWT  *auth.JWT
}

func SetupRouter(handlers Handlers, cfg *config.Config, m *metrics.AppMetrics) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("taskapp"))
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware(m))

	if cfg.RateLimitEnabled {
		limiter := ratelimit.NewRateLimiter(m)
		router.Use(limiter.Middleware())
	}

	registerRoutes(router, handlers)

	return router
}

// SetupRouterForTests skips telemetry and rate limiting so handler tests
// exercise routing and handlers only.
func SetupRouterForTests(handlers Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(gin.Recovery())

	registerRoutes(router, handlers)

	return router
}

func registerRoutes(router *gin.Engine, handlers Handlers) {
	if handlers.Auth != nil {
		public := router.Group("/api/auth")
		{
			public.GET("/health", handlers.Auth.Health)
			public.POST("/register", handlers.Auth.Register)
			public.POST("/login", handlers.Auth.Login)
		}
	}

	if handlers.Task != nil {
		protected := router.Group("/api/todos")
		protected.Use(handlers.JWT.Middleware())
		{
			protected.GET("", handlers.Task.ListTasks)
			protected.GET("/completed", handlers.Task.ListCompletedTasks)
			protected.GET("/incomplete", handlers.Task.ListIncompleteTasks)
			protected.GET("/:id", handlers.Task.GetTask)
			protected.POST("", handlers.Task.CreateTask)
			protected.PUT("/:id", handlers.Task.UpdateTask)
			protected.PATCH("/:id/toggle", handlers.Task.ToggleTask)
			protected.DELETE("/:id", handlers.Task.DeleteTask)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
