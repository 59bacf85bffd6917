package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/octa-app/fengshui-backend/internal/domain/auth"
	"github.com/octa-app/fengshui-backend/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler, authSvc auth.Service) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	api := router.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", handler.Register)
			authGroup.POST("/login", handler.Login)
			authGroup.POST("/login-oauth", handler.OAuthLogin)
			authGroup.POST("/refresh", handler.Refresh)
			authGroup.GET("/me", authMiddleware(authSvc), handler.Me)
		}

		protected := api.Group("", authMiddleware(authSvc))
		{
			protected.POST("/profiles", handler.CreateProfile)
			protected.GET("/profiles", handler.ListProfiles)
			protected.GET("/profiles/:id", handler.GetProfile)
			protected.PATCH("/profiles/:id", handler.UpdateProfile)
			protected.DELETE("/profiles/:id", handler.DeleteProfile)

			protected.POST("/analysis", handler.SubmitAnalysis)
			protected.GET("/analysis/reports", handler.ListReports)
			protected.GET("/analysis/reports/:id", handler.GetReport)

			protected.POST("/media/photos", handler.UploadPhoto)
			protected.GET("/media/*key", handler.GetPhoto)
		}
	}

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        withRetry(router, cfg.HTTP.Retry, handler.logger),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
