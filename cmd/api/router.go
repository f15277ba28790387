package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"catalog-backend/internal/shared/middleware"
	"catalog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Metrics(),
	)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		c.AuthorHandler.RegisterRoutes(v1)
		c.CategoryHandler.RegisterRoutes(v1)
		c.BookHandler.RegisterRoutes(v1)
	}

	return router
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		database := gin.H{
			"status": "ok",
			"driver": appCtx.Store.Dialect().Name,
		}
		statusCode := http.StatusOK
		if err := appCtx.Store.Ping(ctx); err != nil {
			database["status"] = "error: " + err.Error()
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if appCtx.PG != nil {
			if stats, err := appCtx.PG.Stats(); err == nil {
				database["pool"] = stats
			}
		}

		health["services"] = gin.H{"database": database}
		c.JSON(statusCode, health)
	}
}
