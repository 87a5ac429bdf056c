package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"whiskybase-backend/internal/shared/middleware"
	"whiskybase-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupWhiskyRoutes(v1, c)
		setupPriceRoutes(v1, c)
		setupReviewRoutes(v1, c)
	}

	return router
}

func setupWhiskyRoutes(v1 *gin.RouterGroup, c *container.Container) {
	whiskies := v1.Group("/whiskies")
	{
		whiskies.GET("", c.WhiskyHandler.ListWhiskies)
		whiskies.GET("/search/:query", c.WhiskyHandler.SearchWhiskies)
		whiskies.GET("/:id", c.WhiskyHandler.GetWhisky)
		whiskies.POST("", c.WhiskyHandler.CreateWhisky)
		whiskies.PUT("/:id", c.WhiskyHandler.UpdateWhisky)
		whiskies.DELETE("/:id", c.WhiskyHandler.DeleteWhisky)
	}
}

func setupPriceRoutes(v1 *gin.RouterGroup, c *container.Container) {
	prices := v1.Group("/prices")
	{
		prices.GET("/whisky/:whiskyId", c.PriceHandler.ListPricesForWhisky)
		prices.POST("", c.PriceHandler.CreatePrice)
		prices.PUT("/:id", c.PriceHandler.UpdatePrice)
		prices.DELETE("/:id", c.PriceHandler.DeletePrice)
	}
}

func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		reviews.GET("/whisky/:whiskyId", c.ReviewHandler.ListReviewsForWhisky)
		reviews.POST("", c.ReviewHandler.CreateReview)
		reviews.PUT("/:id", c.ReviewHandler.UpdateReview)
		reviews.DELETE("/:id", c.ReviewHandler.DeleteReview)
	}
}

// healthCheckHandler reports overall and per-dependency status. Database
// down means 503; the cache is optional and only reported.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
