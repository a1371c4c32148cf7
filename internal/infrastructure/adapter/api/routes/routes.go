package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/handler"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	lockHandler *handler.LockHandler,
	adminHandler *handler.AdminHandler,
	registry *prometheus.Registry,
) {
	// Asset association
	router.POST("/assets/:assetType/associate", lockHandler.Associate)

	// Lock lifecycle
	lockRoutes := router.Group("/locks")
	{
		lockRoutes.POST("", lockHandler.Create)
		lockRoutes.GET("/:assetType/:unitId", lockHandler.Get)
		lockRoutes.POST("/:assetType/:unitId/extend", lockHandler.Extend)
		lockRoutes.POST("/:assetType/:unitId/withdraw", lockHandler.Withdraw)
	}

	// Administration
	adminRoutes := router.Group("/admin")
	{
		adminRoutes.POST("/pause", adminHandler.Pause)
		adminRoutes.POST("/unpause", adminHandler.Unpause)
		adminRoutes.PUT("/fees", adminHandler.SetFees)
		adminRoutes.POST("/fee-exemptions/:account", adminHandler.AddExemption)
		adminRoutes.DELETE("/fee-exemptions/:account", adminHandler.RemoveExemption)
	}

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, metrics *middleware.HTTPMetrics) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	router.Use(metrics.Handler())
}
