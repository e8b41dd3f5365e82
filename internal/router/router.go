package router

import (
	"github.com/gin-gonic/gin"

	"gstbooks/internal/config"
	"gstbooks/internal/handler"
	"gstbooks/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	reportH *handler.ReportHandler,
	dashboardH *handler.DashboardHandler,
	transactionH *handler.TransactionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	gst := v1.Group("/gst")
	gst.GET("/returns", reportH.GetReturn)

	dashboard := v1.Group("/dashboard")
	dashboard.GET("/cashflow", dashboardH.Cashflow)

	v1.GET("/transactions", transactionH.List)

	return r
}
