// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/controller"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	transactionController  *controller.TransactionController
	reportController       *controller.ReportController
	counterpartyController *controller.CounterpartyController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	reportController *controller.ReportController,
	counterpartyController *controller.CounterpartyController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		transactionController:  transactionController,
		reportController:       reportController,
		counterpartyController: counterpartyController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			}
			if r.authMiddleware != nil {
				auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			}
		}

		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.GET("/table", r.transactionController.Browse)
				transactions.GET("/export", r.transactionController.ExportCSV)
				transactions.POST("", r.authMiddleware.RequireWriteAccess(), r.transactionController.Create)
				transactions.DELETE("/:id", r.authMiddleware.RequireWriteAccess(), r.transactionController.Delete)
			}
		}

		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.GET("/summary", r.reportController.Summary)
				reports.GET("/breakdown", r.reportController.Breakdown)
				reports.GET("/receivers", r.reportController.ReceiverStats)
			}
		}

		if r.counterpartyController != nil && r.authMiddleware != nil {
			counterparties := v1.Group("/counterparties")
			counterparties.Use(r.authMiddleware.Authenticate())
			{
				counterparties.GET("", r.counterpartyController.List)
			}

			senders := v1.Group("/saved-senders")
			senders.Use(r.authMiddleware.Authenticate())
			{
				senders.GET("", r.counterpartyController.ListSavedSenders)
				senders.POST("", r.authMiddleware.RequireWriteAccess(), r.counterpartyController.SaveSender)
				senders.DELETE("/:sender", r.authMiddleware.RequireWriteAccess(), r.counterpartyController.DeleteSender)
			}
		}
	}
}
