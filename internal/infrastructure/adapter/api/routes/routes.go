package routes

import (
	"net/http"

	coreport "github.com/avoronova/balance-ledger/internal/domain/port/core"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/avoronova/balance-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/avoronova/balance-ledger/internal/infrastructure/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	transactionHandler *handler.TransactionHandler,
) {
	api := router.Group("/api")
	{
		userRoutes := api.Group("/users")
		{
			// POST /api/users
			userRoutes.POST("", userHandler.CreateUser)

			// GET /api/users/:userId
			userRoutes.GET("/:userId", userHandler.GetUser)
		}

		transactionRoutes := api.Group("/transactions")
		{
			// POST /api/transactions/deposit/:userId
			transactionRoutes.POST("/deposit/:userId", transactionHandler.Deposit)

			// POST /api/transactions/withdraw/:userId
			transactionRoutes.POST("/withdraw/:userId", transactionHandler.Withdraw)

			// POST /api/transactions/transfer
			transactionRoutes.POST("/transfer", transactionHandler.Transfer)

			// GET /api/transactions/:userId/history
			transactionRoutes.GET("/:userId/history", transactionHandler.GetHistory)
		}
	}

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
}
