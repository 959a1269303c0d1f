package server

import (
	handler "auction-settlement/services/trading/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.TradingServiceInterface, royalties handler.RoyaltyStore) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	tradingHandler := handler.NewTradingHandler(service, royalties)

	items := router.Group("/items")
	{
		items.POST("", tradingHandler.OnboardItemHandler)
		items.GET("/:item_id/listing", tradingHandler.GetListingHandler)
		items.POST("/:item_id/listings", tradingHandler.StartListingHandler)
		items.POST("/:item_id/bids", tradingHandler.AcceptBidHandler)
		items.POST("/:item_id/complete", tradingHandler.CompleteListingHandler)
	}

	accounts := router.Group("/accounts")
	{
		accounts.POST("/:account_id/reclaim", tradingHandler.ReclaimHandler)
		accounts.GET("/:account_id/escrow", tradingHandler.GetEscrowHandler)
		accounts.GET("/:account_id/balance", tradingHandler.GetBalanceHandler)
	}

	return router
}
