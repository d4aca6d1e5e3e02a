package server

import (
	handler "eth-marketplace/services/market/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application. uploadDir is
// served statically under /uploads for stored item images.
func SetupRouter(listingService handler.ListingServiceInterface, uploadDir string) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	marketHandler := handler.NewMarketHandler(listingService)

	router.GET("/", marketHandler.ListAvailableItemsHandler)
	router.GET("/buy", marketHandler.ListAvailableItemsHandler)
	router.GET("/get_seller/:item_id", marketHandler.GetSellerHandler)

	sell := router.Group("/sell")
	{
		sell.POST("/offer", marketHandler.CreateListingHandler)
	}

	buy := router.Group("/buy")
	{
		buy.POST("/offer/:item_id", marketHandler.PurchaseHandler)
	}

	api := router.Group("/api")
	{
		api.POST("/profile", marketHandler.ProfileHandler)
		api.POST("/transactions", marketHandler.TransactionsHandler)
		api.DELETE("/item/:item_id/delete", marketHandler.DeleteItemHandler)
		api.POST("/item/:item_id/update", marketHandler.UpdateItemHandler)
	}

	router.Static("/uploads", uploadDir)

	return router
}
