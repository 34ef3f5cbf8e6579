package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/server/http/handlers"
	"github.com/fourline/orderfront/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ViewSession())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	sessionHandler := handlers.NewSessionHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	cartHandler := handlers.NewCartHandler(facade)
	ordersHandler := handlers.NewOrdersHandler(facade)
	editHandler := handlers.NewEditHandler(facade)

	view := engine.Group("/view")
	view.POST("/session", sessionHandler.Start)

	view.GET("/products", catalogHandler.List)

	view.GET("/cart", cartHandler.View)
	view.POST("/cart/items", cartHandler.Add)
	view.POST("/cart/items/:productId/increment", cartHandler.Increment)
	view.POST("/cart/items/:productId/decrement", cartHandler.Decrement)
	view.DELETE("/cart/items/:productId", cartHandler.Remove)
	view.POST("/checkout", cartHandler.Checkout)

	view.GET("/orders", ordersHandler.Listing)
	view.GET("/orders/:orderId", editHandler.Assembled)
	view.PUT("/orders/:orderId", editHandler.UpdateShipping)
	view.POST("/summaries/:productId/toggle", ordersHandler.Toggle)
	view.DELETE("/summaries/:productId/orders/:orderId", ordersHandler.Delete)

	return engine
}
