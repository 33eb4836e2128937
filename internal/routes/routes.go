package routes

import (
	"net/http"
	"os"

	"github.com/Het4705/chic-dashboard-haven/internal/handlers"
	"github.com/Het4705/chic-dashboard-haven/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the console frontend to call us.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:5173"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		// Preflight OPTIONS requests get an empty 204.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(CORSMiddleware())

	v1 := router.Group("/v1")
	{
		// --- Public Routes ---
		v1.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong!"})
		})
		v1.POST("/login", h.Login)

		// --- Protected Routes (Login Required) ---
		authed := v1.Group("/")
		authed.Use(middleware.AuthMiddleware())
		{
			authed.POST("/upload", h.UploadFile)

			// Products
			authed.POST("/products", h.CreateProduct)
			authed.GET("/products", h.GetProducts)
			authed.GET("/products/top", h.GetTopProducts)
			authed.POST("/products/generate-description", h.GenerateDescription)
			authed.GET("/products/:id", h.GetProduct)
			authed.PUT("/products/:id", h.UpdateProduct)
			authed.DELETE("/products/:id", h.DeleteProduct)

			// Collections
			authed.POST("/collections", h.CreateCollection)
			authed.GET("/collections", h.GetCollections)
			authed.GET("/collections/:id", h.GetCollection)
			authed.PUT("/collections/:id", h.UpdateCollection)
			authed.DELETE("/collections/:id", h.DeleteCollection)

			// Orders
			authed.POST("/orders", h.CreateOrder)
			authed.GET("/orders", h.GetOrders)
			authed.GET("/orders/recent", h.GetRecentOrders)
			authed.GET("/orders/:id", h.GetOrder)
			authed.DELETE("/orders/:id", h.DeleteOrder)
			authed.PATCH("/orders/:id/status", h.UpdateOrderStatus)
			authed.PATCH("/orders/:id/payment-status", h.UpdatePaymentStatus)
			authed.PATCH("/orders/:id/tracking", h.UpdateTracking)

			// Users
			authed.POST("/users", h.CreateUser)
			authed.GET("/users", h.GetUsers)
			authed.GET("/users/:id", h.GetUser)
			authed.PUT("/users/:id", h.UpdateUser)
			authed.DELETE("/users/:id", h.DeleteUser)
			authed.GET("/users/:id/orders", h.GetOrdersByUser)
			authed.POST("/users/:id/addresses", h.AddUserAddress)
			authed.POST("/users/:id/favorites/:productId", h.ToggleFavorite)

			// Reels
			authed.POST("/reels", h.CreateReel)
			authed.GET("/reels", h.GetReels)

			// Dashboard
			authed.GET("/dashboard", h.GetDashboard)
		}
	}

	return router
}
