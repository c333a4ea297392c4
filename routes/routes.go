package routes

import (
	"github.com/ecomall/ecomall-backend/controllers"
	"github.com/ecomall/ecomall-backend/middleware"
	"github.com/ecomall/ecomall-backend/utils"
	"github.com/gin-gonic/gin"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())
	router.Use(utils.SecurityHeadersMiddleware())

	// Auth
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Catalog
	router.GET("/items/best-sale", controllers.GetBestSaleItems)
	router.GET("/items/new-arrivals", controllers.GetNewArrivalItems)
	router.GET("/items/trending", controllers.GetTrendingItems)
	router.GET("/items/:id", controllers.GetItemDetails)

	// Header menu
	router.GET("/menu/tree", controllers.GetMenuTree)
	router.GET("/menu/subcategories/:id/items", controllers.GetItemsBySubCategory)

	// Cart
	router.GET("/cart", controllers.GetCart)
	router.POST("/cart", controllers.AddToCart)
	router.PATCH("/cart/:id", controllers.UpdateCartItem)
	router.DELETE("/cart/:id", controllers.RemoveCartItem)

	// Wishlist
	router.GET("/wishlist", controllers.GetWishlist)
	router.POST("/wishlist", controllers.AddToWishlist)
	router.DELETE("/wishlist/:id", controllers.RemoveWishlistItem)

	// Orders and payments
	router.POST("/create-order", controllers.CreateOrder)
	router.POST("/create-razorpay-order", controllers.CreateRazorpayOrder)
	router.POST("/verify-payment", controllers.VerifyPayment)
	router.POST("/payment-pending", controllers.PaymentPending)
	router.POST("/payment-failed", controllers.PaymentFailed)
	router.POST("/razorpay-webhook", controllers.RazorpayWebhook)

	// Invoice
	router.GET("/invoice/:order_id/pdf", controllers.DownloadInvoice)

	// Admin (token required)
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/reports/orders/export", controllers.DownloadOrdersReportExcel)
	}

	return router
}
