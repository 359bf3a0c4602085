package routes

import (
	"net/http"
	"time"

	"swimly/handlers"
	"swimly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the public booking workflow endpoints.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, wh *handlers.WebhookHandler) {
	api := r.Group("/api")
	{
		api.GET("/slots", bh.GetAvailableSlots)
		api.POST("/bookings/initiate", bh.InitiateBooking)
		api.GET("/payments/verify", bh.VerifyPayment)
		api.POST("/paystack/webhook", wh.HandlePaystackEvent)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.POST("/timeslots", ah.CreateTimeslots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Swimly"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, bh *handlers.BookingHandler, wh *handlers.WebhookHandler, ah *handlers.AdminHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, bh, wh)
	RegisterAdminRoutes(r, ah)
}
