package routes

import (
	"net/http"
	"time"

	"venuely/handlers"
	"venuely/middleware"
	"venuely/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPublicRoutes registers the endpoints backing the public booking
// form and gallery. Booking submission is rate limited per client IP.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/bookings", middleware.RateLimitMiddleware(), hb.Booking.CreateBookingHandler)
		api.GET("/slots/available/:date", hb.Catalog.AvailableSlotsHandler)
		api.GET("/plans", hb.Catalog.ListPlansHandler)
		api.GET("/addons", hb.Catalog.ListAddonsHandler)
		api.GET("/photos", hb.Photo.ListPhotosHandler)
		api.POST("/auth/login", hb.Auth.LoginHandler)
	}
}

// RegisterAdminRoutes registers the dashboard endpoints. Everything here
// requires a valid admin token.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthMiddleware(), middleware.RequireAdmin())

		admin.POST("/auth/logout", hb.Auth.LogoutHandler)
		admin.GET("/auth/me", hb.Auth.MeHandler)
		admin.PUT("/auth/fcm-token", hb.Auth.UpdateFCMTokenHandler)

		admin.GET("/bookings", hb.Booking.GetAllBookingsHandler)
		admin.GET("/bookings/today", hb.Booking.GetTodayBookingsHandler)
		admin.GET("/bookings/stats", hb.Booking.GetBookingStatsHandler)
		admin.GET("/bookings/:id", hb.Booking.GetBookingByIDHandler)
		admin.PATCH("/bookings/:id/status", hb.Booking.UpdateBookingStatusHandler)
		admin.PATCH("/bookings/:id/payment", hb.Booking.UpdateBookingPaymentHandler)
		admin.POST("/bookings/:id/payment-intent", hb.Booking.CreatePaymentIntentHandler)
		admin.DELETE("/bookings/:id", hb.Booking.DeleteBookingHandler)

		admin.GET("/slots", hb.Catalog.ListSlotsHandler)
		admin.GET("/slots/:id", hb.Catalog.GetSlotHandler)
		admin.POST("/slots", hb.Catalog.CreateSlotHandler)
		admin.PUT("/slots/:id", hb.Catalog.UpdateSlotHandler)
		admin.DELETE("/slots/:id", hb.Catalog.DeleteSlotHandler)

		admin.GET("/plans/:id", hb.Catalog.GetPlanHandler)
		admin.POST("/plans", hb.Catalog.CreatePlanHandler)
		admin.PUT("/plans/:id", hb.Catalog.UpdatePlanHandler)
		admin.DELETE("/plans/:id", hb.Catalog.DeletePlanHandler)

		admin.GET("/addons/:id", hb.Catalog.GetAddonHandler)
		admin.POST("/addons", hb.Catalog.CreateAddonHandler)
		admin.PUT("/addons/:id", hb.Catalog.UpdateAddonHandler)
		admin.DELETE("/addons/:id", hb.Catalog.DeleteAddonHandler)

		admin.POST("/photos", hb.Photo.UploadPhotoHandler)
		admin.DELETE("/photos/:id", hb.Photo.DeletePhotoHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
