package routes

import (
	"net/http"
	"time"

	"hoofline/handlers"
	"hoofline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCustomerRoutes registers customer account endpoints.
func RegisterCustomerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/customers")
	{
		api.POST("/register", hb.Auth.RegisterCustomer)
		api.POST("/login", hb.Auth.LoginCustomer)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthCustomer(hb.CustomerRepo))
		api.PUT("/fcm-token", hb.Auth.SetCustomerFCMToken)
		api.GET("/bookings", hb.Booking.ListForCustomer)
	}
}

// RegisterProviderRoutes registers provider account and schedule endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.POST("/register", hb.Auth.RegisterProvider)
		api.POST("/login", hb.Auth.LoginProvider)

		// Public availability lookups do not need a session.
		api.GET("/:id/availability", hb.Availability.ResolveDay)
		api.GET("/:id/slots", hb.Availability.DaySlots)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthProvider(hb.ProviderRepo))
		protected.PUT("/fcm-token", hb.Auth.SetProviderFCMToken)
		protected.GET("/bookings", hb.Booking.ListForProvider)
		protected.PUT("/bookings/:id/status", hb.Booking.UpdateStatusByProvider)
		protected.GET("/schedule", hb.Schedule.GetSchedule)
		protected.PUT("/schedule/weekly", hb.Schedule.SetWeekly)
		protected.PUT("/schedule/exceptions", hb.Schedule.UpsertException)
		protected.DELETE("/schedule/exceptions/:date", hb.Schedule.DeleteException)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthCustomer(hb.CustomerRepo))
		bookingGroup.POST("", hb.Booking.Create)
		bookingGroup.PUT("/:id/status", hb.Booking.UpdateStatusByCustomer)
	}
}

// RegisterRouteRoutes sets up the endpoints for visit-day routes.
func RegisterRouteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	routeGroup := r.Group("/api/routes")
	{
		routeGroup.Use(middleware.JWTAuthProvider(hb.ProviderRepo))
		routeGroup.POST("", hb.Route.Plan)
		routeGroup.GET("/:id", hb.Route.Get)
		routeGroup.PUT("/:id/stops/:stopId", hb.Route.TransitionStop)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Hoofline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCustomerRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterRouteRoutes(r, hb)
	RegisterHealthRoute(r)
}
