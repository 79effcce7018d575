package routes

import (
	"net/http"
	"time"

	"tinyhouse/config"
	"tinyhouse/handlers"
	"tinyhouse/middleware"
	"tinyhouse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers Google login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.GET("/url", hb.Users.AuthURL)
		api.POST("/login", hb.Users.LogIn)
		api.POST("/logout", hb.Users.LogOut)
	}
}

// RegisterUserRoutes registers user profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// Optional authentication: authorized fields appear only for the user themself.
		api.GET("/:id", middleware.JWTAuthMiddleware(true), hb.Users.GetUser)
		api.GET("/:id/bookings", middleware.JWTAuthMiddleware(true), hb.Users.UserBookings)
		api.GET("/:id/listings", hb.Users.UserListings)
	}
}

// RegisterListingRoutes registers listing endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.Listings.ListListings)
		api.GET("/:id", middleware.JWTAuthMiddleware(true), hb.Listings.GetListing)
		api.GET("/:id/bookings", middleware.JWTAuthMiddleware(true), hb.Listings.ListingBookings)
		api.GET("/:id/availability", hb.Listings.Availability)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(false))
		protected.POST("", hb.Listings.HostListing)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.POST("", hb.Bookings.CreateBooking)
	}
}

// RegisterStripeRoutes registers payout account endpoints.
func RegisterStripeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stripe")
	{
		api.Use(middleware.JWTAuthMiddleware(false))
		api.POST("/connect", hb.Users.ConnectStripe)
		api.POST("/disconnect", hb.Users.DisconnectStripe)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm TinyHouse",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(utils.GetLogger()))
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if config.AppConfig.ClientURL != "" {
		corsConfig.AllowOrigins = []string{config.AppConfig.ClientURL}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStripeRoutes(r, hb)
}
