package routes

import (
	"time"

	"servana/handlers"
	"servana/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user account endpoints.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	users := api.Group("/users")
	{
		users.POST("/register", hb.User.RegisterUserHandler)
		users.POST("/login", hb.User.LoginUserHandler)

		me := users.Group("")
		me.Use(hb.Auth.Authenticate(), middleware.RequireUser())
		me.GET("/me", hb.User.GetProfileHandler)
		me.PUT("/me", hb.User.UpdateProfileHandler)
		me.PUT("/me/password", hb.User.ChangePasswordHandler)
		me.DELETE("/me", hb.User.DeactivateHandler)
	}
}

// RegisterProviderRoutes registers provider account endpoints.
func RegisterProviderRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	providers := api.Group("/providers")
	{
		providers.POST("/register", hb.Provider.RegisterProviderHandler)
		providers.POST("/login", hb.Provider.LoginProviderHandler)
		providers.GET("", hb.Provider.ListProvidersHandler)
		providers.GET("/id/:id", hb.Provider.GetProviderHandler)

		me := providers.Group("")
		me.Use(hb.Auth.Authenticate(), middleware.RequireProvider())
		me.GET("/me/profile", hb.Provider.GetProviderProfileHandler)
		me.PUT("/me/profile", hb.Provider.UpdateProviderProfileHandler)
	}
}

// RegisterServiceRoutes registers the service catalog endpoints. Reads are
// public, writes require the owning provider.
func RegisterServiceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	services := api.Group("/services")
	{
		services.GET("", hb.Service.ListServicesHandler)
		services.GET("/:id", hb.Service.GetServiceHandler)

		owned := services.Group("")
		owned.Use(hb.Auth.Authenticate(), middleware.RequireProvider())
		owned.POST("", hb.Service.CreateServiceHandler)
		owned.PUT("/:id", hb.Service.UpdateServiceHandler)
		owned.DELETE("/:id", hb.Service.DeleteServiceHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. All of
// them require authentication; ownership is enforced in the service layer.
func RegisterBookingRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	bookings := api.Group("/bookings")
	bookings.Use(hb.Auth.Authenticate())
	{
		bookings.POST("", middleware.RequireUser(), hb.Booking.CreateBookingHandler)
		bookings.GET("", hb.Booking.ListBookingsHandler)
		bookings.GET("/id/:id", hb.Booking.GetBookingHandler)
		bookings.GET("/id/:id/timeline", hb.Booking.TimelineHandler)
		bookings.GET("/code/:code", hb.Booking.GetByCodeHandler)
		bookings.PUT("/id/:id/status", hb.Booking.UpdateStatusHandler)
		bookings.POST("/id/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("", hb.Review.ListReviewsHandler)
		reviews.POST("", hb.Auth.Authenticate(), middleware.RequireUser(), hb.Review.CreateReviewHandler)
	}
}

// RegisterUploadRoutes registers media upload endpoints.
func RegisterUploadRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	uploads := api.Group("/uploads")
	uploads.Use(hb.Auth.Authenticate())
	uploads.POST("/:kind", hb.Storage.UploadFileHandler)
}

// RegisterAdminRoutes registers the admin surface. Every route past login
// needs an admin principal; mutations are gated by the permission grid.
func RegisterAdminRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	admin := api.Group("/admin")
	admin.POST("/login", hb.Admin.LoginAdminHandler)

	protected := admin.Group("")
	protected.Use(hb.Auth.Authenticate(), middleware.RequireAdmin())
	{
		protected.GET("/me", hb.Admin.GetAdminProfileHandler)

		protected.GET("/users", middleware.RequirePermission("users", "read"), hb.User.AdminListUsersHandler)
		protected.GET("/users/:id", middleware.RequirePermission("users", "read"), hb.User.AdminGetUserHandler)
		protected.DELETE("/users/:id", middleware.RequirePermission("users", "delete"), hb.User.AdminDeactivateUserHandler)

		protected.GET("/providers", middleware.RequirePermission("providers", "read"), hb.Provider.AdminListProvidersHandler)
		protected.POST("/providers/:id/verify", middleware.RequirePermission("providers", "verify"), hb.Provider.VerifyProviderHandler)
		protected.DELETE("/providers/:id", middleware.RequirePermission("providers", "delete"), hb.Provider.AdminDeactivateProviderHandler)

		protected.PUT("/services/:id", middleware.RequirePermission("services", "write"), hb.Service.UpdateServiceHandler)
		protected.DELETE("/services/:id", middleware.RequirePermission("services", "delete"), hb.Service.DeleteServiceHandler)

		protected.DELETE("/reviews/:id", middleware.RequirePermission("reviews", "delete"), hb.Review.DeleteReviewHandler)

		protected.POST("/admins", middleware.RequirePermission("admins", "write"), hb.Admin.CreateAdminHandler)
		protected.GET("/admins", middleware.RequirePermission("admins", "read"), hb.Admin.ListAdminsHandler)
		protected.PUT("/admins/:id/role", middleware.RequirePermission("admins", "write"), hb.Admin.UpdateAdminRoleHandler)
		protected.DELETE("/admins/:id", middleware.RequirePermission("admins", "delete"), hb.Admin.DeactivateAdminHandler)

		analytics := protected.Group("/analytics")
		analytics.Use(middleware.RequirePermission("analytics", "read"))
		analytics.GET("/dashboard", hb.Analytics.DashboardHandler)
		analytics.GET("/revenue", hb.Analytics.RevenueHandler)
		analytics.GET("/bookings", hb.Analytics.BookingsByStatusHandler)
		analytics.GET("/top-providers", hb.Analytics.TopProvidersHandler)

		protected.DELETE("/uploads/:publicId", middleware.RequirePermission("settings", "write"), hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health.HealthCheckHandler)
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
	r.Use(middleware.RateLimitMiddleware())

	api := r.Group("/api/v1")
	RegisterUserRoutes(api, hb)
	RegisterProviderRoutes(api, hb)
	RegisterServiceRoutes(api, hb)
	RegisterBookingRoutes(api, hb)
	RegisterReviewRoutes(api, hb)
	RegisterUploadRoutes(api, hb)
	RegisterAdminRoutes(api, hb)
	RegisterHealthRoute(r, hb)
}
