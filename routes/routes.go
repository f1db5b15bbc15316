package routes

import (
	"net/http"
	"time"

	"artisanhub/handlers"
	"artisanhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
		api.POST("/logout", hb.Auth.Logout)
		api.GET("/me", hb.Auth.Me)
	}
}

// RegisterArtisanRoutes registers the artisan directory and review endpoints.
func RegisterArtisanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/artisans")
	{
		// Public directory endpoints.
		api.GET("", hb.Artisans.List)
		api.GET("/:id", hb.Artisans.Get)

		// Endpoints that modify artisan data require authentication.
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("/profile", hb.Artisans.EnsureProfile)
		protected.PUT("/:id", hb.Artisans.UpdateProfile)
		protected.POST("/:id/reviews", hb.Artisans.AddReview)
	}
}

// RegisterBookingRoutes registers booking creation, listing and transitions.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.Create)
		api.PATCH("/:id/status", hb.Bookings.Transition)
		api.GET("/artisan/:id", hb.Bookings.ListByArtisan)
		api.GET("/user/:id", hb.Bookings.ListByUser)
	}
}

// RegisterCategoryRoutes registers the reference-data endpoint.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/categories", hb.Categories.List)
}

// RegisterAdminRoutes sets up endpoints for maintenance operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(hb.UserRepo))
		adminGroup.POST("/rebuild-caches", hb.Admin.RebuildCaches)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
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

	RegisterAuthRoutes(r, hb)
	RegisterArtisanRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCategoryRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
