package routes

import (
	adminapi "gallery-app/internal/api/admin"
	artworksapi "gallery-app/internal/api/artworks"
	authapi "gallery-app/internal/api/auth"
	cartapi "gallery-app/internal/api/cart"
	mediablogapi "gallery-app/internal/api/mediablog"
	paymentapi "gallery-app/internal/api/payment"
	seriesapi "gallery-app/internal/api/series"
	usersapi "gallery-app/internal/api/users"
	"gallery-app/internal/app/http/middleware"
	cartstore "gallery-app/internal/cart"
	"gallery-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog
	r.GET("/artworks", artworksapi.ListArtworks)
	r.GET("/artworks/:id", artworksapi.GetArtwork)
	r.POST("/artworks/:id/like", artworksapi.LikeArtwork)
	r.POST("/artworks/:id/view", artworksapi.ViewArtwork)

	r.GET("/series", seriesapi.ListSeries)
	r.GET("/series/:slug", seriesapi.GetSeriesBySlug)

	r.GET("/media-blog", mediablogapi.ListEntries)

	// Auth (sanitized public input)
	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/auth/register", authapi.Register)
	public.POST("/auth/login", authapi.Login)
	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Cart (anonymous, cookie-keyed)
	cartHandler := cartapi.NewHandler(cartstore.NewStore())
	r.GET("/cart", cartHandler.GetCart)
	r.POST("/cart/items", cartHandler.AddItem)
	r.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	r.DELETE("/cart", cartHandler.Clear)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.POST("/auth/logout", authapi.Logout)
	auth.GET("/user/profile", usersapi.GetProfile)

	auth.POST("/payment/simulate", paymentapi.Simulate)
	auth.POST("/payment/checkout", paymentapi.Checkout)
	auth.POST("/mpesa/stkpush", paymentapi.StkPush)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/stats", adminapi.GetAdminStats)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/transactions", adminapi.ListTransactions)

	admin.GET("/artworks", adminapi.ListArtworks)
	admin.POST("/artworks", adminapi.CreateArtwork)
	admin.PUT("/artworks/:id", adminapi.UpdateArtwork)
	admin.DELETE("/artworks/:id", adminapi.DeleteArtwork)

	admin.GET("/series", adminapi.ListSeries)
	admin.POST("/series", adminapi.CreateSeries)
	admin.PUT("/series", adminapi.UpdateSeries)
	admin.DELETE("/series/:id", adminapi.DeleteSeries)

	admin.GET("/media-blog", adminapi.ListMediaBlogEntries)
	admin.POST("/media-blog", adminapi.CreateMediaBlogEntry)
	admin.PUT("/media-blog/:id", adminapi.UpdateMediaBlogEntry)
	admin.DELETE("/media-blog/:id", adminapi.DeleteMediaBlogEntry)
}
