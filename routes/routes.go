package routes

import (
	"net/http"
	"time"

	"lokapasar/handlers"
	"lokapasar/middleware"
	"lokapasar/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterFeedRoutes registers the public feed endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/feed", hb.GetFeedHandler)
		api.GET("/merchants/:id/reels", hb.GetMerchantFeedHandler)
	}
}

// RegisterEngagementRoutes registers the engagement ingestion endpoints. The
// actor middleware resolves who is engaging before the handlers run.
func RegisterEngagementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reels")
	api.Use(middleware.ActorMiddleware())
	{
		api.POST("/:id/events", hb.RecordEventHandler)
		api.POST("/:id/like", hb.ToggleLikeHandler)
	}
}

// RegisterStatsRoutes registers seller statistics endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/merchants/:id/stats", hb.GetMerchantStatsHandler)
		api.GET("/reels/:id/stats", hb.GetReelStatsHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin moderation operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/merchants", hb.AdminHandler.GetAllMerchantsHandler)
		adminGroup.GET("/reels", hb.AdminHandler.GetAllReelsHandler)
		adminGroup.PUT("/merchants/:id/block", hb.AdminHandler.BlockMerchantHandler)
		adminGroup.PUT("/merchants/:id/unblock", hb.AdminHandler.UnblockMerchantHandler)
		adminGroup.PUT("/reels/:id/block", hb.AdminHandler.BlockReelHandler)
		adminGroup.PUT("/reels/:id/unblock", hb.AdminHandler.UnblockReelHandler)
		adminGroup.DELETE("/reels/:id", hb.AdminHandler.DeleteReelHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterFeedRoutes(r, hb)
	RegisterEngagementRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
