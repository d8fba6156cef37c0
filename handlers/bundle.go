package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Public feed endpoints.
	GetFeedHandler         gin.HandlerFunc
	GetMerchantFeedHandler gin.HandlerFunc

	// Engagement endpoints.
	RecordEventHandler gin.HandlerFunc
	ToggleLikeHandler  gin.HandlerFunc

	// Seller statistics endpoints.
	GetMerchantStatsHandler gin.HandlerFunc
	GetReelStatsHandler     gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
