package handlers

import (
	"net/http"

	"lokapasar/services/stats"
	"lokapasar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler serves seller-facing engagement rollups.
type StatsHandler struct {
	Service stats.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc stats.StatsService) *StatsHandler {
	return &StatsHandler{Service: svc}
}

// GetMerchantStatsHandler handles GET /api/merchants/:id/stats: the dashboard
// summary plus the per-reel breakdown. An unknown merchant gets zeros.
func (sh *StatsHandler) GetMerchantStatsHandler(c *gin.Context) {
	merchantID := c.Param("id")

	summary, err := sh.Service.MerchantSummary(c.Request.Context(), merchantID)
	if err != nil {
		zap.L().Error("Failed to build merchant stats", zap.String("merchantId", merchantID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build stats", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GetReelStatsHandler handles GET /api/reels/:id/stats.
func (sh *StatsHandler) GetReelStatsHandler(c *gin.Context) {
	reelID := c.Param("id")

	reelStats, err := sh.Service.ReelStats(c.Request.Context(), reelID)
	if err != nil {
		zap.L().Error("Failed to build reel stats", zap.String("reelId", reelID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build stats", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reelStats})
}
