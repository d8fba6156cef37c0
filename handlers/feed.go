package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lokapasar/config"
	merchantRepo "lokapasar/database/repository/merchant"
	"lokapasar/services/feed"
	"lokapasar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the public location-ranked feed and merchant storefronts.
type FeedHandler struct {
	Service feed.FeedService
}

// NewFeedHandler creates a new FeedHandler.
func NewFeedHandler(svc feed.FeedService) *FeedHandler {
	return &FeedHandler{Service: svc}
}

func parsePageParams(c *gin.Context) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.Query("perPage"))
	if perPage < 1 {
		perPage = config.AppConfig.DefaultPerPage
	}
	return page, perPage
}

// GetFeedHandler handles GET /api/feed. Requires lat/lng; radius defaults to
// the configured value and must lie in (0, MAX_RADIUS_KM].
func (fh *FeedHandler) GetFeedHandler(c *gin.Context) {
	latStr, lngStr := c.Query("lat"), c.Query("lng")
	if latStr == "" || lngStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing coordinates", "lat and lng query parameters are required")
		return
	}
	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)
	if errLat != nil || errLng != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", "lat and lng must be numeric")
		return
	}

	radius := config.AppConfig.DefaultRadiusKm
	if radiusStr := c.Query("radius"); radiusStr != "" {
		parsed, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil || parsed <= 0 || parsed > config.AppConfig.MaxRadiusKm {
			utils.JSONError(c, http.StatusBadRequest, "Invalid radius", "radius must be a number in (0, max] km")
			return
		}
		radius = parsed
	}

	page, perPage := parsePageParams(c)

	result, err := fh.Service.GetFeed(c.Request.Context(), lat, lng, radius, page, perPage)
	if err != nil {
		if errors.Is(err, feed.ErrInvalidCoordinates) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid coordinates", "lat must be in [-90,90] and lng in [-180,180]")
			return
		}
		zap.L().Error("Failed to build feed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build feed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": result.Entries,
		"meta": result.Meta,
	})
}

// GetMerchantFeedHandler handles GET /api/merchants/:id/reels: the storefront
// page of one merchant, newest first, no distance filter.
func (fh *FeedHandler) GetMerchantFeedHandler(c *gin.Context) {
	merchantID := c.Param("id")
	page, perPage := parsePageParams(c)

	result, err := fh.Service.GetMerchantFeed(c.Request.Context(), merchantID, page, perPage)
	if err != nil {
		if errors.Is(err, merchantRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Merchant not found", "")
			return
		}
		zap.L().Error("Failed to build merchant feed", zap.String("merchantId", merchantID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build merchant feed", "")
		return
	}

	reels := make([]any, 0, len(result.Entries))
	for _, entry := range result.Entries {
		reels = append(reels, entry.Reel)
	}
	c.JSON(http.StatusOK, gin.H{
		"data": reels,
		"meta": result.Meta,
	})
}
