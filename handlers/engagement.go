package handlers

import (
	"errors"
	"net/http"

	"lokapasar/middleware"
	"lokapasar/models"
	"lokapasar/services/engagement"
	"lokapasar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EngagementHandler records engagement events and like toggles.
type EngagementHandler struct {
	Service engagement.EngagementService
}

// NewEngagementHandler creates a new EngagementHandler.
func NewEngagementHandler(svc engagement.EngagementService) *EngagementHandler {
	return &EngagementHandler{Service: svc}
}

type recordEventRequest struct {
	EventType string `json:"eventType" binding:"required"`
}

// RecordEventHandler handles POST /api/reels/:id/events. A throttled
// duplicate answers 200 with a flag, never an error status.
func (eh *EngagementHandler) RecordEventHandler(c *gin.Context) {
	reelID := c.Param("id")

	var req recordEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", "eventType is required")
		return
	}
	kind, ok := models.ParseEventKind(req.EventType)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Unknown event type", "eventType must be one of view, like, share, click_wa")
		return
	}

	actor := middleware.GetActor(c)
	outcome, err := eh.Service.Record(c.Request.Context(), reelID, kind, actor)
	if err != nil {
		switch {
		case errors.Is(err, engagement.ErrReelNotFound):
			utils.JSONError(c, http.StatusNotFound, "Reel not found", "")
		case errors.Is(err, engagement.ErrInvalidEventKind):
			utils.JSONError(c, http.StatusBadRequest, "Unknown event type", "")
		default:
			zap.L().Error("Failed to record engagement event", zap.String("reelId", reelID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to record event", "")
		}
		return
	}

	if outcome == engagement.OutcomeThrottled {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Event already recorded recently",
			"throttled": true,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Event recorded",
		"data": gin.H{
			"listingId": reelID,
			"eventType": kind.WireValue(),
		},
	})
}

// ToggleLikeHandler handles POST /api/reels/:id/like.
func (eh *EngagementHandler) ToggleLikeHandler(c *gin.Context) {
	reelID := c.Param("id")
	actor := middleware.GetActor(c)

	isLiked, err := eh.Service.ToggleLike(c.Request.Context(), reelID, actor)
	if err != nil {
		switch {
		case errors.Is(err, engagement.ErrReelNotFound):
			utils.JSONError(c, http.StatusNotFound, "Reel not found", "")
		case errors.Is(err, engagement.ErrMissingActor):
			utils.JSONError(c, http.StatusBadRequest, "Missing actor", "an identifiable caller is required to like a reel")
		default:
			zap.L().Error("Failed to toggle like", zap.String("reelId", reelID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to toggle like", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"isLiked": isLiked})
}
