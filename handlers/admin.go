package handlers

import (
	"errors"
	"net/http"

	merchantRepo "lokapasar/database/repository/merchant"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/services/admin"
	"lokapasar/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level moderation operations.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetAllMerchantsHandler returns all merchants, paginated.
func (ah *AdminHandler) GetAllMerchantsHandler(c *gin.Context) {
	page, perPage := parsePageParams(c)
	merchants, meta, err := ah.Service.ListMerchants(c.Request.Context(), page, perPage)
	if err != nil {
		zap.L().Error("Failed to fetch all merchants", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch merchants", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": merchants, "meta": meta})
}

// GetAllReelsHandler returns all reels regardless of visibility, paginated.
func (ah *AdminHandler) GetAllReelsHandler(c *gin.Context) {
	page, perPage := parsePageParams(c)
	reels, meta, err := ah.Service.ListReels(c.Request.Context(), page, perPage)
	if err != nil {
		zap.L().Error("Failed to fetch all reels", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch reels", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reels, "meta": meta})
}

func (ah *AdminHandler) setMerchantBlocked(c *gin.Context, blocked bool) {
	id := c.Param("id")
	if err := ah.Service.SetMerchantBlocked(c.Request.Context(), id, blocked); err != nil {
		if errors.Is(err, merchantRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Merchant not found", "")
			return
		}
		zap.L().Error("Failed to update merchant block flag", zap.String("merchantId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update merchant", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Merchant updated", "blocked": blocked})
}

// BlockMerchantHandler handles PUT /api/admin/merchants/:id/block.
func (ah *AdminHandler) BlockMerchantHandler(c *gin.Context) {
	ah.setMerchantBlocked(c, true)
}

// UnblockMerchantHandler handles PUT /api/admin/merchants/:id/unblock.
func (ah *AdminHandler) UnblockMerchantHandler(c *gin.Context) {
	ah.setMerchantBlocked(c, false)
}

func (ah *AdminHandler) setReelBlocked(c *gin.Context, blocked bool) {
	id := c.Param("id")
	if err := ah.Service.SetReelBlocked(c.Request.Context(), id, blocked); err != nil {
		if errors.Is(err, reelRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Reel not found", "")
			return
		}
		zap.L().Error("Failed to update reel block flag", zap.String("reelId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update reel", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reel updated", "blocked": blocked})
}

// BlockReelHandler handles PUT /api/admin/reels/:id/block.
func (ah *AdminHandler) BlockReelHandler(c *gin.Context) {
	ah.setReelBlocked(c, true)
}

// UnblockReelHandler handles PUT /api/admin/reels/:id/unblock.
func (ah *AdminHandler) UnblockReelHandler(c *gin.Context) {
	ah.setReelBlocked(c, false)
}

// DeleteReelHandler handles DELETE /api/admin/reels/:id, cascading deletion
// of the reel's engagement events.
func (ah *AdminHandler) DeleteReelHandler(c *gin.Context) {
	id := c.Param("id")
	if err := ah.Service.DeleteReel(c.Request.Context(), id); err != nil {
		if errors.Is(err, reelRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Reel not found", "")
			return
		}
		zap.L().Error("Failed to delete reel", zap.String("reelId", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete reel", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reel deleted"})
}
