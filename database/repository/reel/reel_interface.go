package reelRepo

import (
	"context"
	"errors"

	"lokapasar/models"
)

// ErrNotFound is returned when no reel matches the query.
var ErrNotFound = errors.New("reel not found")

// ReelRepository defines persistence operations for reels.
type ReelRepository interface {
	GetByID(ctx context.Context, id string) (*models.Reel, error)
	// GetPublished returns reels passing the listing-level gate: published and
	// not blocked. The merchant-level block is applied by the caller.
	GetPublished(ctx context.Context) ([]models.Reel, error)
	GetPublishedByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error)
	// GetByMerchant returns every reel the merchant owns regardless of
	// visibility; statistics rollups are not moderation-filtered.
	GetByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error)
	GetAll(ctx context.Context) ([]models.Reel, error)
	Create(ctx context.Context, reel *models.Reel) error
	Update(ctx context.Context, reel *models.Reel) error
	Delete(ctx context.Context, id string) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
}
