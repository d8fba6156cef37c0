package admin

import (
	"context"
	"fmt"

	engagementRepo "lokapasar/database/repository/engagement"
	merchantRepo "lokapasar/database/repository/merchant"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"
	"lokapasar/utils"
)

// AdminService covers elevated moderation operations: block flags at the
// merchant and reel level, and reel removal with its event cascade.
type AdminService interface {
	ListMerchants(ctx context.Context, page, perPage int) ([]models.Merchant, models.PageMeta, error)
	ListReels(ctx context.Context, page, perPage int) ([]models.Reel, models.PageMeta, error)
	SetMerchantBlocked(ctx context.Context, id string, blocked bool) error
	SetReelBlocked(ctx context.Context, id string, blocked bool) error
	DeleteReel(ctx context.Context, id string) error
}

// DefaultAdminService is our implementation of AdminService.
type DefaultAdminService struct {
	Merchants  merchantRepo.MerchantRepository
	Reels      reelRepo.ReelRepository
	Events     engagementRepo.EngagementRepository
	MaxPerPage int
}

func (s *DefaultAdminService) ListMerchants(ctx context.Context, page, perPage int) ([]models.Merchant, models.PageMeta, error) {
	merchants, err := s.Merchants.GetAll(ctx)
	if err != nil {
		return nil, models.PageMeta{}, err
	}
	pageItems, meta := utils.Paginate(merchants, page, perPage, s.MaxPerPage)
	return pageItems, meta, nil
}

func (s *DefaultAdminService) ListReels(ctx context.Context, page, perPage int) ([]models.Reel, models.PageMeta, error) {
	reels, err := s.Reels.GetAll(ctx)
	if err != nil {
		return nil, models.PageMeta{}, err
	}
	pageItems, meta := utils.Paginate(reels, page, perPage, s.MaxPerPage)
	return pageItems, meta, nil
}

// SetMerchantBlocked flips the merchant-level block flag. The flag is
// inherited transitively: every reel of a blocked merchant drops out of the
// feed without being touched individually.
func (s *DefaultAdminService) SetMerchantBlocked(ctx context.Context, id string, blocked bool) error {
	return s.Merchants.SetBlocked(ctx, id, blocked)
}

// SetReelBlocked flips the reel-level block flag, independent of the
// merchant-level one.
func (s *DefaultAdminService) SetReelBlocked(ctx context.Context, id string, blocked bool) error {
	return s.Reels.SetBlocked(ctx, id, blocked)
}

// DeleteReel removes a reel and cascades deletion of its engagement events,
// so the ledger never accumulates orphans.
func (s *DefaultAdminService) DeleteReel(ctx context.Context, id string) error {
	if err := s.Reels.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Events.DeleteByReel(ctx, id); err != nil {
		return fmt.Errorf("failed to cascade event delete for reel %s: %w", id, err)
	}
	return nil
}
