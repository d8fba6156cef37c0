package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	merchantRepo "lokapasar/database/repository/merchant"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"
	"lokapasar/utils"

	"github.com/go-redis/redis/v8"
)

// ErrInvalidCoordinates is returned when the requester origin lies outside
// the valid latitude/longitude ranges. The service never clamps bad input.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// feedCacheTTL bounds staleness of cached feed pages.
const feedCacheTTL = time.Minute

// FeedService ranks visible reels by proximity to the requester.
type FeedService interface {
	GetFeed(ctx context.Context, lat, lng, radiusKm float64, page, perPage int) (*models.FeedPage, error)
	GetMerchantFeed(ctx context.Context, merchantID string, page, perPage int) (*models.FeedPage, error)
}

// DefaultFeedService is our implementation backed by the reel and merchant
// repositories, with optional Redis result caching.
type DefaultFeedService struct {
	Reels      reelRepo.ReelRepository
	Merchants  merchantRepo.MerchantRepository
	Cache      *redis.Client
	MaxPerPage int
}

// GetFeed returns one page of the distance-ranked feed around the origin.
// Candidates are gate-filtered, measured against their merchant's current
// coordinates, kept when within radiusKm, and ordered by distance ascending
// with newest-first tie-breaking.
func (s *DefaultFeedService) GetFeed(ctx context.Context, lat, lng, radiusKm float64, page, perPage int) (*models.FeedPage, error) {
	if !ValidCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}

	// A non-positive radius selects nothing; it is not an error.
	if radiusKm <= 0 {
		entries, meta := utils.Paginate([]models.FeedEntry{}, page, perPage, s.MaxPerPage)
		return &models.FeedPage{Entries: entries, Meta: meta}, nil
	}

	cacheKey := fmt.Sprintf("feed:geo:%.4f:%.4f:%g:%d:%d", lat, lng, radiusKm, page, perPage)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var fp models.FeedPage
			if err := json.Unmarshal([]byte(cached), &fp); err == nil {
				return &fp, nil
			}
			// If unmarshal fails, we fall through to re-computation.
		}
	}

	reels, err := s.Reels.GetPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed candidates: %w", err)
	}

	merchantIDs := make([]string, 0, len(reels))
	seen := make(map[string]bool, len(reels))
	for _, reel := range reels {
		if !seen[reel.MerchantID] {
			seen[reel.MerchantID] = true
			merchantIDs = append(merchantIDs, reel.MerchantID)
		}
	}
	merchants, err := s.Merchants.GetByIDs(ctx, merchantIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load merchants for feed: %w", err)
	}

	var entries []models.FeedEntry
	for _, reel := range reels {
		merchant, ok := merchants[reel.MerchantID]
		if !ok || !IsVisible(reel, merchant) {
			continue
		}
		// Distance is always measured against the merchant's current
		// coordinates at query time, never cached on the reel.
		distance := DistanceKm(lat, lng, merchant.Latitude, merchant.Longitude)
		if distance <= radiusKm {
			entries = append(entries, models.FeedEntry{Reel: reel, DistanceKm: distance})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].DistanceKm != entries[j].DistanceKm {
			return entries[i].DistanceKm < entries[j].DistanceKm
		}
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})

	pageEntries, meta := utils.Paginate(entries, page, perPage, s.MaxPerPage)
	fp := &models.FeedPage{Entries: pageEntries, Meta: meta}

	if s.Cache != nil {
		if bytes, err := json.Marshal(fp); err == nil {
			s.Cache.Set(ctx, cacheKey, bytes, feedCacheTTL)
		}
	}
	return fp, nil
}

// GetMerchantFeed returns the storefront page: every visible reel of one
// merchant, newest first, without distance filtering. A blocked merchant is
// indistinguishable from a missing one.
func (s *DefaultFeedService) GetMerchantFeed(ctx context.Context, merchantID string, page, perPage int) (*models.FeedPage, error) {
	merchant, err := s.Merchants.GetByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, merchantRepo.ErrNotFound) {
			return nil, merchantRepo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load merchant %s: %w", merchantID, err)
	}
	if merchant.Blocked {
		return nil, merchantRepo.ErrNotFound
	}

	reels, err := s.Reels.GetPublishedByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reels for merchant %s: %w", merchantID, err)
	}

	entries := make([]models.FeedEntry, 0, len(reels))
	for _, reel := range reels {
		entries = append(entries, models.FeedEntry{Reel: reel})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].ID < entries[j].ID
	})

	pageEntries, meta := utils.Paginate(entries, page, perPage, s.MaxPerPage)
	return &models.FeedPage{Entries: pageEntries, Meta: meta}, nil
}
