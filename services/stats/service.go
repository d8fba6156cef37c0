package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	engagementRepo "lokapasar/database/repository/engagement"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"

	"github.com/go-redis/redis/v8"
)

// summaryCacheTTL bounds staleness of cached merchant summaries.
const summaryCacheTTL = time.Minute

// StatsService computes engagement rollups on demand from the event ledger.
// Rollups are totals over a set, so a missing reel or merchant yields zeros,
// never an error. Aggregation is deliberately not moderation-filtered: a
// blocked reel's historical stats stay visible to its owner.
type StatsService interface {
	ReelStats(ctx context.Context, reelID string) (models.EngagementStats, error)
	MerchantStats(ctx context.Context, merchantID string) (models.MerchantStats, error)
	MerchantSummary(ctx context.Context, merchantID string) (*models.MerchantSummary, error)
}

// DefaultStatsService is our implementation of StatsService.
type DefaultStatsService struct {
	Events engagementRepo.EngagementRepository
	Reels  reelRepo.ReelRepository
	Cache  *redis.Client
}

func statsFromCounts(counts map[models.EventKind]int64) models.EngagementStats {
	return models.EngagementStats{
		Views:          counts[models.EventView],
		Likes:          counts[models.EventLike],
		Shares:         counts[models.EventShare],
		ClickToContact: counts[models.EventClickToContact],
	}
}

// ReelStats returns the exact per-kind event counts for one reel, zero for
// kinds with no events.
func (s *DefaultStatsService) ReelStats(ctx context.Context, reelID string) (models.EngagementStats, error) {
	if _, err := s.Reels.GetByID(ctx, reelID); err != nil {
		if errors.Is(err, reelRepo.ErrNotFound) {
			return models.EngagementStats{}, nil
		}
		return models.EngagementStats{}, fmt.Errorf("failed to load reel %s: %w", reelID, err)
	}
	counts, err := s.Events.CountByKind(ctx, reelID)
	if err != nil {
		return models.EngagementStats{}, fmt.Errorf("failed to count events for reel %s: %w", reelID, err)
	}
	return statsFromCounts(counts), nil
}

// MerchantStats sums per-reel rollups over every reel the merchant owns.
func (s *DefaultStatsService) MerchantStats(ctx context.Context, merchantID string) (models.MerchantStats, error) {
	summary, err := s.MerchantSummary(ctx, merchantID)
	if err != nil {
		return models.MerchantStats{}, err
	}
	return summary.Summary, nil
}

// MerchantSummary builds the seller dashboard payload: the merchant-level
// rollup plus the per-reel breakdown, in one ledger pass.
func (s *DefaultStatsService) MerchantSummary(ctx context.Context, merchantID string) (*models.MerchantSummary, error) {
	cacheKey := fmt.Sprintf("stats:merchant:%s", merchantID)
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var summary models.MerchantSummary
			if err := json.Unmarshal([]byte(cached), &summary); err == nil {
				return &summary, nil
			}
		}
	}

	reels, err := s.Reels.GetByMerchant(ctx, merchantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load reels for merchant %s: %w", merchantID, err)
	}

	reelIDs := make([]string, len(reels))
	for i, reel := range reels {
		reelIDs[i] = reel.ID
	}
	// Events whose reel has since been deleted carry ids outside this set and
	// are excluded from the rollup.
	countsByReel, err := s.Events.CountByKindForReels(ctx, reelIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count events for merchant %s: %w", merchantID, err)
	}

	summary := &models.MerchantSummary{
		Summary: models.MerchantStats{TotalReels: len(reels)},
		Reels:   make([]models.ReelStats, 0, len(reels)),
	}
	for _, reel := range reels {
		reelStats := statsFromCounts(countsByReel[reel.ID])
		summary.Summary.Add(reelStats)
		summary.Reels = append(summary.Reels, models.ReelStats{
			ReelID:          reel.ID,
			Title:           reel.Title,
			EngagementStats: reelStats,
		})
	}

	if s.Cache != nil {
		if bytes, err := json.Marshal(summary); err == nil {
			s.Cache.Set(ctx, cacheKey, bytes, summaryCacheTTL)
		}
	}
	return summary, nil
}
