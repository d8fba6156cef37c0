package feed

import (
	"context"
	"fmt"
	"testing"
	"time"

	merchantRepo "lokapasar/database/repository/merchant"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubReelRepo serves reels from memory, applying the listing-level filter
// the Mongo implementation applies in its query.
type stubReelRepo struct {
	reelRepo.ReelRepository
	reels []models.Reel
}

func (s *stubReelRepo) GetPublished(ctx context.Context) ([]models.Reel, error) {
	var out []models.Reel
	for _, r := range s.reels {
		if r.Status == models.ReelStatusPublished && !r.Blocked {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubReelRepo) GetPublishedByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error) {
	var out []models.Reel
	for _, r := range s.reels {
		if r.MerchantID == merchantID && r.Status == models.ReelStatusPublished && !r.Blocked {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubMerchantRepo struct {
	merchantRepo.MerchantRepository
	merchants map[string]models.Merchant
}

func (s *stubMerchantRepo) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	m, ok := s.merchants[id]
	if !ok {
		return nil, merchantRepo.ErrNotFound
	}
	return &m, nil
}

func (s *stubMerchantRepo) GetByIDs(ctx context.Context, ids []string) (map[string]models.Merchant, error) {
	out := make(map[string]models.Merchant, len(ids))
	for _, id := range ids {
		if m, ok := s.merchants[id]; ok {
			out[id] = m
		}
	}
	return out, nil
}

func newTestFeedService(reels []models.Reel, merchants ...models.Merchant) *DefaultFeedService {
	byID := make(map[string]models.Merchant, len(merchants))
	for _, m := range merchants {
		byID[m.ID] = m
	}
	return &DefaultFeedService{
		Reels:      &stubReelRepo{reels: reels},
		Merchants:  &stubMerchantRepo{merchants: byID},
		MaxPerPage: 50,
	}
}

func publishedReel(id, merchantID string, createdAt time.Time) models.Reel {
	return models.Reel{
		ID:         id,
		MerchantID: merchantID,
		Title:      "promo " + id,
		Status:     models.ReelStatusPublished,
		CreatedAt:  createdAt,
	}
}

func TestGetFeed_RadiusFiltering(t *testing.T) {
	now := time.Now()
	m1 := models.Merchant{ID: "m1", Latitude: 0, Longitude: 0.05}  // ~5.56 km
	m2 := models.Merchant{ID: "m2", Latitude: 0, Longitude: 0.5}   // ~55.6 km
	reels := []models.Reel{
		publishedReel("l1", "m1", now),
		publishedReel("l2", "m2", now),
	}
	svc := newTestFeedService(reels, m1, m2)

	page, err := svc.GetFeed(context.Background(), 0, 0, 10, 1, 15)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "l1", page.Entries[0].ID)
	assert.InDelta(t, 5.56, page.Entries[0].DistanceKm, 0.05)
	assert.Equal(t, 1, page.Meta.Total)
}

func TestGetFeed_OrderingDistanceThenNewest(t *testing.T) {
	now := time.Now()
	near := models.Merchant{ID: "near", Latitude: 0, Longitude: 0.01}
	far := models.Merchant{ID: "far", Latitude: 0, Longitude: 0.04}
	reels := []models.Reel{
		publishedReel("far-new", "far", now),
		publishedReel("near-old", "near", now.Add(-2*time.Hour)),
		publishedReel("near-new", "near", now),
	}
	svc := newTestFeedService(reels, near, far)

	page, err := svc.GetFeed(context.Background(), 0, 0, 10, 1, 15)
	require.NoError(t, err)
	require.Len(t, page.Entries, 3)

	// Nearest first; equal distances fall back to newest first.
	assert.Equal(t, "near-new", page.Entries[0].ID)
	assert.Equal(t, "near-old", page.Entries[1].ID)
	assert.Equal(t, "far-new", page.Entries[2].ID)
	for i := 0; i+1 < len(page.Entries); i++ {
		assert.LessOrEqual(t, page.Entries[i].DistanceKm, page.Entries[i+1].DistanceKm)
	}
}

func TestGetFeed_RadiusContainmentAcrossPages(t *testing.T) {
	now := time.Now()
	var merchants []models.Merchant
	var reels []models.Reel
	// Merchants at roughly 1.1, 2.2, ..., 11.1 km due east.
	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("m%d", i)
		merchants = append(merchants, models.Merchant{ID: id, Latitude: 0, Longitude: 0.01 * float64(i)})
		reels = append(reels, publishedReel(fmt.Sprintf("l%d", i), id, now.Add(-time.Duration(i)*time.Minute)))
	}
	svc := newTestFeedService(reels, merchants...)

	const radius = 8.0
	seen := make(map[string]bool)
	for p := 1; ; p++ {
		page, err := svc.GetFeed(context.Background(), 0, 0, radius, p, 3)
		require.NoError(t, err)
		for _, e := range page.Entries {
			assert.LessOrEqual(t, e.DistanceKm, radius)
			seen[e.ID] = true
		}
		if p >= page.Meta.LastPage {
			break
		}
	}
	// Merchants 1..7 sit within 8 km (7 * 1.11 ≈ 7.8).
	assert.Len(t, seen, 7)
	for i := 1; i <= 7; i++ {
		assert.True(t, seen[fmt.Sprintf("l%d", i)], "expected l%d within radius", i)
	}
}

func TestGetFeed_ModerationExclusion(t *testing.T) {
	now := time.Now()
	blockedMerchant := models.Merchant{ID: "m1", Latitude: 0, Longitude: 0.01, Blocked: true}
	okMerchant := models.Merchant{ID: "m2", Latitude: 0, Longitude: 0.01}
	reels := []models.Reel{
		publishedReel("hidden-by-merchant", "m1", now),
		publishedReel("visible", "m2", now),
		{ID: "draft", MerchantID: "m2", Status: models.ReelStatusDraft, CreatedAt: now},
		{ID: "blocked-reel", MerchantID: "m2", Status: models.ReelStatusPublished, Blocked: true, CreatedAt: now},
	}
	svc := newTestFeedService(reels, blockedMerchant, okMerchant)

	page, err := svc.GetFeed(context.Background(), 0, 0, 100, 1, 15)
	require.NoError(t, err)
	require.Len(t, page.Entries, 1)
	assert.Equal(t, "visible", page.Entries[0].ID)
}

func TestGetFeed_InvalidCoordinates(t *testing.T) {
	svc := newTestFeedService(nil)
	_, err := svc.GetFeed(context.Background(), 95, 0, 10, 1, 15)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	_, err = svc.GetFeed(context.Background(), 0, -200, 10, 1, 15)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)
}

func TestGetFeed_NonPositiveRadius(t *testing.T) {
	now := time.Now()
	m := models.Merchant{ID: "m1", Latitude: 0, Longitude: 0}
	svc := newTestFeedService([]models.Reel{publishedReel("l1", "m1", now)}, m)

	page, err := svc.GetFeed(context.Background(), 0, 0, 0, 1, 15)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.Equal(t, 0, page.Meta.Total)
	assert.Equal(t, 1, page.Meta.LastPage)
}

func TestGetFeed_PageBeyondLastPage(t *testing.T) {
	now := time.Now()
	m := models.Merchant{ID: "m1", Latitude: 0, Longitude: 0.001}
	reels := []models.Reel{
		publishedReel("l1", "m1", now),
		publishedReel("l2", "m1", now.Add(-time.Minute)),
		publishedReel("l3", "m1", now.Add(-2*time.Minute)),
	}
	svc := newTestFeedService(reels, m)

	first, err := svc.GetFeed(context.Background(), 0, 0, 10, 1, 2)
	require.NoError(t, err)
	require.Len(t, first.Entries, 2)

	beyond, err := svc.GetFeed(context.Background(), 0, 0, 10, 5, 2)
	require.NoError(t, err)
	assert.Empty(t, beyond.Entries)
	assert.Equal(t, first.Meta.Total, beyond.Meta.Total)
	assert.Equal(t, first.Meta.LastPage, beyond.Meta.LastPage)
}

func TestGetMerchantFeed(t *testing.T) {
	now := time.Now()
	m := models.Merchant{ID: "m1", Latitude: 0, Longitude: 0}
	reels := []models.Reel{
		publishedReel("old", "m1", now.Add(-time.Hour)),
		publishedReel("new", "m1", now),
		{ID: "draft", MerchantID: "m1", Status: models.ReelStatusDraft, CreatedAt: now},
		publishedReel("other", "m2", now),
	}
	svc := newTestFeedService(reels, m)

	page, err := svc.GetMerchantFeed(context.Background(), "m1", 1, 15)
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, "new", page.Entries[0].ID)
	assert.Equal(t, "old", page.Entries[1].ID)
}

func TestGetMerchantFeed_BlockedOrMissingMerchant(t *testing.T) {
	blocked := models.Merchant{ID: "m1", Blocked: true}
	svc := newTestFeedService([]models.Reel{publishedReel("l1", "m1", time.Now())}, blocked)

	_, err := svc.GetMerchantFeed(context.Background(), "m1", 1, 15)
	assert.ErrorIs(t, err, merchantRepo.ErrNotFound)

	_, err = svc.GetMerchantFeed(context.Background(), "nope", 1, 15)
	assert.ErrorIs(t, err, merchantRepo.ErrNotFound)
}
