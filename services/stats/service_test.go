package stats

import (
	"context"
	"testing"
	"time"

	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memEventRepo is an in-memory event ledger for tests.
type memEventRepo struct {
	events []models.EngagementEvent
}

func (m *memEventRepo) Insert(ctx context.Context, event *models.EngagementEvent) error {
	m.events = append(m.events, *event)
	return nil
}

func (m *memEventRepo) HasRecent(ctx context.Context, reelID string, kind models.EventKind, actor string, since time.Time) (bool, error) {
	return false, nil
}

func (m *memEventRepo) DeleteLike(ctx context.Context, reelID, actor string) (bool, error) {
	return false, nil
}

func (m *memEventRepo) CountByKind(ctx context.Context, reelID string) (map[models.EventKind]int64, error) {
	counts := make(map[models.EventKind]int64)
	for _, e := range m.events {
		if e.ReelID == reelID {
			counts[e.Kind]++
		}
	}
	return counts, nil
}

func (m *memEventRepo) CountByKindForReels(ctx context.Context, reelIDs []string) (map[string]map[models.EventKind]int64, error) {
	out := make(map[string]map[models.EventKind]int64)
	for _, id := range reelIDs {
		counts, _ := m.CountByKind(ctx, id)
		if len(counts) > 0 {
			out[id] = counts
		}
	}
	return out, nil
}

func (m *memEventRepo) DeleteByReel(ctx context.Context, reelID string) error {
	return nil
}

type stubReelRepo struct {
	reelRepo.ReelRepository
	reels []models.Reel
}

func (s *stubReelRepo) GetByID(ctx context.Context, id string) (*models.Reel, error) {
	for _, r := range s.reels {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, reelRepo.ErrNotFound
}

func (s *stubReelRepo) GetByMerchant(ctx context.Context, merchantID string) ([]models.Reel, error) {
	var out []models.Reel
	for _, r := range s.reels {
		if r.MerchantID == merchantID {
			out = append(out, r)
		}
	}
	return out, nil
}

func seedEvents(events *memEventRepo, reelID string, kind models.EventKind, n int) {
	for i := 0; i < n; i++ {
		events.events = append(events.events, models.EngagementEvent{
			ReelID:    reelID,
			Kind:      kind,
			CreatedAt: time.Now(),
		})
	}
}

func TestReelStats_ExactCounts(t *testing.T) {
	events := &memEventRepo{}
	seedEvents(events, "l1", models.EventView, 5)
	seedEvents(events, "l1", models.EventLike, 2)
	seedEvents(events, "l1", models.EventClickToContact, 1)
	seedEvents(events, "l2", models.EventView, 3)

	svc := &DefaultStatsService{
		Events: events,
		Reels: &stubReelRepo{reels: []models.Reel{
			{ID: "l1", MerchantID: "m1"},
			{ID: "l2", MerchantID: "m1"},
		}},
	}

	s, err := svc.ReelStats(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, models.EngagementStats{Views: 5, Likes: 2, ClickToContact: 1}, s)

	// Kinds with no events report zero, not an error.
	assert.Zero(t, s.Shares)
}

func TestReelStats_MissingReelIsZero(t *testing.T) {
	svc := &DefaultStatsService{Events: &memEventRepo{}, Reels: &stubReelRepo{}}
	s, err := svc.ReelStats(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.EngagementStats{}, s)
}

func TestMerchantSummary_SumsPerReelStats(t *testing.T) {
	events := &memEventRepo{}
	seedEvents(events, "l1", models.EventView, 4)
	seedEvents(events, "l1", models.EventShare, 1)
	seedEvents(events, "l2", models.EventView, 6)
	seedEvents(events, "l2", models.EventLike, 3)
	// Events for another merchant's reel must not leak into the rollup.
	seedEvents(events, "other", models.EventView, 9)

	reels := &stubReelRepo{reels: []models.Reel{
		{ID: "l1", MerchantID: "m1", Title: "satu"},
		{ID: "l2", MerchantID: "m1", Title: "dua"},
		{ID: "other", MerchantID: "m2"},
	}}
	svc := &DefaultStatsService{Events: events, Reels: reels}
	ctx := context.Background()

	summary, err := svc.MerchantSummary(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Summary.TotalReels)
	assert.Equal(t, int64(10), summary.Summary.Views)
	assert.Equal(t, int64(3), summary.Summary.Likes)
	assert.Equal(t, int64(1), summary.Summary.Shares)
	require.Len(t, summary.Reels, 2)

	// The merchant rollup must equal the sum of per-reel rollups, which must
	// equal direct per-kind counts.
	var total models.EngagementStats
	for _, rs := range summary.Reels {
		perReel, err := svc.ReelStats(ctx, rs.ReelID)
		require.NoError(t, err)
		assert.Equal(t, perReel, rs.EngagementStats)
		total.Add(perReel)
	}
	assert.Equal(t, total, summary.Summary.EngagementStats)

	ms, err := svc.MerchantStats(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, summary.Summary, ms)
}

func TestMerchantSummary_UnknownMerchantIsZero(t *testing.T) {
	svc := &DefaultStatsService{Events: &memEventRepo{}, Reels: &stubReelRepo{}}
	summary, err := svc.MerchantSummary(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, models.MerchantStats{}, summary.Summary)
	assert.Empty(t, summary.Reels)
}
