package engagementRepo

import (
	"context"
	"time"

	"lokapasar/models"
)

// EngagementRepository is the append-only ledger of engagement events.
// Events are immutable once written; DeleteLike is the single exception,
// backing the toggle-like retraction path.
type EngagementRepository interface {
	Insert(ctx context.Context, event *models.EngagementEvent) error
	// HasRecent reports whether an event with the identical
	// (reel, kind, actor) triple exists at or after the given instant.
	HasRecent(ctx context.Context, reelID string, kind models.EventKind, actor string, since time.Time) (bool, error)
	// DeleteLike removes the actor's like event for the reel, reporting
	// whether one existed.
	DeleteLike(ctx context.Context, reelID, actor string) (bool, error)
	CountByKind(ctx context.Context, reelID string) (map[models.EventKind]int64, error)
	// CountByKindForReels groups per-kind counts by reel id in one pass.
	CountByKindForReels(ctx context.Context, reelIDs []string) (map[string]map[models.EventKind]int64, error)
	DeleteByReel(ctx context.Context, reelID string) error
}
