package engagement

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	engagementRepo "lokapasar/database/repository/engagement"
	merchantRepo "lokapasar/database/repository/merchant"
	reelRepo "lokapasar/database/repository/reel"
	"lokapasar/models"
	"lokapasar/services/feed"

	"github.com/google/uuid"
)

var (
	// ErrInvalidEventKind is returned for kinds outside the closed set.
	ErrInvalidEventKind = errors.New("invalid event kind")
	// ErrReelNotFound covers both absent and moderation-hidden reels; the
	// two cases are never distinguishable to callers.
	ErrReelNotFound = errors.New("reel not found")
	// ErrMissingActor is returned when toggling a like without an actor.
	ErrMissingActor = errors.New("actor identifier required")
)

// RecordOutcome reports how an engagement submission was resolved.
type RecordOutcome int

const (
	// OutcomeRecorded means a new event was persisted.
	OutcomeRecorded RecordOutcome = iota
	// OutcomeThrottled means a duplicate within the window was absorbed
	// without a write. Not an error.
	OutcomeThrottled
)

// EngagementService ingests engagement events and handles like toggling.
type EngagementService interface {
	Record(ctx context.Context, reelID string, kind models.EventKind, actor string) (RecordOutcome, error)
	ToggleLike(ctx context.Context, reelID, actor string) (bool, error)
}

// keyedMutex serializes critical sections per key by hashing onto a fixed
// set of mutex stripes.
type keyedMutex struct {
	stripes [64]sync.Mutex
}

func (k *keyedMutex) lock(key string) func() {
	h := fnv.New32a()
	h.Write([]byte(key))
	m := &k.stripes[h.Sum32()%uint32(len(k.stripes))]
	m.Lock()
	return m.Unlock
}

// DefaultEngagementService is our implementation of EngagementService.
// The throttle check-then-insert sequence runs under a per-triple lock so two
// concurrent duplicates never both write.
type DefaultEngagementService struct {
	Events    engagementRepo.EngagementRepository
	Reels     reelRepo.ReelRepository
	Merchants merchantRepo.MerchantRepository

	// Clock supplies event timestamps and the throttle reference instant.
	Clock func() time.Time
	// Window is the per-triple throttle window.
	Window time.Duration

	locks keyedMutex
}

// NewEngagementService wires an engagement service with the given throttle
// window and a wall-clock time source.
func NewEngagementService(events engagementRepo.EngagementRepository, reels reelRepo.ReelRepository, merchants merchantRepo.MerchantRepository, window time.Duration) *DefaultEngagementService {
	return &DefaultEngagementService{
		Events:    events,
		Reels:     reels,
		Merchants: merchants,
		Clock:     time.Now,
		Window:    window,
	}
}

// visibleReel loads a reel through the moderation gate. Hidden and missing
// reels produce the same error.
func (s *DefaultEngagementService) visibleReel(ctx context.Context, reelID string) (*models.Reel, error) {
	reel, err := s.Reels.GetByID(ctx, reelID)
	if err != nil {
		if errors.Is(err, reelRepo.ErrNotFound) {
			return nil, ErrReelNotFound
		}
		return nil, fmt.Errorf("failed to load reel %s: %w", reelID, err)
	}
	merchant, err := s.Merchants.GetByID(ctx, reel.MerchantID)
	if err != nil {
		if errors.Is(err, merchantRepo.ErrNotFound) {
			return nil, ErrReelNotFound
		}
		return nil, fmt.Errorf("failed to load merchant %s: %w", reel.MerchantID, err)
	}
	if !feed.IsVisible(*reel, *merchant) {
		return nil, ErrReelNotFound
	}
	return reel, nil
}

func validKind(kind models.EventKind) bool {
	switch kind {
	case models.EventView, models.EventLike, models.EventShare, models.EventClickToContact:
		return true
	}
	return false
}

// Record persists one engagement event. A non-empty actor that already fired
// the same (reel, kind, actor) triple within the window is throttled: the
// duplicate is absorbed and nothing is written. An empty actor bypasses
// throttling entirely; every anonymous call is recorded.
func (s *DefaultEngagementService) Record(ctx context.Context, reelID string, kind models.EventKind, actor string) (RecordOutcome, error) {
	if !validKind(kind) {
		return 0, ErrInvalidEventKind
	}
	if _, err := s.visibleReel(ctx, reelID); err != nil {
		return 0, err
	}

	if actor != "" {
		unlock := s.locks.lock(reelID + "|" + string(kind) + "|" + actor)
		defer unlock()

		since := s.Clock().Add(-s.Window)
		seen, err := s.Events.HasRecent(ctx, reelID, kind, actor, since)
		if err != nil {
			return 0, fmt.Errorf("throttle check failed: %w", err)
		}
		if seen {
			return OutcomeThrottled, nil
		}
	}

	event := &models.EngagementEvent{
		ID:        uuid.NewString(),
		ReelID:    reelID,
		Kind:      kind,
		Actor:     actor,
		CreatedAt: s.Clock(),
	}
	if err := s.Events.Insert(ctx, event); err != nil {
		return 0, fmt.Errorf("failed to record event: %w", err)
	}
	return OutcomeRecorded, nil
}

// ToggleLike flips the actor's like for a reel: an existing like event is
// deleted, otherwise a new one is created. The returned bool is the state
// after the toggle. The existence check itself is the idempotency guard, so
// the throttle window does not apply here.
func (s *DefaultEngagementService) ToggleLike(ctx context.Context, reelID, actor string) (bool, error) {
	if actor == "" {
		return false, ErrMissingActor
	}
	if _, err := s.visibleReel(ctx, reelID); err != nil {
		return false, err
	}

	unlock := s.locks.lock(reelID + "|" + string(models.EventLike) + "|" + actor)
	defer unlock()

	deleted, err := s.Events.DeleteLike(ctx, reelID, actor)
	if err != nil {
		return false, fmt.Errorf("failed to retract like: %w", err)
	}
	if deleted {
		return false, nil
	}

	event := &models.EngagementEvent{
		ID:        uuid.NewString(),
		ReelID:    reelID,
		Kind:      models.EventLike,
		Actor:     actor,
		CreatedAt: s.Clock(),
	}
	if err := s.Events.Insert(ctx, event); err != nil {
		return false, fmt.Errorf("failed to record like: %w", err)
	}
	return true, nil
}
