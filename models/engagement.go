package models

import "time"

// EventKind is the closed set of engagement event kinds.
type EventKind string

const (
	EventView           EventKind = "view"
	EventLike           EventKind = "like"
	EventShare          EventKind = "share"
	EventClickToContact EventKind = "click_to_contact"
)

// wireClickToContact is the public API name for the contact-click kind.
const wireClickToContact = "click_wa"

// ParseEventKind maps a wire value to an internal event kind.
// Unknown values are rejected at the boundary before they reach the store.
func ParseEventKind(wire string) (EventKind, bool) {
	switch wire {
	case string(EventView):
		return EventView, true
	case string(EventLike):
		return EventLike, true
	case string(EventShare):
		return EventShare, true
	case wireClickToContact:
		return EventClickToContact, true
	default:
		return "", false
	}
}

// WireValue returns the public API name of the kind.
func (k EventKind) WireValue() string {
	if k == EventClickToContact {
		return wireClickToContact
	}
	return string(k)
}

// EngagementEvent is an immutable engagement fact. The only permitted deletion
// is an actor retracting their own like via the toggle path.
type EngagementEvent struct {
	ID        string    `bson:"id" json:"id"`
	ReelID    string    `bson:"reelId" json:"reelId"`
	Kind      EventKind `bson:"kind" json:"kind"`
	Actor     string    `bson:"actor" json:"actor,omitempty"` // IP, session token, or user id; opaque
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
