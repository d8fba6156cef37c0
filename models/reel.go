package models

import "time"

// Reel visibility states. A reel enters the public feed only once published.
const (
	ReelStatusDraft     = "draft"
	ReelStatusInReview  = "in_review"
	ReelStatusPublished = "published"
)

// Reel is a merchant's promotional post (short video/image plus product metadata).
type Reel struct {
	ID         string    `bson:"id" json:"id"`
	MerchantID string    `bson:"merchantId" json:"merchantId"`
	Title      string    `bson:"title" json:"title"`
	Caption    string    `bson:"caption" json:"caption,omitempty"`
	MediaURL   string    `bson:"mediaUrl" json:"mediaUrl,omitempty"`
	Status     string    `bson:"status" json:"status"`
	Blocked    bool      `bson:"blocked" json:"blocked"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
