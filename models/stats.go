package models

// EngagementStats holds per-kind event counts for a single reel.
type EngagementStats struct {
	Views          int64 `json:"views"`
	Likes          int64 `json:"likes"`
	Shares         int64 `json:"shares"`
	ClickToContact int64 `json:"clickToContact"`
}

// Add accumulates counts from another rollup.
func (s *EngagementStats) Add(o EngagementStats) {
	s.Views += o.Views
	s.Likes += o.Likes
	s.Shares += o.Shares
	s.ClickToContact += o.ClickToContact
}

// ReelStats pairs a reel id with its rollup, for seller dashboards.
type ReelStats struct {
	ReelID string `json:"reelId"`
	Title  string `json:"title,omitempty"`
	EngagementStats
}

// MerchantStats sums engagement over every reel a merchant owns, active or not.
type MerchantStats struct {
	EngagementStats
	TotalReels int `json:"totalReels"`
}

// MerchantSummary is the seller dashboard payload: the merchant-level rollup
// plus the per-reel breakdown.
type MerchantSummary struct {
	Summary MerchantStats `json:"summary"`
	Reels   []ReelStats   `json:"reels"`
}
